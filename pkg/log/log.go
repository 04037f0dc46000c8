// Package log provides the minimal leveled logger used by the cpu package
// to trace decode failures. It intentionally has no dependency on a
// structured logging library: the CPU core only ever logs a handful of
// diagnostic lines, not structured production telemetry.
package log

import "fmt"

// Logger is the logging capability the cpu package depends on. Callers
// that don't care about diagnostics can use NewNullLogger.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type stdLogger struct{}

// New returns a Logger that writes leveled, prefixed lines to stdout.
func New() Logger {
	return &stdLogger{}
}

func (l *stdLogger) Infof(format string, args ...interface{}) {
	fmt.Printf("[INFO]\t"+format+"\n", args...)
}

func (l *stdLogger) Warnf(format string, args ...interface{}) {
	fmt.Printf("[WARN]\t"+format+"\n", args...)
}

func (l *stdLogger) Errorf(format string, args ...interface{}) {
	fmt.Printf("[ERROR]\t"+format+"\n", args...)
}

func (l *stdLogger) Debugf(format string, args ...interface{}) {
	fmt.Printf("[DEBUG]\t"+format+"\n", args...)
}
