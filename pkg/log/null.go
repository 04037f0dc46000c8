package log

// nullLogger discards everything. It is the cpu package's default logger
// so embedders never pay for diagnostics they didn't ask for.
type nullLogger struct{}

func (nullLogger) Infof(format string, args ...interface{})  {}
func (nullLogger) Warnf(format string, args ...interface{})  {}
func (nullLogger) Errorf(format string, args ...interface{}) {}
func (nullLogger) Debugf(format string, args ...interface{}) {}

// NewNullLogger returns a Logger whose methods are no-ops.
func NewNullLogger() Logger {
	return nullLogger{}
}
