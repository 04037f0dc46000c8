package cpu

// FlatBus is a 64KiB open-bus test double: every address is backed by
// its own byte, initialised to zero, with no special-cased regions.
// Writes always land; reads always return the last value written. It
// exists purely to drive the decoder's bus contract in tests and is
// not exported outside the test binary.
type FlatBus struct {
	mem [0x10000]byte
}

func (b *FlatBus) Read(addr uint16) uint8 {
	return b.mem[addr]
}

func (b *FlatBus) Write(addr uint16, value uint8) {
	b.mem[addr] = value
}

// Seed loads a set of address/value pairs before a test runs.
func (b *FlatBus) Seed(values map[uint16]uint8) {
	for addr, v := range values {
		b.mem[addr] = v
	}
}

// traceEntry records one observed machine cycle for cycle-trace
// assertions. kind is "read", "write" or "internal".
type traceEntry struct {
	kind string
	addr uint16
	data uint8
}

// tracingBus wraps a FlatBus and records every access so a test can
// assert the exact read/write/internal sequence a step emitted.
type tracingBus struct {
	*FlatBus
	trace []traceEntry
}

func newTracingBus() *tracingBus {
	return &tracingBus{FlatBus: &FlatBus{}}
}

func (b *tracingBus) Read(addr uint16) uint8 {
	v := b.FlatBus.Read(addr)
	b.trace = append(b.trace, traceEntry{kind: "read", addr: addr, data: v})
	return v
}

func (b *tracingBus) Write(addr uint16, value uint8) {
	b.FlatBus.Write(addr, value)
	b.trace = append(b.trace, traceEntry{kind: "write", addr: addr, data: value})
}

// attachCycleTracer installs a tick observer on c that appends an
// "internal" entry to bus's trace whenever a tick fires without a bus
// access having been recorded since the last tick. Read/write ticks are
// already represented by the bus-level entries above, so this observer
// only needs to detect the gaps between them.
func attachCycleTracer(c *CPU, bus *tracingBus) *[]traceEntry {
	lastLen := 0
	full := &[]traceEntry{}
	c.SetOnTick(func(RegisterView) {
		if len(bus.trace) == lastLen {
			*full = append(*full, traceEntry{kind: "internal"})
		} else {
			*full = append(*full, bus.trace[lastLen:]...)
			lastLen = len(bus.trace)
		}
	})
	return full
}
