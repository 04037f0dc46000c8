package cpu

// Bus is the memory capability the CPU borrows for the duration of a
// Step. Both operations are total: embedders decide what an unmapped
// read returns (commonly 0xFF) and may silently discard writes to
// read-only regions.
type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, value uint8)
}

// RegisterView is a read-only projection of the CPU, handed to a
// TickObserver so it can measure machine cycles without being able to
// mutate the register file or re-enter Step. It is a pure computed
// projection over the CPU's private fields, not a pointer into them.
type RegisterView interface {
	A() uint8
	B() uint8
	C() uint8
	D() uint8
	E() uint8
	F() uint8
	H() uint8
	L() uint8
	SP() uint16
	PC() uint16

	AF() uint16
	BC() uint16
	DE() uint16
	HL() uint16

	FlagZ() bool
	FlagN() bool
	FlagH() bool
	FlagC() bool
}

// TickObserver is invoked once per machine cycle: after every bus read,
// every bus write, and every bare internal wait. view reflects the
// register file as of the moment the access was issued; for a read, the
// value just read is not yet folded into any register the instruction
// hasn't written yet.
type TickObserver func(view RegisterView)
