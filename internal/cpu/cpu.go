// Package cpu implements a cycle-accurate interpreter for the Sharp
// LR35902 ("SM83") CPU core: register file, the 256+256 opcode decode
// tables, and the exact machine-cycle schedule of bus reads, writes and
// internal waits each instruction emits.
package cpu

import "github.com/thelolagemann/sm83/pkg/log"

// CPU is bound to a single Bus for its lifetime. It holds no other
// global state: the register file, the bus reference, and an optional
// tick observer are everything it needs to run.
type CPU struct {
	registers

	bus    Bus
	onTick TickObserver
	log    log.Logger
}

// Option configures a CPU at construction time.
type Option func(*CPU)

// WithLogger installs a diagnostic logger. Without it the CPU logs
// nothing.
func WithLogger(l log.Logger) Option {
	return func(c *CPU) { c.log = l }
}

// New returns a CPU bound to bus. All registers start zeroed; call
// Reset to seed a specific starting state.
func New(bus Bus, opts ...Option) *CPU {
	c := &CPU{bus: bus, log: log.NewNullLogger()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State is a snapshot of the visible register file, used to seed or
// observe a CPU. It is not a runtime entity — the CPU never stores one.
type State struct {
	A, B, C, D, E, F, H, L uint8
	SP, PC                 uint16
}

// Reset overwrites the entire visible register file. A nil state zeroes
// every register.
func (c *CPU) Reset(state *State) {
	if state == nil {
		state = &State{}
	}
	c.a, c.b, c.c, c.d, c.e, c.h, c.l = state.A, state.B, state.C, state.D, state.E, state.H, state.L
	c.f = state.F & 0xF0
	c.sp = state.SP
	c.pc = state.PC
	c.log.Infof("reset pc=0x%04X sp=0x%04X", c.pc, c.sp)
}

// SetOnTick installs the cycle observer, replacing any previous one. A
// nil observer disables tick notification entirely.
func (c *CPU) SetOnTick(obs TickObserver) {
	c.onTick = obs
}

// tick fires the observer, if any, for one machine cycle. It carries no
// bus activity of its own — readTick and writeTick call it after
// performing the access; internalTick calls it directly.
func (c *CPU) tick() {
	if c.onTick != nil {
		c.onTick(c)
	}
}

// internalTick spends one machine cycle with no observable bus access —
// the cases in the opcode tables marked as an internal wait.
func (c *CPU) internalTick() {
	c.tick()
}

// readTick issues one bus read and spends the machine cycle it costs.
func (c *CPU) readTick(addr uint16) uint8 {
	v := c.bus.Read(addr)
	c.tick()
	return v
}

// writeTick issues one bus write and spends the machine cycle it costs.
func (c *CPU) writeTick(addr uint16, v uint8) {
	c.bus.Write(addr, v)
	c.tick()
}

// fetch reads the byte at PC, advances PC, and spends one machine cycle.
// It is the only primitive allowed to advance PC by plain increment;
// every other PC mutation is an explicit jump/call/ret/rst write.
func (c *CPU) fetch() uint8 {
	v := c.readTick(c.pc)
	c.pc++
	return v
}

// fetch16 reads a little-endian 16-bit immediate, low byte first,
// spending two machine cycles.
func (c *CPU) fetch16() uint16 {
	lo := c.fetch()
	hi := c.fetch()
	return uint16(hi)<<8 | uint16(lo)
}

// Step executes exactly one instruction starting at the current PC,
// including any 0xCB prefix byte. It returns IllegalOpcodeError or
// OpcodeNotImplementedError if decoding fails; any ticks already
// emitted before the failure are not rolled back.
func (c *CPU) Step() error {
	opcode := c.fetch()
	if opcode == 0xCB {
		sub := c.fetch()
		if err := c.executeCB(sub); err != nil {
			c.log.Debugf("cb opcode 0x%02X failed: %v", sub, err)
			return err
		}
		return nil
	}
	if err := c.execute(opcode); err != nil {
		c.log.Debugf("opcode 0x%02X failed: %v", opcode, err)
		return err
	}
	return nil
}
