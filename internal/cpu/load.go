package cpu

// All LD/LDH variants: register-to-register, immediate loads, the
// indirect (BC)/(DE)/(HL+)/(HL-) forms, and the 16-bit stack/address
// loads. None of these affect flags except LD HL,SP+e8.

// ldRR implements the 0x40-0x7F block (less 0x76, which is HALT):
// LD dst, src between any two of B,C,D,E,H,L,(HL),A. Reading or writing
// (HL) costs the usual one bus cycle; both ends can't be (HL) at once
// (that encoding is HALT).
func (c *CPU) ldRR(dst, src r8) {
	c.writeR8(dst, c.readR8(src))
}

// ldRImm8 implements LD r,d8 for any of the eight r8 destinations.
func (c *CPU) ldRImm8(dst r8) {
	n := c.fetch()
	c.writeR8(dst, n)
}

// ldR16Imm16 implements LD rr,d16 for BC/DE/HL/SP.
func (c *CPU) ldR16Imm16(dst r16) {
	c.writeR16(dst, c.fetch16())
}

// ldIndBCA is 0x02: LD (BC),A.
func (c *CPU) ldIndBCA() { c.writeTick(c.BC(), c.a) }

// ldIndDEA is 0x12: LD (DE),A.
func (c *CPU) ldIndDEA() { c.writeTick(c.DE(), c.a) }

// ldAIndBC is 0x0A: LD A,(BC).
func (c *CPU) ldAIndBC() { c.a = c.readTick(c.BC()) }

// ldAIndDE is 0x1A: LD A,(DE).
func (c *CPU) ldAIndDE() { c.a = c.readTick(c.DE()) }

// ldIndHLIncA is 0x22: LD (HL+),A.
func (c *CPU) ldIndHLIncA() {
	hl := c.HL()
	c.writeTick(hl, c.a)
	c.setHL(hl + 1)
}

// ldIndHLDecA is 0x32: LD (HL-),A.
func (c *CPU) ldIndHLDecA() {
	hl := c.HL()
	c.writeTick(hl, c.a)
	c.setHL(hl - 1)
}

// ldAIndHLInc is 0x2A: LD A,(HL+).
func (c *CPU) ldAIndHLInc() {
	hl := c.HL()
	c.a = c.readTick(hl)
	c.setHL(hl + 1)
}

// ldAIndHLDec is 0x3A: LD A,(HL-).
func (c *CPU) ldAIndHLDec() {
	hl := c.HL()
	c.a = c.readTick(hl)
	c.setHL(hl - 1)
}

// ldIndA16SP is 0x08: LD (a16),SP — 5 cycles: fetch op (already spent),
// fetch imm low, fetch imm high, write SP low, write SP high.
func (c *CPU) ldIndA16SP() {
	addr := c.fetch16()
	c.writeTick(addr, uint8(c.sp))
	c.writeTick(addr+1, uint8(c.sp>>8))
}

// ldhIndA8A is 0xE0: LDH (a8),A.
func (c *CPU) ldhIndA8A() {
	off := c.fetch()
	c.writeTick(0xFF00+uint16(off), c.a)
}

// ldhAIndA8 is 0xF0: LDH A,(a8).
func (c *CPU) ldhAIndA8() {
	off := c.fetch()
	c.a = c.readTick(0xFF00 + uint16(off))
}

// ldIndCA is 0xE2: LD (C),A.
func (c *CPU) ldIndCA() {
	c.writeTick(0xFF00+uint16(c.c), c.a)
}

// ldAIndC is 0xF2: LD A,(C).
func (c *CPU) ldAIndC() {
	c.a = c.readTick(0xFF00 + uint16(c.c))
}

// ldIndA16A is 0xEA: LD (a16),A.
func (c *CPU) ldIndA16A() {
	addr := c.fetch16()
	c.writeTick(addr, c.a)
}

// ldAIndA16 is 0xFA: LD A,(a16).
func (c *CPU) ldAIndA16() {
	addr := c.fetch16()
	c.a = c.readTick(addr)
}

// ldHLSPOffset is 0xF8: LD HL,SP+e8 — 3 cycles: fetch op, fetch imm,
// internal. Flags follow the unsigned low-byte add rule in alu16.go.
func (c *CPU) ldHLSPOffset() {
	e8 := int8(c.fetch())
	result := c.addSPSigned(e8)
	c.internalTick()
	c.setHL(result)
}

// ldSPHL is 0xF9: LD SP,HL — 2 cycles: fetch op, internal.
func (c *CPU) ldSPHL() {
	c.internalTick()
	c.sp = c.HL()
}
