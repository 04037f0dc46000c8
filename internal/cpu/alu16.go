package cpu

// 16-bit arithmetic. INC/DEC rr and ADD HL,rr each spend one internal
// tick beyond their register-only cost; the signed SP forms have their
// own idiosyncratic flag rule.

// inc16 and dec16 affect no flags; the caller is responsible for the
// internal tick the real silicon spends walking the low/high byte pair.
func inc16(v uint16) uint16 { return v + 1 }
func dec16(v uint16) uint16 { return v - 1 }

// incRR implements INC rr (0x03/0x13/0x23/0x33): one internal tick
// between reading the old value and writing the incremented one.
func (c *CPU) incRR(idx r16) {
	v := c.readR16(idx)
	c.internalTick()
	c.writeR16(idx, inc16(v))
}

// decRR implements DEC rr (0x0B/0x1B/0x2B/0x3B).
func (c *CPU) decRR(idx r16) {
	v := c.readR16(idx)
	c.internalTick()
	c.writeR16(idx, dec16(v))
}

// addHLRR implements ADD HL,rr (0x09/0x19/0x29/0x39): one internal tick
// between the register read and the flag-affecting add.
func (c *CPU) addHLRR(idx r16) {
	n := c.readR16(idx)
	hl := c.HL()
	c.internalTick()
	c.setHL(c.addHL16(hl, n))
}

// addSPE8 implements ADD SP,e8 (0xE8): 4 cycles — fetch op, fetch imm,
// internal, internal. Its second trailing cycle is an internal tick per
// the SST-driven deviation from gbops, not a bus write.
func (c *CPU) addSPE8() {
	e8 := int8(c.fetch())
	result := c.addSPSigned(e8)
	c.internalTick()
	c.internalTick()
	c.sp = result
}

// addHL16 computes HL + n, setting H/C from bit 11/15 carries and
// leaving Z untouched (ADD HL,rr never affects Z).
func (c *CPU) addHL16(hl, n uint16) uint16 {
	result := uint32(hl) + uint32(n)
	h := (hl&0x0FFF)+(n&0x0FFF) > 0x0FFF
	c.setFlag(flagN, false)
	c.setFlag(flagH, h)
	c.setFlag(flagC, result > 0xFFFF)
	return uint16(result)
}

// addSPSigned implements the shared arithmetic behind ADD SP,e8 and LD
// HL,SP+e8: the offset is sign-extended for the 16-bit result, but H/C
// are computed on the unsigned low-byte addition of SP and the raw
// immediate byte. Z and N are always cleared.
func (c *CPU) addSPSigned(e8 int8) uint16 {
	sp := c.sp
	offset := uint16(int16(e8))
	spLow := uint8(sp)
	imm := uint8(e8)
	h := (spLow&0x0F)+(imm&0x0F) > 0x0F
	carry := uint16(spLow)+uint16(imm) > 0xFF
	c.setFlags(false, false, h, carry)
	return sp + offset
}
