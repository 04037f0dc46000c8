package cpu

// Rotate primitives. The accumulator forms (RLCA/RLA/RRCA/RRA) always
// clear Z regardless of the result; the CB-prefixed register/(HL) forms
// set Z from the result like every other CB bit operation.

func (c *CPU) rlc(v uint8) uint8 {
	carry := v&0x80 != 0
	result := v<<1 | v>>7
	c.setFlags(result == 0, false, false, carry)
	return result
}

func (c *CPU) rrc(v uint8) uint8 {
	carry := v&0x01 != 0
	result := v>>1 | v<<7
	c.setFlags(result == 0, false, false, carry)
	return result
}

func (c *CPU) rl(v uint8) uint8 {
	carry := v&0x80 != 0
	var in uint8
	if c.FlagC() {
		in = 1
	}
	result := v<<1 | in
	c.setFlags(result == 0, false, false, carry)
	return result
}

func (c *CPU) rr(v uint8) uint8 {
	carry := v&0x01 != 0
	var in uint8
	if c.FlagC() {
		in = 0x80
	}
	result := v>>1 | in
	c.setFlags(result == 0, false, false, carry)
	return result
}

// rlca is 0x07: RLCA, rotate A left, Z forced to 0.
func (c *CPU) rlca() {
	c.a = c.rlc(c.a)
	c.setFlag(flagZ, false)
}

// rrca is 0x0F: RRCA, rotate A right, Z forced to 0.
func (c *CPU) rrca() {
	c.a = c.rrc(c.a)
	c.setFlag(flagZ, false)
}

// rla is 0x17: RLA, rotate A left through carry, Z forced to 0.
func (c *CPU) rla() {
	c.a = c.rl(c.a)
	c.setFlag(flagZ, false)
}

// rra is 0x1F: RRA, rotate A right through carry, Z forced to 0.
func (c *CPU) rra() {
	c.a = c.rr(c.a)
	c.setFlag(flagZ, false)
}
