package cpu

// executeCB dispatches the 0xCB-prefixed table. Unlike the primary
// table, the CB space is a true regular grid with no illegal entries:
// bits 6-7 select the operation group (rotate/shift/swap, BIT, RES,
// SET), bits 3-5 select either the sub-operation (group 0) or the bit
// index (groups 1-3), and bits 0-2 select the r8 operand. Every one of
// the 256 byte values resolves to exactly one of these, so the
// dispatch is exhaustive by construction rather than by an explicit
// 256-arm switch.
//
// The (HL) operand costs one extra read cycle for every group, and —
// for every group except BIT, which never writes its operand back — a
// further internal tick plus one extra write cycle. BIT b,(HL) is 3
// cycles total (2 fetches + 1 read); the others are 5 (2 fetches + read
// + internal + write).
func (c *CPU) executeCB(opcode uint8) error {
	group := opcode >> 6
	field := (opcode >> 3) & 0x07
	idx := r8(opcode & 0x07)

	if group == 1 { // BIT b, r
		v := c.readR8(idx)
		c.bit(field, v)
		return nil
	}

	v := c.readR8(idx)
	var result uint8
	switch group {
	case 0: // rotate/shift/swap, selected by field
		switch field {
		case 0:
			result = c.rlc(v)
		case 1:
			result = c.rrc(v)
		case 2:
			result = c.rl(v)
		case 3:
			result = c.rr(v)
		case 4:
			result = c.sla(v)
		case 5:
			result = c.sra(v)
		case 6:
			result = c.swap(v)
		default: // 7
			result = c.srl(v)
		}
	case 2: // RES b, r
		result = res(field, v)
	default: // 3: SET b, r
		result = set(field, v)
	}

	if idx == r8HLInd {
		c.internalTick()
	}
	c.writeR8(idx, result)
	return nil
}
