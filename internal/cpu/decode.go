package cpu

// execute dispatches the non-prefixed opcode space. The decode table is
// exhaustive over 0x00-0xFF (0xCB itself never reaches this function —
// Step intercepts it and hands the second byte to executeCB instead).
//
// The two fully regular blocks — LD r,r' (0x40-0x7F, less 0x76 which is
// HALT) and the ALU row (0x80-0xBF) — are each 64 opcodes differing
// only in which r8 operands they name, so they're decoded by bit
// position rather than spelled out as 64 near-identical switch arms.
// Everything else keeps one explicit case per opcode.
func (c *CPU) execute(opcode uint8) error {
	if opcode >= 0x40 && opcode <= 0x7F && opcode != 0x76 {
		dst := r8((opcode >> 3) & 0x07)
		src := r8(opcode & 0x07)
		c.ldRR(dst, src)
		return nil
	}
	if opcode >= 0x80 && opcode <= 0xBF {
		op := (opcode >> 3) & 0x07
		src := r8(opcode & 0x07)
		c.applyALUOp(op, c.readR8(src))
		return nil
	}

	switch opcode {
	case 0x00:
		c.nop()
	case 0x01:
		c.ldR16Imm16(r16BC)
	case 0x02:
		c.ldIndBCA()
	case 0x03:
		c.incRR(r16BC)
	case 0x04:
		c.incR8(r8B)
	case 0x05:
		c.decR8(r8B)
	case 0x06:
		c.ldRImm8(r8B)
	case 0x07:
		c.rlca()
	case 0x08:
		c.ldIndA16SP()
	case 0x09:
		c.addHLRR(r16BC)
	case 0x0A:
		c.ldAIndBC()
	case 0x0B:
		c.decRR(r16BC)
	case 0x0C:
		c.incR8(r8C)
	case 0x0D:
		c.decR8(r8C)
	case 0x0E:
		c.ldRImm8(r8C)
	case 0x0F:
		c.rrca()

	case 0x10:
		c.stop()
	case 0x11:
		c.ldR16Imm16(r16DE)
	case 0x12:
		c.ldIndDEA()
	case 0x13:
		c.incRR(r16DE)
	case 0x14:
		c.incR8(r8D)
	case 0x15:
		c.decR8(r8D)
	case 0x16:
		c.ldRImm8(r8D)
	case 0x17:
		c.rla()
	case 0x18:
		c.jr()
	case 0x19:
		c.addHLRR(r16DE)
	case 0x1A:
		c.ldAIndDE()
	case 0x1B:
		c.decRR(r16DE)
	case 0x1C:
		c.incR8(r8E)
	case 0x1D:
		c.decR8(r8E)
	case 0x1E:
		c.ldRImm8(r8E)
	case 0x1F:
		c.rra()

	case 0x20:
		c.jrConditional(condNZ)
	case 0x21:
		c.ldR16Imm16(r16HL)
	case 0x22:
		c.ldIndHLIncA()
	case 0x23:
		c.incRR(r16HL)
	case 0x24:
		c.incR8(r8H)
	case 0x25:
		c.decR8(r8H)
	case 0x26:
		c.ldRImm8(r8H)
	case 0x27:
		c.daa()
	case 0x28:
		c.jrConditional(condZ)
	case 0x29:
		c.addHLRR(r16HL)
	case 0x2A:
		c.ldAIndHLInc()
	case 0x2B:
		c.decRR(r16HL)
	case 0x2C:
		c.incR8(r8L)
	case 0x2D:
		c.decR8(r8L)
	case 0x2E:
		c.ldRImm8(r8L)
	case 0x2F:
		c.cpl()

	case 0x30:
		c.jrConditional(condNC)
	case 0x31:
		c.ldR16Imm16(r16SP)
	case 0x32:
		c.ldIndHLDecA()
	case 0x33:
		c.incRR(r16SP)
	case 0x34:
		c.incR8(r8HLInd)
	case 0x35:
		c.decR8(r8HLInd)
	case 0x36:
		c.ldRImm8(r8HLInd)
	case 0x37:
		c.scf()
	case 0x38:
		c.jrConditional(condC)
	case 0x39:
		c.addHLRR(r16SP)
	case 0x3A:
		c.ldAIndHLDec()
	case 0x3B:
		c.decRR(r16SP)
	case 0x3C:
		c.incR8(r8A)
	case 0x3D:
		c.decR8(r8A)
	case 0x3E:
		c.ldRImm8(r8A)
	case 0x3F:
		c.ccf()

	case 0x76:
		c.halt()

	case 0xC0:
		c.retConditional(condNZ)
	case 0xC1:
		c.pop(stackBC)
	case 0xC2:
		c.jpConditional(condNZ)
	case 0xC3:
		c.jp()
	case 0xC4:
		c.callConditional(condNZ)
	case 0xC5:
		c.push(stackBC)
	case 0xC6:
		c.aluImm(0)
	case 0xC7:
		c.rst(0x00)
	case 0xC8:
		c.retConditional(condZ)
	case 0xC9:
		c.ret()
	case 0xCA:
		c.jpConditional(condZ)
	case 0xCC:
		c.callConditional(condZ)
	case 0xCD:
		c.call()
	case 0xCE:
		c.aluImm(1)
	case 0xCF:
		c.rst(0x08)

	case 0xD0:
		c.retConditional(condNC)
	case 0xD1:
		c.pop(stackDE)
	case 0xD2:
		c.jpConditional(condNC)
	case 0xD3:
		return IllegalOpcodeError{Opcode: opcode}
	case 0xD4:
		c.callConditional(condNC)
	case 0xD5:
		c.push(stackDE)
	case 0xD6:
		c.aluImm(2)
	case 0xD7:
		c.rst(0x10)
	case 0xD8:
		c.retConditional(condC)
	case 0xD9:
		c.ret() // RETI: behaves as RET, IE re-enable is stubbed
	case 0xDA:
		c.jpConditional(condC)
	case 0xDB:
		return IllegalOpcodeError{Opcode: opcode}
	case 0xDC:
		c.callConditional(condC)
	case 0xDD:
		return IllegalOpcodeError{Opcode: opcode}
	case 0xDE:
		c.aluImm(3)
	case 0xDF:
		c.rst(0x18)

	case 0xE0:
		c.ldhIndA8A()
	case 0xE1:
		c.pop(stackHL)
	case 0xE2:
		c.ldIndCA()
	case 0xE3:
		return IllegalOpcodeError{Opcode: opcode}
	case 0xE4:
		return IllegalOpcodeError{Opcode: opcode}
	case 0xE5:
		c.push(stackHL)
	case 0xE6:
		c.aluImm(4)
	case 0xE7:
		c.rst(0x20)
	case 0xE8:
		c.addSPE8()
	case 0xE9:
		c.jpHL()
	case 0xEA:
		c.ldIndA16A()
	case 0xEB:
		return IllegalOpcodeError{Opcode: opcode}
	case 0xEC:
		return IllegalOpcodeError{Opcode: opcode}
	case 0xED:
		return IllegalOpcodeError{Opcode: opcode}
	case 0xEE:
		c.aluImm(5)
	case 0xEF:
		c.rst(0x28)

	case 0xF0:
		c.ldhAIndA8()
	case 0xF1:
		c.pop(stackAF)
	case 0xF2:
		c.ldAIndC()
	case 0xF3:
		c.di()
	case 0xF4:
		return IllegalOpcodeError{Opcode: opcode}
	case 0xF5:
		c.push(stackAF)
	case 0xF6:
		c.aluImm(6)
	case 0xF7:
		c.rst(0x30)
	case 0xF8:
		c.ldHLSPOffset()
	case 0xF9:
		c.ldSPHL()
	case 0xFA:
		c.ldAIndA16()
	case 0xFB:
		c.ei()
	case 0xFC:
		return IllegalOpcodeError{Opcode: opcode}
	case 0xFD:
		return IllegalOpcodeError{Opcode: opcode}
	case 0xFE:
		c.aluImm(7)
	case 0xFF:
		c.rst(0x38)

	default:
		return OpcodeNotImplementedError{Opcode: uint16(opcode)}
	}
	return nil
}
