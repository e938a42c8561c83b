package cpu

// execBranch handles JPB, JMP, CALL, RET, RETI, RST, and JPS — all
// sharing opcode family 0x00, distinguished by X (see opcodes.go).
func (c *CPU) execBranch(op uint16) bool {
	x := loX(op)
	y := loY(op)
	switch x {
	case 0x1: // JPB rel
		rel, ok := c.fetchByte()
		if !ok {
			return false
		}
		if !Cond(y).satisfied(c.Flags) {
			return true
		}
		target := c.PC + uint32(int32(int8(rel)))
		return c.setPC(target)

	case 0x2: // JMP addr[,cond]
		addr, ok := c.fetchDword()
		if !ok {
			return false
		}
		if !Cond(y).satisfied(c.Flags) {
			return true
		}
		return c.setPC(addr)

	case 0x4: // CALL addr[,cond]
		addr, ok := c.fetchDword()
		if !ok {
			return false
		}
		if !Cond(y).satisfied(c.Flags) {
			return true
		}
		ret := c.PC
		if !c.pushCall(ret) {
			return false
		}
		return c.setPC(addr)

	case 0x5: // RET[cond]
		if !Cond(y).satisfied(c.Flags) {
			return true
		}
		ret, ok := c.popCall()
		if !ok {
			return false
		}
		return c.setPC(ret)

	case 0x6: // RETI
		ret, ok := c.popCall()
		if !ok {
			return false
		}
		c.IME = true
		return c.setPC(ret)

	case 0x7: // RST vec
		ret := c.PC
		if !c.pushCall(ret) {
			return false
		}
		return c.setPC(RSTVector(y))

	case 0x8: // JPS
		return c.setPC(CodeBegin)

	default:
		c.setError(ErrInvalidOpcode)
		return false
	}
}
