package cpu

// execStackOp handles PUSH/POP, both restricted to 32-bit registers
// (spec.md §4.5 "PUSH r, POP r: 32-bit registers only").
func (c *CPU) execStackOp(op uint16) bool {
	reg := RegFromNibble(loX(op))
	if reg.Size != Size32 {
		c.setError(ErrInvalidArgument)
		return false
	}
	switch hiByte(op) {
	case hiByte(opPUSH):
		return c.pushData(c.Regs.Get(reg))
	case hiByte(opPOP):
		val, ok := c.popData()
		if !ok {
			return false
		}
		c.Regs.Set(reg, val)
		return true
	default:
		c.setError(ErrInvalidOpcode)
		return false
	}
}
