package cpu

// execShift handles SLA, SRA, SRL, RL, RLC, RR, RRC (opcodes.go family
// 0x60-0x66), all unary. Per spec.md §4.1: C receives the bit shifted
// out, Z is per result, N=H=0.
func (c *CPU) execShift(op uint16) bool {
	reg := RegFromNibble(loX(op))
	width := uint(widthOf(reg.Size))
	mask := maskOf(reg.Size)
	msbBit := uint32(1) << (width - 1)
	v := c.Regs.Get(reg)

	var result uint32
	var carryOut bool

	switch hiByte(op) {
	case hiByte(opSLA):
		carryOut = v&msbBit != 0
		result = (v << 1) & mask
	case hiByte(opSRA):
		carryOut = v&1 != 0
		sign := v & msbBit
		result = ((v >> 1) | sign) & mask
	case hiByte(opSRL):
		carryOut = v&1 != 0
		result = (v >> 1) & mask
	case hiByte(opRL):
		carryOut = v&msbBit != 0
		var cin uint32
		if c.Flags.C {
			cin = 1
		}
		result = ((v << 1) | cin) & mask
	case hiByte(opRLC):
		carryOut = v&msbBit != 0
		var wrap uint32
		if carryOut {
			wrap = 1
		}
		result = ((v << 1) | wrap) & mask
	case hiByte(opRR):
		carryOut = v&1 != 0
		var cin uint32
		if c.Flags.C {
			cin = msbBit
		}
		result = ((v >> 1) | cin) & mask
	case hiByte(opRRC):
		carryOut = v&1 != 0
		var wrap uint32
		if carryOut {
			wrap = msbBit
		}
		result = ((v >> 1) | wrap) & mask
	default:
		c.setError(ErrInvalidOpcode)
		return false
	}

	c.Regs.Set(reg, result)
	c.Flags.Z = result == 0
	c.Flags.N = false
	c.Flags.H = false
	c.Flags.C = carryOut
	return true
}
