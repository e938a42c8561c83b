package cpu

// execControl handles family 0x00: system instructions (X=0, Y selects
// the mnemonic) and control-flow instructions (X selects the mnemonic,
// since there is no destination register to place there; see
// opcodes.go's encoding note).
func (c *CPU) execControl(op uint16) bool {
	x := loX(op)
	if x == 0 {
		return c.execSystem(op)
	}
	return c.execBranch(op)
}

func (c *CPU) execSystem(op uint16) bool {
	switch op {
	case opNOP:
		return true
	case opDI:
		c.IME = false
		c.imePending = false
		return true
	case opEI:
		c.imePending = true
		return true
	case opHALT:
		c.Halted = true
		return true
	case opSTOP:
		c.Stopped = true
		return true
	case opDAA:
		c.daa()
		return true
	case opSCF:
		c.Flags.C = true
		c.Flags.N = false
		c.Flags.H = false
		return true
	case opCCF:
		c.Flags.C = !c.Flags.C
		c.Flags.N = false
		c.Flags.H = false
		return true
	case opSEC:
		imm, ok := c.fetchByte()
		if !ok {
			return false
		}
		c.setError(ErrorCode(imm))
		c.Stopped = true
		return true
	case opCEC:
		c.EC = ErrNone
		return true
	default:
		c.setError(ErrInvalidOpcode)
		return false
	}
}

// daa implements decimal-adjust-accumulator per the Sharp LR35902
// convention referenced by spec.md §4.1's arithmetic flag rules. It
// operates on register A.
func (c *CPU) daa() {
	a := c.Regs.Get(RegRef{RegA, Size32})
	correction := uint32(0)
	carry := c.Flags.C
	if c.Flags.N {
		if c.Flags.H {
			correction |= 0x06
		}
		if carry {
			correction |= 0x60
		}
		a -= correction
	} else {
		if c.Flags.H || a&0xF > 0x9 {
			correction |= 0x06
		}
		if carry || a > 0x99 {
			correction |= 0x60
			carry = true
		}
		a += correction
	}
	a &= 0xFF
	c.Regs.Set(RegRef{RegA, Size32}, a)
	c.Flags.Z = a == 0
	c.Flags.H = false
	c.Flags.C = carry
}
