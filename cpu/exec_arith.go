package cpu

// execArith handles INC, DEC, ADD, ADC, SUB, SBC, CMP (opcodes.go family
// 0x40-0x46). Flags follow the Sharp LR35902 convention spec.md §4.1
// names explicitly: Z iff result==0, N set for the subtraction family,
// H on nibble-carry out of bit (width-5) — bit 3 for 8-bit operands, bit
// 11 for 16-bit, generalised the same way for 32-bit — and C on a
// full-width carry/borrow. INC/DEC leave C untouched, matching the
// well-known LR35902 quirk the spec's phrasing invokes.
func (c *CPU) execArith(op uint16) bool {
	dst := RegFromNibble(loX(op))
	src := RegFromNibble(loY(op))

	switch hiByte(op) {
	case hiByte(opINC):
		savedC := c.Flags.C
		c.aluAdd(dst, 1, false)
		c.Flags.C = savedC
		return true
	case hiByte(opDEC):
		savedC := c.Flags.C
		c.aluSub(dst, 1, false, false)
		c.Flags.C = savedC
		return true
	case hiByte(opADD):
		c.aluAdd(dst, c.Regs.Get(src), false)
		return true
	case hiByte(opADC):
		c.aluAdd(dst, c.Regs.Get(src), true)
		return true
	case hiByte(opSUB):
		c.aluSub(dst, c.Regs.Get(src), false, false)
		return true
	case hiByte(opSBC):
		c.aluSub(dst, c.Regs.Get(src), true, false)
		return true
	case hiByte(opCMP):
		c.aluSub(dst, c.Regs.Get(src), false, true)
		return true
	default:
		c.setError(ErrInvalidOpcode)
		return false
	}
}

func halfCarryMask(width int) uint32 {
	return 1<<uint(width-4) - 1
}

func (c *CPU) aluAdd(dst RegRef, operand uint32, withCarry bool) {
	width := widthOf(dst.Size)
	mask := maskOf(dst.Size)
	a := c.Regs.Get(dst)
	var cin uint32
	if withCarry && c.Flags.C {
		cin = 1
	}
	hMask := halfCarryMask(width)
	h := (a&hMask)+(operand&hMask)+cin > hMask
	sum := uint64(a) + uint64(operand) + uint64(cin)
	result := uint32(sum) & mask
	c.Regs.Set(dst, result)
	c.Flags.Z = result == 0
	c.Flags.N = false
	c.Flags.H = h
	c.Flags.C = sum > uint64(mask)
}

func (c *CPU) aluSub(dst RegRef, operand uint32, withCarry, discard bool) {
	width := widthOf(dst.Size)
	mask := maskOf(dst.Size)
	a := c.Regs.Get(dst)
	var cin uint32
	if withCarry && c.Flags.C {
		cin = 1
	}
	hMask := halfCarryMask(width)
	h := (a & hMask) < (operand&hMask)+cin
	borrow := uint64(a) < uint64(operand)+uint64(cin)
	result := (uint32(uint64(a)-uint64(operand)-uint64(cin))) & mask
	if !discard {
		c.Regs.Set(dst, result)
	}
	c.Flags.Z = result == 0
	c.Flags.N = true
	c.Flags.H = h
	c.Flags.C = borrow
}
