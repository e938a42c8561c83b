package cpu

// execMove handles LD/LDQ/LDH/ST/STQ/STH/MV (opcodes.go family 0x10-0x1B).
// Operand-form validation follows spec.md §4.5's bulleted rules verbatim:
// pointer-register forms require the pointer to carry the width the
// mnemonic promises (32 for LD, 16 for LDQ, 8 for LDH); mismatches signal
// INVALID_ARGUMENT without advancing PC past the already-fetched bytes.
func (c *CPU) execMove(op uint16) bool {
	dst := RegFromNibble(loX(op))
	ptr := RegFromNibble(loY(op))

	switch hiByte(op) {
	case hiByte(opLDimm32):
		imm, ok := c.fetchDword()
		if !ok {
			return false
		}
		c.Regs.Set(dst, imm)
		return true

	case hiByte(opLDaddr32):
		addr, ok := c.fetchDword()
		if !ok {
			return false
		}
		val, ok := c.readLE(addr, 4)
		if !ok {
			return false
		}
		c.Regs.Set(dst, val)
		return true

	case hiByte(opLDrptr32):
		if ptr.Size != Size32 {
			c.setError(ErrInvalidArgument)
			return false
		}
		val, ok := c.readLE(c.Regs.Get(ptr), 4)
		if !ok {
			return false
		}
		c.Regs.Set(dst, val)
		return true

	case hiByte(opLDQimm16):
		imm, ok := c.fetchWord()
		if !ok {
			return false
		}
		c.Regs.Set(dst, uint32(imm))
		return true

	case hiByte(opLDQrptr):
		if ptr.Size != Size16 {
			c.setError(ErrInvalidArgument)
			return false
		}
		val, ok := c.readLE(c.Regs.Get(ptr), 2)
		if !ok {
			return false
		}
		c.Regs.Set(dst, val)
		return true

	case hiByte(opLDHimm8):
		imm, ok := c.fetchByte()
		if !ok {
			return false
		}
		c.Regs.Set(dst, uint32(imm))
		return true

	case hiByte(opLDHrptr):
		if ptr.Size != Size8H && ptr.Size != Size8L {
			c.setError(ErrInvalidArgument)
			return false
		}
		val, ok := c.readLE(c.Regs.Get(ptr), 1)
		if !ok {
			return false
		}
		c.Regs.Set(dst, val)
		return true

	case hiByte(opSTaddr32):
		addr, ok := c.fetchDword()
		if !ok {
			return false
		}
		return c.writeLE(addr, 4, c.Regs.Get(dst))

	case hiByte(opSTrptr32):
		if ptr.Size != Size32 {
			c.setError(ErrInvalidArgument)
			return false
		}
		return c.writeLE(c.Regs.Get(ptr), 4, c.Regs.Get(dst))

	case hiByte(opSTQrptr):
		if ptr.Size != Size16 {
			c.setError(ErrInvalidArgument)
			return false
		}
		return c.writeLE(c.Regs.Get(ptr), 2, c.Regs.Get(dst))

	case hiByte(opSTHrptr):
		if ptr.Size != Size8H && ptr.Size != Size8L {
			c.setError(ErrInvalidArgument)
			return false
		}
		return c.writeLE(c.Regs.Get(ptr), 1, c.Regs.Get(dst))

	case hiByte(opMV):
		src := ptr
		if src.Size != dst.Size {
			c.setError(ErrInvalidArgument)
			return false
		}
		c.Regs.Set(dst, c.Regs.Get(src))
		return true

	default:
		c.setError(ErrInvalidOpcode)
		return false
	}
}

// readLE reads n little-endian bytes (n in 1,2,4) starting at addr.
func (c *CPU) readLE(addr uint32, n int) (uint32, bool) {
	var v uint32
	for i := 0; i < n; i++ {
		b, ok := c.readByte(addr + uint32(i))
		if !ok {
			return 0, false
		}
		v |= uint32(b) << (8 * uint(i))
	}
	return v, true
}

func (c *CPU) writeLE(addr uint32, n int, val uint32) bool {
	for i := 0; i < n; i++ {
		if !c.writeByte(addr+uint32(i), uint8(val>>(8*uint(i)))) {
			return false
		}
	}
	return true
}
