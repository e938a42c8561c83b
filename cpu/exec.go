package cpu

// execute decodes op's family (high byte) and dispatches to the handler
// for that instruction group. Handlers fetch their own immediate operands
// and report false on a bus/tick failure partway through or on an invalid
// opcode or argument; in each case EC is now non-zero and the step loop
// reports Stop.
func (c *CPU) execute(op uint16) bool {
	switch hiByte(op) {
	case 0x00:
		return c.execControl(op)
	case 0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1A, 0x1B:
		return c.execMove(op)
	case 0x20, 0x21:
		return c.execStackOp(op)
	case 0x40, 0x41, 0x42, 0x43, 0x44, 0x45, 0x46:
		return c.execArith(op)
	case 0x50, 0x51, 0x52, 0x53:
		return c.execBitwise(op)
	case 0x60, 0x61, 0x62, 0x63, 0x64, 0x65, 0x66:
		return c.execShift(op)
	case 0x70, 0x71, 0x72, 0x73:
		return c.execBitOp(op)
	default:
		c.setError(ErrInvalidOpcode)
		return false
	}
}

func widthOf(sz RegSize) int {
	switch sz {
	case Size32:
		return 32
	case Size16:
		return 16
	default:
		return 8
	}
}

func maskOf(sz RegSize) uint32 {
	switch sz {
	case Size32:
		return 0xFFFFFFFF
	case Size16:
		return 0xFFFF
	default:
		return 0xFF
	}
}
