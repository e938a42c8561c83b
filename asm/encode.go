package asm

// encodeInstruction composes a 16-bit opcode from the mnemonic's base
// value plus operand nibbles, then emits it little-endian followed by any
// immediate payload (spec.md §4.5 Instruction). Per-mnemonic validation
// mirrors cpu's executors exactly, since the two packages must agree on
// the wire format without sharing code (spec.md §2).
func (b *Builder) encodeInstruction(n *Syntax) error {
	switch n.Tag {
	case KwNOP, KwDI, KwEI, KwHALT, KwSTOP, KwDAA, KwSCF, KwCCF, KwCEC, KwRETI, KwJPS:
		b.emitWordLE(baseOf(n.Tag))
		return nil
	case KwSEC:
		b.emitWordLE(opSEC)
		return b.emitImmediate(n.Left, 1)
	case KwRST:
		v, err := b.eval(n.Left)
		if err != nil {
			return err
		}
		vec := uint16(v.IntPart()) & 0xF
		b.emitWordLE(opRST | vec)
		return nil
	case KwJPB:
		opcode := opJPB | uint16(condNibble(n.Cond2))
		b.emitWordLE(opcode)
		return b.emitSigned8(n.Left)
	case KwJMP:
		opcode := opJMP | uint16(condNibble(n.Cond2))
		b.emitWordLE(opcode)
		return b.emitResolvable(n.Left, 4)
	case KwCALL:
		opcode := opCALL | uint16(condNibble(n.Cond2))
		b.emitWordLE(opcode)
		return b.emitResolvable(n.Left, 4)
	case KwRET:
		opcode := opRET | uint16(condNibble(n.Cond2))
		b.emitWordLE(opcode)
		return nil
	case KwLD:
		return b.encodeLoad(n, opLDimm32, opLDaddr32, opLDrptr32, size32bits)
	case KwLDQ:
		return b.encodeLoad(n, opLDQimm16, 0, opLDQrptr, size16bits)
	case KwLDH:
		return b.encodeLoad(n, opLDHimm8, 0, opLDHrptr, size8bits)
	case KwST:
		return b.encodeStore(n, opSTaddr32, opSTrptr32, size32bits)
	case KwSTQ:
		return b.encodeStoreQuick(n, opSTQrptr, size16bits)
	case KwSTH:
		return b.encodeStoreQuick(n, opSTHrptr, size8bits)
	case KwMV:
		return b.encodeMV(n)
	case KwPUSH:
		return b.encodeStackOp(n, opPUSH)
	case KwPOP:
		return b.encodeStackOp(n, opPOP)
	case KwINC, KwDEC, KwNOT, KwSLA, KwSRA, KwSRL, KwRL, KwRLC, KwRR, KwRRC, KwSWAP:
		return b.encodeUnaryReg(n)
	case KwADD, KwADC, KwSUB, KwSBC, KwCMP, KwAND, KwOR, KwXOR:
		return b.encodeBinaryReg(n)
	case KwBIT, KwRES, KwSET:
		return b.encodeBitOp(n)
	default:
		return semErr(n.Pos, "unrecognized instruction tag %d", n.Tag)
	}
}

// regSizeClass distinguishes the three pointer widths LD/LDQ/LDH each
// require of a register-indirect source (spec.md §4.5 "source must be a
// 32/16/8-bit register").
type regSizeClass int

const (
	size32bits regSizeClass = iota
	size16bits
	size8bits
)

func sizeMatches(class regSizeClass, size uint8) bool {
	switch class {
	case size32bits:
		return size == 0
	case size16bits:
		return size == 1
	case size8bits:
		return size == 2 || size == 3
	}
	return false
}

func baseOf(tag KeywordTag) uint16 {
	switch tag {
	case KwNOP:
		return opNOP
	case KwDI:
		return opDI
	case KwEI:
		return opEI
	case KwHALT:
		return opHALT
	case KwSTOP:
		return opSTOP
	case KwDAA:
		return opDAA
	case KwSCF:
		return opSCF
	case KwCCF:
		return opCCF
	case KwCEC:
		return opCEC
	case KwRETI:
		return opRETI
	case KwJPS:
		return opJPS
	}
	return 0
}

func (b *Builder) emitSigned8(expr *Syntax) error {
	v, err := b.eval(expr)
	if err != nil {
		return err
	}
	b.emit(byte(int8(v.Num())))
	return nil
}

// encodeLoad handles LD/LDQ/LDH: the destination register always lives in
// the opcode's X nibble; the addressing mode (immediate, absolute
// address, register-indirect) selects the base word and, for the
// indirect form, the source pointer's nibble goes in Y.
func (b *Builder) encodeLoad(n *Syntax, immBase, addrBase, rptrBase uint16, class regSizeClass) error {
	dst, ok := regOperand(n.Left)
	if !ok {
		return semErr(n.Pos, "destination must be a register")
	}
	x := uint16(dst.nibble()) << 4
	switch n.Right.Kind {
	case SynAddress:
		if addrBase == 0 {
			return semErr(n.Pos, "this mnemonic has no absolute-address form")
		}
		b.emitWordLE(addrBase | x)
		return b.emitResolvable(n.Right.Right, 4)
	case SynRegPtr:
		if !sizeMatches(class, n.Right.Reg.size) {
			return semErr(n.Pos, "pointer register has the wrong width")
		}
		b.emitWordLE(rptrBase | x | uint16(n.Right.Reg.nibble()))
		return nil
	default:
		b.emitWordLE(immBase | x)
		width := 4
		if class == size16bits {
			width = 2
		} else if class == size8bits {
			width = 1
		}
		return b.emitImmediate(n.Right, width)
	}
}

func (b *Builder) emitImmediate(expr *Syntax, width int) error {
	if width != 1 {
		return b.emitResolvable(expr, width)
	}
	v, err := b.eval(expr)
	if err != nil {
		return err
	}
	b.emit(byte(v.IntPart()))
	return nil
}

// encodeStore mirrors encodeLoad for ST (which has both an absolute and a
// register-indirect form); the source register lives in X either way.
func (b *Builder) encodeStore(n *Syntax, addrBase, rptrBase uint16, class regSizeClass) error {
	src, ok := regOperand(n.Left)
	if !ok {
		return semErr(n.Pos, "source must be a register")
	}
	x := uint16(src.nibble()) << 4
	switch n.Right.Kind {
	case SynAddress:
		b.emitWordLE(addrBase | x)
		return b.emitResolvable(n.Right.Right, 4)
	case SynRegPtr:
		if !sizeMatches(class, n.Right.Reg.size) {
			return semErr(n.Pos, "pointer register has the wrong width")
		}
		b.emitWordLE(rptrBase | x | uint16(n.Right.Reg.nibble()))
		return nil
	default:
		return semErr(n.Pos, "ST requires an address or register-pointer destination")
	}
}

// encodeStoreQuick handles STQ/STH, which only have a register-indirect
// form (spec.md §4.5: "ST mirrors [LD] in reverse").
func (b *Builder) encodeStoreQuick(n *Syntax, rptrBase uint16, class regSizeClass) error {
	src, ok := regOperand(n.Left)
	if !ok {
		return semErr(n.Pos, "source must be a register")
	}
	if n.Right.Kind != SynRegPtr {
		return semErr(n.Pos, "expected a register-pointer destination")
	}
	if !sizeMatches(class, n.Right.Reg.size) {
		return semErr(n.Pos, "pointer register has the wrong width")
	}
	x := uint16(src.nibble()) << 4
	b.emitWordLE(rptrBase | x | uint16(n.Right.Reg.nibble()))
	return nil
}

func (b *Builder) encodeMV(n *Syntax) error {
	dst, ok := regOperand(n.Left)
	if !ok {
		return semErr(n.Pos, "MV destination must be a register")
	}
	src, ok := regOperand(n.Right)
	if !ok {
		return semErr(n.Pos, "MV source must be a register")
	}
	if dst.size != src.size {
		return semErr(n.Pos, "MV requires equal-sized registers")
	}
	b.emitWordLE(opMV | uint16(dst.nibble())<<4 | uint16(src.nibble()))
	return nil
}

func (b *Builder) encodeStackOp(n *Syntax, base uint16) error {
	r, ok := regOperand(n.Left)
	if !ok {
		return semErr(n.Pos, "operand must be a register")
	}
	if r.size != 0 {
		return semErr(n.Pos, "PUSH/POP require a 32-bit register")
	}
	b.emitWordLE(base | uint16(r.nibble())<<4)
	return nil
}

func (b *Builder) encodeUnaryReg(n *Syntax) error {
	r, ok := regOperand(n.Left)
	if !ok {
		return semErr(n.Pos, "operand must be a register")
	}
	base := unaryBase(n.Tag)
	b.emitWordLE(base | uint16(r.nibble())<<4)
	return nil
}

func unaryBase(tag KeywordTag) uint16 {
	switch tag {
	case KwINC:
		return opINC
	case KwDEC:
		return opDEC
	case KwNOT:
		return opNOT
	case KwSLA:
		return opSLA
	case KwSRA:
		return opSRA
	case KwSRL:
		return opSRL
	case KwRL:
		return opRL
	case KwRLC:
		return opRLC
	case KwRR:
		return opRR
	case KwRRC:
		return opRRC
	case KwSWAP:
		return opSWAP
	}
	return 0
}

func (b *Builder) encodeBinaryReg(n *Syntax) error {
	dst, ok := regOperand(n.Left)
	if !ok {
		return semErr(n.Pos, "destination must be a register")
	}
	src, ok := regOperand(n.Right)
	if !ok {
		return semErr(n.Pos, "source must be a register")
	}
	base := binaryBase(n.Tag)
	b.emitWordLE(base | uint16(dst.nibble())<<4 | uint16(src.nibble()))
	return nil
}

func binaryBase(tag KeywordTag) uint16 {
	switch tag {
	case KwADD:
		return opADD
	case KwADC:
		return opADC
	case KwSUB:
		return opSUB
	case KwSBC:
		return opSBC
	case KwCMP:
		return opCMP
	case KwAND:
		return opAND
	case KwOR:
		return opOR
	case KwXOR:
		return opXOR
	}
	return 0
}

// encodeBitOp handles BIT/RES/SET, each `mnemonic n, r`: the register
// lives in X; the bit index (0..31) doesn't fit in a 4-bit nibble, so it
// follows as one immediate byte (spec.md §4.5 Design Notes).
func (b *Builder) encodeBitOp(n *Syntax) error {
	r, ok := regOperand(n.Right)
	if !ok {
		return semErr(n.Pos, "second operand must be a register")
	}
	idxVal, err := b.eval(n.Left)
	if err != nil {
		return err
	}
	base := binBitBase(n.Tag)
	b.emitWordLE(base | uint16(r.nibble())<<4)
	b.emit(byte(idxVal.IntPart()) & 0x1F)
	return nil
}

func binBitBase(tag KeywordTag) uint16 {
	switch tag {
	case KwBIT:
		return opBIT
	case KwRES:
		return opRES
	case KwSET:
		return opSET
	}
	return 0
}

func regOperand(n *Syntax) (regRef, bool) {
	if n == nil || n.Kind != SynRegister {
		return regRef{}, false
	}
	return n.Reg, true
}
