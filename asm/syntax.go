package asm

// SyntaxKind tags a Syntax node (spec.md §3.3). Go has no recursive sum
// type with shared structural fields, so — per spec.md §9 Design Notes —
// Syntax is one struct with a Kind tag and the union of every variant's
// fields; the evaluator matches on Kind.
type SyntaxKind int

const (
	SynBlock SyntaxKind = iota
	SynLabel
	SynData
	SynDef
	SynMacro
	SynMacroCall
	SynShift
	SynRepeat
	SynIf
	SynInclude
	SynIncbin
	SynAssert
	SynOrg
	SynInstruction
	SynAddress
	SynRegister
	SynRegPtr
	SynBinaryExp
	SynUnaryExp
	SynNArg
	SynIdentifier
	SynNumber
	SynArgument
	SynString
)

// regRef names a register operand the way the assembler parses and
// encodes it: which of A/B/C/D, and its width selector. Kept local to
// asm (not cpu.RegRef) because the assembler does not import cpu —
// CORE A and CORE B are independent producer/consumer halves connected
// only by the binary format (spec.md §2).
type regRef struct {
	which uint8 // 0=A,1=B,2=C,3=D
	size  uint8 // 0=32,1=16,2=8H,3=8L
}

func (r regRef) nibble() uint8 { return r.which<<2 | r.size }

// Syntax is the untyped AST node (spec.md §3.3). Only the fields a given
// Kind uses are populated; the rest stay zero.
type Syntax struct {
	Kind SyntaxKind
	Pos  Position

	Left, Right, Cond, Count *Syntax
	Body                     []*Syntax

	Op  string     // operator spelling (BinaryExp/UnaryExp), or ORG sub-keyword
	Tag KeywordTag // directive/instruction keyword
	Num float64    // Number literal
	Str string     // String/Identifier/Label text
	Arg int        // Argument(n) index

	Reg   regRef   // Register/RegPtr operand
	Cond2 condCode // branch condition, when this node is an Instruction
}

// condCode mirrors cpu's Cond nibble values without importing cpu.
type condCode uint8

const (
	condNone condCode = iota
	condZ
	condNZ
	condC
	condNC
)

// Clone deep-copies a Syntax subtree. Macro definitions store a clone of
// their body (spec.md §9 Design Notes: "deep copy rather than
// reference-counted sharing") so each call site's expansion is an
// independent tree nobody else mutates.
func (s *Syntax) Clone() *Syntax {
	if s == nil {
		return nil
	}
	c := *s
	c.Left = s.Left.Clone()
	c.Right = s.Right.Clone()
	c.Cond = s.Cond.Clone()
	c.Count = s.Count.Clone()
	if s.Body != nil {
		c.Body = make([]*Syntax, len(s.Body))
		for i, n := range s.Body {
			c.Body[i] = n.Clone()
		}
	}
	return &c
}
