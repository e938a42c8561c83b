package asm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func assembleBytes(t *testing.T, src string) []byte {
	t.Helper()
	lex := NewLexer("t.asm", src)
	p := NewParser(lex)
	root, err := p.ParseProgram()
	require.NoError(t, err)
	b := NewBuilder()
	err = b.Build(root)
	require.NoError(t, err)
	return b.rom
}

// Scenario 1 (spec.md §8): db "Hi",0 -> 48 69 00 00
func TestScenarioStringData(t *testing.T) {
	got := assembleBytes(t, `db "Hi",0`)
	require.Equal(t, []byte{0x48, 0x69, 0x00, 0x00}, got)
}

// Scenario 2: def x = 3 then dw x*2 -> 06 00
func TestScenarioDefineAndWord(t *testing.T) {
	got := assembleBytes(t, "def x = 3\ndw x*2\n")
	require.Equal(t, []byte{0x06, 0x00}, got)
}

// Scenario 3: loop: jmp loop -> opcode 20 00 then the 4-byte address of
// loop, which is codeBegin (0x0000_3000) since loop is the first byte
// emitted.
func TestScenarioSelfJump(t *testing.T) {
	got := assembleBytes(t, "loop: jmp loop\n")
	require.Equal(t, []byte{0x20, 0x00, 0x00, 0x30, 0x00, 0x00}, got)
}

// Scenario 4: macro M :: db \1, _NARG :: endm, called M $42,$43,$44 -> 42 03
func TestScenarioMacroArgAndNarg(t *testing.T) {
	src := "macro M\ndb \\1, _NARG\nendm\nM $42, $43, $44\n"
	got := assembleBytes(t, src)
	require.Equal(t, []byte{0x42, 0x03}, got)
}

// Scenario 5: repeat 3 :: db 0xAA :: endr -> AA AA AA
func TestScenarioRepeat(t *testing.T) {
	got := assembleBytes(t, "repeat 3\ndb 0xAA\nendr\n")
	require.Equal(t, []byte{0xAA, 0xAA, 0xAA}, got)
}

// Scenario 6: if 0 :: db 1 :: else :: db 2 :: endc -> 02
func TestScenarioIfElse(t *testing.T) {
	got := assembleBytes(t, "if 0\ndb 1\nelse\ndb 2\nendc\n")
	require.Equal(t, []byte{0x02}, got)
}

func TestBoundaryDBTruncationWarns(t *testing.T) {
	lex := NewLexer("t.asm", "db $100\n")
	p := NewParser(lex)
	root, err := p.ParseProgram()
	require.NoError(t, err)
	b := NewBuilder()
	require.NoError(t, b.Build(root))
	require.Equal(t, []byte{0x00}, b.rom)
	require.NotEmpty(t, b.Warnings)
}

func TestBoundaryPushNarrowRegisterFails(t *testing.T) {
	lex := NewLexer("t.asm", "push AW\n")
	p := NewParser(lex)
	root, err := p.ParseProgram()
	require.NoError(t, err)
	b := NewBuilder()
	err = b.Build(root)
	require.Error(t, err)
}

func TestBoundaryMacroDepthOverflow(t *testing.T) {
	src := "macro M\nM\nendm\nM\n"
	lex := NewLexer("t.asm", src)
	p := NewParser(lex)
	root, err := p.ParseProgram()
	require.NoError(t, err)
	b := NewBuilder()
	err = b.Build(root)
	require.Error(t, err)
}

func TestForwardLabelBackpatchesAllReferences(t *testing.T) {
	src := "jmp target\njmp target\ntarget: nop\n"
	got := assembleBytes(t, src)
	// two 6-byte JMP encodings, then a 2-byte NOP
	require.Len(t, got, 14)
	targetAddr := got[2:6]
	require.Equal(t, targetAddr, got[8:12])
}

// TestForwardLabelInsideExpressionBackpatches covers spec.md §4.5's
// Identifier rule for a forward label reference nested inside a larger
// expression (not just a bare operand): `dw loop+2` must still record a
// pending reference and patch in loop's real address once seen, instead
// of baking in address-computed-as-0.
func TestForwardLabelInsideExpressionBackpatches(t *testing.T) {
	got := assembleBytes(t, "dw loop+2\nloop: nop\n")
	// 2-byte DW slot, then a 2-byte NOP.
	require.Len(t, got, 4)
	want := uint16(codeBegin+2) + 2
	require.Equal(t, want, uint16(got[0])|uint16(got[1])<<8)
}

func TestRAMCursorReserveIdiom(t *testing.T) {
	lex := NewLexer("t.asm", "org ram 0\ndw 5\n")
	p := NewParser(lex)
	root, err := p.ParseProgram()
	require.NoError(t, err)
	b := NewBuilder()
	require.NoError(t, b.Build(root))
	require.Equal(t, uint32(dramBegin+10), b.ramCursor)
}

func TestDBEmitsOneBytePerOperand(t *testing.T) {
	got := assembleBytes(t, "db 1, 2, 3, 4, 5\n")
	require.Len(t, got, 5)
}

func TestSaveBinaryFailsOnUnresolvedLabel(t *testing.T) {
	lex := NewLexer("t.asm", "jmp nowhere\n")
	p := NewParser(lex)
	root, err := p.ParseProgram()
	require.NoError(t, err)
	b := NewBuilder()
	require.NoError(t, b.Build(root))
	err = b.SaveBinary(t.TempDir() + "/out.bin")
	require.Error(t, err)
}
