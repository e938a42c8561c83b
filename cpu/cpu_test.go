package cpu

import "testing"

// fakeBus is a sparse, map-backed Bus for tests — the address space is
// 4GB and no test needs more than a handful of live addresses.
type fakeBus struct {
	mem         map[uint32]uint8
	tickOK      bool
	ticks       uint32
	totalCycles uint32 // sum of every Tick call's cycles argument
	tickFail    int    // tick call number (1-indexed) that should fail; 0=never
}

func newFakeBus() *fakeBus {
	return &fakeBus{mem: make(map[uint32]uint8), tickOK: true}
}

func (b *fakeBus) Read(addr uint32) uint8 {
	return b.mem[addr]
}

func (b *fakeBus) Write(addr uint32, val uint8) {
	b.mem[addr] = val
}

func (b *fakeBus) Tick(cycles uint32) bool {
	b.ticks++
	b.totalCycles += cycles
	if b.tickFail != 0 && int(b.ticks) == b.tickFail {
		return false
	}
	return b.tickOK
}

func (b *fakeBus) writeWord(addr uint32, op uint16) {
	b.mem[addr] = uint8(op)
	b.mem[addr+1] = uint8(op >> 8)
}

func (b *fakeBus) writeDword(addr uint32, v uint32) {
	b.mem[addr] = uint8(v)
	b.mem[addr+1] = uint8(v >> 8)
	b.mem[addr+2] = uint8(v >> 16)
	b.mem[addr+3] = uint8(v >> 24)
}

// TestRegisterViewsPreserveUnrelatedBits checks spec.md §8's quantified
// invariant: writes through a narrower view leave the parent's other
// bits untouched.
func TestRegisterViewsPreserveUnrelatedBits(t *testing.T) {
	var r Registers
	r.Set(RegRef{RegA, Size32}, 0xAABBCCDD)
	r.Set(RegRef{RegA, Size8L}, 0x11)
	if got := r.Get(RegRef{RegA, Size32}); got != 0xAABBCC11 {
		t.Fatalf("Get(A) = 0x%08X, want 0xAABBCC11", got)
	}
	r.Set(RegRef{RegA, Size8H}, 0x22)
	if got := r.Get(RegRef{RegA, Size32}); got != 0xAABB2211 {
		t.Fatalf("Get(A) = 0x%08X, want 0xAABB2211", got)
	}
	r.Set(RegRef{RegA, Size16}, 0x3344)
	if got := r.Get(RegRef{RegA, Size32}); got != 0xAABB3344 {
		t.Fatalf("Get(A) = 0x%08X, want 0xAABB3344", got)
	}
}

func TestFlagsByteRoundTrip(t *testing.T) {
	f := Flags{Z: true, N: false, H: true, C: false}
	b := f.Byte()
	if b&0x0F != 0 {
		t.Fatalf("low nibble of flags byte = 0x%X, want 0", b&0x0F)
	}
	got := FlagsFromByte(b)
	if got != f {
		t.Fatalf("FlagsFromByte(Byte()) = %+v, want %+v", got, f)
	}
}

// TestStackPushPopRoundTrip checks spec.md §8: after a push then a
// matching pop, the popped value equals the pushed register value and DSP
// returns to its original value.
func TestStackPushPopRoundTrip(t *testing.T) {
	bus := newFakeBus()
	c := New(bus)
	c.Regs.Set(RegRef{RegA, Size32}, 0xCAFEF00D)
	dspBefore := c.DSP

	if !c.pushData(c.Regs.Get(RegRef{RegA, Size32})) {
		t.Fatal("pushData failed")
	}
	if c.DSP == dspBefore {
		t.Fatal("DSP did not move on push")
	}
	val, ok := c.popData()
	if !ok {
		t.Fatal("popData failed")
	}
	if val != 0xCAFEF00D {
		t.Fatalf("popData = 0x%08X, want 0xCAFEF00D", val)
	}
	if c.DSP != dspBefore {
		t.Fatalf("DSP after pop = 0x%08X, want 0x%08X", c.DSP, dspBefore)
	}
}

// TestPushInvalidArgumentOnNarrowRegister checks spec.md §8's boundary
// case: PUSH AW fails with INVALID_ARGUMENT.
func TestPushInvalidArgumentOnNarrowRegister(t *testing.T) {
	bus := newFakeBus()
	c := New(bus)
	op := uint16(opPUSH) | uint16(RegRef{RegA, Size16}.Nibble())<<4
	if c.execute(op) {
		t.Fatal("execute(PUSH AW) succeeded, want failure")
	}
	if c.EC != ErrInvalidArgument {
		t.Fatalf("EC = %s, want INVALID_ARGUMENT", c.EC)
	}
}

// TestCallStackOverflowBoundary checks spec.md §8: calling with CSP at
// CSTACK_BEGIN+3 signals CALL_STACK_OVERFLOW (the 4-byte push would
// cross below the region).
func TestCallStackOverflowBoundary(t *testing.T) {
	bus := newFakeBus()
	c := New(bus)
	c.CSP = CStackBegin + 3
	if c.pushCall(0x1234) {
		t.Fatal("pushCall at CSTACK_BEGIN+3 succeeded, want overflow")
	}
	if c.EC != ErrCallStackOverflow {
		t.Fatalf("EC = %s, want CALL_STACK_OVERFLOW", c.EC)
	}
}

// Macro-depth-33 overflow (spec.md §8) is an asm-package concern, not a
// cpu-package one; see TestBoundaryMacroDepthOverflow in
// asm/builder_test.go.

// TestJMPUnconditionalEncoding pins spec.md §8 scenario 3: an
// unconditional `jmp loop` emits opcode bytes `20 00` (little-endian
// word 0x0020) ahead of the 4-byte target address.
func TestJMPUnconditionalEncoding(t *testing.T) {
	if opJMP != 0x0020 {
		t.Fatalf("opJMP = 0x%04X, want 0x0020", opJMP)
	}
	bus := newFakeBus()
	c := New(bus)
	target := uint32(CodeBegin)
	bus.writeWord(c.PC, opJMP) // unconditional: Y=CondNone=0
	bus.writeDword(c.PC+2, target)

	if !c.Step() {
		t.Fatalf("Step() failed, EC=%s", c.EC)
	}
	if c.PC != target {
		t.Fatalf("PC after jmp = 0x%08X, want 0x%08X", c.PC, target)
	}
}

// TestEndToEndScenario7 reproduces spec.md §8 scenario 7:
// `LD AL, 0x05 :: INC AL :: SEC 0x00` runs to Stop with AL=6, EC=0.
func TestEndToEndScenario7(t *testing.T) {
	bus := newFakeBus()
	c := New(bus)
	al := RegRef{RegA, Size8L}

	addr := c.PC
	bus.writeWord(addr, opLDHimm8|uint16(al.Nibble())<<4)
	bus.mem[addr+2] = 0x05
	addr += 3
	bus.writeWord(addr, opINC|uint16(al.Nibble())<<4)
	addr += 2
	bus.writeWord(addr, opSEC)
	bus.mem[addr+2] = 0x00

	for i := 0; i < 3 && !c.Stopped; i++ {
		if !c.Step() && !c.Stopped {
			t.Fatalf("Step() %d failed unexpectedly, EC=%s", i, c.EC)
		}
	}

	if !c.Stopped {
		t.Fatal("CPU did not stop")
	}
	if got := c.Regs.Get(al); got != 6 {
		t.Fatalf("AL = %d, want 6", got)
	}
	if c.EC != ErrNone {
		t.Fatalf("EC = %s, want OK", c.EC)
	}
}

// TestHalfCarryOnBit3 checks spec.md §4.1: H is set only on a carry out
// of bit 3 for an 8-bit operand, not bit 2. AL=0x08 added to itself
// carries out of bit 3 (H=1); AL=0x04 added to itself sums to 0x08 but
// never carries past bit 3 (H=0).
func TestHalfCarryOnBit3(t *testing.T) {
	bus := newFakeBus()
	c := New(bus)
	al := RegRef{RegA, Size8L}

	c.Regs.Set(al, 0x08)
	bus.writeWord(c.PC, opADD|uint16(al.Nibble())<<4|uint16(al.Nibble()))
	if !c.Step() {
		t.Fatalf("Step() failed, EC=%s", c.EC)
	}
	if !c.Flags.H {
		t.Fatalf("AL=0x08+0x08: H = false, want true")
	}

	c.Reset()
	c.Regs.Set(al, 0x04)
	bus.writeWord(c.PC, opADD|uint16(al.Nibble())<<4|uint16(al.Nibble()))
	if !c.Step() {
		t.Fatalf("Step() failed, EC=%s", c.EC)
	}
	if c.Flags.H {
		t.Fatalf("AL=0x04+0x04: H = true, want false")
	}
}

// TestHaltWakesWithoutDispatchWhenIMEDisabled checks spec.md §4.2: an
// unmasked-but-IME-disabled interrupt wakes a halted CPU without
// dispatching to its vector.
func TestHaltWakesWithoutDispatchWhenIMEDisabled(t *testing.T) {
	bus := newFakeBus()
	c := New(bus)
	c.Halted = true
	c.IME = false
	c.IE = 0x01
	pcBefore := c.PC

	if !c.Step() {
		t.Fatalf("Step() failed, EC=%s", c.EC)
	}
	c.RequestInterrupt(0)
	if !c.Step() {
		t.Fatalf("Step() failed, EC=%s", c.EC)
	}
	if c.Halted {
		t.Fatal("Halted still true after matching IE&IF with IME=false")
	}
	if c.PC != pcBefore {
		t.Fatalf("PC moved to 0x%08X without IME, want unchanged 0x%08X", c.PC, pcBefore)
	}
}

// TestInterruptDispatchPushesPCAndClearsIME checks spec.md §4.2's
// dispatch sequence end to end.
func TestInterruptDispatchPushesPCAndClearsIME(t *testing.T) {
	bus := newFakeBus()
	c := New(bus)
	c.IME = true
	c.IE = 0x04
	c.RequestInterrupt(2)
	pcBefore := c.PC

	if !c.dispatchInterrupt() {
		t.Fatalf("dispatchInterrupt() failed, EC=%s", c.EC)
	}
	if c.IME {
		t.Fatal("IME still set after dispatch")
	}
	if c.IF&0x04 != 0 {
		t.Fatal("IF bit 2 still set after dispatch")
	}
	if c.PC != IntVector(2) {
		t.Fatalf("PC = 0x%08X, want interrupt vector 0x%08X", c.PC, IntVector(2))
	}
	ret, ok := c.popCall()
	if !ok || ret != pcBefore {
		t.Fatalf("call stack top = 0x%08X (ok=%v), want return address 0x%08X", ret, ok, pcBefore)
	}
}

// TestInterruptDispatchConsumesFiveCycles checks spec.md §4.2's "the
// entire sequence consumes 5 cycles" literally, via the bus's tick count.
func TestInterruptDispatchConsumesFiveCycles(t *testing.T) {
	bus := newFakeBus()
	c := New(bus)
	c.IME = true
	c.IE = 0x01
	c.RequestInterrupt(0)

	if !c.dispatchInterrupt() {
		t.Fatalf("dispatchInterrupt() failed, EC=%s", c.EC)
	}
	if bus.totalCycles != 5 {
		t.Fatalf("cycles consumed by dispatch = %d, want 5", bus.totalCycles)
	}
}

func TestEIDelaysIMEByOneInstruction(t *testing.T) {
	bus := newFakeBus()
	c := New(bus)
	bus.writeWord(c.PC, opEI)
	bus.writeWord(c.PC+2, opNOP)

	if !c.Step() {
		t.Fatal("Step() (EI) failed")
	}
	if c.IME {
		t.Fatal("IME set immediately after EI, want delayed by one instruction")
	}
	if !c.Step() {
		t.Fatal("Step() (NOP) failed")
	}
	if !c.IME {
		t.Fatal("IME not set after the instruction following EI")
	}
}
