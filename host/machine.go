// Package host provides the external collaborators the CPU core talks to
// through its bus contract (spec.md §1): a flat memory-mapped backing
// store honoring the fixed region table (spec.md §3.2), a program-header
// loader (spec.md §6.3), and a terminal MMIO device. Peripheral
// internals — PPU pixel fetch, APU mixing, RTC math — stay out of scope;
// only the bus contracts they'd plug into are implemented here.
package host

import (
	"github.com/tmbytecode/tmvm/cpu"
)

// ramWindowSize bounds each writable region's backing slice. The real
// memory map reserves far more address space than any demo program
// touches (DRAM alone spans 1.5GB); allocating the full range isn't
// needed to honor the bus contract, so each RAM region gets a modest
// window and addresses past it read back 0xFF / drop writes, the same
// as addresses in a genuinely unbacked page.
const ramWindowSize = 1 << 16

// Machine is a flat-memory cpu.Bus implementation: ROM content backs the
// Metadata/Restart/Interrupt/Code/DataROM regions, separate RAM windows
// back DRAM/XRAM/the two stacks/Quick RAM, and an I/O port table backs
// the top-of-address-space MMIO window. It is the smallest possible host
// emulator — enough to exercise cpu.CPU end to end in tests and in
// cmd/tmvmrun, not a full peripheral set.
type Machine struct {
	rom      []byte
	dram     []byte
	xram     []byte
	dstack   []byte
	cstack   []byte
	quickram []byte

	ports map[uint32]ioPort
}

type ioPort struct {
	read  func() uint8
	write func(uint8)
}

// NewMachine wraps a flat ROM image (as produced by the assembler, or
// read from a host.ProgramHeader-prefixed program file) starting at
// address 0.
func NewMachine(rom []byte) *Machine {
	return &Machine{
		rom:      rom,
		dram:     make([]byte, ramWindowSize),
		xram:     make([]byte, ramWindowSize),
		dstack:   make([]byte, ramWindowSize),
		cstack:   make([]byte, ramWindowSize),
		quickram: make([]byte, ramWindowSize),
		ports:    make(map[uint32]ioPort),
	}
}

// RegisterPort wires a device's read/write callbacks to one I/O address
// (spec.md §3.2's I/O region, rights "R-W per-port"). Devices such as
// TerminalDevice call this once per register they expose.
func (m *Machine) RegisterPort(addr uint32, read func() uint8, write func(uint8)) {
	m.ports[addr] = ioPort{read: read, write: write}
}

func windowOffset(slice []byte, addr, base uint32) (int, bool) {
	off := int(addr - base)
	if off < 0 || off >= len(slice) {
		return 0, false
	}
	return off, true
}

// Read implements cpu.Bus. Invalid or unbacked addresses return 0xFF
// (spec.md §6.1): the CPU itself enforces no permissions, so out-of-range
// reads from a backed region and reads from an entirely unmapped address
// are indistinguishable here, exactly as the contract allows.
func (m *Machine) Read(addr uint32) uint8 {
	switch {
	case addr <= cpu.DataROMEnd:
		if int(addr) < len(m.rom) {
			return m.rom[addr]
		}
		return 0xFF
	case addr >= cpu.DRAMBegin && addr <= cpu.DRAMEnd:
		if off, ok := windowOffset(m.dram, addr, cpu.DRAMBegin); ok {
			return m.dram[off]
		}
	case addr >= cpu.XRAMBegin && addr <= cpu.XRAMEnd:
		if off, ok := windowOffset(m.xram, addr, cpu.XRAMBegin); ok {
			return m.xram[off]
		}
	case addr >= cpu.DStackBegin && addr <= cpu.DStackEnd:
		if off, ok := windowOffset(m.dstack, addr, cpu.DStackBegin); ok {
			return m.dstack[off]
		}
	case addr >= cpu.CStackBegin && addr <= cpu.CStackEnd:
		if off, ok := windowOffset(m.cstack, addr, cpu.CStackBegin); ok {
			return m.cstack[off]
		}
	case addr >= cpu.QuickRAMBegin && addr <= cpu.QuickRAMEnd:
		if off, ok := windowOffset(m.quickram, addr, cpu.QuickRAMBegin); ok {
			return m.quickram[off]
		}
	case addr >= cpu.IOBegin:
		if p, ok := m.ports[addr]; ok && p.read != nil {
			return p.read()
		}
	}
	return 0xFF
}

// Write implements cpu.Bus. Writes to ROM regions and to unbacked or
// unregistered addresses are silently dropped, matching real hardware's
// read-only/unmapped-page behavior.
func (m *Machine) Write(addr uint32, val uint8) {
	switch {
	case addr <= cpu.DataROMEnd:
		return
	case addr >= cpu.DRAMBegin && addr <= cpu.DRAMEnd:
		if off, ok := windowOffset(m.dram, addr, cpu.DRAMBegin); ok {
			m.dram[off] = val
		}
	case addr >= cpu.XRAMBegin && addr <= cpu.XRAMEnd:
		if off, ok := windowOffset(m.xram, addr, cpu.XRAMBegin); ok {
			m.xram[off] = val
		}
	case addr >= cpu.DStackBegin && addr <= cpu.DStackEnd:
		if off, ok := windowOffset(m.dstack, addr, cpu.DStackBegin); ok {
			m.dstack[off] = val
		}
	case addr >= cpu.CStackBegin && addr <= cpu.CStackEnd:
		if off, ok := windowOffset(m.cstack, addr, cpu.CStackBegin); ok {
			m.cstack[off] = val
		}
	case addr >= cpu.QuickRAMBegin && addr <= cpu.QuickRAMEnd:
		if off, ok := windowOffset(m.quickram, addr, cpu.QuickRAMBegin); ok {
			m.quickram[off] = val
		}
	case addr >= cpu.IOBegin:
		if p, ok := m.ports[addr]; ok && p.write != nil {
			p.write(val)
		}
	}
}

// Tick implements cpu.Bus. This host carries no timing model of its own
// (cycle-exact peripheral emulation is an explicit Non-goal, spec.md §1),
// so every tick succeeds.
func (m *Machine) Tick(cycles uint32) bool {
	return true
}
