package cpu

// Bus is the host contract (spec.md §6.1). Hosts supply an implementation
// wiring memory, MMIO peripherals, and tick-driven side effects; the CPU
// never touches memory directly. Modelled as an interface rather than raw
// function pointers so a host can close over its own state (spec.md §9
// Design Notes, "Bus callbacks").
type Bus interface {
	// Read returns the byte at addr. Hosts return 0xFF for invalid
	// addresses and may additionally request an EC via the CPU's
	// SetErrorCode, but the bus itself never errors synchronously.
	Read(addr uint32) uint8

	// Write stores val at addr.
	Write(addr uint32, val uint8)

	// Tick advances the host by cycles bus cycles. Returning false
	// aborts execution with EC=HARDWARE_FAULT (spec.md §4.1).
	Tick(cycles uint32) bool
}
