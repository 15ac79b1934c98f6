// Package reg abstracts 32-bit memory-mapped registers.
//
// On baremetal builds registers are TinyGo volatile registers at fixed
// addresses. Everywhere else a Sim stands in for the address space.
package reg

// Register is the subset of runtime/volatile.Register32 the sequencer uses.
type Register interface {
	Get() uint32
	Set(value uint32)
	SetBits(mask uint32)
	ClearBits(mask uint32)
	HasBits(mask uint32) bool
}

// Mapper resolves an absolute address to a register.
type Mapper interface {
	At(addr uintptr) Register
}
