//go:build baremetal

package reg

import (
	"runtime/volatile"
	"unsafe"
)

// MMIO maps addresses straight onto the peripheral bus.
type MMIO struct{}

func (MMIO) At(addr uintptr) Register {
	return (*volatile.Register32)(unsafe.Pointer(addr))
}

// Default returns the mapper for this build: real MMIO.
func Default() Mapper { return MMIO{} }
