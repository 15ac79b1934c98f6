// Package can prepares on-chip CAN controllers for a driver library.
//
// Two controller generations exist: the frame-based bxCAN and the
// flexible-data-rate FDCAN. Each gets its own variant and handle type, so a
// family can only hand out the kind it actually has. Neither handle talks to
// the bus itself; the driver library owns all register traffic after
// construction.
package can

import (
	"fmt"

	"stm32periph-go/errcode"
	"stm32periph-go/internal/halerr"
	"stm32periph-go/periph"
	"stm32periph-go/rcc"
)

// Driver names the controller generation.
type Driver uint8

const (
	BxCAN Driver = iota + 1
	FDCAN
)

func (d Driver) String() string {
	switch d {
	case BxCAN:
		return "bxcan"
	case FDCAN:
		return "fdcan"
	default:
		return "unknown"
	}
}

// Instance is what every CAN driver needs: where the registers live and a
// bring-up callback it may invoke again during its own init.
type Instance interface {
	Name() string
	Driver() Driver
	Registers() uintptr
	Enable()
}

// FilterOwner reports the number of hardware acceptance filter banks.
type FilterOwner interface {
	NumFilterBanks() uint8
}

// MasterInstance marks a bxCAN instance that owns the filter banks.
type MasterInstance interface {
	Master()
}

// MessageRAMInstance reports where an FDCAN's message RAM starts.
type MessageRAMInstance interface {
	MessageRAM() uintptr
}

// Variant is the family-independent view of a CAN variant, used when the
// peripheral is chosen from runtime configuration.
type Variant interface {
	Family() string
	Name() string
	Driver() Driver
	Registers() uintptr
	Sequence() rcc.Sequence
	Open(blk periph.Block, rc *rcc.Controller) (Instance, error)
}

type common struct {
	family string
	name   string
	regs   uintptr
	seq    rcc.Sequence
}

func (c common) Family() string         { return c.family }
func (c common) Name() string           { return c.name }
func (c common) Registers() uintptr     { return c.regs }
func (c common) Sequence() rcc.Sequence { return c.seq }

func (c common) check(op string, blk periph.Block, rc *rcc.Controller) error {
	if rc == nil {
		return errcode.New(errcode.InvalidParams, op, c.name+": no clock controller", nil)
	}
	if !blk.Valid() {
		return errcode.New(errcode.InvalidParams, op, c.name, halerr.ErrInvalidBlock)
	}
	if blk.Addr() != c.regs {
		return errcode.New(errcode.BlockMismatch, op,
			fmt.Sprintf("%s wants %#08x, got %v", c.name, c.regs, blk), halerr.ErrBlockMismatch)
	}
	return nil
}

// handle is shared by both generations.
type handle struct {
	blk periph.Block
	seq rcc.Sequence
	rc  *rcc.Controller
}

// Block returns the owned register block.
func (h *handle) Block() periph.Block { return h.blk }

// Registers returns the register block base address.
func (h *handle) Registers() uintptr { return h.blk.Addr() }

// Name returns the register block name, e.g. "CAN1".
func (h *handle) Name() string { return h.blk.Name() }

// Enable reruns the clock/reset sequence. Safe to call any number of times.
func (h *handle) Enable() { h.rc.Bring(h.seq) }

// Enabled reports whether the peripheral is clocked and out of reset.
func (h *handle) Enabled() bool { return h.rc.Enabled(h.seq) }
