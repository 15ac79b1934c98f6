package can

import (
	"stm32periph-go/periph"
	"stm32periph-go/rcc"
)

// FDVariant describes an FDCAN controller on one family.
type FDVariant struct {
	common
	msgRAM uintptr
}

// NewFDVariant is used by the chip packages to declare their controller.
func NewFDVariant(family, name string, regs, msgRAM uintptr, seq rcc.Sequence) FDVariant {
	return FDVariant{common: common{family: family, name: name, regs: regs, seq: seq}, msgRAM: msgRAM}
}

func (FDVariant) Driver() Driver { return FDCAN }

func (v FDVariant) MessageRAM() uintptr { return v.msgRAM }

func (v FDVariant) Open(blk periph.Block, rc *rcc.Controller) (Instance, error) {
	return NewFD(v, blk, rc)
}

// FDCan owns one FDCAN register block.
type FDCan struct {
	handle
	msgRAM uintptr
}

// NewFD enables and resets the controller and returns its handle.
func NewFD(v FDVariant, blk periph.Block, rc *rcc.Controller) (*FDCan, error) {
	if err := v.check("can.NewFD", blk, rc); err != nil {
		return nil, err
	}
	c := &FDCan{handle: handle{blk: blk, seq: v.seq, rc: rc}, msgRAM: v.msgRAM}
	c.Enable()
	return c, nil
}

func (*FDCan) Driver() Driver { return FDCAN }

// MessageRAM returns the base of the controller's message RAM.
func (c *FDCan) MessageRAM() uintptr { return c.msgRAM }

var (
	_ Instance           = (*FDCan)(nil)
	_ MessageRAMInstance = (*FDCan)(nil)
	_ Variant            = FDVariant{}
)
