package can

import (
	"stm32periph-go/periph"
	"stm32periph-go/rcc"
)

// BxVariant describes a bxCAN controller on one family.
type BxVariant struct {
	common
	banks uint8
}

// NewBxVariant is used by the chip packages to declare their controller.
func NewBxVariant(family, name string, regs uintptr, banks uint8, seq rcc.Sequence) BxVariant {
	return BxVariant{common: common{family: family, name: name, regs: regs, seq: seq}, banks: banks}
}

func (BxVariant) Driver() Driver { return BxCAN }

// NumFilterBanks is the filter bank count of this family.
func (v BxVariant) NumFilterBanks() uint8 { return v.banks }

func (v BxVariant) Open(blk periph.Block, rc *rcc.Controller) (Instance, error) {
	return NewBx(v, blk, rc)
}

// BxCan owns one bxCAN register block.
type BxCan struct {
	handle
	banks uint8
}

// NewBx enables and resets the controller and returns its handle.
func NewBx(v BxVariant, blk periph.Block, rc *rcc.Controller) (*BxCan, error) {
	if err := v.check("can.NewBx", blk, rc); err != nil {
		return nil, err
	}
	c := &BxCan{handle: handle{blk: blk, seq: v.seq, rc: rc}, banks: v.banks}
	c.Enable()
	return c, nil
}

func (*BxCan) Driver() Driver { return BxCAN }

func (c *BxCan) NumFilterBanks() uint8 { return c.banks }

// Master marks this instance as the filter-bank owner. Every single-instance
// family's controller is a master.
func (*BxCan) Master() {}

var (
	_ Instance       = (*BxCan)(nil)
	_ FilterOwner    = (*BxCan)(nil)
	_ MasterInstance = (*BxCan)(nil)
	_ Variant        = BxVariant{}
)
