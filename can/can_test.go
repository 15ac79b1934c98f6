package can

import (
	"errors"
	"testing"

	"stm32periph-go/errcode"
	"stm32periph-go/internal/halerr"
	"stm32periph-go/internal/reg"
	"stm32periph-go/periph"
	"stm32periph-go/rcc"
)

const (
	regsAddr = 0x4000_6400
	enr      = 0x4002_3840
	rstr     = 0x4002_3820
)

var testSeq = rcc.Sequence{
	Enable: []rcc.Bit{{Addr: enr, Mask: 1 << 25, Name: "CAN1EN"}},
	Reset:  rcc.Bit{Addr: rstr, Mask: 1 << 25, Name: "CAN1RST"},
}

func setup(t *testing.T) (*reg.Sim, *rcc.Controller, *periph.Registry) {
	t.Helper()
	s := reg.NewSim()
	return s, rcc.New(s), periph.NewRegistry()
}

func TestNewBxBringsUpOnce(t *testing.T) {
	s, rc, r := setup(t)
	v := NewBxVariant("stm32f4", "CAN1", regsAddr, 28, testSeq)
	blk, _ := r.Take(regsAddr, "CAN1")

	c, err := NewBx(v, blk, rc)
	if err != nil {
		t.Fatalf("NewBx: %v", err)
	}
	if n := len(s.Writes()); n != 3 {
		t.Fatalf("got %d writes, want 3", n)
	}
	if c.Registers() != regsAddr || c.Name() != "CAN1" || c.Driver() != BxCAN {
		t.Fatalf("handle = %s %#x %v", c.Name(), c.Registers(), c.Driver())
	}
	if c.NumFilterBanks() != 28 {
		t.Fatalf("banks = %d", c.NumFilterBanks())
	}
	if !c.Enabled() {
		t.Fatal("not enabled after NewBx")
	}
}

func TestEnableIsRepeatable(t *testing.T) {
	s, rc, r := setup(t)
	blk, _ := r.Take(regsAddr, "CAN1")
	c, _ := NewBx(NewBxVariant("stm32f4", "CAN1", regsAddr, 28, testSeq), blk, rc)
	before := [2]uint32{s.Peek(enr), s.Peek(rstr)}

	c.Enable()
	c.Enable()

	if after := [2]uint32{s.Peek(enr), s.Peek(rstr)}; after != before {
		t.Fatalf("registers changed: %#x -> %#x", before, after)
	}
	if !c.Enabled() {
		t.Fatal("not enabled after repeated Enable")
	}
}

func TestNewFD(t *testing.T) {
	_, rc, r := setup(t)
	v := NewFDVariant("stm32h7", "FDCAN1", 0x4000_A000, 0x4000_AC00, testSeq)
	blk, _ := r.Take(0x4000_A000, "FDCAN1")
	c, err := NewFD(v, blk, rc)
	if err != nil {
		t.Fatalf("NewFD: %v", err)
	}
	if c.MessageRAM() != 0x4000_AC00 || c.Driver() != FDCAN {
		t.Fatalf("msg ram %#x driver %v", c.MessageRAM(), c.Driver())
	}
	var inst Instance = c
	if _, ok := inst.(FilterOwner); ok {
		t.Fatal("FDCAN must not report bxCAN filter banks")
	}
	if _, ok := inst.(MasterInstance); ok {
		t.Fatal("FDCAN must not carry the bxCAN master marker")
	}
}

func TestWrongBlockIsRejectedWithoutWrites(t *testing.T) {
	s, rc, r := setup(t)
	blk, _ := r.Take(0x4000_6800, "CAN2")
	_, err := NewBx(NewBxVariant("stm32f4", "CAN1", regsAddr, 28, testSeq), blk, rc)
	if errcode.Of(err) != errcode.BlockMismatch || !errors.Is(err, halerr.ErrBlockMismatch) {
		t.Fatalf("err = %v", err)
	}
	if _, err := NewBx(NewBxVariant("stm32f4", "CAN1", regsAddr, 28, testSeq), periph.Block{}, rc); !errors.Is(err, halerr.ErrInvalidBlock) {
		t.Fatalf("zero block err = %v", err)
	}
	good, _ := r.Take(regsAddr, "CAN1")
	if _, err := NewFD(NewFDVariant("stm32h7", "FDCAN1", regsAddr, 0x4000_AC00, testSeq), good, nil); errcode.Of(err) != errcode.InvalidParams {
		t.Fatalf("nil controller err = %v", err)
	}
	if n := len(s.Writes()); n != 0 {
		t.Fatalf("rejected construction wrote %d registers", n)
	}
}

func TestVariantOpen(t *testing.T) {
	_, rc, r := setup(t)
	var v Variant = NewBxVariant("stm32l4", "CAN1", regsAddr, 14, testSeq)
	blk, _ := r.Take(v.Registers(), v.Name())
	inst, err := v.Open(blk, rc)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	fo, ok := inst.(FilterOwner)
	if !ok || fo.NumFilterBanks() != 14 {
		t.Fatalf("Open returned %T", inst)
	}
}

func TestDriverString(t *testing.T) {
	if BxCAN.String() != "bxcan" || FDCAN.String() != "fdcan" || Driver(0).String() != "unknown" {
		t.Fatal("Driver.String mapping incorrect")
	}
}
