package rcc

import (
	"testing"

	"stm32periph-go/internal/reg"
)

const (
	enr  = 0x4002_3840
	rstr = 0x4002_3820
	cr3  = 0x5802_480C
)

func canSeq() Sequence {
	return Sequence{
		Enable: []Bit{{Addr: enr, Mask: 1 << 25, Name: "CAN1EN"}},
		Reset:  Bit{Addr: rstr, Mask: 1 << 25, Name: "CAN1RST"},
	}
}

func TestBringOrderAndFootprint(t *testing.T) {
	s := reg.NewSim()
	s.Poke(enr, 1<<0) // unrelated clock already on
	c := New(s)

	c.Bring(canSeq())

	w := s.Writes()
	if len(w) != 3 {
		t.Fatalf("got %d writes, want 3: %v", len(w), w)
	}
	if w[0].Addr != enr || w[0].Set() != 1<<25 || w[0].Cleared() != 0 {
		t.Fatalf("write 0 = %v, want enable bit 25", w[0])
	}
	if w[1].Addr != rstr || w[1].Set() != 1<<25 || w[1].Cleared() != 0 {
		t.Fatalf("write 1 = %v, want reset assert", w[1])
	}
	if w[2].Addr != rstr || w[2].Cleared() != 1<<25 || w[2].Set() != 0 {
		t.Fatalf("write 2 = %v, want reset release", w[2])
	}
	if got := s.Peek(enr); got != 1<<0|1<<25 {
		t.Fatalf("enable register = %#x, unrelated bit disturbed", got)
	}
	if !c.Enabled(canSeq()) {
		t.Fatal("Enabled() = false after Bring")
	}
}

func TestBringPreBitsComeFirst(t *testing.T) {
	s := reg.NewSim()
	c := New(s)
	seq := canSeq()
	seq.Pre = []Bit{{Addr: cr3, Mask: 1 << 24, Name: "USB33DEN"}}

	c.Bring(seq)

	w := s.Writes()
	if len(w) != 4 || w[0].Addr != cr3 || w[0].Set() != 1<<24 {
		t.Fatalf("writes = %v, want supply bit first", w)
	}
}

func TestBringIsIdempotent(t *testing.T) {
	once, twice := reg.NewSim(), reg.NewSim()
	New(once).Bring(canSeq())
	c := New(twice)
	c.Bring(canSeq())
	c.Bring(canSeq())

	for _, a := range []uintptr{enr, rstr} {
		if once.Peek(a) != twice.Peek(a) {
			t.Fatalf("register %#x: once=%#x twice=%#x", a, once.Peek(a), twice.Peek(a))
		}
	}
	if !c.Enabled(canSeq()) {
		t.Fatal("not enabled after repeated Bring")
	}
}

func TestEnabledAndDisable(t *testing.T) {
	s := reg.NewSim()
	c := New(s)
	if c.Enabled(canSeq()) {
		t.Fatal("Enabled() before Bring")
	}
	c.Bring(canSeq())
	s.Poke(rstr, 1<<25) // held in reset by someone else
	if c.Enabled(canSeq()) {
		t.Fatal("Enabled() while reset asserted")
	}
	s.Poke(rstr, 0)
	c.Disable(canSeq())
	if s.Peek(enr)&(1<<25) != 0 {
		t.Fatal("clock still enabled after Disable")
	}
}

func TestBringWithoutResetBit(t *testing.T) {
	s := reg.NewSim()
	New(s).Bring(Sequence{Enable: []Bit{{Addr: enr, Mask: 1, Name: "X"}}})
	if n := len(s.Writes()); n != 1 {
		t.Fatalf("got %d writes, want 1", n)
	}
}
