package reg

import "testing"

func TestSimRecordsReadModifyWrite(t *testing.T) {
	s := NewSim()
	s.Poke(0x100, 0x0000_00F0)
	r := s.At(0x100)

	r.SetBits(1 << 1)
	r.ClearBits(1 << 4)
	if !r.HasBits(1 << 1) {
		t.Fatal("bit 1 not set")
	}
	if got := r.Get(); got != 0xE2 {
		t.Fatalf("value=%#x want 0xE2", got)
	}

	w := s.Writes()
	if len(w) != 2 {
		t.Fatalf("got %d writes, want 2: %v", len(w), w)
	}
	if w[0].Set() != 1<<1 || w[0].Cleared() != 0 {
		t.Fatalf("first write %v", w[0])
	}
	if w[1].Cleared() != 1<<4 || w[1].Set() != 0 {
		t.Fatalf("second write %v", w[1])
	}
}

func TestSimPokeAndResetLogAreSilent(t *testing.T) {
	s := NewSim()
	s.Poke(0x10, 7)
	if len(s.Writes()) != 0 {
		t.Fatal("Poke must not log")
	}
	s.At(0x10).Set(9)
	s.ResetLog()
	if len(s.Writes()) != 0 || s.Peek(0x10) != 9 {
		t.Fatalf("ResetLog: writes=%v value=%d", s.Writes(), s.Peek(0x10))
	}
}
