package can

import (
	"testing"

	"github.com/notnil/canbus/canbus"
)

type banks uint8

func (b banks) NumFilterBanks() uint8 { return uint8(b) }

func TestFilterBankValidate(t *testing.T) {
	cases := []struct {
		name string
		f    FilterBank
		n    banks
		ok   bool
	}{
		{"last bank of 14", FilterBank{Index: 13}, 14, true},
		{"past 14", FilterBank{Index: 14}, 14, false},
		{"bank 27 of 28", FilterBank{Index: 27}, 28, true},
		{"std id too wide", FilterBank{ID: 0x800}, 28, false},
		{"ext id fits", FilterBank{ID: 0x1234_5678, Mask: 0x1FFF_FFFF, Extended: true}, 28, true},
		{"ext mask too wide", FilterBank{Mask: 0x2000_0000, Extended: true}, 28, false},
	}
	for _, c := range cases {
		err := c.f.Validate(c.n)
		if (err == nil) != c.ok {
			t.Fatalf("%s: err = %v", c.name, err)
		}
	}
}

func TestFilterBankMatches(t *testing.T) {
	f := FilterBank{ID: 0x120, Mask: 0x7F0}
	hit := canbus.Frame{ID: 0x12A, Len: 1}
	miss := canbus.Frame{ID: 0x13A, Len: 1}
	ext := canbus.Frame{ID: 0x12A, Extended: true}

	if !f.Matches(hit) {
		t.Fatal("0x12A should pass 0x120/0x7F0")
	}
	if f.Matches(miss) {
		t.Fatal("0x13A should not pass 0x120/0x7F0")
	}
	if f.Matches(ext) {
		t.Fatal("extended 0x12A shares no STID bits with 0x120")
	}
	if f.Matches(canbus.Frame{ID: 0x12A, Len: 9}) {
		t.Fatal("invalid frame passed")
	}
}

func TestFilterBankKinds(t *testing.T) {
	std := canbus.Frame{ID: 0x13A, Len: 1}
	ext := canbus.Frame{ID: 0x123_4567, Extended: true, Len: 8}
	rtr := canbus.Frame{ID: 0x7FF, RTR: true}
	// Top 11 bits equal 0x120: lands on the STID field of a standard bank.
	alias := canbus.Frame{ID: 0x120<<18 | 0x5, Extended: true}

	cases := []struct {
		name string
		f    FilterBank
		fr   canbus.Frame
		want bool
	}{
		{"accept all std", AcceptAll(0), std, true},
		{"accept all ext", AcceptAll(0), ext, true},
		{"accept all rtr", AcceptAll(0), rtr, true},
		{"std only std", StandardOnly(1), std, true},
		{"std only ext", StandardOnly(1), ext, false},
		{"ext only ext", ExtendedOnly(2), ext, true},
		{"ext only std", ExtendedOnly(2), std, false},
		{"std bank, ide unmasked, ext alias", FilterBank{ID: 0x120, Mask: 0x7FF}, alias, true},
		{"std bank, ide masked, ext alias", FilterBank{ID: 0x120, Mask: 0x7FF, MatchKind: true}, alias, false},
		{"ext bank exact", FilterBank{ID: 0x123_4567, Mask: maxExtID, Extended: true}, ext, true},
		{"ext bank other id", FilterBank{ID: 0x123_4566, Mask: maxExtID, Extended: true}, ext, false},
		{"ext bank std frame", FilterBank{ID: 0x123_4567, Mask: maxExtID, Extended: true}, std, false},
	}
	for _, c := range cases {
		if got := c.f.Matches(c.fr); got != c.want {
			t.Fatalf("%s: Matches = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestFilterBankRegisters(t *testing.T) {
	id, mask := FilterBank{ID: 0x7FF, Mask: 0x7FF, MatchKind: true}.Registers()
	if id != 0xFFE0_0000 || mask != 0xFFE0_0004 {
		t.Fatalf("std: id %#x mask %#x", id, mask)
	}
	id, mask = ExtendedOnly(0).Registers()
	if id != 0x4 || mask != 0x4 {
		t.Fatalf("ext only: id %#x mask %#x", id, mask)
	}
	if id, mask = AcceptAll(0).Registers(); id != 0 || mask != 0 {
		t.Fatalf("accept all: id %#x mask %#x", id, mask)
	}
}
