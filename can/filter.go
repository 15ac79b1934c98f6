package can

import (
	"fmt"

	"github.com/notnil/canbus/canbus"

	"stm32periph-go/errcode"
)

const (
	maxStdID = 0x7FF
	maxExtID = 0x1FFF_FFFF
)

// Filter register layout in 32-bit mask mode: STID[10:0] at 31:21,
// EXID[17:0] at 20:3, IDE at 2, RTR at 1.
const (
	stdShift = 21
	extShift = 3
	ideBit   = 1 << 2
	rtrBit   = 1 << 1
)

// FrameFilter reports whether a frame passes.
type FrameFilter func(canbus.Frame) bool

// FilterBank describes one hardware acceptance filter in identifier/mask
// form. Programming it is the driver's job; this type checks that a bank
// fits the instance and predicts which frames the hardware will pass.
//
// ID and Mask are in the width selected by Extended. The IDE bit is only
// compared when MatchKind is set; otherwise frames of both kinds are
// compared on the register layout, as the hardware does.
type FilterBank struct {
	Index     uint8
	ID        uint32
	Mask      uint32
	Extended  bool
	MatchKind bool
}

// Validate checks the bank index against owner and the identifier width.
func (f FilterBank) Validate(owner FilterOwner) error {
	if n := owner.NumFilterBanks(); f.Index >= n {
		return errcode.New(errcode.InvalidParams, "can.FilterBank",
			fmt.Sprintf("bank %d out of range (have %d)", f.Index, n), nil)
	}
	limit := uint32(maxStdID)
	if f.Extended {
		limit = maxExtID
	}
	if f.ID > limit || f.Mask > limit {
		return errcode.New(errcode.InvalidParams, "can.FilterBank",
			fmt.Sprintf("id %#x / mask %#x wider than %#x", f.ID, f.Mask, limit), nil)
	}
	return nil
}

// Registers returns the FR1 (identifier) and FR2 (mask) words of the bank.
func (f FilterBank) Registers() (id, mask uint32) {
	if f.Extended {
		id, mask = f.ID<<extShift|ideBit, f.Mask<<extShift
	} else {
		id, mask = f.ID<<stdShift, f.Mask<<stdShift
	}
	if f.MatchKind {
		mask |= ideBit
	}
	return id, mask
}

// Accepts returns the frame predicate equivalent to this bank.
func (f FilterBank) Accepts() FrameFilter {
	id, mask := f.Registers()
	return func(fr canbus.Frame) bool {
		if fr.Validate() != nil {
			return false
		}
		return (frameWord(fr)^id)&mask == 0
	}
}

// Matches reports whether fr would pass this bank.
func (f FilterBank) Matches(fr canbus.Frame) bool { return f.Accepts()(fr) }

func frameWord(fr canbus.Frame) uint32 {
	var w uint32
	if fr.Extended {
		w = fr.ID<<extShift | ideBit
	} else {
		w = fr.ID << stdShift
	}
	if fr.RTR {
		w |= rtrBit
	}
	return w
}

// AcceptAll is the bank most drivers install first: zero identifier, zero
// mask, every frame of either kind.
func AcceptAll(index uint8) FilterBank {
	return FilterBank{Index: index}
}

// StandardOnly passes every standard frame and no extended one.
func StandardOnly(index uint8) FilterBank {
	return FilterBank{Index: index, MatchKind: true}
}

// ExtendedOnly passes every extended frame and no standard one.
func ExtendedOnly(index uint8) FilterBank {
	return FilterBank{Index: index, Extended: true, MatchKind: true}
}
