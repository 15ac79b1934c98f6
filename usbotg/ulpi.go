package usbotg

import (
	"fmt"

	"github.com/ardnew/softusb/pkg"

	"stm32periph-go/errcode"
	"stm32periph-go/gpio"
	"stm32periph-go/internal/halerr"
	"stm32periph-go/rcc"
)

// Signal is a ULPI control line routed to one of its alternate pins.
type Signal interface {
	Pin() gpio.Pin
}

// ULPIPins is the pin set wiring an external ULPI transceiver.
type ULPIPins struct {
	CLK  gpio.Pin
	STP  gpio.Pin
	DIR  Signal
	NXT  Signal
	Data [8]gpio.Pin
	AF   gpio.AF
}

// All lists every pin, data lines last.
func (p ULPIPins) All() []gpio.Pin {
	out := []gpio.Pin{p.CLK, p.STP, gpio.NoPin, gpio.NoPin}
	if p.DIR != nil {
		out[2] = p.DIR.Pin()
	}
	if p.NXT != nil {
		out[3] = p.NXT.Pin()
	}
	return append(out, p.Data[:]...)
}

// Validate checks that every line is routed to a distinct valid pin.
func (p ULPIPins) Validate() error {
	seen := make(map[gpio.Pin]bool, 12)
	for i, pin := range p.All() {
		if !pin.Valid() {
			return errcode.New(errcode.UnknownPin, "usbotg.ULPIPins",
				fmt.Sprintf("line %d unrouted", i), halerr.ErrUnknownPin)
		}
		if seen[pin] {
			return errcode.New(errcode.InvalidParams, "usbotg.ULPIPins",
				pin.String()+" used twice", nil)
		}
		seen[pin] = true
	}
	return nil
}

// ULPIInstance describes a core driven through an external ULPI PHY.
type ULPIInstance struct {
	Instance
}

// NewULPIInstance is used by the chip packages. seq must include the ULPI
// clock enable.
func NewULPIInstance(family, name string, layout Layout, seq rcc.Sequence) ULPIInstance {
	return ULPIInstance{Instance: NewInstance(family, name, layout, seq)}
}

func (ULPIInstance) PhyType() PhyType { return PhyExternalHighSpeed }

func (i ULPIInstance) Open(s Set, hclk uint32, pins ULPIPins, rc *rcc.Controller) (Peripheral, error) {
	return NewULPI(i, s, hclk, pins, rc)
}

// ULPI owns an OTG core wired to an external high-speed PHY.
type ULPI struct {
	USB
	pins ULPIPins
}

// NewULPI wires a core and its PHY pins. No register is written until Enable.
func NewULPI(inst ULPIInstance, s Set, hclk uint32, pins ULPIPins, rc *rcc.Controller) (*ULPI, error) {
	if err := pins.Validate(); err != nil {
		return nil, err
	}
	u, err := wire("usbotg.NewULPI", inst.Instance, s, hclk, rc)
	if err != nil {
		return nil, err
	}
	return &ULPI{USB: *u, pins: pins}, nil
}

func (*ULPI) PhyType() PhyType { return PhyExternalHighSpeed }

func (u *ULPI) Pins() ULPIPins { return u.pins }

// Enable clocks the core and the ULPI interface and resets the core.
func (u *ULPI) Enable() {
	u.rc.Bring(u.seq)
	pkg.LogDebug(pkg.ComponentHAL, "usb enable", "instance", u.name, "hclk", u.hclk,
		"phy", PhyExternalHighSpeed.String())
}

var (
	_ Peripheral = (*ULPI)(nil)
	_ Variant    = ULPIInstance{}
)
