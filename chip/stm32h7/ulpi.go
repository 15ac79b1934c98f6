//go:build !baremetal || stm32h7

package stm32h7

import (
	"stm32periph-go/errcode"
	"stm32periph-go/gpio"
	"stm32periph-go/internal/halerr"
	"stm32periph-go/usbotg"
)

// AF10 carries OTG1_HS ULPI on every ULPI pin.
const AF10 gpio.AF = 10

// Fixed ULPI pins of OTG1_HS.
var (
	ULPICLK  = gpio.P('A', 5)
	ULPISTP  = gpio.P('C', 0)
	ULPIData = [8]gpio.Pin{
		gpio.P('A', 3), gpio.P('B', 0), gpio.P('B', 1), gpio.P('B', 10),
		gpio.P('B', 11), gpio.P('B', 12), gpio.P('B', 13), gpio.P('B', 5),
	}
)

// DirRoute says which pin carries ULPI DIR.
type DirRoute uint8

const (
	DirOnPC2 DirRoute = iota + 1
	DirOnPI11
)

// DirPin is the ULPI DIR line on PC2 or PI11.
type DirPin struct {
	route DirRoute
	pin   gpio.Pin
}

var (
	DirPC2  = DirPin{route: DirOnPC2, pin: gpio.P('C', 2)}
	DirPI11 = DirPin{route: DirOnPI11, pin: gpio.P('I', 11)}
)

// DirFrom selects the DIR route from its pin.
func DirFrom(p gpio.Pin) (DirPin, error) {
	switch p {
	case DirPC2.pin:
		return DirPC2, nil
	case DirPI11.pin:
		return DirPI11, nil
	}
	return DirPin{}, errcode.New(errcode.UnknownPin, "stm32h7.DirFrom", p.String(), halerr.ErrUnknownPin)
}

func (d DirPin) Pin() gpio.Pin {
	if d.route == 0 {
		return gpio.NoPin
	}
	return d.pin
}
func (d DirPin) Route() DirRoute { return d.route }

// NxtRoute says which pin carries ULPI NXT.
type NxtRoute uint8

const (
	NxtOnPC3 NxtRoute = iota + 1
	NxtOnPH4
)

// NxtPin is the ULPI NXT line on PC3 or PH4.
type NxtPin struct {
	route NxtRoute
	pin   gpio.Pin
}

var (
	NxtPC3 = NxtPin{route: NxtOnPC3, pin: gpio.P('C', 3)}
	NxtPH4 = NxtPin{route: NxtOnPH4, pin: gpio.P('H', 4)}
)

// NxtFrom selects the NXT route from its pin.
func NxtFrom(p gpio.Pin) (NxtPin, error) {
	switch p {
	case NxtPC3.pin:
		return NxtPC3, nil
	case NxtPH4.pin:
		return NxtPH4, nil
	}
	return NxtPin{}, errcode.New(errcode.UnknownPin, "stm32h7.NxtFrom", p.String(), halerr.ErrUnknownPin)
}

func (n NxtPin) Pin() gpio.Pin {
	if n.route == 0 {
		return gpio.NoPin
	}
	return n.pin
}
func (n NxtPin) Route() NxtRoute { return n.route }

// ULPIPins completes the OTG1_HS ULPI pin set around the chosen DIR and NXT
// routes.
func ULPIPins(dir DirPin, nxt NxtPin) usbotg.ULPIPins {
	return usbotg.ULPIPins{
		CLK:  ULPICLK,
		STP:  ULPISTP,
		DIR:  dir,
		NXT:  nxt,
		Data: ULPIData,
		AF:   AF10,
	}
}

// ULPIPinsFrom resolves DIR and NXT pins, e.g. from board configuration.
func ULPIPinsFrom(dir, nxt gpio.Pin) (usbotg.ULPIPins, error) {
	d, err := DirFrom(dir)
	if err != nil {
		return usbotg.ULPIPins{}, err
	}
	n, err := NxtFrom(nxt)
	if err != nil {
		return usbotg.ULPIPins{}, err
	}
	return ULPIPins(d, n), nil
}
