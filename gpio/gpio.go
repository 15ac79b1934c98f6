// Package gpio names STM32 port pins.
package gpio

import (
	"stm32periph-go/errcode"
	"stm32periph-go/internal/halerr"
)

// Pin identifies a port pin: port index in the high nibble, pin number in
// the low nibble. Port A is index 0.
type Pin uint8

// NoPin is the zero value; it is not a valid pin.
const NoPin Pin = 0xFF

const lastPort = 'K'

// P builds a pin from a port letter and number, e.g. P('C', 2).
func P(port byte, num uint8) Pin {
	if port < 'A' || port > lastPort || num > 15 {
		return NoPin
	}
	return Pin((port-'A')<<4 | num)
}

// Port returns the port letter.
func (p Pin) Port() byte { return 'A' + byte(p>>4) }

// Num returns the pin number within the port.
func (p Pin) Num() uint8 { return uint8(p) & 0x0F }

func (p Pin) Valid() bool { return p != NoPin && p.Port() <= lastPort }

func (p Pin) String() string {
	if !p.Valid() {
		return "P?"
	}
	n := p.Num()
	if n < 10 {
		return string([]byte{'P', p.Port(), '0' + n})
	}
	return string([]byte{'P', p.Port(), '1', '0' + n - 10})
}

// Parse reads a pin name such as "PC2" or "PB13".
func Parse(s string) (Pin, error) {
	bad := errcode.New(errcode.UnknownPin, "gpio.Parse", s, halerr.ErrUnknownPin)
	if len(s) < 3 || len(s) > 4 || s[0] != 'P' {
		return NoPin, bad
	}
	var n uint8
	for _, c := range []byte(s[2:]) {
		if c < '0' || c > '9' {
			return NoPin, bad
		}
		n = n*10 + (c - '0')
	}
	if len(s) == 4 && s[2] == '0' {
		return NoPin, bad
	}
	p := P(s[1], n)
	if !p.Valid() {
		return NoPin, bad
	}
	return p, nil
}

// AF is an alternate-function number.
type AF uint8
