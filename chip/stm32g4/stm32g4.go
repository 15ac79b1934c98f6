//go:build !baremetal || stm32g4

// Package stm32g4 declares the STM32G4 peripherals handled here.
package stm32g4

import (
	"stm32periph-go/can"
	"stm32periph-go/rcc"
)

const Family = "stm32g4"

const (
	rccBase   = 0x4002_1000
	apb1rstr1 = rccBase + 0x38
	apb1enr1  = rccBase + 0x58

	fdcanBase = 0x4000_6400
	sramCAN   = 0x4000_A400
)

var CAN = can.NewFDVariant(Family, "FDCAN", fdcanBase, sramCAN, rcc.Sequence{
	Enable: []rcc.Bit{{Addr: apb1enr1, Mask: 1 << 25, Name: "FDCANEN"}},
	Reset:  rcc.Bit{Addr: apb1rstr1, Mask: 1 << 25, Name: "FDCANRST"},
})
