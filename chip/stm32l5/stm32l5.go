//go:build !baremetal || stm32l5

// Package stm32l5 declares the STM32L5 peripherals handled here.
package stm32l5

import (
	"stm32periph-go/can"
	"stm32periph-go/rcc"
)

const Family = "stm32l5"

const (
	rccBase   = 0x4002_1000
	apb1rstr2 = rccBase + 0x3C
	apb1enr2  = rccBase + 0x5C

	fdcan1Base = 0x4000_A400
	sramCAN    = 0x4000_AC00
)

var CAN = can.NewFDVariant(Family, "FDCAN1", fdcan1Base, sramCAN, rcc.Sequence{
	Enable: []rcc.Bit{{Addr: apb1enr2, Mask: 1 << 9, Name: "FDCAN1EN"}},
	Reset:  rcc.Bit{Addr: apb1rstr2, Mask: 1 << 9, Name: "FDCAN1RST"},
})
