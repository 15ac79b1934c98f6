//go:build !baremetal || stm32g0

// Package stm32g0 declares the STM32G0 peripherals handled here.
package stm32g0

import (
	"stm32periph-go/can"
	"stm32periph-go/rcc"
)

const Family = "stm32g0"

const (
	rccBase  = 0x4002_1000
	apbrstr1 = rccBase + 0x2C
	apbenr1  = rccBase + 0x3C

	fdcan1Base = 0x4000_6400
	sramCAN    = 0x4000_B400
)

// CAN is FDCAN1. The FDCAN2 clock and reset bits are shared with FDCAN1.
var CAN = can.NewFDVariant(Family, "FDCAN1", fdcan1Base, sramCAN, rcc.Sequence{
	Enable: []rcc.Bit{{Addr: apbenr1, Mask: 1 << 12, Name: "FDCANEN"}},
	Reset:  rcc.Bit{Addr: apbrstr1, Mask: 1 << 12, Name: "FDCANRST"},
})
