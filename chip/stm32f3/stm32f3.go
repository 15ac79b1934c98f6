//go:build !baremetal || stm32f3

// Package stm32f3 declares the STM32F3 peripherals handled here.
package stm32f3

import (
	"stm32periph-go/can"
	"stm32periph-go/rcc"
)

const Family = "stm32f3"

const (
	rccBase  = 0x4002_1000
	apb1rstr = rccBase + 0x10
	apb1enr  = rccBase + 0x1C

	canBase = 0x4000_6400
)

// CAN is the single bxCAN controller.
var CAN = can.NewBxVariant(Family, "CAN", canBase, 28, rcc.Sequence{
	Enable: []rcc.Bit{{Addr: apb1enr, Mask: 1 << 25, Name: "CANEN"}},
	Reset:  rcc.Bit{Addr: apb1rstr, Mask: 1 << 25, Name: "CANRST"},
})
