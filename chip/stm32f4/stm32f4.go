//go:build !baremetal || stm32f4

// Package stm32f4 declares the STM32F4 peripherals handled here.
package stm32f4

import (
	"stm32periph-go/can"
	"stm32periph-go/rcc"
)

const Family = "stm32f4"

const (
	rccBase  = 0x4002_3800
	apb1rstr = rccBase + 0x20
	apb1enr  = rccBase + 0x40

	can1Base = 0x4000_6400
)

// CAN is CAN1, the master of the 28 shared filter banks.
// TODO: declare CAN2 (0x4000_6800, bit 26) with a slave bank split.
var CAN = can.NewBxVariant(Family, "CAN1", can1Base, 28, rcc.Sequence{
	Enable: []rcc.Bit{{Addr: apb1enr, Mask: 1 << 25, Name: "CAN1EN"}},
	Reset:  rcc.Bit{Addr: apb1rstr, Mask: 1 << 25, Name: "CAN1RST"},
})
