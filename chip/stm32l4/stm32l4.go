//go:build !baremetal || stm32l4

// Package stm32l4 declares the STM32L4 peripherals handled here.
package stm32l4

import (
	"stm32periph-go/can"
	"stm32periph-go/rcc"
)

const Family = "stm32l4"

const (
	rccBase   = 0x4002_1000
	apb1rstr1 = rccBase + 0x38
	apb1enr1  = rccBase + 0x58

	can1Base = 0x4000_6400
)

var CAN = can.NewBxVariant(Family, "CAN1", can1Base, 14, rcc.Sequence{
	Enable: []rcc.Bit{{Addr: apb1enr1, Mask: 1 << 25, Name: "CAN1EN"}},
	Reset:  rcc.Bit{Addr: apb1rstr1, Mask: 1 << 25, Name: "CAN1RST"},
})
