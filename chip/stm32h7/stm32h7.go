//go:build !baremetal || stm32h7

// Package stm32h7 declares the STM32H7 (RM0433) peripherals handled here:
// FDCAN1 and both OTG cores, plus the ULPI routing of OTG1.
package stm32h7

import (
	"stm32periph-go/can"
	"stm32periph-go/rcc"
	"stm32periph-go/usbotg"
)

const Family = "stm32h7"

const (
	rccBase   = 0x5802_4400
	ahb1rstr  = rccBase + 0x080
	apb1hrstr = rccBase + 0x094
	ahb1enr   = rccBase + 0x0D8
	apb1henr  = rccBase + 0x0EC

	pwrBase = 0x5802_4800
	pwrCR3  = pwrBase + 0x0C

	fdcan1Base = 0x4000_A000
	msgRAM     = 0x4000_AC00

	otg1Base = 0x4004_0000
	otg2Base = 0x4008_0000
)

// Clock/reset and supply bits.
var (
	FDCANEN  = rcc.Bit{Addr: apb1henr, Mask: 1 << 8, Name: "FDCANEN"}
	FDCANRST = rcc.Bit{Addr: apb1hrstr, Mask: 1 << 8, Name: "FDCANRST"}

	USB1OTGEN  = rcc.Bit{Addr: ahb1enr, Mask: 1 << 25, Name: "USB1OTGEN"}
	USB1ULPIEN = rcc.Bit{Addr: ahb1enr, Mask: 1 << 26, Name: "USB1ULPIEN"}
	USB2OTGEN  = rcc.Bit{Addr: ahb1enr, Mask: 1 << 27, Name: "USB2OTGEN"}
	USB1OTGRST = rcc.Bit{Addr: ahb1rstr, Mask: 1 << 25, Name: "USB1OTGRST"}
	USB2OTGRST = rcc.Bit{Addr: ahb1rstr, Mask: 1 << 27, Name: "USB2OTGRST"}
	USB33DEN   = rcc.Bit{Addr: pwrCR3, Mask: 1 << 24, Name: "USB33DEN"}
)

// CAN is FDCAN1.
// TODO: declare FDCAN2 (0x4000_A400); it shares FDCANEN/FDCANRST with FDCAN1.
var CAN = can.NewFDVariant(Family, "FDCAN1", fdcan1Base, msgRAM, rcc.Sequence{
	Enable: []rcc.Bit{FDCANEN},
	Reset:  FDCANRST,
})

func otgLayout(base uintptr) usbotg.Layout {
	return usbotg.Layout{Global: base, Device: base + 0x800, PwrClk: base + 0xE00}
}

// USB1 is OTG1_HS on its internal PHY.
var USB1 = usbotg.NewInstance(Family, "OTG1_HS", otgLayout(otg1Base), rcc.Sequence{
	Pre:    []rcc.Bit{USB33DEN},
	Enable: []rcc.Bit{USB1OTGEN},
	Reset:  USB1OTGRST,
})

// USB2 is OTG2_HS on its internal PHY.
var USB2 = usbotg.NewInstance(Family, "OTG2_HS", otgLayout(otg2Base), rcc.Sequence{
	Pre:    []rcc.Bit{USB33DEN},
	Enable: []rcc.Bit{USB2OTGEN},
	Reset:  USB2OTGRST,
})

// USB1ULPI is OTG1_HS driven through an external ULPI PHY. The PHY supplies
// its own 3.3 V rail, so the USB33 detector is left alone.
var USB1ULPI = usbotg.NewULPIInstance(Family, "OTG1_HS", otgLayout(otg1Base), rcc.Sequence{
	Enable: []rcc.Bit{USB1OTGEN, USB1ULPIEN},
	Reset:  USB1OTGRST,
})

// USBInstances maps configuration names to cores.
var USBInstances = map[string]usbotg.Variant{
	"usb1":      USB1,
	"usb2":      USB2,
	"usb1_ulpi": USB1ULPI,
}
