//go:build stm32h7

package platform

import (
	"stm32periph-go/board"
	"stm32periph-go/can"
	"stm32periph-go/chip/stm32h7"
	"stm32periph-go/periph"
	"stm32periph-go/rcc"
	"stm32periph-go/usbotg"
)

const Family = stm32h7.Family

// CAN is the controller handle type of this family.
type CAN = can.FDCan

// CANVariant describes this family's controller.
var CANVariant = stm32h7.CAN

// NewCAN enables and resets the controller in blk.
func NewCAN(blk periph.Block, rc *rcc.Controller) (*CAN, error) {
	return can.NewFD(CANVariant, blk, rc)
}

// NewUSB1 wires OTG1_HS on its internal PHY.
func NewUSB1(s usbotg.Set, hclk uint32, rc *rcc.Controller) (*usbotg.USB, error) {
	return usbotg.New(stm32h7.USB1, s, hclk, rc)
}

// NewUSB2 wires OTG2_HS on its internal PHY.
func NewUSB2(s usbotg.Set, hclk uint32, rc *rcc.Controller) (*usbotg.USB, error) {
	return usbotg.New(stm32h7.USB2, s, hclk, rc)
}

// NewUSB1ULPI wires OTG1_HS to an external ULPI PHY.
func NewUSB1ULPI(s usbotg.Set, hclk uint32, dir stm32h7.DirPin, nxt stm32h7.NxtPin, rc *rcc.Controller) (*usbotg.ULPI, error) {
	return usbotg.NewULPI(stm32h7.USB1ULPI, s, hclk, stm32h7.ULPIPins(dir, nxt), rc)
}

// Target describes this family for board bring-up.
func Target() board.Target {
	return board.Target{
		Family:   Family,
		CAN:      CANVariant,
		USB:      stm32h7.USBInstances,
		ULPIPins: stm32h7.ULPIPinsFrom,
	}
}
