//go:build stm32g4

package platform

import (
	"stm32periph-go/board"
	"stm32periph-go/can"
	"stm32periph-go/chip/stm32g4"
	"stm32periph-go/periph"
	"stm32periph-go/rcc"
)

const Family = stm32g4.Family

// CAN is the controller handle type of this family.
type CAN = can.FDCan

// CANVariant describes this family's controller.
var CANVariant = stm32g4.CAN

// NewCAN enables and resets the controller in blk.
func NewCAN(blk periph.Block, rc *rcc.Controller) (*CAN, error) {
	return can.NewFD(CANVariant, blk, rc)
}

// Target describes this family for board bring-up.
func Target() board.Target {
	return board.Target{Family: Family, CAN: CANVariant}
}
