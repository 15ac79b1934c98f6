// Package platform binds the module to the chip family chosen at build time.
//
// Build with exactly one family tag (stm32f3, stm32f4, stm32l4, stm32g0,
// stm32g4, stm32l5, stm32h7). The tag decides which CAN type, which
// constructors and which USB cores exist; with no tag none do, and code
// using them fails to build. Two tags redeclare everything and fail too.
package platform

import (
	"stm32periph-go/internal/reg"
	"stm32periph-go/rcc"
)

// Controller returns a clock/reset controller over the build's registers.
func Controller(opts ...rcc.Option) *rcc.Controller {
	return rcc.New(reg.Default(), opts...)
}
