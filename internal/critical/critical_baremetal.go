//go:build baremetal

// Package critical runs short register sequences with interrupts masked.
package critical

import "runtime/interrupt"

// Do runs fn with interrupts globally disabled and restores the prior mask.
func Do(fn func()) {
	mask := interrupt.Disable()
	defer interrupt.Restore(mask)
	fn()
}
