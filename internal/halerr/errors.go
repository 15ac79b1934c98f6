// internal/halerr/errors.go
package halerr

import "errors"

var (
	// Ownership
	ErrInUse         = errors.New("peripheral_in_use")
	ErrNotOwned      = errors.New("not_owned")
	ErrBlockMismatch = errors.New("block_mismatch")
	ErrInvalidBlock  = errors.New("invalid_block")

	// Build/config
	ErrFamilyMismatch = errors.New("family_mismatch")
	ErrUnknownPin     = errors.New("unknown_pin")
	ErrUnknownUSB     = errors.New("unknown_usb_instance")
	ErrClockTooSlow   = errors.New("clock_too_slow")

	// Generic / pass-through
	ErrUnsupported = errors.New("unsupported")
)
