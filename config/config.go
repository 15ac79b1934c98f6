// Package config loads board profiles: which family a board is, its AHB
// clock and which CAN/USB peripherals to bring up.
package config

import (
	"encoding/json"
	"fmt"

	"stm32periph-go/errcode"
	"stm32periph-go/gpio"
	"stm32periph-go/internal/halerr"
	"stm32periph-go/usbotg"
)

// -----------------------------------------------------------------------------
// String constants (live in flash, not RAM)
// -----------------------------------------------------------------------------

const (
	keyFamily = "family"
	keyHCLK   = "hclk_hz"
	keyCAN    = "can"
	keyUSB    = "usb"
	keyOn     = "enabled"
	keyInst   = "instance"
	keyULPI   = "ulpi"
	keyDir    = "dir"
	keyNxt    = "nxt"

	// ULPIInstance is the USB instance name that needs ULPI routing.
	ULPIInstance = "usb1_ulpi"
)

// EmbeddedLookup allows overriding how board profiles are resolved.
var EmbeddedLookup = func(board string) ([]byte, bool) {
	b, ok := embeddedBoards[board]
	return b, ok
}

// Board is one parsed board profile.
type Board struct {
	Name   string
	Family string
	HCLK   uint32

	CAN bool

	// USB names the OTG instance to wire ("usb1", "usb2", "usb1_ulpi");
	// empty means no USB.
	USB     string
	ULPIDir gpio.Pin
	ULPINxt gpio.Pin
}

// Load resolves and parses the embedded profile for board.
func Load(board string) (Board, error) {
	raw, ok := EmbeddedLookup(board)
	if !ok || len(raw) == 0 {
		return Board{}, errcode.New(errcode.UnknownBoard, "config.Load", board, nil)
	}
	return Parse(board, raw)
}

// Parse decodes and validates a profile.
func Parse(board string, raw []byte) (b Board, err error) {
	const op = "config.Parse"

	var val any
	if err := json.Unmarshal(raw, &val); err != nil {
		return Board{}, errcode.New(errcode.InvalidConfig, op, "malformed profile", err)
	}

	m, ok := val.(map[string]any)
	if !ok {
		return Board{}, errcode.New(errcode.InvalidConfig, op, "profile is not a JSON object", nil)
	}

	b.Name = board
	b.Family, _ = m[keyFamily].(string)
	if b.Family == "" {
		return Board{}, errcode.New(errcode.InvalidConfig, op, "missing "+keyFamily, nil)
	}
	if v, present := m[keyHCLK]; present {
		hz, ok := toUint32(v)
		if !ok {
			return Board{}, errcode.New(errcode.InvalidConfig, op, keyHCLK+" is not a frequency", nil)
		}
		b.HCLK = hz
	}

	if c, ok := m[keyCAN].(map[string]any); ok {
		b.CAN, _ = c[keyOn].(bool)
	}

	if u, ok := m[keyUSB].(map[string]any); ok {
		b.USB, _ = u[keyInst].(string)
		if b.USB == ULPIInstance {
			if err := b.parseULPI(u); err != nil {
				return Board{}, err
			}
		}
	}

	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

func (b *Board) parseULPI(u map[string]any) error {
	ulpi, _ := u[keyULPI].(map[string]any)
	dir, _ := ulpi[keyDir].(string)
	nxt, _ := ulpi[keyNxt].(string)
	var err error
	if b.ULPIDir, err = gpio.Parse(dir); err != nil {
		return errcode.New(errcode.UnknownPin, "config.Parse", "ulpi dir "+dir, halerr.ErrUnknownPin)
	}
	if b.ULPINxt, err = gpio.Parse(nxt); err != nil {
		return errcode.New(errcode.UnknownPin, "config.Parse", "ulpi nxt "+nxt, halerr.ErrUnknownPin)
	}
	return nil
}

// Validate checks what can be checked without knowing the target family.
func (b Board) Validate() error {
	if b.USB == "" {
		return nil
	}
	if b.HCLK < usbotg.MinHighSpeedAHB {
		return errcode.New(errcode.InvalidConfig, "config.Validate",
			fmt.Sprintf("hclk %d Hz below %d Hz", b.HCLK, usbotg.MinHighSpeedAHB), halerr.ErrClockTooSlow)
	}
	return nil
}

func toUint32(v any) (uint32, bool) {
	switch x := v.(type) {
	case float64:
		if x < 0 || x > 1<<32-1 || x != float64(uint32(x)) {
			return 0, false
		}
		return uint32(x), true
	case int:
		if x < 0 || int64(x) > 1<<32-1 {
			return 0, false
		}
		return uint32(x), true
	case int64:
		if x < 0 || x > 1<<32-1 {
			return 0, false
		}
		return uint32(x), true
	default:
		return 0, false
	}
}
