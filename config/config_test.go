// config/config_test.go
package config

import (
	"errors"
	"testing"

	"stm32periph-go/errcode"
	"stm32periph-go/gpio"
	"stm32periph-go/internal/halerr"
)

func TestLoadEmbeddedProfiles(t *testing.T) {
	for name := range embeddedBoards {
		if _, err := Load(name); err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
	}
}

func TestLoadULPIProfile(t *testing.T) {
	b, err := Load("h7-ulpi-dev")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.Family != "stm32h7" || b.HCLK != 240_000_000 || !b.CAN || b.USB != ULPIInstance {
		t.Fatalf("board = %+v", b)
	}
	if b.ULPIDir != gpio.P('I', 11) || b.ULPINxt != gpio.P('H', 4) {
		t.Fatalf("ulpi pins = %v/%v", b.ULPIDir, b.ULPINxt)
	}
}

func TestLoadUnknownBoard(t *testing.T) {
	if _, err := Load("no-such-board"); errcode.Of(err) != errcode.UnknownBoard {
		t.Fatalf("err = %v", err)
	}
}

func TestLookupOverride(t *testing.T) {
	old := EmbeddedLookup
	EmbeddedLookup = func(board string) ([]byte, bool) {
		if board != "bench" {
			return nil, false
		}
		return []byte(`{"family": "stm32l4", "can": {"enabled": false}}`), true
	}
	t.Cleanup(func() { EmbeddedLookup = old })

	b, err := Load("bench")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.Name != "bench" || b.Family != "stm32l4" || b.CAN || b.USB != "" {
		t.Fatalf("board = %+v", b)
	}
}

func TestParseRejects(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		code errcode.Code
		is   error
	}{
		{"not an object", `[1, 2]`, errcode.InvalidConfig, nil},
		{"truncated", `{"family": "stm32h7",`, errcode.InvalidConfig, nil},
		{"trailing data", `{"family": "stm32h7"} {}`, errcode.InvalidConfig, nil},
		{"no family", `{"can": {"enabled": true}}`, errcode.InvalidConfig, nil},
		{"bad hclk", `{"family": "stm32h7", "hclk_hz": "fast"}`, errcode.InvalidConfig, nil},
		{"usb clock too slow", `{"family": "stm32h7", "hclk_hz": 24000000, "usb": {"instance": "usb1"}}`,
			errcode.InvalidConfig, halerr.ErrClockTooSlow},
		{"usb without clock", `{"family": "stm32h7", "usb": {"instance": "usb2"}}`,
			errcode.InvalidConfig, halerr.ErrClockTooSlow},
		{"bad ulpi dir", `{"family": "stm32h7", "hclk_hz": 200000000, "usb": {"instance": "usb1_ulpi", "ulpi": {"dir": "P?", "nxt": "PH4"}}}`,
			errcode.UnknownPin, halerr.ErrUnknownPin},
		{"missing ulpi", `{"family": "stm32h7", "hclk_hz": 200000000, "usb": {"instance": "usb1_ulpi"}}`,
			errcode.UnknownPin, halerr.ErrUnknownPin},
	}
	for _, c := range cases {
		_, err := Parse(c.name, []byte(c.raw))
		if errcode.Of(err) != c.code {
			t.Fatalf("%s: err = %v, want %s", c.name, err, c.code)
		}
		if c.is != nil && !errors.Is(err, c.is) {
			t.Fatalf("%s: err = %v, want wrapping %v", c.name, err, c.is)
		}
	}
}

func TestToUint32(t *testing.T) {
	if v, ok := toUint32(float64(48_000_000)); !ok || v != 48_000_000 {
		t.Fatalf("float64: %d %v", v, ok)
	}
	if v, ok := toUint32(int64(1)); !ok || v != 1 {
		t.Fatalf("int64: %d %v", v, ok)
	}
	for _, bad := range []any{-1.0, 1.5, float64(1 << 33), "1", nil} {
		if _, ok := toUint32(bad); ok {
			t.Fatalf("toUint32(%v) accepted", bad)
		}
	}
}
