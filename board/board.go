// Package board brings up the peripherals a board profile asks for.
//
// Bring claims each register block, runs the CAN clock/reset sequence and
// wires the USB core. It hands back handles ready to pass to the CAN and
// USB driver libraries. The USB core is left for its stack to Enable.
package board

import (
	"context"
	"fmt"
	"log/slog"

	"stm32periph-go/can"
	"stm32periph-go/config"
	"stm32periph-go/errcode"
	"stm32periph-go/gpio"
	"stm32periph-go/internal/halerr"
	"stm32periph-go/periph"
	"stm32periph-go/rcc"
	"stm32periph-go/usbotg"
)

// Target is what one chip family offers.
type Target struct {
	Family string
	CAN    can.Variant // nil when the family has no CAN handled here
	USB    map[string]usbotg.Variant

	// ULPIPins resolves DIR/NXT routing; nil when no core supports ULPI.
	ULPIPins func(dir, nxt gpio.Pin) (usbotg.ULPIPins, error)
}

// Capability is one retained description of a brought-up peripheral.
type Capability struct {
	Name string
	Kind string // "can" or "usb"
	Info map[string]any
}

// Board holds the handles of one brought-up board.
type Board struct {
	Name string
	CAN  can.Instance
	USB  usbotg.Peripheral

	canBlk periph.Block
	canSeq rcc.Sequence
	usbSet usbotg.Set
	usbSeq rcc.Sequence

	reg *periph.Registry
	rc  *rcc.Controller
	log *slog.Logger
}

// Option configures Bring.
type Option func(*Board)

// WithLogger sets the logger; the default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.log = l
		}
	}
}

// Bring validates cfg against t and brings the board up. On error nothing
// stays claimed or clocked.
func Bring(cfg config.Board, t Target, r *periph.Registry, rc *rcc.Controller, opts ...Option) (*Board, error) {
	const op = "board.Bring"
	b := &Board{Name: cfg.Name, reg: r, rc: rc, log: slog.Default()}
	for _, o := range opts {
		o(b)
	}

	if cfg.Family != t.Family {
		return nil, errcode.New(errcode.InvalidConfig, op,
			fmt.Sprintf("board %q is %s, firmware built for %s", cfg.Name, cfg.Family, t.Family), halerr.ErrFamilyMismatch)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	usbVar, pins, err := resolveUSB(cfg, t)
	if err != nil {
		return nil, err
	}
	if cfg.CAN && t.CAN == nil {
		return nil, errcode.New(errcode.Unsupported, op, t.Family+" has no CAN", halerr.ErrUnsupported)
	}

	if cfg.CAN {
		if err := b.bringCAN(t.CAN); err != nil {
			return nil, err
		}
	}
	if usbVar != nil {
		if err := b.wireUSB(usbVar, cfg.HCLK, pins); err != nil {
			if b.CAN != nil {
				b.rc.Disable(b.canSeq)
			}
			b.release()
			return nil, err
		}
	}
	return b, nil
}

func resolveUSB(cfg config.Board, t Target) (usbotg.Variant, usbotg.ULPIPins, error) {
	const op = "board.Bring"
	if cfg.USB == "" {
		return nil, usbotg.ULPIPins{}, nil
	}
	v, ok := t.USB[cfg.USB]
	if !ok {
		return nil, usbotg.ULPIPins{}, errcode.New(errcode.Unsupported, op,
			fmt.Sprintf("%s has no USB instance %q", t.Family, cfg.USB), halerr.ErrUnknownUSB)
	}
	if v.PhyType() != usbotg.PhyExternalHighSpeed {
		return v, usbotg.ULPIPins{}, nil
	}
	if t.ULPIPins == nil {
		return nil, usbotg.ULPIPins{}, errcode.New(errcode.Unsupported, op, "no ULPI routing", halerr.ErrUnsupported)
	}
	pins, err := t.ULPIPins(cfg.ULPIDir, cfg.ULPINxt)
	if err != nil {
		return nil, usbotg.ULPIPins{}, err
	}
	return v, pins, nil
}

func (b *Board) bringCAN(v can.Variant) error {
	blk, err := b.reg.Take(v.Registers(), v.Name())
	if err != nil {
		return err
	}
	inst, err := v.Open(blk, b.rc)
	if err != nil {
		_ = b.reg.Release(blk)
		return err
	}
	b.CAN, b.canBlk, b.canSeq = inst, blk, v.Sequence()
	b.log.Log(context.Background(), slog.LevelInfo, "peripheral up",
		"board", b.Name,
		"name", inst.Name(),
		"driver", inst.Driver().String(),
		"regs", fmt.Sprintf("%#08x", inst.Registers()),
	)
	return nil
}

func (b *Board) wireUSB(v usbotg.Variant, hclk uint32, pins usbotg.ULPIPins) error {
	set, err := v.Layout().Take(b.reg, v.Name())
	if err != nil {
		return err
	}
	p, err := v.Open(set, hclk, pins, b.rc)
	if err != nil {
		_ = set.Release(b.reg)
		return err
	}
	b.USB, b.usbSet, b.usbSeq = p, set, v.Sequence()
	b.log.Log(context.Background(), slog.LevelInfo, "peripheral wired",
		"board", b.Name,
		"name", p.Name(),
		"phy", p.PhyType().String(),
		"hclk", hclk,
	)
	return nil
}

// Summary describes every handle on the board.
func (b *Board) Summary() []Capability {
	var out []Capability
	if b.CAN != nil {
		info := map[string]any{
			"driver":    b.CAN.Driver().String(),
			"registers": b.CAN.Registers(),
		}
		if fo, ok := b.CAN.(can.FilterOwner); ok {
			info["filter_banks"] = fo.NumFilterBanks()
		}
		if _, ok := b.CAN.(can.MasterInstance); ok {
			info["master"] = true
		}
		if mr, ok := b.CAN.(can.MessageRAMInstance); ok {
			info["message_ram"] = mr.MessageRAM()
		}
		out = append(out, Capability{Name: b.CAN.Name(), Kind: "can", Info: info})
	}
	if b.USB != nil {
		out = append(out, Capability{Name: b.USB.Name(), Kind: "usb", Info: map[string]any{
			"registers":        b.USB.Registers(),
			"speed":            b.USB.Speed().String(),
			"high_speed":       b.USB.HighSpeed(),
			"fifo_depth_words": b.USB.FIFODepthWords(),
			"endpoints":        b.USB.EndpointCount(),
			"ahb_hz":           b.USB.AHBFrequencyHz(),
			"phy":              b.USB.PhyType().String(),
		}})
	}
	return out
}

// Shutdown gates the clocks of every peripheral on the board and returns
// their register blocks. The handles must not be used afterwards.
func (b *Board) Shutdown() error {
	if b.CAN != nil {
		b.rc.Disable(b.canSeq)
	}
	if b.USB != nil {
		b.rc.Disable(b.usbSeq)
	}
	err := b.release()
	b.log.Log(context.Background(), slog.LevelInfo, "board down", "board", b.Name)
	return err
}

func (b *Board) release() error {
	var first error
	if b.canBlk.Valid() {
		first = b.reg.Release(b.canBlk)
		b.canBlk = periph.Block{}
	}
	if b.usbSet.Global.Valid() {
		if err := b.usbSet.Release(b.reg); err != nil && first == nil {
			first = err
		}
		b.usbSet = usbotg.Set{}
	}
	b.CAN, b.USB = nil, nil
	return first
}
