// Package usbotg prepares Synopsys OTG controllers for a USB device stack.
//
// Construction only wires the register blocks and bus clock; the device
// stack calls Enable during its own initialisation, possibly more than once.
package usbotg

import (
	"fmt"
	"log/slog"

	"github.com/ardnew/softusb/device/hal"
	"github.com/ardnew/softusb/pkg"

	"stm32periph-go/errcode"
	"stm32periph-go/internal/halerr"
	"stm32periph-go/periph"
	"stm32periph-go/rcc"
)

// Fixed core parameters of the OTG_HS cores.
const (
	FIFODepthWords = 1024
	EndpointCount  = 9

	// MinHighSpeedAHB is the lowest AHB clock the core runs high-speed at
	// (RM0433 57.4.4).
	MinHighSpeedAHB = 30_000_000
)

// SetLogger sends the USB stack's records, "usb enable" among them, to l
// down to level.
func SetLogger(l *slog.Logger, level slog.Level) {
	pkg.SetLogLevel(level)
	pkg.SetLogger(l)
}

// PhyType selects the transceiver the core talks to.
type PhyType uint8

const (
	PhyInternalFullSpeed PhyType = iota
	PhyInternalHighSpeed
	PhyExternalHighSpeed
)

func (p PhyType) String() string {
	switch p {
	case PhyInternalFullSpeed:
		return "internal_fs"
	case PhyInternalHighSpeed:
		return "internal_hs"
	case PhyExternalHighSpeed:
		return "external_hs"
	default:
		return "unknown"
	}
}

// Peripheral is the capability set a USB device stack asks of an OTG core.
type Peripheral interface {
	Name() string
	Registers() uintptr
	HighSpeed() bool
	Speed() hal.Speed
	FIFODepthWords() int
	EndpointCount() int
	AHBFrequencyHz() uint32
	PhyType() PhyType
	Enable()
}

// Layout holds the addresses of the three register blocks of one core.
type Layout struct {
	Global uintptr
	Device uintptr
	PwrClk uintptr
}

// Set is the owned register blocks of one core.
type Set struct {
	Global periph.Block
	Device periph.Block
	PwrClk periph.Block
}

// Take claims all three blocks of l. Nothing stays claimed on failure.
func (l Layout) Take(r *periph.Registry, name string) (Set, error) {
	var s Set
	var err error
	if s.Global, err = r.Take(l.Global, name+"_GLOBAL"); err != nil {
		return Set{}, err
	}
	if s.Device, err = r.Take(l.Device, name+"_DEVICE"); err != nil {
		_ = r.Release(s.Global)
		return Set{}, err
	}
	if s.PwrClk, err = r.Take(l.PwrClk, name+"_PWRCLK"); err != nil {
		_ = r.Release(s.Device)
		_ = r.Release(s.Global)
		return Set{}, err
	}
	return s, nil
}

// Release hands all three blocks back.
func (s Set) Release(r *periph.Registry) error {
	var first error
	for _, b := range []periph.Block{s.PwrClk, s.Device, s.Global} {
		if err := r.Release(b); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (l Layout) check(op string, s Set) error {
	pairs := [...]struct {
		want uintptr
		got  periph.Block
	}{{l.Global, s.Global}, {l.Device, s.Device}, {l.PwrClk, s.PwrClk}}
	for _, p := range pairs {
		if !p.got.Valid() {
			return errcode.New(errcode.InvalidParams, op, "", halerr.ErrInvalidBlock)
		}
		if p.got.Addr() != p.want {
			return errcode.New(errcode.BlockMismatch, op,
				fmt.Sprintf("want %#08x, got %v", p.want, p.got), halerr.ErrBlockMismatch)
		}
	}
	return nil
}

// Instance describes one OTG core on one family.
type Instance struct {
	family string
	name   string
	layout Layout
	seq    rcc.Sequence
}

// NewInstance is used by the chip packages to declare a core.
func NewInstance(family, name string, layout Layout, seq rcc.Sequence) Instance {
	return Instance{family: family, name: name, layout: layout, seq: seq}
}

func (i Instance) Family() string         { return i.family }
func (i Instance) Name() string           { return i.name }
func (i Instance) Layout() Layout         { return i.layout }
func (i Instance) Sequence() rcc.Sequence { return i.seq }
func (Instance) PhyType() PhyType         { return PhyInternalFullSpeed }

// Open wires a standard core; pins are ignored.
func (i Instance) Open(s Set, hclk uint32, _ ULPIPins, rc *rcc.Controller) (Peripheral, error) {
	return New(i, s, hclk, rc)
}

// Variant is the family-independent view of a core, used when the instance
// is chosen from runtime configuration.
type Variant interface {
	Family() string
	Name() string
	Layout() Layout
	Sequence() rcc.Sequence
	PhyType() PhyType
	Open(s Set, hclk uint32, pins ULPIPins, rc *rcc.Controller) (Peripheral, error)
}

// USB owns one OTG core using its on-chip PHY.
type USB struct {
	name   string
	blocks Set
	hclk   uint32
	seq    rcc.Sequence
	rc     *rcc.Controller
}

// New wires a core. No register is written until Enable.
func New(inst Instance, s Set, hclk uint32, rc *rcc.Controller) (*USB, error) {
	return wire("usbotg.New", inst, s, hclk, rc)
}

func wire(op string, inst Instance, s Set, hclk uint32, rc *rcc.Controller) (*USB, error) {
	if err := inst.layout.check(op, s); err != nil {
		return nil, err
	}
	if hclk == 0 {
		return nil, errcode.New(errcode.InvalidParams, op, "hclk is zero", nil)
	}
	if rc == nil {
		return nil, errcode.New(errcode.InvalidParams, op, inst.name+": no clock controller", nil)
	}
	return &USB{name: inst.name, blocks: s, hclk: hclk, seq: inst.seq, rc: rc}, nil
}

func (u *USB) Name() string           { return u.name }
func (u *USB) Blocks() Set            { return u.blocks }
func (u *USB) Registers() uintptr     { return u.blocks.Global.Addr() }
func (*USB) HighSpeed() bool          { return true }
func (*USB) Speed() hal.Speed         { return hal.SpeedHigh }
func (*USB) FIFODepthWords() int      { return FIFODepthWords }
func (*USB) EndpointCount() int       { return EndpointCount }
func (*USB) PhyType() PhyType         { return PhyInternalFullSpeed }
func (u *USB) AHBFrequencyHz() uint32 { return u.hclk }

// Enable powers, clocks and resets the core. Safe to call repeatedly.
func (u *USB) Enable() {
	u.rc.Bring(u.seq)
	pkg.LogDebug(pkg.ComponentHAL, "usb enable", "instance", u.name, "hclk", u.hclk)
}

// Enabled reports whether the core is clocked and out of reset.
func (u *USB) Enabled() bool { return u.rc.Enabled(u.seq) }

var (
	_ Peripheral = (*USB)(nil)
	_ Variant    = Instance{}
)
