// Package periph hands out register-block ownership.
//
// A Block is an opaque handle to one physical peripheral register block. Only
// a Registry can issue one, and it issues at most one live Block per address.
package periph

import (
	"fmt"
	"sync"

	"stm32periph-go/errcode"
	"stm32periph-go/internal/halerr"
)

// Block is the ownership token for one register block.
// The zero Block is invalid.
type Block struct {
	addr uintptr
	name string
	gen  uint32
	reg  *Registry
}

func (b Block) Addr() uintptr { return b.addr }
func (b Block) Name() string  { return b.name }
func (b Block) Valid() bool   { return b.reg != nil && b.addr != 0 }

func (b Block) String() string {
	if !b.Valid() {
		return "<invalid block>"
	}
	return fmt.Sprintf("%s@%#08x", b.name, b.addr)
}

// Registry tracks which blocks are owned.
type Registry struct {
	mu   sync.Mutex
	used map[uintptr]owner
	gen  uint32
}

type owner struct {
	name string
	gen  uint32
}

func NewRegistry() *Registry {
	return &Registry{used: make(map[uintptr]owner)}
}

// Take claims the block at addr.
func (r *Registry) Take(addr uintptr, name string) (Block, error) {
	if addr == 0 {
		return Block{}, errcode.New(errcode.UnknownBlock, "periph.Take", name, halerr.ErrInvalidBlock)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, inUse := r.used[addr]; inUse {
		return Block{}, errcode.New(errcode.PeripheralInUse, "periph.Take",
			fmt.Sprintf("%s@%#08x held as %s", name, addr, o.name), halerr.ErrInUse)
	}
	r.gen++
	r.used[addr] = owner{name: name, gen: r.gen}
	return Block{addr: addr, name: name, gen: r.gen, reg: r}, nil
}

// Release returns b to the registry. Releasing a stale or foreign Block
// fails and leaves the current owner in place.
func (r *Registry) Release(b Block) error {
	if b.reg != r {
		return errcode.New(errcode.InvalidParams, "periph.Release", b.String(), halerr.ErrNotOwned)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.used[b.addr]; !ok || o.gen != b.gen {
		return errcode.New(errcode.InvalidParams, "periph.Release", b.String(), halerr.ErrNotOwned)
	}
	delete(r.used, b.addr)
	return nil
}

// Owns reports whether b is the live handle for its address.
func (r *Registry) Owns(b Block) bool {
	if b.reg != r {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.used[b.addr]
	return ok && o.gen == b.gen
}

// InUse reports whether addr is currently owned.
func (r *Registry) InUse(addr uintptr) bool {
	r.mu.Lock()
	_, ok := r.used[addr]
	r.mu.Unlock()
	return ok
}
