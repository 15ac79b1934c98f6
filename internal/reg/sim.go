package reg

import (
	"fmt"
	"sync"
)

// Write is one recorded store to a simulated register.
type Write struct {
	Addr uintptr
	Old  uint32
	New  uint32
}

func (w Write) String() string {
	return fmt.Sprintf("%#08x: %#08x -> %#08x", w.Addr, w.Old, w.New)
}

// Set reports the bits this write turned on.
func (w Write) Set() uint32 { return w.New &^ w.Old }

// Cleared reports the bits this write turned off.
func (w Write) Cleared() uint32 { return w.Old &^ w.New }

// Sim is a sparse simulated address space. Unwritten registers read as zero.
// Every store is appended to a write log, including stores that leave the
// value unchanged.
type Sim struct {
	mu     sync.Mutex
	words  map[uintptr]uint32
	writes []Write
}

func NewSim() *Sim {
	return &Sim{words: make(map[uintptr]uint32)}
}

func (s *Sim) At(addr uintptr) Register { return simReg{s: s, addr: addr} }

// Peek returns the current value without logging.
func (s *Sim) Peek(addr uintptr) uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.words[addr]
}

// Poke stores a value without logging (reset values, fixtures).
func (s *Sim) Poke(addr uintptr, v uint32) {
	s.mu.Lock()
	s.words[addr] = v
	s.mu.Unlock()
}

// Writes returns a copy of the write log.
func (s *Sim) Writes() []Write {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Write(nil), s.writes...)
}

// ResetLog drops the write log; register contents are kept.
func (s *Sim) ResetLog() {
	s.mu.Lock()
	s.writes = nil
	s.mu.Unlock()
}

func (s *Sim) modify(addr uintptr, f func(uint32) uint32) {
	s.mu.Lock()
	old := s.words[addr]
	v := f(old)
	s.words[addr] = v
	s.writes = append(s.writes, Write{Addr: addr, Old: old, New: v})
	s.mu.Unlock()
}

type simReg struct {
	s    *Sim
	addr uintptr
}

func (r simReg) Get() uint32           { return r.s.Peek(r.addr) }
func (r simReg) Set(v uint32)          { r.s.modify(r.addr, func(uint32) uint32 { return v }) }
func (r simReg) SetBits(m uint32)      { r.s.modify(r.addr, func(o uint32) uint32 { return o | m }) }
func (r simReg) ClearBits(m uint32)    { r.s.modify(r.addr, func(o uint32) uint32 { return o &^ m }) }
func (r simReg) HasBits(m uint32) bool { return r.Get()&m != 0 }
