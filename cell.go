// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import (
	"sync"

	"go.uber.org/atomic"
	"golang.org/x/exp/pcg/internal/lcg"
	"golang.org/x/sys/cpu"
)

// A cell holds the state word of one generator and decides how it is
// read and replaced. The variants differ only in their cell.
type cell interface {
	// step replaces the state with its successor and returns the
	// previous state.
	step(inc uint64) uint64

	// update replaces the state s with fn(s) as one operation.
	update(fn func(uint64) uint64)

	load() uint64
}

// plainCell has no synchronization.
type plainCell struct {
	s uint64
}

func (c *plainCell) step(inc uint64) uint64 {
	old := c.s
	c.s = lcg.Next(old, inc)
	return old
}

func (c *plainCell) update(fn func(uint64) uint64) { c.s = fn(c.s) }
func (c *plainCell) load() uint64                  { return c.s }

// mutexCell serializes every access with a mutex.
type mutexCell struct {
	mu sync.Mutex
	s  uint64
}

func (c *mutexCell) step(inc uint64) uint64 {
	c.mu.Lock()
	old := c.s
	c.s = lcg.Next(old, inc)
	c.mu.Unlock()
	return old
}

func (c *mutexCell) update(fn func(uint64) uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.s = fn(c.s)
}

func (c *mutexCell) load() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.s
}

// rwCell takes the write lock to change the state and the read lock to
// observe it, so State and Distance do not exclude one another.
type rwCell struct {
	mu sync.RWMutex
	s  uint64
}

func (c *rwCell) step(inc uint64) uint64 {
	c.mu.Lock()
	old := c.s
	c.s = lcg.Next(old, inc)
	c.mu.Unlock()
	return old
}

func (c *rwCell) update(fn func(uint64) uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.s = fn(c.s)
}

func (c *rwCell) load() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.s
}

// casCell replaces the state with compare-and-swap, retrying until the
// swap succeeds. Padding keeps the contended word on its own cache line.
type casCell struct {
	_ cpu.CacheLinePad
	s atomic.Uint64
	_ cpu.CacheLinePad
}

func (c *casCell) step(inc uint64) uint64 {
	for {
		old := c.s.Load()
		if c.s.CAS(old, lcg.Next(old, inc)) {
			return old
		}
	}
}

func (c *casCell) update(fn func(uint64) uint64) {
	for {
		old := c.s.Load()
		if c.s.CAS(old, fn(old)) {
			return
		}
	}
}

func (c *casCell) load() uint64 { return c.s.Load() }

func newPlainCell(s uint64) cell { return &plainCell{s: s} }
func newMutexCell(s uint64) cell { return &mutexCell{s: s} }
func newRWCell(s uint64) cell    { return &rwCell{s: s} }

func newCASCell(s uint64) cell {
	c := new(casCell)
	c.s.Store(s)
	return c
}
