// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import (
	"math"
	"time"

	"golang.org/x/exp/pcg/internal/lcg"
	"golang.org/x/xerrors"
)

// engine implements every operation of Source on top of a cell and the
// output permutation P. The increment is fixed at construction and
// read without synchronization.
type engine[P Permutation] struct {
	c   cell
	inc uint64
}

func newEngine[P Permutation](newCell func(uint64) cell, state, inc uint64) engine[P] {
	return engine[P]{c: newCell(state), inc: inc}
}

// Uint32 returns the permuted pre-step state, a uniformly distributed
// 32-bit value.
func (e *engine[P]) Uint32() uint32 {
	var p P
	return p.Permute(e.c.step(e.inc))
}

// next returns the top n bits of one output, 1 <= n <= 32.
func (e *engine[P]) next(n uint) int32 {
	return int32(e.Uint32() >> (32 - n))
}

// Int32 returns a pseudo-random 32-bit value as an int32.
// Every int32 value is equally likely.
func (e *engine[P]) Int32() int32 {
	return int32(e.Uint32())
}

// Int32n returns a uniformly distributed value in [0, n).
// Power-of-two bounds use the high bits of one draw; other bounds
// reject draws from the incomplete last interval, so the result has
// no modulo bias. It fails with ErrInvalidArgument if n <= 0.
func (e *engine[P]) Int32n(n int32) (int32, error) {
	if n <= 0 {
		return 0, invalidArgument("bound must be positive, got %d", n)
	}
	r := e.next(31)
	m := n - 1
	if n&m == 0 {
		return int32((int64(n) * int64(r)) >> 31), nil
	}
	for u := r; ; u = e.next(31) {
		r = u % n
		if u-r+m >= 0 {
			return r, nil
		}
	}
}

// Int64 returns a pseudo-random 64-bit value composed of two 32-bit
// draws. Every int64 value is reachable with equal probability.
func (e *engine[P]) Int64() int64 {
	hi := int64(e.next(32))
	return hi<<32 + int64(e.next(32))
}

// Uint64 returns Int64 as a uint64. It makes every generator a
// math/rand/v2 Source.
func (e *engine[P]) Uint64() uint64 {
	return uint64(e.Int64())
}

// Int64n returns a uniformly distributed value in [0, n).
// It fails with ErrInvalidArgument if n <= 0.
func (e *engine[P]) Int64n(n int64) (int64, error) {
	if n <= 0 {
		return 0, invalidArgument("bound must be positive, got %d", n)
	}
	for {
		bits := int64(uint64(e.Int64()) >> 1)
		val := bits % n
		if bits-val+(n-1) >= 0 {
			return val, nil
		}
	}
}

// Bool returns a fair coin flip.
func (e *engine[P]) Bool() bool {
	return e.next(1) != 0
}

// Bernoulli returns true with probability p. It fails with
// ErrInvalidArgument unless 0 <= p <= 1. The bounds are exact:
// p == 0 never returns true and p == 1 always does.
func (e *engine[P]) Bernoulli(p float64) (bool, error) {
	if !(p >= 0 && p <= 1) {
		return false, invalidArgument("probability must be in [0, 1], got %v", p)
	}
	switch p {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return e.Float64() < p, nil
}

// Float32 returns a uniformly distributed value in [0.0, 1.0).
func (e *engine[P]) Float32() float32 {
	return float32(e.next(24)) / (1 << 24)
}

// Float32In returns a value in the unit interval whose bounds are
// included or excluded as requested.
func (e *engine[P]) Float32In(includeZero, includeOne bool) float32 {
	for {
		d := e.Float32()
		if includeOne && e.Bool() {
			d += 1
		}
		if d > 1 || (!includeZero && d == 0) {
			continue
		}
		return d
	}
}

// Float64 returns a uniformly distributed value in [0.0, 1.0) with 53
// bits of precision.
func (e *engine[P]) Float64() float64 {
	hi := int64(e.next(26))
	return float64(hi<<27+int64(e.next(27))) * 0x1.0p-53
}

// Float64In returns a value in the unit interval whose bounds are
// included or excluded as requested. With includeOne, half of the
// draws are moved to [1.0, 2.0) and all but exactly 1.0 rejected.
func (e *engine[P]) Float64In(includeZero, includeOne bool) float64 {
	for {
		d := e.Float64()
		if includeOne && e.Bool() {
			d += 1
		}
		if d > 1 || (!includeZero && d == 0) {
			continue
		}
		return d
	}
}

// NormFloat64 returns a standard normally distributed value using the
// polar method. The second value of each pair is discarded.
func (e *engine[P]) NormFloat64() float64 {
	for {
		v1 := 2*e.Float64() - 1
		v2 := 2*e.Float64() - 1
		s := v1*v1 + v2*v2
		if s < 1 && s != 0 {
			return v1 * math.Sqrt(-2*math.Log(s)/s)
		}
	}
}

// Read fills p with pseudo-random bytes, one draw per byte, and never
// fails.
func (e *engine[P]) Read(p []byte) (n int, err error) {
	for i := range p {
		p[i] = byte(e.next(8))
	}
	return len(p), nil
}

// Advance moves the generator delta steps forward, or -delta steps
// back when delta is negative, in O(log |delta|) time.
func (e *engine[P]) Advance(delta int64) {
	e.c.update(func(s uint64) uint64 {
		return lcg.Advance(s, uint64(delta), e.inc)
	})
}

// State returns the current state word.
func (e *engine[P]) State() uint64 {
	return e.c.load()
}

// Increment returns the odd increment selecting the generator's stream.
func (e *engine[P]) Increment() uint64 {
	return e.inc
}

func (e *engine[P]) distance(o *engine[P]) (int64, error) {
	if e.inc != o.inc {
		return 0, xerrors.Errorf("increments %#x and %#x differ: %w", e.inc, o.inc, ErrIncompatibleGenerator)
	}
	if e == o {
		return 0, nil
	}
	return int64(lcg.Distance(e.c.load(), o.c.load(), e.inc)), nil
}

// distinct derives a position on another stream for SplitDistinct. The
// draws it makes advance e.
func (e *engine[P]) distinct() (state, inc uint64) {
	for {
		r := uint64(e.below(int64(e.inc))) ^ ^nanotime()
		inc = r*2 + 1
		if inc != e.inc {
			break
		}
		logger().Debug("pcg: split increment collided, retrying", "inc", e.inc)
	}
	for {
		cur := e.c.load()
		state = uint64(e.below(int64(cur))) ^ ^nanotime()
		if state != e.c.load() {
			break
		}
		logger().Debug("pcg: split state collided, retrying", "state", state)
	}
	return state, inc
}

// below draws from [0, |v|), or from the full int64 range when |v| is
// not a positive int64.
func (e *engine[P]) below(v int64) int64 {
	if v < 0 {
		v = -v
	}
	if v <= 0 {
		return e.Int64()
	}
	r, _ := e.Int64n(v)
	return r
}

func nanotime() uint64 {
	return uint64(time.Now().UnixNano())
}
