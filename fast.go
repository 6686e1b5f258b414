// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import "golang.org/x/exp/pcg/internal/lcg"

// Fast is a generator with no synchronization. It is the fastest kind
// for a single goroutine. Concurrent use loses updates and is not
// detected; share a Sync, Cas or Locked generator instead.
type Fast[P Permutation] struct {
	engine[P]
}

// NewFast returns a generator seeded with seed on stream number stream.
// Generators with equal seed and stream produce equal sequences.
func NewFast[P Permutation](seed, stream uint64) *Fast[P] {
	return fastAt[P](lcg.Seed(seed, stream))
}

// NewFastUnique returns a generator seeded from the process-wide
// unique seed source.
func NewFastUnique[P Permutation]() *Fast[P] {
	return NewFast[P](uniqueSeed())
}

// NewFastAt returns a generator positioned exactly at state on the
// stream with increment inc, as reported by State and Increment.
// It fails with ErrInvalidArgument if inc is even.
func NewFastAt[P Permutation](state, inc uint64) (*Fast[P], error) {
	if err := checkIncrement(inc); err != nil {
		return nil, err
	}
	return fastAt[P](state, inc), nil
}

func fastAt[P Permutation](state, inc uint64) *Fast[P] {
	return &Fast[P]{newEngine[P](newPlainCell, state, inc)}
}

// Distance returns the number of steps from g to other.
func (g *Fast[P]) Distance(other *Fast[P]) (int64, error) {
	return g.distance(&other.engine)
}

// Split returns a copy of g at its current position.
func (g *Fast[P]) Split() *Fast[P] {
	return fastAt[P](g.State(), g.inc)
}

// SplitDistinct returns a generator on a new stream derived from g.
func (g *Fast[P]) SplitDistinct() *Fast[P] {
	return fastAt[P](g.distinct())
}

// IsLockFree reports true: Fast takes no locks.
func (g *Fast[P]) IsLockFree() bool { return true }
