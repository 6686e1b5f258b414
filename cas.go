// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import "golang.org/x/exp/pcg/internal/lcg"

// Cas is a lock-free generator. Each state change loads the state word,
// computes its successor and installs it with compare-and-swap,
// retrying if another goroutine changed the word in between. Some
// caller always makes progress, but a single caller may retry any
// number of times under heavy contention.
type Cas[P Permutation] struct {
	engine[P]
}

// NewCas returns a generator seeded with seed on stream number stream.
func NewCas[P Permutation](seed, stream uint64) *Cas[P] {
	return casAt[P](lcg.Seed(seed, stream))
}

// NewCasUnique returns a generator seeded from the process-wide unique
// seed source.
func NewCasUnique[P Permutation]() *Cas[P] {
	return NewCas[P](uniqueSeed())
}

// NewCasAt returns a generator positioned exactly at state on the
// stream with increment inc. It fails with ErrInvalidArgument if inc
// is even.
func NewCasAt[P Permutation](state, inc uint64) (*Cas[P], error) {
	if err := checkIncrement(inc); err != nil {
		return nil, err
	}
	return casAt[P](state, inc), nil
}

func casAt[P Permutation](state, inc uint64) *Cas[P] {
	return &Cas[P]{newEngine[P](newCASCell, state, inc)}
}

// Distance returns the number of steps from g to other.
func (g *Cas[P]) Distance(other *Cas[P]) (int64, error) {
	return g.distance(&other.engine)
}

// Split returns a copy of g at its current position.
func (g *Cas[P]) Split() *Cas[P] {
	return casAt[P](g.State(), g.inc)
}

// SplitDistinct returns a generator on a new stream derived from g.
func (g *Cas[P]) SplitDistinct() *Cas[P] {
	return casAt[P](g.distinct())
}

// IsLockFree reports true.
func (g *Cas[P]) IsLockFree() bool { return true }

func (g *Cas[P]) concurrent() {}
