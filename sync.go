// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import "golang.org/x/exp/pcg/internal/lcg"

// Sync is a generator whose state changes are serialized by a mutex.
// Draws, Advance and Distance on one Sync are linearizable.
type Sync[P Permutation] struct {
	engine[P]
}

// NewSync returns a generator seeded with seed on stream number stream.
func NewSync[P Permutation](seed, stream uint64) *Sync[P] {
	return syncAt[P](lcg.Seed(seed, stream))
}

// NewSyncUnique returns a generator seeded from the process-wide
// unique seed source.
func NewSyncUnique[P Permutation]() *Sync[P] {
	return NewSync[P](uniqueSeed())
}

// NewSyncAt returns a generator positioned exactly at state on the
// stream with increment inc. It fails with ErrInvalidArgument if inc
// is even.
func NewSyncAt[P Permutation](state, inc uint64) (*Sync[P], error) {
	if err := checkIncrement(inc); err != nil {
		return nil, err
	}
	return syncAt[P](state, inc), nil
}

func syncAt[P Permutation](state, inc uint64) *Sync[P] {
	return &Sync[P]{newEngine[P](newMutexCell, state, inc)}
}

// Distance returns the number of steps from g to other.
func (g *Sync[P]) Distance(other *Sync[P]) (int64, error) {
	return g.distance(&other.engine)
}

// Split returns a copy of g at its current position.
func (g *Sync[P]) Split() *Sync[P] {
	return syncAt[P](g.State(), g.inc)
}

// SplitDistinct returns a generator on a new stream derived from g.
func (g *Sync[P]) SplitDistinct() *Sync[P] {
	return syncAt[P](g.distinct())
}

func (g *Sync[P]) IsLockFree() bool { return false }

func (g *Sync[P]) concurrent() {}
