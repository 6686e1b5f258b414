// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import "golang.org/x/exp/pcg/internal/lcg"

// Locked is a generator guarded by a read-write mutex. Every state
// change holds the write lock; State and Distance hold the read lock.
// It behaves like Sync and exists to compare the two locks under load.
type Locked[P Permutation] struct {
	engine[P]
}

func NewLocked[P Permutation](seed, stream uint64) *Locked[P] {
	return lockedAt[P](lcg.Seed(seed, stream))
}

func NewLockedUnique[P Permutation]() *Locked[P] {
	return NewLocked[P](uniqueSeed())
}

// NewLockedAt returns a generator positioned exactly at state on the
// stream with increment inc. It fails with ErrInvalidArgument if inc
// is even.
func NewLockedAt[P Permutation](state, inc uint64) (*Locked[P], error) {
	if err := checkIncrement(inc); err != nil {
		return nil, err
	}
	return lockedAt[P](state, inc), nil
}

func lockedAt[P Permutation](state, inc uint64) *Locked[P] {
	return &Locked[P]{newEngine[P](newRWCell, state, inc)}
}

func (g *Locked[P]) Distance(other *Locked[P]) (int64, error) {
	return g.distance(&other.engine)
}

func (g *Locked[P]) Split() *Locked[P] {
	return lockedAt[P](g.State(), g.inc)
}

func (g *Locked[P]) SplitDistinct() *Locked[P] {
	return lockedAt[P](g.distinct())
}

func (g *Locked[P]) IsLockFree() bool { return false }

func (g *Locked[P]) concurrent() {}
