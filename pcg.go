// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import (
	"io"
	"math/rand/v2"

	"golang.org/x/exp/pcg/internal/lcg"
	"golang.org/x/exp/pcg/internal/seedsrc"
	"golang.org/x/xerrors"
)

// Multiplier is the LCG multiplier shared by every generator.
const Multiplier = lcg.Multiplier

// Source is the set of operations every generator provides.
type Source interface {
	Uint32() uint32
	Int32() int32
	Int32n(n int32) (int32, error)
	Uint64() uint64
	Int64() int64
	Int64n(n int64) (int64, error)
	Bool() bool
	Bernoulli(p float64) (bool, error)
	Float32() float32
	Float32In(includeZero, includeOne bool) float32
	Float64() float64
	Float64In(includeZero, includeOne bool) float64
	NormFloat64() float64
	Read(p []byte) (n int, err error)

	// Advance moves the generator by delta steps; a negative delta
	// rewinds.
	Advance(delta int64)

	// State and Increment report the generator's position. Together they
	// can rebuild it with the matching New...At constructor.
	State() uint64
	Increment() uint64

	// IsLockFree reports whether drawing never acquires a lock.
	IsLockFree() bool
}

// Generator is a Source that can be compared with and copied into
// generators of its own concrete type T.
type Generator[T any] interface {
	Source

	// Distance returns the signed number of steps from the receiver's
	// position to other's. It fails with ErrIncompatibleGenerator if the
	// two are on different streams.
	Distance(other T) (int64, error)

	// Split returns a new generator at the same position on the same
	// stream; it produces the same values as the receiver would.
	Split() T

	// SplitDistinct returns a new generator on a different stream at a
	// position derived from the receiver's next draws.
	SplitDistinct() T
}

// SafeSource is a Source that may be shared between goroutines. Fast
// generators do not implement it.
type SafeSource interface {
	Source
	concurrent()
}

var (
	_ Generator[*Fast[RR]]   = (*Fast[RR])(nil)
	_ Generator[*Sync[RS]]   = (*Sync[RS])(nil)
	_ Generator[*Cas[RR]]    = (*Cas[RR])(nil)
	_ Generator[*Locked[RS]] = (*Locked[RS])(nil)

	_ SafeSource = (*Sync[RR])(nil)
	_ SafeSource = (*Cas[RR])(nil)
	_ SafeSource = (*Locked[RR])(nil)

	_ rand.Source = (*Fast[RR])(nil)
	_ io.Reader   = (*Cas[RS])(nil)
)

// uniqueSeed returns a seed and stream number from the process-wide
// unique seed source.
func uniqueSeed() (seed, stream uint64) {
	return seedsrc.Next(), seedsrc.Next()
}

func checkIncrement(inc uint64) error {
	if inc&1 == 0 {
		return xerrors.Errorf("increment %#x is even: %w", inc, ErrInvalidArgument)
	}
	return nil
}
