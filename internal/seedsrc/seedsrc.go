// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package seedsrc provides the process-wide source of unique seeds used
// by generators constructed without an explicit seed.
//
// The source is an xorshift64* sequence whose word is updated with
// compare-and-swap, so concurrent callers never receive the same value.
// It is a uniqueness utility, not an entropy source.
package seedsrc

import (
	"encoding/binary"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"
	"golang.org/x/exp/slog"
	"golang.org/x/sys/cpu"
)

// EnvVar names the environment variable that, when set to an unsigned
// integer, fixes the bootstrap value of the default source.
const EnvVar = "PCGSEED"

// fallback replaces a zero bootstrap value. Zero is a fixed point of
// xorshift and would make every seed zero.
const fallback = 0x9e3779b97f4a7c15

const scramble = 0x2545f4914f6cdd1d

// Log returns the logger used for bootstrap diagnostics.
var Log = slog.Default

// Source is a lock-free xorshift64* sequence.
type Source struct {
	_ cpu.CacheLinePad
	x atomic.Uint64
	_ cpu.CacheLinePad
}

// New returns a Source starting from seed.
func New(seed uint64) *Source {
	if seed == 0 {
		seed = fallback
	}
	s := new(Source)
	s.x.Store(seed)
	return s
}

// Next advances the source and returns the new value.
func (s *Source) Next() uint64 {
	for {
		cur := s.x.Load()
		next := xorshift64star(cur)
		if s.x.CAS(cur, next) {
			return next
		}
	}
}

func xorshift64star(x uint64) uint64 {
	x ^= x >> 12
	x ^= x << 25
	x ^= x >> 27
	return x * scramble
}

var std = lazy(func() *Source {
	seed, origin := bootstrap(os.Getenv(EnvVar))
	Log().Debug("pcg: unique seed source initialized", "origin", origin)
	return New(seed)
})

// Next returns the next value of the process-wide source.
func Next() uint64 {
	return std().Next()
}

// bootstrap chooses the starting word of the process-wide source and
// reports where it came from.
func bootstrap(env string) (seed uint64, origin string) {
	if env != "" {
		v, err := strconv.ParseUint(env, 0, 64)
		if err == nil {
			return v, "env"
		}
		Log().Debug("pcg: ignoring malformed seed override", "var", EnvVar, "err", err)
	}
	if id, err := uuid.NewRandom(); err == nil {
		return binary.LittleEndian.Uint64(id[:8]) ^ binary.LittleEndian.Uint64(id[8:]), "uuid"
	}
	return uint64(time.Now().UnixNano()), "clock"
}
