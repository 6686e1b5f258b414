// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lcg implements the 64-bit linear congruential recurrence
//
//	state' = state*Multiplier + inc  (mod 2^64)
//
// that underlies every PCG generator, together with its seeding
// procedure, jump-ahead and the inverse of jump-ahead (distance).
//
// All arithmetic wraps modulo 2^64. The increment must be odd for the
// recurrence to have full period; the functions here do not check it.
package lcg

// Multiplier is the LCG multiplier shared by all generators.
// It is the MMIX constant, also used by Newlib and Musl.
const Multiplier = 6364136223846793005

// Next returns the state following state on the stream selected by inc.
func Next(state, inc uint64) uint64 {
	return state*Multiplier + inc
}

// StreamIncrement maps a stream number to its odd increment.
// The top bit of stream is lost.
func StreamIncrement(stream uint64) uint64 {
	return stream<<1 | 1
}

// Seed returns the initial state and increment for seed and stream.
// Starting from a zero state it steps once, adds seed and steps again,
// so that seed reaches the state before the first output.
func Seed(seed, stream uint64) (state, inc uint64) {
	inc = StreamIncrement(stream)
	state = Next(0, inc)
	state += seed
	state = Next(state, inc)
	return state, inc
}

// Advance returns the state reached from state after delta steps.
// delta is taken modulo 2^64, so Advance(s, -n, inc) rewinds n steps.
// It runs in O(log delta) by repeated squaring of the affine map.
func Advance(state, delta, inc uint64) uint64 {
	accMult, accPlus := uint64(1), uint64(0)
	curMult, curPlus := uint64(Multiplier), inc
	for delta > 0 {
		if delta&1 != 0 {
			accMult *= curMult
			accPlus = accPlus*curMult + curPlus
		}
		curPlus = (curMult + 1) * curPlus
		curMult *= curMult
		delta >>= 1
	}
	return accMult*state + accPlus
}

// Distance returns the number of steps n such that
// Advance(from, n, inc) == to. Both states must be on the stream
// selected by inc. The loop matches one bit of the state per
// iteration, low bit first, and terminates after at most 64 rounds.
func Distance(from, to, inc uint64) uint64 {
	curMult, curPlus := uint64(Multiplier), inc
	var dist uint64
	for bit := uint64(1); from != to; bit <<= 1 {
		if from&bit != to&bit {
			from = from*curMult + curPlus
			dist |= bit
		}
		curPlus = (curMult + 1) * curPlus
		curMult *= curMult
	}
	return dist
}
