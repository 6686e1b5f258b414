// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import "math/bits"

// A Permutation maps a 64-bit LCG state to a 32-bit output, hiding the
// weak low bits of the state. Implementations are stateless; the zero
// value is used.
type Permutation interface {
	Permute(state uint64) uint32
}

// RR is the PCG-XSH-RR output function: an xorshift to improve the high
// bits followed by a random rotation selected by the top five bits, so
// that every output bit has full period.
type RR struct{}

// Permute implements Permutation.
func (RR) Permute(state uint64) uint32 {
	xorshifted := uint32(((state >> 18) ^ state) >> 27)
	return bits.RotateLeft32(xorshifted, -int(state>>59))
}

// RS is the PCG-XSH-RS output function: an xorshift followed by a
// right shift whose width is selected by the top three bits of state.
type RS struct{}

// Permute implements Permutation.
func (RS) Permute(state uint64) uint32 {
	return uint32(((state >> 22) ^ state) >> ((state >> 61) + 22))
}
