// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package pcg implements permuted congruential generators with 64 bits
of state and 32 bits of output, as described in

	PCG: A Family of Simple Fast Space-Efficient Statistically Good
	Algorithms for Random Number Generation
	Melissa E. O'Neill, Harvey Mudd College
	http://www.pcg-random.org/pdf/toms-oneill-pcg-family-v1.02.pdf

The state advances by a linear congruential step and each output is a
permutation of the state before the step. Two permutations are
provided, RR (xorshift, random rotation) and RS (xorshift, random
shift).

Generators come in four kinds that produce identical sequences and
differ only in how concurrent calls are handled:

	Fast    no synchronization; must not be shared between goroutines
	Sync    a mutex around every state change
	Cas     a compare-and-swap retry loop on the state word
	Locked  a read-write mutex; reads of the position take the read lock

Every generator can jump ahead or back by any number of steps in
logarithmic time (Advance), measure the number of steps between two
generators on the same stream (Distance), and copy itself (Split,
SplitDistinct).

The generators are not cryptographically secure.
*/
package pcg
