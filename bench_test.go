// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import (
	mathrand "math/rand"
	"math/rand/v2"
	"sync"
	"testing"

	exprand "golang.org/x/exp/rand"
)

var sink32 uint32

func benchSources() []struct {
	name string
	s    Source
} {
	return []struct {
		name string
		s    Source
	}{
		{"Fast/RR", NewFast[RR](0, 0)},
		{"Fast/RS", NewFast[RS](0, 0)},
		{"Sync/RR", NewSync[RR](0, 0)},
		{"Sync/RS", NewSync[RS](0, 0)},
		{"Cas/RR", NewCas[RR](0, 0)},
		{"Cas/RS", NewCas[RS](0, 0)},
		{"Locked/RR", NewLocked[RR](0, 0)},
		{"Locked/RS", NewLocked[RS](0, 0)},
	}
}

func BenchmarkUint32(b *testing.B) {
	for _, bs := range benchSources() {
		b.Run(bs.name, func(b *testing.B) {
			var x uint32
			for i := 0; i < b.N; i++ {
				x += bs.s.Uint32()
			}
			sink32 = x
		})
	}
}

func BenchmarkUint32Parallel(b *testing.B) {
	for _, bs := range benchSources() {
		if _, ok := bs.s.(SafeSource); !ok {
			continue
		}
		b.Run(bs.name, func(b *testing.B) {
			b.RunParallel(func(pb *testing.PB) {
				var x uint32
				for pb.Next() {
					x += bs.s.Uint32()
				}
				sink32 = x
			})
		})
	}
}

func BenchmarkAdvance(b *testing.B) {
	g := NewFast[RR](0, 0)
	for i := 0; i < b.N; i++ {
		g.Advance(int64(i) << 20)
	}
}

func BenchmarkDistance(b *testing.B) {
	g := NewFast[RR](0, 0)
	h := g.Split()
	h.Advance(1 << 62)
	for i := 0; i < b.N; i++ {
		g.Distance(h)
	}
}

// Baselines.

func BenchmarkBaselineExpPCG(b *testing.B) {
	var src exprand.PCGSource
	src.Seed(0)
	var x uint32
	for i := 0; i < b.N; i++ {
		x += uint32(src.Uint64())
	}
	sink32 = x
}

func BenchmarkBaselineMathRand(b *testing.B) {
	r := mathrand.New(mathrand.NewSource(0))
	var x uint32
	for i := 0; i < b.N; i++ {
		x += r.Uint32()
	}
	sink32 = x
}

func BenchmarkBaselineRandV2PCG(b *testing.B) {
	r := rand.New(rand.NewPCG(0, 0))
	var x uint32
	for i := 0; i < b.N; i++ {
		x += r.Uint32()
	}
	sink32 = x
}

func BenchmarkBaselineRandV2Locked(b *testing.B) {
	var mu sync.Mutex
	r := rand.New(rand.NewPCG(0, 0))
	b.RunParallel(func(pb *testing.PB) {
		var x uint32
		for pb.Next() {
			mu.Lock()
			x += r.Uint32()
			mu.Unlock()
		}
		sink32 = x
	})
}

// The generators drive math/rand/v2's distributions directly.
func TestRandV2Source(t *testing.T) {
	r := rand.New(NewCas[RR](1, 1))
	perm := r.Perm(20)
	seen := make([]bool, 20)
	for _, v := range perm {
		if seen[v] {
			t.Fatalf("Perm returned %d twice: %v", v, perm)
		}
		seen[v] = true
	}
}
