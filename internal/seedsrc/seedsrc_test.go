// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seedsrc

import (
	"sync"
	"testing"
)

func TestSequence(t *testing.T) {
	s := New(1)
	want := xorshift64star(1)
	if got := s.Next(); got != want {
		t.Fatalf("first value = %#x, want %#x", got, want)
	}
	want = xorshift64star(want)
	if got := s.Next(); got != want {
		t.Fatalf("second value = %#x, want %#x", got, want)
	}
}

func TestZeroSeed(t *testing.T) {
	s := New(0)
	if s.Next() == 0 || s.Next() == 0 {
		t.Fatal("zero seed produced zero values")
	}
}

func TestConcurrentUnique(t *testing.T) {
	const (
		workers = 8
		draws   = 2000
	)
	s := New(42)
	results := make([][]uint64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < draws; i++ {
				results[w] = append(results[w], s.Next())
			}
		}()
	}
	wg.Wait()

	seen := make(map[uint64]bool, workers*draws)
	for _, r := range results {
		for _, v := range r {
			if seen[v] {
				t.Fatalf("value %#x returned twice", v)
			}
			seen[v] = true
		}
	}
}

func TestBootstrap(t *testing.T) {
	for _, test := range []struct {
		env        string
		seed       uint64
		origin     string
		checkValue bool
	}{
		{"12345", 12345, "env", true},
		{"0x10", 16, "env", true},
		{"", 0, "uuid", false},
		{"not-a-number", 0, "uuid", false},
	} {
		seed, origin := bootstrap(test.env)
		if origin != test.origin {
			t.Errorf("bootstrap(%q) origin = %q, want %q", test.env, origin, test.origin)
		}
		if test.checkValue && seed != test.seed {
			t.Errorf("bootstrap(%q) = %d, want %d", test.env, seed, test.seed)
		}
	}
}

func TestBootstrapDistinct(t *testing.T) {
	a, _ := bootstrap("")
	b, _ := bootstrap("")
	if a == b {
		t.Errorf("two bootstraps returned the same value %#x", a)
	}
}

func TestLazy(t *testing.T) {
	calls := 0
	get := lazy(func() int {
		calls++
		return 7
	})
	for i := 0; i < 3; i++ {
		if v := get(); v != 7 {
			t.Fatalf("lazy value = %d, want 7", v)
		}
	}
	if calls != 1 {
		t.Errorf("constructor ran %d times, want 1", calls)
	}
}
