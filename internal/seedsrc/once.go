// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seedsrc

import "sync"

// lazy returns a function that builds the value with fn on first use
// and returns the same value on every later call. The returned function
// is safe for concurrent use.
func lazy[T any](fn func() T) func() T {
	var (
		once  sync.Once
		value T
	)
	return func() T {
		once.Do(func() {
			value = fn()
		})
		return value
	}
}
