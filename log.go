// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import (
	"go.uber.org/atomic"
	"golang.org/x/exp/pcg/internal/seedsrc"
	"golang.org/x/exp/slog"
)

var userLogger atomic.Value // *slog.Logger

func init() {
	seedsrc.Log = logger
}

// SetLogger directs the package's diagnostic output to l.
// Nothing is logged while drawing values; only seed source
// initialization and SplitDistinct retries are reported, at debug level.
// A nil l restores the default, slog.Default().
func SetLogger(l *slog.Logger) {
	userLogger.Store(loggerBox{l})
}

// loggerBox lets a nil logger be stored; atomic.Value rejects nil.
type loggerBox struct{ l *slog.Logger }

func logger() *slog.Logger {
	if b, ok := userLogger.Load().(loggerBox); ok && b.l != nil {
		return b.l
	}
	return slog.Default()
}
