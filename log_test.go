// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/exp/pcg/internal/seedsrc"
	"golang.org/x/exp/slog"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(l)
	if seedsrc.Log() != l {
		t.Fatal("seed source does not use the configured logger")
	}
	seedsrc.Log().Debug("probe", "k", 1)
	if !strings.Contains(buf.String(), "probe") {
		t.Errorf("log output %q does not contain the message", buf.String())
	}

	SetLogger(nil)
	if logger() != slog.Default() {
		t.Error("SetLogger(nil) did not restore the default logger")
	}
}
