// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import "golang.org/x/xerrors"

var (
	// ErrInvalidArgument is returned for a non-positive bound, a
	// probability outside [0, 1] or an even increment.
	ErrInvalidArgument = xerrors.New("pcg: invalid argument")

	// ErrIncompatibleGenerator is returned by Distance when the two
	// generators are on different streams.
	ErrIncompatibleGenerator = xerrors.New("pcg: incompatible generator")
)

func invalidArgument(format string, args ...interface{}) error {
	return xerrors.Errorf(format+": %w", append(args, ErrInvalidArgument)...)
}
