// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linproj registers the native routines of the linear projection
// library with the default dynload table. Importing the package, even blank,
// is the loading act: afterward the single entry point "dsygvx_c" resolves
// from dynload.Default with arity 11, and no other name resolves at all,
// because dynamic symbol lookup is switched off once the explicit entries are
// in place.
package linproj

import (
	"github.com/ArtemSokolov/linproj/dynload"
	"github.com/ArtemSokolov/linproj/sygvx"
)

// RoutineSygvx is the registered name of the generalized eigenvalue entry
// point.
const RoutineSygvx = "dsygvx_c"

// entries lists every routine exposed to name-based lookup.
var entries = []dynload.Routine{
	{Name: RoutineSygvx, Fn: sygvx.DsygvxC, Arity: 11},
}

func init() {
	for _, r := range entries {
		dynload.Default.Register(r)
	}
	dynload.Default.UseDynamicSymbols(false)
}
