// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sygvx solves the real symmetric-definite generalized eigenvalue
// problem
//
//	A·x = λ·B·x
//
// where A is symmetric and B is symmetric positive definite, selecting
// eigenvalues by ascending index range.
//
// The Dsygvx method on Implementation is a row-major driver in the style of
// gonum.org/v1/gonum/lapack/gonum, composed from that package's routines. The
// DsygvxC function is the fixed-mode, column-major entry point registered with
// the dynload table for callers that speak the original eleven-argument
// calling convention.
package sygvx
