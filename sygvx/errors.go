// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sygvx

const (
	badEVRange = "sygvx: invalid eigenvalue index range"
	badItype   = "sygvx: itype must be 1"
	badLWork   = "sygvx: insufficient working memory"
	badLdA     = "sygvx: bad leading dimension of A"
	badLdB     = "sygvx: bad leading dimension of B"
	badLdZ     = "sygvx: bad leading dimension of Z"
	badUplo    = "sygvx: bad uplo"
	nLT0       = "sygvx: n < 0"
	shortA     = "sygvx: insufficient length of a"
	shortB     = "sygvx: insufficient length of b"
	shortIFail = "sygvx: insufficient length of ifail"
	shortW     = "sygvx: insufficient length of w"
	shortWork  = "sygvx: insufficient length of work"
	shortZ     = "sygvx: insufficient length of z"
)
