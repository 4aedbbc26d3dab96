// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sygvx

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// Dsygst reduces a real symmetric-definite generalized eigenproblem to
// standard form, overwriting the upper triangle of A with the upper triangle
// of
//
//	C = inv(Uᵀ) * A * inv(U)
//
// where B = Uᵀ*U is the Cholesky factorization previously computed by dpotf2
// and stored in the upper triangle of b. The eigenvalues of C are the
// generalized eigenvalues of (A,B), and if y is an eigenvector of C then
// x = inv(U)*y is the corresponding generalized eigenvector.
//
// Only itype == 1 with uplo == blas.Upper is supported, matching the problem
// form this package solves; Dsygst panics otherwise. This is the unblocked
// algorithm, which is sufficient for the problem sizes the fixed 8n workspace
// of the original calling convention implies.
func (Implementation) Dsygst(itype int, uplo blas.Uplo, n int, a []float64, lda int, b []float64, ldb int) {
	switch {
	case itype != 1:
		panic(badItype)
	case uplo != blas.Upper:
		panic(badUplo)
	case n < 0:
		panic(nLT0)
	case lda < max(1, n):
		panic(badLdA)
	case ldb < max(1, n):
		panic(badLdB)
	}

	if n == 0 {
		return
	}

	switch {
	case len(a) < (n-1)*lda+n:
		panic(shortA)
	case len(b) < (n-1)*ldb+n:
		panic(shortB)
	}

	bi := blas64.Implementation()

	// Compute inv(Uᵀ)*A*inv(U) one row at a time.
	for k := 0; k < n; k++ {
		akk := a[k*lda+k]
		bkk := b[k*ldb+k]
		akk /= bkk * bkk
		a[k*lda+k] = akk
		if k == n-1 {
			continue
		}
		nk := n - k - 1
		ak := a[k*lda+k+1:]
		bk := b[k*ldb+k+1:]
		bi.Dscal(nk, 1/bkk, ak, 1)
		ct := -0.5 * akk
		bi.Daxpy(nk, ct, bk, 1, ak, 1)
		bi.Dsyr2(blas.Upper, nk, -1, ak, 1, bk, 1, a[(k+1)*lda+k+1:], lda)
		bi.Daxpy(nk, ct, bk, 1, ak, 1)
		bi.Dtrsv(blas.Upper, blas.Trans, blas.NonUnit, nk, b[(k+1)*ldb+k+1:], ldb, ak, 1)
	}
}
