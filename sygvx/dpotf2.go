// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sygvx

import (
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// dpotf2 computes the Cholesky factorization of an n×n symmetric positive
// definite matrix
//
//	A = Uᵀ * U
//
// using the unblocked algorithm, reading and writing only the upper triangle
// of A.
//
// It returns 0 if the factorization succeeded, otherwise the 1-based order of
// the first leading minor that is not positive definite. Unlike Dpotrf from
// lapack/gonum, which reports only success or failure, the minor index is
// retained because Dsygvx encodes it into its info return.
func (Implementation) dpotf2(n int, a []float64, lda int) int {
	bi := blas64.Implementation()
	for j := 0; j < n; j++ {
		ajj := a[j*lda+j] - bi.Ddot(j, a[j:], lda, a[j:], lda)
		if ajj <= 0 || math.IsNaN(ajj) {
			a[j*lda+j] = ajj
			return j + 1
		}
		ajj = math.Sqrt(ajj)
		a[j*lda+j] = ajj
		if j < n-1 {
			bi.Dgemv(blas.Trans, j, n-j-1,
				-1, a[j+1:], lda, a[j:], lda,
				1, a[j*lda+j+1:], 1)
			bi.Dscal(n-j-1, 1/ajj, a[j*lda+j+1:], 1)
		}
	}
	return 0
}
