// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sygvx

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/lapack"
	"gonum.org/v1/gonum/lapack/gonum"
)

// Implementation provides the symmetric-definite generalized eigenvalue
// driver. It embeds the pure-Go LAPACK implementation whose routines the
// driver is composed from.
//
// Implementation is stateless: all scratch space is provided by the caller,
// so concurrent calls with disjoint buffers are safe.
type Implementation struct {
	gonum.Implementation
}

// Dsygvx computes eigenvalues il through iu (1-based, in ascending order) and
// the corresponding eigenvectors of the real generalized symmetric-definite
// eigenproblem
//
//	A·x = λ·B·x
//
// where A and B are n×n symmetric and B is positive definite. Only the upper
// triangles of A and B are read. Storage is row-major with the given leading
// dimensions.
//
// On return m is the number of eigenvalues found (iu-il+1 on success), the
// eigenvalues are stored in ascending order in w[:m], and the corresponding
// eigenvectors are stored one per column in the first m columns of z. The
// eigenvectors are normalized so that Zᵀ*B*Z = I.
//
// On exit both A and B are overwritten: A is destroyed and the upper triangle
// of B holds its Cholesky factor U. Callers that need either matrix afterward
// must pass copies.
//
// info is 0 on success. If info is in [1,n] the symmetric eigensolver failed
// to converge; since the underlying QR iteration does not report which
// eigenvalue failed, info is set to 1 and ifail is cleared. If info = n+i, the
// leading minor of order i of B is not positive definite and the
// factorization could not be completed. Whenever info is nonzero the contents
// of w, z and m must not be used.
//
// abstol is the absolute error tolerance of the original calling convention.
// The eigensolver used here iterates to machine precision, which is at least
// as accurate as any positive abstol, so the argument does not influence the
// computation; it is accepted so the interface matches the routine it stands
// in for. iwork is likewise accepted for interface compatibility and is not
// referenced.
//
// work must have length at least lwork and lwork must be at least
// max(1, 3*n-1). If lwork == -1, instead of performing Dsygvx, the function
// only stores the minimum workspace length into work[0].
//
// Dsygvx panics if the dimensions or slice lengths are inconsistent.
func (impl Implementation) Dsygvx(n int, a []float64, lda int, b []float64, ldb int,
	il, iu int, abstol float64,
	w, z []float64, ldz int,
	work []float64, lwork int, iwork []int, ifail []int) (m, info int) {

	minwrk := max(1, 3*n-1)

	switch {
	case n < 0:
		panic(nLT0)
	case lda < max(1, n):
		panic(badLdA)
	case ldb < max(1, n):
		panic(badLdB)
	case n > 0 && (il < 1 || iu < il || iu > n):
		panic(badEVRange)
	case ldz < max(1, n):
		panic(badLdZ)
	case lwork < minwrk && lwork != -1:
		panic(badLWork)
	case len(work) < max(1, lwork):
		panic(shortWork)
	}

	// Quick return if possible.
	if n == 0 {
		work[0] = 1
		return 0, 0
	}

	if lwork == -1 {
		work[0] = float64(minwrk)
		return 0, 0
	}

	nev := iu - il + 1

	switch {
	case len(a) < (n-1)*lda+n:
		panic(shortA)
	case len(b) < (n-1)*ldb+n:
		panic(shortB)
	case len(w) < n:
		panic(shortW)
	case len(z) < (n-1)*ldz+nev:
		panic(shortZ)
	case len(ifail) < n:
		panic(shortIFail)
	}

	// Factor B = Uᵀ*U. A failure here is reported with the LAPACK
	// convention info = n + order of the offending leading minor.
	if k := impl.dpotf2(n, b, ldb); k > 0 {
		return 0, n + k
	}

	// Reduce to the standard form C·y = λ·y, overwriting A with C.
	impl.Dsygst(1, blas.Upper, n, a, lda, b, ldb)

	// Full symmetric eigendecomposition of C. Eigenvalues land in w in
	// ascending order and eigenvectors in the columns of a. The QR
	// iteration computes to machine precision, tighter than abstol.
	if ok := impl.Dsyev(lapack.EVCompute, blas.Upper, n, a, lda, w, work, lwork); !ok {
		clear(ifail[:n])
		return 0, 1
	}

	// Select the requested index range.
	m = nev
	copy(w[:m], w[il-1:iu])
	for i := 0; i < n; i++ {
		copy(z[i*ldz:i*ldz+m], a[i*lda+il-1:i*lda+iu])
	}

	// Back-transform: x = inv(U)·y. U has a positive diagonal after
	// dpotf2, so the triangular solve cannot hit a zero pivot.
	impl.Dtrtrs(blas.Upper, blas.NoTrans, blas.NonUnit, n, m, b, ldb, z, ldz)

	clear(ifail[:n])
	return m, 0
}
