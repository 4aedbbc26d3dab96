// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sygvx

// Fixed configuration of the eleven-argument calling convention. These values
// are load-bearing for existing callers and must not be changed: altering
// either one silently alters numerical results.
const (
	// cAbstol is the absolute convergence tolerance passed to the solver.
	cAbstol = 1e-5
	// cLWorkPerN is the workspace length per unit of problem size.
	cLWorkPerN = 8
)

// DsygvxC is the eleven-argument entry point registered with the dynamic
// loader under the name "dsygvx_c". It solves
//
//	A·x = λ·B·x
//
// for the il-th through n-th eigenvalues (ascending) and their eigenvectors,
// with the entire solver configuration hardcoded: problem type 1, eigenvector
// computation enabled, selection by index range [il, n], leading dimensions
// equal to n, upper triangle of A and B significant, absolute tolerance 1e-5
// and workspace length 8n.
//
// Matrix buffers are column-major, n²-length, with only the upper triangle of
// a and b read. All scalars are passed by reference regardless of direction,
// matching the original convention: n and il are inputs, m (number of
// eigenvalues found) and info (status) are outputs. w receives the
// eigenvalues in ascending order, z the eigenvectors one per column. work
// must hold at least 8n float64s, iwork and ifail at least n ints.
//
// a and b are destroyed during the call. info follows the convention of
// Dsygvx; when it is nonzero the contents of m, w and z must not be used.
//
// DsygvxC validates nothing. Mis-sized buffers panic or corrupt results,
// exactly as the convention it reproduces left them undefined.
func DsygvxC(n *int, a, b []float64, il *int,
	m *int, w, z []float64,
	work []float64, iwork []int,
	ifail []int, info *int) {

	nn := *n

	// The driver underneath is row-major. A column-major buffer whose
	// upper triangle is significant reads row-major as a lower triangle,
	// so mirror the significant half across the diagonal first; a full
	// symmetric buffer means the same matrix in either storage order.
	mirrorUpper(nn, a)
	mirrorUpper(nn, b)

	var impl Implementation
	nev, status := impl.Dsygvx(nn, a, nn, b, nn,
		*il, nn, cAbstol,
		w, z, nn,
		work, cLWorkPerN*nn, iwork, ifail)

	if status == 0 {
		// Row-major columns back to column-major columns.
		transpose(nn, z)
	}

	*m = nev
	*info = status
}

// mirrorUpper copies the column-major upper triangle of the n×n buffer x onto
// its lower triangle, producing a full symmetric matrix.
func mirrorUpper(n int, x []float64) {
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			x[i*n+j] = x[j*n+i]
		}
	}
}

// transpose transposes the n×n buffer x in place.
func transpose(n int, x []float64) {
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			x[i*n+j], x[j*n+i] = x[j*n+i], x[i*n+j]
		}
	}
}
