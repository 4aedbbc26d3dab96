// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lda computes linear discriminant projections of labeled samples.
//
// The discriminant directions are the leading eigenvectors of the generalized
// symmetric-definite problem
//
//	S_b·v = λ·S_w·v
//
// where S_b and S_w are the between-class and within-class scatter matrices.
// The eigenproblem is solved through the "dsygvx_c" routine resolved from the
// dynload table, the same path external callers of this module take.
package lda

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/ArtemSokolov/linproj"
	"github.com/ArtemSokolov/linproj/dynload"
)

// sygvxFunc is the calling convention of the registered eigensolver routine.
type sygvxFunc = func(n *int, a, b []float64, il *int,
	m *int, w, z []float64,
	work []float64, iwork []int,
	ifail []int, info *int)

// LDA holds the scatter matrices of a labeled sample set.
//
// The type allows inspecting the scatter matrices before computing
// projections, for example to decide whether the within-class scatter needs a
// ridge adjustment. For a one-call interface use the Project function.
type LDA struct {
	p       int
	within  *mat.SymDense
	between *mat.SymDense
	gamma   float64
}

// New computes the within-class and between-class scatter matrices of the
// n×p sample matrix x under the given class labels. classes must have one
// entry per row of x; New panics otherwise.
//
// New returns ErrTooFewClasses if the labels contain fewer than two distinct
// classes.
func New(x *mat.Dense, classes []int) (*LDA, error) {
	n, p := x.Dims()
	if len(classes) != n {
		panic("lda: sample and label dimensions do not match")
	}

	rows := make(map[int][]int)
	for i, c := range classes {
		rows[c] = append(rows[c], i)
	}
	if len(rows) < 2 {
		return nil, ErrTooFewClasses
	}

	// Grand mean.
	mu := make([]float64, p)
	col := make([]float64, n)
	for j := 0; j < p; j++ {
		mat.Col(col, j, x)
		mu[j] = stat.Mean(col, nil)
	}

	within := mat.NewSymDense(p, nil)
	between := mat.NewSymDense(p, nil)
	d := mat.NewVecDense(p, nil)

	for _, idx := range rows {
		nc := len(idx)
		xc := mat.NewDense(nc, p, nil)
		for i, r := range idx {
			xc.SetRow(i, mat.Row(nil, r, x))
		}

		// Class mean and its offset from the grand mean.
		colc := make([]float64, nc)
		muc := make([]float64, p)
		for j := 0; j < p; j++ {
			mat.Col(colc, j, xc)
			muc[j] = stat.Mean(colc, nil)
			d.SetVec(j, muc[j]-mu[j])
		}

		between.SymRankOne(between, float64(nc), d)

		// Singleton classes contribute nothing to the within scatter.
		if nc < 2 {
			continue
		}
		cov := mat.NewSymDense(p, nil)
		stat.CovarianceMatrix(cov, xc, nil)
		for i := 0; i < p; i++ {
			for j := i; j < p; j++ {
				within.SetSym(i, j, within.At(i, j)+float64(nc-1)*cov.At(i, j))
			}
		}
	}

	return &LDA{p: p, within: within, between: between}, nil
}

// Within returns a copy of the within-class scatter matrix.
func (l *LDA) Within() *mat.SymDense {
	s := mat.NewSymDense(l.p, nil)
	s.CopySym(l.within)
	return s
}

// Between returns a copy of the between-class scatter matrix.
func (l *LDA) Between() *mat.SymDense {
	s := mat.NewSymDense(l.p, nil)
	s.CopySym(l.between)
	return s
}

// Ridge sets a nonnegative value added to the diagonal of the within-class
// scatter before solving. A singular within scatter, common when the number
// of features exceeds the number of samples, is not positive definite and
// makes Project fail; a small ridge restores definiteness.
func (l *LDA) Ridge(gamma float64) {
	l.gamma = gamma
}

// Project computes the k leading discriminant directions.
//
// It returns a p×k matrix whose columns are the directions ordered by
// decreasing eigenvalue, together with the eigenvalues in the same order. The
// directions are normalized so that Wᵀ·S_w·W = I, with the ridge included in
// S_w when one is set.
//
// At most class count minus one eigenvalues are nonzero; asking for more than
// that many directions is valid but the surplus directions carry no
// discriminative information.
//
// Project returns a NotPositiveDefiniteError if the within-class scatter is
// not positive definite, and ErrNotConverged if the eigensolver fails.
func (l *LDA) Project(k int) (*mat.Dense, []float64, error) {
	p := l.p
	if k < 1 || k > p {
		return nil, nil, fmt.Errorf("lda: number of directions %d out of range [1,%d]", k, p)
	}

	r, ok := dynload.Default.Lookup(linproj.RoutineSygvx)
	if !ok {
		return nil, nil, fmt.Errorf("lda: routine %q is not registered", linproj.RoutineSygvx)
	}
	fn := r.Fn.(sygvxFunc)

	// Marshal the scatters into the column-major buffers the routine
	// expects. Both are symmetric, so filling the full square makes the
	// storage order immaterial.
	a := make([]float64, p*p)
	b := make([]float64, p*p)
	for i := 0; i < p; i++ {
		for j := 0; j < p; j++ {
			a[i*p+j] = l.between.At(i, j)
			b[i*p+j] = l.within.At(i, j)
		}
		b[i*p+i] += l.gamma
	}

	var (
		n    = p
		il   = p - k + 1
		m    int
		info int
	)
	w := make([]float64, p)
	z := make([]float64, p*p)
	work := make([]float64, 8*p)
	iwork := make([]int, 5*p)
	ifail := make([]int, p)

	fn(&n, a, b, &il, &m, w, z, work, iwork, ifail, &info)

	switch {
	case info > p:
		return nil, nil, NotPositiveDefiniteError(info - p)
	case info != 0:
		return nil, nil, ErrNotConverged
	}

	// The routine returns the k smallest of the selected range first; flip
	// to decreasing eigenvalue order.
	vals := make([]float64, k)
	copy(vals, w[:k])
	floats.Reverse(vals)

	dirs := mat.NewDense(p, k, nil)
	for j := 0; j < k; j++ {
		for i := 0; i < p; i++ {
			dirs.Set(i, k-1-j, z[i+j*p])
		}
	}
	return dirs, vals, nil
}

// Project computes the k leading discriminant directions of the n×p sample
// matrix x under the given class labels. It is a convenience wrapper around
// New and LDA.Project; see those for the full contract.
func Project(x *mat.Dense, classes []int, k int) (*mat.Dense, []float64, error) {
	l, err := New(x, classes)
	if err != nil {
		return nil, nil, err
	}
	return l.Project(k)
}
