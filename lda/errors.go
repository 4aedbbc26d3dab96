// Copyright ©2026 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lda

import (
	"errors"
	"fmt"
)

// NotPositiveDefiniteError indicates that the (possibly ridge-adjusted)
// within-class scatter matrix is not positive definite, reported with the
// 1-based order of the first offending leading minor.
type NotPositiveDefiniteError int

func (e NotPositiveDefiniteError) Error() string {
	return fmt.Sprintf("lda: within-class scatter is not positive definite: leading minor of order %d", int(e))
}

var (
	ErrNotConverged  = errors.New("lda: eigensolver failed to converge")
	ErrTooFewClasses = errors.New("lda: fewer than two classes in the data")
)
