// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels (wrapped with an
// operation tag) and tests MUST check them via errors.Is. No algorithm panics
// on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." so failures grep cleanly.
// Operation context is added by matrixErrorf ("Inverse: matrix: ...");
// callers still match with errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape/index -> dimension mismatch -> singular.

var (
	// ErrInvalidShape is returned when a matrix would have no rows, no columns,
	// or rows of unequal length.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside [0, dim).
	// Public accessors (At/Row/Col/Minor) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrIncompatibleDimensions indicates operands whose shapes do not fit the
	// operation: Add/Sub on different shapes, Mul where a.Cols != b.Rows, Stack
	// on different column counts, or a non-square input where one is required.
	ErrIncompatibleDimensions = errors.New("matrix: incompatible dimensions")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// ErrSingular is returned by Inverse when the determinant is zero within eps.
// It wraps ErrIncompatibleDimensions, so errors.Is matches either sentinel.
var ErrSingular = fmt.Errorf("%w: singular matrix", ErrIncompatibleDimensions)
