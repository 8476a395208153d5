// SPDX-License-Identifier: MIT

package poly

import (
	"errors"
	"fmt"
)

var (
	// ErrNonConvergence is returned by Roots when the iteration cap is reached
	// before every candidate settles.
	ErrNonConvergence = errors.New("poly: root finder did not converge")

	// ErrZeroPolynomial signals an operation that is undefined for p == 0
	// (every point is a root).
	ErrZeroPolynomial = errors.New("poly: zero polynomial")
)

// Operation tags used to prefix wrapped errors.
const (
	opDivScalar = "DivScalar"
	opRoots     = "Roots"
)

// polyErrorf wraps err with the operation tag; callers match with errors.Is.
func polyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
