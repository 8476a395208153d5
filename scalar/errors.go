// SPDX-License-Identifier: MIT

package scalar

import "errors"

var (
	// ErrDivisionByZero is returned when dividing by a zero-valued element,
	// including zero raised to a negative power.
	ErrDivisionByZero = errors.New("scalar: division by zero")

	// ErrUndefinedArgument is returned by Complex.Argument at the origin.
	ErrUndefinedArgument = errors.New("scalar: argument undefined at the origin")

	// ErrNotFinite signals a NaN or ±Inf where a finite value is required.
	ErrNotFinite = errors.New("scalar: NaN or Inf encountered")

	// ErrSyntax is returned by the Parse* helpers on malformed numbers.
	ErrSyntax = errors.New("scalar: invalid number syntax")
)
