// SPDX-License-Identifier: MIT

// Package scalar defines the numeric element types the lvalgebra kernels run on.
//
// What & Why:
//
//	Every algorithm in matrix and poly is written once, over the Ring and
//	Field constraints declared here, and instantiated for concrete element
//	types. Two concrete kinds ship with the package:
//
//	  - Real    arbitrary-precision real backed by math/big.Float.
//	  - Complex immutable pair of float64 components.
//
//	poly.Poly also satisfies Ring, which is how the same cofactor determinant
//	evaluates a matrix of polynomials when building a characteristic polynomial.
//
// Conventions:
//
//   - Values are immutable: every operation returns a fresh value.
//   - The zero value of every element type is its additive identity.
//   - IsZero is exact; Close is the tolerance-based comparison used by matrices.
//   - Division by zero is reported with ErrDivisionByZero, never a panic.
package scalar
