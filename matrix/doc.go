// SPDX-License-Identifier: MIT

// Package matrix implements immutable dense matrices over a generic scalar
// ring and the exact-arithmetic linear-algebra kernels built on them.
//
// The matrix package provides:
//
//   - Dense[T], a row-major matrix whose entries satisfy scalar.Ring (or
//     scalar.Field where division is needed), with bounds-checked accessors
//     that always return defensive copies.
//   - Element-wise and structural kernels: Add, Sub, Scale, Mul, Transpose,
//     Stack, Minor.
//   - Reduce, one Gauss-Jordan pass that returns the RREF and the
//     accumulated row-operation transform together. RREF, Rank, Nullity,
//     Inverse and Nullspace are all derived from it.
//   - Determinant by cofactor expansion. It uses ring operations only, so it
//     also evaluates matrices of polynomials.
//   - The eigen bridge: CharacteristicPolynomial, Eigenvalues (complex roots
//     by Durand–Kerner), Eigenvectors and EigenMap.
//
// Numeric policy:
//
//	Every matrix carries a tolerance eps (WithEpsilon, default 1e-9) that
//	drives pivot selection, zero-row detection, the singular check and
//	Equal. Derived matrices inherit the tolerance of their left operand.
//
// Errors are package sentinels (ErrInvalidShape, ErrOutOfRange,
// ErrIncompatibleDimensions, ErrSingular, ErrNilMatrix) wrapped with the
// operation name; match them with errors.Is.
//
// The cofactor determinant is O(n!). Matrices beyond roughly 8×8 are outside
// the intended scale.
package matrix
