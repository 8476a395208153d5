// SPDX-License-Identifier: MIT
// Package matrix provides the structural and cofactor kernels: multiplication,
// transpose, vertical stacking, minors, the determinant and the inverse.
//
// Purpose:
//   - Define operation tags and the shared error wrapper.
//   - Implement the kernels that need only ring arithmetic (no division),
//     so they also run over polynomial entries.
//
// Notes:
//   - All kernels use the central validators and wrap failures with
//     matrixErrorf at the facade.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvalgebra/scalar"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew         = "New"
	opZeros       = "Zeros"
	opIdentity    = "Identity"
	opFromFloats  = "FromFloats"
	opToComplex   = "ToComplex"
	opToGonum     = "ToGonum"
	opFromGonum   = "FromGonum"
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opScale       = "Scale"
	opTranspose   = "Transpose"
	opStack       = "Stack"
	opMinor       = "Minor"
	opDeterminant = "Determinant"
	opReduce      = "Reduce"
	opInverse     = "Inverse"
	opNullspace   = "Nullspace"
	opCharPoly    = "CharacteristicPolynomial"
	opEigen       = "Eigen"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
//
// Notes:
//   - Use only when err != nil; wrapping nil yields a non-nil error.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the matrix product a·b.
// Implementation:
//   - Stage 1: validate a.Cols == b.Rows.
//   - Stage 2: i→k→j accumulation, skipping exactly-zero a[i,k].
//
// Errors: ErrNilMatrix, ErrIncompatibleDimensions.
// Complexity: O(r·n·c).
func Mul[T scalar.Ring[T]](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out := like[T](a, a.r, b.c)
	for i := 0; i < a.r; i++ {
		dst := out.row(i)
		for k := 0; k < a.c; k++ {
			aik := a.at(i, k)
			if aik.IsZero() {
				continue // skip zero for performance
			}
			src := b.row(k)
			for j := range dst {
				dst[j] = dst[j].Add(aik.Mul(src[j]))
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ. Entries are copied, never recomputed, so
// Transpose(Transpose(m)) equals m exactly.
func Transpose[T scalar.Ring[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return m.transpose(), nil
}

func (m *Dense[T]) transpose() *Dense[T] {
	out := like[T](m, m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.set(j, i, m.at(i, j))
		}
	}

	return out
}

// Stack concatenates bottom under top. Both must share the column count.
func Stack[T scalar.Ring[T]](top, bottom *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(top); err != nil {
		return nil, matrixErrorf(opStack, err)
	}
	if err := ValidateNotNil(bottom); err != nil {
		return nil, matrixErrorf(opStack, err)
	}
	if top.c != bottom.c {
		return nil, matrixErrorf(opStack, ErrIncompatibleDimensions)
	}
	out := like[T](top, top.r+bottom.r, top.c)
	copy(out.data, top.data)
	copy(out.data[len(top.data):], bottom.data)

	return out, nil
}

// Minor returns the (n−1)×(n−1) matrix obtained by deleting row and col.
// Errors: ErrIncompatibleDimensions when m is not square or is 1×1,
// ErrOutOfRange on bad indices.
func Minor[T scalar.Ring[T]](m *Dense[T], row, col int) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateIndex(m, row, col); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if m.r == 1 {
		// A 1×1 matrix has no 0×0 minor in this model.
		return nil, matrixErrorf(opMinor, ErrIncompatibleDimensions)
	}

	return m.minor(row, col), nil
}

// minor skips validation; callers guarantee a square m with n >= 2.
func (m *Dense[T]) minor(row, col int) *Dense[T] {
	n := m.r - 1
	out := like[T](m, n, n)
	k := 0
	for i := 0; i < m.r; i++ {
		if i == row {
			continue
		}
		for j := 0; j < m.c; j++ {
			if j == col {
				continue
			}
			out.data[k] = m.at(i, j)
			k++
		}
	}

	return out
}

// Determinant computes det(m) by cofactor expansion along the first row:
// Σ_j (−1)^j · m[0,j] · det(minor(0,j)).
//
// Implementation:
//   - Stage 1: validate m is square.
//   - Stage 2: recurse; n == 1 returns the sole entry.
//
// Behavior highlights:
//   - Uses ring operations only, so it is exact for any entry type,
//     including polynomials (see CharacteristicPolynomial).
//   - Exactly-zero cofactor weights are skipped.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level.
func Determinant[T scalar.Ring[T]](m *Dense[T]) (T, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		var zero T

		return zero, matrixErrorf(opDeterminant, err)
	}

	return m.det(), nil
}

func (m *Dense[T]) det() T {
	if m.r == 1 {
		return m.data[0]
	}
	var acc T
	for j := 0; j < m.c; j++ {
		a0j := m.at(0, j)
		if a0j.IsZero() {
			continue // skip zero for performance
		}
		term := a0j.Mul(m.minor(0, j).det())
		if j%2 == 0 {
			acc = acc.Add(term)
		} else {
			acc = acc.Sub(term)
		}
	}

	return acc
}

// Inverse returns m⁻¹ as the transform accumulated by Reduce.
//
// Errors:
//   - ErrIncompatibleDimensions when m is not square.
//   - ErrSingular (which also matches ErrIncompatibleDimensions) when the
//     reduction finds fewer than n pivots above eps·max|m_ij|.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse[T scalar.Field[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	red, err := Reduce(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if red.Rank() < m.r {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}

	return red.Transform, nil
}
