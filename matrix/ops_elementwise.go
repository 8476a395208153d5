// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise kernels: Add, Sub and Scale.
//   - Keep all loops deterministic over the flat row-major buffer.
//
// Determinism & Performance:
//   - Single pass over data, O(r*c) time and space.
//   - Results inherit the tolerance of the left operand.

package matrix

import "github.com/katalvlaran/lvalgebra/scalar"

// zipWith applies op to every pair of entries of same-shaped a and b.
func zipWith[T scalar.Ring[T]](a, b *Dense[T], op func(x, y T) T) *Dense[T] {
	// Allocate result carrying a's tolerance
	out := like[T](a, a.r, a.c)
	// Single pass over the flat row-major buffers (same shape, same layout).
	for k := range a.data {
		out.data[k] = op(a.data[k], b.data[k])
	}

	return out
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrIncompatibleDimensions unless shapes match.
// Complexity: O(r*c).
func Add[T scalar.Ring[T]](a, b *Dense[T]) (*Dense[T], error) {
	// Validate presence and shape using the centralized validator.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}

	return zipWith(a, b, func(x, y T) T { return x.Add(y) }), nil
}

// Sub returns a - b.
// Errors: ErrNilMatrix, ErrIncompatibleDimensions unless shapes match.
// Complexity: O(r*c).
func Sub[T scalar.Ring[T]](a, b *Dense[T]) (*Dense[T], error) {
	// Validate presence and shape.
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	return zipWith(a, b, func(x, y T) T { return x.Sub(y) }), nil
}

// Scale returns s·m. Always succeeds for a non-nil m.
func Scale[T scalar.Ring[T]](m *Dense[T], s T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := like[T](m, m.r, m.c)
	for k, v := range m.data {
		out.data[k] = s.Mul(v) // s·v, scalar on the left
	}

	return out, nil
}
