// SPDX-License-Identifier: MIT
// Package matrix: conversions between element types.
//
// Purpose:
//   - Build Real matrices from plain float64 grids (tests, CLI, literals).
//   - Project any Field matrix onto Complex for the eigen bridge.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvalgebra/scalar"
)

// FromFloats builds a Real matrix from float64 rows at the default precision.
// Errors: ErrInvalidShape on empty or ragged input, scalar.ErrNotFinite on NaN/Inf.
func FromFloats(rows [][]float64, opts ...Option) (*Dense[scalar.Real], error) {
	conv := make([][]scalar.Real, len(rows))
	for i, row := range rows {
		conv[i] = make([]scalar.Real, len(row))
		for j, f := range row {
			v, err := scalar.FromFloat64(f, 0)
			if err != nil {
				return nil, matrixErrorf(opFromFloats, fmt.Errorf("entry (%d,%d): %w", i, j, err))
			}
			conv[i][j] = v
		}
	}
	m, err := New(conv, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromFloats, err)
	}

	return m, nil
}

// ToComplex projects every entry of m onto the complex plane, keeping m's
// tolerance.
func ToComplex[T scalar.Field[T]](m *Dense[T]) (*Dense[scalar.Complex], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToComplex, err)
	}
	out := like[scalar.Complex](m, m.r, m.c)
	for k, v := range m.data {
		out.data[k] = v.Complex()
	}

	return out, nil
}
