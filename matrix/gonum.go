// SPDX-License-Identifier: MIT
// Package matrix: float64 interop with gonum.
//
// Purpose:
//   - Hand Real matrices to gonum's LAPACK-backed routines, which the CLI
//     uses as an independent float64 cross-check of the exact kernels.
//   - Import float64 data produced elsewhere.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvalgebra/scalar"
)

// ToGonum rounds every entry of m to the nearest float64.
func ToGonum(m *Dense[scalar.Real]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	data := make([]float64, len(m.data))
	for k, v := range m.data {
		data[k] = v.Float64()
	}

	return mat.NewDense(m.r, m.c, data), nil
}

// FromGonum copies g into a Real matrix at the default precision.
// Errors: ErrInvalidShape for an empty g, scalar.ErrNotFinite on NaN/Inf.
func FromGonum(g mat.Matrix, opts ...Option) (*Dense[scalar.Real], error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	if r == 0 || c == 0 {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("%w: %dx%d", ErrInvalidShape, r, c))
	}
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = mat.Row(nil, i, g)
	}
	m, err := FromFloats(rows, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	return m, nil
}

// GonumEigenvalues computes the eigenvalues of a square Real matrix in
// float64 with gonum's Eigen factorization.
func GonumEigenvalues(m *Dense[scalar.Real]) ([]scalar.Complex, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	g, err := ToGonum(m)
	if err != nil {
		return nil, err
	}
	var eig mat.Eigen
	if ok := eig.Factorize(g, mat.EigenNone); !ok {
		return nil, matrixErrorf(opEigen, fmt.Errorf("gonum: eigen factorization did not converge"))
	}
	vals := eig.Values(nil)
	out := make([]scalar.Complex, len(vals))
	for i, v := range vals {
		out[i] = scalar.NewComplex(real(v), imag(v))
	}

	return out, nil
}
