// SPDX-License-Identifier: MIT
// Package matrix: eigen-decomposition through the characteristic polynomial.
//
// Purpose:
//   - Build xI − A as a matrix of polynomials and reuse the generic cofactor
//     Determinant to obtain the characteristic polynomial symbolically.
//   - Extract eigenvalues with the Durand–Kerner root finder (poly.Roots).
//   - Compute eigenvectors as nullspace bases of A − λI.
//
// Determinism:
//   - The root finder starts from fixed seeds, so eigenvalues come back in a
//     reproducible order for a given input.
//
// Notes:
//   - Everything runs over Complex; Real inputs are projected first, which
//     drops precision beyond float64.
//   - Roots are rounded to the configured places; a multiple root comes back
//     as repeated identical values. EigenMap merges values only at that
//     rounding precision.
//   - Eigenvector nullspaces use a threshold relative to the scale of m,
//     widened from 10^-(places-1) up to max(eps, 10^-(places/2)) until the
//     eigenspace is found.

package matrix

import (
	"github.com/katalvlaran/lvalgebra/poly"
	"github.com/katalvlaran/lvalgebra/scalar"
)

// Eigenpair couples a distinct eigenvalue with a basis of its eigenspace.
type Eigenpair struct {
	Value   scalar.Complex
	Vectors []*Dense[scalar.Complex]
}

// CharacteristicPolynomial returns det(xI − m).
//
// Implementation:
//   - Stage 1: validate m is square, project onto Complex.
//   - Stage 2: diagonal entries x − a_ii, off-diagonal −a_ij (constants).
//   - Stage 3: Determinant over the polynomial ring.
//
// Complexity:
//   - Time O(n!·n²) coefficient operations.
func CharacteristicPolynomial[T scalar.Field[T]](m *Dense[T]) (poly.Poly[scalar.Complex], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return poly.Poly[scalar.Complex]{}, matrixErrorf(opCharPoly, err)
	}
	n := m.r
	xi := like[poly.Poly[scalar.Complex]](m, n, n)
	one := scalar.NewComplex(1, 0)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a := m.at(i, j).Complex().Neg()
			if i == j {
				xi.set(i, j, poly.New(a, one))
			} else {
				xi.set(i, j, poly.Constant(a))
			}
		}
	}

	return xi.det(), nil
}

// Eigenvalues returns the n complex roots of the characteristic polynomial,
// rounded to the configured places. Repeated eigenvalues appear once per
// multiplicity, as the root finder reports them.
//
// Errors: ErrIncompatibleDimensions for non-square m, poly.ErrNonConvergence
// when the iteration cap is reached.
func Eigenvalues[T scalar.Field[T]](m *Dense[T], opts ...Option) ([]scalar.Complex, error) {
	cp, err := CharacteristicPolynomial(m)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	o := gatherOptions(m.options(), opts...)
	roots, err := poly.Roots(cp, o.rootOptions()...)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}

	return roots, nil
}

// Eigenvectors returns a basis of the eigenspace of lambda, the nullspace of
// m − λI.
//
// Implementation:
//   - Stage 1: build m − λI over Complex.
//   - Stage 2: take its nullspace with the zero threshold t·s, where
//     s = max(max|m_ij|, |λ|). t starts at the eigen start tolerance and
//     grows tenfold until a vector appears or t reaches the eigen tolerance.
//
// Behavior highlights:
//   - Rounding λ to places decimals leaves a residual in m − λI that grows
//     with the entries of m; the threshold scales with them.
//   - The widest threshold bounds how close another eigenvalue may be before
//     its eigenspace is merged in.
//   - A lambda that is not an eigenvalue yields an empty, non-nil slice.
func Eigenvectors[T scalar.Field[T]](m *Dense[T], lambda scalar.Complex, opts ...Option) ([]*Dense[scalar.Complex], error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	o := gatherOptions(m.options(), opts...)

	return eigenvectors(m, lambda, o)
}

func eigenvectors[T scalar.Field[T]](m *Dense[T], lambda scalar.Complex, o Options) ([]*Dense[scalar.Complex], error) {
	shifted := newDense[scalar.Complex](m.r, m.c, o.eps)
	scale := lambda.Magnitude()
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			v := m.at(i, j).Complex()
			if a := v.Magnitude(); a > scale {
				scale = a
			}
			if i == j {
				v = v.Sub(lambda)
			}
			shifted.set(i, j, v)
		}
	}

	hi := o.eigenTolerance()
	for t := o.eigenStartTolerance(); ; t *= 10 {
		if t > hi {
			t = hi
		}
		vecs, err := nullspace(shifted, t*scale)
		if err != nil {
			return nil, matrixErrorf(opEigen, err)
		}
		if len(vecs) > 0 || t >= hi {
			return vecs, nil
		}
	}
}

// EigenMap pairs every distinct eigenvalue with its eigenvectors.
// Eigenvalues are distinct when they differ at the precision Eigenvalues
// reports them (half a unit in the last rounded place); pairs keep the order
// in which the root finder first reported each value.
func EigenMap[T scalar.Field[T]](m *Dense[T], opts ...Option) ([]Eigenpair, error) {
	vals, err := Eigenvalues(m, opts...)
	if err != nil {
		return nil, err
	}
	o := gatherOptions(m.options(), opts...)
	same := o.rootResolution()

	pairs := make([]Eigenpair, 0, len(vals))
next:
	for _, lambda := range vals {
		for _, p := range pairs {
			if p.Value.Close(lambda, same) {
				continue next // repeated root
			}
		}
		vecs, err := eigenvectors(m, lambda, o)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, Eigenpair{Value: lambda, Vectors: vecs})
	}

	return pairs, nil
}

// options returns the defaults with m's tolerance.
func (m *Dense[T]) options() Options {
	o := defaultOptions()
	o.eps = m.eps

	return o
}
