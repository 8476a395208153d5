// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvalgebra/scalar"

// Nullspace returns a basis of {v : m·v = 0} as Cols(m)×1 column vectors.
//
// Implementation:
//   - Stage 1: reduce mᵀ, tracking the transform P (so P·mᵀ = RREF), with
//     the same scale-relative zero threshold as Reduce.
//   - Stage 2: every zero row i of the RREF gives P[i]·mᵀ = 0, hence
//     m·P[i]ᵀ = 0; emit P[i] as a column vector.
//   - Stage 3: drop vectors equal (within eps) to one already emitted.
//
// Behavior highlights:
//   - A matrix of full column rank yields an empty, non-nil slice.
//   - Vectors are returned in row order of P, which is deterministic.
//
// Complexity:
//   - Time O(c²·(c+r)), Space O(c·(c+r)).
func Nullspace[T scalar.Field[T]](m *Dense[T]) ([]*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNullspace, err)
	}

	return nullspace(m, m.eps*maxMagnitude(m))
}

// nullspace is Nullspace with an explicit absolute zero threshold.
func nullspace[T scalar.Field[T]](m *Dense[T], threshold float64) ([]*Dense[T], error) {
	red, err := reduce(m.transpose(), threshold)
	if err != nil {
		return nil, matrixErrorf(opNullspace, err)
	}

	basis := make([]*Dense[T], 0, m.c-red.Rank())
	for i := red.Rank(); i < red.RREF.r; i++ {
		v := like[T](m, m.c, 1)
		copy(v.data, red.Transform.row(i))
		if containsVector(basis, v) {
			continue
		}
		basis = append(basis, v)
	}

	return basis, nil
}

func containsVector[T scalar.Ring[T]](set []*Dense[T], v *Dense[T]) bool {
	for _, u := range set {
		if u.Equal(v) {
			return true
		}
	}

	return false
}
