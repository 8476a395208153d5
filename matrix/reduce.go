// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvalgebra/scalar"

// Reduction is the paired result of Gauss-Jordan elimination.
//
// RREF is the reduced row-echelon form of the input: leading ones, zeros
// elsewhere in pivot columns, zero rows last. Transform is the r×r matrix
// accumulating every row operation, so Transform·A == RREF. For a square
// full-rank A, Transform is A⁻¹.
type Reduction[T scalar.Field[T]] struct {
	RREF      *Dense[T]
	Transform *Dense[T]

	rank int
}

// Rank returns the number of pivot rows.
func (red *Reduction[T]) Rank() int { return red.rank }

// Reduce runs Gauss-Jordan elimination on m, tracking the transform.
//
// Implementation:
//   - Stage 1: W = copy of m, P = r×r identity, lead = 0. The zero threshold
//     is eps·max|m_ij|, so the rank of m does not depend on its scale.
//   - Stage 2: for each column c, scan rows lead..r−1 top-down for the first
//     entry above the threshold. Columns without one are skipped.
//   - Stage 3: scale the pivot row (W and P) so the pivot becomes exactly 1,
//     eliminate column c from every other row (W and P), then swap the pivot
//     row into position lead and advance lead.
//   - Stage 4: move any remaining zero rows of W to the bottom, carrying the
//     matching rows of P, preserving relative order.
//
// Behavior highlights:
//   - Pivoting is naive top-down, not partial pivoting by magnitude.
//   - Pivot columns are written as exact 1/0; entries of W under the
//     threshold are snapped to zero, so printed RREFs do not carry round-off
//     noise.
//   - A matrix whose entries are all tiny but exact (diag(1e-10, 1e-10)) is
//     still of full rank; only the zero matrix has threshold 0 and rank 0.
//   - P is always r×r, so rows of P are valid left-null combinations even
//     for non-square m.
//
// Errors:
//   - ErrNilMatrix for nil m; division failures are wrapped and returned.
//
// Complexity:
//   - Time O(r²·(r+c)), Space O(r·(r+c)).
func Reduce[T scalar.Field[T]](m *Dense[T]) (*Reduction[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opReduce, err)
	}

	return reduce(m, m.eps*maxMagnitude(m))
}

// reduce is Reduce with an explicit absolute zero threshold.
func reduce[T scalar.Field[T]](m *Dense[T], threshold float64) (*Reduction[T], error) {
	w := m.Clone()
	w.eps = threshold // every zero test below runs against the threshold
	p := like[T](m, m.r, m.r)
	p.fillIdentity()

	var zero T
	one := zero.One()
	lead := 0
	for col := 0; col < w.c && lead < w.r; col++ {
		piv := -1
		for i := lead; i < w.r; i++ {
			if !w.isZero(w.at(i, col)) {
				piv = i
				break
			}
		}
		if piv < 0 {
			continue // no pivot in this column
		}

		inv, err := w.at(piv, col).One().Div(w.at(piv, col))
		if err != nil {
			return nil, matrixErrorf(opReduce, err)
		}
		scaleRow(w, piv, inv)
		scaleRow(p, piv, inv)
		w.set(piv, col, one)

		for i := 0; i < w.r; i++ {
			if i == piv {
				continue
			}
			f := w.at(i, col)
			if f.IsZero() {
				continue
			}
			subRow(w, i, piv, f)
			subRow(p, i, piv, f)
			w.set(i, col, zero)
		}

		swapRows(w, piv, lead)
		swapRows(p, piv, lead)
		lead++
	}

	for k, v := range w.data {
		if w.isZero(v) {
			w.data[k] = zero
		}
	}
	rank := sinkZeroRows(w, p)
	w.eps = m.eps // results carry the caller's tolerance

	return &Reduction[T]{RREF: w, Transform: p, rank: rank}, nil
}

// maxMagnitude returns max |m_ij| (0 for the zero matrix).
func maxMagnitude[T scalar.Field[T]](m *Dense[T]) float64 {
	var hi float64
	for _, v := range m.data {
		if a := v.Complex().Magnitude(); a > hi {
			hi = a
		}
	}

	return hi
}

// scaleRow multiplies row i by s in place.
func scaleRow[T scalar.Ring[T]](m *Dense[T], i int, s T) {
	r := m.row(i)
	for j := range r {
		r[j] = r[j].Mul(s)
	}
}

// subRow performs row_i -= f·row_src in place.
func subRow[T scalar.Ring[T]](m *Dense[T], i, src int, f T) {
	dst, s := m.row(i), m.row(src)
	for j := range dst {
		if s[j].IsZero() {
			continue
		}
		dst[j] = dst[j].Sub(f.Mul(s[j]))
	}
}

// swapRows exchanges rows i and k in place.
func swapRows[T scalar.Ring[T]](m *Dense[T], i, k int) {
	if i == k {
		return
	}
	a, b := m.row(i), m.row(k)
	for j := range a {
		a[j], b[j] = b[j], a[j]
	}
}

// sinkZeroRows stably moves zero rows of w to the bottom, reordering p's
// rows the same way, and returns the number of nonzero rows.
func sinkZeroRows[T scalar.Ring[T]](w, p *Dense[T]) int {
	order := make([]int, 0, w.r)
	for i := 0; i < w.r; i++ {
		if !w.zeroRow(i) {
			order = append(order, i)
		}
	}
	nonzero := len(order)
	if nonzero == w.r {
		return nonzero
	}
	for i := 0; i < w.r; i++ {
		if w.zeroRow(i) {
			order = append(order, i)
		}
	}
	permuteRows(w, order)
	permuteRows(p, order)

	return nonzero
}

// permuteRows rewrites m so that new row k is old row order[k].
func permuteRows[T scalar.Ring[T]](m *Dense[T], order []int) {
	data := make([]T, len(m.data))
	for k, src := range order {
		copy(data[k*m.c:(k+1)*m.c], m.row(src))
	}
	m.data = data
}

// RREF returns the reduced row-echelon form of m.
func RREF[T scalar.Field[T]](m *Dense[T]) (*Dense[T], error) {
	red, err := Reduce(m)
	if err != nil {
		return nil, err
	}

	return red.RREF, nil
}

// Rank counts the leading nonzero rows of RREF(m).
func Rank[T scalar.Field[T]](m *Dense[T]) (int, error) {
	red, err := Reduce(m)
	if err != nil {
		return 0, err
	}

	return red.Rank(), nil
}

// Nullity returns Cols(m) − Rank(m).
func Nullity[T scalar.Field[T]](m *Dense[T]) (int, error) {
	rank, err := Rank(m)
	if err != nil {
		return 0, err
	}

	return m.c - rank, nil
}
