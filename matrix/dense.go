// SPDX-License-Identifier: MIT
// Package matrix provides core linear algebra primitives over a generic scalar ring.
// Dense is the concrete, row-major matrix type, storing elements in a flat
// slice for cache friendliness.
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvalgebra/scalar"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is an immutable row-major matrix of T values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// No exported method mutates a Dense after construction.
type Dense[T scalar.Ring[T]] struct {
	r, c int     // number of rows and columns, both >= 1
	data []T     // flat backing storage, length == r*c
	eps  float64 // tolerance for zero tests and Equal
}

// newDense allocates an r×c zero matrix without validation.
// Callers guarantee r, c >= 1.
func newDense[T scalar.Ring[T]](r, c int, eps float64) *Dense[T] {
	return &Dense[T]{r: r, c: c, data: make([]T, r*c), eps: eps}
}

// like allocates an r×c zero matrix carrying m's tolerance.
func like[T scalar.Ring[T], U scalar.Ring[U]](m *Dense[U], r, c int) *Dense[T] {
	return newDense[T](r, c, m.eps)
}

// New builds a matrix from nested rows, copying every entry.
// Stage 1 (Validate): at least one row and one column; all rows of equal length.
// Stage 2 (Prepare): resolve options, allocate flat storage.
// Stage 3 (Finalize): copy rows in order.
// Errors: ErrInvalidShape on empty or ragged input.
// Complexity: O(r*c).
func New[T scalar.Ring[T]](rows [][]T, opts ...Option) (*Dense[T], error) {
	// Validate shape: non-empty, rectangular
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opNew, ErrInvalidShape)
	}
	c := len(rows[0])
	for i := range rows {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opNew, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(rows[i]), c, ErrInvalidShape))
		}
	}

	// Resolve tolerance and allocate flat storage
	o := gatherOptions(defaultOptions(), opts...)
	m := newDense[T](len(rows), c, o.eps)
	for i, row := range rows {
		copy(m.data[i*c:(i+1)*c], row) // row i occupies data[i*c : (i+1)*c]
	}

	return m, nil
}

// Zeros returns an r×c matrix of additive identities.
func Zeros[T scalar.Ring[T]](r, c int, opts ...Option) (*Dense[T], error) {
	// Validate dimensions
	if r <= 0 || c <= 0 {
		return nil, matrixErrorf(opZeros, ErrInvalidShape)
	}
	o := gatherOptions(defaultOptions(), opts...)

	return newDense[T](r, c, o.eps), nil
}

// Identity returns the n×n identity matrix.
func Identity[T scalar.Ring[T]](n int, opts ...Option) (*Dense[T], error) {
	return IdentityShaped[T](n, n, opts...)
}

// IdentityShaped returns an r×c matrix with ones on the main diagonal and
// zeros elsewhere, also when r != c.
func IdentityShaped[T scalar.Ring[T]](r, c int, opts ...Option) (*Dense[T], error) {
	m, err := Zeros[T](r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	m.fillIdentity()

	return m, nil
}

// fillIdentity writes the multiplicative identity on the main diagonal.
func (m *Dense[T]) fillIdentity() {
	var zero T
	one := zero.One()
	for i := 0; i < m.r && i < m.c; i++ { // stop at the shorter side
		m.data[i*m.c+i] = one
	}
}

// Rows returns the number of rows in the matrix.
func (m *Dense[T]) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
func (m *Dense[T]) Cols() int {
	return m.c // return stored column count
}

// Size returns (rows, cols).
func (m *Dense[T]) Size() (rows, cols int) { return m.r, m.c }

// Eps returns the tolerance the matrix was built with.
func (m *Dense[T]) Eps() float64 { return m.eps }

// at reads (i, j) without bounds checks.
func (m *Dense[T]) at(i, j int) T { return m.data[i*m.c+j] }

// set writes (i, j) without bounds checks. Only used on freshly built results.
func (m *Dense[T]) set(i, j int, v T) { m.data[i*m.c+j] = v }

// row returns the live backing slice of row i.
func (m *Dense[T]) row(i int) []T { return m.data[i*m.c : (i+1)*m.c] }

// At retrieves the element at (row, col).
// Stage 1 (Validate): nil receiver and bounds.
// Stage 2 (Execute): read from the flat slice.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	var zero T
	if m == nil {
		return zero, denseErrorf("At", row, col, ErrNilMatrix)
	}
	// Validate row and column index
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return zero, denseErrorf("At", row, col, ErrOutOfRange)
	}

	// Return stored value
	return m.at(row, col), nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if m == nil {
		return nil, denseErrorf("Row", i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	// Copy so callers cannot reach the backing slice
	out := make([]T, m.c)
	copy(out, m.row(i))

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense[T]) Col(j int) ([]T, error) {
	if m == nil {
		return nil, denseErrorf("Col", 0, j, ErrNilMatrix)
	}
	if j < 0 || j >= m.c {
		return nil, denseErrorf("Col", 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ { // stride c through the flat slice
		out[i] = m.at(i, j)
	}

	return out, nil
}

// Slices returns a copy of the entries as nested rows.
func (m *Dense[T]) Slices() [][]T {
	out := make([][]T, m.r)
	for i := range out {
		out[i] = make([]T, m.c)
		copy(out[i], m.row(i))
	}

	return out
}

// Clone returns a deep copy.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	// Allocate new slice for data copy
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: data, eps: m.eps}
}

// isZero is the tolerance-based zero test used by every kernel.
func (m *Dense[T]) isZero(v T) bool {
	var zero T

	return v.Close(zero, m.eps)
}

// zeroRow reports whether every entry of row i is zero within eps.
func (m *Dense[T]) zeroRow(i int) bool {
	for _, v := range m.row(i) {
		if !m.isZero(v) {
			return false
		}
	}

	return true
}

// IsZeroRow reports whether row i is zero within the matrix tolerance.
func (m *Dense[T]) IsZeroRow(i int) (bool, error) {
	if m == nil {
		return false, denseErrorf("IsZeroRow", i, 0, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return false, denseErrorf("IsZeroRow", i, 0, ErrOutOfRange)
	}

	return m.zeroRow(i), nil
}

// Equal reports whether m and o have the same shape and every pair of entries
// agrees within m's tolerance.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}

	return m.EqualWithin(o, m.eps)
}

// EqualWithin is Equal with an explicit tolerance.
func (m *Dense[T]) EqualWithin(o *Dense[T], eps float64) bool {
	if m == nil || o == nil {
		return m == o
	}
	// Shapes must match before any entry is compared
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data { // same layout, so flat indices line up
		if !m.data[k].Close(o.data[k], eps) {
			return false
		}
	}

	return true
}

// String renders one row per line, entries separated by tabs, each line
// terminated by a newline.
func (m *Dense[T]) String() string {
	if m == nil {
		return "<nil>"
	}
	var b strings.Builder
	for i := 0; i < m.r; i++ { // iterate over rows
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteByte('\t') // separate values with a tab
			}
			b.WriteString(m.at(i, j).String())
		}
		b.WriteByte('\n') // close row
	}

	return b.String()
}
