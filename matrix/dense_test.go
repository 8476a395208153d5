// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/katalvlaran/lvalgebra/scalar"
	"github.com/stretchr/testify/require"
)

func TestNew_ShapeValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
	}{
		{"no rows", [][]float64{}},
		{"nil", nil},
		{"empty row", [][]float64{{}}},
		{"ragged", [][]float64{{1, 2}, {3}}},
	}
	for _, tc := range tests {
		_, err := matrix.FromFloats(tc.rows)
		require.ErrorIsf(t, err, matrix.ErrInvalidShape, tc.name)
	}

	_, err := matrix.Zeros[scalar.Real](0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
	_, err = matrix.Identity[scalar.Complex](-1)
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
}

func TestNew_CopiesInput(t *testing.T) {
	t.Parallel()

	rows := [][]scalar.Complex{{scalar.NewComplex(1, 0), scalar.NewComplex(2, 0)}}
	m, err := matrix.New(rows)
	require.NoError(t, err)
	rows[0][0] = scalar.NewComplex(99, 0)

	require.True(t, MustAt(t, m, 0, 0).Equal(scalar.NewComplex(1, 0)))
}

func TestAccessors_BoundsAndDefensiveCopies(t *testing.T) {
	t.Parallel()

	m := MustReal(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	r, c := m.Size()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)

	for _, idx := range [][2]int{{-1, 0}, {2, 0}, {0, 3}, {0, -1}} {
		_, err := m.At(idx[0], idx[1])
		require.ErrorIsf(t, err, matrix.ErrOutOfRange, "At(%d,%d)", idx[0], idx[1])
	}
	_, err := m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Col(3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Len(t, row, 3)
	row[0] = scalar.NewReal(100)
	requireNearReal(t, m, 1, 0, 4)

	col, err := m.Col(2)
	require.NoError(t, err)
	require.Equal(t, "3", col[0].String())
	require.Equal(t, "6", col[1].String())
	col[1] = scalar.NewReal(-1)
	requireNearReal(t, m, 1, 2, 6)

	s := m.Slices()
	s[0][0] = scalar.NewReal(7)
	requireNearReal(t, m, 0, 0, 1)

	var nilM *matrix.Dense[scalar.Real]
	_, err = nilM.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestIdentityShaped(t *testing.T) {
	t.Parallel()

	m, err := matrix.IdentityShaped[scalar.Real](2, 3)
	require.NoError(t, err)
	require.Equal(t, "1\t0\t0\n0\t1\t0\n", m.String())

	m, err = matrix.IdentityShaped[scalar.Real](3, 2)
	require.NoError(t, err)
	require.Equal(t, "1\t0\n0\t1\n0\t0\n", m.String())
}

func TestString_Canonical(t *testing.T) {
	t.Parallel()

	m := MustReal(t, [][]float64{{1, -2.5}, {0, 4}})
	require.Equal(t, "1\t-2.5\n0\t4\n", m.String())

	c := MustComplex(t, [][]float64{{1, 0}})
	require.Equal(t, "1 + 0i\t0 + 0i\n", c.String())
	require.Equal(t, "1\t-2.5\n0\t4\n", fmt.Sprint(m))
}

func TestEqualAndClone(t *testing.T) {
	t.Parallel()

	a := MustReal(t, fixture123)
	b := a.Clone()
	require.True(t, a.Equal(b))
	require.True(t, a.EqualWithin(MustReal(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9.001}}), 0.01))
	require.False(t, a.Equal(MustReal(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9.001}})))
	require.False(t, a.Equal(MustReal(t, [][]float64{{1, 2, 3}, {4, 5, 6}})))
	require.False(t, a.Equal(nil))
}

func TestIsZeroRow(t *testing.T) {
	t.Parallel()

	m := MustReal(t, [][]float64{{0, 1e-12}, {0, 1}})
	z, err := m.IsZeroRow(0)
	require.NoError(t, err)
	require.True(t, z)
	z, err = m.IsZeroRow(1)
	require.NoError(t, err)
	require.False(t, z)
	_, err = m.IsZeroRow(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestFromFloats_RejectsNonFinite(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromFloats([][]float64{{1, math.Inf(1)}})
	require.ErrorIs(t, err, scalar.ErrNotFinite)
}

func TestToComplex(t *testing.T) {
	t.Parallel()

	c, err := matrix.ToComplex(MustReal(t, [][]float64{{1.5, -2}}, matrix.WithEpsilon(1e-3)))
	require.NoError(t, err)
	require.True(t, MustAt(t, c, 0, 0).Equal(scalar.NewComplex(1.5, 0)))
	require.True(t, MustAt(t, c, 0, 1).Equal(scalar.NewComplex(-2, 0)))
	require.Equal(t, 1e-3, c.Eps())
}
