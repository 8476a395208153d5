// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and must-helpers for kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/katalvlaran/lvalgebra/scalar"
	"github.com/stretchr/testify/require"
)

// MustReal builds a Real matrix from float64 rows or fails the test.
func MustReal(t *testing.T, rows [][]float64, opts ...matrix.Option) *matrix.Dense[scalar.Real] {
	t.Helper()
	m, err := matrix.FromFloats(rows, opts...)
	require.NoError(t, err)

	return m
}

// MustComplex builds a Complex matrix from real-valued float64 rows.
func MustComplex(t *testing.T, rows [][]float64, opts ...matrix.Option) *matrix.Dense[scalar.Complex] {
	t.Helper()
	conv := make([][]scalar.Complex, len(rows))
	for i, row := range rows {
		conv[i] = make([]scalar.Complex, len(row))
		for j, v := range row {
			conv[i][j] = scalar.NewComplex(v, 0)
		}
	}
	m, err := matrix.New(conv, opts...)
	require.NoError(t, err)

	return m
}

// MustIdentity returns the n×n Real identity.
func MustIdentity(t *testing.T, n int) *matrix.Dense[scalar.Real] {
	t.Helper()
	m, err := matrix.Identity[scalar.Real](n)
	require.NoError(t, err)

	return m
}

// MustAt reads (i, j) or fails the test.
func MustAt[T scalar.Ring[T]](t *testing.T, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// requireNearReal asserts m[i,j] ≈ want.
func requireNearReal(t *testing.T, m *matrix.Dense[scalar.Real], i, j int, want float64) {
	t.Helper()
	got := MustAt(t, m, i, j)
	require.InDeltaf(t, want, got.Float64(), 1e-9, "entry (%d,%d) = %v", i, j, got)
}

// Fixtures shared across kernel tests.
var (
	fixture123 = [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	fixtureInv = [][]float64{{2, 1, 1}, {1, 3, 2}, {1, 0, 0}}
	fixtureRot = [][]float64{{0, -1}, {1, 0}}
)
