// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/stretchr/testify/require"
)

func TestDefaultOptions_Documented(t *testing.T) {
	t.Parallel()

	eps, places, maxIter, tol := matrix.OptionsSnapshot()
	require.Equal(t, matrix.DefaultEpsilon, eps)
	require.Equal(t, matrix.DefaultRootPlaces, places)
	require.Equal(t, matrix.DefaultMaxIterations, maxIter)
	require.InDelta(t, 1e-4, tol, 1e-18)
}

func TestOptions_LastWriterWins(t *testing.T) {
	t.Parallel()

	eps, places, maxIter, _ := matrix.OptionsSnapshot(
		matrix.WithEpsilon(1e-3), matrix.WithEpsilon(1e-6),
		matrix.WithRootPlaces(4), matrix.WithMaxIterations(0),
		nil,
	)
	require.Equal(t, 1e-6, eps)
	require.Equal(t, 4, places)
	require.Equal(t, 0, maxIter)
}

func TestOptions_EigenToleranceNeverBelowEps(t *testing.T) {
	t.Parallel()

	_, _, _, tol := matrix.OptionsSnapshot(matrix.WithRootPlaces(12))
	require.InDelta(t, 1e-6, tol, 1e-18)

	_, _, _, tol = matrix.OptionsSnapshot(matrix.WithRootPlaces(12), matrix.WithEpsilon(1e-2))
	require.Equal(t, 1e-2, tol)
}

func TestOptions_EigenToleranceRange(t *testing.T) {
	t.Parallel()

	start, widest, resolution := matrix.EigenTolerances()
	require.InEpsilon(t, 1e-7, start, 1e-9)
	require.InEpsilon(t, 1e-4, widest, 1e-9)
	require.InEpsilon(t, 5e-9, resolution, 1e-9)

	// Few places: the range collapses to a single threshold.
	start, widest, resolution = matrix.EigenTolerances(matrix.WithRootPlaces(2))
	require.InEpsilon(t, 0.1, start, 1e-9)
	require.InEpsilon(t, 0.1, widest, 1e-9)
	require.InEpsilon(t, 0.005, resolution, 1e-9)

	start, widest, _ = matrix.EigenTolerances(matrix.WithEpsilon(1e-2))
	require.Equal(t, 1e-2, start)
	require.Equal(t, 1e-2, widest)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { matrix.WithEpsilon(-1) })
	require.Panics(t, func() { matrix.WithEpsilon(math.NaN()) })
	require.Panics(t, func() { matrix.WithEpsilon(math.Inf(1)) })
	require.Panics(t, func() { matrix.WithRootPlaces(-1) })
	require.Panics(t, func() { matrix.WithRootPlaces(16) })
	require.Panics(t, func() { matrix.WithMaxIterations(-5) })
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}

func TestOptions_EpsilonInherited(t *testing.T) {
	t.Parallel()

	a := MustReal(t, [][]float64{{1, 2}, {3, 4}}, matrix.WithEpsilon(0.5))
	b := MustReal(t, [][]float64{{1.4, 2}, {3, 4}})
	require.Equal(t, 0.5, a.Eps())
	require.Equal(t, matrix.DefaultEpsilon, b.Eps())

	// Equal uses the receiver's tolerance.
	require.True(t, a.Equal(b))
	require.False(t, b.Equal(a))

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, 0.5, sum.Eps())

	tr, err := matrix.Transpose(a)
	require.NoError(t, err)
	require.Equal(t, 0.5, tr.Eps())
}
