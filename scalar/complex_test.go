// SPDX-License-Identifier: MIT
package scalar_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvalgebra/scalar"
	"github.com/stretchr/testify/require"
)

func TestComplex_Arithmetic(t *testing.T) {
	t.Parallel()

	a := scalar.NewComplex(1, 2)
	b := scalar.NewComplex(3, -4)

	require.True(t, a.Add(b).Equal(scalar.NewComplex(4, -2)))
	require.True(t, a.Sub(b).Equal(scalar.NewComplex(-2, 6)))
	// (1+2i)(3-4i) = 3 - 4i + 6i + 8 = 11 + 2i
	require.True(t, a.Mul(b).Equal(scalar.NewComplex(11, 2)))
	require.True(t, a.Neg().Equal(scalar.NewComplex(-1, -2)))
	require.True(t, a.Conjugate().Equal(scalar.NewComplex(1, -2)))
	require.True(t, a.Scale(2).Equal(scalar.NewComplex(2, 4)))
}

func TestComplex_Div(t *testing.T) {
	t.Parallel()

	a := scalar.NewComplex(11, 2)
	b := scalar.NewComplex(3, -4)
	q, err := a.Div(b)
	require.NoError(t, err)
	require.True(t, q.Close(scalar.NewComplex(1, 2), 1e-12), "got %v", q)

	// The divisor's magnitude (not the dividend's) normalises the quotient.
	q, err = scalar.NewComplex(1, 0).Div(scalar.NewComplex(0, 2))
	require.NoError(t, err)
	require.True(t, q.Close(scalar.NewComplex(0, -0.5), 1e-15), "got %v", q)

	_, err = a.Div(scalar.Complex{})
	require.ErrorIs(t, err, scalar.ErrDivisionByZero)

	_, err = a.DivReal(0)
	require.ErrorIs(t, err, scalar.ErrDivisionByZero)
	h, err := a.DivReal(2)
	require.NoError(t, err)
	require.True(t, h.Equal(scalar.NewComplex(5.5, 1)))
}

func TestComplex_Pow(t *testing.T) {
	t.Parallel()

	i := scalar.NewComplex(0, 1)
	tests := []struct {
		n    int
		want scalar.Complex
	}{
		{0, scalar.NewComplex(1, 0)},
		{1, i},
		{2, scalar.NewComplex(-1, 0)},
		{3, scalar.NewComplex(0, -1)},
		{4, scalar.NewComplex(1, 0)},
		{-1, scalar.NewComplex(0, -1)},
		{-2, scalar.NewComplex(-1, 0)},
	}
	for _, tc := range tests {
		got, err := i.Pow(tc.n)
		require.NoError(t, err)
		require.Truef(t, got.Close(tc.want, 1e-15), "i^%d = %v, want %v", tc.n, got, tc.want)
	}

	_, err := scalar.Complex{}.Pow(-1)
	require.ErrorIs(t, err, scalar.ErrDivisionByZero)

	z, err := scalar.Complex{}.Pow(3)
	require.NoError(t, err)
	require.True(t, z.IsZero())
}

func TestComplex_MagnitudeArgument(t *testing.T) {
	t.Parallel()

	require.Equal(t, 5.0, scalar.NewComplex(3, 4).Magnitude())

	arg, err := scalar.NewComplex(0, 1).Argument()
	require.NoError(t, err)
	require.InDelta(t, math.Pi/2, arg, 1e-15)

	arg, err = scalar.NewComplex(-1, 0).Argument()
	require.NoError(t, err)
	require.InDelta(t, math.Pi, arg, 1e-15)

	_, err = scalar.Complex{}.Argument()
	require.ErrorIs(t, err, scalar.ErrUndefinedArgument)
}

func TestComplex_Round(t *testing.T) {
	t.Parallel()

	z := scalar.NewComplex(1.23456, -0.99995)
	require.True(t, z.Round(3).Equal(scalar.NewComplex(1.235, -1)))
	require.True(t, scalar.NewComplex(2.5, -2.5).Round(0).Equal(scalar.NewComplex(3, -3)))
	require.True(t, scalar.NewComplex(1e-12, 1-1e-12).Round(6).Equal(scalar.NewComplex(0, 1)))
}

func TestComplex_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		z    scalar.Complex
		want string
	}{
		{scalar.NewComplex(1, 2), "1 + 2i"},
		{scalar.NewComplex(0, -1), "0 - 1i"},
		{scalar.NewComplex(-1.5, 0), "-1.5 + 0i"},
		{scalar.NewComplex(math.Copysign(0, -1), math.Copysign(0, -1)), "0 + 0i"},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, tc.z.String())
	}
}

func TestParseComplex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want scalar.Complex
	}{
		{"3", scalar.NewComplex(3, 0)},
		{"-2.5", scalar.NewComplex(-2.5, 0)},
		{"2i", scalar.NewComplex(0, 2)},
		{"i", scalar.NewComplex(0, 1)},
		{"-i", scalar.NewComplex(0, -1)},
		{"1+2i", scalar.NewComplex(1, 2)},
		{"1.5-0.5i", scalar.NewComplex(1.5, -0.5)},
		{"1 - 2i", scalar.NewComplex(1, -2)},
		{"1e-3+1e-3i", scalar.NewComplex(1e-3, 1e-3)},
		{"-1-i", scalar.NewComplex(-1, -1)},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := scalar.ParseComplex(tc.in)
			require.NoError(t, err)
			require.Truef(t, got.Equal(tc.want), "got %v, want %v", got, tc.want)
		})
	}

	for _, bad := range []string{"", "x", "1+xi", "1++2i"} {
		_, err := scalar.ParseComplex(bad)
		require.ErrorIsf(t, err, scalar.ErrSyntax, "input %q", bad)
	}
	_, err := scalar.ParseComplex("Inf")
	require.ErrorIs(t, err, scalar.ErrNotFinite)
}
