// SPDX-License-Identifier: MIT
package repl_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvalgebra/config"
	"github.com/katalvlaran/lvalgebra/literal"
	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/katalvlaran/lvalgebra/repl"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) *repl.Session {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Color = false
	s, err := repl.NewSession(cfg)
	require.NoError(t, err)

	return s
}

func mustEval(t *testing.T, s *repl.Session, line string) string {
	t.Helper()
	out, err := s.Eval(line)
	require.NoError(t, err, line)

	return out
}

func TestEval_AssignAndUnaryOps(t *testing.T) {
	t.Parallel()

	s := newSession(t)
	require.Equal(t, "Variable 'a' successfully added to memory", mustEval(t, s, "a = {(1 2 3),(4 5 6),(7 8 9)}"))

	tests := []struct {
		line string
		want string
	}{
		{"size(a)", "3 rows, 3 columns"},
		{"rref(a)", "1\t0\t-1\n0\t1\t2\n0\t0\t0"},
		{"rank(a)", "2"},
		{"nullity(a)", "1"},
		{"det(a)", "0"},
		{"trans(a)", "1\t4\t7\n2\t5\t8\n3\t6\t9"},
		{"a", "1\t2\t3\n4\t5\t6\n7\t8\t9"},
	}
	for _, tc := range tests {
		require.Equalf(t, tc.want, mustEval(t, s, tc.line), "command %q", tc.line)
	}
}

func TestEval_Arithmetic(t *testing.T) {
	t.Parallel()

	s := newSession(t)
	mustEval(t, s, "a = {(1 4),(7 8)}")
	mustEval(t, s, "b = {(1 0),(0 1)}")

	require.Equal(t, "-20", mustEval(t, s, "det(a)"))
	require.Equal(t, "2\t4\n7\t9", mustEval(t, s, "a + b"))
	require.Equal(t, "0\t4\n7\t7", mustEval(t, s, "a-b"))
	require.Equal(t, "1\t4\n7\t8", mustEval(t, s, "a * b"))
	require.Equal(t, "2\t8\n14\t16", mustEval(t, s, "2 * a"))
	require.Equal(t, "1\t4\n7\t8\n1\t0\n0\t1", mustEval(t, s, "stack(a, b)"))
}

func TestEval_AssignExpression(t *testing.T) {
	t.Parallel()

	s := newSession(t)
	mustEval(t, s, "a = {(2 0),(0 4)}")
	require.Equal(t, "Variable 'c' successfully added to memory", mustEval(t, s, "c = inv(a)"))
	require.Equal(t, "0.5\t0\n0\t0.25", mustEval(t, s, "c"))

	c, err := s.Get("c")
	require.NoError(t, err)
	want, err := literal.Parse("{(0.5 0),(0 0.25)}", 0)
	require.NoError(t, err)
	require.True(t, c.Equal(want))

	_, err = s.Eval("d = rank(a)")
	require.ErrorIs(t, err, repl.ErrNotMatrix)
	require.Equal(t, []string{"a", "c"}, s.Vars())
	require.Equal(t, "a: 2x2\nc: 2x2", mustEval(t, s, "vars"))
}

func TestEval_NullspaceAndEigen(t *testing.T) {
	t.Parallel()

	s := newSession(t)
	mustEval(t, s, "a = {(1 0),(0 0)}")
	require.Equal(t, "[{(0),(1)}]", mustEval(t, s, "nullspace(a)"))

	mustEval(t, s, "r = {(0 -1),(1 0)}")
	eig := mustEval(t, s, "eig(r)")
	require.Contains(t, eig, "0 + 1i")
	require.Contains(t, eig, "0 - 1i")

	require.Contains(t, mustEval(t, s, "charpoly(r)"), "x^2")

	mustEval(t, s, "d = {(3 0),(0 5)}")
	em := mustEval(t, s, "eigmap(d)")
	require.Len(t, strings.Split(em, "\n"), 2)
	require.Contains(t, em, "3 + 0i: [{(")
	require.Contains(t, em, "5 + 0i: [{(")

	// A repeated eigenvalue keeps both eigenvectors on one line.
	mustEval(t, s, "i = {(1 0),(0 1)}")
	em = mustEval(t, s, "eigmap(i)")
	require.NotContains(t, em, "\n")
	require.Equal(t, 2, strings.Count(em, "{"))
}

func TestEval_Errors(t *testing.T) {
	t.Parallel()

	s := newSession(t)
	mustEval(t, s, "a = {(1 2),(3 4)}")
	mustEval(t, s, "w = {(1 2 3)}")

	tests := []struct {
		line string
		want error
	}{
		{"", repl.ErrSyntax},
		{"size(zz)", repl.ErrUnknownVariable},
		{"zz", repl.ErrUnknownVariable},
		{"a + zz", repl.ErrUnknownVariable},
		{"frob(a)", repl.ErrUnknownOperation},
		{"a ^ a", repl.ErrSyntax},
		{"2 + a", repl.ErrSyntax},
		{"rank(a, a)", repl.ErrSyntax},
		{"stack(a)", repl.ErrSyntax},
		{"1x = {(1)}", repl.ErrSyntax},
		{"b = {(1 2),(3)}", matrix.ErrInvalidShape},
		{"b = {1 2}", literal.ErrFormat},
		{"a + w", matrix.ErrIncompatibleDimensions},
		{"inv(w)", matrix.ErrIncompatibleDimensions},
		{"det(w)", matrix.ErrIncompatibleDimensions},
	}
	for _, tc := range tests {
		_, err := s.Eval(tc.line)
		require.ErrorIsf(t, err, tc.want, "command %q", tc.line)
	}

	mustEval(t, s, "z = {(1 2),(2 4)}")
	_, err := s.Eval("inv(z)")
	require.ErrorIs(t, err, matrix.ErrSingular)
}

func TestNewSession(t *testing.T) {
	t.Parallel()

	s, err := repl.NewSession(nil)
	require.NoError(t, err)
	require.Empty(t, s.Vars())

	bad := config.DefaultConfig()
	bad.RootPlaces = 99
	_, err = repl.NewSession(bad)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	require.Error(t, s.Set("bad name", nil))
	require.ErrorIs(t, s.Set("m", nil), matrix.ErrNilMatrix)
}

func TestHelp_ListsOperations(t *testing.T) {
	t.Parallel()

	h := repl.Help()
	for _, op := range []string{"size(a)", "rref(a)", "det(a)", "nullspace(a)", "eigmap(a)", "stack(a, b)", "vars"} {
		require.Contains(t, h, op)
	}
}
