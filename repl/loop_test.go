// SPDX-License-Identifier: MIT
package repl_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_SurvivesErrorsAndStopsOnEmptyLine(t *testing.T) {
	t.Parallel()

	s := newSession(t)
	in := strings.NewReader("a = {(1 4),(7 8)}\ndet(b)\ndet(a)\n\nrank(a)\n")
	var out, errOut bytes.Buffer

	require.NoError(t, s.Run(context.Background(), in, &out, &errOut))
	require.Equal(t,
		"> Variable 'a' successfully added to memory\n> > -20\n> ",
		out.String())
	require.Contains(t, errOut.String(), "error: repl: unknown variable")
	require.NotContains(t, out.String(), "rank")
}

func TestRun_EOF(t *testing.T) {
	t.Parallel()

	s := newSession(t)
	var out, errOut bytes.Buffer
	require.NoError(t, s.Run(context.Background(), strings.NewReader("x = {(1)}"), &out, &errOut))
	require.Equal(t, []string{"x"}, s.Vars())
	require.Empty(t, errOut.String())
}

func TestRun_ContextCancelled(t *testing.T) {
	t.Parallel()

	s := newSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errOut bytes.Buffer
	err := s.Run(ctx, strings.NewReader("x = {(1)}\n"), &out, &errOut)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, s.Vars())
}
