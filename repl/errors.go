// SPDX-License-Identifier: MIT

package repl

import "errors"

var (
	// ErrUnknownVariable is returned when a command names an unassigned variable.
	ErrUnknownVariable = errors.New("repl: unknown variable")

	// ErrUnknownOperation is returned for an operation name the session does not know.
	ErrUnknownOperation = errors.New("repl: unknown operation")

	// ErrSyntax is returned when a line matches no command form.
	ErrSyntax = errors.New("repl: syntax error")

	// ErrNotMatrix is returned when an assignment's right side yields no matrix.
	ErrNotMatrix = errors.New("repl: expression does not yield a matrix")
)
