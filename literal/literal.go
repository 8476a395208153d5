// SPDX-License-Identifier: MIT

// Package literal converts between matrix literals and matrix values.
//
// A literal is a brace-enclosed, comma-separated list of parenthesised rows
// whose entries are separated by spaces:
//
//	{(1 2 3),(4 5 6),(7 8 9)}
//
// Whitespace around the literal, around each row and between entries is
// tolerated. Complex literals use the same layout with entries such as 1+2i
// (no spaces inside an entry).
package literal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/katalvlaran/lvalgebra/scalar"
)

var (
	// ErrFormat reports misplaced or missing braces and parentheses.
	ErrFormat = errors.New("literal: malformed matrix literal")

	// ErrNumber reports an entry that is not a valid number.
	ErrNumber = errors.New("literal: invalid matrix entry")
)

// Parse reads a real matrix literal with entries at prec bits of mantissa
// (0 selects scalar.DefaultPrecision). Ragged or empty rows are reported as
// matrix.ErrInvalidShape.
func Parse(text string, prec uint, opts ...matrix.Option) (*matrix.Dense[scalar.Real], error) {
	return parse(text, func(s string) (scalar.Real, error) { return scalar.ParseReal(s, prec) }, opts)
}

// ParseComplex reads a complex matrix literal such as {(1+2i 0),(0 -i)}.
func ParseComplex(text string, opts ...matrix.Option) (*matrix.Dense[scalar.Complex], error) {
	return parse(text, scalar.ParseComplex, opts)
}

func parse[T scalar.Ring[T]](text string, entry func(string) (T, error), opts []matrix.Option) (*matrix.Dense[T], error) {
	body := strings.TrimSpace(text)
	if !strings.HasPrefix(body, "{") || !strings.HasSuffix(body, "}") || len(body) < 2 {
		return nil, fmt.Errorf("%w: matrix must be enclosed in braces {}", ErrFormat)
	}
	body = body[1 : len(body)-1]

	var rows [][]T
	for i, raw := range strings.Split(body, ",") {
		row := strings.TrimSpace(raw)
		if !strings.HasPrefix(row, "(") || !strings.HasSuffix(row, ")") || len(row) < 2 {
			return nil, fmt.Errorf("%w: row %d must be enclosed in parentheses ()", ErrFormat, i+1)
		}
		fields := strings.Fields(row[1 : len(row)-1])
		vals := make([]T, len(fields))
		for j, f := range fields {
			v, err := entry(f)
			if err != nil {
				return nil, fmt.Errorf("%w %q at row %d, column %d: %w", ErrNumber, f, i+1, j+1, err)
			}
			vals[j] = v
		}
		rows = append(rows, vals)
	}

	return matrix.New(rows, opts...)
}

// Format renders m as a literal that Parse (or ParseComplex) reads back.
func Format[T scalar.Ring[T]](m *matrix.Dense[T]) string {
	if m == nil {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	for i, row := range m.Slices() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('(')
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strings.ReplaceAll(v.String(), " ", ""))
		}
		b.WriteByte(')')
	}
	b.WriteByte('}')

	return b.String()
}
