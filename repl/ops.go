// SPDX-License-Identifier: MIT

package repl

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/lvalgebra/literal"
	"github.com/katalvlaran/lvalgebra/matrix"
	"github.com/katalvlaran/lvalgebra/scalar"
)

type unaryOp func(s *Session, m *Mat) (value, error)

var unaryOps = map[string]unaryOp{
	"size": func(_ *Session, m *Mat) (value, error) {
		r, c := m.Size()

		return value{text: fmt.Sprintf("%d rows, %d columns", r, c)}, nil
	},
	"rref": func(_ *Session, m *Mat) (value, error) {
		out, err := matrix.RREF(m)

		return value{m: out}, err
	},
	"det": func(_ *Session, m *Mat) (value, error) {
		d, err := matrix.Determinant(m)
		if err != nil {
			return value{}, err
		}

		return value{text: d.String()}, nil
	},
	"rank": func(_ *Session, m *Mat) (value, error) {
		r, err := matrix.Rank(m)

		return itoa(r), err
	},
	"nullity": func(_ *Session, m *Mat) (value, error) {
		n, err := matrix.Nullity(m)

		return itoa(n), err
	},
	"inv": func(_ *Session, m *Mat) (value, error) {
		out, err := matrix.Inverse(m)

		return value{m: out}, err
	},
	"trans": func(_ *Session, m *Mat) (value, error) {
		out, err := matrix.Transpose(m)

		return value{m: out}, err
	},
	"nullspace": func(_ *Session, m *Mat) (value, error) {
		basis, err := matrix.Nullspace(m)
		if err != nil {
			return value{}, err
		}

		return value{text: vectorSet(basis)}, nil
	},
	"charpoly": func(_ *Session, m *Mat) (value, error) {
		p, err := matrix.CharacteristicPolynomial(m)
		if err != nil {
			return value{}, err
		}

		return value{text: p.String()}, nil
	},
	"eig": func(s *Session, m *Mat) (value, error) {
		vals, err := matrix.Eigenvalues(m, s.opts...)
		if err != nil {
			return value{}, err
		}
		parts := make([]string, len(vals))
		for i, v := range vals {
			parts[i] = v.String()
		}

		return value{text: "[" + strings.Join(parts, ", ") + "]"}, nil
	},
	"eigmap": func(s *Session, m *Mat) (value, error) {
		pairs, err := matrix.EigenMap(m, s.opts...)
		if err != nil {
			return value{}, err
		}
		lines := make([]string, len(pairs))
		for i, p := range pairs {
			lines[i] = fmt.Sprintf("%v: %s", p.Value, vectorSet(p.Vectors))
		}

		return value{text: strings.Join(lines, "\n")}, nil
	},
}

// vectorSet renders column vectors in literal form, e.g. "[{(1),(-2),(1)}]".
func vectorSet[T scalar.Ring[T]](vs []*matrix.Dense[T]) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = literal.Format(v)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

var opHelp = map[string]string{
	"size":      "rows and columns",
	"rref":      "reduced row echelon form",
	"det":       "determinant (cofactor expansion)",
	"rank":      "rank",
	"nullity":   "columns minus rank",
	"inv":       "inverse of a nonsingular square matrix",
	"trans":     "transpose",
	"nullspace": "basis of the nullspace",
	"charpoly":  "characteristic polynomial det(xI - A)",
	"eig":       "eigenvalues",
	"eigmap":    "eigenvalues with their eigenvectors",
}

// Help describes every command the session understands.
func Help() string {
	var b strings.Builder
	b.WriteString("name = {(1 2),(3 4)}   assign a matrix literal\n")
	b.WriteString("name = expr            assign the result of an expression\n")
	b.WriteString("a + b, a - b, a * b    arithmetic; k * a scales by a number\n")
	b.WriteString("stack(a, b)            place b below a\n")

	names := make([]string, 0, len(unaryOps))
	for name := range unaryOps {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "%-22s %s\n", name+"(a)", opHelp[name])
	}
	b.WriteString("vars                   list variables\n")
	b.WriteString("empty line             quit")

	return b.String()
}
