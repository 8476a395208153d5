// SPDX-License-Identifier: MIT

// Package poly implements single-variable polynomials over a scalar ring and
// a simultaneous-iteration (Durand–Kerner) root finder for complex polynomials.
//
// Purpose:
//   - Give the characteristic-polynomial bridge a ring it can feed to the
//     generic cofactor determinant: Poly[T] satisfies scalar.Ring[Poly[T]].
//   - Extract eigenvalues as complex roots via Roots.
//
// Invariants:
//   - Coefficients are indexed by exponent (c[0] is the constant term).
//   - Trailing exactly-zero coefficients are trimmed at construction, so
//     len(coefficients) == Degree()+1 always.
//   - The zero polynomial has degree 0 and coefficient 0.
//   - Values are immutable; every operation returns a fresh polynomial.
package poly

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvalgebra/scalar"
)

// Poly is an immutable polynomial with coefficients in T.
// The zero value is the zero polynomial.
type Poly[T scalar.Ring[T]] struct {
	coeffs []T // ascending by exponent; nil only for the zero value
}

// Compile-time check: polynomials form a ring themselves.
var _ scalar.Ring[Poly[scalar.Complex]] = Poly[scalar.Complex]{}

// New builds a polynomial from coefficients in ascending exponent order
// (New(c0, c1, c2) is c0 + c1·x + c2·x²). The input is copied and trailing
// zeros are trimmed.
func New[T scalar.Ring[T]](coeffs ...T) Poly[T] {
	n := len(coeffs)
	for n > 1 && coeffs[n-1].IsZero() {
		n--
	}
	if n == 0 {
		var zero T

		return Poly[T]{coeffs: []T{zero}}
	}
	c := make([]T, n)
	copy(c, coeffs[:n])

	return Poly[T]{coeffs: c}
}

// Constant returns the degree-0 polynomial c.
func Constant[T scalar.Ring[T]](c T) Poly[T] { return New(c) }

// terms returns the coefficient slice, substituting [0] for the zero value.
// Callers must not mutate the result.
func (p Poly[T]) terms() []T {
	if len(p.coeffs) == 0 {
		var zero T

		return []T{zero}
	}

	return p.coeffs
}

// Degree returns the index of the highest nonzero coefficient (0 for constants).
func (p Poly[T]) Degree() int { return len(p.terms()) - 1 }

// Coeff returns the coefficient of x^deg, or zero outside [0, Degree()].
func (p Poly[T]) Coeff(deg int) T {
	c := p.terms()
	if deg < 0 || deg >= len(c) {
		var zero T

		return zero
	}

	return c[deg]
}

// Lead returns the coefficient of the highest-degree term.
func (p Poly[T]) Lead() T { return p.Coeff(p.Degree()) }

// Coefficients returns a copy of the coefficients in ascending exponent order.
func (p Poly[T]) Coefficients() []T {
	c := p.terms()
	out := make([]T, len(c))
	copy(out, c)

	return out
}

// Eval evaluates p at x using Horner's scheme.
func (p Poly[T]) Eval(x T) T {
	c := p.terms()
	acc := c[len(c)-1]
	for i := len(c) - 2; i >= 0; i-- {
		acc = acc.Mul(x).Add(c[i])
	}

	return acc
}

// combine applies op coefficient-wise over the union of both degree ranges.
func (p Poly[T]) combine(q Poly[T], op func(a, b T) T) Poly[T] {
	n := p.Degree()
	if d := q.Degree(); d > n {
		n = d
	}
	out := make([]T, n+1)
	for i := 0; i <= n; i++ {
		out[i] = op(p.Coeff(i), q.Coeff(i))
	}

	return New(out...)
}

// Add returns p + q.
func (p Poly[T]) Add(q Poly[T]) Poly[T] {
	return p.combine(q, func(a, b T) T { return a.Add(b) })
}

// Sub returns p - q.
func (p Poly[T]) Sub(q Poly[T]) Poly[T] {
	return p.combine(q, func(a, b T) T { return a.Sub(b) })
}

// Neg returns -p.
func (p Poly[T]) Neg() Poly[T] {
	c := p.terms()
	out := make([]T, len(c))
	for i, v := range c {
		out[i] = v.Neg()
	}

	return New(out...)
}

// Mul returns the product p·q (coefficient convolution).
func (p Poly[T]) Mul(q Poly[T]) Poly[T] {
	a, b := p.terms(), q.terms()
	out := make([]T, len(a)+len(b)-1)
	for j, x := range a {
		if x.IsZero() {
			continue
		}
		for k, y := range b {
			out[j+k] = out[j+k].Add(x.Mul(y))
		}
	}

	return New(out...)
}

// ScaleBy multiplies every coefficient by s.
func (p Poly[T]) ScaleBy(s T) Poly[T] {
	c := p.terms()
	out := make([]T, len(c))
	for i, v := range c {
		out[i] = v.Mul(s)
	}

	return New(out...)
}

// Derivative returns p'. The derivative of a constant is the zero polynomial.
func (p Poly[T]) Derivative() Poly[T] {
	c := p.terms()
	out := make([]T, len(c)-1)
	for i := 1; i < len(c); i++ {
		for k := 0; k < i; k++ {
			out[i-1] = out[i-1].Add(c[i]) // i·c_i without an integer embedding
		}
	}

	return New(out...)
}

// One returns the constant polynomial 1.
func (p Poly[T]) One() Poly[T] { return Constant(p.terms()[0].One()) }

// IsZero reports whether p is the zero polynomial.
func (p Poly[T]) IsZero() bool {
	c := p.terms()

	return len(c) == 1 && c[0].IsZero()
}

// Close reports whether every coefficient of p and q agrees within eps.
func (p Poly[T]) Close(q Poly[T], eps float64) bool {
	n := p.Degree()
	if d := q.Degree(); d > n {
		n = d
	}
	for i := 0; i <= n; i++ {
		if !p.Coeff(i).Close(q.Coeff(i), eps) {
			return false
		}
	}

	return true
}

// String renders nonzero terms from the highest degree down,
// e.g. "(1)x^2 + (-3)x + (2)". The zero polynomial renders as "0".
func (p Poly[T]) String() string {
	if p.IsZero() {
		return "0"
	}
	c := p.terms()
	var b strings.Builder
	for deg := len(c) - 1; deg >= 0; deg-- {
		if c[deg].IsZero() {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(" + ")
		}
		b.WriteString("(")
		b.WriteString(c[deg].String())
		b.WriteString(")")
		switch deg {
		case 0:
		case 1:
			b.WriteString("x")
		default:
			b.WriteString("x^")
			b.WriteString(strconv.Itoa(deg))
		}
	}

	return b.String()
}

// DivScalar divides every coefficient of p by s.
func DivScalar[T scalar.Field[T]](p Poly[T], s T) (Poly[T], error) {
	c := p.terms()
	out := make([]T, len(c))
	for i, v := range c {
		q, err := v.Div(s)
		if err != nil {
			return Poly[T]{}, polyErrorf(opDivScalar, err)
		}
		out[i] = q
	}

	return New(out...), nil
}
