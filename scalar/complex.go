// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Complex is an immutable complex number a + bi with float64 components.
// The zero value is 0 + 0i.
type Complex struct {
	re, im float64
}

// NewComplex returns re + im·i.
func NewComplex(re, im float64) Complex { return Complex{re: re, im: im} }

// Real returns the real component.
func (z Complex) Real() float64 { return z.re }

// Imag returns the imaginary component.
func (z Complex) Imag() float64 { return z.im }

// Add returns z + w.
func (z Complex) Add(w Complex) Complex { return Complex{z.re + w.re, z.im + w.im} }

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex { return Complex{z.re - w.re, z.im - w.im} }

// Mul returns z * w: (ac - bd) + (ad + bc)i.
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		re: z.re*w.re - z.im*w.im,
		im: z.re*w.im + z.im*w.re,
	}
}

// Div returns z / w = z·conj(w) / |w|², or ErrDivisionByZero when |w| == 0.
func (z Complex) Div(w Complex) (Complex, error) {
	if w.IsZero() {
		return Complex{}, ErrDivisionByZero
	}
	num := z.Mul(w.Conjugate())
	den := w.re*w.re + w.im*w.im

	return Complex{num.re / den, num.im / den}, nil
}

// Scale multiplies both components by the real factor f.
func (z Complex) Scale(f float64) Complex { return Complex{z.re * f, z.im * f} }

// DivReal divides both components by the real factor f.
func (z Complex) DivReal(f float64) (Complex, error) {
	if f == 0 {
		return Complex{}, ErrDivisionByZero
	}

	return Complex{z.re / f, z.im / f}, nil
}

// Neg returns -z.
func (z Complex) Neg() Complex { return Complex{-z.re, -z.im} }

// One returns 1 + 0i.
func (Complex) One() Complex { return Complex{re: 1} }

// Pow raises z to the integer power n by repeated multiplication.
// A negative n yields the reciprocal of z^|n|; 0^n with n < 0 fails with
// ErrDivisionByZero.
func (z Complex) Pow(n int) (Complex, error) {
	if n < 0 {
		p, err := z.Pow(-n)
		if err != nil {
			return Complex{}, err
		}

		return z.One().Div(p)
	}
	acc := z.One()
	for i := 0; i < n; i++ {
		acc = acc.Mul(z)
	}

	return acc, nil
}

// Conjugate returns a - bi.
func (z Complex) Conjugate() Complex { return Complex{z.re, -z.im} }

// Magnitude returns the Euclidean norm sqrt(a² + b²).
func (z Complex) Magnitude() float64 { return math.Hypot(z.re, z.im) }

// Argument returns atan2(b, a). The origin has no argument.
func (z Complex) Argument() (float64, error) {
	if z.IsZero() {
		return 0, ErrUndefinedArgument
	}

	return math.Atan2(z.im, z.re), nil
}

// Round rounds both components half-up to the given number of decimal places.
func (z Complex) Round(places int) Complex {
	if places < 0 {
		places = 0
	}
	scale := math.Pow(10, float64(places))

	return Complex{
		re: math.Round(z.re*scale) / scale,
		im: math.Round(z.im*scale) / scale,
	}
}

// IsZero reports whether both components are exactly zero.
func (z Complex) IsZero() bool { return z.re == 0 && z.im == 0 }

// Equal reports exact component equality.
func (z Complex) Equal(w Complex) bool { return z.re == w.re && z.im == w.im }

// Close reports whether each component differs by at most eps.
func (z Complex) Close(w Complex, eps float64) bool {
	return math.Abs(z.re-w.re) <= eps && math.Abs(z.im-w.im) <= eps
}

// Complex returns z itself; it lets Complex satisfy Field.
func (z Complex) Complex() Complex { return z }

// String renders z as "a + bi" or "a - bi".
func (z Complex) String() string {
	re, im := z.re+0, z.im+0 // normalise -0
	if im < 0 {
		return fmt.Sprintf("%s - %si", formatFloat(re), formatFloat(-im))
	}

	return fmt.Sprintf("%s + %si", formatFloat(re), formatFloat(im))
}

func formatFloat(f float64) string {
	if f == 0 {
		return "0"
	}

	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ParseComplex parses "3", "-2.5", "2i", "-i", "1+2i", "1.5-0.5i" and the
// same forms with spaces around the sign ("1 + 2i").
func ParseComplex(s string) (Complex, error) {
	t := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if t == "" {
		return Complex{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if !strings.HasSuffix(t, "i") {
		re, err := parseFinite(t)
		if err != nil {
			return Complex{}, fmt.Errorf("%w: %q", err, s)
		}

		return Complex{re: re}, nil
	}

	body := t[:len(t)-1]
	// The split point is the last sign that is neither leading nor an exponent sign.
	split := -1
	for k := len(body) - 1; k > 0; k-- {
		if (body[k] == '+' || body[k] == '-') && body[k-1] != 'e' && body[k-1] != 'E' {
			split = k
			break
		}
	}

	var (
		re, im float64
		err    error
	)
	if split > 0 {
		if re, err = parseFinite(body[:split]); err != nil {
			return Complex{}, fmt.Errorf("%w: %q", err, s)
		}
		body = body[split:]
	}
	switch body {
	case "", "+":
		im = 1
	case "-":
		im = -1
	default:
		if im, err = parseFinite(body); err != nil {
			return Complex{}, fmt.Errorf("%w: %q", err, s)
		}
	}

	return Complex{re: re, im: im}, nil
}

func parseFinite(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrSyntax
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrNotFinite
	}

	return f, nil
}
