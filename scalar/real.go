// SPDX-License-Identifier: MIT

package scalar

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// DefaultPrecision is the mantissa size, in bits, of Real values built
// without an explicit precision.
const DefaultPrecision uint = 256

// realDigits is the number of significant digits String renders.
const realDigits = 15

// zeroFloat backs the zero value of Real. It is never mutated.
var zeroFloat = new(big.Float).SetPrec(DefaultPrecision)

// Real is an immutable arbitrary-precision real number.
// The zero value is 0 at DefaultPrecision.
type Real struct {
	v *big.Float // nil means zero; never mutated after construction
}

// NewReal converts a finite float64 into a Real at DefaultPrecision.
// It panics on NaN or ±Inf, which are programmer errors for literal constants;
// use FromFloat64 for untrusted input.
func NewReal(f float64) Real {
	r, err := FromFloat64(f, DefaultPrecision)
	if err != nil {
		panic(fmt.Sprintf("scalar: NewReal(%v): %v", f, err))
	}

	return r
}

// FromFloat64 converts f into a Real with the given mantissa precision.
// A zero prec selects DefaultPrecision.
func FromFloat64(f float64, prec uint) (Real, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Real{}, ErrNotFinite
	}
	if prec == 0 {
		prec = DefaultPrecision
	}

	return Real{v: new(big.Float).SetPrec(prec).SetFloat64(f)}, nil
}

// NewRealFromInt returns the exact integer n as a Real.
func NewRealFromInt(n int64) Real {
	return Real{v: new(big.Float).SetPrec(DefaultPrecision).SetInt64(n)}
}

// ParseReal parses a decimal literal ("3", "-2.5", "1e-3") at precision prec.
// A zero prec selects DefaultPrecision.
func ParseReal(s string, prec uint) (Real, error) {
	if prec == 0 {
		prec = DefaultPrecision
	}
	f, _, err := big.ParseFloat(strings.TrimSpace(s), 10, prec, big.ToNearestEven)
	if err != nil {
		return Real{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if f.IsInf() {
		return Real{}, fmt.Errorf("%w: %q", ErrNotFinite, s)
	}

	return Real{v: f}, nil
}

// val returns the backing float, substituting the shared zero for the zero value.
func (x Real) val() *big.Float {
	if x.v == nil {
		return zeroFloat
	}

	return x.v
}

// prec returns the working precision of x, never less than DefaultPrecision
// for values created through the zero value.
func (x Real) prec() uint {
	if p := x.val().Prec(); p != 0 {
		return p
	}

	return DefaultPrecision
}

// wider picks the larger precision of two operands.
func wider(x, y Real) uint {
	p, q := x.prec(), y.prec()
	if q > p {
		return q
	}

	return p
}

// Prec reports the mantissa precision in bits.
func (x Real) Prec() uint { return x.prec() }

// Add returns x + y.
func (x Real) Add(y Real) Real {
	return Real{v: new(big.Float).SetPrec(wider(x, y)).Add(x.val(), y.val())}
}

// Sub returns x - y.
func (x Real) Sub(y Real) Real {
	return Real{v: new(big.Float).SetPrec(wider(x, y)).Sub(x.val(), y.val())}
}

// Mul returns x * y.
func (x Real) Mul(y Real) Real {
	return Real{v: new(big.Float).SetPrec(wider(x, y)).Mul(x.val(), y.val())}
}

// Div returns x / y, or ErrDivisionByZero when y is exactly zero.
func (x Real) Div(y Real) (Real, error) {
	if y.IsZero() {
		return Real{}, ErrDivisionByZero
	}

	return Real{v: new(big.Float).SetPrec(wider(x, y)).Quo(x.val(), y.val())}, nil
}

// Neg returns -x.
func (x Real) Neg() Real {
	return Real{v: new(big.Float).SetPrec(x.prec()).Neg(x.val())}
}

// One returns 1 at the precision of x.
func (x Real) One() Real {
	return Real{v: new(big.Float).SetPrec(x.prec()).SetInt64(1)}
}

// Pow raises x to the integer power n by repeated multiplication.
// Negative exponents invert the positive power; 0^n with n < 0 fails.
func (x Real) Pow(n int) (Real, error) {
	if n < 0 {
		p, err := x.Pow(-n)
		if err != nil {
			return Real{}, err
		}

		return x.One().Div(p)
	}
	acc := x.One()
	for i := 0; i < n; i++ {
		acc = acc.Mul(x)
	}

	return acc, nil
}

// Abs returns |x|.
func (x Real) Abs() Real {
	return Real{v: new(big.Float).SetPrec(x.prec()).Abs(x.val())}
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x Real) Cmp(y Real) int { return x.val().Cmp(y.val()) }

// Sign returns -1, 0 or +1 depending on the sign of x.
func (x Real) Sign() int { return x.val().Sign() }

// IsZero reports whether x is exactly zero.
func (x Real) IsZero() bool { return x.val().Sign() == 0 }

// Close reports whether |x - y| <= eps.
func (x Real) Close(y Real, eps float64) bool {
	d := new(big.Float).SetPrec(wider(x, y)).Sub(x.val(), y.val())
	d.Abs(d)

	return d.Cmp(big.NewFloat(eps)) <= 0
}

// Float64 returns the nearest float64 to x.
func (x Real) Float64() float64 {
	f, _ := x.val().Float64()

	return f
}

// Complex projects x onto the complex plane (imaginary part zero).
func (x Real) Complex() Complex { return Complex{re: x.Float64()} }

// Round rounds x half-up (away from zero on ties) to the given number of
// decimal places. Negative places are treated as zero.
func (x Real) Round(places int) Real {
	if places < 0 {
		places = 0
	}
	p := x.prec()
	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	scale := new(big.Float).SetPrec(p).SetInt(pow)

	v := new(big.Float).SetPrec(p).Mul(x.val(), scale)
	half := big.NewFloat(0.5)
	if v.Sign() >= 0 {
		v.Add(v, half)
	} else {
		v.Sub(v, half)
	}
	i, _ := v.Int(nil) // truncates toward zero

	r := new(big.Float).SetPrec(p).SetInt(i)

	return Real{v: r.Quo(r, scale)}
}

// String renders x with up to 15 significant digits.
func (x Real) String() string {
	if x.IsZero() {
		return "0"
	}

	return x.val().Text('g', realDigits)
}
