// SPDX-License-Identifier: MIT

package scalar

// Ring is the algebraic surface the generic matrix kernels need for
// arithmetic that never divides: sums, products, cofactor determinants.
//
// Contract:
//   - The zero value of T is the additive identity.
//   - One returns the multiplicative identity of the receiver's kind
//     (precision or shape carried over where that matters).
//   - IsZero is an exact test; Close compares component-wise within eps.
type Ring[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T
	One() T
	IsZero() bool
	Close(other T, eps float64) bool
	String() string
}

// Field extends Ring with division, which Gauss-Jordan reduction requires,
// and with a projection onto Complex used by the eigenvalue bridge.
type Field[T any] interface {
	Ring[T]
	Div(T) (T, error)
	Complex() Complex
}

// Compile-time conformance checks.
var (
	_ Field[Real]    = Real{}
	_ Field[Complex] = Complex{}
)
