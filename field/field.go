package field

import (
	"errors"
	"math/big"
)

// Field is the arithmetic a polynomial needs from its coefficient domain.
// Implementations are stateless strategies; values of T are never mutated in place.
type Field[T any] interface {
	Zero() T
	One() T
	FromInt64(v int64) T
	FromBigInt(v *big.Int) T

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	// Div panics with ErrDivisionByZero when b is zero.
	Div(a, b T) T
	Neg(a T) T
	// Inverse panics with ErrDivisionByZero when a is zero.
	Inverse(a T) T

	IsZero(a T) bool
	IsOne(a T) bool
	Equals(a, b T) bool
}

// Ordered is a Field whose elements are totally ordered and which can take real powers.
// Root isolation requires it.
type Ordered[T any] interface {
	Field[T]

	// Cmp returns -1, 0 or +1.
	Cmp(a, b T) int
	Sign(a T) int
	// Pow returns base^exp for base >= 0.
	Pow(base, exp T) T
	FromFloat64(v float64) T

	// PositiveInfinity returns ErrNoInfinity when the domain cannot represent +∞.
	PositiveInfinity() (T, error)
	IsPositiveInfinity(a T) bool
}

var (
	ErrDivisionByZero   = errors.New("field: division by zero")
	ErrNoInfinity       = errors.New("field: domain cannot represent positive infinity")
	ErrZeroPolynomial   = errors.New("field: zero polynomial divisor")
	ErrNegativeExponent = errors.New("field: negative exponent")
)

func Less[T any](o Ordered[T], a, b T) bool      { return o.Cmp(a, b) < 0 }
func Greater[T any](o Ordered[T], a, b T) bool   { return o.Cmp(a, b) > 0 }
func LessEq[T any](o Ordered[T], a, b T) bool    { return o.Cmp(a, b) <= 0 }
func GreaterEq[T any](o Ordered[T], a, b T) bool { return o.Cmp(a, b) >= 0 }
func IsNegative[T any](o Ordered[T], a T) bool   { return o.Sign(a) < 0 }
func IsPositive[T any](o Ordered[T], a T) bool   { return o.Sign(a) > 0 }

func Min[T any](o Ordered[T], a, b T) T {
	if o.Cmp(b, a) < 0 {
		return b
	}

	return a
}

func Max[T any](o Ordered[T], a, b T) T {
	if o.Cmp(b, a) > 0 {
		return b
	}

	return a
}

func Abs[T any](o Ordered[T], a T) T {
	if o.Sign(a) < 0 {
		return o.Neg(a)
	}

	return a
}
