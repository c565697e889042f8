package field

import (
	"fmt"
	"strings"
)

type Polynomial[T any] struct {
	f     Field[T]
	inner []T
}

/*
NewPolynomial expects the coefficients ordered from lowest to highest degree
(e.g. [1, 2, 3] is 1 + 2x + 3x^2). The slice is copied and zero high-degree
coefficients are trimmed, so the zero polynomial has no coefficients at all.
*/
func NewPolynomial[T any](f Field[T], coeffs []T) *Polynomial[T] {
	inner := make([]T, len(coeffs))
	copy(inner, coeffs)

	return newTrimmed(f, inner)
}

// newTrimmed takes ownership of inner.
func newTrimmed[T any](f Field[T], inner []T) *Polynomial[T] {
	i := len(inner) - 1
	for i >= 0 && f.IsZero(inner[i]) {
		i--
	}

	return &Polynomial[T]{f: f, inner: inner[:i+1]}
}

// Constant returns the polynomial c.
func Constant[T any](f Field[T], c T) *Polynomial[T] {
	return newTrimmed(f, []T{c})
}

// Monomial returns c*x^deg.
func Monomial[T any](f Field[T], c T, deg int) *Polynomial[T] {
	inner := make([]T, deg+1)
	for i := range deg {
		inner[i] = f.Zero()
	}
	inner[deg] = c

	return newTrimmed(f, inner)
}

// Linear returns x + k.
func Linear[T any](f Field[T], k T) *Polynomial[T] {
	return newTrimmed(f, []T{k, f.One()})
}

func (p *Polynomial[T]) Field() Field[T] {
	return p.f
}

func (p *Polynomial[T]) IsZero() bool {
	return len(p.inner) == 0
}

// Degree is -1 for the zero polynomial.
func (p *Polynomial[T]) Degree() int {
	return len(p.inner) - 1
}

// Len is the number of stored coefficients, Degree()+1.
func (p *Polynomial[T]) Len() int {
	return len(p.inner)
}

// Coeff returns the coefficient of x^i, zero outside the stored range.
func (p *Polynomial[T]) Coeff(i int) T {
	if i < 0 || i >= len(p.inner) {
		return p.f.Zero()
	}

	return p.inner[i]
}

func (p *Polynomial[T]) LeadCoeff() T {
	return p.Coeff(len(p.inner) - 1)
}

func (p *Polynomial[T]) Equals(q *Polynomial[T]) bool {
	if len(p.inner) != len(q.inner) {
		return false
	}

	for i := range p.inner {
		if !p.f.Equals(p.inner[i], q.inner[i]) {
			return false
		}
	}

	return true
}

// Coefficients returns a copy of the coefficients, lowest degree first.
func (p *Polynomial[T]) Coefficients() []T {
	list := make([]T, len(p.inner))
	copy(list, p.inner)

	return list
}

// LowestDegree returns the index of the first nonzero coefficient, 0 for the zero polynomial.
func (p *Polynomial[T]) LowestDegree() int {
	for i, c := range p.inner {
		if !p.f.IsZero(c) {
			return i
		}
	}

	return 0
}

func (p *Polynomial[T]) String() string {
	if len(p.inner) == 0 {
		return "0"
	}

	bldr := strings.Builder{}

	for i := len(p.inner) - 1; i >= 0; i-- {
		if p.f.IsZero(p.inner[i]) {
			continue
		}

		if bldr.Len() > 0 {
			bldr.WriteString(" + ")
		}

		bldr.WriteString(fmt.Sprint(p.inner[i]))

		switch i {
		case 0:
		case 1:
			bldr.WriteString("*x")
		default:
			fmt.Fprintf(&bldr, "*x^%d", i)
		}
	}

	return bldr.String()
}
