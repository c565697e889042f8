package vas

import (
	"fmt"

	"github.com/jonathanmweiss/go-vas/field"
)

// Mobius maps the local variable y of a sub-problem back to the original variable:
//
//	x = (a*y + b) / (c*y + d),  a*d != b*c
type Mobius[T any] struct {
	o          field.Ordered[T]
	inf        T
	a, b, c, d T
}

// NewMobius validates that the domain has +∞ and that the map is non-degenerate.
func NewMobius[T any](o field.Ordered[T], a, b, c, d T) (*Mobius[T], error) {
	inf, err := o.PositiveInfinity()
	if err != nil {
		return nil, err
	}

	if o.Equals(o.Mul(a, d), o.Mul(b, c)) {
		return nil, ErrDegenerateMobius
	}

	return &Mobius[T]{o: o, inf: inf, a: a, b: b, c: c, d: d}, nil
}

// Identity returns x = y.
func Identity[T any](o field.Ordered[T]) (*Mobius[T], error) {
	return NewMobius(o, o.One(), o.Zero(), o.Zero(), o.One())
}

// derive skips validation: the compositions below multiply the determinant by
// 1, alpha and -1, which keeps it nonzero.
func (m *Mobius[T]) derive(a, b, c, d T) *Mobius[T] {
	return &Mobius[T]{o: m.o, inf: m.inf, a: a, b: b, c: c, d: d}
}

// Coefficients returns (a, b, c, d).
func (m *Mobius[T]) Coefficients() (a, b, c, d T) {
	return m.a, m.b, m.c, m.d
}

// Transform evaluates the map. At y = +∞ the value is a/c, or +∞ when c is zero.
func (m *Mobius[T]) Transform(y T) T {
	o := m.o

	if o.IsPositiveInfinity(y) {
		if o.IsZero(m.c) {
			return m.inf
		}

		return o.Div(m.a, m.c)
	}

	num := o.Add(o.Mul(m.a, y), m.b)
	den := o.Add(o.Mul(m.c, y), m.d)

	// pole of the map.
	if o.IsZero(den) {
		return m.inf
	}

	return o.Div(num, den)
}

// ComposeXPlusK returns the map for y -> y + k.
func (m *Mobius[T]) ComposeXPlusK(k T) *Mobius[T] {
	o := m.o

	return m.derive(m.a, o.Add(o.Mul(m.a, k), m.b), m.c, o.Add(o.Mul(m.c, k), m.d))
}

// ComposeAlphaX returns the map for y -> alpha*y. It panics with ErrDegenerateMobius
// when alpha is zero.
func (m *Mobius[T]) ComposeAlphaX(alpha T) *Mobius[T] {
	o := m.o
	if o.IsZero(alpha) {
		panic(ErrDegenerateMobius)
	}

	return m.derive(o.Mul(alpha, m.a), m.b, o.Mul(alpha, m.c), m.d)
}

// BudanTransform returns the map for y -> 1/(y+1).
func (m *Mobius[T]) BudanTransform() *Mobius[T] {
	o := m.o

	return m.derive(m.b, o.Add(m.a, m.b), m.d, o.Add(m.c, m.d))
}

func (m *Mobius[T]) String() string {
	return fmt.Sprintf("(%v*x + %v) / (%v*x + %v)", m.a, m.b, m.c, m.d)
}
