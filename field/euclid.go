package field

// ExtendedGCD returns g = gcd(a, b) together with x, y such that a*x + b*y = g.
// g is not normalized; see GCD for the monic form.
func ExtendedGCD[T any](a, b *Polynomial[T]) (g, x, y *Polynomial[T], err error) {
	f := a.f
	one := Constant(f, f.One())
	zero := newTrimmed(f, nil)

	// Invariants:
	//   A = x0*a + y0*b
	//   B = x1*a + y1*b
	A, B := a, b
	x0, x1 := one, zero
	y0, y1 := zero, one

	for !B.IsZero() {
		q, rem, err := A.QuoRem(B)
		if err != nil {
			return nil, nil, nil, err
		}

		// gcd(A, B) = gcd(B, A mod B)
		A, B = B, rem
		x0, x1 = x1, x0.Sub(q.Mul(x1))
		y0, y1 = y1, y0.Sub(q.Mul(y1))
	}

	return A, x0, y0, nil
}

// GCD returns the monic greatest common divisor; gcd(0, 0) is the zero polynomial.
func GCD[T any](a, b *Polynomial[T]) (*Polynomial[T], error) {
	g, _, _, err := ExtendedGCD(a, b)
	if err != nil {
		return nil, err
	}

	if g.IsZero() {
		return g, nil
	}

	return g.DivScalar(g.LeadCoeff())
}

// SquareFree returns p / gcd(p, p'), which has the same roots as p, each simple.
// Over inexact fields a remainder rarely cancels exactly, so the result is usually p itself.
func (p *Polynomial[T]) SquareFree() (*Polynomial[T], error) {
	if p.Degree() < 2 {
		return p, nil
	}

	g, err := GCD(p, p.Derivative())
	if err != nil {
		return nil, err
	}

	if g.Degree() <= 0 {
		return p, nil
	}

	q, _, err := p.QuoRem(g)

	return q, err
}
