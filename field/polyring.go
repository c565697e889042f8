package field

func zeros[T any](f Field[T], n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = f.Zero()
	}

	return out
}

func (p *Polynomial[T]) Add(q *Polynomial[T]) *Polynomial[T] {
	f := p.f
	n := max(len(p.inner), len(q.inner))
	out := make([]T, n)

	for i := 0; i < n; i++ {
		out[i] = f.Add(p.Coeff(i), q.Coeff(i))
	}

	return newTrimmed(f, out)
}

func (p *Polynomial[T]) Sub(q *Polynomial[T]) *Polynomial[T] {
	f := p.f
	n := max(len(p.inner), len(q.inner))
	out := make([]T, n)

	for i := 0; i < n; i++ {
		out[i] = f.Sub(p.Coeff(i), q.Coeff(i))
	}

	return newTrimmed(f, out)
}

func (p *Polynomial[T]) Neg() *Polynomial[T] {
	out := make([]T, len(p.inner))
	for i, c := range p.inner {
		out[i] = p.f.Neg(c)
	}

	return newTrimmed(p.f, out)
}

func (p *Polynomial[T]) isOne() bool {
	return len(p.inner) == 1 && p.f.IsOne(p.inner[0])
}

// Mul is the schoolbook convolution, O(n*m).
func (p *Polynomial[T]) Mul(q *Polynomial[T]) *Polynomial[T] {
	f := p.f

	switch {
	case p.IsZero() || q.IsZero():
		return newTrimmed(f, nil)
	case p.isOne():
		return NewPolynomial(f, q.inner)
	case q.isOne():
		return NewPolynomial(f, p.inner)
	}

	out := zeros(f, len(p.inner)+len(q.inner)-1)

	// out[i+j] += p[i] * q[j]
	for i, pi := range p.inner {
		if f.IsZero(pi) {
			continue
		}

		for j, qj := range q.inner {
			out[i+j] = f.Add(out[i+j], f.Mul(pi, qj))
		}
	}

	return newTrimmed(f, out)
}

func (p *Polynomial[T]) MulScalar(s T) *Polynomial[T] {
	out := make([]T, len(p.inner))
	for i, c := range p.inner {
		out[i] = p.f.Mul(c, s)
	}

	return newTrimmed(p.f, out)
}

func (p *Polynomial[T]) DivScalar(s T) (*Polynomial[T], error) {
	if p.f.IsZero(s) {
		return nil, ErrDivisionByZero
	}

	out := make([]T, len(p.inner))
	for i, c := range p.inner {
		out[i] = p.f.Div(c, s)
	}

	return newTrimmed(p.f, out), nil
}

// Following Algorithm 2.5 (Polynomial division with remainder) in
// `Modern Computer Algebra` by Joachim von zur Gathen and Jürgen Gerhard
//
// returns q, r such that p = q*d + r and deg(r) < deg(d).
func (p *Polynomial[T]) QuoRem(d *Polynomial[T]) (q, r *Polynomial[T], err error) {
	if d.IsZero() {
		return nil, nil, ErrZeroPolynomial
	}

	f := p.f
	n, m := p.Degree(), d.Degree()

	if n < m {
		return newTrimmed(f, nil), p, nil
	}

	lead := d.LeadCoeff()
	rem := p.Coefficients()
	qInner := make([]T, n-m+1)

	for i := n - m; i >= 0; i-- {
		c := f.Div(rem[m+i], lead)
		qInner[i] = c

		if f.IsZero(c) {
			continue
		}

		for j := 0; j < m; j++ {
			rem[i+j] = f.Sub(rem[i+j], f.Mul(c, d.inner[j]))
		}
		// cancelled by construction; avoids rounding residue on inexact fields.
		rem[m+i] = f.Zero()
	}

	return newTrimmed(f, qInner), newTrimmed(f, rem[:m]), nil
}

// Pow returns p^n by square-and-multiply.
func (p *Polynomial[T]) Pow(n int) (*Polynomial[T], error) {
	if n < 0 {
		return nil, ErrNegativeExponent
	}

	result := Constant(p.f, p.f.One())
	base := p

	for n > 0 {
		if n%2 == 1 {
			result = result.Mul(base)
		}

		n /= 2
		if n > 0 {
			base = base.Mul(base)
		}
	}

	return result, nil
}

func (p *Polynomial[T]) Derivative() *Polynomial[T] {
	if len(p.inner) <= 1 {
		return newTrimmed(p.f, nil)
	}

	out := make([]T, len(p.inner)-1)
	for i := 1; i < len(p.inner); i++ {
		out[i-1] = p.f.Mul(p.f.FromInt64(int64(i)), p.inner[i])
	}

	return newTrimmed(p.f, out)
}

// Integral is the antiderivative with a zero constant term.
func (p *Polynomial[T]) Integral() *Polynomial[T] {
	if p.IsZero() {
		return p
	}

	out := make([]T, len(p.inner)+1)
	out[0] = p.f.Zero()

	for i, c := range p.inner {
		out[i+1] = p.f.Div(c, p.f.FromInt64(int64(i+1)))
	}

	return newTrimmed(p.f, out)
}

// Eval evaluates p at x with Horner's rule.
func (p *Polynomial[T]) Eval(x T) T {
	fld := p.f
	result := fld.Zero()

	for i := len(p.inner) - 1; i >= 0; i-- {
		result = fld.Add(p.inner[i], fld.Mul(x, result))
	}

	return result
}

// Compose returns p(q(x)), Horner's rule over polynomials.
func (p *Polynomial[T]) Compose(q *Polynomial[T]) *Polynomial[T] {
	result := newTrimmed(p.f, nil)

	for i := len(p.inner) - 1; i >= 0; i-- {
		result = result.Mul(q).Add(Constant(p.f, p.inner[i]))
	}

	return result
}

// TaylorShift returns p(x + k).
func (p *Polynomial[T]) TaylorShift(k T) *Polynomial[T] {
	return p.Compose(Linear(p.f, k))
}

// ScaleVariable returns p(alpha * x).
func (p *Polynomial[T]) ScaleVariable(alpha T) *Polynomial[T] {
	f := p.f
	out := make([]T, len(p.inner))
	pow := f.One()

	for i, c := range p.inner {
		out[i] = f.Mul(c, pow)
		pow = f.Mul(pow, alpha)
	}

	return newTrimmed(f, out)
}

// Reverse returns x^deg * p(1/x), the coefficients in reverse order.
func (p *Polynomial[T]) Reverse() *Polynomial[T] {
	n := len(p.inner)
	out := make([]T, n)

	for i, c := range p.inner {
		out[n-1-i] = c
	}

	return newTrimmed(p.f, out)
}

// ShiftDown divides by x^k. Exact when the k lowest coefficients vanish, otherwise
// those terms are dropped.
func (p *Polynomial[T]) ShiftDown(k int) *Polynomial[T] {
	if k <= 0 {
		return p
	}

	if k >= len(p.inner) {
		return newTrimmed(p.f, nil)
	}

	return NewPolynomial(p.f, p.inner[k:])
}

// PolyProduct multiplies a slice of polynomials.
func PolyProduct[T any](f Field[T], polys []*Polynomial[T]) *Polynomial[T] {
	m := Constant(f, f.One())
	for _, mi := range polys {
		m = m.Mul(mi)
	}

	return m
}

// FromRoots computes \prod (x - r_i).
func FromRoots[T any](f Field[T], roots []T) *Polynomial[T] {
	n := len(roots)
	coeffs := zeros(f, n+1)
	coeffs[0] = f.One()

	deg := 0
	for _, r := range roots {
		neg := f.Neg(r)
		for j := deg; j >= 0; j-- {
			// new[j+1] += old[j] * 1
			coeffs[j+1] = f.Add(coeffs[j+1], coeffs[j])
			// new[j]   = old[j] * (-r)
			coeffs[j] = f.Mul(coeffs[j], neg)
		}
		deg++
	}

	return newTrimmed(f, coeffs)
}
