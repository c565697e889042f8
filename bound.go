package vas

import "github.com/jonathanmweiss/go-vas/field"

// halvingShare hands out a_j/2, a_j/4, ... to the negative coefficients that pair
// against the positive coefficient a_j. The shares sum to less than a_j.
type halvingShare[T any] struct {
	o     field.Ordered[T]
	two   T
	share T
}

func newHalvingShare[T any](o field.Ordered[T], coeff T) *halvingShare[T] {
	return &halvingShare[T]{o: o, two: o.FromInt64(2), share: coeff}
}

func (h *halvingShare[T]) next() T {
	h.share = h.o.Div(h.share, h.two)
	return h.share
}

// UpperBound is the Local-Max-Quadratic bound (Akritas, Strzeboński, Vigklas) on the
// positive real roots of p.
//
// For every negative coefficient a_i, scanned from the highest degree down, and every
// positive a_j with j > i, the candidate is (-a_i / share_j)^(1/(j-i)). The bound is the
// maximum over i of the minimum over j.
func UpperBound[T any](o field.Ordered[T], p *field.Polynomial[T]) (T, error) {
	var bound T

	n := p.Degree()
	if n < 2 {
		return bound, ErrDegreeTooLow
	}

	coeffs := p.Coefficients()
	if field.IsNegative(o, coeffs[n]) {
		for i, c := range coeffs {
			coeffs[i] = o.Neg(c)
		}
	}

	shares := make([]*halvingShare[T], n+1)
	found := false

	for i := n - 1; i >= 0; i-- {
		if !field.IsNegative(o, coeffs[i]) {
			continue
		}

		var tightest T
		paired := false

		for j := i + 1; j <= n; j++ {
			if !field.IsPositive(o, coeffs[j]) {
				continue
			}

			if shares[j] == nil {
				shares[j] = newHalvingShare(o, coeffs[j])
			}

			candidate := o.Div(o.Neg(coeffs[i]), shares[j].next())
			if j-i > 1 {
				candidate = o.Pow(candidate, o.Inverse(o.FromInt64(int64(j-i))))
			}

			if !paired || field.Less(o, candidate, tightest) {
				tightest = candidate
				paired = true
			}
		}

		// the leading coefficient is positive, so every negative term pairs with something.
		if !found || field.Greater(o, tightest, bound) {
			bound = tightest
			found = true
		}
	}

	if !found {
		return bound, ErrNoNegativeCoefficient
	}

	return bound, nil
}

// LowerBound bounds the positive roots of p from below: the roots of the reversed
// polynomial are the reciprocals of the roots of p.
func LowerBound[T any](o field.Ordered[T], p *field.Polynomial[T]) (T, error) {
	ub, err := UpperBound(o, p.Reverse())
	if err != nil {
		return ub, err
	}

	return o.Inverse(ub), nil
}
