package field

import "errors"

type Interpolator[T any] struct {
	Field Field[T]
}

func NewInterpolator[T any](f Field[T]) *Interpolator[T] {
	return &Interpolator[T]{Field: f}
}

var (
	errPointsSizeMismatch = errors.New("field: points size mismatch")
	errNonUniqueXs        = errors.New("field: non-unique x values")
)

// Interpolation code follows the Lagrange interpolation method
// https://en.wikipedia.org/wiki/Lagrange_polynomial
// It is O(n^2) in total:
// 1. Create m(x) = \prod_{0\le i \le n} (x - x_i).
// 2. For each i, q_i(x) = m(x) / (x - x_i) by synthetic division.
// 3. l_i = q_i / q_i(x_i).
// 4. Sum l_i * y_i.
func (intr *Interpolator[T]) Interpolate(xs, ys []T) (*Polynomial[T], error) {
	if err := intr.validateInterpolationPoints(xs, ys); err != nil {
		return nil, err
	}

	f := intr.Field
	if len(xs) == 0 {
		return newTrimmed(f, nil), nil
	}

	m := FromRoots(f, xs)
	sum := zeros(f, len(xs))

	for i, x := range xs {
		qi := intr.mDivMi(m, x)
		s := f.Div(ys[i], qi.Eval(x))

		for j, c := range qi.inner {
			sum[j] = f.Add(sum[j], f.Mul(c, s))
		}
	}

	return newTrimmed(f, sum), nil
}

/*
mDivMi divides m by (x - root). This is quicker than the long division method since
the divisor is monic of degree 1 and there is no remainder.
*/
func (intr *Interpolator[T]) mDivMi(m *Polynomial[T], root T) *Polynomial[T] {
	f := intr.Field
	n := len(m.inner)
	qinner := make([]T, n-1)

	carry := f.Zero()
	for i := n - 1; i > 0; i-- {
		carry = f.Add(m.inner[i], f.Mul(carry, root))
		qinner[i-1] = carry
	}

	return NewPolynomial(f, qinner)
}

func (intr *Interpolator[T]) validateInterpolationPoints(xs []T, ys []T) error {
	if len(xs) != len(ys) {
		return errPointsSizeMismatch
	}

	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if intr.Field.Equals(xs[i], xs[j]) {
				return errNonUniqueXs
			}
		}
	}

	return nil
}
