package vas

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathanmweiss/go-vas/field"
)

func floatPoly(coeffs ...float64) *field.Polynomial[float64] {
	return field.NewPolynomial[float64](field.Float64{}, coeffs)
}

func TestUpperBound(t *testing.T) {
	o := field.Float64{}

	bound, err := UpperBound[float64](o, floatPoly(-1, -10, 10, 1))
	require.NoError(t, err)
	assert.Equal(t, 2.0, bound)

	// same polynomial, negated.
	bound, err = UpperBound[float64](o, floatPoly(1, 10, -10, -1))
	require.NoError(t, err)
	assert.Equal(t, 2.0, bound)
}

func TestUpperBoundBigFloat(t *testing.T) {
	o := field.NewBigFloat(field.DefaultPrecision)
	p := field.NewPolynomial[*big.Float](o, []*big.Float{
		o.FromInt64(-1), o.FromInt64(-10), o.FromInt64(10), o.FromInt64(1),
	})

	bound, err := UpperBound[*big.Float](o, p)
	require.NoError(t, err)
	assert.True(t, o.Equals(o.FromInt64(2), bound), "got %v", bound)
}

func TestLowerBound(t *testing.T) {
	o := field.Float64{}

	bound, err := LowerBound[float64](o, floatPoly(7, -7, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, 0.5, bound)
}

func TestBoundsEncloseRoots(t *testing.T) {
	o := field.Float64{}

	tests := []struct {
		name  string
		roots []float64
	}{
		{"small", []float64{0.5, 3, 7}},
		{"consecutive", []float64{1, 2, 3, 4, 5}},
		{"spread", []float64{0.1, 10}},
		{"mixed signs", []float64{-2, 4, 9}},
		{"clustered", []float64{0.25, 0.5, 0.75, 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := field.FromRoots[float64](o, tt.roots)

			upper, err := UpperBound[float64](o, p)
			require.NoError(t, err)

			lower, err := LowerBound[float64](o, p)
			require.NoError(t, err)

			for _, r := range tt.roots {
				if r <= 0 {
					continue
				}

				assert.GreaterOrEqual(t, upper, r)
				assert.LessOrEqual(t, lower, r)
			}
		})
	}
}

func TestBoundErrors(t *testing.T) {
	o := field.Float64{}

	_, err := UpperBound[float64](o, floatPoly(-3, 1))
	assert.ErrorIs(t, err, ErrDegreeTooLow)

	_, err = UpperBound[float64](o, floatPoly(1, 2, 0, 1))
	assert.ErrorIs(t, err, ErrNoNegativeCoefficient)

	_, err = LowerBound[float64](o, floatPoly(1, 2, 0, 1))
	assert.ErrorIs(t, err, ErrNoNegativeCoefficient)
}
