package field

import (
	"math"
	"math/big"
)

// Float64 is the machine floating point backend.
type Float64 struct{}

var _ Ordered[float64] = Float64{}

func (Float64) Zero() float64                 { return 0 }
func (Float64) One() float64                  { return 1 }
func (Float64) FromInt64(v int64) float64     { return float64(v) }
func (Float64) FromFloat64(v float64) float64 { return v }

func (Float64) FromBigInt(v *big.Int) float64 {
	f, _ := new(big.Float).SetInt(v).Float64()
	return f
}

func (Float64) Add(a, b float64) float64 { return a + b }
func (Float64) Sub(a, b float64) float64 { return a - b }
func (Float64) Mul(a, b float64) float64 { return a * b }
func (Float64) Neg(a float64) float64    { return -a }

func (Float64) Div(a, b float64) float64 {
	if b == 0 {
		panic(ErrDivisionByZero)
	}

	return a / b
}

func (f Float64) Inverse(a float64) float64 {
	return f.Div(1, a)
}

func (Float64) IsZero(a float64) bool    { return a == 0 }
func (Float64) IsOne(a float64) bool     { return a == 1 }
func (Float64) Equals(a, b float64) bool { return a == b }

func (Float64) Cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (f Float64) Sign(a float64) int {
	return f.Cmp(a, 0)
}

func (Float64) Pow(base, exp float64) float64 {
	return math.Pow(base, exp)
}

func (Float64) PositiveInfinity() (float64, error) {
	return math.Inf(1), nil
}

func (Float64) IsPositiveInfinity(a float64) bool {
	return math.IsInf(a, 1)
}
