package field

import (
	"math"
	"math/big"
)

// Rat is the exact rational backend. It has no representation of +∞, so root
// isolation rejects it; the polynomial algebra works without rounding.
type Rat struct{}

var _ Ordered[*big.Rat] = Rat{}

func (Rat) Zero() *big.Rat                 { return new(big.Rat) }
func (Rat) One() *big.Rat                  { return big.NewRat(1, 1) }
func (Rat) FromInt64(v int64) *big.Rat     { return big.NewRat(v, 1) }
func (Rat) FromBigInt(v *big.Int) *big.Rat { return new(big.Rat).SetInt(v) }

// FromFloat64 is exact for every finite input; non-finite inputs map to zero.
func (Rat) FromFloat64(v float64) *big.Rat {
	r := new(big.Rat)
	if r.SetFloat64(v) == nil {
		return new(big.Rat)
	}

	return r
}

func (Rat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }
func (Rat) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }
func (Rat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }
func (Rat) Neg(a *big.Rat) *big.Rat    { return new(big.Rat).Neg(a) }

func (Rat) Div(a, b *big.Rat) *big.Rat {
	if b.Sign() == 0 {
		panic(ErrDivisionByZero)
	}

	return new(big.Rat).Quo(a, b)
}

func (r Rat) Inverse(a *big.Rat) *big.Rat {
	return r.Div(r.One(), a)
}

func (Rat) IsZero(a *big.Rat) bool    { return a.Sign() == 0 }
func (Rat) IsOne(a *big.Rat) bool     { return a.IsInt() && a.Num().IsInt64() && a.Num().Int64() == 1 }
func (Rat) Equals(a, b *big.Rat) bool { return a.Cmp(b) == 0 }
func (Rat) Cmp(a, b *big.Rat) int     { return a.Cmp(b) }
func (Rat) Sign(a *big.Rat) int       { return a.Sign() }

// Pow is exact for integral exponents and rounds through float64 otherwise.
func (r Rat) Pow(base, exp *big.Rat) *big.Rat {
	if exp.IsInt() && exp.Num().IsInt64() {
		n := exp.Num().Int64()
		neg := n < 0
		if neg {
			n = -n
		}

		num := new(big.Int).Exp(base.Num(), big.NewInt(n), nil)
		den := new(big.Int).Exp(base.Denom(), big.NewInt(n), nil)
		res := new(big.Rat).SetFrac(num, den)

		if neg {
			return r.Inverse(res)
		}

		return res
	}

	b, _ := base.Float64()
	e, _ := exp.Float64()

	return r.FromFloat64(math.Pow(b, e))
}

func (Rat) PositiveInfinity() (*big.Rat, error) {
	return nil, ErrNoInfinity
}

func (Rat) IsPositiveInfinity(*big.Rat) bool {
	return false
}
