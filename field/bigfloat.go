package field

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// DefaultPrecision is the mantissa size used by NewBigFloat when none is given.
const DefaultPrecision uint = 256

// BigFloat is an arbitrary-precision backend over *big.Float. Every result is a fresh
// value rounded to the backend precision; operands are never modified.
type BigFloat struct {
	prec uint
}

var _ Ordered[*big.Float] = BigFloat{}

// NewBigFloat returns a backend with the given mantissa precision in bits.
// Zero selects DefaultPrecision.
func NewBigFloat(prec uint) BigFloat {
	if prec == 0 {
		prec = DefaultPrecision
	}

	return BigFloat{prec: prec}
}

func (f BigFloat) Precision() uint {
	if f.prec == 0 {
		return DefaultPrecision
	}

	return f.prec
}

func (f BigFloat) newFloat() *big.Float {
	return new(big.Float).SetPrec(f.Precision())
}

func (f BigFloat) Zero() *big.Float { return f.newFloat() }
func (f BigFloat) One() *big.Float  { return f.newFloat().SetInt64(1) }

func (f BigFloat) FromInt64(v int64) *big.Float     { return f.newFloat().SetInt64(v) }
func (f BigFloat) FromBigInt(v *big.Int) *big.Float { return f.newFloat().SetInt(v) }
func (f BigFloat) FromFloat64(v float64) *big.Float { return f.newFloat().SetFloat64(v) }

// FromString parses a decimal literal such as "-1.25e3".
func (f BigFloat) FromString(s string) (*big.Float, bool) {
	return f.newFloat().SetString(s)
}

func (f BigFloat) Add(a, b *big.Float) *big.Float { return f.newFloat().Add(a, b) }
func (f BigFloat) Sub(a, b *big.Float) *big.Float { return f.newFloat().Sub(a, b) }
func (f BigFloat) Mul(a, b *big.Float) *big.Float { return f.newFloat().Mul(a, b) }
func (f BigFloat) Neg(a *big.Float) *big.Float    { return f.newFloat().Neg(a) }

func (f BigFloat) Div(a, b *big.Float) *big.Float {
	if b.Sign() == 0 {
		panic(ErrDivisionByZero)
	}

	return f.newFloat().Quo(a, b)
}

func (f BigFloat) Inverse(a *big.Float) *big.Float {
	return f.Div(f.One(), a)
}

func (f BigFloat) IsZero(a *big.Float) bool    { return a.Sign() == 0 }
func (f BigFloat) IsOne(a *big.Float) bool     { return a.IsInt() && a.Cmp(f.One()) == 0 }
func (f BigFloat) Equals(a, b *big.Float) bool { return a.Cmp(b) == 0 }
func (f BigFloat) Cmp(a, b *big.Float) int     { return a.Cmp(b) }
func (f BigFloat) Sign(a *big.Float) int       { return a.Sign() }

func (f BigFloat) Pow(base, exp *big.Float) *big.Float {
	switch {
	case exp.Sign() == 0:
		return f.One()
	case base.Sign() == 0:
		return f.Zero()
	}

	// bigfloat.Pow keeps the precision of its first argument.
	z := f.newFloat().Set(base)

	return bigfloat.Pow(z, exp)
}

func (f BigFloat) PositiveInfinity() (*big.Float, error) {
	return f.newFloat().SetInf(false), nil
}

func (f BigFloat) IsPositiveInfinity(a *big.Float) bool {
	return a.IsInf() && a.Sign() > 0
}
