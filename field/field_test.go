package field

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootsOfUnity(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(65537)
	a.NoError(err)

	for _, n := range []uint64{2, 4, 8, 1024} {
		root, err := f.RootOfUnity(n)
		a.NoError(err)

		a.Equal(uint64(1), f.Exp(root, n))
		a.NotEqual(uint64(1), f.Exp(root, n/2))
	}

	_, err = f.RootOfUnity(3)
	a.ErrorIs(err, errNotPowerOfTwo)

	_, err = f.RootOfUnity(1)
	a.ErrorIs(err, errNSTooSmall)

	f, err = NewPrimeField(157)
	a.NoError(err)

	_, err = f.RootOfUnity(8)
	a.ErrorIs(err, errNotDivisible)

	_, err = NewPrimeField(158)
	a.ErrorIs(err, errNotPrime)
}

func TestCorrectOps(t *testing.T) {
	a := assert.New(t)

	f, err := NewPrimeField(largePrime) // p > 2^62
	a.NoError(err)

	n := f.Reduce(uint64((1 << 63) - 1))

	expected := new(big.Int).SetUint64(n)
	expected.Mul(expected, expected)
	expected.Mod(expected, new(big.Int).SetUint64(f.Modulus()))

	a.Equal(expected.Uint64(), f.Mul(n, n))
	a.Equal(uint64(1), f.Mul(n, f.Inverse(n)))

	a.Equal(f.Neg(5), f.FromInt64(-5))
	a.Equal(uint64(7), f.FromBigInt(big.NewInt(7)))
	a.True(f.IsZero(f.Add(n, f.Neg(n))))

	a.PanicsWithValue(ErrDivisionByZero, func() { f.Inverse(0) })
}

func FuzzInverse(f *testing.F) {
	testcases := []uint64{1, 54347, 4534523, 021310, 1<<63 - 1}
	for _, tc := range testcases {
		f.Add(tc) // Use f.Add to provide a seed corpus
	}

	fld, err := NewPrimeField(largePrime)
	if err != nil {
		f.FailNow()
	}

	f.Fuzz(func(t *testing.T, num uint64) {
		e := fld.Reduce(num)
		if e == 0 {
			t.Skip()
		}

		if res := fld.Mul(e, fld.Inverse(e)); res != 1 {
			t.Fatalf("expected 1, got %d", res)
		}

		if res := fld.Add(fld.Neg(e), e); res != 0 {
			t.Fatalf("expected 0, got %d", res)
		}
	})
}

func TestFloat64(t *testing.T) {
	a := assert.New(t)
	o := Float64{}

	inf, err := o.PositiveInfinity()
	a.NoError(err)
	a.True(o.IsPositiveInfinity(inf))
	a.False(o.IsPositiveInfinity(math.MaxFloat64))

	a.Equal(2.0, o.Pow(4, 0.5))
	a.Equal(-1, o.Cmp(1, inf))
	a.Equal(3.0, Max[float64](o, 3, -7))
	a.Equal(-7.0, Min[float64](o, 3, -7))
	a.Equal(7.0, Abs[float64](o, -7))
	a.True(IsNegative[float64](o, -0.5))
	a.True(GreaterEq[float64](o, 1, 1))
	a.Equal(1024.0, o.FromBigInt(big.NewInt(1024)))

	a.PanicsWithValue(ErrDivisionByZero, func() { o.Div(1, 0) })
}

func TestBigFloat(t *testing.T) {
	a := assert.New(t)
	o := NewBigFloat(0)

	a.Equal(DefaultPrecision, o.Precision())

	inf, err := o.PositiveInfinity()
	a.NoError(err)
	a.True(o.IsPositiveInfinity(inf))
	a.Equal(1, o.Cmp(inf, o.FromInt64(1<<40)))

	// 2^(1/2) squared is 2 up to the last bits of the mantissa.
	root := o.Pow(o.FromInt64(2), o.FromFloat64(0.5))
	diff := o.Sub(o.Mul(root, root), o.FromInt64(2))
	a.Equal(-1, o.Cmp(Abs[*big.Float](o, diff), o.FromFloat64(1e-60)))

	a.True(o.IsOne(o.Pow(o.FromInt64(9), o.Zero())))
	a.True(o.IsZero(o.Pow(o.Zero(), o.FromFloat64(0.25))))

	x, ok := o.FromString("-12.5")
	a.True(ok)
	a.True(o.Equals(x, o.FromFloat64(-12.5)))

	a.PanicsWithValue(ErrDivisionByZero, func() { o.Inverse(o.Zero()) })
}

func TestRat(t *testing.T) {
	a := assert.New(t)
	o := Rat{}

	_, err := o.PositiveInfinity()
	a.ErrorIs(err, ErrNoInfinity)

	a.True(o.Equals(big.NewRat(1, 8), o.Pow(big.NewRat(1, 2), o.FromInt64(3))))
	a.True(o.Equals(big.NewRat(4, 1), o.Pow(big.NewRat(1, 2), o.FromInt64(-2))))
	a.True(o.Equals(big.NewRat(3, 1), o.Pow(big.NewRat(9, 1), big.NewRat(1, 2))))
	a.True(o.IsOne(o.Div(big.NewRat(2, 3), big.NewRat(4, 6))))
	a.False(o.IsOne(big.NewRat(3, 2)))
}
