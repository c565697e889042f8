package field

import (
	"errors"
	"math/big"
	"math/bits"

	"github.com/tuneinsight/lattigo/v6/ring"
)

// PrimeField is GF(p) for primes below 2^63. It is not ordered, so it serves exact
// modular checks of the polynomial algebra but cannot back root isolation.
type PrimeField struct {
	prime     uint64
	generator uint64
	factors   []uint64
}

var _ Field[uint64] = (*PrimeField)(nil)

var (
	errPrimeTooLarge = errors.New("field: supporting up to 63-bit prime")
	errNotPrime      = errors.New("field: modulus must be prime")
)

const maxBitUsage = 63

func NewPrimeField(prime uint64) (*PrimeField, error) {
	if prime > (1 << maxBitUsage) {
		return nil, errPrimeTooLarge
	}

	// ProbablyPrime is exact for 64-bit inputs, one round is enough.
	if !new(big.Int).SetUint64(prime).ProbablyPrime(1) {
		return nil, errNotPrime
	}

	g, factors, err := ring.PrimitiveRoot(prime, nil)
	if err != nil {
		return nil, err
	}

	return &PrimeField{
		prime:     prime,
		generator: g,
		factors:   factors,
	}, nil
}

var (
	errNotPowerOfTwo = errors.New("field: n must be a power of 2")
	errNotDivisible  = errors.New("field: n must divide p-1")
	errNSTooSmall    = errors.New("field: n must be >= 2")
)

func (f *PrimeField) Modulus() uint64 {
	return f.prime
}

func (f *PrimeField) Generator() uint64 {
	return f.generator
}

// Factors returns the distinct prime factors of p-1.
func (f *PrimeField) Factors() []uint64 {
	return f.factors
}

// RootOfUnity returns a primitive n-th root of unity.
func (f *PrimeField) RootOfUnity(n uint64) (uint64, error) {
	if n == 0 || n == 1 {
		return 0, errNSTooSmall
	}

	if !IsPowerOfTwo(n) {
		return 0, errNotPowerOfTwo
	}

	if (f.prime-1)%n != 0 {
		return 0, errNotDivisible
	}

	// g generates the multiplicative group, so g^((p-1)/n) has order exactly n.
	return f.Exp(f.generator, (f.prime-1)/n), nil
}

func IsPowerOfTwo(n uint64) bool {
	// https://graphics.stanford.edu/~seander/bithacks.html#DetermineIfPowerOf2
	return n != 0 && (n&(n-1)) == 0
}

func (f *PrimeField) Zero() uint64 { return 0 }
func (f *PrimeField) One() uint64  { return 1 }

func (f *PrimeField) FromInt64(v int64) uint64 {
	if v >= 0 {
		return uint64(v) % f.prime
	}

	return f.Neg(uint64(-v) % f.prime)
}

func (f *PrimeField) FromBigInt(v *big.Int) uint64 {
	m := new(big.Int).SetUint64(f.prime)

	return new(big.Int).Mod(v, m).Uint64()
}

func (f *PrimeField) Reduce(val uint64) uint64 {
	return val % f.prime
}

func (f *PrimeField) Add(a, b uint64) uint64 {
	tmp := a + b // can't overflow since adding two integers smaller than 2^63.
	if tmp >= f.prime {
		tmp -= f.prime
	}

	return tmp
}

func (f *PrimeField) Sub(a, b uint64) uint64 {
	if a < b {
		return f.prime - (b - a)
	}

	return a - b
}

// Mul returns a * b (mod p).
func (f *PrimeField) Mul(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}

	return fieldMul(a, b, f.prime)
}

func fieldMul(a, b uint64, mod uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, mod)

	return rem
}

func (f *PrimeField) Div(a, b uint64) uint64 {
	return f.Mul(a, f.Inverse(b))
}

// https://en.wikipedia.org/wiki/Exponentiation_by_squaring
func (f *PrimeField) Exp(base, exp uint64) uint64 {
	mod := f.prime

	x := uint64(1)
	for exp > 0 {
		if exp%2 == 1 {
			x = fieldMul(x, base, mod)
		}

		base = fieldMul(base, base, mod)
		exp /= 2
	}

	return x % mod
}

func (f *PrimeField) Inverse(e uint64) uint64 {
	// Fermat: a^(p-2) * a = a^(p-1) = 1 (mod p).
	if f.Reduce(e) == 0 {
		panic(ErrDivisionByZero)
	}

	return f.Exp(e, f.prime-2)
}

func (f *PrimeField) Neg(e uint64) uint64 {
	if e == 0 {
		return 0
	}

	return f.prime - e
}

func (f *PrimeField) IsZero(a uint64) bool { return f.Reduce(a) == 0 }
func (f *PrimeField) IsOne(a uint64) bool  { return f.Reduce(a) == 1 }

func (f *PrimeField) Equals(a, b uint64) bool {
	mod := f.prime
	return (a % mod) == (b % mod)
}
