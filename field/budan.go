package field

import (
	"math/big"
	"sync"

	"lukechampine.com/uint128"
)

// rows up to this degree are computed in 128-bit arithmetic:
// the intermediate c[i]*(n-i) stays below n*2^n < 2^127.
const maxUint128Row = 120

type binomialCache struct {
	sync.Locker
	degreeToRow map[int][]*big.Int
}

var pascalRows = &binomialCache{
	Locker:      &sync.Mutex{},
	degreeToRow: make(map[int][]*big.Int),
}

func (c *binomialCache) loadRow(n int) []*big.Int {
	c.Lock()
	defer c.Unlock()

	if row, ok := c.degreeToRow[n]; ok {
		return row
	}

	return nil
}

func (c *binomialCache) storeRow(n int, row []*big.Int) {
	c.Lock()
	defer c.Unlock()

	if _, ok := c.degreeToRow[n]; ok {
		return
	}

	c.degreeToRow[n] = row
}

// binomialRow returns C(n, 0..n). The returned slice is shared and must not be modified.
func binomialRow(n int) []*big.Int {
	if row := pascalRows.loadRow(n); row != nil {
		return row
	}

	row := make([]*big.Int, n+1)

	// c[i+1] = c[i] * (n-i) / (i+1), exact at every step.
	if n <= maxUint128Row {
		c := uint128.From64(1)
		row[0] = c.Big()

		for i := 0; i < n; i++ {
			c = c.Mul64(uint64(n - i)).Div64(uint64(i + 1))
			row[i+1] = c.Big()
		}
	} else {
		c := big.NewInt(1)
		row[0] = new(big.Int).Set(c)

		for i := 0; i < n; i++ {
			c.Mul(c, big.NewInt(int64(n-i)))
			c.Quo(c, big.NewInt(int64(i+1)))
			row[i+1] = new(big.Int).Set(c)
		}
	}

	pascalRows.storeRow(n, row)

	return row
}

// Pascal returns the coefficients of (x+1)^n, lowest degree first.
func Pascal[T any](f Field[T], n int) []T {
	row := binomialRow(n)
	out := make([]T, len(row))

	for i, c := range row {
		out[i] = f.FromBigInt(c)
	}

	return out
}

// BudanTransform returns (x+1)^n * p(1/(x+1)) for n = deg p. Its positive roots y map to
// the roots 1/(y+1) of p inside (0, 1).
//
// Expands as sum_k a_k (x+1)^(n-k).
func (p *Polynomial[T]) BudanTransform() *Polynomial[T] {
	n := p.Degree()
	if n < 0 {
		return p
	}

	f := p.f
	out := zeros(f, n+1)

	for k, a := range p.inner {
		if f.IsZero(a) {
			continue
		}

		for j, c := range Pascal(f, n-k) {
			out[j] = f.Add(out[j], f.Mul(a, c))
		}
	}

	return newTrimmed(f, out)
}
