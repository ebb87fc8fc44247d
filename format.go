package fraction

import (
	"fmt"
	"math/big"
)

// String returns "num/den", or just "num" for integers.
func (f Frac) String() string {
	if f.den().Cmp(bigOne) == 0 {
		return f.num().String()
	}
	return fmt.Sprintf("%d/%d", f.num(), f.den())
}

// Mixed returns f as a mixed number such as "2 1/3". The whole part is
// rounded towards negative infinity, so -7/3 is "-3 2/3".
func (f Frac) Mixed() string {
	if f.IsProper() {
		return f.String()
	}

	// den > 0, so Euclidean division is floor division
	q, r := new(big.Int).DivMod(f.num(), f.den(), new(big.Int))
	if r.Sign() == 0 {
		return q.String()
	}
	return fmt.Sprintf("%d %d/%d", q, r, f.den())
}

// Float64 returns the nearest float64 to f.
func (f Frac) Float64() float64 {
	v, _ := new(big.Rat).SetFrac(f.num(), f.den()).Float64()
	return v
}
