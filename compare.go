package fraction

import "math/big"

// cross returns a.num*b.den and b.num*a.den.
func cross(a, b Frac) (*big.Int, *big.Int) {
	return new(big.Int).Mul(a.num(), b.den()), new(big.Int).Mul(b.num(), a.den())
}

// Equal reports whether f and n have the same value.
func (f Frac) Equal(n Frac) bool {
	return f.Cmp(n) == 0
}

// Cmp returns -1, 0 or +1 as f is less than, equal to or greater than n.
func (f Frac) Cmp(n Frac) int {
	l, r := cross(f, n)
	return l.Cmp(r)
}

func (f Frac) Less(n Frac) bool {
	return f.Cmp(n) < 0
}

func (f Frac) IsZero() bool {
	return f.num().Sign() == 0
}

func (f Frac) IsInteger() bool {
	return new(big.Int).Rem(f.num(), f.den()).Sign() == 0
}

// IsProper reports whether |f| < 1.
func (f Frac) IsProper() bool {
	return f.num().CmpAbs(f.den()) < 0
}

// IsUnit reports whether the numerator is exactly 1. Negative fractions
// such as -1/2 are not unit fractions.
func (f Frac) IsUnit() bool {
	return f.num().Cmp(bigOne) == 0
}

// IsAdjacentTo reports whether f and n differ by a unit fraction, as
// neighbours in a Farey sequence do.
func (f Frac) IsAdjacentTo(n Frac) bool {
	l, r := cross(f, n)
	return l.Sub(l, r).CmpAbs(bigOne) == 0
}
