// Package fraction provides an exact rational number type.
//
// A Frac is always kept in lowest terms with a positive denominator, and
// every operation returns a new value, so Fracs can be shared freely.
package fraction

import (
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Frac is an immutable fraction of arbitrary precision integers.
// The zero value is 0/1.
type Frac struct {
	top    *big.Int
	bottom *big.Int
}

var bigOne = big.NewInt(1)

// New returns num/den reduced to lowest terms.
func New(num, den int64) (Frac, error) {
	return newFrac(big.NewInt(num), big.NewInt(den))
}

// Of is New for any integer type.
func Of[T constraints.Integer](num, den T) (Frac, error) {
	return newFrac(toBig(num), toBig(den))
}

// NewBig is like New but takes big integers. The arguments are copied.
func NewBig(num, den *big.Int) (Frac, error) {
	return newFrac(new(big.Int).Set(num), new(big.Int).Set(den))
}

// Int returns n/1.
func Int(n int64) Frac {
	return Frac{top: big.NewInt(n), bottom: big.NewInt(1)}
}

// Must panics if err is not nil.
func Must(f Frac, err error) Frac {
	if err != nil {
		panic(err)
	}
	return f
}

func toBig[T constraints.Integer](v T) *big.Int {
	var zero T
	if v < zero {
		return big.NewInt(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

// newFrac takes ownership of top and bottom.
func newFrac(top, bottom *big.Int) (Frac, error) {
	if bottom.Sign() == 0 {
		return Frac{}, fmt.Errorf("%s/0: %w", top, ErrInvalidDenominator)
	}
	return Frac{top: top, bottom: bottom}.approx(), nil
}

// 約分
func (f Frac) approx() Frac {
	gcd := new(big.Int).GCD(nil, nil, f.top, f.bottom)
	if gcd.Cmp(bigOne) != 0 { // gcd != 1
		f.top.Quo(f.top, gcd)
		f.bottom.Quo(f.bottom, gcd)
	}

	if f.bottom.Sign() < 0 {
		f.top.Neg(f.top)
		f.bottom.Neg(f.bottom)
	}

	return f
}

func (f Frac) num() *big.Int {
	if f.top == nil {
		return new(big.Int)
	}
	return f.top
}

func (f Frac) den() *big.Int {
	if f.bottom == nil {
		return bigOne
	}
	return f.bottom
}

// Numerator returns a copy of the numerator. Its sign is the sign of f.
func (f Frac) Numerator() *big.Int {
	return new(big.Int).Set(f.num())
}

// Denominator returns a copy of the denominator, which is always positive.
func (f Frac) Denominator() *big.Int {
	return new(big.Int).Set(f.den())
}

// Int64s returns the numerator and denominator as int64 values.
// ok is false if either does not fit.
func (f Frac) Int64s() (num, den int64, ok bool) {
	n, d := f.num(), f.den()
	if !n.IsInt64() || !d.IsInt64() {
		return 0, 0, false
	}
	return n.Int64(), d.Int64(), true
}

func (f Frac) Add(n Frac) Frac {
	top := new(big.Int).Mul(f.num(), n.den())
	top.Add(top, new(big.Int).Mul(n.num(), f.den()))

	bottom := new(big.Int).Mul(f.den(), n.den())
	return Frac{top: top, bottom: bottom}.approx()
}

func (f Frac) Sub(n Frac) Frac {
	top := new(big.Int).Mul(f.num(), n.den())
	top.Sub(top, new(big.Int).Mul(n.num(), f.den()))

	bottom := new(big.Int).Mul(f.den(), n.den())
	return Frac{top: top, bottom: bottom}.approx()
}

func (f Frac) Mul(n Frac) Frac {
	top := new(big.Int).Mul(f.num(), n.num())
	bottom := new(big.Int).Mul(f.den(), n.den())
	return Frac{top: top, bottom: bottom}.approx()
}

// Div returns f/n. It fails with ErrDivisionByZero if n is zero.
func (f Frac) Div(n Frac) (Frac, error) {
	if n.IsZero() {
		return Frac{}, fmt.Errorf("%s / %s: %w", f, n, ErrDivisionByZero)
	}
	top := new(big.Int).Mul(f.num(), n.den())
	bottom := new(big.Int).Mul(f.den(), n.num())
	return Frac{top: top, bottom: bottom}.approx(), nil
}

func (f Frac) Neg() Frac {
	return Frac{top: new(big.Int).Neg(f.num()), bottom: f.Denominator()}
}

// Pow returns f raised to the power n. A negative n inverts f first, so a
// zero f with a negative n fails with ErrDivisionByZero.
func (f Frac) Pow(n int64) (Frac, error) {
	top, bottom := f.num(), f.den()
	if n < 0 {
		if f.IsZero() {
			return Frac{}, fmt.Errorf("%s ** %d: %w", f, n, ErrDivisionByZero)
		}
		top, bottom = bottom, top
	}

	exp := new(big.Int).Abs(big.NewInt(n))
	return Frac{
		top:    new(big.Int).Exp(top, exp, nil),
		bottom: new(big.Int).Exp(bottom, exp, nil),
	}.approx(), nil
}

// PowFrac is Pow with the exponent given as a fraction. The exponent must be
// an integer that fits in an int64, or ErrInvalidExponent is returned.
func (f Frac) PowFrac(e Frac) (Frac, error) {
	if !e.IsInteger() || !e.num().IsInt64() {
		return Frac{}, fmt.Errorf("%s ** %s: %w", f, e, ErrInvalidExponent)
	}
	return f.Pow(e.num().Int64())
}
