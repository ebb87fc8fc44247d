package fraction

import "errors"

// Errors returned by this package. Returned errors wrap one of these and
// should be checked with errors.Is.
var (
	ErrInvalidDenominator = errors.New("denominator is zero")
	ErrDivisionByZero     = errors.New("division by zero")
	ErrInvalidExponent    = errors.New("exponent is not an integer")
	ErrTypeMismatch       = errors.New("value is not a fraction")
)
