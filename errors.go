package bignum

import "github.com/pkg/errors"

// Errors returned by this package.
// They are wrapped with call-site context, so use [errors.Is] to match them.
//
// [errors.Is]: https://pkg.go.dev/errors#Is
var (
	ErrParse            = errors.New("invalid numeral")
	ErrBaseRange        = errors.New("base out of range")
	ErrDivideByZero     = errors.New("division by zero")
	ErrNoInverse        = errors.New("no modular inverse")
	ErrCoercion         = errors.New("operand is not an integer")
	ErrOverflow         = errors.New("integer overflow")
	ErrNegativeExponent = errors.New("negative exponent")
	ErrEvenModulus      = errors.New("modulus must be odd and greater than one")
	ErrUnknownOp        = errors.New("unknown operation")
	ErrArity            = errors.New("wrong number of arguments")
)
