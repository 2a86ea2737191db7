package bignum

import (
	"math/big"

	"github.com/pkg/errors"
)

// Operand is an argument of a binary operation.
// It is a closed set of alternatives, each of which can be converted
// to an [Int]:
//
//   - [Int]: an existing integer, used as is.
//   - [Lit]: a native integer literal.
//   - [Text]: a decimal numeral.
//   - [Numeral]: a numeral in an explicit base.
//
// Every binary method of [Int] converts its operands before doing any
// arithmetic, so the following calls are equivalent:
//
//	x.Add(bignum.New(5))
//	x.Add(bignum.Lit(5))
//	x.Add(bignum.Text("5"))
//	x.Add(bignum.Numeral{Digits: "101", Base: 2})
type Operand interface {
	integer() (Int, error)
}

// Lit is a native integer literal used as an [Operand].
type Lit int64

// Text is a decimal numeral used as an [Operand].
// Converting a malformed numeral fails with [ErrParse].
type Text string

// Numeral is a numeral in the given base used as an [Operand].
// See [ParseBase] for the accepted format.
type Numeral struct {
	Digits string
	Base   int
}

func (x Int) integer() (Int, error) {
	return x, nil
}

func (l Lit) integer() (Int, error) {
	return New(int64(l)), nil
}

func (t Text) integer() (Int, error) {
	return Parse(string(t))
}

func (n Numeral) integer() (Int, error) {
	return ParseBase(n.Digits, n.Base)
}

// into converts an operand to an integer.
// It is the single conversion point shared by all binary operations.
func into(op Operand) (Int, error) {
	if op == nil {
		return Int{}, errors.Wrap(ErrCoercion, "nil operand")
	}
	if p, ok := op.(*Int); ok && p == nil {
		return Int{}, errors.Wrap(ErrCoercion, "nil *Int operand")
	}
	return op.integer()
}

// Integer is the set of capabilities provided by [Int].
// A value implementing Integer can be passed to [Coerce] and to every
// free function of this package without being wrapped first.
type Integer interface {
	Add(y Operand) (Int, error)
	Sub(y Operand) (Int, error)
	Mul(y Operand) (Int, error)
	Div(y Operand) (Int, error)
	Mod(y Operand) (Int, error)
	Pow(e Operand) (Int, error)
	PowMod(e, m Operand) (Int, error)
	InvMod(m Operand) (Int, error)
	Xor(y Operand) (Int, error)
	And(y Operand) (Int, error)
	ShiftLeft(n Operand) (Int, error)
	ShiftRight(n Operand) (Int, error)
	Equal(y Int) bool
	Cmp(y Int) int
	Greater(y Int) bool
	GreaterEqual(y Int) bool
	Less(y Int) bool
	LessEqual(y Int) bool
	Abs() Int
	Neg() Int
	Sign() int
	IsBitSet(i int) bool
	BitLen() int
	Bytes() []byte
	Text(base int) (string, error)
	Int64() (int64, error)
}

var _ Integer = Int{}

// IsInteger reports whether v already provides every capability of [Int],
// in which case [Coerce] does not need to parse or convert it.
// A nil pointer is not an integer.
func IsInteger(v any) bool {
	if p, ok := v.(*Int); ok {
		return p != nil
	}
	_, ok := v.(Integer)
	return ok
}

// Coerce converts v to an integer.
// The following types are supported:
//
//   - [Int], *[Int] and any other [Integer] implementation;
//   - [Lit], [Text] and [Numeral];
//   - int, int8, int16, int32, int64;
//   - uint, uint8, uint16, uint32, uint64;
//   - string, parsed as a decimal numeral;
//   - *[big.Int], which is copied.
//
// Coerce returns an error wrapping [ErrParse] for malformed numerals,
// and [ErrCoercion] for values of any other type, including nil pointers.
// Coerce never modifies v.
func Coerce(v any) (Int, error) {
	switch v := v.(type) {
	case Int:
		return v, nil
	case *Int:
		if v == nil {
			return Int{}, errors.Wrap(ErrCoercion, "nil *Int")
		}
		return *v, nil
	case Operand:
		return v.integer()
	case int:
		return New(int64(v)), nil
	case int8:
		return New(int64(v)), nil
	case int16:
		return New(int64(v)), nil
	case int32:
		return New(int64(v)), nil
	case int64:
		return New(v), nil
	case uint:
		return NewFromUint64(uint64(v)), nil
	case uint8:
		return NewFromUint64(uint64(v)), nil
	case uint16:
		return NewFromUint64(uint64(v)), nil
	case uint32:
		return NewFromUint64(uint64(v)), nil
	case uint64:
		return NewFromUint64(v), nil
	case string:
		return Parse(v)
	case *big.Int:
		if v == nil {
			return Int{}, errors.Wrap(ErrCoercion, "nil *big.Int")
		}
		return NewFromBig(v), nil
	case Integer:
		return fromInteger(v), nil
	default:
		return Int{}, errors.Wrapf(ErrCoercion, "coercing %T", v)
	}
}

// fromInteger rebuilds an integer from a foreign implementation
// using only its sign and magnitude.
func fromInteger(v Integer) Int {
	z := FromBytes(v.Bytes())
	if v.Sign() < 0 {
		return z.Neg()
	}
	return z
}
