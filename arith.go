package bignum

import (
	"math/big"

	"github.com/pkg/errors"
)

// maxBits is the largest bit length of a result that [Int.Pow] and
// [Int.ShiftLeft] are allowed to produce.
const maxBits = 1 << 28

var bone = big.NewInt(1)

// Add returns the sum x + y.
func (x Int) Add(y Operand) (Int, error) {
	b, err := into(y)
	if err != nil {
		return Int{}, err
	}
	return newInt(new(big.Int).Add(x.big(), b.big())), nil
}

// Sub returns the difference x - y.
func (x Int) Sub(y Operand) (Int, error) {
	b, err := into(y)
	if err != nil {
		return Int{}, err
	}
	return newInt(new(big.Int).Sub(x.big(), b.big())), nil
}

// Mul returns the product x * y.
func (x Int) Mul(y Operand) (Int, error) {
	b, err := into(y)
	if err != nil {
		return Int{}, err
	}
	return newInt(new(big.Int).Mul(x.big(), b.big())), nil
}

// Div returns the Euclidean quotient q of x and y.
// Together with [Int.Mod] it satisfies
//
//	x = q * y + r, where 0 <= r < |y|
//
// For a positive y the quotient is rounded towards negative infinity.
// For a negative y it is rounded towards positive infinity.
//
// Div returns an error if y is 0.
func (x Int) Div(y Operand) (Int, error) {
	q, _, err := x.DivMod(y)
	return q, err
}

// Mod returns the Euclidean modulus of x and y.
// The result is always in the range [0, |y|), regardless of the signs
// of x and y.
// See [Int.Div] for details.
//
// Mod returns an error if y is 0.
func (x Int) Mod(y Operand) (Int, error) {
	_, r, err := x.DivMod(y)
	return r, err
}

// DivMod returns the Euclidean quotient and modulus of x and y.
// See [Int.Div] for details.
//
// DivMod returns an error if y is 0.
func (x Int) DivMod(y Operand) (q, r Int, err error) {
	d, err := into(y)
	if err != nil {
		return Int{}, Int{}, err
	}
	if d.IsZero() {
		return Int{}, Int{}, errors.Wrapf(ErrDivideByZero, "%v.DivMod(%v)", x, d)
	}
	bq, br := new(big.Int).DivMod(x.big(), d.big(), new(big.Int))
	return newInt(bq), newInt(br), nil
}

// QuoRem returns the truncated quotient and remainder of x and y, such that
//
//	x = q * y + r, where |r| < |y|
//
// The quotient is rounded towards zero and the remainder has the sign of x.
// This is the convention of Go integer division.
//
// QuoRem returns an error if y is 0.
func (x Int) QuoRem(y Operand) (q, r Int, err error) {
	d, err := into(y)
	if err != nil {
		return Int{}, Int{}, err
	}
	if d.IsZero() {
		return Int{}, Int{}, errors.Wrapf(ErrDivideByZero, "%v.QuoRem(%v)", x, d)
	}
	bq, br := new(big.Int).QuoRem(x.big(), d.big(), new(big.Int))
	return newInt(bq), newInt(br), nil
}

// Pow returns x raised to the power of e.
//
// Pow returns an error:
//   - if e is negative;
//   - if x.BitLen() * e, an upper bound of the result length, exceeds 2^28.
func (x Int) Pow(e Operand) (Int, error) {
	n, err := into(e)
	if err != nil {
		return Int{}, err
	}

	// Special cases
	switch {
	case n.IsNeg():
		return Int{}, errors.Wrapf(ErrNegativeExponent, "%v.Pow(%v)", x, n)
	case n.IsZero():
		return New(1), nil
	case x.IsZero():
		return Int{}, nil
	case x.big().CmpAbs(bone) == 0:
		if x.IsNeg() && !n.IsOdd() {
			return New(1), nil
		}
		return x, nil
	}

	// General case
	// x.BitLen() * e is an upper bound of the result length.
	if !n.big().IsInt64() || n.big().Int64() > maxBits || int64(x.BitLen())*n.big().Int64() > maxBits {
		return Int{}, errors.Wrapf(ErrOverflow, "%v.Pow(%v)", x, n)
	}
	return newInt(new(big.Int).Exp(x.big(), n.big(), nil)), nil
}

// PowMod returns x raised to the power of e modulo m.
// The result is in the range [0, |m|).
// The full power is never computed: the result is obtained by repeated
// squaring and multiplication modulo m, so the cost is proportional to
// the bit length of e.
//
// Moduli below 2^32 are handled with 64-bit machine arithmetic,
// larger moduli with [big.Int.Exp].
// Neither path is constant-time; see [Int.PowModSecret] for secret operands.
//
// PowMod returns an error:
//   - if m is 0;
//   - if e is negative. Use [Int.InvMod] first to raise to a negative power.
func (x Int) PowMod(e, m Operand) (Int, error) {
	n, err := into(e)
	if err != nil {
		return Int{}, err
	}
	mod, err := into(m)
	if err != nil {
		return Int{}, err
	}
	switch {
	case mod.IsZero():
		return Int{}, errors.Wrapf(ErrDivideByZero, "%v.PowMod(%v, %v)", x, n, mod)
	case n.IsNeg():
		return Int{}, errors.Wrapf(ErrNegativeExponent, "%v.PowMod(%v, %v)", x, n, mod)
	}
	if z, ok := powModFast(x, n, mod); ok {
		return z, nil
	}
	return powModSlow(x, n, mod), nil
}

// powModSlow calculates x^e mod |m| with big.Int arithmetic.
func powModSlow(x, e, m Int) Int {
	mabs := new(big.Int).Abs(m.big())
	base := new(big.Int).Mod(x.big(), mabs)
	return newInt(new(big.Int).Exp(base, e.big(), mabs))
}

// InvMod returns the modular multiplicative inverse of x modulo m,
// that is the integer r in the range [0, |m|) such that x * r ≡ 1 (mod m).
//
// InvMod returns an error:
//   - if m is 0;
//   - if x and m are not coprime.
func (x Int) InvMod(m Operand) (Int, error) {
	mod, err := into(m)
	if err != nil {
		return Int{}, err
	}
	mabs := new(big.Int).Abs(mod.big())
	switch {
	case mabs.Sign() == 0:
		return Int{}, errors.Wrapf(ErrDivideByZero, "%v.InvMod(%v)", x, mod)
	case mabs.Cmp(bone) == 0:
		return Int{}, nil // every integer is congruent to 0 and 1 modulo 1
	}
	z := new(big.Int).ModInverse(x.big(), mabs)
	if z == nil {
		return Int{}, errors.Wrapf(ErrNoInverse, "%v.InvMod(%v)", x, mod)
	}
	return newInt(z), nil
}

// GCD returns the greatest common divisor of x and y.
// The result is never negative, and GCD(0, 0) is 0.
func (x Int) GCD(y Operand) (Int, error) {
	b, err := into(y)
	if err != nil {
		return Int{}, err
	}
	return newInt(new(big.Int).GCD(nil, nil, x.big(), b.big())), nil
}

// And returns the bitwise conjunction x & y.
// Negative integers use the infinite two's complement representation.
func (x Int) And(y Operand) (Int, error) {
	b, err := into(y)
	if err != nil {
		return Int{}, err
	}
	return newInt(new(big.Int).And(x.big(), b.big())), nil
}

// Or returns the bitwise disjunction x | y.
// Negative integers use the infinite two's complement representation.
func (x Int) Or(y Operand) (Int, error) {
	b, err := into(y)
	if err != nil {
		return Int{}, err
	}
	return newInt(new(big.Int).Or(x.big(), b.big())), nil
}

// Xor returns the bitwise exclusive disjunction x ^ y.
// Negative integers use the infinite two's complement representation.
func (x Int) Xor(y Operand) (Int, error) {
	b, err := into(y)
	if err != nil {
		return Int{}, err
	}
	return newInt(new(big.Int).Xor(x.big(), b.big())), nil
}

// AndNot returns the bit clear x &^ y.
func (x Int) AndNot(y Operand) (Int, error) {
	b, err := into(y)
	if err != nil {
		return Int{}, err
	}
	return newInt(new(big.Int).AndNot(x.big(), b.big())), nil
}

// Not returns the bitwise complement ^x, which equals -x - 1.
func (x Int) Not() Int {
	return newInt(new(big.Int).Not(x.big()))
}

// ShiftLeft returns x * 2^n.
// A negative n shifts to the right instead.
//
// ShiftLeft returns an error if the result would be longer than 2^28 bits.
func (x Int) ShiftLeft(n Operand) (Int, error) {
	c, err := into(n)
	if err != nil {
		return Int{}, err
	}
	if c.IsNeg() {
		return x.rsh(c.Neg()), nil
	}
	return x.lsh(c)
}

// ShiftRight returns ⌊x / 2^n⌋.
// The result is rounded towards negative infinity, so shifting a negative
// integer never produces 0: for example, -1 >> n is -1.
// A negative n shifts to the left instead.
//
// ShiftRight returns an error if the result would be longer than 2^28 bits.
func (x Int) ShiftRight(n Operand) (Int, error) {
	c, err := into(n)
	if err != nil {
		return Int{}, err
	}
	if c.IsNeg() {
		return x.lsh(c.Neg())
	}
	return x.rsh(c), nil
}

// lsh calculates x * 2^n for a non-negative n.
func (x Int) lsh(n Int) (Int, error) {
	if x.IsZero() {
		return Int{}, nil
	}
	if !n.big().IsInt64() || int64(x.BitLen())+n.big().Int64() > maxBits {
		return Int{}, errors.Wrapf(ErrOverflow, "%v.ShiftLeft(%v)", x, n)
	}
	return newInt(new(big.Int).Lsh(x.big(), uint(n.big().Int64()))), nil
}

// rsh calculates ⌊x / 2^n⌋ for a non-negative n.
func (x Int) rsh(n Int) Int {
	if !n.big().IsInt64() || n.big().Int64() >= int64(x.BitLen()) {
		if x.IsNeg() {
			return New(-1)
		}
		return Int{}
	}
	return newInt(new(big.Int).Rsh(x.big(), uint(n.big().Int64())))
}
