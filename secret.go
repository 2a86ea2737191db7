package bignum

import (
	"filippo.io/bigmod"
	"github.com/pkg/errors"
)

// PowModSecret returns x raised to the power of e modulo m, like [Int.PowMod],
// but computes the power with constant-time Montgomery arithmetic.
// It is intended for secret exponents, such as private keys in
// Diffie-Hellman or RSA.
//
// Only the bit length of the modulus and the byte length of the exponent
// leak through timing.
// If x is negative or not less than |m|, it is first reduced with
// variable-time arithmetic, so callers with secret bases should pass
// reduced values.
//
// PowModSecret returns an error:
//   - if m is 0;
//   - if e is negative;
//   - if |m| is even or equal to 1.
func (x Int) PowModSecret(e, m Operand) (Int, error) {
	n, err := into(e)
	if err != nil {
		return Int{}, err
	}
	mod, err := into(m)
	if err != nil {
		return Int{}, err
	}
	mabs := mod.Abs()
	switch {
	case mabs.IsZero():
		return Int{}, errors.Wrapf(ErrDivideByZero, "%v.PowModSecret(%v, %v)", x, n, mod)
	case n.IsNeg():
		return Int{}, errors.Wrapf(ErrNegativeExponent, "%v.PowModSecret(%v, %v)", x, n, mod)
	case !mabs.IsOdd() || mabs.BitLen() < 2:
		return Int{}, errors.Wrapf(ErrEvenModulus, "%v.PowModSecret(%v, %v)", x, n, mod)
	}

	bm, err := bigmod.NewModulus(mabs.big().Bytes())
	if err != nil {
		return Int{}, errors.Wrapf(err, "%v.PowModSecret(%v, %v)", x, n, mod)
	}

	// Base reduction
	if x.IsNeg() || x.GreaterEqual(mabs) {
		x, err = x.Mod(mabs)
		if err != nil {
			return Int{}, err
		}
	}
	base, err := bigmod.NewNat().SetBytes(x.big().Bytes(), bm)
	if err != nil {
		return Int{}, errors.Wrapf(err, "%v.PowModSecret(%v, %v)", x, n, mod)
	}

	z := bigmod.NewNat().Exp(base, n.big().Bytes(), bm)
	return FromBytes(z.Bytes(bm)), nil
}
