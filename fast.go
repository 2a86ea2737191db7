package bignum

import (
	"math"
	"math/big"
)

// fint (Fast INTeger) is a wrapper around uint64.
// It holds residues modulo a modulus not greater than maxFint,
// so the product of any two residues fits in 64 bits.
type fint uint64

// maxFint is the largest modulus handled by fint arithmetic.
const maxFint = math.MaxUint32

// mulMod calculates x * y mod m.
func (x fint) mulMod(y, m fint) fint {
	return x * y % m
}

// expMod calculates x^e mod m with left-to-right binary
// square-and-multiply, scanning the bits of e from the most significant one.
// e must not be negative, and x must already be reduced modulo m.
func (x fint) expMod(e *big.Int, m fint) fint {
	if m == 1 {
		return 0
	}
	z := fint(1)
	for i := e.BitLen() - 1; i >= 0; i-- {
		z = z.mulMod(z, m)
		if e.Bit(i) != 0 {
			z = z.mulMod(x, m)
		}
	}
	return z
}

// residue calculates the Euclidean modulus of x and m using
// only machine arithmetic when x fits in int64.
func residue(x Int, m fint) fint {
	b := x.big()
	if b.IsInt64() {
		v := b.Int64()
		if v >= 0 {
			return fint(uint64(v) % uint64(m))
		}
		// -v may overflow for MinInt64, so reduce the magnitude as uint64.
		r := fint((^uint64(v) + 1) % uint64(m))
		if r == 0 {
			return 0
		}
		return m - r
	}
	r := new(big.Int).Mod(b, new(big.Int).SetUint64(uint64(m)))
	return fint(r.Uint64())
}

// powModFast calculates x^e mod |m| and reports whether the modulus was
// small enough for fint arithmetic.
// e must not be negative and m must not be 0.
func powModFast(x, e, m Int) (Int, bool) {
	mb := m.big()
	if !mb.IsInt64() {
		return Int{}, false
	}
	v := mb.Int64()
	if v < -maxFint || v > maxFint {
		return Int{}, false
	}
	if v < 0 {
		v = -v
	}
	mod := fint(v)
	z := residue(x, mod).expMod(e.big(), mod)
	return NewFromUint64(uint64(z)), true
}
