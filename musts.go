package bignum

import "fmt"

// MustAdd is like [Int.Add] but panics if computing error.
func (x Int) MustAdd(y Operand) Int {
	z, err := x.Add(y)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", x, err))
	}
	return z
}

// MustSub is like [Int.Sub] but panics if computing error.
func (x Int) MustSub(y Operand) Int {
	z, err := x.Sub(y)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", x, err))
	}
	return z
}

// MustMul is like [Int.Mul] but panics if computing error.
func (x Int) MustMul(y Operand) Int {
	z, err := x.Mul(y)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", x, err))
	}
	return z
}

// MustDiv is like [Int.Div] but panics if computing error.
func (x Int) MustDiv(y Operand) Int {
	z, err := x.Div(y)
	if err != nil {
		panic(fmt.Sprintf("MustDiv(%v) failed: %v", x, err))
	}
	return z
}

// MustMod is like [Int.Mod] but panics if computing error.
func (x Int) MustMod(y Operand) Int {
	z, err := x.Mod(y)
	if err != nil {
		panic(fmt.Sprintf("MustMod(%v) failed: %v", x, err))
	}
	return z
}

// MustPow is like [Int.Pow] but panics if computing error.
func (x Int) MustPow(e Operand) Int {
	z, err := x.Pow(e)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", x, err))
	}
	return z
}

// MustPowMod is like [Int.PowMod] but panics if computing error.
func (x Int) MustPowMod(e, m Operand) Int {
	z, err := x.PowMod(e, m)
	if err != nil {
		panic(fmt.Sprintf("MustPowMod(%v) failed: %v", x, err))
	}
	return z
}

// MustInvMod is like [Int.InvMod] but panics if computing error.
func (x Int) MustInvMod(m Operand) Int {
	z, err := x.InvMod(m)
	if err != nil {
		panic(fmt.Sprintf("MustInvMod(%v) failed: %v", x, err))
	}
	return z
}
