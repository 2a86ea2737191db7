package bignum

import (
	"sort"

	"github.com/pkg/errors"
)

// This file provides every operation of [Int] as a free function.
// The first argument of each function is converted with [Coerce],
// so it can be a native integer, a numeral or an [Integer].
// Remaining integer arguments are converted the same way and passed to
// the corresponding method.

// Add is the free-function form of [Int.Add].
func Add(x, y any) (Int, error) {
	return binary(x, y, Int.Add)
}

// Sub is the free-function form of [Int.Sub].
func Sub(x, y any) (Int, error) {
	return binary(x, y, Int.Sub)
}

// Mul is the free-function form of [Int.Mul].
func Mul(x, y any) (Int, error) {
	return binary(x, y, Int.Mul)
}

// Div is the free-function form of [Int.Div].
func Div(x, y any) (Int, error) {
	return binary(x, y, Int.Div)
}

// Mod is the free-function form of [Int.Mod].
func Mod(x, y any) (Int, error) {
	return binary(x, y, Int.Mod)
}

// Pow is the free-function form of [Int.Pow].
func Pow(x, e any) (Int, error) {
	return binary(x, e, Int.Pow)
}

// PowMod is the free-function form of [Int.PowMod].
func PowMod(x, e, m any) (Int, error) {
	a, err := Coerce(x)
	if err != nil {
		return Int{}, err
	}
	b, err := Coerce(e)
	if err != nil {
		return Int{}, err
	}
	c, err := Coerce(m)
	if err != nil {
		return Int{}, err
	}
	return a.PowMod(b, c)
}

// InvMod is the free-function form of [Int.InvMod].
func InvMod(x, m any) (Int, error) {
	return binary(x, m, Int.InvMod)
}

// GCD is the free-function form of [Int.GCD].
func GCD(x, y any) (Int, error) {
	return binary(x, y, Int.GCD)
}

// Xor is the free-function form of [Int.Xor].
func Xor(x, y any) (Int, error) {
	return binary(x, y, Int.Xor)
}

// And is the free-function form of [Int.And].
func And(x, y any) (Int, error) {
	return binary(x, y, Int.And)
}

// Or is the free-function form of [Int.Or].
func Or(x, y any) (Int, error) {
	return binary(x, y, Int.Or)
}

// ShiftLeft is the free-function form of [Int.ShiftLeft].
func ShiftLeft(x, n any) (Int, error) {
	return binary(x, n, Int.ShiftLeft)
}

// ShiftRight is the free-function form of [Int.ShiftRight].
func ShiftRight(x, n any) (Int, error) {
	return binary(x, n, Int.ShiftRight)
}

// Cmp is the free-function form of [Int.Cmp].
func Cmp(x, y any) (int, error) {
	a, b, err := coercePair(x, y)
	if err != nil {
		return 0, err
	}
	return a.Cmp(b), nil
}

// Equal is the free-function form of [Int.Equal].
func Equal(x, y any) (bool, error) {
	return predicate(x, y, Int.Equal)
}

// Greater is the free-function form of [Int.Greater].
func Greater(x, y any) (bool, error) {
	return predicate(x, y, Int.Greater)
}

// GreaterEqual is the free-function form of [Int.GreaterEqual].
func GreaterEqual(x, y any) (bool, error) {
	return predicate(x, y, Int.GreaterEqual)
}

// Less is the free-function form of [Int.Less].
func Less(x, y any) (bool, error) {
	return predicate(x, y, Int.Less)
}

// LessEqual is the free-function form of [Int.LessEqual].
func LessEqual(x, y any) (bool, error) {
	return predicate(x, y, Int.LessEqual)
}

// Abs is the free-function form of [Int.Abs].
func Abs(x any) (Int, error) {
	a, err := Coerce(x)
	if err != nil {
		return Int{}, err
	}
	return a.Abs(), nil
}

// Neg is the free-function form of [Int.Neg].
func Neg(x any) (Int, error) {
	a, err := Coerce(x)
	if err != nil {
		return Int{}, err
	}
	return a.Neg(), nil
}

// IsBitSet is the free-function form of [Int.IsBitSet].
func IsBitSet(x any, i int) (bool, error) {
	a, err := Coerce(x)
	if err != nil {
		return false, err
	}
	return a.IsBitSet(i), nil
}

// BitLen is the free-function form of [Int.BitLen].
func BitLen(x any) (int, error) {
	a, err := Coerce(x)
	if err != nil {
		return 0, err
	}
	return a.BitLen(), nil
}

// ToBytes is the free-function form of [Int.Bytes].
func ToBytes(x any) ([]byte, error) {
	a, err := Coerce(x)
	if err != nil {
		return nil, err
	}
	return a.Bytes(), nil
}

// ToString is the free-function form of [Int.Text].
func ToString(x any, base int) (string, error) {
	a, err := Coerce(x)
	if err != nil {
		return "", err
	}
	return a.Text(base)
}

// ToNumber is the free-function form of [Int.Int64].
func ToNumber(x any) (int64, error) {
	a, err := Coerce(x)
	if err != nil {
		return 0, err
	}
	return a.Int64()
}

func coercePair(x, y any) (Int, Int, error) {
	a, err := Coerce(x)
	if err != nil {
		return Int{}, Int{}, err
	}
	b, err := Coerce(y)
	if err != nil {
		return Int{}, Int{}, err
	}
	return a, b, nil
}

func binary(x, y any, op func(Int, Operand) (Int, error)) (Int, error) {
	a, b, err := coercePair(x, y)
	if err != nil {
		return Int{}, err
	}
	return op(a, b)
}

func predicate(x, y any, op func(Int, Int) bool) (bool, error) {
	a, b, err := coercePair(x, y)
	if err != nil {
		return false, err
	}
	return op(a, b), nil
}

// op is an entry of the operation table.
// minArgs and maxArgs count the arguments after the receiver.
type op struct {
	minArgs, maxArgs int
	call             func(x Int, args []Int) (any, error)
}

func unaryOp(f func(Int) Int) op {
	return op{0, 0, func(x Int, _ []Int) (any, error) {
		return f(x), nil
	}}
}

func binaryOp(f func(Int, Operand) (Int, error)) op {
	return op{1, 1, func(x Int, args []Int) (any, error) {
		return f(x, args[0])
	}}
}

func predicateOp(f func(Int, Int) bool) op {
	return op{1, 1, func(x Int, args []Int) (any, error) {
		return f(x, args[0]), nil
	}}
}

// ops maps operation names to their implementations.
// The names follow the lower camel case convention of method tables in
// scripting environments, so that callers can dispatch on untrusted
// operation names without reflection.
var ops = map[string]op{
	"add":        binaryOp(Int.Add),
	"sub":        binaryOp(Int.Sub),
	"mul":        binaryOp(Int.Mul),
	"div":        binaryOp(Int.Div),
	"mod":        binaryOp(Int.Mod),
	"pow":        binaryOp(Int.Pow),
	"invertm":    binaryOp(Int.InvMod),
	"gcd":        binaryOp(Int.GCD),
	"xor":        binaryOp(Int.Xor),
	"and":        binaryOp(Int.And),
	"or":         binaryOp(Int.Or),
	"shiftLeft":  binaryOp(Int.ShiftLeft),
	"shiftRight": binaryOp(Int.ShiftRight),
	"powm": {2, 2, func(x Int, args []Int) (any, error) {
		return x.PowMod(args[0], args[1])
	}},
	"eq": predicateOp(Int.Equal),
	"gt": predicateOp(Int.Greater),
	"ge": predicateOp(Int.GreaterEqual),
	"lt": predicateOp(Int.Less),
	"le": predicateOp(Int.LessEqual),
	"cmp": {1, 1, func(x Int, args []Int) (any, error) {
		return x.Cmp(args[0]), nil
	}},
	"abs": unaryOp(Int.Abs),
	"neg": unaryOp(Int.Neg),
	"isBitSet": {1, 1, func(x Int, args []Int) (any, error) {
		i := args[0]
		switch {
		case i.IsNeg():
			return false, nil
		case i.Cmp(New(int64(x.BitLen()))) >= 0:
			// Bits past the bit length repeat the sign.
			return x.IsNeg(), nil
		}
		return x.IsBitSet(int(i.big().Int64())), nil
	}},
	"bitLength": {0, 0, func(x Int, _ []Int) (any, error) {
		return x.BitLen(), nil
	}},
	"toBuffer": {0, 0, func(x Int, _ []Int) (any, error) {
		return x.Bytes(), nil
	}},
	"toString": {0, 1, func(x Int, args []Int) (any, error) {
		base := 10
		if len(args) > 0 {
			b, err := args[0].Int64()
			if err != nil {
				return nil, err
			}
			if b < MinBase || b > MaxBase {
				return nil, errors.Wrapf(ErrBaseRange, "%v.Text(%v)", x, b)
			}
			base = int(b)
		}
		return x.Text(base)
	}},
	"toNumber": {0, 0, func(x Int, _ []Int) (any, error) {
		return x.Int64()
	}},
}

// Ops returns the sorted names of the operations available through [Call].
// Names are case-sensitive and multi-word names are in lower camel case,
// as in "isBitSet", "shiftLeft" and "toBuffer".
func Ops() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Arity returns the minimum and maximum number of arguments that the named
// operation accepts after its receiver.
// Arity returns an error if the operation is unknown.
func Arity(name string) (minArgs, maxArgs int, err error) {
	o, ok := ops[name]
	if !ok {
		return 0, 0, errors.Wrapf(ErrUnknownOp, "%q", name)
	}
	return o.minArgs, o.maxArgs, nil
}

// Call invokes the named operation with receiver x and the given arguments.
// The receiver and every argument are converted with [Coerce].
// The result is an [Int], a bool, an int, an int64, a string or a []byte,
// depending on the operation.
//
// Call returns an error:
//   - if the operation is not listed by [Ops];
//   - if the number of arguments does not match the operation;
//   - if an argument cannot be coerced;
//   - if the operation itself fails.
func Call(name string, x any, args ...any) (any, error) {
	o, ok := ops[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownOp, "%q", name)
	}
	if len(args) < o.minArgs || len(args) > o.maxArgs {
		return nil, errors.Wrapf(ErrArity, "%v: got %v argument(s), want %v to %v", name, len(args), o.minArgs, o.maxArgs)
	}
	recv, err := Coerce(x)
	if err != nil {
		return nil, err
	}
	conv := make([]Int, len(args))
	for i, a := range args {
		conv[i], err = Coerce(a)
		if err != nil {
			return nil, errors.WithMessagef(err, "%v: argument %v", name, i+1)
		}
	}
	res, err := o.call(recv, conv)
	if err != nil {
		return nil, err
	}
	return res, nil
}
