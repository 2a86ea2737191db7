// Package rpn implements a calculator for integer expressions written in
// reverse Polish notation.
//
// Operands are numerals with an optional sign and, in decimal mode, an
// optional "0x", "0o" or "0b" prefix.
// Operators are the operation names listed by [bignum.Ops], such as "powm",
// and the symbols + - * / % ^ & | << >>.
// Every operator pops its receiver and its arguments, receiver first:
//
//	4 13 497 powm   // 4^13 mod 497 = 445
//	2 3 -           // 2 - 3 = -1
//
// A token that names an operation is always an operator. In bases above 10
// a numeral spelled like an operation, such as "add" in base 16, needs a
// leading zero or sign:
//
//	0add 1 add      // 0xadd + 1 = 2782
package rpn

import (
	"strings"

	"github.com/govalues/bignum"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrEmpty      = errors.New("empty expression")
	ErrUnderflow  = errors.New("not enough operands")
	ErrLeftover   = errors.New("unconsumed operands")
	ErrResultType = errors.New("operation does not produce an integer")
)

// symbols maps operator symbols to operation names.
var symbols = map[string]string{
	"+":  "add",
	"-":  "sub",
	"*":  "mul",
	"/":  "div",
	"%":  "mod",
	"^":  "pow",
	"&":  "and",
	"|":  "or",
	"<<": "shiftLeft",
	">>": "shiftRight",
}

// Evaluator evaluates expressions.
// The zero value parses numerals without a prefix in base 10 and does not log.
type Evaluator struct {
	Base   int // radix of numerals without a prefix; 0 means 10
	Logger *zap.Logger
}

// New returns an evaluator that parses numerals in the given base and logs
// every evaluation step at debug level.
func New(base int, logger *zap.Logger) *Evaluator {
	return &Evaluator{Base: base, Logger: logger}
}

func (e *Evaluator) base() int {
	if e.Base == 0 {
		return 10
	}
	return e.Base
}

func (e *Evaluator) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// Eval evaluates expr and returns the single value left on the stack.
func (e *Evaluator) Eval(expr string) (bignum.Int, error) {
	tokens := strings.Fields(expr)
	if len(tokens) == 0 {
		return bignum.Int{}, ErrEmpty
	}
	log := e.logger()
	stack := make([]bignum.Int, 0, len(tokens))
	for i, tok := range tokens {
		var err error
		if name, ok := opName(tok); ok {
			stack, err = e.apply(stack, name)
		} else {
			stack, err = e.push(stack, tok)
		}
		if err != nil {
			log.Debug("evaluation failed", zap.Int("position", i+1), zap.String("token", tok), zap.Error(err))
			return bignum.Int{}, errors.WithMessagef(err, "token %v %q", i+1, tok)
		}
	}
	if len(stack) != 1 {
		return bignum.Int{}, errors.Wrapf(ErrLeftover, "stack contains %v", stack)
	}
	log.Debug("evaluated", zap.String("expr", expr), zap.Stringer("result", stack[0]))
	return stack[0], nil
}

// opName resolves an operator token to an operation name.
func opName(tok string) (string, bool) {
	if name, ok := symbols[tok]; ok {
		return name, true
	}
	if _, _, err := bignum.Arity(tok); err == nil {
		return tok, true
	}
	return "", false
}

func (e *Evaluator) push(stack []bignum.Int, tok string) ([]bignum.Int, error) {
	x, err := ParseNumeral(tok, e.base())
	if err != nil {
		return nil, err
	}
	e.logger().Debug("push", zap.Stringer("value", x), zap.Int("depth", len(stack)+1))
	return append(stack, x), nil
}

func (e *Evaluator) apply(stack []bignum.Int, name string) ([]bignum.Int, error) {
	n, _, err := bignum.Arity(name)
	if err != nil {
		return nil, err
	}
	if len(stack) < n+1 {
		return nil, errors.Wrapf(ErrUnderflow, "%v needs %v, have %v", name, n+1, len(stack))
	}
	top := len(stack) - n - 1
	recv := stack[top]
	args := make([]any, n)
	for i, a := range stack[top+1:] {
		args[i] = a
	}
	res, err := bignum.Call(name, recv, args...)
	if err != nil {
		return nil, err
	}
	z, err := toInt(name, res)
	if err != nil {
		return nil, err
	}
	e.logger().Debug("apply", zap.String("op", name), zap.Stringer("receiver", recv), zap.Any("args", args), zap.Stringer("result", z))
	return append(stack[:top], z), nil
}

// toInt converts the result of an operation to an integer.
// Predicates push 1 for true and 0 for false.
func toInt(name string, res any) (bignum.Int, error) {
	switch res := res.(type) {
	case bignum.Int:
		return res, nil
	case bool:
		if res {
			return bignum.New(1), nil
		}
		return bignum.Int{}, nil
	case int:
		return bignum.New(int64(res)), nil
	case int64:
		return bignum.New(res), nil
	case []byte:
		return bignum.FromBytes(res), nil
	default:
		return bignum.Int{}, errors.Wrapf(ErrResultType, "%v returns %T", name, res)
	}
}

// ParseNumeral converts a token to an integer.
// If base is 10 or less, a "0x", "0o" or "0b" prefix after the optional sign
// selects base 16, 8 or 2.
// Otherwise the numeral is parsed in the given base, where a prefix would be
// ambiguous with digits.
func ParseNumeral(tok string, base int) (bignum.Int, error) {
	sign, digits := "", tok
	if len(digits) > 0 && (digits[0] == '-' || digits[0] == '+') {
		sign, digits = digits[:1], digits[1:]
	}
	if base <= 10 && len(digits) > 2 && digits[0] == '0' {
		switch digits[1] {
		case 'x', 'X':
			base, digits = 16, digits[2:]
		case 'o', 'O':
			base, digits = 8, digits[2:]
		case 'b', 'B':
			base, digits = 2, digits[2:]
		}
	}
	return bignum.ParseBase(sign+digits, base)
}
