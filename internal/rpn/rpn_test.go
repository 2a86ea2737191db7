package rpn

import (
	"testing"

	"github.com/govalues/bignum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestEvaluator_Eval(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"42", "42"},
		{"-42", "-42"},
		{"2 3 +", "5"},
		{"2 3 -", "-1"},
		{"6 7 *", "42"},
		{"-7 2 /", "-4"},
		{"-7 2 %", "1"},
		{"2 100 ^", "1267650600228229401496703205376"},
		{"12 10 &", "8"},
		{"12 10 |", "14"},
		{"1 64 <<", "18446744073709551616"},
		{"-5 1 >>", "-3"},
		{"4 13 497 powm", "445"},
		{"17 3120 invertm", "2753"},
		{"12 18 gcd", "6"},
		{"12 10 xor", "6"},
		{"5 neg abs", "5"},
		{"255 bitLength", "8"},
		{"5 5 eq", "1"},
		{"5 6 gt", "0"},
		{"1 2 cmp", "-1"},
		{"4 2 isBitSet", "1"},
		{"256 toBuffer", "256"},
		{"0xff 0b1 +", "256"},
		{"-0x10 0o10 +", "-8"},
		{"  2\t3  +\n", "5"},
		{"1 2 + 3 * 4 -", "5"},
		{"2 3 4 * +", "14"},
	}
	e := New(10, zaptest.NewLogger(t))
	for _, tt := range tests {
		got, err := e.Eval(tt.expr)
		require.NoError(t, err, "Eval(%q)", tt.expr)
		assert.Equal(t, tt.want, got.String(), "Eval(%q)", tt.expr)
	}
}

func TestEvaluator_Base(t *testing.T) {
	e := &Evaluator{Base: 16}
	got, err := e.Eval("ff 1 add")
	require.NoError(t, err)
	assert.Equal(t, "256", got.String())

	// Operators take precedence over numerals
	got, err = e.Eval("a b add")
	require.NoError(t, err)
	assert.Equal(t, "21", got.String())

	got, err = e.Eval("0add 1 add")
	require.NoError(t, err)
	assert.Equal(t, "2782", got.String())

	got, err = e.Eval("+add -add add")
	require.NoError(t, err)
	assert.Equal(t, "0", got.String())

	var zero Evaluator
	got, err = zero.Eval("10 0x10 +")
	require.NoError(t, err)
	assert.Equal(t, "26", got.String())
}

func TestEvaluator_Eval_Error(t *testing.T) {
	tests := map[string]struct {
		expr string
		want error
	}{
		"empty":       {"", ErrEmpty},
		"blank":       {" \t\n", ErrEmpty},
		"underflow 1": {"+", ErrUnderflow},
		"underflow 2": {"1 +", ErrUnderflow},
		"underflow 3": {"4 13 powm", ErrUnderflow},
		"leftover":    {"1 2", ErrLeftover},
		"numeral":     {"1 x +", bignum.ErrParse},
		"prefix":      {"0xfg", bignum.ErrParse},
		"division":    {"1 0 /", bignum.ErrDivideByZero},
		"inverse":     {"4 6 invertm", bignum.ErrNoInverse},
		"exponent":    {"2 -1 ^", bignum.ErrNegativeExponent},
		"string":      {"255 toString", ErrResultType},
		"overflow":    {"9223372036854775808 toNumber", bignum.ErrOverflow},
	}
	e := New(10, nil)
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := e.Eval(tt.expr)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEvaluator_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := New(10, zap.New(core))

	_, err := e.Eval("4 13 497 powm")
	require.NoError(t, err)

	assert.Equal(t, 3, logs.FilterMessage("push").Len())
	applied := logs.FilterMessage("apply").All()
	require.Len(t, applied, 1)
	assert.Equal(t, "powm", applied[0].ContextMap()["op"])
	assert.Equal(t, "445", applied[0].ContextMap()["result"])
	assert.Equal(t, 1, logs.FilterMessage("evaluated").Len())

	_, err = e.Eval("1 0 /")
	require.Error(t, err)
	failed := logs.FilterMessage("evaluation failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "/", failed[0].ContextMap()["token"])
}

func TestParseNumeral(t *testing.T) {
	tests := []struct {
		tok  string
		base int
		want string
	}{
		{"0", 10, "0"},
		{"-12", 10, "-12"},
		{"0x1F", 10, "31"},
		{"-0X1f", 10, "-31"},
		{"+0b101", 10, "5"},
		{"0o17", 10, "15"},
		{"0b1", 16, "177"},
		{"0x", 36, "33"},
		{"101", 2, "5"},
	}
	for _, tt := range tests {
		got, err := ParseNumeral(tt.tok, tt.base)
		require.NoError(t, err, "ParseNumeral(%q, %v)", tt.tok, tt.base)
		assert.Equal(t, tt.want, got.String(), "ParseNumeral(%q, %v)", tt.tok, tt.base)
	}

	_, err := ParseNumeral("0x", 10)
	assert.ErrorIs(t, err, bignum.ErrParse)
}
