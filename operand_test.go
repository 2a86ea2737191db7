package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// foreign is an Integer implementation that is neither an Int nor an Operand.
type foreign struct {
	Integer
}

func TestCoerce(t *testing.T) {
	x := New(-42)
	b := big.NewInt(-42)

	tests := map[string]struct {
		v    any
		want string
	}{
		"int":        {int(-42), "-42"},
		"int8":       {int8(-42), "-42"},
		"int16":      {int16(-42), "-42"},
		"int32":      {int32(-42), "-42"},
		"int64":      {int64(math.MinInt64), "-9223372036854775808"},
		"uint":       {uint(42), "42"},
		"uint8":      {uint8(255), "255"},
		"uint16":     {uint16(65535), "65535"},
		"uint32":     {uint32(math.MaxUint32), "4294967295"},
		"uint64":     {uint64(math.MaxUint64), "18446744073709551615"},
		"string":     {"-123456789012345678901234567890", "-123456789012345678901234567890"},
		"Int":        {x, "-42"},
		"*Int":       {&x, "-42"},
		"*big.Int":   {b, "-42"},
		"Lit":        {Lit(-42), "-42"},
		"Text":       {Text("-42"), "-42"},
		"Numeral":    {Numeral{Digits: "-2a", Base: 16}, "-42"},
		"foreign":    {foreign{x}, "-42"},
		"foreign 0":  {foreign{New(0)}, "0"},
		"*foreign":   {&foreign{x}, "-42"},
		"big string": {"115792089237316195423570985008687907853269984665640564039457584007908834671663", "115792089237316195423570985008687907853269984665640564039457584007908834671663"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Coerce(tt.v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}

	t.Run("copy", func(t *testing.T) {
		got, err := Coerce(b)
		require.NoError(t, err)
		b.SetInt64(7)
		assert.Equal(t, "-42", got.String())
	})
}

func TestCoerce_Error(t *testing.T) {
	var nilInt *Int
	var nilBig *big.Int

	tests := map[string]struct {
		v    any
		want error
	}{
		"nil":        {nil, ErrCoercion},
		"nil *Int":   {nilInt, ErrCoercion},
		"nil *big":   {nilBig, ErrCoercion},
		"float64":    {4.2, ErrCoercion},
		"float32":    {float32(1), ErrCoercion},
		"bool":       {true, ErrCoercion},
		"bytes":      {[]byte{1}, ErrCoercion},
		"struct":     {struct{}{}, ErrCoercion},
		"big.Int":    {*big.NewInt(1), ErrCoercion},
		"string":     {"12a", ErrParse},
		"empty":      {"", ErrParse},
		"hex string": {"0xff", ErrParse},
		"Text":       {Text("1e3"), ErrParse},
		"Numeral 1":  {Numeral{Digits: "z", Base: 37}, ErrBaseRange},
		"Numeral 2":  {Numeral{Digits: "9", Base: 8}, ErrParse},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Coerce(tt.v)
			require.ErrorIs(t, err, tt.want)
			assert.True(t, got.IsZero())
		})
	}
}

func TestIsInteger(t *testing.T) {
	x := New(5)
	var nilInt *Int

	tests := map[string]struct {
		v    any
		want bool
	}{
		"Int":      {x, true},
		"*Int":     {&x, true},
		"nil *Int": {nilInt, false},
		"foreign":  {foreign{x}, true},
		"*big.Int": {big.NewInt(5), false},
		"int":      {5, false},
		"string":   {"5", false},
		"Lit":      {Lit(5), false},
		"Text":     {Text("5"), false},
		"nil":      {nil, false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInteger(tt.v))
		})
	}
}

func TestInto(t *testing.T) {
	x := New(5)

	got, err := into(&x)
	require.NoError(t, err)
	assert.True(t, got.Equal(x))

	got, err = into(Numeral{Digits: "101", Base: 2})
	require.NoError(t, err)
	assert.True(t, got.Equal(x))

	_, err = into(nil)
	require.ErrorIs(t, err, ErrCoercion)
}
