package bignum

import (
	"database/sql/driver"
	"fmt"
	"math"
	"math/big"

	"github.com/pkg/errors"
)

// Int type is a representation of an arbitrary-precision signed integer.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// An integer is a pair of:
//
//   - Sign: negative, zero or positive.
//   - Magnitude: the absolute value as a sequence of machine words.
//
// The magnitude is never modified after construction.
// Every operation allocates a fresh result, so values can be freely
// shared, cached and reused as operands.
//
// Two integers must be compared with [Int.Cmp] or [Int.Equal],
// not with the == operator.
type Int struct {
	v *big.Int // nil for 0, never mutated
}

const (
	MinBase = 2  // minimum radix for text conversions
	MaxBase = 36 // maximum radix for text conversions
)

// bzero is shared by all zero integers. It must never be used as a receiver.
var bzero = new(big.Int)

// newInt wraps z without copying. z must not be modified afterwards.
func newInt(z *big.Int) Int {
	if z.Sign() == 0 {
		return Int{}
	}
	return Int{v: z}
}

// big returns the read-only magnitude of x.
func (x Int) big() *big.Int {
	if x.v == nil {
		return bzero
	}
	return x.v
}

// New returns an integer equal to v.
func New(v int64) Int {
	return newInt(new(big.Int).SetInt64(v))
}

// NewFromUint64 returns an integer equal to v.
func NewFromUint64(v uint64) Int {
	return newInt(new(big.Int).SetUint64(v))
}

// NewFromBig returns an integer equal to z.
// The argument is copied, so z may be modified afterwards.
// A nil z is treated as 0.
func NewFromBig(z *big.Int) Int {
	if z == nil {
		return Int{}
	}
	return newInt(new(big.Int).Set(z))
}

// FromBytes interprets b as the big-endian unsigned magnitude of an integer.
// The result is never negative.
// It is the inverse of [Int.Bytes] for non-negative integers.
func FromBytes(b []byte) Int {
	return newInt(new(big.Int).SetBytes(b))
}

// Parse converts a decimal numeral to an integer.
// It is equivalent to ParseBase(s, 10).
func Parse(s string) (Int, error) {
	return ParseBase(s, 10)
}

// ParseBase converts a numeral in the given base to an integer.
// The input string must be in the following format:
//
//	sign    ::= '+' | '-'
//	digit   ::= '0' ... '9' | 'a' ... 'z' | 'A' ... 'Z'
//	numeral ::= [sign] digit { digit }
//
// Letters are case-insensitive and only digits smaller than base are allowed.
// Base prefixes such as "0x" and digit separators are not recognized.
//
// ParseBase returns an error:
//   - if base is less than [MinBase] or greater than [MaxBase];
//   - if s is empty or contains a digit that is invalid for the base.
func ParseBase(s string, base int) (Int, error) {
	if base < MinBase || base > MaxBase {
		return Int{}, errors.Wrapf(ErrBaseRange, "parsing %q: base %v", s, base)
	}
	z, ok := new(big.Int).SetString(s, base)
	if !ok {
		return Int{}, errors.Wrapf(ErrParse, "parsing %q in base %v", s, base)
	}
	return newInt(z), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding integers.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return x
}

// String method implements the [fmt.Stringer] interface and returns
// the decimal representation of x, with a leading '-' for negative values.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Int) String() string {
	return x.big().String()
}

// Text returns the representation of x in the given base.
// Digits greater than 9 are lower-case letters.
// Negative values have a leading '-'.
// Text returns an error if base is less than [MinBase] or greater than [MaxBase].
func (x Int) Text(base int) (string, error) {
	if base < MinBase || base > MaxBase {
		return "", errors.Wrapf(ErrBaseRange, "%v.Text(%v)", x, base)
	}
	return x.big().Text(base), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%d, %s, %v: -255
//	%x:         -ff
//	%X:         -FF
//	%o, %O:     -377, -0o377
//	%b:         -11111111
//	%q:         "-255"
//
// Flags '+', ' ', '#', '0' and '-', width and precision follow the rules
// of the standard library for integers.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Int) Format(state fmt.State, verb rune) {
	switch verb {
	case 'q', 'Q':
		s := fmt.Sprintf("%q", x.String())
		if w, ok := state.Width(); ok && w > len(s) {
			pad := make([]byte, w-len(s))
			for i := range pad {
				pad[i] = ' '
			}
			if state.Flag('-') {
				s = s + string(pad)
			} else {
				s = string(pad) + s
			}
		}
		state.Write([]byte(s))
	default:
		x.big().Format(state, verb)
	}
}

// Bytes returns the absolute value of x as a big-endian byte slice.
// The encoding is the minimal whole-byte expansion of the hexadecimal
// representation of |x|: an odd number of hex digits is padded with a single
// leading zero nibble.
// Consequently, 0 is encoded as the single byte 0x00.
// The sign is not encoded.
// Also see [FromBytes].
func (x Int) Bytes() []byte {
	if x.IsZero() {
		return []byte{0}
	}
	return x.v.Bytes()
}

// FillBytes writes the absolute value of x to buf as a zero-extended
// big-endian byte slice and returns buf.
// FillBytes returns an error if |x| does not fit in buf.
func (x Int) FillBytes(buf []byte) ([]byte, error) {
	if need := (x.BitLen() + 7) / 8; need > len(buf) {
		return nil, errors.Wrapf(ErrOverflow, "%v.FillBytes: need %v byte(s), have %v", x, need, len(buf))
	}
	return x.big().FillBytes(buf), nil
}

// Int64 returns x as an int64.
// Int64 returns an error if x cannot be represented as an int64.
// It never wraps around.
func (x Int) Int64() (int64, error) {
	if !x.big().IsInt64() {
		return 0, errors.Wrapf(ErrOverflow, "%v.Int64", x)
	}
	return x.big().Int64(), nil
}

// Uint64 returns x as a uint64.
// Uint64 returns an error if x is negative or greater than [math.MaxUint64].
func (x Int) Uint64() (uint64, error) {
	if !x.big().IsUint64() {
		return 0, errors.Wrapf(ErrOverflow, "%v.Uint64", x)
	}
	return x.big().Uint64(), nil
}

// Float64 returns the float64 value nearest to x.
// If x is too large to be represented, the result is ±[math.Inf].
func (x Int) Float64() float64 {
	f, _ := new(big.Float).SetInt(x.big()).Float64()
	return f
}

// Big returns x as a newly allocated [big.Int].
// The caller owns the result.
func (x Int) Big() *big.Int {
	return new(big.Int).Set(x.big())
}

// BitLen returns the number of bits required to represent |x|.
// The bit length of 0 is 0.
func (x Int) BitLen() int {
	return x.big().BitLen()
}

// IsBitSet reports whether bit i of x is set, where bit 0 is the least
// significant bit.
// Negative integers use the infinite two's complement representation, so
// for example every bit of -1 is set.
// IsBitSet returns false for negative i.
func (x Int) IsBitSet(i int) bool {
	if i < 0 {
		return false
	}
	return x.big().Bit(i) == 1
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x == 0
//	+1 if x > 0
func (x Int) Sign() int {
	return x.big().Sign()
}

// IsZero returns true if x == 0.
func (x Int) IsZero() bool {
	return x.Sign() == 0
}

// IsNeg returns true if x < 0.
func (x Int) IsNeg() bool {
	return x.Sign() < 0
}

// IsPos returns true if x > 0.
func (x Int) IsPos() bool {
	return x.Sign() > 0
}

// IsOdd returns true if x is not divisible by 2.
func (x Int) IsOdd() bool {
	return x.big().Bit(0) == 1
}

// Neg returns x with opposite sign.
func (x Int) Neg() Int {
	return newInt(new(big.Int).Neg(x.big()))
}

// Abs returns absolute value of x.
func (x Int) Abs() Int {
	if !x.IsNeg() {
		return x
	}
	return x.Neg()
}

// Cmp compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x == y
//	+1 if x > y
func (x Int) Cmp(y Int) int {
	return x.big().Cmp(y.big())
}

// Equal returns true if x == y.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Greater returns true if x > y.
func (x Int) Greater(y Int) bool {
	return x.Cmp(y) > 0
}

// GreaterEqual returns true if x >= y.
func (x Int) GreaterEqual(y Int) bool {
	return x.Cmp(y) >= 0
}

// Less returns true if x < y.
func (x Int) Less(y Int) bool {
	return x.Cmp(y) < 0
}

// LessEqual returns true if x <= y.
func (x Int) LessEqual(y Int) bool {
	return x.Cmp(y) <= 0
}

// Max returns maximum of x and y.
func (x Int) Max(y Int) Int {
	if x.Cmp(y) >= 0 {
		return x
	}
	return y
}

// Min returns minimum of x and y.
func (x Int) Min(y Int) Int {
	if x.Cmp(y) <= 0 {
		return x
	}
	return y
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Int) UnmarshalText(text []byte) error {
	var err error
	*x, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Int.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalJSON implements [json.Unmarshaler] interface.
// Both JSON strings and JSON numbers without fraction or exponent are accepted.
// The JSON null value leaves x unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (x *Int) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	var err error
	*x, err = Parse(s)
	return err
}

// MarshalJSON implements [json.Marshaler] interface.
// The integer is encoded as a JSON string, so that consumers with
// fixed-width numbers do not lose precision.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (x Int) MarshalJSON() ([]byte, error) {
	s := x.String()
	b := make([]byte, 0, len(s)+2)
	b = append(b, '"')
	b = append(b, s...)
	b = append(b, '"')
	return b, nil
}

const (
	binPos byte = 0
	binNeg byte = 1
)

// UnmarshalBinary implements [encoding.BinaryUnmarshaler] interface.
// See [Int.MarshalBinary] for the format.
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (x *Int) UnmarshalBinary(data []byte) error {
	if len(data) == 0 {
		return errors.Wrap(ErrParse, "unmarshaling binary: missing sign byte")
	}
	z := FromBytes(data[1:])
	switch data[0] {
	case binPos:
	case binNeg:
		z = z.Neg()
	default:
		return errors.Wrapf(ErrParse, "unmarshaling binary: invalid sign byte %#x", data[0])
	}
	*x = z
	return nil
}

// MarshalBinary implements [encoding.BinaryMarshaler] interface.
// The encoding is a sign byte (0 for non-negative, 1 for negative values)
// followed by the big-endian magnitude.
// Unlike [Int.Bytes], the magnitude of 0 is empty.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (x Int) MarshalBinary() ([]byte, error) {
	sign := binPos
	if x.IsNeg() {
		sign = binNeg
	}
	return append([]byte{sign}, x.big().Bytes()...), nil
}

// Scan implements the [sql.Scanner] interface.
// Integers, integral floats, strings and byte slices are supported.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (x *Int) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case int64:
		*x = New(value)
	case uint64:
		*x = NewFromUint64(value)
	case float64:
		if math.IsInf(value, 0) || math.IsNaN(value) || math.Trunc(value) != value {
			return errors.Wrapf(ErrCoercion, "scanning %v", value)
		}
		z, _ := big.NewFloat(value).Int(nil)
		*x = newInt(z)
	case []byte:
		*x, err = Parse(string(value))
	case string:
		*x, err = Parse(value)
	default:
		err = errors.Wrapf(ErrCoercion, "scanning %T", value)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// The integer is stored in its decimal text form.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (x Int) Value() (driver.Value, error) {
	return x.String(), nil
}
