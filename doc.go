/*
Package bignum implements immutable arbitrary-precision signed integers.
It is specifically designed for use in cryptographic protocols, such as
key exchange and digital signatures, which treat integers as opaque values
supporting modular arithmetic.

# Representation

[Int] is a struct with a single unexported field holding the sign and the
magnitude of the integer.
The magnitude is never modified after construction, so every operation
returns a new integer and leaves its operands untouched.
Integers can be shared between goroutines, cached and reused as operands
without copying.

The zero value of [Int] is the number 0.
Zero has no sign: 0 and -0 are the same value.

# Operands

Every binary operation accepts an [Operand], which is one of:

  - [Int]: an existing integer.
  - [Lit]: a native integer literal, such as Lit(65537).
  - [Text]: a decimal numeral, such as Text("-12345678901234567890").
  - [Numeral]: a numeral in an explicit base, such as Numeral{"ff", 16}.

Operands are converted to integers by a single function before any
arithmetic takes place.

# Free Functions

Each operation is also available as a free function that accepts untyped
values, including native Go integers, strings and [*big.Int]:

	x, err := bignum.PowMod(4, 13, 497)   // 445
	y, err := bignum.Add("123", x)        // 568

The conversion rules are described in [Coerce].
[Call] dispatches an operation by name through a static table, which is
useful for interpreters and command-line tools.

# Operations

The package provides the following operations:

  - arithmetic:
    [Int.Add], [Int.Sub], [Int.Mul], [Int.Div], [Int.Mod], [Int.DivMod],
    [Int.QuoRem], [Int.Pow], [Int.Neg], [Int.Abs].
  - modular arithmetic:
    [Int.PowMod], [Int.PowModSecret], [Int.InvMod], [Int.GCD].
  - bitwise:
    [Int.And], [Int.Or], [Int.Xor], [Int.AndNot], [Int.Not],
    [Int.ShiftLeft], [Int.ShiftRight], [Int.IsBitSet], [Int.BitLen].
  - comparison:
    [Int.Cmp], [Int.Equal], [Int.Greater], [Int.GreaterEqual],
    [Int.Less], [Int.LessEqual], [Int.Min], [Int.Max].

Bitwise operations treat negative integers as if they were represented
in two's complement with an infinite number of leading ones.

# Division

[Int.Div] and [Int.Mod] implement Euclidean division: the modulus is
always non-negative and smaller than the absolute value of the divisor,
and the quotient is chosen so that

	x = Div(x, y) * y + Mod(x, y)

holds for every x and non-zero y.
[Int.QuoRem] implements truncated division, as in Go integer arithmetic.

# Conversions

The package provides methods for converting integers:

  - from/to string:
    [Parse], [ParseBase], [Int.String], [Int.Text], [Int.Format].
  - from/to bytes:
    [FromBytes], [Int.Bytes], [Int.FillBytes].
  - from/to native integers:
    [New], [NewFromUint64], [Int.Int64], [Int.Uint64], [Int.Float64].
  - from/to [big.Int]:
    [NewFromBig], [Int.Big].

[Int.Bytes] encodes only the absolute value.
Callers that need signed or length-prefixed encodings must add the sign or
the length themselves, or use [Int.MarshalBinary].

# Errors

All methods are panic-free and pure, except for the Must family.
Errors are returned in the following cases:

  - Parse Error.
    A numeral is empty or contains a digit that is not valid in its base.
  - Division by Zero.
    Unlike the standard library, [Int.Div], [Int.Mod], [Int.PowMod] and
    [Int.InvMod] do not panic when the divisor or modulus is 0.
    Instead, they return an error.
  - No Inverse.
    [Int.InvMod] returns an error if the integer and the modulus are not coprime.
  - Coercion Error.
    A free function received a value that is neither an integer nor
    convertible to one.
  - Overflow.
    A conversion to a native integer would wrap around, or a result would be
    unreasonably large.

Errors wrap the sentinel values of this package, such as [ErrDivideByZero],
and can be matched with [errors.Is].

[big.Int]: https://pkg.go.dev/math/big#Int
[*big.Int]: https://pkg.go.dev/math/big#Int
[errors.Is]: https://pkg.go.dev/errors#Is
*/
package bignum
