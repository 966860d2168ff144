/*
Package sci implements immutable decimal numbers in scientific notation.
It is designed for calculators and unit converters that need exact decimal
values such as 6.02214076x10^23 without the rounding errors of binary
floating-point numbers.

# Representation

[Number] is a struct with three fields:

  - Coefficient: a [decimal.Decimal] holding the significant digits.
    The coefficient is not restricted to the range [1, 10).
    For example, 315.2x10^14 has a coefficient of 315.2.
  - Exponent: a whole number indicating the power of ten by which
    the coefficient is multiplied.
  - Display decimals: a non-negative integer indicating how many digits after
    the decimal point are rendered when the number is converted to a string.

The numerical value of a number is calculated as:

  - Coefficient * 10^Exponent

In this approach, the same numeric value can have multiple representations.
For example, 15x10^0, 1.5x10^1, and 1.50x10^1 all represent the same value but
have different coefficients and exponents.
Method [Number.Normalize] converts a number to the representation with a
coefficient between 1 and 10.

# Constraints

The coefficient is limited by the range of [decimal.Decimal]:
at most 19 digits, of which at most 19 digits are after the decimal point.
Here are the ranges for frequently used scales of the coefficient:

	| Scale | Minimum                    | Maximum                   |
	| ----- | -------------------------- | ------------------------- |
	| 0     | -9,999,999,999,999,999,999 | 9,999,999,999,999,999,999 |
	| 9     | -9,999,999,999.999999999   | 9,999,999,999.999999999   |
	| 18    | -9.999999999999999999      | 9.999999999999999999      |

The exponent is limited to the range of int16, from [MinExp] to [MaxExp].

# Conversions

The package provides methods for converting numbers:

  - from/to string:
    [Parse], [Number.String], [Number.Format].
  - from/to decimal:
    [New], [NewFromDecimal], [Number.Decimal].
  - to float64:
    [Number.Float64].

The string format is <coefficient>x10^<exponent>, for example -5.1237514651x10^38.
Parsing derives display decimals from the coefficient, so for the majority of
inputs the original string is reproduced exactly:

	n := sci.MustParse("315.20x10^14")
	fmt.Println(n) // 315.20x10^14

A number can also be assembled field by field starting from [Build]:

	n := sci.Build().
		WithCoefficient(decimal.MustParse("62.78964")).
		WithExponent(20).
		WithDisplayDecimals(3)
	fmt.Println(n) // 62.790x10^20

# Operations

Arithmetic operations return a new number and never modify their operands:

  - [Number.Add], [Number.Sub]:
    The operand with the larger exponent is rescaled to the smaller exponent,
    then the coefficients are added exactly.
  - [Number.Mul]:
    The coefficients are multiplied and the exponents are added.
  - [Number.Quo]:
    The coefficients are divided and the exponents are subtracted.

Display decimals of a result are derived from the coefficient of the result.

# Rounding

[Number.String] rounds the coefficient to the display decimals using
half-towards-zero rounding: a midpoint is rounded towards zero, so 2.45 with
one display decimal is rendered as 2.4 and -2.45 as -2.4.

[Number.Mul] and [Number.Quo] round the coefficient of the result to 19 digits
using half-to-even rounding when the exact result does not fit, in the same way
as [decimal.Decimal.Mul] and [decimal.Decimal.Quo].
[Number.Add] and [Number.Sub] never round.

# Errors

All methods are pure.
Errors are returned in the following cases:

  - Invalid Format.
    [Parse] returns an error wrapping [ErrFormat] if the string does not contain
    exactly one "x10^" separator or if the exponent has a fractional part.

  - Invalid Number.
    [Parse] returns an error wrapping [ErrParse] if the coefficient or the exponent
    is not a decimal literal or is out of range.

  - Overflow.
    Unlike standard integers, there is no "wrap around" for numbers at certain sizes.
    For out-of-range coefficients or exponents, arithmetic operations return an error
    wrapping [ErrOverflow].

  - Division by Zero.
    [Number.Quo] returns an error wrapping [ErrDivisionByZero] when the coefficient
    of the divisor is 0, whatever its exponent.

Use [errors.Is] to distinguish them.
Methods prefixed with Must panic instead of returning an error.
*/
package sci
