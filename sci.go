package sci

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

// Number type is a representation of a decimal number in scientific notation,
// that is coefficient * 10^exponent.
// The zero value is 0x10^0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A number is a struct with three parameters:
//
//   - Coefficient: a [decimal.Decimal] with at most [MaxPrec] digits.
//     It is not restricted to the range [1, 10), so 315.2x10^14 and
//     3.152x10^16 are distinct representations of the same value.
//   - Exponent: a whole power of ten between [MinExp] and [MaxExp].
//   - Display decimals: the number of digits after the decimal point
//     rendered by [Number.String].
//
// Display decimals are derived from the coefficient by [Parse], [New] and all
// arithmetic operations: they equal the scale of the coefficient, or 0 if
// the fractional part of the coefficient is zero.
// They can be overridden with [Number.WithDisplayDecimals].
type Number struct {
	coef decimal.Decimal // the coefficient
	exp  int16           // the power of ten
	prec int             // the number of digits after the decimal point to display
}

const (
	MaxExp  = math.MaxInt16   // maximum exponent
	MinExp  = math.MinInt16   // minimum exponent
	MaxPrec = decimal.MaxPrec // maximum number of digits in the coefficient
)

const separator = "x10^"

var (
	// ErrFormat is returned when a string does not have the form
	// <coefficient>x10^<exponent>, or when the exponent is not a whole number.
	ErrFormat = errors.New("invalid scientific notation")
	// ErrParse is returned when the coefficient or the exponent is not a valid
	// decimal number or is out of range.
	ErrParse = errors.New("invalid number")
	// ErrOverflow is returned when the coefficient or the exponent of
	// a result cannot be represented.
	ErrOverflow = errors.New("overflow")
	// ErrDivisionByZero is returned when the coefficient of a divisor is 0.
	ErrDivisionByZero = errors.New("division by zero")
)

func newNumber(coef decimal.Decimal, exp int) (Number, error) {
	if exp < MinExp || MaxExp < exp {
		return Number{}, fmt.Errorf("exponent %v is out of range [%v, %v]: %w", exp, MinExp, MaxExp, ErrOverflow)
	}
	return Number{coef: coef, exp: int16(exp), prec: fracDigits(coef)}, nil
}

// New returns a number equal to coef * 10^exp.
// Display decimals are derived from coef.
//
// New returns an error if exp is less than [MinExp] or greater than [MaxExp].
func New(coef decimal.Decimal, exp int) (Number, error) {
	return newNumber(coef, exp)
}

// MustNew is like [New] but panics if the number cannot be constructed.
// It simplifies safe initialization of global variables holding numbers.
func MustNew(coef decimal.Decimal, exp int) Number {
	n, err := New(coef, exp)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v) failed: %v", coef, exp, err))
	}
	return n
}

// NewFromDecimal returns a number equal to d * 10^0.
func NewFromDecimal(d decimal.Decimal) Number {
	return Number{coef: d, prec: fracDigits(d)}
}

// Build returns the default number 1.00x10^0: a coefficient of 1,
// an exponent of 0 and 2 display decimals.
// Use it together with [Number.WithCoefficient], [Number.WithExponent] and
// [Number.WithDisplayDecimals] to construct a number field by field.
func Build() Number {
	return Number{coef: decimal.MustNew(1, 0), prec: 2}
}

// WithCoefficient returns n with the coefficient replaced by coef.
// Display decimals remain unchanged.
func (n Number) WithCoefficient(coef decimal.Decimal) Number {
	n.coef = coef
	return n
}

// WithExponent returns n with the exponent replaced by exp.
func (n Number) WithExponent(exp int16) Number {
	n.exp = exp
	return n
}

// WithDisplayDecimals returns n that renders the specified number of digits
// after the decimal point.
// If the given number is negative, it is redefined to zero.
func (n Number) WithDisplayDecimals(prec int) Number {
	n.prec = max(prec, 0)
	return n
}

// Parse converts a string to a number.
// The input string must be in the following format:
//
//	5x10^15
//	-315.2x10^14
//	0.000123x10^-7
//
// The formal EBNF grammar for the supported format is as follows:
//
//	sign           ::= '+' | '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	coefficient    ::= [sign] significand
//	exponent       ::= [sign] significand
//	numeric-string ::= coefficient 'x10^' exponent
//
// The exponent may contain a decimal point, but its fractional part must be zero.
// Display decimals of the result are derived from the coefficient, so trailing
// zeros after the decimal point are preserved by [Number.String].
//
// Parse returns an error wrapping:
//   - [ErrFormat] if the string does not contain exactly one "x10^" separator,
//     or if the exponent has a non-zero fractional part;
//   - [ErrParse] if the coefficient or the exponent is not a valid decimal,
//     if the coefficient has more than [MaxPrec] digits,
//     or if the exponent is less than [MinExp] or greater than [MaxExp].
func Parse(s string) (Number, error) {
	if !strings.Contains(s, separator) {
		return Number{}, fmt.Errorf("parsing %q: expected CCCx10^EEE: %w", s, ErrFormat)
	}
	parts := strings.Split(s, separator)
	if len(parts) > 2 {
		return Number{}, fmt.Errorf("parsing %q: unexpected format: %w", s, ErrFormat)
	}
	coef, err := parseCoef(parts[0])
	if err != nil {
		return Number{}, fmt.Errorf("parsing %q: coefficient: %w", s, err)
	}
	exp, err := parseExp(parts[1])
	if err != nil {
		return Number{}, fmt.Errorf("parsing %q: exponent: %w", s, err)
	}
	return Number{coef: coef, exp: exp, prec: fracDigits(coef)}, nil
}

func parseCoef(s string) (decimal.Decimal, error) {
	scale, ok := scanLiteral(s)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%q is not a decimal literal: %w", s, ErrParse)
	}
	if scale > decimal.MaxScale {
		return decimal.Decimal{}, fmt.Errorf("%q has %v digit(s) after the decimal point, but at most %v are allowed: %w", s, scale, decimal.MaxScale, ErrParse)
	}
	// ParseExact fails instead of rounding away any of the given digits.
	d, err := decimal.ParseExact(s, scale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return d, nil
}

func parseExp(s string) (int16, error) {
	if _, ok := scanLiteral(s); !ok {
		return 0, fmt.Errorf("%q is not a decimal literal: %w", s, ErrParse)
	}
	d, err := decimal.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if hasFrac(s) {
		return 0, fmt.Errorf("%q cannot contain decimal places: %w", s, ErrFormat)
	}
	e, err := strconv.ParseInt(d.Trunc(0).String(), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return int16(e), nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParse(s string) Number {
	n, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return n
}

// String method implements the [fmt.Stringer] interface and returns
// a string representation of a number.
// The coefficient is rounded to the display decimals of n, with midpoints
// rounded towards zero, and zero-padded on the right if needed.
// The returned string is formatted according to the following formal EBNF grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand 'x10^' [sign] digits
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (n Number) String() string {
	return formatCoef(n.coef, n.prec) + separator + strconv.Itoa(int(n.exp))
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (n *Number) UnmarshalText(text []byte) error {
	var err error
	*n, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Number.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (n Number) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// Scan implements the [sql.Scanner] interface.
// Only string and []byte values are supported.
// Also see method [Parse].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *Number) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*n, err = Parse(value)
	case []byte:
		*n, err = Parse(string(value))
	default:
		err = fmt.Errorf("converting from %T to %T: %w", value, Number{}, ErrFormat)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
// Also see method [Number.String].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n Number) Value() (driver.Value, error) {
	return n.String(), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: -315.2x10^14
//	%q:    "-315.2x10^14"
//
// The '+' flag forces a sign on non-negative coefficients.
// The width pads the result with spaces on the left, or on the right if
// the '-' flag is present.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (n Number) Format(state fmt.State, verb rune) {
	s := n.String()

	// Arithmetic sign
	if state.Flag('+') && s[0] != '-' {
		s = "+" + s
	}

	// Quotes
	if verb == 'q' || verb == 'Q' {
		s = `"` + s + `"`
	}

	// Padding
	if w, ok := state.Width(); ok && w > len(s) {
		pad := strings.Repeat(" ", w-len(s))
		if state.Flag('-') {
			s = s + pad
		} else {
			s = pad + s
		}
	}

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V':
		fmt.Fprint(state, s)
	default:
		fmt.Fprintf(state, "%%!%c(sci.Number=%s)", verb, s)
	}
}

// Coefficient returns the coefficient of n.
func (n Number) Coefficient() decimal.Decimal {
	return n.coef
}

// Exponent returns the exponent of n.
func (n Number) Exponent() int {
	return int(n.exp)
}

// DisplayDecimals returns the number of digits after the decimal point
// rendered by [Number.String].
func (n Number) DisplayDecimals() int {
	return n.prec
}

// Decimal returns (possibly rounded) coef * 10^exp as a plain decimal.
// Digits beyond [decimal.MaxScale] places after the decimal point are
// rounded using half-to-even rounding.
//
// Decimal returns an error if the integer part of the result has more than
// [MaxPrec] digits.
func (n Number) Decimal() (decimal.Decimal, error) {
	d, err := shift(n.coef, int(n.exp))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %T: %w: %w", n, d, ErrOverflow, err)
	}
	return d, nil
}

// Float64 returns the nearest binary floating-point number to n.
// Note that a float64 cannot represent all decimal numbers exactly.
// If n is too large for a float64, ok is false.
func (n Number) Float64() (f float64, ok bool) {
	f, err := strconv.ParseFloat(n.coef.String()+"e"+strconv.Itoa(int(n.exp)), 64)
	if err != nil && math.IsInf(f, 0) {
		return f, false
	}
	return f, true
}

// Sign returns:
//
//	-1 if n < 0
//	 0 if n == 0
//	+1 if n > 0
func (n Number) Sign() int {
	return n.coef.Sign()
}

// IsZero returns true if n == 0.
func (n Number) IsZero() bool {
	return n.coef.IsZero()
}

// IsNeg returns true if n < 0.
func (n Number) IsNeg() bool {
	return n.coef.IsNeg()
}

// IsPos returns true if n > 0.
func (n Number) IsPos() bool {
	return n.coef.IsPos()
}

// Neg returns n with opposite sign.
func (n Number) Neg() Number {
	n.coef = n.coef.Neg()
	return n
}

// Abs returns absolute value of n.
func (n Number) Abs() Number {
	n.coef = n.coef.Abs()
	return n
}

// Normalize returns n rescaled so that its coefficient c satisfies 1 <= |c| < 10.
// All digits of the coefficient, including trailing zeros, are kept,
// so 1200x10^0 becomes 1.200x10^3.
// Zero is normalized to 0x10^0.
// Display decimals are derived from the new coefficient.
//
// Normalize returns an error if the new exponent is less than [MinExp]
// or greater than [MaxExp].
func (n Number) Normalize() (Number, error) {
	// Special case: zero
	if n.IsZero() {
		return newNumber(n.coef.Trim(0), 0)
	}

	// General case
	_, pos := digits(n.coef)
	coef, err := shift(n.coef, -pos)
	if err != nil {
		return Number{}, fmt.Errorf("normalizing %v: %w", n, err) // unexpected by design
	}
	m, err := newNumber(coef, int(n.exp)+pos)
	if err != nil {
		return Number{}, fmt.Errorf("normalizing %v: %w", n, err)
	}
	return m, nil
}

// Add returns the exact sum of n and m.
// The operand with the larger exponent is rescaled to the smaller exponent,
// which becomes the exponent of the sum.
// Display decimals are derived from the coefficient of the sum.
//
// Add returns an error wrapping [ErrOverflow] if the sum cannot be represented
// with a coefficient of at most [MaxPrec] digits, or if its exponent is out of range.
func (n Number) Add(m Number) (Number, error) {
	f, err := add(n, m)
	if err != nil {
		return Number{}, fmt.Errorf("computing [%v + %v]: %w", n, m, err)
	}
	return f, nil
}

// Sub returns the exact difference between n and m.
// See [Number.Add] for details.
//
// Sub returns an error wrapping [ErrOverflow] if the difference cannot be
// represented with a coefficient of at most [MaxPrec] digits.
func (n Number) Sub(m Number) (Number, error) {
	f, err := add(n, m.Neg())
	if err != nil {
		return Number{}, fmt.Errorf("computing [%v - %v]: %w", n, m, err)
	}
	return f, nil
}

func add(n, m Number) (Number, error) {
	// Special case: exactly one operand is zero
	switch {
	case n.IsZero() && !m.IsZero():
		return newNumber(m.coef, int(m.exp))
	case m.IsZero() && !n.IsZero():
		return newNumber(n.coef, int(n.exp))
	}

	// General case
	coef, exp, err := addAligned(n.coef, int(n.exp), m.coef, int(m.exp))
	if err != nil {
		// Rescaling may have failed only because of trailing zeros,
		// for example in 5x10^20 + 100x10^0.
		ncoef, nexp := compact(n.coef, int(n.exp))
		mcoef, mexp := compact(m.coef, int(m.exp))
		coef, exp, err = addAligned(ncoef, nexp, mcoef, mexp)
		if err != nil {
			return Number{}, err
		}
	}
	return newNumber(coef, exp)
}

// addAligned rescales the coefficient with the larger exponent to the smaller
// exponent and returns the exact sum of the coefficients.
func addAligned(dcoef decimal.Decimal, dexp int, ecoef decimal.Decimal, eexp int) (decimal.Decimal, int, error) {
	var err error

	// Alignment and exponent
	exp := min(dexp, eexp)
	switch {
	case dexp > eexp:
		dcoef, err = shift(dcoef, dexp-eexp)
	case eexp > dexp:
		ecoef, err = shift(ecoef, eexp-dexp)
	}
	if err != nil {
		return decimal.Decimal{}, 0, fmt.Errorf("%w: %w", ErrOverflow, err)
	}

	// Coefficient
	coef, err := dcoef.AddExact(ecoef, max(dcoef.Scale(), ecoef.Scale()))
	if err != nil {
		return decimal.Decimal{}, 0, fmt.Errorf("%w: %w", ErrOverflow, err)
	}
	return coef, exp, nil
}

// Mul returns (possibly rounded) product of n and m.
// The coefficients are multiplied and the exponents are added.
// The product of the coefficients is exact if it fits into [MaxPrec] digits,
// otherwise its fractional part is rounded using half-to-even rounding.
// Display decimals are derived from the coefficient of the product.
//
// Mul returns an error wrapping [ErrOverflow] if the integer part of the
// product of the coefficients has more than [MaxPrec] digits, or if the sum
// of the exponents is out of range.
func (n Number) Mul(m Number) (Number, error) {
	f, err := mul(n, m)
	if err != nil {
		return Number{}, fmt.Errorf("computing [%v * %v]: %w", n, m, err)
	}
	return f, nil
}

func mul(n, m Number) (Number, error) {
	coef, err := n.coef.Mul(m.coef)
	if err != nil {
		return Number{}, fmt.Errorf("%w: %w", ErrOverflow, err)
	}
	return newNumber(coef, int(n.exp)+int(m.exp))
}

// Quo returns (possibly rounded) quotient of n and m.
// The coefficients are divided and the exponents are subtracted.
// The quotient of the coefficients is computed by [decimal.Decimal.Quo]:
// it is exact if it fits into [MaxPrec] digits, otherwise it is rounded to
// [MaxPrec] digits using half-to-even rounding.
// Display decimals are derived from the coefficient of the quotient.
//
// Quo returns an error wrapping:
//   - [ErrDivisionByZero] if the coefficient of m is 0, whatever its exponent;
//   - [ErrOverflow] if the integer part of the quotient of the coefficients
//     has more than [MaxPrec] digits, or if the difference of the exponents
//     is out of range.
func (n Number) Quo(m Number) (Number, error) {
	f, err := quo(n, m)
	if err != nil {
		return Number{}, fmt.Errorf("computing [%v / %v]: %w", n, m, err)
	}
	return f, nil
}

func quo(n, m Number) (Number, error) {
	// Special case: zero divisor
	if m.IsZero() {
		return Number{}, ErrDivisionByZero
	}

	// General case
	coef, err := n.coef.Quo(m.coef)
	if err != nil {
		return Number{}, fmt.Errorf("%w: %w", ErrOverflow, err)
	}
	return newNumber(coef, int(n.exp)-int(m.exp))
}

// Cmp compares n and m numerically and returns:
//
//	-1 if n < m
//	 0 if n == m
//	+1 if n > m
//
// Numbers with different exponents are compared exactly,
// so 15x10^0 is equal to 1.5x10^1.
// Display decimals are ignored.
func (n Number) Cmp(m Number) int {
	// Special case: different signs or zeros
	switch ns, ms := n.Sign(), m.Sign(); {
	case ns < ms:
		return -1
	case ms < ns:
		return 1
	case ns == 0:
		return 0
	}

	// General case
	ndigs, npos := digits(n.coef)
	mdigs, mpos := digits(m.coef)
	npos += int(n.exp)
	mpos += int(m.exp)
	var r int
	switch {
	case npos < mpos:
		r = -1
	case mpos < npos:
		r = 1
	default:
		r = strings.Compare(ndigs, mdigs)
	}
	return r * n.Sign()
}

// Equal returns true if n and m are numerically equal.
// Also see method [Number.Cmp].
func (n Number) Equal(m Number) bool {
	return n.Cmp(m) == 0
}
