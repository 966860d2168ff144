package sci

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/govalues/decimal"
)

var errCoefficientOverflow = errors.New("coefficient overflow")

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]int64{
	1,                         // 10^0
	10,                        // 10^1
	100,                       // 10^2
	1_000,                     // 10^3
	10_000,                    // 10^4
	100_000,                   // 10^5
	1_000_000,                 // 10^6
	10_000_000,                // 10^7
	100_000_000,               // 10^8
	1_000_000_000,             // 10^9
	10_000_000_000,            // 10^10
	100_000_000_000,           // 10^11
	1_000_000_000_000,         // 10^12
	10_000_000_000_000,        // 10^13
	100_000_000_000_000,       // 10^14
	1_000_000_000_000_000,     // 10^15
	10_000_000_000_000_000,    // 10^16
	100_000_000_000_000_000,   // 10^17
	1_000_000_000_000_000_000, // 10^18
}

// maxStep is the largest power of 10 applied by a single multiplication or
// division while shifting a coefficient.
const maxStep = len(pow10) - 1

// fracDigits returns the number of digits after the decimal point of coef,
// or 0 if its fractional part is zero.
func fracDigits(coef decimal.Decimal) int {
	if coef.IsInt() {
		return 0
	}
	return coef.Scale()
}

// shift returns coef * 10^k.
// The significant digits of coef are kept: a positive k moves the decimal
// point to the right, a negative k moves it to the left and pads the result
// with trailing zeros where necessary.
func shift(coef decimal.Decimal, k int) (decimal.Decimal, error) {
	switch {
	case k > 0:
		return lsh(coef, k)
	case k < 0:
		return rsh(coef, -k), nil
	}
	return coef, nil
}

// lsh returns coef * 10^k for k > 0.
func lsh(coef decimal.Decimal, k int) (decimal.Decimal, error) {
	scale := max(coef.Scale()-k, 0)

	// Special case: zero coefficient
	if coef.IsZero() {
		return coef.Trim(scale), nil
	}

	// Any non-zero coefficient has at least one digit within the first
	// MaxScale places after the decimal point.
	if k > decimal.MaxPrec+decimal.MaxScale {
		return decimal.Decimal{}, fmt.Errorf("shifting %v by %v digit(s): %w", coef, k, errCoefficientOverflow)
	}

	// General case
	for k > 0 {
		n := min(k, maxStep)
		f, err := coef.Mul(decimal.MustNew(pow10[n], 0))
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("shifting %v by %v digit(s): %w", coef, k, err)
		}
		coef = f
		k -= n
	}
	return coef.Trim(scale), nil
}

// rsh returns (possibly rounded) coef / 10^k for k > 0.
// The result is exact if coef has at most (MaxScale - k) digits
// after the decimal point.
func rsh(coef decimal.Decimal, k int) decimal.Decimal {
	scale := min(coef.Scale()+k, decimal.MaxScale)
	for k > 0 && !coef.IsZero() {
		n := min(k, maxStep)
		f, err := coef.Quo(decimal.MustNew(pow10[n], 0))
		if err != nil {
			panic(fmt.Sprintf("rsh(%v, %v) failed: %v", coef, k, err)) // unexpected by design
		}
		coef = f
		k -= n
	}
	return coef.Pad(scale)
}

// compact moves the trailing zeros of an integral coefficient into the exponent.
// For example, 1200 and 2 become 12 and 4.
// Coefficients with a non-zero fractional part are returned unchanged.
func compact(coef decimal.Decimal, exp int) (decimal.Decimal, int) {
	if coef.IsZero() || !coef.IsInt() {
		return coef, exp
	}
	coef = coef.Trim(0)
	s := strconv.FormatUint(coef.Coef(), 10)
	z := len(s) - len(strings.TrimRight(s, "0"))
	if z == 0 {
		return coef, exp
	}
	c, err := coef.Quo(decimal.MustNew(pow10[z], 0))
	if err != nil {
		panic(fmt.Sprintf("compact(%v, %v) failed: %v", coef, exp, err)) // unexpected by design
	}
	return c, exp + z
}

// digits returns the digits of a non-zero coef without trailing zeros, and
// the position of its most significant digit relative to the decimal point.
// For example, 0.0120 has digits "12" and position -2.
func digits(coef decimal.Decimal) (string, int) {
	s := strconv.FormatUint(coef.Coef(), 10)
	pos := len(s) - coef.Scale() - 1
	return strings.TrimRight(s, "0"), pos
}

// roundHalfDown returns coef rounded to the specified number of digits after
// the decimal point, with midpoints rounded towards zero.
// If the scale of coef is not greater than the specified scale, coef is
// returned unchanged.
func roundHalfDown(coef decimal.Decimal, scale int) decimal.Decimal {
	if scale >= coef.Scale() {
		return coef
	}
	trunc := coef.Trunc(scale)
	rem, err := coef.Sub(trunc)
	if err != nil {
		panic(fmt.Sprintf("roundHalfDown(%v, %v) failed: %v", coef, scale, err)) // unexpected by design
	}
	half := decimal.MustNew(5, scale+1)
	if rem.Abs().Cmp(half) <= 0 {
		return trunc
	}
	ulp := decimal.MustNew(1, scale)
	if coef.IsNeg() {
		ulp = ulp.Neg()
	}
	// The truncated coefficient has at least one spare digit.
	f, err := trunc.Add(ulp)
	if err != nil {
		panic(fmt.Sprintf("roundHalfDown(%v, %v) failed: %v", coef, scale, err)) // unexpected by design
	}
	return f
}

// formatCoef returns coef rounded half towards zero and zero-padded to exactly
// the specified number of digits after the decimal point.
func formatCoef(coef decimal.Decimal, scale int) string {
	c := roundHalfDown(coef, scale)
	s := c.String()
	if z := scale - c.Scale(); z > 0 {
		if c.Scale() == 0 {
			s += "."
		}
		s += strings.Repeat("0", z)
	}
	return s
}

// scanLiteral reports whether s is a plain decimal literal, that is an
// optional sign followed by digits with at most one decimal point, and returns
// the number of digits after the decimal point.
// Exponent notation is not accepted.
func scanLiteral(s string) (scale int, ok bool) {
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		s = s[1:]
	}
	digs, point := 0, false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
			digs++
			if point {
				scale++
			}
		case c == '.' && !point:
			point = true
		default:
			return 0, false
		}
	}
	return scale, digs > 0
}

// hasFrac reports whether a decimal literal has a non-zero digit after
// its decimal point.
func hasFrac(s string) bool {
	i := strings.IndexByte(s, '.')
	if i < 0 {
		return false
	}
	return strings.Trim(s[i+1:], "0") != ""
}
