// SPDX-License-Identifier: MIT

package rational

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvnum/numeric"
)

// String returns "n" for integers (including Zero, "0") and "n/d" otherwise.
func (r Rational) String() string {
	if r.IsZero() {
		return "0"
	}
	if r.IsInteger() {
		return r.num.String()
	}
	return r.num.String() + "/" + r.den.String()
}

// Parse reads "n" or "n/d". Whitespace around the value and around '/' is
// ignored; n and d may carry a sign. A zero denominator yields Zero.
// Malformed input returns numeric.ErrFormat.
func Parse(s string) (Rational, error) {
	numStr, denStr, hasSlash := strings.Cut(strings.TrimSpace(s), "/")
	n, ok := parseInt(strings.TrimSpace(numStr))
	if !ok {
		return Zero, rationalErrorf("Parse", numeric.ErrFormat)
	}
	if !hasSlash {
		return reduce(n, big.NewInt(1)), nil
	}
	d, ok := parseInt(strings.TrimSpace(denStr))
	if !ok {
		return Zero, rationalErrorf("Parse", numeric.ErrFormat)
	}
	return reduce(n, d), nil
}

// MustParse is Parse that panics on malformed input.
func MustParse(s string) Rational {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}

// parseInt accepts an optionally signed base-10 integer with no inner spaces.
func parseInt(s string) (*big.Int, bool) {
	if s == "" || strings.ContainsAny(s, " \t\n_") {
		return nil, false
	}
	return new(big.Int).SetString(s, 10)
}

// MarshalText implements encoding.TextMarshaler.
func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rational) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// FromFloat64 approximates v by rounding it to digits decimal places and
// reducing k / 10^digits. NaN and ±Inf return numeric.ErrConversion; digits
// outside [0, 30] return numeric.ErrArgumentRange.
func FromFloat64(v float64, digits int) (Rational, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Zero, rationalErrorf("FromFloat64", numeric.ErrConversion)
	}
	if digits < 0 || digits > 30 {
		return Zero, rationalErrorf("FromFloat64", numeric.ErrArgumentRange)
	}
	// 'f' formatting rounds correctly in decimal; dropping the point leaves k.
	text := strconv.FormatFloat(v, 'f', digits, 64)
	k, ok := new(big.Int).SetString(strings.Replace(text, ".", "", 1), 10)
	if !ok {
		return Zero, rationalErrorf("FromFloat64", numeric.ErrConversion)
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	return reduce(k, scale), nil
}
