// SPDX-License-Identifier: MIT

// Package numeric: decimal provider backed by github.com/govalues/decimal.
//
// decimal.Decimal is fractional with 19 significant digits and no NaN/Inf.
// Add, Subtract and Multiply are exact within range; Divide rounds, so the
// provider's Epsilon is DefaultDecimalEpsilon rather than zero.
// Library errors are translated into the numeric sentinels:
//   - division by a zero divisor  → ErrDivideByZero (checked before the call)
//   - any other arithmetic error  → ErrOverflow (the only remaining failure mode)
// Rounding members are supported exactly; transcendental members are not.

package numeric

import (
	"math"

	"github.com/govalues/decimal"
)

const decimalName = "decimal.Decimal"

var (
	decimalMax = decimal.MustParse("9999999999999999999")
	decimalMin = decimalMax.Neg()
)

// DefaultDecimalEpsilon is the decimal tolerance: Divide rounds to 19
// significant digits, so elimination leaves residue near 1e-18. 1e-13 keeps
// the same headroom float64 gets from DefaultEpsilon64.
var DefaultDecimalEpsilon = decimal.MustNew(1, 13)

// DecimalOps is the provider for decimal.Decimal.
type DecimalOps struct {
	Comparator[decimal.Decimal]
	Unsupported[decimal.Decimal]
}

// NewDecimalOps builds the decimal.Decimal provider.
func NewDecimalOps() *DecimalOps {
	return &DecimalOps{
		Comparator:  Comparator[decimal.Decimal]{Cmp: func(x, y decimal.Decimal) int { return x.Cmp(y) }},
		Unsupported: Unsupported[decimal.Decimal]{Type: decimalName},
	}
}

func (d *DecimalOps) Flags() Flags                      { return Bounded | Fractional }
func (d *DecimalOps) MinValue() (decimal.Decimal, bool) { return decimalMin, true }
func (d *DecimalOps) MaxValue() (decimal.Decimal, bool) { return decimalMax, true }
func (d *DecimalOps) Zero() decimal.Decimal             { return decimal.Zero }
func (d *DecimalOps) One() decimal.Decimal              { return decimal.One }
func (d *DecimalOps) Epsilon() decimal.Decimal          { return DefaultDecimalEpsilon }
func (d *DecimalOps) String() string                    { return decimalName }

func (d *DecimalOps) Pi() (decimal.Decimal, error) { return d.FromFloat64(math.Pi) }
func (d *DecimalOps) E() (decimal.Decimal, error)  { return d.FromFloat64(math.E) }

// lift translates a library error into ErrOverflow.
func (d *DecimalOps) lift(op string, v decimal.Decimal, err error) (decimal.Decimal, error) {
	if err != nil {
		return decimal.Decimal{}, opErrorf(decimalName, op, ErrOverflow)
	}
	return v, nil
}

func (d *DecimalOps) Add(x, y decimal.Decimal) (decimal.Decimal, error) {
	v, err := x.Add(y)
	return d.lift("Add", v, err)
}

func (d *DecimalOps) Subtract(x, y decimal.Decimal) (decimal.Decimal, error) {
	v, err := x.Sub(y)
	return d.lift("Subtract", v, err)
}

func (d *DecimalOps) Multiply(x, y decimal.Decimal) (decimal.Decimal, error) {
	v, err := x.Mul(y)
	return d.lift("Multiply", v, err)
}

// Divide is true division, rounded to 19 significant digits by the library.
func (d *DecimalOps) Divide(x, y decimal.Decimal) (decimal.Decimal, error) {
	if y.IsZero() {
		return decimal.Decimal{}, opErrorf(decimalName, "Divide", ErrDivideByZero)
	}
	v, err := x.Quo(y)
	return d.lift("Divide", v, err)
}

func (d *DecimalOps) Negate(x decimal.Decimal) (decimal.Decimal, error) { return x.Neg(), nil }
func (d *DecimalOps) Abs(x decimal.Decimal) (decimal.Decimal, error)    { return x.Abs(), nil }
func (d *DecimalOps) Sign(x decimal.Decimal) int                        { return x.Sign() }

// DivideIntegralWithModulus uses Decimal.QuoRem: integral quotient truncated
// toward zero and remainder with the sign of x.
func (d *DecimalOps) DivideIntegralWithModulus(x, y decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	if y.IsZero() {
		return decimal.Decimal{}, decimal.Decimal{}, opErrorf(decimalName, "DivideIntegral", ErrDivideByZero)
	}
	q, r, err := x.QuoRem(y)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, opErrorf(decimalName, "DivideIntegral", ErrOverflow)
	}
	return q, r, nil
}

func (d *DecimalOps) DivideIntegral(x, y decimal.Decimal) (decimal.Decimal, error) {
	q, _, err := d.DivideIntegralWithModulus(x, y)
	return q, err
}

func (d *DecimalOps) Modulus(x, y decimal.Decimal) (decimal.Decimal, error) {
	_, m, err := d.DivideIntegralWithModulus(x, y)
	return m, err
}

func (d *DecimalOps) QuotientWithRemainder(x, y decimal.Decimal) (decimal.Decimal, decimal.Decimal, error) {
	q, r, err := d.DivideIntegralWithModulus(x, y)
	if err != nil {
		return q, r, err
	}
	if !r.IsZero() && r.Sign() != y.Sign() {
		if q, err = q.Sub(decimal.One); err != nil {
			return decimal.Decimal{}, decimal.Decimal{}, opErrorf(decimalName, "Quotient", ErrOverflow)
		}
		if r, err = r.Add(y); err != nil {
			return decimal.Decimal{}, decimal.Decimal{}, opErrorf(decimalName, "Quotient", ErrOverflow)
		}
	}
	return q, r, nil
}

func (d *DecimalOps) Quotient(x, y decimal.Decimal) (decimal.Decimal, error) {
	q, _, err := d.QuotientWithRemainder(x, y)
	return q, err
}

func (d *DecimalOps) Remainder(x, y decimal.Decimal) (decimal.Decimal, error) {
	_, r, err := d.QuotientWithRemainder(x, y)
	return r, err
}

func (d *DecimalOps) FromInt32(v int32) (decimal.Decimal, error) {
	out, err := decimal.New(int64(v), 0)
	if err != nil {
		return decimal.Decimal{}, opErrorf(decimalName, "FromInt32", ErrConversion)
	}
	return out, nil
}

func (d *DecimalOps) ToInt32(x decimal.Decimal) (int32, error) {
	whole, _, ok := x.Trunc(0).Int64(0)
	if !ok || whole < math.MinInt32 || whole > math.MaxInt32 {
		return 0, opErrorf(decimalName, "ToInt32", ErrConversion)
	}
	return int32(whole), nil
}

func (d *DecimalOps) FromFloat64(v float64) (decimal.Decimal, error) {
	out, err := decimal.NewFromFloat64(v)
	if err != nil {
		return decimal.Decimal{}, opErrorf(decimalName, "FromFloat64", ErrConversion)
	}
	return out, nil
}

func (d *DecimalOps) ToFloat64(x decimal.Decimal) (float64, error) {
	f, ok := x.Float64()
	if !ok {
		return 0, opErrorf(decimalName, "ToFloat64", ErrConversion)
	}
	return f, nil
}

// Round rounds x to digits fractional digits (0..19) resolving halves by mode.
func (d *DecimalOps) Round(x decimal.Decimal, digits int, mode Midpoint) (decimal.Decimal, error) {
	if digits < 0 || digits > 19 {
		return decimal.Decimal{}, opErrorf(decimalName, "Round", ErrArgumentRange)
	}
	switch mode {
	case ToEven:
		return x.Round(digits), nil
	case AwayFromZero, ToZero:
	default:
		return decimal.Decimal{}, opErrorf(decimalName, "Round", ErrArgumentRange)
	}
	t := x.Trunc(digits)
	if digits == 19 {
		// No representable digit below the 19th; truncation is exact.
		return t, nil
	}
	diff, err := x.Sub(t)
	if err != nil {
		return decimal.Decimal{}, opErrorf(decimalName, "Round", ErrOverflow)
	}
	half := decimal.MustNew(5, digits+1)
	c := diff.Abs().Cmp(half)
	if c < 0 || (c == 0 && mode == ToZero) {
		return t, nil
	}
	unit := decimal.MustNew(int64(x.Sign()), digits)
	v, err := t.Add(unit)
	return d.lift("Round", v, err)
}

func (d *DecimalOps) Ceiling(x decimal.Decimal) (decimal.Decimal, error)  { return x.Ceil(0), nil }
func (d *DecimalOps) Floor(x decimal.Decimal) (decimal.Decimal, error)    { return x.Floor(0), nil }
func (d *DecimalOps) Truncate(x decimal.Decimal) (decimal.Decimal, error) { return x.Trunc(0), nil }
