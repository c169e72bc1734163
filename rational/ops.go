// SPDX-License-Identifier: MIT

package rational

import (
	"math"

	"github.com/katalvlaran/lvnum/numeric"
)

// floatDigits is the precision used when a float64 enters through the provider.
const floatDigits = 15

const opsName = "rational.Rational"

// Ops is the numeric.Operations provider for Rational: fractional, exact and
// unbounded. Rounding members are exact; transcendental members are not
// supported.
type Ops struct {
	numeric.Comparator[Rational]
	numeric.Unsupported[Rational]
}

// NewOps returns the Rational provider.
func NewOps() *Ops {
	return &Ops{
		Comparator:  numeric.Comparator[Rational]{Cmp: Rational.Cmp},
		Unsupported: numeric.Unsupported[Rational]{Type: opsName},
	}
}

func init() {
	numeric.Register[Rational](numeric.Default(), func() numeric.Operations[Rational] { return NewOps() })
}

var _ numeric.Operations[Rational] = (*Ops)(nil)

func (o *Ops) Flags() numeric.Flags       { return numeric.Fractional }
func (o *Ops) MinValue() (Rational, bool) { return Zero, false }
func (o *Ops) MaxValue() (Rational, bool) { return Zero, false }
func (o *Ops) Zero() Rational             { return Zero }
func (o *Ops) One() Rational              { return FromInt(1) }
func (o *Ops) Epsilon() Rational          { return Zero }
func (o *Ops) Pi() (Rational, error)      { return FromFloat64(math.Pi, floatDigits) }
func (o *Ops) E() (Rational, error)       { return FromFloat64(math.E, floatDigits) }
func (o *Ops) String() string             { return opsName }

func (o *Ops) Add(x, y Rational) (Rational, error)      { return x.Add(y), nil }
func (o *Ops) Subtract(x, y Rational) (Rational, error) { return x.Sub(y), nil }
func (o *Ops) Multiply(x, y Rational) (Rational, error) { return x.Mul(y), nil }
func (o *Ops) Divide(x, y Rational) (Rational, error)   { return x.Quo(y) }
func (o *Ops) Negate(x Rational) (Rational, error)      { return x.Neg(), nil }
func (o *Ops) Abs(x Rational) (Rational, error)         { return x.Abs(), nil }
func (o *Ops) Sign(x Rational) int                      { return x.Sign() }

// QuotientWithRemainder returns floor(x/y) and x − floor(x/y)·y.
func (o *Ops) QuotientWithRemainder(x, y Rational) (Rational, Rational, error) {
	v, err := x.Quo(y)
	if err != nil {
		return Zero, Zero, rationalErrorf("Quotient", numeric.ErrDivideByZero)
	}
	q := v.Floor()
	return q, x.Sub(q.Mul(y)), nil
}

// DivideIntegralWithModulus returns trunc(x/y) and x − trunc(x/y)·y.
func (o *Ops) DivideIntegralWithModulus(x, y Rational) (Rational, Rational, error) {
	v, err := x.Quo(y)
	if err != nil {
		return Zero, Zero, rationalErrorf("DivideIntegral", numeric.ErrDivideByZero)
	}
	q := v.Trunc()
	return q, x.Sub(q.Mul(y)), nil
}

func (o *Ops) Quotient(x, y Rational) (Rational, error) {
	q, _, err := o.QuotientWithRemainder(x, y)
	return q, err
}

func (o *Ops) Remainder(x, y Rational) (Rational, error) {
	_, r, err := o.QuotientWithRemainder(x, y)
	return r, err
}

func (o *Ops) DivideIntegral(x, y Rational) (Rational, error) {
	q, _, err := o.DivideIntegralWithModulus(x, y)
	return q, err
}

func (o *Ops) Modulus(x, y Rational) (Rational, error) {
	_, m, err := o.DivideIntegralWithModulus(x, y)
	return m, err
}

func (o *Ops) FromInt32(v int32) (Rational, error) { return FromInt(int64(v)), nil }

// ToInt32 truncates x toward zero.
func (o *Ops) ToInt32(x Rational) (int32, error) {
	t := x.Trunc().Num()
	if !t.IsInt64() || t.Int64() < math.MinInt32 || t.Int64() > math.MaxInt32 {
		return 0, rationalErrorf("ToInt32", numeric.ErrConversion)
	}
	return int32(t.Int64()), nil
}

func (o *Ops) FromFloat64(v float64) (Rational, error) { return FromFloat64(v, floatDigits) }

// ToFloat64 returns the nearest float64 (±Inf beyond the float64 range).
func (o *Ops) ToFloat64(x Rational) (float64, error) {
	f, _ := x.Float64()
	return f, nil
}

func (o *Ops) Round(x Rational, digits int, mode numeric.Midpoint) (Rational, error) {
	return x.Round(digits, mode)
}

func (o *Ops) Ceiling(x Rational) (Rational, error)  { return x.Ceil(), nil }
func (o *Ops) Floor(x Rational) (Rational, error)    { return x.Floor(), nil }
func (o *Ops) Truncate(x Rational) (Rational, error) { return x.Trunc(), nil }
