// SPDX-License-Identifier: MIT

package cplx

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/lvnum/numeric"
)

const opsName = "cplx.Number"

// Ops is the numeric.Operations provider for Number.
//
//   - Arithmetic follows IEEE-754 and never fails.
//   - Abs returns the modulus as a real Number; Compare orders by modulus.
//   - The floor/truncated division family and Atan2 are not defined.
//   - ToInt32/ToFloat64 succeed only for values with a zero imaginary part.
//   - Rounding members apply to each component.
type Ops struct {
	numeric.Comparator[Number]
	numeric.Unsupported[Number]
	f64 *numeric.FloatOps[float64]
}

// NewOps returns the Number provider.
func NewOps() *Ops {
	return &Ops{
		Comparator:  numeric.Comparator[Number]{Cmp: Number.Compare},
		Unsupported: numeric.Unsupported[Number]{Type: opsName},
		f64:         numeric.NewFloat64Ops(),
	}
}

func init() {
	numeric.Register[Number](numeric.Default(), func() numeric.Operations[Number] { return NewOps() })
}

var _ numeric.Operations[Number] = (*Ops)(nil)

func (o *Ops) Flags() numeric.Flags     { return numeric.Fractional | numeric.Floating }
func (o *Ops) MinValue() (Number, bool) { return Number{}, false }
func (o *Ops) MaxValue() (Number, bool) { return Number{}, false }
func (o *Ops) Zero() Number             { return Number{} }
func (o *Ops) One() Number              { return Number{Re: 1} }
func (o *Ops) Epsilon() Number          { return Number{Re: DefaultEpsilon} }
func (o *Ops) Pi() (Number, error)      { return Number{Re: math.Pi}, nil }
func (o *Ops) E() (Number, error)       { return Number{Re: math.E}, nil }
func (o *Ops) String() string           { return opsName }

func (o *Ops) Add(x, y Number) (Number, error)      { return x.Add(y), nil }
func (o *Ops) Subtract(x, y Number) (Number, error) { return x.Sub(y), nil }
func (o *Ops) Multiply(x, y Number) (Number, error) { return x.Mul(y), nil }
func (o *Ops) Divide(x, y Number) (Number, error)   { return x.Div(y), nil }
func (o *Ops) Negate(x Number) (Number, error)      { return x.Neg(), nil }
func (o *Ops) Abs(x Number) (Number, error)         { return Number{Re: x.Abs()}, nil }

// Sign is the sign of Re, or of Im when Re is zero.
func (o *Ops) Sign(x Number) int {
	v := x.Re
	if v == 0 {
		v = x.Im
	}
	return o.f64.Sign(v)
}

func (o *Ops) Quotient(x, y Number) (Number, error)       { return o.Fail("Quotient") }
func (o *Ops) Remainder(x, y Number) (Number, error)      { return o.Fail("Remainder") }
func (o *Ops) DivideIntegral(x, y Number) (Number, error) { return o.Fail("DivideIntegral") }
func (o *Ops) Modulus(x, y Number) (Number, error)        { return o.Fail("Modulus") }

func (o *Ops) QuotientWithRemainder(x, y Number) (Number, Number, error) {
	_, err := o.Fail("QuotientWithRemainder")
	return Number{}, Number{}, err
}

func (o *Ops) DivideIntegralWithModulus(x, y Number) (Number, Number, error) {
	_, err := o.Fail("DivideIntegralWithModulus")
	return Number{}, Number{}, err
}

func (o *Ops) FromInt32(v int32) (Number, error)     { return Number{Re: float64(v)}, nil }
func (o *Ops) FromFloat64(v float64) (Number, error) { return Number{Re: v}, nil }

func (o *Ops) ToInt32(x Number) (int32, error) {
	if x.Im != 0 {
		return 0, cplxErrorf("ToInt32", numeric.ErrConversion)
	}
	return o.f64.ToInt32(x.Re)
}

func (o *Ops) ToFloat64(x Number) (float64, error) {
	if x.Im != 0 {
		return 0, cplxErrorf("ToFloat64", numeric.ErrConversion)
	}
	return x.Re, nil
}

func (o *Ops) NaN() (Number, error)              { return FromComplex128(cmplx.NaN()), nil }
func (o *Ops) PositiveInfinity() (Number, error) { return Number{Re: math.Inf(1)}, nil }
func (o *Ops) NegativeInfinity() (Number, error) { return Number{Re: math.Inf(-1)}, nil }
func (o *Ops) IsNaN(x Number) (bool, error)      { return x.IsNaN(), nil }
func (o *Ops) IsInfinite(x Number) (bool, error) { return x.IsInf(), nil }

// componentwise applies a real unary member to Re and Im.
func (o *Ops) componentwise(x Number, f func(float64) (float64, error)) (Number, error) {
	re, err := f(x.Re)
	if err != nil {
		return Number{}, err
	}
	im, err := f(x.Im)
	if err != nil {
		return Number{}, err
	}
	return Number{re, im}, nil
}

func (o *Ops) Round(x Number, digits int, mode numeric.Midpoint) (Number, error) {
	return o.componentwise(x, func(v float64) (float64, error) { return o.f64.Round(v, digits, mode) })
}

func (o *Ops) Ceiling(x Number) (Number, error)  { return o.componentwise(x, o.f64.Ceiling) }
func (o *Ops) Floor(x Number) (Number, error)    { return o.componentwise(x, o.f64.Floor) }
func (o *Ops) Truncate(x Number) (Number, error) { return o.componentwise(x, o.f64.Truncate) }

// lift applies a math/cmplx function.
func lift(f func(complex128) complex128, x Number) (Number, error) {
	return FromComplex128(f(x.Complex128())), nil
}

func (o *Ops) Sqrt(x Number) (Number, error) { return lift(cmplx.Sqrt, x) }
func (o *Ops) Exp(x Number) (Number, error)  { return lift(cmplx.Exp, x) }
func (o *Ops) Log(x Number) (Number, error)  { return lift(cmplx.Log, x) }
func (o *Ops) Sin(x Number) (Number, error)  { return lift(cmplx.Sin, x) }
func (o *Ops) Cos(x Number) (Number, error)  { return lift(cmplx.Cos, x) }
func (o *Ops) Tan(x Number) (Number, error)  { return lift(cmplx.Tan, x) }
func (o *Ops) Asin(x Number) (Number, error) { return lift(cmplx.Asin, x) }
func (o *Ops) Acos(x Number) (Number, error) { return lift(cmplx.Acos, x) }
func (o *Ops) Atan(x Number) (Number, error) { return lift(cmplx.Atan, x) }

func (o *Ops) Pow(x, y Number) (Number, error) {
	return FromComplex128(cmplx.Pow(x.Complex128(), y.Complex128())), nil
}
