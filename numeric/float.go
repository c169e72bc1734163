// SPDX-License-Identifier: MIT

// Package numeric: IEEE-754 providers.
//
// FloatOps is generic over the float width and receives its elementary
// functions as a table, so float64 binds to the standard library and float32
// binds to github.com/chewxy/math32 without converting through float64.
//
// Behavior highlights:
//   - Arithmetic never fails: overflow saturates to ±Inf, 0/0 yields NaN.
//   - Compare is total (cmp.Compare ordering: NaN sorts first and equals NaN).
//   - Quotient/Remainder use Floor; DivideIntegral/Modulus use Trunc/Mod.

package numeric

import (
	"cmp"
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Default float tolerances used by approximate algorithms (matrix elimination).
const (
	DefaultEpsilon64 = 1e-10
	DefaultEpsilon32 = 1e-5
)

// mathTable binds the elementary functions of one float width.
type mathTable[T constraints.Float] struct {
	floor, ceil, trunc, round, roundEven func(T) T
	sqrt, exp, log                       func(T) T
	sin, cos, tan, asin, acos, atan      func(T) T
	abs                                  func(T) T
	mod, pow, atan2                      func(x, y T) T
	inf                                  func(sign int) T
	nan                                  func() T
	isNaN                                func(T) bool
	isInf                                func(T, int) bool
}

// FloatOps is the provider for float32 and float64.
type FloatOps[T constraints.Float] struct {
	Comparator[T]
	name      string
	fn        mathTable[T]
	maxFinite T
	eps       T
	maxDigits int
}

// NewFloat64Ops returns the float64 provider backed by package math.
func NewFloat64Ops() *FloatOps[float64] {
	return &FloatOps[float64]{
		Comparator: Comparator[float64]{Cmp: cmp.Compare[float64]},
		name:       "float64",
		fn: mathTable[float64]{
			floor: math.Floor, ceil: math.Ceil, trunc: math.Trunc,
			round: math.Round, roundEven: math.RoundToEven,
			sqrt: math.Sqrt, exp: math.Exp, log: math.Log,
			sin: math.Sin, cos: math.Cos, tan: math.Tan,
			asin: math.Asin, acos: math.Acos, atan: math.Atan,
			abs: math.Abs, mod: math.Mod, pow: math.Pow, atan2: math.Atan2,
			inf: math.Inf, nan: math.NaN, isNaN: math.IsNaN, isInf: math.IsInf,
		},
		maxFinite: math.MaxFloat64,
		eps:       DefaultEpsilon64,
		maxDigits: 15,
	}
}

// roundToEven32 fills the gap in math32; the float64 detour is exact for
// float32 inputs.
func roundToEven32(x float32) float32 { return float32(math.RoundToEven(float64(x))) }

// NewFloat32Ops returns the float32 provider backed by chewxy/math32.
func NewFloat32Ops() *FloatOps[float32] {
	return &FloatOps[float32]{
		Comparator: Comparator[float32]{Cmp: cmp.Compare[float32]},
		name:       "float32",
		fn: mathTable[float32]{
			floor: math32.Floor, ceil: math32.Ceil, trunc: math32.Trunc,
			round: math32.Round, roundEven: roundToEven32,
			sqrt: math32.Sqrt, exp: math32.Exp, log: math32.Log,
			sin: math32.Sin, cos: math32.Cos, tan: math32.Tan,
			asin: math32.Asin, acos: math32.Acos, atan: math32.Atan,
			abs: math32.Abs, mod: math32.Mod, pow: math32.Pow, atan2: math32.Atan2,
			inf: math32.Inf, nan: math32.NaN, isNaN: math32.IsNaN, isInf: math32.IsInf,
		},
		maxFinite: math.MaxFloat32,
		eps:       DefaultEpsilon32,
		maxDigits: 7,
	}
}

func (f *FloatOps[T]) Flags() Flags        { return Bounded | Fractional | Floating }
func (f *FloatOps[T]) MinValue() (T, bool) { return -f.maxFinite, true }
func (f *FloatOps[T]) MaxValue() (T, bool) { return f.maxFinite, true }
func (f *FloatOps[T]) Zero() T             { return 0 }
func (f *FloatOps[T]) One() T              { return 1 }
func (f *FloatOps[T]) Epsilon() T          { return f.eps }
func (f *FloatOps[T]) Pi() (T, error)      { return T(math.Pi), nil }
func (f *FloatOps[T]) E() (T, error)       { return T(math.E), nil }
func (f *FloatOps[T]) String() string      { return f.name }

func (f *FloatOps[T]) Add(x, y T) (T, error)      { return x + y, nil }
func (f *FloatOps[T]) Subtract(x, y T) (T, error) { return x - y, nil }
func (f *FloatOps[T]) Multiply(x, y T) (T, error) { return x * y, nil }
func (f *FloatOps[T]) Divide(x, y T) (T, error)   { return x / y, nil }
func (f *FloatOps[T]) Negate(x T) (T, error)      { return -x, nil }
func (f *FloatOps[T]) Abs(x T) (T, error)         { return f.fn.abs(x), nil }

// Sign returns 0 for zero and NaN.
func (f *FloatOps[T]) Sign(x T) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func (f *FloatOps[T]) QuotientWithRemainder(x, y T) (T, T, error) {
	q := f.fn.floor(x / y)
	return q, x - q*y, nil
}

func (f *FloatOps[T]) Quotient(x, y T) (T, error) {
	return f.fn.floor(x / y), nil
}

func (f *FloatOps[T]) Remainder(x, y T) (T, error) {
	_, r, _ := f.QuotientWithRemainder(x, y)
	return r, nil
}

func (f *FloatOps[T]) DivideIntegralWithModulus(x, y T) (T, T, error) {
	return f.fn.trunc(x / y), f.fn.mod(x, y), nil
}

func (f *FloatOps[T]) DivideIntegral(x, y T) (T, error) { return f.fn.trunc(x / y), nil }
func (f *FloatOps[T]) Modulus(x, y T) (T, error)        { return f.fn.mod(x, y), nil }

func (f *FloatOps[T]) FromInt32(v int32) (T, error)     { return T(v), nil }
func (f *FloatOps[T]) FromFloat64(v float64) (T, error) { return T(v), nil }
func (f *FloatOps[T]) ToFloat64(x T) (float64, error)   { return float64(x), nil }

// ToInt32 truncates x; NaN and values outside int32 fail.
func (f *FloatOps[T]) ToInt32(x T) (int32, error) {
	v := math.Trunc(float64(x))
	if math.IsNaN(v) || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, opErrorf(f.name, "ToInt32", ErrConversion)
	}
	return int32(v), nil
}

func (f *FloatOps[T]) NaN() (T, error)              { return f.fn.nan(), nil }
func (f *FloatOps[T]) PositiveInfinity() (T, error) { return f.fn.inf(1), nil }
func (f *FloatOps[T]) NegativeInfinity() (T, error) { return f.fn.inf(-1), nil }
func (f *FloatOps[T]) IsNaN(x T) (bool, error)      { return f.fn.isNaN(x), nil }
func (f *FloatOps[T]) IsInfinite(x T) (bool, error) { return f.fn.isInf(x, 0), nil }

// Round rounds x to the given number of decimal digits, resolving halves by mode.
// digits must be within [0, 15] for float64 and [0, 7] for float32.
func (f *FloatOps[T]) Round(x T, digits int, mode Midpoint) (T, error) {
	if digits < 0 || digits > f.maxDigits {
		return 0, opErrorf(f.name, "Round", ErrArgumentRange)
	}
	if f.fn.isNaN(x) || f.fn.isInf(x, 0) {
		return x, nil
	}
	scale := T(math.Pow10(digits))
	v := x * scale
	if f.fn.isInf(v, 0) {
		return x, nil
	}
	var r T
	switch mode {
	case ToEven:
		r = f.fn.roundEven(v)
	case AwayFromZero:
		r = f.fn.round(v)
	case ToZero:
		t := f.fn.trunc(v)
		if f.fn.abs(v-t) == 0.5 {
			r = t
		} else {
			r = f.fn.round(v)
		}
	default:
		return 0, opErrorf(f.name, "Round", ErrArgumentRange)
	}
	if digits == 0 {
		return r, nil
	}
	return r / scale, nil
}

func (f *FloatOps[T]) Ceiling(x T) (T, error)  { return f.fn.ceil(x), nil }
func (f *FloatOps[T]) Floor(x T) (T, error)    { return f.fn.floor(x), nil }
func (f *FloatOps[T]) Truncate(x T) (T, error) { return f.fn.trunc(x), nil }
func (f *FloatOps[T]) Sqrt(x T) (T, error)     { return f.fn.sqrt(x), nil }
func (f *FloatOps[T]) Pow(x, y T) (T, error)   { return f.fn.pow(x, y), nil }
func (f *FloatOps[T]) Exp(x T) (T, error)      { return f.fn.exp(x), nil }
func (f *FloatOps[T]) Log(x T) (T, error)      { return f.fn.log(x), nil }
func (f *FloatOps[T]) Sin(x T) (T, error)      { return f.fn.sin(x), nil }
func (f *FloatOps[T]) Cos(x T) (T, error)      { return f.fn.cos(x), nil }
func (f *FloatOps[T]) Tan(x T) (T, error)      { return f.fn.tan(x), nil }
func (f *FloatOps[T]) Asin(x T) (T, error)     { return f.fn.asin(x), nil }
func (f *FloatOps[T]) Acos(x T) (T, error)     { return f.fn.acos(x), nil }
func (f *FloatOps[T]) Atan(x T) (T, error)     { return f.fn.atan(x), nil }
func (f *FloatOps[T]) Atan2(y, x T) (T, error) { return f.fn.atan2(y, x), nil }
