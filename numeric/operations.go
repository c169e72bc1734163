// SPDX-License-Identifier: MIT

// Package numeric: the Operations contract.
//
// Operations[T] is the per-type provider (a type class in Go generics form):
// every algorithm in this module performs arithmetic exclusively through it,
// so the same code runs over int32, float64, *big.Int, rational.Rational,
// cplx.Number, vectors, and any user type with a registered provider.
//
// Contract summary:
//   - Bounded integral providers are CHECKED: Add/Subtract/Multiply/Divide,
//     Negate and Abs return ErrOverflow instead of wrapping.
//   - Floating providers follow IEEE-754: they never return ErrOverflow or
//     ErrDivideByZero; results saturate to ±Inf or become NaN.
//   - Integral division by Zero returns ErrDivideByZero.
//   - Floating-only members return ErrNotSupported on other providers.
//   - FromInt32(0) == Zero() for every provider.

package numeric

// Midpoint selects how Round resolves values exactly halfway between two
// candidates.
type Midpoint int

const (
	// ToEven rounds halves to the nearest even digit (banker's rounding).
	ToEven Midpoint = iota
	// AwayFromZero rounds halves away from zero.
	AwayFromZero
	// ToZero rounds halves toward zero.
	ToZero
)

// String returns the mode name.
func (m Midpoint) String() string {
	switch m {
	case ToEven:
		return "ToEven"
	case AwayFromZero:
		return "AwayFromZero"
	case ToZero:
		return "ToZero"
	default:
		return "Midpoint(?)"
	}
}

// Operations is the complete operation set for a numeric type T.
// Implementations are stateless and safe for concurrent use.
type Operations[T any] interface {
	// ---------- capabilities, bounds & constants ----------

	// Flags reports the capability bits of T.
	Flags() Flags
	// MinValue returns the smallest representable value; ok is false when unbounded.
	MinValue() (v T, ok bool)
	// MaxValue returns the largest representable value; ok is false when unbounded.
	MaxValue() (v T, ok bool)
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// Epsilon returns the tolerance below which a magnitude is treated as zero
	// by approximate algorithms (rational and integral types return Zero).
	Epsilon() T
	// Pi returns π in T, or ErrNotSupported for integral types.
	Pi() (T, error)
	// E returns Euler's number in T, or ErrNotSupported for integral types.
	E() (T, error)

	// ---------- comparison ----------

	Compare(x, y T) int
	Equal(x, y T) bool
	LessThan(x, y T) bool
	LessOrEqual(x, y T) bool
	GreaterThan(x, y T) bool
	GreaterOrEqual(x, y T) bool
	Min(x, y T) T
	Max(x, y T) T

	// ---------- arithmetic ----------

	Add(x, y T) (T, error)
	Subtract(x, y T) (T, error)
	Multiply(x, y T) (T, error)
	// Divide is truncated division for integral types and true division otherwise.
	Divide(x, y T) (T, error)
	Negate(x T) (T, error)
	Abs(x T) (T, error)
	// Sign returns -1, 0 or +1.
	Sign(x T) int

	// ---------- division family ----------

	// Quotient is floor division (rounds toward −∞).
	Quotient(x, y T) (T, error)
	// Remainder is x − Quotient(x,y)·y (takes the sign of y).
	Remainder(x, y T) (T, error)
	// QuotientWithRemainder computes Quotient and Remainder in one pass.
	QuotientWithRemainder(x, y T) (q, r T, err error)
	// DivideIntegral truncates toward zero.
	DivideIntegral(x, y T) (T, error)
	// Modulus is x − DivideIntegral(x,y)·y (takes the sign of x).
	Modulus(x, y T) (T, error)
	// DivideIntegralWithModulus computes DivideIntegral and Modulus in one pass.
	DivideIntegralWithModulus(x, y T) (q, m T, err error)

	// ---------- conversion ----------

	FromInt32(v int32) (T, error)
	ToInt32(x T) (int32, error)
	FromFloat64(v float64) (T, error)
	ToFloat64(x T) (float64, error)

	// ---------- floating-only ----------

	NaN() (T, error)
	PositiveInfinity() (T, error)
	NegativeInfinity() (T, error)
	IsNaN(x T) (bool, error)
	IsInfinite(x T) (bool, error)
	Round(x T, digits int, mode Midpoint) (T, error)
	Ceiling(x T) (T, error)
	Floor(x T) (T, error)
	Truncate(x T) (T, error)
	Sqrt(x T) (T, error)
	Pow(x, y T) (T, error)
	Exp(x T) (T, error)
	Log(x T) (T, error)
	Sin(x T) (T, error)
	Cos(x T) (T, error)
	Tan(x T) (T, error)
	Asin(x T) (T, error)
	Acos(x T) (T, error)
	Atan(x T) (T, error)
	Atan2(y, x T) (T, error)
}
