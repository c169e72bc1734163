// SPDX-License-Identifier: MIT

// Package numeric: checked provider for fixed-width signed integers.
//
// Every arithmetic member detects overflow explicitly instead of wrapping:
//   - Add/Subtract: sign analysis of operands vs. result.
//   - Multiply: division back-check plus the (-1, Min) special case.
//   - Negate/Abs/Divide: the most-negative value has no positive twin.

package numeric

import (
	"cmp"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// SignedOps is the provider for int, int8, int16, int32 and int64.
type SignedOps[T constraints.Signed] struct {
	Comparator[T]
	Unsupported[T]
	name     string
	min, max T
}

// NewSignedOps builds the provider for T. Bounds are derived from the type size.
func NewSignedOps[T constraints.Signed]() *SignedOps[T] {
	var zero, maxV T
	// Grow an all-ones mask until the sign bit is reached.
	for v := T(1); v > 0; v = v<<1 | 1 {
		maxV = v
	}
	name := fmt.Sprintf("%T", zero)

	return &SignedOps[T]{
		Comparator:  Comparator[T]{Cmp: cmp.Compare[T]},
		Unsupported: Unsupported[T]{Type: name},
		name:        name,
		min:         -maxV - 1,
		max:         maxV,
	}
}

func (s *SignedOps[T]) Flags() Flags        { return Bounded | TwosComplement }
func (s *SignedOps[T]) MinValue() (T, bool) { return s.min, true }
func (s *SignedOps[T]) MaxValue() (T, bool) { return s.max, true }
func (s *SignedOps[T]) Zero() T             { return 0 }
func (s *SignedOps[T]) One() T              { return 1 }
func (s *SignedOps[T]) Epsilon() T          { return 0 }
func (s *SignedOps[T]) String() string      { return s.name }

func (s *SignedOps[T]) overflow(op string) (T, error) {
	return 0, opErrorf(s.name, op, ErrOverflow)
}

// Add returns x+y or ErrOverflow.
func (s *SignedOps[T]) Add(x, y T) (T, error) {
	r := x + y
	// Overflow iff both operands share a sign that the result does not.
	if (x >= 0) == (y >= 0) && (r >= 0) != (x >= 0) {
		return s.overflow("Add")
	}
	return r, nil
}

// Subtract returns x-y or ErrOverflow.
func (s *SignedOps[T]) Subtract(x, y T) (T, error) {
	r := x - y
	if (x >= 0) != (y >= 0) && (r >= 0) != (x >= 0) {
		return s.overflow("Subtract")
	}
	return r, nil
}

// Multiply returns x*y or ErrOverflow.
func (s *SignedOps[T]) Multiply(x, y T) (T, error) {
	if x == 0 || y == 0 {
		return 0, nil
	}
	if (x == -1 && y == s.min) || (y == -1 && x == s.min) {
		return s.overflow("Multiply")
	}
	r := x * y
	if r/y != x {
		return s.overflow("Multiply")
	}
	return r, nil
}

// Divide truncates toward zero.
func (s *SignedOps[T]) Divide(x, y T) (T, error) {
	q, _, err := s.DivideIntegralWithModulus(x, y)
	return q, err
}

// Negate returns -x; Negate(Min) overflows.
func (s *SignedOps[T]) Negate(x T) (T, error) {
	if x == s.min {
		return s.overflow("Negate")
	}
	return -x, nil
}

// Abs returns |x|; Abs(Min) overflows.
func (s *SignedOps[T]) Abs(x T) (T, error) {
	if x >= 0 {
		return x, nil
	}
	if x == s.min {
		return s.overflow("Abs")
	}
	return -x, nil
}

func (s *SignedOps[T]) Sign(x T) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// DivideIntegralWithModulus returns the truncated quotient and the modulus
// (sign of x). Division by zero and Min/-1 are rejected.
func (s *SignedOps[T]) DivideIntegralWithModulus(x, y T) (T, T, error) {
	if y == 0 {
		return 0, 0, opErrorf(s.name, "DivideIntegral", ErrDivideByZero)
	}
	if y == -1 {
		if x == s.min {
			return 0, 0, opErrorf(s.name, "DivideIntegral", ErrOverflow)
		}
		return -x, 0, nil
	}
	return x / y, x % y, nil
}

func (s *SignedOps[T]) DivideIntegral(x, y T) (T, error) {
	q, _, err := s.DivideIntegralWithModulus(x, y)
	return q, err
}

func (s *SignedOps[T]) Modulus(x, y T) (T, error) {
	_, m, err := s.DivideIntegralWithModulus(x, y)
	return m, err
}

// QuotientWithRemainder returns the floor quotient and the remainder that
// takes the sign of y.
func (s *SignedOps[T]) QuotientWithRemainder(x, y T) (T, T, error) {
	q, r, err := s.DivideIntegralWithModulus(x, y)
	if err != nil {
		return 0, 0, err
	}
	// Truncation rounded up when the signs differ and there is a remainder.
	if r != 0 && (r < 0) != (y < 0) {
		q--
		r += y
	}
	return q, r, nil
}

func (s *SignedOps[T]) Quotient(x, y T) (T, error) {
	q, _, err := s.QuotientWithRemainder(x, y)
	return q, err
}

func (s *SignedOps[T]) Remainder(x, y T) (T, error) {
	_, r, err := s.QuotientWithRemainder(x, y)
	return r, err
}

// FromInt32 converts v, failing when T is narrower than int32 and v does not fit.
func (s *SignedOps[T]) FromInt32(v int32) (T, error) {
	if int64(v) < int64(s.min) || int64(v) > int64(s.max) {
		return 0, opErrorf(s.name, "FromInt32", ErrConversion)
	}
	return T(v), nil
}

func (s *SignedOps[T]) ToInt32(x T) (int32, error) {
	if int64(x) < math.MinInt32 || int64(x) > math.MaxInt32 {
		return 0, opErrorf(s.name, "ToInt32", ErrConversion)
	}
	return int32(x), nil
}

// FromFloat64 truncates v toward zero; NaN, ±Inf and out-of-range values fail.
func (s *SignedOps[T]) FromFloat64(v float64) (T, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, opErrorf(s.name, "FromFloat64", ErrConversion)
	}
	t := math.Trunc(v)
	// float64(max) may round up to 2^(bits-1); the comparison is strict on that side.
	if t < float64(s.min) || t >= -float64(s.min) {
		return 0, opErrorf(s.name, "FromFloat64", ErrConversion)
	}
	return T(t), nil
}

func (s *SignedOps[T]) ToFloat64(x T) (float64, error) { return float64(x), nil }
