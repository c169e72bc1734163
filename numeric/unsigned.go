// SPDX-License-Identifier: MIT

package numeric

import (
	"cmp"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// UnsignedOps is the checked provider for uint, uint8, uint16, uint32, uint64 and
// uintptr. Floor and truncated division coincide for unsigned operands.
type UnsignedOps[T constraints.Unsigned] struct {
	Comparator[T]
	Unsupported[T]
	name string
	max  T
}

// NewUnsignedOps builds the provider for T.
func NewUnsignedOps[T constraints.Unsigned]() *UnsignedOps[T] {
	var zero T
	name := fmt.Sprintf("%T", zero)

	return &UnsignedOps[T]{
		Comparator:  Comparator[T]{Cmp: cmp.Compare[T]},
		Unsupported: Unsupported[T]{Type: name},
		name:        name,
		max:         ^zero,
	}
}

func (u *UnsignedOps[T]) Flags() Flags        { return Bounded | Unsigned }
func (u *UnsignedOps[T]) MinValue() (T, bool) { return 0, true }
func (u *UnsignedOps[T]) MaxValue() (T, bool) { return u.max, true }
func (u *UnsignedOps[T]) Zero() T             { return 0 }
func (u *UnsignedOps[T]) One() T              { return 1 }
func (u *UnsignedOps[T]) Epsilon() T          { return 0 }
func (u *UnsignedOps[T]) String() string      { return u.name }
func (u *UnsignedOps[T]) Abs(x T) (T, error)  { return x, nil }

func (u *UnsignedOps[T]) overflow(op string) (T, error) {
	return 0, opErrorf(u.name, op, ErrOverflow)
}

func (u *UnsignedOps[T]) Add(x, y T) (T, error) {
	r := x + y
	if r < x {
		return u.overflow("Add")
	}
	return r, nil
}

func (u *UnsignedOps[T]) Subtract(x, y T) (T, error) {
	if y > x {
		return u.overflow("Subtract")
	}
	return x - y, nil
}

func (u *UnsignedOps[T]) Multiply(x, y T) (T, error) {
	if x == 0 || y == 0 {
		return 0, nil
	}
	r := x * y
	if r/y != x {
		return u.overflow("Multiply")
	}
	return r, nil
}

func (u *UnsignedOps[T]) Divide(x, y T) (T, error) {
	q, _, err := u.DivideIntegralWithModulus(x, y)
	return q, err
}

// Negate succeeds only for zero.
func (u *UnsignedOps[T]) Negate(x T) (T, error) {
	if x != 0 {
		return u.overflow("Negate")
	}
	return 0, nil
}

func (u *UnsignedOps[T]) Sign(x T) int {
	if x == 0 {
		return 0
	}
	return 1
}

func (u *UnsignedOps[T]) DivideIntegralWithModulus(x, y T) (T, T, error) {
	if y == 0 {
		return 0, 0, opErrorf(u.name, "DivideIntegral", ErrDivideByZero)
	}
	return x / y, x % y, nil
}

func (u *UnsignedOps[T]) QuotientWithRemainder(x, y T) (T, T, error) {
	return u.DivideIntegralWithModulus(x, y)
}

func (u *UnsignedOps[T]) DivideIntegral(x, y T) (T, error) { return u.Divide(x, y) }
func (u *UnsignedOps[T]) Quotient(x, y T) (T, error)       { return u.Divide(x, y) }

func (u *UnsignedOps[T]) Modulus(x, y T) (T, error) {
	_, m, err := u.DivideIntegralWithModulus(x, y)
	return m, err
}

func (u *UnsignedOps[T]) Remainder(x, y T) (T, error) { return u.Modulus(x, y) }

func (u *UnsignedOps[T]) FromInt32(v int32) (T, error) {
	if v < 0 || uint64(v) > uint64(u.max) {
		return 0, opErrorf(u.name, "FromInt32", ErrConversion)
	}
	return T(v), nil
}

func (u *UnsignedOps[T]) ToInt32(x T) (int32, error) {
	if uint64(x) > math.MaxInt32 {
		return 0, opErrorf(u.name, "ToInt32", ErrConversion)
	}
	return int32(x), nil
}

// FromFloat64 truncates v toward zero; negative, NaN, ±Inf and out-of-range
// values fail.
func (u *UnsignedOps[T]) FromFloat64(v float64) (T, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, opErrorf(u.name, "FromFloat64", ErrConversion)
	}
	t := math.Trunc(v)
	// float64(max) rounds up to 2^bits for 64-bit types, so the upper check is strict.
	if t < 0 || t >= float64(u.max)+1 {
		return 0, opErrorf(u.name, "FromFloat64", ErrConversion)
	}
	return T(t), nil
}

func (u *UnsignedOps[T]) ToFloat64(x T) (float64, error) { return float64(x), nil }
