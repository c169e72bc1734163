// SPDX-License-Identifier: MIT

package ntheory

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numeric"
)

// Pow raises base to an integer exponent for any registered T.
//
// Implementation:
//   - exp == 0 returns One, including 0⁰.
//   - Floating types delegate to the provider's Pow.
//   - Exact fractional types (rational, decimal) multiply |exp| times and
//     invert for a negative exponent, so rounding matches repeated Multiply.
//   - Integral types square and multiply with checked arithmetic.
//
// Errors:
//   - numeric.ErrArgumentRange for a negative exponent on an integral type.
//   - numeric.ErrOverflow when an integral result does not fit.
//   - numeric.ErrDivideByZero for a negative power of an exact zero.
func Pow[T any](base T, exp int) (T, error) {
	ops, err := numeric.Resolve[T]()
	if err != nil {
		return *new(T), ntheoryErrorf(opPow, err)
	}

	var out T
	flags := ops.Flags()
	switch {
	case exp == 0:
		return ops.One(), nil
	case flags.Has(numeric.Floating):
		var e T
		if e, err = ops.FromFloat64(float64(exp)); err == nil {
			out, err = ops.Pow(base, e)
		}
	case flags.Has(numeric.Fractional):
		out, err = powRepeated(ops, base, exp)
	default:
		if exp < 0 {
			return *new(T), ntheoryErrorf(opPow, fmt.Errorf("negative exponent %d for integral %T: %w", exp, base, numeric.ErrArgumentRange))
		}
		out, err = powSquaring(ops, base, exp)
	}
	if err != nil {
		return *new(T), ntheoryErrorf(opPow, err)
	}

	return out, nil
}

func powRepeated[T any](ops numeric.Operations[T], base T, exp int) (T, error) {
	n := exp
	if n < 0 {
		n = -n
	}
	acc := base
	var err error
	for i := 1; i < n; i++ {
		if acc, err = ops.Multiply(acc, base); err != nil {
			return *new(T), err
		}
	}
	if exp < 0 {
		return ops.Divide(ops.One(), acc)
	}

	return acc, nil
}

// powSquaring consumes exp bit by bit; the base is squared only while bits
// remain so the final iteration cannot overflow spuriously.
func powSquaring[T any](ops numeric.Operations[T], base T, exp int) (T, error) {
	acc := ops.One()
	var err error
	for {
		if exp&1 == 1 {
			if acc, err = ops.Multiply(acc, base); err != nil {
				return *new(T), err
			}
		}
		exp >>= 1
		if exp == 0 {
			return acc, nil
		}
		if base, err = ops.Multiply(base, base); err != nil {
			return *new(T), err
		}
	}
}
