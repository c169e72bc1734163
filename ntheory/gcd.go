// SPDX-License-Identifier: MIT

package ntheory

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numeric"
)

// Operation tags used in wrapped errors.
const (
	opGCD       = "GCD"
	opExtGCD    = "ExtendedGCD"
	opLCM       = "LCM"
	opLCMOf     = "LCMOf"
	opIntSqrt   = "IntSqrt"
	opFermat    = "FermatFactor"
	opFactorize = "Factorization"
	opIsPrime   = "IsPrime"
	opPow       = "Pow"
)

// ntheoryErrorf prefixes err with the operation tag.
func ntheoryErrorf(op string, err error) error {
	return fmt.Errorf("ntheory.%s: %w", op, err)
}

// integral resolves the provider for T and rejects fractional types.
func integral[T any]() (numeric.Operations[T], error) {
	ops, err := numeric.Resolve[T]()
	if err != nil {
		return nil, err
	}
	if !ops.Flags().IsIntegral() {
		return nil, fmt.Errorf("%T is not integral: %w", *new(T), numeric.ErrNotSupported)
	}

	return ops, nil
}

// positive validates that every value is > 0.
func positive[T any](ops numeric.Operations[T], values ...T) error {
	for _, v := range values {
		if ops.Sign(v) <= 0 {
			return fmt.Errorf("operand %v must be > 0: %w", v, numeric.ErrArgumentRange)
		}
	}

	return nil
}

// GCD returns the greatest common divisor of a and b.
//
// Implementation:
//   - Iterative Euclid: (a, b) ← (b, a mod b) until b is zero.
//
// Errors:
//   - numeric.ErrArgumentRange if a ≤ 0 or b ≤ 0.
//   - numeric.ErrNotSupported for fractional T.
//
// Complexity: O(log min(a, b)) provider operations.
func GCD[T any](a, b T) (T, error) {
	ops, err := integral[T]()
	if err != nil {
		return *new(T), ntheoryErrorf(opGCD, err)
	}
	if err = positive(ops, a, b); err != nil {
		return *new(T), ntheoryErrorf(opGCD, err)
	}

	g, err := gcd(ops, a, b)
	if err != nil {
		return *new(T), ntheoryErrorf(opGCD, err)
	}

	return g, nil
}

func gcd[T any](ops numeric.Operations[T], a, b T) (T, error) {
	for ops.Sign(b) != 0 {
		r, err := ops.Remainder(a, b)
		if err != nil {
			return *new(T), err
		}
		a, b = b, r
	}

	return a, nil
}

// ExtendedGCD returns g = gcd(a, b) together with integers x, y such that
// a·x + b·y = g. Preconditions match GCD; for unsigned T the coefficient that
// would be negative cannot be represented and surfaces as numeric.ErrOverflow.
func ExtendedGCD[T any](a, b T) (g, x, y T, err error) {
	var zero T
	ops, err := integral[T]()
	if err != nil {
		return zero, zero, zero, ntheoryErrorf(opExtGCD, err)
	}
	if err = positive(ops, a, b); err != nil {
		return zero, zero, zero, ntheoryErrorf(opExtGCD, err)
	}

	oldR, r := a, b
	oldS, s := ops.One(), ops.Zero()
	oldT, t := ops.Zero(), ops.One()
	for ops.Sign(r) != 0 {
		q, err := ops.Quotient(oldR, r)
		if err != nil {
			return zero, zero, zero, ntheoryErrorf(opExtGCD, err)
		}
		if oldR, r, err = step(ops, oldR, r, q); err != nil {
			return zero, zero, zero, ntheoryErrorf(opExtGCD, err)
		}
		if oldS, s, err = step(ops, oldS, s, q); err != nil {
			return zero, zero, zero, ntheoryErrorf(opExtGCD, err)
		}
		if oldT, t, err = step(ops, oldT, t, q); err != nil {
			return zero, zero, zero, ntheoryErrorf(opExtGCD, err)
		}
	}

	return oldR, oldS, oldT, nil
}

// step advances one Euclid row: (prev, cur) → (cur, prev − q·cur).
func step[T any](ops numeric.Operations[T], prev, cur, q T) (T, T, error) {
	qc, err := ops.Multiply(q, cur)
	if err != nil {
		return prev, cur, err
	}
	next, err := ops.Subtract(prev, qc)
	if err != nil {
		return prev, cur, err
	}

	return cur, next, nil
}

// LCM returns the least common multiple a·b / gcd(a, b).
// The quotient a / gcd is taken first so the intermediate never exceeds the
// result; ErrOverflow means the LCM itself does not fit in T.
func LCM[T any](a, b T) (T, error) {
	ops, err := integral[T]()
	if err != nil {
		return *new(T), ntheoryErrorf(opLCM, err)
	}
	if err = positive(ops, a, b); err != nil {
		return *new(T), ntheoryErrorf(opLCM, err)
	}

	l, err := lcm(ops, a, b)
	if err != nil {
		return *new(T), ntheoryErrorf(opLCM, err)
	}

	return l, nil
}

func lcm[T any](ops numeric.Operations[T], a, b T) (T, error) {
	g, err := gcd(ops, a, b)
	if err != nil {
		return *new(T), err
	}
	q, err := ops.Quotient(a, g)
	if err != nil {
		return *new(T), err
	}

	return ops.Multiply(q, b)
}

// LCMOf folds LCM over values. At least one value is required.
func LCMOf[T any](values ...T) (T, error) {
	ops, err := integral[T]()
	if err != nil {
		return *new(T), ntheoryErrorf(opLCMOf, err)
	}
	if len(values) == 0 {
		return *new(T), ntheoryErrorf(opLCMOf, fmt.Errorf("no values: %w", numeric.ErrArgumentRange))
	}
	if err = positive(ops, values...); err != nil {
		return *new(T), ntheoryErrorf(opLCMOf, err)
	}

	acc := values[0]
	for _, v := range values[1:] {
		if acc, err = lcm(ops, acc, v); err != nil {
			return *new(T), ntheoryErrorf(opLCMOf, err)
		}
	}

	return acc, nil
}
