// SPDX-License-Identifier: MIT

package ntheory

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvnum/numeric"
)

// IntSqrt returns ⌊√n⌋ for n ≥ 0.
//
// Newton iteration starts from n/2+1, which is never below √n, so the sequence
// decreases monotonically and stops at the floor. No intermediate exceeds n+2.
func IntSqrt[T any](n T) (T, error) {
	ops, err := integral[T]()
	if err != nil {
		return *new(T), ntheoryErrorf(opIntSqrt, err)
	}
	if ops.Sign(n) < 0 {
		return *new(T), ntheoryErrorf(opIntSqrt, fmt.Errorf("negative operand %v: %w", n, numeric.ErrArgumentRange))
	}

	r, err := intSqrt(ops, n)
	if err != nil {
		return *new(T), ntheoryErrorf(opIntSqrt, err)
	}

	return r, nil
}

func intSqrt[T any](ops numeric.Operations[T], n T) (T, error) {
	if ops.Sign(n) == 0 {
		return ops.Zero(), nil
	}
	two, err := ops.Add(ops.One(), ops.One())
	if err != nil {
		return *new(T), err
	}
	half, err := ops.Quotient(n, two)
	if err != nil {
		return *new(T), err
	}
	x, err := ops.Add(half, ops.One())
	if err != nil {
		return *new(T), err
	}
	for {
		nx, err := ops.Quotient(n, x)
		if err != nil {
			return *new(T), err
		}
		sum, err := ops.Add(x, nx)
		if err != nil {
			return *new(T), err
		}
		y, err := ops.Quotient(sum, two)
		if err != nil {
			return *new(T), err
		}
		if ops.GreaterOrEqual(y, x) {
			return x, nil
		}
		x = y
	}
}

// FermatFactor splits n ≥ 1 into p·q with p ≤ q.
//
// Implementation:
//   - Even n returns (2, n/2) without searching.
//   - Odd n walks a from ⌊√n⌋ and b from 0 keeping the residual
//     r = a² − b² − n: a negative r advances a, a positive r advances b.
//     At r = 0, p = a − b and q = n / p.
//   - The walk ends by a = (n+1)/2 at the latest, where the only remaining
//     solution is the trivial one, so a prime n yields (1, n).
//   - r is kept as sign and magnitude and every step subtracts two values
//     ≤ n, so the search never overflows and works for unsigned T.
//
// Errors:
//   - numeric.ErrArgumentRange if n < 1.
//
// Complexity: O(n) steps in the worst case (n prime); fast when n has two
// factors close to √n.
func FermatFactor[T any](n T) (p, q T, err error) {
	ops, err := integral[T]()
	if err != nil {
		return p, q, ntheoryErrorf(opFermat, err)
	}
	if ops.Sign(n) < 1 {
		return p, q, ntheoryErrorf(opFermat, fmt.Errorf("operand %v must be ≥ 1: %w", n, numeric.ErrArgumentRange))
	}

	p, q, err = fermat(ops, n)
	if err != nil {
		return *new(T), *new(T), ntheoryErrorf(opFermat, err)
	}

	return p, q, nil
}

// residual is a sign-magnitude value; mag ≥ 0.
type residual[T any] struct {
	mag T
	neg bool
}

// shift moves r toward zero by inc ≥ 0, crossing zero if needed.
func (r *residual[T]) shift(ops numeric.Operations[T], inc T) error {
	var err error
	if ops.GreaterOrEqual(r.mag, inc) {
		r.mag, err = ops.Subtract(r.mag, inc)
		return err
	}
	r.mag, err = ops.Subtract(inc, r.mag)
	r.neg = !r.neg

	return err
}

// odd returns 2x + 1.
func odd[T any](ops numeric.Operations[T], x T) (T, error) {
	d, err := ops.Add(x, x)
	if err != nil {
		return d, err
	}

	return ops.Add(d, ops.One())
}

func fermat[T any](ops numeric.Operations[T], n T) (T, T, error) {
	var zero T
	one := ops.One()
	two, err := ops.Add(one, one)
	if err != nil {
		return zero, zero, err
	}
	half, rem, err := ops.QuotientWithRemainder(n, two)
	if err != nil {
		return zero, zero, err
	}
	if ops.Sign(rem) == 0 {
		return two, half, nil
	}

	a, err := intSqrt(ops, n)
	if err != nil {
		return zero, zero, err
	}
	aa, err := ops.Multiply(a, a) // ≤ n
	if err != nil {
		return zero, zero, err
	}
	mag, err := ops.Subtract(n, aa)
	if err != nil {
		return zero, zero, err
	}
	r := residual[T]{mag: mag, neg: true}
	b := ops.Zero()

	for ops.Sign(r.mag) != 0 {
		if r.neg {
			inc, err := odd(ops, a)
			if err != nil {
				return zero, zero, err
			}
			if err = r.shift(ops, inc); err != nil {
				return zero, zero, err
			}
			if a, err = ops.Add(a, one); err != nil {
				return zero, zero, err
			}
			continue
		}
		dec, err := odd(ops, b)
		if err != nil {
			return zero, zero, err
		}
		if err = r.shift(ops, dec); err != nil {
			return zero, zero, err
		}
		if b, err = ops.Add(b, one); err != nil {
			return zero, zero, err
		}
	}

	p, err := ops.Subtract(a, b)
	if err != nil {
		return zero, zero, err
	}
	q, err := ops.Quotient(n, p)
	if err != nil {
		return zero, zero, err
	}

	return p, q, nil
}

// Factorization returns the prime factors of n in ascending order, with
// multiplicity. n == 1 yields an empty slice; n < 1 is numeric.ErrArgumentRange.
// The result has capacity ⌊log₂ n⌋+1, the largest possible factor count.
func Factorization[T any](n T) ([]T, error) {
	ops, err := integral[T]()
	if err != nil {
		return nil, ntheoryErrorf(opFactorize, err)
	}
	if ops.Sign(n) < 1 {
		return nil, ntheoryErrorf(opFactorize, fmt.Errorf("operand %v must be ≥ 1: %w", n, numeric.ErrArgumentRange))
	}

	size, err := bitLen(ops, n)
	if err != nil {
		return nil, ntheoryErrorf(opFactorize, err)
	}
	out := make([]T, 0, size)

	// Explicit work stack instead of recursion.
	stack := []T{n}
	for len(stack) > 0 {
		m := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if ops.Equal(m, ops.One()) {
			continue
		}
		p, q, err := fermat(ops, m)
		if err != nil {
			return nil, ntheoryErrorf(opFactorize, err)
		}
		switch {
		case ops.Equal(p, ops.One()):
			out = append(out, q)
		case ops.Equal(q, ops.One()):
			out = append(out, p)
		default:
			stack = append(stack, p, q)
		}
	}
	slices.SortFunc(out, ops.Compare)

	numeric.Logger().Debug("ntheory: factorized", "n", n, "factors", len(out))

	return out, nil
}

// bitLen returns ⌊log₂ n⌋+1 for n ≥ 1.
func bitLen[T any](ops numeric.Operations[T], n T) (int, error) {
	two, err := ops.Add(ops.One(), ops.One())
	if err != nil {
		return 0, err
	}
	bits := 0
	for ops.Sign(n) > 0 {
		if n, err = ops.Quotient(n, two); err != nil {
			return 0, err
		}
		bits++
	}

	return bits, nil
}

// IsPrime reports whether n is prime. Values below 2 are not prime.
func IsPrime[T any](n T) (bool, error) {
	ops, err := integral[T]()
	if err != nil {
		return false, ntheoryErrorf(opIsPrime, err)
	}
	two, err := ops.Add(ops.One(), ops.One())
	if err != nil {
		return false, ntheoryErrorf(opIsPrime, err)
	}
	if ops.LessThan(n, two) {
		return false, nil
	}
	if ops.Equal(n, two) {
		return true, nil
	}

	p, _, err := fermat(ops, n)
	if err != nil {
		return false, ntheoryErrorf(opIsPrime, err)
	}

	return ops.Equal(p, ops.One()), nil
}
