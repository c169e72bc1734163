// SPDX-License-Identifier: MIT

// Package rational implements an exact rational number over arbitrary-precision
// integers, kept in lowest terms after every operation.
//
// Representation invariants (hold for every reachable value):
//   - gcd(|num|, den) == 1 and den > 0, or
//   - the value is the canonical Zero: num == 0 and den == 0.
//
// The zero value of Rational is the canonical Zero. A zero numerator or a zero
// denominator passed to any constructor collapses to it, so New(3, 0) is Zero
// rather than an undefined value. Division by Zero through Quo or Inv is an
// error.
//
// Rational values are immutable; the *big.Int fields are never modified after
// construction and accessors return copies. Values are safe for concurrent use.
//
// Importing the package registers the provider with numeric.Default(), so
// numeric.Resolve[rational.Rational]() and every generic algorithm in the
// module (matrix, ntheory) work over rationals without further setup.
package rational

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvnum/numeric"
)

// Rational is an exact fraction num/den.
type Rational struct {
	num *big.Int // nil for Zero
	den *big.Int // nil for Zero
}

// Zero is the canonical zero (0/0).
var Zero = Rational{}

var bigOne = big.NewInt(1)

// rationalErrorf tags err with the operation name.
func rationalErrorf(op string, err error) error {
	return fmt.Errorf("rational.%s: %w", op, err)
}

// New returns n/d in lowest terms. d == 0 yields Zero.
func New(n, d int64) Rational {
	return reduce(big.NewInt(n), big.NewInt(d))
}

// FromInt returns n/1.
func FromInt(n int64) Rational {
	return reduce(big.NewInt(n), big.NewInt(1))
}

// NewBig returns n/d in lowest terms. The arguments are copied; nil reads as 0.
func NewBig(n, d *big.Int) Rational {
	if n == nil || d == nil {
		return Zero
	}
	return reduce(new(big.Int).Set(n), new(big.Int).Set(d))
}

// reduce normalizes n/d, taking ownership of both arguments.
func reduce(n, d *big.Int) Rational {
	if n.Sign() == 0 || d.Sign() == 0 {
		return Zero
	}
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	if g.Cmp(bigOne) != 0 {
		n.Quo(n, g)
		d.Quo(d, g)
	}
	return Rational{num: n, den: d}
}

// Num returns a copy of the numerator.
func (r Rational) Num() *big.Int {
	if r.num == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(r.num)
}

// Denom returns a copy of the denominator: 0 for Zero, positive otherwise.
func (r Rational) Denom() *big.Int {
	if r.den == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(r.den)
}

func (r Rational) IsZero() bool { return r.num == nil || r.num.Sign() == 0 }

// Sign returns -1, 0 or +1.
func (r Rational) Sign() int {
	if r.IsZero() {
		return 0
	}
	return r.num.Sign()
}

// IsInteger reports whether the denominator is 1 (Zero counts as an integer).
func (r Rational) IsInteger() bool { return r.IsZero() || r.den.Cmp(bigOne) == 0 }

// Add returns r + s. The common denominator is built from gcd(b, d) so the
// intermediate product is b·d/g rather than b·d.
func (r Rational) Add(s Rational) Rational {
	switch {
	case r.IsZero():
		return s
	case s.IsZero():
		return r
	}
	return combine(r, s, false)
}

// Sub returns r - s.
func (r Rational) Sub(s Rational) Rational {
	switch {
	case s.IsZero():
		return r
	case r.IsZero():
		return s.Neg()
	}
	return combine(r, s, true)
}

// combine computes a/b ± c/d.
func combine(r, s Rational, subtract bool) Rational {
	a, b, c, d := r.num, r.den, s.num, s.den
	g := new(big.Int).GCD(nil, nil, b, d)
	if g.Cmp(bigOne) == 0 {
		left := new(big.Int).Mul(a, d)
		right := new(big.Int).Mul(c, b)
		if subtract {
			left.Sub(left, right)
		} else {
			left.Add(left, right)
		}
		return reduce(left, new(big.Int).Mul(b, d))
	}
	bg := new(big.Int).Quo(b, g)
	dg := new(big.Int).Quo(d, g)
	left := new(big.Int).Mul(a, dg)
	right := new(big.Int).Mul(c, bg)
	if subtract {
		left.Sub(left, right)
	} else {
		left.Add(left, right)
	}
	return reduce(left, bg.Mul(bg, d))
}

// Mul returns r · s.
func (r Rational) Mul(s Rational) Rational {
	if r.IsZero() || s.IsZero() {
		return Zero
	}
	return reduce(new(big.Int).Mul(r.num, s.num), new(big.Int).Mul(r.den, s.den))
}

// Quo returns r / s, or numeric.ErrDivideByZero when s is Zero.
func (r Rational) Quo(s Rational) (Rational, error) {
	if s.IsZero() {
		return Zero, rationalErrorf("Quo", numeric.ErrDivideByZero)
	}
	if r.IsZero() {
		return Zero, nil
	}
	return reduce(new(big.Int).Mul(r.num, s.den), new(big.Int).Mul(r.den, s.num)), nil
}

// Inv returns 1 / r, or numeric.ErrDivideByZero when r is Zero.
func (r Rational) Inv() (Rational, error) {
	if r.IsZero() {
		return Zero, rationalErrorf("Inv", numeric.ErrDivideByZero)
	}
	return reduce(new(big.Int).Set(r.den), new(big.Int).Set(r.num)), nil
}

func (r Rational) Neg() Rational {
	if r.IsZero() {
		return Zero
	}
	return Rational{num: new(big.Int).Neg(r.num), den: r.den}
}

func (r Rational) Abs() Rational {
	if r.Sign() >= 0 {
		return r
	}
	return r.Neg()
}

// Cmp returns -1, 0 or +1 as r <, ==, > s. Cross multiplication uses the
// reduced denominators b/g and d/g.
func (r Rational) Cmp(s Rational) int {
	rs, ss := r.Sign(), s.Sign()
	if rs != ss || rs == 0 {
		switch {
		case rs < ss:
			return -1
		case rs > ss:
			return 1
		default:
			return 0
		}
	}
	g := new(big.Int).GCD(nil, nil, r.den, s.den)
	left := new(big.Int).Quo(s.den, g)
	left.Mul(left, r.num)
	right := new(big.Int).Quo(r.den, g)
	right.Mul(right, s.num)
	return left.Cmp(right)
}

// Equal reports whether r and s denote the same value.
func (r Rational) Equal(s Rational) bool { return r.Cmp(s) == 0 }

// Trunc returns the integer part of r, rounded toward zero.
func (r Rational) Trunc() Rational {
	if r.IsInteger() {
		return r
	}
	return reduce(new(big.Int).Quo(r.num, r.den), big.NewInt(1))
}

// Floor returns the greatest integer ≤ r.
func (r Rational) Floor() Rational {
	if r.IsInteger() {
		return r
	}
	q := new(big.Int).Quo(r.num, r.den)
	if r.num.Sign() < 0 {
		q.Sub(q, bigOne)
	}
	return reduce(q, big.NewInt(1))
}

// Ceil returns the least integer ≥ r.
func (r Rational) Ceil() Rational {
	if r.IsInteger() {
		return r
	}
	q := new(big.Int).Quo(r.num, r.den)
	if r.num.Sign() > 0 {
		q.Add(q, bigOne)
	}
	return reduce(q, big.NewInt(1))
}

// Round rounds r to digits decimal places (digits ≥ 0), resolving exact halves
// by mode. The result is exact: k / 10^digits in lowest terms.
func (r Rational) Round(digits int, mode numeric.Midpoint) (Rational, error) {
	if digits < 0 {
		return Zero, rationalErrorf("Round", numeric.ErrArgumentRange)
	}
	if r.IsZero() {
		return Zero, nil
	}
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	n := new(big.Int).Mul(r.num, scale)
	q, rem := new(big.Int).QuoRem(n, r.den, new(big.Int))

	// Compare 2·|rem| with den to locate the fraction relative to one half.
	twice := rem.Abs(rem)
	twice.Lsh(twice, 1)
	half := twice.Cmp(r.den)

	step := false
	switch mode {
	case numeric.ToEven:
		step = half > 0 || (half == 0 && q.Bit(0) == 1)
	case numeric.AwayFromZero:
		step = half >= 0
	case numeric.ToZero:
		step = half > 0
	default:
		return Zero, rationalErrorf("Round", numeric.ErrArgumentRange)
	}
	if step {
		q.Add(q, big.NewInt(int64(r.num.Sign())))
	}
	return reduce(q, scale), nil
}

// Float64 returns the nearest float64 and whether it is exact.
func (r Rational) Float64() (float64, bool) {
	if r.IsZero() {
		return 0, true
	}
	return new(big.Rat).SetFrac(r.num, r.den).Float64()
}
