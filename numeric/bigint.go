// SPDX-License-Identifier: MIT

package numeric

import (
	"math"
	"math/big"
)

// BigIntOps is the provider for arbitrary-precision integers (*big.Int).
//
// Unbounded: arithmetic never overflows. A nil operand reads as zero and
// every result is a freshly allocated value, so operands are never mutated.
type BigIntOps struct {
	Comparator[*big.Int]
	Unsupported[*big.Int]
}

const bigIntName = "*big.Int"

// NewBigIntOps builds the *big.Int provider.
func NewBigIntOps() *BigIntOps {
	return &BigIntOps{
		Comparator:  Comparator[*big.Int]{Cmp: func(x, y *big.Int) int { return bi(x).Cmp(bi(y)) }},
		Unsupported: Unsupported[*big.Int]{Type: bigIntName},
	}
}

var bigZero = new(big.Int)

// bi maps nil to zero for read-only use.
func bi(x *big.Int) *big.Int {
	if x == nil {
		return bigZero
	}
	return x
}

func (b *BigIntOps) Flags() Flags               { return 0 }
func (b *BigIntOps) MinValue() (*big.Int, bool) { return nil, false }
func (b *BigIntOps) MaxValue() (*big.Int, bool) { return nil, false }
func (b *BigIntOps) Zero() *big.Int             { return new(big.Int) }
func (b *BigIntOps) One() *big.Int              { return big.NewInt(1) }
func (b *BigIntOps) Epsilon() *big.Int          { return new(big.Int) }
func (b *BigIntOps) String() string             { return bigIntName }

func (b *BigIntOps) Add(x, y *big.Int) (*big.Int, error) {
	return new(big.Int).Add(bi(x), bi(y)), nil
}

func (b *BigIntOps) Subtract(x, y *big.Int) (*big.Int, error) {
	return new(big.Int).Sub(bi(x), bi(y)), nil
}

func (b *BigIntOps) Multiply(x, y *big.Int) (*big.Int, error) {
	return new(big.Int).Mul(bi(x), bi(y)), nil
}

func (b *BigIntOps) Divide(x, y *big.Int) (*big.Int, error) {
	return b.DivideIntegral(x, y)
}

func (b *BigIntOps) Negate(x *big.Int) (*big.Int, error) { return new(big.Int).Neg(bi(x)), nil }
func (b *BigIntOps) Abs(x *big.Int) (*big.Int, error)    { return new(big.Int).Abs(bi(x)), nil }
func (b *BigIntOps) Sign(x *big.Int) int                 { return bi(x).Sign() }

// DivideIntegralWithModulus uses big.Int.QuoRem (truncated, sign of x).
func (b *BigIntOps) DivideIntegralWithModulus(x, y *big.Int) (*big.Int, *big.Int, error) {
	if bi(y).Sign() == 0 {
		return nil, nil, opErrorf(bigIntName, "DivideIntegral", ErrDivideByZero)
	}
	q, m := new(big.Int).QuoRem(bi(x), bi(y), new(big.Int))
	return q, m, nil
}

func (b *BigIntOps) DivideIntegral(x, y *big.Int) (*big.Int, error) {
	q, _, err := b.DivideIntegralWithModulus(x, y)
	return q, err
}

func (b *BigIntOps) Modulus(x, y *big.Int) (*big.Int, error) {
	_, m, err := b.DivideIntegralWithModulus(x, y)
	return m, err
}

// QuotientWithRemainder adjusts the truncated pair toward −∞.
// big.Int.DivMod is Euclidean (remainder always ≥ 0), which differs for y < 0.
func (b *BigIntOps) QuotientWithRemainder(x, y *big.Int) (*big.Int, *big.Int, error) {
	q, r, err := b.DivideIntegralWithModulus(x, y)
	if err != nil {
		return nil, nil, err
	}
	if r.Sign() != 0 && r.Sign() != bi(y).Sign() {
		q.Sub(q, big.NewInt(1))
		r.Add(r, bi(y))
	}
	return q, r, nil
}

func (b *BigIntOps) Quotient(x, y *big.Int) (*big.Int, error) {
	q, _, err := b.QuotientWithRemainder(x, y)
	return q, err
}

func (b *BigIntOps) Remainder(x, y *big.Int) (*big.Int, error) {
	_, r, err := b.QuotientWithRemainder(x, y)
	return r, err
}

func (b *BigIntOps) FromInt32(v int32) (*big.Int, error) { return big.NewInt(int64(v)), nil }

func (b *BigIntOps) ToInt32(x *big.Int) (int32, error) {
	v := bi(x)
	if !v.IsInt64() || v.Int64() < math.MinInt32 || v.Int64() > math.MaxInt32 {
		return 0, opErrorf(bigIntName, "ToInt32", ErrConversion)
	}
	return int32(v.Int64()), nil
}

// FromFloat64 truncates v toward zero; NaN and ±Inf fail.
func (b *BigIntOps) FromFloat64(v float64) (*big.Int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, opErrorf(bigIntName, "FromFloat64", ErrConversion)
	}
	out, _ := big.NewFloat(v).Int(nil)
	return out, nil
}

// ToFloat64 returns the nearest float64; magnitudes beyond MaxFloat64 become ±Inf.
func (b *BigIntOps) ToFloat64(x *big.Int) (float64, error) {
	f, _ := new(big.Float).SetInt(bi(x)).Float64()
	return f, nil
}
