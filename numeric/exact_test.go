// SPDX-License-Identifier: MIT
package numeric_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/govalues/decimal"
	"github.com/katalvlaran/lvnum/numeric"
	"github.com/stretchr/testify/require"
)

// 1) TestBigInt_Unbounded verifies unbounded arithmetic and operand immutability.
func TestBigInt_Unbounded(t *testing.T) {
	t.Parallel()

	ops := numeric.NewBigIntOps()
	_, bounded := ops.MaxValue()
	require.False(t, bounded)
	require.True(t, ops.Flags().IsIntegral())

	x := new(big.Int).SetUint64(math.MaxUint64)
	sq, err := ops.Multiply(x, x)
	require.NoError(t, err)
	want, _ := new(big.Int).SetString("340282366920938463426481119284349108225", 10)
	require.Zero(t, want.Cmp(sq))
	require.Equal(t, uint64(math.MaxUint64), x.Uint64(), "operand must not change")

	// nil reads as zero.
	s, err := ops.Add(nil, big.NewInt(5))
	require.NoError(t, err)
	require.Equal(t, int64(5), s.Int64())
	require.True(t, ops.Equal(nil, ops.Zero()))
}

// 2) TestBigInt_DivisionFamilies checks floor and truncated division for negative divisors.
func TestBigInt_DivisionFamilies(t *testing.T) {
	t.Parallel()

	ops := numeric.NewBigIntOps()
	q, r, err := ops.QuotientWithRemainder(big.NewInt(7), big.NewInt(-2))
	require.NoError(t, err)
	require.Equal(t, int64(-4), q.Int64())
	require.Equal(t, int64(-1), r.Int64())

	q, m, err := ops.DivideIntegralWithModulus(big.NewInt(7), big.NewInt(-2))
	require.NoError(t, err)
	require.Equal(t, int64(-3), q.Int64())
	require.Equal(t, int64(1), m.Int64())

	_, err = ops.Divide(big.NewInt(1), nil)
	require.ErrorIs(t, err, numeric.ErrDivideByZero)

	_, err = ops.ToInt32(new(big.Int).Lsh(big.NewInt(1), 40))
	require.ErrorIs(t, err, numeric.ErrConversion)
	_, err = ops.FromFloat64(math.NaN())
	require.ErrorIs(t, err, numeric.ErrConversion)
	v, err := ops.FromFloat64(-2.7)
	require.NoError(t, err)
	require.Equal(t, int64(-2), v.Int64())
}

// 3) TestDecimal_Arithmetic covers exact arithmetic and error translation.
func TestDecimal_Arithmetic(t *testing.T) {
	t.Parallel()

	ops := numeric.NewDecimalOps()
	d := decimal.MustParse

	sum, err := ops.Add(d("0.1"), d("0.2"))
	require.NoError(t, err)
	require.True(t, ops.Equal(d("0.3"), sum))

	_, err = ops.Divide(d("1"), ops.Zero())
	require.ErrorIs(t, err, numeric.ErrDivideByZero)

	hi, _ := ops.MaxValue()
	_, err = ops.Add(hi, ops.One())
	require.ErrorIs(t, err, numeric.ErrOverflow)

	q, r, err := ops.QuotientWithRemainder(d("-7.5"), d("2"))
	require.NoError(t, err)
	require.True(t, ops.Equal(d("-4"), q), "q=%v", q)
	require.True(t, ops.Equal(d("0.5"), r), "r=%v", r)

	q, m, err := ops.DivideIntegralWithModulus(d("-7.5"), d("2"))
	require.NoError(t, err)
	require.True(t, ops.Equal(d("-3"), q))
	require.True(t, ops.Equal(d("-1.5"), m))

	i, err := ops.ToInt32(d("-12.9"))
	require.NoError(t, err)
	require.Equal(t, int32(-12), i)

	_, err = ops.Sqrt(d("4"))
	require.ErrorIs(t, err, numeric.ErrNotSupported)

	// Divide rounds; the residue of (1/3)·3 stays inside Epsilon.
	third, err := ops.Divide(ops.One(), d("3"))
	require.NoError(t, err)
	back, err := ops.Multiply(third, d("3"))
	require.NoError(t, err)
	require.False(t, ops.Equal(ops.One(), back))
	res, err := ops.Subtract(ops.One(), back)
	require.NoError(t, err)
	require.True(t, ops.LessOrEqual(res, ops.Epsilon()), "res=%v", res)
	require.Zero(t, numeric.DefaultDecimalEpsilon.Cmp(ops.Epsilon()))
}

// 4) TestDecimal_Round verifies the three midpoint modes on exact halves.
func TestDecimal_Round(t *testing.T) {
	t.Parallel()

	ops := numeric.NewDecimalOps()
	d := decimal.MustParse
	cases := []struct {
		in   string
		mode numeric.Midpoint
		want string
	}{
		{"2.345", numeric.ToEven, "2.34"},
		{"2.355", numeric.ToEven, "2.36"},
		{"2.345", numeric.AwayFromZero, "2.35"},
		{"-2.345", numeric.AwayFromZero, "-2.35"},
		{"2.345", numeric.ToZero, "2.34"},
		{"2.346", numeric.ToZero, "2.35"},
		{"-2.344", numeric.AwayFromZero, "-2.34"},
	}
	for _, tc := range cases {
		got, err := ops.Round(d(tc.in), 2, tc.mode)
		require.NoError(t, err)
		require.True(t, ops.Equal(d(tc.want), got), "Round(%s, %v) = %v", tc.in, tc.mode, got)
	}

	_, err := ops.Round(d("1"), 20, numeric.ToEven)
	require.ErrorIs(t, err, numeric.ErrArgumentRange)

	f, err := ops.Floor(d("-1.5"))
	require.NoError(t, err)
	require.True(t, ops.Equal(d("-2"), f))
}
