// SPDX-License-Identifier: MIT
package rational_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/numeric"
	"github.com/katalvlaran/lvnum/rational"
	"github.com/stretchr/testify/require"
)

// 1) TestOps_Registered resolves the provider through the default registry.
func TestOps_Registered(t *testing.T) {
	t.Parallel()

	ops, err := numeric.Resolve[rational.Rational]()
	require.NoError(t, err)
	require.Equal(t, numeric.Fractional, ops.Flags())
	_, bounded := ops.MaxValue()
	require.False(t, bounded)

	z, err := ops.FromInt32(0)
	require.NoError(t, err)
	require.True(t, ops.Equal(z, ops.Zero()))
	require.True(t, ops.Epsilon().IsZero())
}

// 2) TestOps_DivisionFamilies checks floor and truncated division on fractions.
func TestOps_DivisionFamilies(t *testing.T) {
	t.Parallel()

	ops := rational.NewOps()
	x, y := rational.New(-7, 2), rational.New(3, 2) // -3.5 / 1.5 = -2.33…

	q, r, err := ops.QuotientWithRemainder(x, y)
	require.NoError(t, err)
	require.Equal(t, "-3", q.String())
	require.Equal(t, "1", r.String())

	q, m, err := ops.DivideIntegralWithModulus(x, y)
	require.NoError(t, err)
	require.Equal(t, "-2", q.String())
	require.Equal(t, "-1/2", m.String())

	_, err = ops.Remainder(x, rational.Zero)
	require.ErrorIs(t, err, numeric.ErrDivideByZero)
	_, err = ops.Divide(x, rational.Zero)
	require.ErrorIs(t, err, numeric.ErrDivideByZero)
}

// 3) TestOps_Conversions covers the int32 and float64 bridges.
func TestOps_Conversions(t *testing.T) {
	t.Parallel()

	ops := rational.NewOps()
	v, err := ops.ToInt32(rational.New(-9, 2))
	require.NoError(t, err)
	require.Equal(t, int32(-4), v)
	_, err = ops.ToInt32(rational.FromInt(math.MaxInt32 + 1))
	require.ErrorIs(t, err, numeric.ErrConversion)

	pi, err := ops.Pi()
	require.NoError(t, err)
	f, err := ops.ToFloat64(pi)
	require.NoError(t, err)
	require.InDelta(t, math.Pi, f, 1e-14)

	h, err := ops.FromFloat64(0.125)
	require.NoError(t, err)
	require.Equal(t, "1/8", h.String())

	_, err = ops.Sqrt(rational.FromInt(4))
	require.ErrorIs(t, err, numeric.ErrNotSupported)
	_, err = ops.IsNaN(rational.Zero)
	require.ErrorIs(t, err, numeric.ErrNotSupported)

	c, err := ops.Ceiling(rational.New(1, 3))
	require.NoError(t, err)
	require.Equal(t, "1", c.String())
}
