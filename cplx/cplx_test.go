// SPDX-License-Identifier: MIT
package cplx_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/lvnum/cplx"
	"github.com/katalvlaran/lvnum/numeric"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func requireNear(t *testing.T, want, got cplx.Number, msg ...interface{}) {
	t.Helper()
	require.InDelta(t, want.Re, got.Re, tol, msg...)
	require.InDelta(t, want.Im, got.Im, tol, msg...)
}

// 1) TestArithmetic checks the standard formulas against complex128.
func TestArithmetic(t *testing.T) {
	t.Parallel()

	a, b := cplx.New(3, -2), cplx.New(-1, 4)
	ca, cb := a.Complex128(), b.Complex128()

	requireNear(t, cplx.FromComplex128(ca+cb), a.Add(b))
	requireNear(t, cplx.FromComplex128(ca-cb), a.Sub(b))
	requireNear(t, cplx.FromComplex128(ca*cb), a.Mul(b))
	requireNear(t, cplx.FromComplex128(ca/cb), a.Div(b))
	require.Equal(t, cplx.New(3, 2), a.Conj())
	require.InDelta(t, math.Sqrt(13), a.Abs(), tol)

	inf := cplx.New(1, 1).Div(cplx.Number{})
	require.True(t, inf.IsInf() || inf.IsNaN())
}

// 2) TestCompare orders by modulus then components.
func TestCompare(t *testing.T) {
	t.Parallel()

	require.Equal(t, -1, cplx.New(1, 1).Compare(cplx.New(0, 2)))
	require.Equal(t, 1, cplx.New(-3, 0).Compare(cplx.New(0, 2)))
	// Equal modulus: Re decides, then Im.
	require.Equal(t, -1, cplx.New(0, 1).Compare(cplx.New(1, 0)))
	require.Equal(t, -1, cplx.New(1, -0.5).Compare(cplx.New(1, 0.5)))
	require.Equal(t, 0, cplx.New(2, 3).Compare(cplx.New(2, 3)))
	require.False(t, cplx.New(2, 3).Equal(cplx.New(2, 3.0000001)))
}

// 3) TestPow_NormalizesAngle verifies powers against cmplx.Pow.
func TestPow_NormalizesAngle(t *testing.T) {
	t.Parallel()

	z := cplx.New(-1, 1)
	for n := -3; n <= 9; n++ {
		want := cplx.FromComplex128(cmplx.Pow(z.Complex128(), complex(float64(n), 0)))
		requireNear(t, want, z.Pow(n), "n=%d", n)
	}
	require.Equal(t, cplx.New(1, 0), cplx.New(5, 5).Pow(0))

	// i^4k stays on the positive real axis after the angle wraps past 2π.
	requireNear(t, cplx.Real(1), cplx.I.Pow(12))
}

// 4) TestRoots_OfMinusFour checks that every 4th root of -4 returns to -4.
func TestRoots_OfMinusFour(t *testing.T) {
	t.Parallel()

	z := cplx.Real(-4)
	roots, err := z.Roots(4)
	require.NoError(t, err)
	require.Len(t, roots, 4)
	for _, r := range roots {
		requireNear(t, z, r.Pow(4), "root %v", r)
		require.InDelta(t, math.Sqrt2, r.Abs(), tol)
	}
	// First root sits at arg/n = π/4.
	requireNear(t, cplx.New(1, 1), roots[0])

	_, err = z.Roots(1)
	require.ErrorIs(t, err, numeric.ErrArgumentRange)
}

// 5) TestParse covers the literal grammar.
func TestParse(t *testing.T) {
	t.Parallel()

	ok := []struct {
		in   string
		want cplx.Number
	}{
		{"3", cplx.New(3, 0)},
		{"-2.5", cplx.New(-2.5, 0)},
		{"i", cplx.New(0, 1)},
		{"-i", cplx.New(0, -1)},
		{"+4i", cplx.New(0, 4)},
		{"1+2i", cplx.New(1, 2)},
		{"1-i", cplx.New(1, -1)},
		{" 1.5e2 - 3i ", cplx.New(150, -3)},
		{"2i+7", cplx.New(7, 2)},
		{".5-.25i", cplx.New(0.5, -0.25)},
		{"1e-3i", cplx.New(0, 0.001)},
	}
	for _, tc := range ok {
		got, err := cplx.Parse(tc.in)
		require.NoError(t, err, "%q", tc.in)
		require.Equal(t, tc.want, got, "%q", tc.in)
	}

	bad := []string{"", "+", "1+2", "i+i", "2i-3i", "1 2", "3x", "1+2i+3", "1e", "--1", ".", "ii"}
	for _, in := range bad {
		_, err := cplx.Parse(in)
		require.ErrorIs(t, err, numeric.ErrFormat, "%q", in)
	}
}

// 6) TestString_RoundTrip formats the four shapes and parses them back.
func TestString_RoundTrip(t *testing.T) {
	t.Parallel()

	cases := map[cplx.Number]string{
		cplx.New(2, 0):     "2",
		cplx.New(0, -3):    "-3i",
		cplx.New(1.5, 2):   "1.5+2i",
		cplx.New(-1, -0.5): "-1-0.5i",
		cplx.New(1, 1e21):  "1+1e+21i",
	}
	for z, want := range cases {
		require.Equal(t, want, z.String())
		back, err := cplx.Parse(z.String())
		require.NoError(t, err)
		require.Equal(t, z, back)
	}
}

// 7) TestString_NonFinite round-trips infinite and NaN components.
func TestString_NonFinite(t *testing.T) {
	t.Parallel()

	inf, nan := math.Inf(1), math.NaN()
	cases := []struct {
		z    cplx.Number
		want string
	}{
		{cplx.New(inf, 0), "+Inf"},
		{cplx.New(0, -inf), "-Infi"},
		{cplx.New(1, inf), "1+Infi"},
		{cplx.New(-inf, -2), "-Inf-2i"},
		{cplx.New(nan, 0), "NaN"},
		{cplx.New(0, nan), "NaNi"},
		{cplx.New(1, nan), "1+NaNi"},
		{cplx.New(nan, inf), "NaN+Infi"},
	}
	same := func(a, b float64) bool { return a == b || (math.IsNaN(a) && math.IsNaN(b)) }
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.z.String())
		back, err := cplx.Parse(tc.want)
		require.NoError(t, err, tc.want)
		require.True(t, same(tc.z.Re, back.Re) && same(tc.z.Im, back.Im), "%s -> %v", tc.want, back)
	}

	for _, bad := range []string{"Infinity", "nan", "1+Inf"} {
		_, err := cplx.Parse(bad)
		require.ErrorIs(t, err, numeric.ErrFormat, bad)
	}
}

// 8) TestOps_Provider checks registration and the unsupported division family.
func TestOps_Provider(t *testing.T) {
	t.Parallel()

	ops, err := numeric.Resolve[cplx.Number]()
	require.NoError(t, err)
	require.Equal(t, numeric.Fractional|numeric.Floating, ops.Flags())

	z, err := ops.FromInt32(0)
	require.NoError(t, err)
	require.True(t, ops.Equal(z, ops.Zero()))

	_, err = ops.Quotient(cplx.New(1, 1), cplx.New(1, 0))
	require.ErrorIs(t, err, numeric.ErrNotSupported)
	_, _, err = ops.DivideIntegralWithModulus(cplx.New(1, 1), cplx.New(1, 0))
	require.ErrorIs(t, err, numeric.ErrNotSupported)
	_, err = ops.Atan2(cplx.New(1, 0), cplx.New(1, 0))
	require.ErrorIs(t, err, numeric.ErrNotSupported)

	_, err = ops.ToFloat64(cplx.I)
	require.ErrorIs(t, err, numeric.ErrConversion)
	f, err := ops.ToFloat64(cplx.Real(2.5))
	require.NoError(t, err)
	require.Equal(t, 2.5, f)

	s, err := ops.Sqrt(cplx.Real(-4))
	require.NoError(t, err)
	requireNear(t, cplx.New(0, 2), s)

	e, err := ops.Exp(cplx.New(0, math.Pi))
	require.NoError(t, err)
	requireNear(t, cplx.Real(-1), e)

	r, err := ops.Round(cplx.New(1.25, -2.5), 0, numeric.AwayFromZero)
	require.NoError(t, err)
	require.Equal(t, cplx.New(1, -3), r)

	abs, err := ops.Abs(cplx.New(3, 4))
	require.NoError(t, err)
	require.Equal(t, cplx.Real(5), abs)
	require.True(t, ops.LessThan(ops.Epsilon(), abs))
}
