// SPDX-License-Identifier: MIT
package ntheory_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/lvnum/ntheory"
	"github.com/katalvlaran/lvnum/numeric"
	"github.com/stretchr/testify/require"
)

// 1) TestIntSqrt checks floors, extremes and negative input.
func TestIntSqrt(t *testing.T) {
	t.Parallel()

	cases := map[int64]int64{0: 0, 1: 1, 2: 1, 3: 1, 4: 2, 15: 3, 16: 4, 99: 9, 10_000: 100, math.MaxInt64: 3037000499}
	for n, want := range cases {
		got, err := ntheory.IntSqrt(n)
		require.NoError(t, err, "n=%d", n)
		require.Equal(t, want, got, "n=%d", n)
	}

	u, err := ntheory.IntSqrt[uint8](255)
	require.NoError(t, err)
	require.Equal(t, uint8(15), u)

	i8, err := ntheory.IntSqrt[int8](127)
	require.NoError(t, err)
	require.Equal(t, int8(11), i8)

	_, err = ntheory.IntSqrt(-1)
	require.ErrorIs(t, err, numeric.ErrArgumentRange)
	_, err = ntheory.IntSqrt(2.0)
	require.ErrorIs(t, err, numeric.ErrNotSupported)
}

// 2) TestFermatFactor covers even, square, prime and near-square inputs.
func TestFermatFactor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n, p, q int
	}{
		{1, 1, 1},
		{2, 2, 1},
		{16, 2, 8},
		{9, 3, 3},
		{15, 3, 5},
		{13, 1, 13},
		{5959, 59, 101},
		{10403, 101, 103},
	}
	for _, tc := range cases {
		p, q, err := ntheory.FermatFactor(tc.n)
		require.NoError(t, err, "n=%d", tc.n)
		require.Equal(t, tc.p, p, "n=%d", tc.n)
		require.Equal(t, tc.q, q, "n=%d", tc.n)
	}

	// The residual walk never leaves the type, even at its maximum.
	p, q, err := ntheory.FermatFactor[int8](127)
	require.NoError(t, err)
	require.Equal(t, [2]int8{1, 127}, [2]int8{p, q})
	up, uq, err := ntheory.FermatFactor[uint8](255)
	require.NoError(t, err)
	require.Equal(t, [2]uint8{15, 17}, [2]uint8{up, uq})

	_, _, err = ntheory.FermatFactor(0)
	require.ErrorIs(t, err, numeric.ErrArgumentRange)
}

// 3) TestFactorization checks sorted multisets, capacity and edge values.
func TestFactorization(t *testing.T) {
	t.Parallel()

	fs, err := ntheory.Factorization(360)
	require.NoError(t, err)
	require.Equal(t, []int{2, 2, 2, 3, 3, 5}, fs)
	require.Equal(t, 9, cap(fs))

	one, err := ntheory.Factorization(1)
	require.NoError(t, err)
	require.Empty(t, one)

	for _, p := range []int{2, 3, 97, 7919} {
		fs, err = ntheory.Factorization(p)
		require.NoError(t, err)
		require.Equal(t, []int{p}, fs)
	}

	u8, err := ntheory.Factorization[uint8](255)
	require.NoError(t, err)
	require.Equal(t, []uint8{3, 5, 17}, u8)

	for _, n := range []int{0, -12} {
		_, err = ntheory.Factorization(n)
		require.ErrorIs(t, err, numeric.ErrArgumentRange)
	}
	_, err = ntheory.Factorization(12.0)
	require.ErrorIs(t, err, numeric.ErrNotSupported)
}

// 4) TestFactorization_Product verifies ∏ factors = n with prime factors.
func TestFactorization_Product(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 600; n++ {
		fs, err := ntheory.Factorization(n)
		require.NoError(t, err, "n=%d", n)
		prod := 1
		for i, f := range fs {
			ok, err := ntheory.IsPrime(f)
			require.NoError(t, err)
			require.True(t, ok, "n=%d factor %d", n, f)
			if i > 0 {
				require.LessOrEqual(t, fs[i-1], f, "sorted")
			}
			prod *= f
		}
		require.Equal(t, n, prod)
	}

	// 2^10 · 3^5 · 7^2 as *big.Int.
	n := big.NewInt(1024 * 243 * 49)
	bf, err := ntheory.Factorization(n)
	require.NoError(t, err)
	got := make([]int64, len(bf))
	for i, f := range bf {
		got[i] = f.Int64()
	}
	want := []int64{2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 3, 3, 3, 3, 3, 7, 7}
	require.Equal(t, want, got)
}

// 5) TestIsPrime covers small values and bounded extremes.
func TestIsPrime(t *testing.T) {
	t.Parallel()

	cases := map[int]bool{-7: false, 0: false, 1: false, 2: true, 3: true, 4: false, 91: false, 97: true, 561: false, 7919: true}
	for n, want := range cases {
		got, err := ntheory.IsPrime(n)
		require.NoError(t, err, "n=%d", n)
		require.Equal(t, want, got, "n=%d", n)
	}

	ok, err := ntheory.IsPrime[int8](127)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = ntheory.IsPrime[uint8](251)
	require.NoError(t, err)
	require.True(t, ok)
}
