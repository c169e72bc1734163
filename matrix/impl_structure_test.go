// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/numeric"
	"github.com/stretchr/testify/require"
)

// 1) TestMinor removes one row and one column.
func TestMinor(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	mn, err := m.Minor(1, 0)
	require.NoError(t, err)
	CompareExact(t, [][]int{{2, 3}, {8, 9}}, mn)

	_, err = MustRows(t, [][]int{{1, 2}}).Minor(0, 0)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = MustRows(t, [][]int{{1}}).Minor(0, 0)
	require.ErrorIs(t, err, matrix.ErrTooSmall)
	_, err = m.Minor(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// 2) TestAppend concatenates along rows and columns.
func TestAppend(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]int{{1, 2}, {3, 4}})
	b := MustRows(t, [][]int{{5, 6}})
	c := MustRows(t, [][]int{{7}, {8}})

	r, err := matrix.AppendRows(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]int{{1, 2}, {3, 4}, {5, 6}}, r)

	cc, err := matrix.AppendCols(a, c)
	require.NoError(t, err)
	CompareExact(t, [][]int{{1, 2, 7}, {3, 4, 8}}, cc)

	_, err = matrix.AppendRows(a, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.AppendCols(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// 3) TestSubMatrix copies a window and validates its bounds.
func TestSubMatrix(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]int{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	s, err := m.SubMatrix(1, 1, 2, 2)
	require.NoError(t, err)
	CompareExact(t, [][]int{{5, 6}, {8, 9}}, s)

	require.NoError(t, s.Set(0, 0, 50))
	v, _ := m.At(1, 1)
	require.Equal(t, 5, v)

	_, err = m.SubMatrix(2, 2, 2, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.SubMatrix(0, 0, 0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// 4) TestEqual_WithinEpsilon documents approximate equality.
//
// Two matrices are equal iff shapes match and EVERY elementwise difference is
// within epsilon. The historical check this replaces returned false as soon
// as it found a difference within epsilon, i.e. it reported equality only when
// every difference exceeded epsilon. The cases below would all flip under it.
func TestEqual_WithinEpsilon(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2}, {3, 4}}, matrix.WithEpsilon(1e-6))
	near := MustRows(t, [][]float64{{1 + 1e-9, 2}, {3, 4 - 1e-9}})
	far := MustRows(t, [][]float64{{1 + 1e-3, 2 + 1e-3}, {3 + 1e-3, 4 + 1e-3}})

	require.True(t, matrix.Equal(a, a.Clone()), "identical")
	require.True(t, matrix.Equal(a, near), "all differences within eps")
	require.False(t, matrix.Equal(a, far), "all differences beyond eps")
	require.False(t, matrix.Equal(a, MustRows(t, [][]float64{{1, 2, 0}, {3, 4, 0}})), "shape")

	// Exact providers compare exactly.
	ri := MustRows(t, [][]int8{{-128, 0}})
	require.True(t, matrix.Equal(ri, ri.Clone()))
	require.False(t, matrix.Equal(ri, MustRows(t, [][]int8{{127, 0}})), "overflowing difference is unequal")
}

// 5) TestEqual_NonFinite rejects NaN and infinite differences.
func TestEqual_NonFinite(t *testing.T) {
	t.Parallel()

	nan, inf := math.NaN(), math.Inf(1)
	require.False(t, matrix.Equal(MustRows(t, [][]float64{{nan, 2}}), MustRows(t, [][]float64{{1000, 2}})))
	require.False(t, matrix.Equal(MustRows(t, [][]float64{{1000, 2}}), MustRows(t, [][]float64{{nan, 2}})))
	require.False(t, matrix.Equal(MustRows(t, [][]float64{{nan}}), MustRows(t, [][]float64{{nan}})))

	// Inf − Inf is NaN, Inf − 1 is Inf: neither is within epsilon.
	require.False(t, matrix.Equal(MustRows(t, [][]float64{{inf, 2}}), MustRows(t, [][]float64{{inf, 2}})))
	require.False(t, matrix.Equal(MustRows(t, [][]float64{{inf}}), MustRows(t, [][]float64{{1}})))
	require.False(t, matrix.Equal(MustRows(t, [][]float64{{-inf}}), MustRows(t, [][]float64{{1}})))

	f32 := MustRows(t, [][]float32{{float32(nan)}})
	require.False(t, matrix.Equal(f32, MustRows(t, [][]float32{{0}})))
}

// 6) TestFormat covers width tokens, verbs and malformed specs.
func TestFormat(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, -2.5}, {3, 4}})
	require.Equal(t, "[1, -2.5]\n[3, 4]\n", m.String())

	s, err := m.Format("W6%.2f")
	require.NoError(t, err)
	require.Equal(t, "[  1.00,  -2.50]\n[  3.00,   4.00]\n", s)

	s, err = m.Format("W4")
	require.NoError(t, err)
	require.Equal(t, "[   1, -2.5]\n[   3,    4]\n", s)

	s, err = m.Format("%g")
	require.NoError(t, err)
	require.Equal(t, m.String(), s)

	for _, bad := range []string{"W", "W%v", "F2", "Wx%v"} {
		_, err = m.Format(bad)
		require.ErrorIs(t, err, numeric.ErrFormat, "%q", bad)
	}

	custom := MustRows(t, [][]float64{{0.5}}, matrix.WithElementFormat("%.3e"))
	require.Equal(t, "[5.000e-01]\n", custom.String())
	tr := matrix.Transpose(custom)
	require.Equal(t, custom.String(), tr.String(), "format is inherited")

	q := RatRows(t, [][]string{{"1/2", "-3"}})
	require.Equal(t, "[1/2, -3]\n", q.String())
}
