// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and comparison utilities.
//   • Keep float data finite and well-conditioned so tolerances stay tight.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/rational"
	"github.com/stretchr/testify/require"
)

// tol is the float64 comparison tolerance used across the suite.
const tol = 1e-9

// MustRows builds a *Dense from rows or fails the test.
func MustRows[T any](t testing.TB, rows [][]T, opts ...matrix.Option) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewFromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// RatRows builds a rational matrix from "n" / "n/d" literals.
func RatRows(t testing.TB, rows [][]string) *matrix.Dense[rational.Rational] {
	t.Helper()
	out := make([][]rational.Rational, len(rows))
	for i, row := range rows {
		out[i] = make([]rational.Rational, len(row))
		for j, s := range row {
			v, err := rational.Parse(s)
			require.NoError(t, err, "(%d,%d) %q", i, j, s)
			out[i][j] = v
		}
	}

	return MustRows(t, out)
}

// CompareExact asserts m equals want element by element.
func CompareExact[T any](t *testing.T, want [][]T, m *matrix.Dense[T]) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		row, err := m.Row(i)
		require.NoError(t, err)
		require.Equal(t, want[i], row, "row %d", i)
	}
}

// CompareClose asserts m ≈ want within tol element by element.
func CompareClose(t *testing.T, want [][]float64, m *matrix.Dense[float64]) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	for i := range want {
		for j := range want[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.InDelta(t, want[i][j], v, tol, "(%d,%d)", i, j)
		}
	}
}

// RatString renders every element for compact exact comparisons.
func RatString(t *testing.T, m *matrix.Dense[rational.Rational]) [][]string {
	t.Helper()
	out := make([][]string, m.Rows())
	for i := range out {
		row, err := m.Row(i)
		require.NoError(t, err)
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = v.String()
		}
	}

	return out
}

// RandFilled returns an r×c float64 matrix with entries in [-1, 1) from a fixed seed.
// A diagonal boost keeps square instances well-conditioned.
func RandFilled(t testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
		if i < c {
			rows[i][i] += float64(c)
		}
	}

	return MustRows(t, rows)
}

// requireUnchanged asserts that m still holds data (non-mutation checks).
func requireUnchanged[T any](t *testing.T, data []T, m *matrix.Dense[T]) {
	t.Helper()
	require.Equal(t, data, m.Data(), "receiver was mutated")
}
