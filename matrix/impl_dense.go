// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of any element type T with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Carry the element provider and epsilon resolved once at construction.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row/Col: O(c)/O(r).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numeric"
)

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxFromRows = "NewFromRows"
	ctxIdentity = "Identity"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxRow      = "Row"
	ctxCol      = "Col"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//   - Format: "Dense.<method>(row,col): %w"; the sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of T.
//   - r,c hold dimensions (both >= 1).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - eps is the tolerance under which elimination treats a value as zero.
//   - ops is the element provider every kernel routes arithmetic through.
//
// A Dense is safe for concurrent reads; Set is not synchronized.
type Dense[T any] struct {
	r, c   int                   // row and column counts
	data   []T                   // contiguous row-major storage (len == r*c)
	eps    T                     // elimination tolerance
	ops    numeric.Operations[T] // element provider
	format string                // per-element fmt verb used by String
}

var _ fmt.Stringer = (*Dense[float64])(nil)

// New creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation. The element provider
//     comes from WithOperations or numeric.Resolve[T]; epsilon from
//     WithEpsilon or the provider's Epsilon().
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options against T.
//   - Stage 3: allocate and fill with the provider's Zero().
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//   - numeric.ErrUnsupportedType when T has no provider.
//   - Option binding errors (see WithEpsilon).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T any](rows, cols int, opts ...Option) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(ctxNew, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions))
	}
	s, err := gatherOptions[T](opts...)
	if err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}

	return newWith(rows, cols, s), nil
}

// newWith allocates a zero-filled matrix with already-resolved settings.
// The provider's Zero() is written explicitly: a Go zero value of T is not
// guaranteed to be the numeric zero for every element type.
func newWith[T any](rows, cols int, s settings[T]) *Dense[T] {
	buf := make([]T, rows*cols)
	zero := s.ops.Zero()
	for i := range buf {
		buf[i] = zero
	}

	return &Dense[T]{r: rows, c: cols, data: buf, eps: s.eps, ops: s.ops, format: s.format}
}

// like allocates a zero matrix sharing m's provider, epsilon and format.
func (m *Dense[T]) like(rows, cols int) *Dense[T] {
	return newWith(rows, cols, m.settings())
}

func (m *Dense[T]) settings() settings[T] {
	return settings[T]{ops: m.ops, eps: m.eps, format: m.format}
}

// NewFromRows builds a matrix from a slice of equally long rows.
// The input is copied; later changes to rows do not affect the result.
//
// Errors:
//   - ErrInvalidDimensions when rows or rows[0] is empty.
//   - ErrDimensionMismatch when rows are ragged.
func NewFromRows[T any](rows [][]T, opts ...Option) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxFromRows, ErrInvalidDimensions)
	}
	c := len(rows[0])
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(ctxFromRows, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), c, ErrDimensionMismatch))
		}
	}
	m, err := New[T](len(rows), c, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}
	for i, row := range rows {
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity[T any](n int, opts ...Option) (*Dense[T], error) {
	m, err := New[T](n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(ctxIdentity, err)
	}
	one := m.ops.One()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// MustNew is like New but panics on error.
func MustNew[T any](rows, cols int, opts ...Option) *Dense[T] {
	return must[T](New[T](rows, cols, opts...))
}

// MustFromRows is like NewFromRows but panics on error.
func MustFromRows[T any](rows [][]T, opts ...Option) *Dense[T] {
	return must[T](NewFromRows(rows, opts...))
}

// MustIdentity is like Identity but panics on error.
func MustIdentity[T any](n int, opts ...Option) *Dense[T] {
	return must[T](Identity[T](n, opts...))
}

func must[T any](m *Dense[T], err error) *Dense[T] {
	if err != nil {
		panic(err)
	}

	return m
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// Epsilon returns the elimination tolerance.
func (m *Dense[T]) Epsilon() T { return m.eps }

// Operations returns the element provider.
func (m *Dense[T]) Operations() numeric.Operations[T] { return m.ops }

// indexOf bounds-checks (row,col) and computes the row-major offset.
// Returns the bare sentinel; public methods wrap it with coordinates.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
func (m *Dense[T]) Col(j int) ([]T, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Data returns a row-major copy of the elements.
func (m *Dense[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy (new buffer, same provider, epsilon and format).
// Elements are copied by value; element types with reference semantics
// (*big.Int) share their pointees, which the providers never mutate.
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp, eps: m.eps, ops: m.ops, format: m.format}
}

// swapRows exchanges rows i and k in place.
func (m *Dense[T]) swapRows(i, k int) {
	ri := m.data[i*m.c : (i+1)*m.c]
	rk := m.data[k*m.c : (k+1)*m.c]
	for j := range ri {
		ri[j], rk[j] = rk[j], ri[j]
	}
}

// isNaN reports whether v is NaN. Providers without NaN report an error,
// which counts as "not NaN".
func (m *Dense[T]) isNaN(v T) bool {
	nan, err := m.ops.IsNaN(v)

	return err == nil && nan
}

// negligible reports mag <= eps for a magnitude. NaN is never negligible:
// the providers order NaN below every number, so LessOrEqual alone would
// accept it.
func (m *Dense[T]) negligible(mag T) bool {
	return !m.isNaN(mag) && m.ops.LessOrEqual(mag, m.eps)
}

// nearZero reports |v| <= eps. An element whose magnitude cannot be
// represented (Abs overflow at the most negative bounded value) is not near zero.
func (m *Dense[T]) nearZero(v T) bool {
	a, err := m.ops.Abs(v)
	if err != nil {
		return false
	}

	return m.negligible(a)
}

// rowNearZero reports whether every element of row i in columns [c0, c1) is near zero.
func (m *Dense[T]) rowNearZero(i, c0, c1 int) bool {
	base := i * m.c
	for j := c0; j < c1; j++ {
		if !m.nearZero(m.data[base+j]) {
			return false
		}
	}

	return true
}
