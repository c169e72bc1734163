// SPDX-License-Identifier: MIT

// Package matrix - structural operations: minors, windows, concatenation, equality.
// All results are freshly allocated copies that inherit the receiver's
// (or left operand's) provider, epsilon and element format.
package matrix

import "fmt"

const (
	opMinor      = "Minor"
	opSubMatrix  = "SubMatrix"
	opAppendRows = "AppendRows"
	opAppendCols = "AppendCols"
)

// Minor returns M with row `row` and column `col` removed.
//
// Errors:
//   - ErrNonSquare when M is not square.
//   - ErrTooSmall when M is 1×1.
//   - ErrOutOfRange when row or col is outside M.
func (m *Dense[T]) Minor(row, col int) (*Dense[T], error) {
	if err := validateSquare(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if m.r <= 1 {
		return nil, matrixErrorf(opMinor, ErrTooSmall)
	}
	if _, err := m.indexOf(row, col); err != nil {
		return nil, matrixErrorf(opMinor, fmt.Errorf("(%d,%d): %w", row, col, err))
	}

	n := m.r - 1
	res := m.like(n, n)
	var i, j, dst int
	for i = 0; i < m.r; i++ {
		if i == row {
			continue
		}
		for j = 0; j < m.c; j++ {
			if j == col {
				continue
			}
			res.data[dst] = m.data[i*m.c+j]
			dst++
		}
	}

	return res, nil
}

// SubMatrix copies the window [r0, r0+rows) × [c0, c0+cols).
//
// Errors:
//   - ErrInvalidDimensions when rows or cols is not positive.
//   - ErrOutOfRange when the window leaves M.
func (m *Dense[T]) SubMatrix(r0, c0, rows, cols int) (*Dense[T], error) {
	if err := validateWindow(m, r0, c0, rows, cols); err != nil {
		return nil, matrixErrorf(opSubMatrix, err)
	}

	res := m.like(rows, cols)
	for i := 0; i < rows; i++ {
		src := (r0+i)*m.c + c0
		copy(res.data[i*cols:(i+1)*cols], m.data[src:src+cols])
	}

	return res, nil
}

// AppendRows stacks b below a. Requires a.Cols() == b.Cols().
func AppendRows[T any](a, b *Dense[T]) (*Dense[T], error) {
	if a.c != b.c {
		return nil, matrixErrorf(opAppendRows, fmt.Errorf("cols %d vs %d: %w", a.c, b.c, ErrDimensionMismatch))
	}

	res := a.like(a.r+b.r, a.c)
	copy(res.data, a.data)
	copy(res.data[len(a.data):], b.data)

	return res, nil
}

// AppendCols places b to the right of a. Requires a.Rows() == b.Rows().
func AppendCols[T any](a, b *Dense[T]) (*Dense[T], error) {
	if a.r != b.r {
		return nil, matrixErrorf(opAppendCols, fmt.Errorf("rows %d vs %d: %w", a.r, b.r, ErrDimensionMismatch))
	}

	w := a.c + b.c
	res := a.like(a.r, w)
	for i := 0; i < a.r; i++ {
		copy(res.data[i*w:i*w+a.c], a.data[i*a.c:(i+1)*a.c])
		copy(res.data[i*w+a.c:(i+1)*w], b.data[i*b.c:(i+1)*b.c])
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and every elementwise
// |a[i,j] − b[i,j]| is within a's epsilon. With an exact provider (epsilon
// zero) this is exact equality.
//
// A difference that cannot be computed (overflow in a bounded type) counts
// as unequal, as does a NaN difference. Matching infinities therefore compare
// unequal: Inf − Inf is NaN.
func Equal[T any](a, b *Dense[T]) bool {
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		d, err := a.ops.Subtract(a.data[idx], b.data[idx])
		if err != nil || !a.nearZero(d) {
			return false
		}
	}

	return true
}
