// SPDX-License-Identifier: MIT

// Package matrix - Gaussian elimination and the operations derived from it.
//
// Two in-place primitives share the walk "pivot row p, column col, left to right":
//   - eliminate: partial pivoting by largest |value|, division-based; used by
//     fractional providers (floats, complex, rational, decimal).
//   - eliminateFractionFree: Bareiss elimination with the same pivot choice,
//     all divisions exact; used by integral providers (fixed-width ints, big.Int)
//     where division-based elimination would truncate.
//
// Both primitives mutate the receiver and are unexported; every public entry
// point (RowEchelon, ReducedRowEchelon, Determinant, Inverse, Rank) clones first.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numeric"
)

const (
	opRowEchelon        = "RowEchelon"
	opReducedRowEchelon = "ReducedRowEchelon"
	opDeterminant       = "Determinant"
	opInverse           = "Inverse"
	opRank              = "Rank"
)

// fractional reports whether the provider supports exact-enough division
// for division-based elimination.
func (m *Dense[T]) fractional() bool { return m.ops.Flags().Has(numeric.Fractional) }

// pivotRow returns the row in [p, r) with the largest |M[row,col]| and that magnitude.
// Ties keep the topmost row so already-ordered matrices incur no swaps.
// The topmost NaN wins outright, so NaN propagates instead of being mistaken
// for a zero column.
func (m *Dense[T]) pivotRow(p, col int) (int, T, error) {
	best := p
	bestAbs, err := m.ops.Abs(m.data[p*m.c+col])
	if err != nil {
		return 0, bestAbs, err
	}
	if m.isNaN(bestAbs) {
		return best, bestAbs, nil
	}
	for i := p + 1; i < m.r; i++ {
		a, err := m.ops.Abs(m.data[i*m.c+col])
		if err != nil {
			return 0, a, err
		}
		if m.isNaN(a) {
			return i, a, nil
		}
		if m.ops.GreaterThan(a, bestAbs) {
			best, bestAbs = i, a
		}
	}

	return best, bestAbs, nil
}

// zeroColumn writes exact zeros into column col for rows [p, r).
func (m *Dense[T]) zeroColumn(p, col int) {
	zero := m.ops.Zero()
	for i := p; i < m.r; i++ {
		m.data[i*m.c+col] = zero
	}
	numeric.Logger().Debug("matrix: rank-deficient column", "col", col, "pivotRow", p)
}

// eliminate reduces m in place to row echelon form (reduced=false) or reduced
// row echelon form (reduced=true) and returns the number of row swaps.
// Implementation:
//   - Stage 1: per column, pick the largest-magnitude pivot in rows [p, r) and swap it up.
//   - Stage 2: a pivot within epsilon zeroes the column; the pivot row does not advance.
//     A NaN pivot is kept and spreads through the rows it touches.
//   - Stage 3: reduced mode scales the pivot row to a unit pivot and clears
//     the column above and below; plain mode clears only below.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(1).
func (m *Dense[T]) eliminate(reduced bool) (swaps int, err error) {
	ops := m.ops
	p := 0
	for col := 0; col < m.c && p < m.r; col++ {
		best, bestAbs, err := m.pivotRow(p, col)
		if err != nil {
			return swaps, err
		}
		if best != p {
			m.swapRows(p, best)
			swaps++
		}
		if m.negligible(bestAbs) {
			m.zeroColumn(p, col)
			continue
		}

		pBase := p * m.c
		if reduced {
			pivot := m.data[pBase+col]
			for j := col + 1; j < m.c; j++ {
				if m.data[pBase+j], err = ops.Divide(m.data[pBase+j], pivot); err != nil {
					return swaps, err
				}
			}
			m.data[pBase+col] = ops.One()
		}

		start := p + 1
		if reduced {
			start = 0
		}
		for i := start; i < m.r; i++ {
			if i == p {
				continue
			}
			if err = m.clearColumn(i, p, col); err != nil {
				return swaps, err
			}
		}
		p++
	}

	return swaps, nil
}

// clearColumn subtracts f·row(p) from row(i) with f = M[i,col]/M[p,col],
// leaving an exact zero at (i,col). Columns left of col are already zero in
// both rows and are skipped.
func (m *Dense[T]) clearColumn(i, p, col int) error {
	ops := m.ops
	iBase, pBase := i*m.c, p*m.c
	if ops.Sign(m.data[iBase+col]) == 0 {
		return nil
	}
	f, err := ops.Divide(m.data[iBase+col], m.data[pBase+col])
	if err != nil {
		return err
	}
	var prod T
	for j := col + 1; j < m.c; j++ {
		if prod, err = ops.Multiply(f, m.data[pBase+j]); err != nil {
			return err
		}
		if m.data[iBase+j], err = ops.Subtract(m.data[iBase+j], prod); err != nil {
			return err
		}
	}
	m.data[iBase+col] = ops.Zero()

	return nil
}

// eliminateFractionFree reduces m in place to a (scaled) row echelon form with
// Bareiss' update M[i,j] = (M[p,col]·M[i,j] − M[i,col]·M[p,j]) / prevPivot.
// Every division is exact, so integral elements stay integral. Returns the
// swap count and the number of pivots found (the rank).
func (m *Dense[T]) eliminateFractionFree() (swaps, rank int, err error) {
	ops := m.ops
	prev := ops.One()
	p := 0
	var a, b T
	for col := 0; col < m.c && p < m.r; col++ {
		best, bestAbs, err := m.pivotRow(p, col)
		if err != nil {
			return swaps, p, err
		}
		if best != p {
			m.swapRows(p, best)
			swaps++
		}
		if m.negligible(bestAbs) {
			m.zeroColumn(p, col)
			continue
		}

		pBase := p * m.c
		pivot := m.data[pBase+col]
		for i := p + 1; i < m.r; i++ {
			iBase := i * m.c
			lead := m.data[iBase+col]
			for j := col + 1; j < m.c; j++ {
				if a, err = ops.Multiply(pivot, m.data[iBase+j]); err != nil {
					return swaps, p, err
				}
				if b, err = ops.Multiply(lead, m.data[pBase+j]); err != nil {
					return swaps, p, err
				}
				if a, err = ops.Subtract(a, b); err != nil {
					return swaps, p, err
				}
				if m.data[iBase+j], err = ops.Quotient(a, prev); err != nil {
					return swaps, p, err
				}
			}
			m.data[iBase+col] = ops.Zero()
		}
		prev = pivot
		p++
	}

	return swaps, p, nil
}

// RowEchelon returns the row echelon form of M. M is not modified.
// Integral element types get the fraction-free (Bareiss) echelon form,
// whose pivots are leading minors rather than the division-based values.
func (m *Dense[T]) RowEchelon() (*Dense[T], error) {
	ref := m.Clone()
	var err error
	if m.fractional() {
		_, err = ref.eliminate(false)
	} else {
		_, _, err = ref.eliminateFractionFree()
	}
	if err != nil {
		return nil, matrixErrorf(opRowEchelon, err)
	}

	return ref, nil
}

// ReducedRowEchelon returns the reduced row echelon form of M. M is not modified.
//
// Errors:
//   - numeric.ErrNotSupported for integral element types (unit pivots need division).
func (m *Dense[T]) ReducedRowEchelon() (*Dense[T], error) {
	if !m.fractional() {
		return nil, matrixErrorf(opReducedRowEchelon, fmt.Errorf("%T elements: %w", *new(T), numeric.ErrNotSupported))
	}
	rref := m.Clone()
	if _, err := rref.eliminate(true); err != nil {
		return nil, matrixErrorf(opReducedRowEchelon, err)
	}

	return rref, nil
}

// Determinant returns det(M) for a square M. M is not modified.
// Implementation:
//   - Fractional elements: product of the echelon diagonal times (−1)^swaps.
//   - Integral elements: the last Bareiss pivot times (−1)^swaps; zero when
//     a column was rank deficient.
//
// Errors:
//   - ErrNonSquare.
//   - Element errors (numeric.ErrOverflow for bounded types).
func (m *Dense[T]) Determinant() (T, error) {
	ops := m.ops
	if err := validateSquare(m); err != nil {
		return ops.Zero(), matrixErrorf(opDeterminant, err)
	}

	work := m.Clone()
	n := m.r
	var det T
	var swaps int
	if m.fractional() {
		var err error
		if swaps, err = work.eliminate(false); err != nil {
			return ops.Zero(), matrixErrorf(opDeterminant, err)
		}
		det = ops.One()
		for i := 0; i < n; i++ {
			if det, err = ops.Multiply(det, work.data[i*n+i]); err != nil {
				return ops.Zero(), matrixErrorf(opDeterminant, err)
			}
		}
	} else {
		var rank int
		var err error
		if swaps, rank, err = work.eliminateFractionFree(); err != nil {
			return ops.Zero(), matrixErrorf(opDeterminant, err)
		}
		if rank < n {
			return ops.Zero(), nil
		}
		det = work.data[n*n-1]
	}

	if swaps%2 == 1 {
		neg, err := ops.Negate(det)
		if err != nil {
			return ops.Zero(), matrixErrorf(opDeterminant, err)
		}
		det = neg
	}

	return det, nil
}

// Inverse returns M⁻¹ for a square M. M is not modified.
// Implementation:
//   - Stage 1: augment [M | I] (n×2n).
//   - Stage 2: reduce to reduced row echelon form.
//   - Stage 3: a row whose left block is entirely within epsilon of zero
//     means M is singular ⇒ (nil, false, nil).
//   - Stage 4: extract the right block.
//
// Behavior highlights:
//   - Singularity is a result, not an error: ok=false with a nil error.
//
// Errors:
//   - ErrNonSquare.
//   - numeric.ErrNotSupported for integral element types.
//   - Element errors from the provider.
func (m *Dense[T]) Inverse() (inv *Dense[T], ok bool, err error) {
	if err = validateSquare(m); err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}
	if !m.fractional() {
		return nil, false, matrixErrorf(opInverse, fmt.Errorf("%T elements: %w", *new(T), numeric.ErrNotSupported))
	}

	n := m.r
	w := 2 * n
	aug := m.like(n, w)
	one := m.ops.One()
	for i := 0; i < n; i++ {
		copy(aug.data[i*w:i*w+n], m.data[i*n:(i+1)*n])
		aug.data[i*w+n+i] = one
	}

	if _, err = aug.eliminate(true); err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}
	for i := 0; i < n; i++ {
		if aug.rowNearZero(i, 0, n) {
			numeric.Logger().Debug("matrix: singular matrix has no inverse", "n", n, "row", i)
			return nil, false, nil
		}
	}

	inv = m.like(n, n)
	for i := 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], aug.data[i*w+n:(i+1)*w])
	}

	return inv, true, nil
}

// Rank returns the number of rows of the row echelon form that are not
// entirely within epsilon of zero. M is not modified.
func (m *Dense[T]) Rank() (int, error) {
	ref, err := m.RowEchelon()
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	zeroRows := 0
	for i := 0; i < ref.r; i++ {
		if ref.rowNearZero(i, 0, ref.c) {
			zeroRows++
		}
	}

	return ref.r - zeroRows, nil
}
