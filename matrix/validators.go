// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape validation.
//  - Keep kernels minimal by delegating shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap them uniformly with their operation tag.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateSameShape ensures a and b have equal dimensions (Add/Sub/Hadamard).
func validateSameShape[T any](a, b *Dense[T]) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", fmt.Errorf("%d vs %d: %w", a.r, b.r, ErrDimensionMismatch))
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", fmt.Errorf("%d vs %d: %w", a.c, b.c, ErrDimensionMismatch))
	}

	return nil
}

// validateSquare ensures m is square.
func validateSquare[T any](m *Dense[T]) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}

	return nil
}

// validateMulCompatible ensures a.Cols == b.Rows.
func validateMulCompatible[T any](a, b *Dense[T]) error {
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}

	return nil
}

// validateVecLen ensures len(x) == n for MulVec-like kernels.
func validateVecLen[T any](x []T, n int) error {
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len %d, want %d: %w", len(x), n, ErrDimensionMismatch))
	}

	return nil
}

// validateWindow ensures [r0, r0+rows) × [c0, c0+cols) lies inside m.
func validateWindow[T any](m *Dense[T], r0, c0, rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateWindow", ErrInvalidDimensions)
	}
	if r0 < 0 || c0 < 0 || r0+rows > m.r || c0+cols > m.c {
		return validatorErrorf("ValidateWindow", fmt.Errorf("(%d,%d,%d,%d) in %dx%d: %w", r0, c0, rows, cols, m.r, m.c, ErrOutOfRange))
	}

	return nil
}
