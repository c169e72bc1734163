// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every kernel returns these sentinels (wrapped with an operation tag)
// and tests match them via errors.Is. No kernel panics on user-triggered error
// conditions; panics are reserved for Must* helpers and option constructors.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnum/numeric"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Element-level
// failures (overflow, division by zero, unsupported operations) are NOT
// re-declared here: they surface as the numeric sentinels produced by the
// element provider, wrapped with the matrix operation tag.
//
// ERROR PRIORITY (enforced in tests):
// shape/index -> dimension mismatch -> structural violations -> element errors.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. It matches numeric.ErrArgumentRange as well.
	ErrInvalidDimensions = fmt.Errorf("matrix: dimensions must be > 0: %w", numeric.ErrArgumentRange)

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/Col) return this, never panic.
	ErrOutOfRange = fmt.Errorf("matrix: index out of range: %w", numeric.ErrArgumentRange)

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrTooSmall signals that an operation needs a matrix larger than 1×1 (Minor).
	ErrTooSmall = errors.New("matrix: matrix must be larger than 1x1")
)
