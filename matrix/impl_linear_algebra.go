// SPDX-License-Identifier: MIT

// Package matrix - elementwise and product kernels over Dense[T].
//
// Every kernel:
//   - validates shapes through validators.go before touching data,
//   - allocates a fresh result (operands are never mutated),
//   - routes each scalar operation through the element provider, so checked
//     overflow (numeric.ErrOverflow) or division errors surface immediately,
//     wrapped with the kernel's op tag,
//   - walks data in a fixed i→j→k order (deterministic accumulation).
//
// Results inherit the left operand's provider, epsilon and element format.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvnum/vector"
)

// ---------- op tags (error context) ----------

const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opScale      = "Scale"
	opHadamard   = "Hadamard"
	opMulVec     = "MulVec"
	opMulVector3 = "MulVector3"
)

// matrixErrorf wraps err with a kernel tag: "<tag>: <underlying>".
// Callers gate it with err != nil; wrapping nil is never done.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// elementwise computes out[k] = f(a[k], b[k]) over identically shaped operands.
// Internal helper for Add/Sub/Hadamard to share validation and allocation.
func elementwise[T any](a, b *Dense[T], f func(x, y T) (T, error), opTag string) (*Dense[T], error) {
	if err := validateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := a.like(a.r, a.c)
	var err error
	for idx := range a.data { // deterministic 0..n-1
		if res.data[idx], err = f(a.data[idx], b.data[idx]); err != nil {
			return nil, matrixErrorf(opTag, fmt.Errorf("(%d,%d): %w", idx/a.c, idx%a.c, err))
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
//
// Errors:
//   - ErrDimensionMismatch (shape mismatch).
//   - Element errors from the provider (numeric.ErrOverflow for bounded types).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T any](a, b *Dense[T]) (*Dense[T], error) {
	return elementwise(a, b, a.ops.Add, opAdd)
}

// Sub computes the element-wise difference C = A - B. See Add.
func Sub[T any](a, b *Dense[T]) (*Dense[T], error) {
	return elementwise(a, b, a.ops.Subtract, opSub)
}

// Hadamard computes the element-wise product C[i,j] = A[i,j]·B[i,j]. See Add.
func Hadamard[T any](a, b *Dense[T]) (*Dense[T], error) {
	return elementwise(a, b, a.ops.Multiply, opHadamard)
}

// Mul computes the matrix product C = A × B.
// Implementation:
//   - Stage 1: validate a.Cols == b.Rows; allocate r×k result.
//   - Stage 2: triple loop i→j→p, accumulating from the provider's Zero().
//
// Errors:
//   - ErrDimensionMismatch when a.Cols != b.Rows.
//   - Element errors from the provider.
//
// Complexity:
//   - Time O(r*c*k), Space O(r*k).
func Mul[T any](a, b *Dense[T]) (*Dense[T], error) {
	if err := validateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	ops := a.ops
	rows, inner, cols := a.r, a.c, b.c
	res := a.like(rows, cols)

	var i, j, p int
	var acc, prod T
	var err error
	for i = 0; i < rows; i++ {
		aBase := i * inner
		for j = 0; j < cols; j++ {
			acc = ops.Zero()
			for p = 0; p < inner; p++ {
				if prod, err = ops.Multiply(a.data[aBase+p], b.data[p*cols+j]); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("(%d,%d): %w", i, j, err))
				}
				if acc, err = ops.Add(acc, prod); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("(%d,%d): %w", i, j, err))
				}
			}
			res.data[i*cols+j] = acc
		}
	}

	return res, nil
}

// Transpose returns Mᵀ. Complexity: O(r*c).
func Transpose[T any](m *Dense[T]) *Dense[T] {
	res := m.like(m.c, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res
}

// Scale returns k·M.
func Scale[T any](m *Dense[T], k T) (*Dense[T], error) {
	res := m.like(m.r, m.c)
	var err error
	for idx, v := range m.data {
		if res.data[idx], err = m.ops.Multiply(v, k); err != nil {
			return nil, matrixErrorf(opScale, fmt.Errorf("(%d,%d): %w", idx/m.c, idx%m.c, err))
		}
	}

	return res, nil
}

// MulVec computes y = M·x for len(x) == Cols().
//
// Errors:
//   - ErrDimensionMismatch when len(x) != Cols().
//   - Element errors from the provider.
func MulVec[T any](m *Dense[T], x []T) ([]T, error) {
	if err := validateVecLen(x, m.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}

	y := make([]T, m.r)
	var err error
	for i := 0; i < m.r; i++ {
		if y[i], err = m.dotRow(i, x); err != nil {
			return nil, matrixErrorf(opMulVec, fmt.Errorf("row %d: %w", i, err))
		}
	}

	return y, nil
}

// MulVector3 applies a 3×3 matrix to a Vector3 (rotation, scaling, shear).
//
// Errors:
//   - ErrDimensionMismatch unless M is 3×3.
func MulVector3[T any](m *Dense[T], v vector.Vector3[T]) (vector.Vector3[T], error) {
	if m.r != 3 || m.c != 3 {
		return vector.Vector3[T]{}, matrixErrorf(opMulVector3, fmt.Errorf("%dx%d, want 3x3: %w", m.r, m.c, ErrDimensionMismatch))
	}

	y, err := MulVec(m, []T{v.X, v.Y, v.Z})
	if err != nil {
		return vector.Vector3[T]{}, matrixErrorf(opMulVector3, err)
	}

	return vector.Vec3(y[0], y[1], y[2]), nil
}

// dotRow returns Σ_j M[i,j]·x[j].
func (m *Dense[T]) dotRow(i int, x []T) (T, error) {
	acc := m.ops.Zero()
	base := i * m.c
	for j, xj := range x {
		p, err := m.ops.Multiply(m.data[base+j], xj)
		if err != nil {
			return acc, err
		}
		if acc, err = m.ops.Add(acc, p); err != nil {
			return acc, err
		}
	}

	return acc, nil
}
