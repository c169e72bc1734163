// Package matrix provides a generic dense, row-major matrix and the linear
// algebra engine built on it.
//
// The matrix package provides:
//
//   - Dense[T] for any element type with a numeric.Operations provider:
//     fixed-width ints, float32/float64, *big.Int, decimal.Decimal,
//     rational.Rational, cplx.Number and the vector types.
//   - Elementwise and product kernels (Add, Sub, Hadamard, Scale, Mul,
//     Transpose, MulVec, MulVector3) with checked element arithmetic.
//   - Gaussian elimination with partial pivoting and the operations derived
//     from it: RowEchelon, ReducedRowEchelon, Determinant, Inverse and Rank.
//     Integral element types use fraction-free (Bareiss) elimination so
//     determinants and ranks stay exact.
//   - Structural helpers: Minor, SubMatrix, AppendRows, AppendCols, Equal.
//   - Formatting with an optional column width ("W8%.3f").
//
// Every entry point that eliminates works on a private clone; the caller's
// matrix is never modified. Inverse reports a singular matrix with ok=false
// rather than an error.
//
// Epsilon is resolved per matrix (WithEpsilon, else the provider default):
// a rounding tolerance for floating and decimal elements, exact zero for
// rational and integral ones.
//
// See the examples in this package for usage patterns.
package matrix
