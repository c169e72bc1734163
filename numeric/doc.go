// SPDX-License-Identifier: MIT

// Package numeric provides a uniform operation set over numeric types and the
// registry that maps each type to its provider.
//
// An Operations[T] value answers every arithmetic, comparison, conversion and
// (for floating types) transcendental question about T. Algorithms elsewhere in
// the module (matrix elimination, number theory, vectors) are written once
// against Operations[T] and run unchanged over:
//
//   - int, int8, int16, int32, int64 and their unsigned counterparts, uintptr
//   - float32 (via github.com/chewxy/math32) and float64
//   - *big.Int
//   - decimal.Decimal (github.com/govalues/decimal)
//   - rational.Rational and cplx.Number, which register themselves on import
//   - composite types implementing Container, such as vector.Vector3[T]
//
// Quick start:
//
//	ops, err := numeric.Resolve[int32]()
//	if err != nil { ... }
//	sum, err := ops.Add(math.MaxInt32, 1) // errors.Is(err, numeric.ErrOverflow)
//
// Error policy:
//   - Bounded integral arithmetic is checked and returns ErrOverflow.
//   - Integral division by zero returns ErrDivideByZero.
//   - Floating types follow IEEE-754 and never return arithmetic errors.
//   - Floating-only members return ErrNotSupported elsewhere.
//
// Errors carry the provider and operation as a prefix ("int8.Add: ...") and
// wrap the sentinels in this package; match them with errors.Is.
//
// Concurrency: providers are stateless; the Registry is safe for concurrent use
// and constructs each provider exactly once.
package numeric
