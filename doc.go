// Package lvnum is a generic numerics toolkit: write an algorithm once
// against a uniform operation set and run it over machine integers, floats,
// arbitrary-precision integers, decimals, exact rationals and complex numbers.
//
// 🚀 What is lvnum?
//
//	A small, dependency-light library that brings together:
//		• numeric/   – Operations[T] contract, capability flags, registry and
//		               built-in providers (checked ints, float32/64, *big.Int, decimal)
//		• rational/  – exact big-integer fractions, always in lowest terms
//		• cplx/      – complex numbers with tolerance-aware ordering and roots
//		• vector/    – Vector2/Vector3 over any element type, themselves numeric
//		• matrix/    – Dense[T]: elimination, determinant, inverse, rank, formatting
//		• ntheory/   – GCD, Bézout coefficients, LCM, Fermat factorization, Pow
//
// ✨ Why choose lvnum?
//
//   - One algorithm, every type – matrix.Determinant works for int8 and rational alike
//   - Honest arithmetic – bounded overflow and division by zero are errors, never wraps
//   - Exact where possible – fraction-free elimination for integers, exact rationals
//   - Pure Go – no cgo; math32, x/exp and govalues/decimal only
//
// Quick example:
//
//	m := matrix.MustFromRows([][]rational.Rational{
//		{rational.New(1, 2), rational.New(1, 3)},
//		{rational.New(1, 3), rational.New(1, 4)},
//	})
//	det, _ := m.Determinant()      // 1/72, exactly
//	inv, ok, _ := m.Inverse()      // [[18, -24], [-24, 36]], ok == true
//
// Providers resolve through numeric.Default(); rational and cplx register
// themselves on import. Custom types register with numeric.Register.
//
//	go get github.com/katalvlaran/lvnum
package lvnum
