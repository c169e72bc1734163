// Package ntheory implements integer number theory over any integral type
// with a registered numeric provider.
//
// Every function resolves numeric.Operations[T] from the default registry, so
// the same code runs over int8 and *big.Int alike. Bounded types use checked
// arithmetic: a result that does not fit surfaces as numeric.ErrOverflow rather
// than wrapping around.
//
// Functions:
//
//   - GCD, ExtendedGCD: iterative Euclid; ExtendedGCD also returns
//     the Bézout coefficients x, y with a·x + b·y = g.
//   - LCM, LCMOf: least common multiple of two or more values.
//   - IntSqrt: floor of the square root (Newton iteration).
//   - FermatFactor: a difference-of-squares split n = p·q.
//   - Factorization, IsPrime: prime factors built on FermatFactor.
//   - Pow: integer powers for every provider, exact where the type is exact.
//
// GCD and friends require strictly positive operands; zero and negative values
// return numeric.ErrArgumentRange. Fractional element types (floats, rationals,
// decimals, complex numbers) return numeric.ErrNotSupported for everything
// except Pow.
//
// Example:
//
//	g, x, y, _ := ntheory.ExtendedGCD(12, 18) // 6, -1, 1
//	fs, _ := ntheory.Factorization(360)       // [2 2 2 3 3 5]
package ntheory
