// SPDX-License-Identifier: MIT

// Package numeric: embeddable building blocks for providers.
//
// Providers embed Comparator to derive the comparison members from a single
// compare function, and Unsupported to answer ErrNotSupported for the
// floating-only members they do not implement. Methods declared on the
// embedding provider shadow the embedded ones, so a provider overrides only
// what it actually supports.

package numeric

// Comparator derives Equal/LessThan/.../Min/Max from Cmp.
type Comparator[T any] struct {
	Cmp func(x, y T) int
}

func (c Comparator[T]) Compare(x, y T) int         { return c.Cmp(x, y) }
func (c Comparator[T]) Equal(x, y T) bool          { return c.Cmp(x, y) == 0 }
func (c Comparator[T]) LessThan(x, y T) bool       { return c.Cmp(x, y) < 0 }
func (c Comparator[T]) LessOrEqual(x, y T) bool    { return c.Cmp(x, y) <= 0 }
func (c Comparator[T]) GreaterThan(x, y T) bool    { return c.Cmp(x, y) > 0 }
func (c Comparator[T]) GreaterOrEqual(x, y T) bool { return c.Cmp(x, y) >= 0 }

// Min returns x when x and y compare equal.
func (c Comparator[T]) Min(x, y T) T {
	if c.Cmp(y, x) < 0 {
		return y
	}
	return x
}

// Max returns x when x and y compare equal.
func (c Comparator[T]) Max(x, y T) T {
	if c.Cmp(y, x) > 0 {
		return y
	}
	return x
}

// Unsupported answers ErrNotSupported for every floating-only member.
// Type is the provider name used in error messages.
type Unsupported[T any] struct {
	Type string
}

func (u Unsupported[T]) fail(op string) (T, error) {
	var zero T
	return zero, opErrorf(u.Type, op, ErrNotSupported)
}

func (u Unsupported[T]) Pi() (T, error)                    { return u.fail("Pi") }
func (u Unsupported[T]) E() (T, error)                     { return u.fail("E") }
func (u Unsupported[T]) NaN() (T, error)                   { return u.fail("NaN") }
func (u Unsupported[T]) PositiveInfinity() (T, error)      { return u.fail("PositiveInfinity") }
func (u Unsupported[T]) NegativeInfinity() (T, error)      { return u.fail("NegativeInfinity") }
func (u Unsupported[T]) Round(T, int, Midpoint) (T, error) { return u.fail("Round") }
func (u Unsupported[T]) Ceiling(T) (T, error)              { return u.fail("Ceiling") }
func (u Unsupported[T]) Floor(T) (T, error)                { return u.fail("Floor") }
func (u Unsupported[T]) Truncate(T) (T, error)             { return u.fail("Truncate") }
func (u Unsupported[T]) Sqrt(T) (T, error)                 { return u.fail("Sqrt") }
func (u Unsupported[T]) Pow(T, T) (T, error)               { return u.fail("Pow") }
func (u Unsupported[T]) Exp(T) (T, error)                  { return u.fail("Exp") }
func (u Unsupported[T]) Log(T) (T, error)                  { return u.fail("Log") }
func (u Unsupported[T]) Sin(T) (T, error)                  { return u.fail("Sin") }
func (u Unsupported[T]) Cos(T) (T, error)                  { return u.fail("Cos") }
func (u Unsupported[T]) Tan(T) (T, error)                  { return u.fail("Tan") }
func (u Unsupported[T]) Asin(T) (T, error)                 { return u.fail("Asin") }
func (u Unsupported[T]) Acos(T) (T, error)                 { return u.fail("Acos") }
func (u Unsupported[T]) Atan(T) (T, error)                 { return u.fail("Atan") }
func (u Unsupported[T]) Atan2(T, T) (T, error)             { return u.fail("Atan2") }

func (u Unsupported[T]) IsNaN(T) (bool, error) {
	return false, opErrorf(u.Type, "IsNaN", ErrNotSupported)
}

func (u Unsupported[T]) IsInfinite(T) (bool, error) {
	return false, opErrorf(u.Type, "IsInfinite", ErrNotSupported)
}

// Fail is the exported form of the ErrNotSupported answer, for providers that
// reject an operation outside the floating-only group (e.g. Quotient on
// complex numbers).
func (u Unsupported[T]) Fail(op string) (T, error) { return u.fail(op) }
