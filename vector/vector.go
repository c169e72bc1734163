// SPDX-License-Identifier: MIT

// Package vector provides generic 2- and 3-component vectors whose arithmetic
// runs entirely through numeric.Operations.
//
// Both vector types are numeric containers: their zero values implement
// numeric.Container, so numeric.Resolve[vector.Vector3[float64]]() returns a
// componentwise provider built from the float64 provider, and generic code
// (the matrix engine included) accepts vectors as elements.
//
// The helpers below resolve the element provider from numeric.Default() on
// each call; resolution after the first call is a map lookup.
package vector

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numeric"
)

// Vector2 is a two-component vector.
type Vector2[T any] struct {
	X, Y T
}

// Vector3 is a three-component vector.
type Vector3[T any] struct {
	X, Y, Z T
}

func Vec2[T any](x, y T) Vector2[T]    { return Vector2[T]{x, y} }
func Vec3[T any](x, y, z T) Vector3[T] { return Vector3[T]{x, y, z} }

func (v Vector2[T]) String() string { return fmt.Sprintf("(%v, %v)", v.X, v.Y) }
func (v Vector3[T]) String() string { return fmt.Sprintf("(%v, %v, %v)", v.X, v.Y, v.Z) }

// Add returns v + w.
func (v Vector2[T]) Add(w Vector2[T]) (Vector2[T], error) {
	ops, err := numeric.Resolve[Vector2[T]]()
	if err != nil {
		return Vector2[T]{}, err
	}
	return ops.Add(v, w)
}

// Sub returns v - w.
func (v Vector2[T]) Sub(w Vector2[T]) (Vector2[T], error) {
	ops, err := numeric.Resolve[Vector2[T]]()
	if err != nil {
		return Vector2[T]{}, err
	}
	return ops.Subtract(v, w)
}

// Scale returns k·v.
func (v Vector2[T]) Scale(k T) (Vector2[T], error) {
	ops, err := numeric.Resolve[T]()
	if err != nil {
		return Vector2[T]{}, err
	}
	x, err := ops.Multiply(v.X, k)
	if err != nil {
		return Vector2[T]{}, err
	}
	y, err := ops.Multiply(v.Y, k)
	if err != nil {
		return Vector2[T]{}, err
	}
	return Vector2[T]{x, y}, nil
}

// Dot returns v·w.
func (v Vector2[T]) Dot(w Vector2[T]) (T, error) {
	ops, err := numeric.Resolve[T]()
	if err != nil {
		var zero T
		return zero, err
	}
	return dot(ops, []T{v.X, v.Y}, []T{w.X, w.Y})
}

// LengthSquared returns v·v.
func (v Vector2[T]) LengthSquared() (T, error) { return v.Dot(v) }

// Length returns |v|. Requires a provider with Sqrt (floating types);
// integral elements yield numeric.ErrNotSupported.
func (v Vector2[T]) Length() (T, error) {
	return length[T](v.LengthSquared())
}

// Add returns v + w.
func (v Vector3[T]) Add(w Vector3[T]) (Vector3[T], error) {
	ops, err := numeric.Resolve[Vector3[T]]()
	if err != nil {
		return Vector3[T]{}, err
	}
	return ops.Add(v, w)
}

// Sub returns v - w.
func (v Vector3[T]) Sub(w Vector3[T]) (Vector3[T], error) {
	ops, err := numeric.Resolve[Vector3[T]]()
	if err != nil {
		return Vector3[T]{}, err
	}
	return ops.Subtract(v, w)
}

// Scale returns k·v.
func (v Vector3[T]) Scale(k T) (Vector3[T], error) {
	ops, err := numeric.Resolve[T]()
	if err != nil {
		return Vector3[T]{}, err
	}
	var out [3]T
	for i, c := range [3]T{v.X, v.Y, v.Z} {
		if out[i], err = ops.Multiply(c, k); err != nil {
			return Vector3[T]{}, err
		}
	}
	return Vector3[T]{out[0], out[1], out[2]}, nil
}

// Dot returns v·w.
func (v Vector3[T]) Dot(w Vector3[T]) (T, error) {
	ops, err := numeric.Resolve[T]()
	if err != nil {
		var zero T
		return zero, err
	}
	return dot(ops, []T{v.X, v.Y, v.Z}, []T{w.X, w.Y, w.Z})
}

// Cross returns v × w.
func (v Vector3[T]) Cross(w Vector3[T]) (Vector3[T], error) {
	ops, err := numeric.Resolve[T]()
	if err != nil {
		return Vector3[T]{}, err
	}
	x, err := det2(ops, v.Y, v.Z, w.Y, w.Z)
	if err != nil {
		return Vector3[T]{}, err
	}
	y, err := det2(ops, v.Z, v.X, w.Z, w.X)
	if err != nil {
		return Vector3[T]{}, err
	}
	z, err := det2(ops, v.X, v.Y, w.X, w.Y)
	if err != nil {
		return Vector3[T]{}, err
	}
	return Vector3[T]{x, y, z}, nil
}

// LengthSquared returns v·v.
func (v Vector3[T]) LengthSquared() (T, error) { return v.Dot(v) }

// Length returns |v|; see Vector2.Length.
func (v Vector3[T]) Length() (T, error) {
	return length[T](v.LengthSquared())
}

// dot accumulates Σ a[i]·b[i] with checked arithmetic.
func dot[T any](ops numeric.Operations[T], a, b []T) (T, error) {
	acc := ops.Zero()
	for i := range a {
		p, err := ops.Multiply(a[i], b[i])
		if err != nil {
			return acc, err
		}
		if acc, err = ops.Add(acc, p); err != nil {
			return acc, err
		}
	}
	return acc, nil
}

// det2 returns a·d − b·c.
func det2[T any](ops numeric.Operations[T], a, b, c, d T) (T, error) {
	ad, err := ops.Multiply(a, d)
	if err != nil {
		return ad, err
	}
	bc, err := ops.Multiply(b, c)
	if err != nil {
		return bc, err
	}
	return ops.Subtract(ad, bc)
}

func length[T any](sq T, err error) (T, error) {
	if err != nil {
		return sq, err
	}
	ops, err := numeric.Resolve[T]()
	if err != nil {
		return sq, err
	}
	return ops.Sqrt(sq)
}
