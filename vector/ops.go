// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numeric"
)

// lanes implements numeric.Operations[V] for a fixed-size vector V of T by
// applying the element provider to each component. Ops2 and Ops3 embed it.
type lanes[V, T any] struct {
	numeric.Comparator[V]
	elem  numeric.Operations[T]
	name  string
	n     int
	split func(V) [3]T
	join  func([3]T) V
}

func newLanes[V, T any](elem numeric.Operations[T], n int, split func(V) [3]T, join func([3]T) V) *lanes[V, T] {
	var zero V
	l := &lanes[V, T]{
		elem:  elem,
		name:  fmt.Sprintf("%T", zero),
		n:     n,
		split: split,
		join:  join,
	}
	l.Comparator = numeric.Comparator[V]{Cmp: l.lexicographic}
	return l
}

// lexicographic compares component by component.
func (l *lanes[V, T]) lexicographic(x, y V) int {
	a, b := l.split(x), l.split(y)
	for i := 0; i < l.n; i++ {
		if c := l.elem.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

func (l *lanes[V, T]) broadcast(v T) V {
	var out [3]T
	for i := 0; i < l.n; i++ {
		out[i] = v
	}
	return l.join(out)
}

// broadcastErr lifts a fallible element constant.
func (l *lanes[V, T]) broadcastErr(v T, err error) (V, error) {
	if err != nil {
		var zero V
		return zero, err
	}
	return l.broadcast(v), nil
}

func (l *lanes[V, T]) unary(x V, f func(T) (T, error)) (V, error) {
	a := l.split(x)
	var out [3]T
	for i := 0; i < l.n; i++ {
		v, err := f(a[i])
		if err != nil {
			var zero V
			return zero, err
		}
		out[i] = v
	}
	return l.join(out), nil
}

func (l *lanes[V, T]) binary(x, y V, f func(T, T) (T, error)) (V, error) {
	a, b := l.split(x), l.split(y)
	var out [3]T
	for i := 0; i < l.n; i++ {
		v, err := f(a[i], b[i])
		if err != nil {
			var zero V
			return zero, err
		}
		out[i] = v
	}
	return l.join(out), nil
}

func (l *lanes[V, T]) binaryPair(x, y V, f func(T, T) (T, T, error)) (V, V, error) {
	a, b := l.split(x), l.split(y)
	var p, q [3]T
	for i := 0; i < l.n; i++ {
		u, v, err := f(a[i], b[i])
		if err != nil {
			var zero V
			return zero, zero, err
		}
		p[i], q[i] = u, v
	}
	return l.join(p), l.join(q), nil
}

// anyComponent reports whether pred holds for some component.
func (l *lanes[V, T]) anyComponent(x V, pred func(T) (bool, error)) (bool, error) {
	a := l.split(x)
	for i := 0; i < l.n; i++ {
		ok, err := pred(a[i])
		if err != nil || ok {
			return ok, err
		}
	}
	return false, nil
}

func (l *lanes[V, T]) unsupported(op string) error {
	return fmt.Errorf("%s.%s: %w", l.name, op, numeric.ErrNotSupported)
}

// Elem returns the element provider.
func (l *lanes[V, T]) Elem() numeric.Operations[T] { return l.elem }

func (l *lanes[V, T]) String() string       { return l.name }
func (l *lanes[V, T]) Flags() numeric.Flags { return l.elem.Flags() }
func (l *lanes[V, T]) Zero() V              { return l.broadcast(l.elem.Zero()) }
func (l *lanes[V, T]) One() V               { return l.broadcast(l.elem.One()) }
func (l *lanes[V, T]) Epsilon() V           { return l.broadcast(l.elem.Epsilon()) }
func (l *lanes[V, T]) Pi() (V, error)       { return l.broadcastErr(l.elem.Pi()) }
func (l *lanes[V, T]) E() (V, error)        { return l.broadcastErr(l.elem.E()) }

func (l *lanes[V, T]) MinValue() (V, bool) {
	v, ok := l.elem.MinValue()
	return l.broadcast(v), ok
}

func (l *lanes[V, T]) MaxValue() (V, bool) {
	v, ok := l.elem.MaxValue()
	return l.broadcast(v), ok
}

func (l *lanes[V, T]) Add(x, y V) (V, error)      { return l.binary(x, y, l.elem.Add) }
func (l *lanes[V, T]) Subtract(x, y V) (V, error) { return l.binary(x, y, l.elem.Subtract) }
func (l *lanes[V, T]) Multiply(x, y V) (V, error) { return l.binary(x, y, l.elem.Multiply) }
func (l *lanes[V, T]) Divide(x, y V) (V, error)   { return l.binary(x, y, l.elem.Divide) }
func (l *lanes[V, T]) Negate(x V) (V, error)      { return l.unary(x, l.elem.Negate) }
func (l *lanes[V, T]) Abs(x V) (V, error)         { return l.unary(x, l.elem.Abs) }

// Sign is the sign of the first nonzero component, consistent with the
// lexicographic order against Zero.
func (l *lanes[V, T]) Sign(x V) int {
	a := l.split(x)
	for i := 0; i < l.n; i++ {
		if s := l.elem.Sign(a[i]); s != 0 {
			return s
		}
	}
	return 0
}

func (l *lanes[V, T]) Quotient(x, y V) (V, error)       { return l.binary(x, y, l.elem.Quotient) }
func (l *lanes[V, T]) Remainder(x, y V) (V, error)      { return l.binary(x, y, l.elem.Remainder) }
func (l *lanes[V, T]) DivideIntegral(x, y V) (V, error) { return l.binary(x, y, l.elem.DivideIntegral) }
func (l *lanes[V, T]) Modulus(x, y V) (V, error)        { return l.binary(x, y, l.elem.Modulus) }

func (l *lanes[V, T]) QuotientWithRemainder(x, y V) (V, V, error) {
	return l.binaryPair(x, y, l.elem.QuotientWithRemainder)
}

func (l *lanes[V, T]) DivideIntegralWithModulus(x, y V) (V, V, error) {
	return l.binaryPair(x, y, l.elem.DivideIntegralWithModulus)
}

// FromInt32 broadcasts the converted scalar to every component.
func (l *lanes[V, T]) FromInt32(v int32) (V, error) { return l.broadcastErr(l.elem.FromInt32(v)) }

// FromFloat64 broadcasts the converted scalar to every component.
func (l *lanes[V, T]) FromFloat64(v float64) (V, error) { return l.broadcastErr(l.elem.FromFloat64(v)) }

// ToInt32 has no meaningful vector-to-scalar projection.
func (l *lanes[V, T]) ToInt32(V) (int32, error) { return 0, l.unsupported("ToInt32") }

// ToFloat64 has no meaningful vector-to-scalar projection.
func (l *lanes[V, T]) ToFloat64(V) (float64, error) { return 0, l.unsupported("ToFloat64") }

func (l *lanes[V, T]) NaN() (V, error)              { return l.broadcastErr(l.elem.NaN()) }
func (l *lanes[V, T]) PositiveInfinity() (V, error) { return l.broadcastErr(l.elem.PositiveInfinity()) }
func (l *lanes[V, T]) NegativeInfinity() (V, error) { return l.broadcastErr(l.elem.NegativeInfinity()) }
func (l *lanes[V, T]) IsNaN(x V) (bool, error)      { return l.anyComponent(x, l.elem.IsNaN) }
func (l *lanes[V, T]) IsInfinite(x V) (bool, error) { return l.anyComponent(x, l.elem.IsInfinite) }

func (l *lanes[V, T]) Round(x V, digits int, mode numeric.Midpoint) (V, error) {
	return l.unary(x, func(v T) (T, error) { return l.elem.Round(v, digits, mode) })
}

func (l *lanes[V, T]) Ceiling(x V) (V, error)  { return l.unary(x, l.elem.Ceiling) }
func (l *lanes[V, T]) Floor(x V) (V, error)    { return l.unary(x, l.elem.Floor) }
func (l *lanes[V, T]) Truncate(x V) (V, error) { return l.unary(x, l.elem.Truncate) }
func (l *lanes[V, T]) Sqrt(x V) (V, error)     { return l.unary(x, l.elem.Sqrt) }
func (l *lanes[V, T]) Pow(x, y V) (V, error)   { return l.binary(x, y, l.elem.Pow) }
func (l *lanes[V, T]) Exp(x V) (V, error)      { return l.unary(x, l.elem.Exp) }
func (l *lanes[V, T]) Log(x V) (V, error)      { return l.unary(x, l.elem.Log) }
func (l *lanes[V, T]) Sin(x V) (V, error)      { return l.unary(x, l.elem.Sin) }
func (l *lanes[V, T]) Cos(x V) (V, error)      { return l.unary(x, l.elem.Cos) }
func (l *lanes[V, T]) Tan(x V) (V, error)      { return l.unary(x, l.elem.Tan) }
func (l *lanes[V, T]) Asin(x V) (V, error)     { return l.unary(x, l.elem.Asin) }
func (l *lanes[V, T]) Acos(x V) (V, error)     { return l.unary(x, l.elem.Acos) }
func (l *lanes[V, T]) Atan(x V) (V, error)     { return l.unary(x, l.elem.Atan) }
func (l *lanes[V, T]) Atan2(y, x V) (V, error) { return l.binary(y, x, l.elem.Atan2) }

// Ops2 is the componentwise provider for Vector2[T].
type Ops2[T any] struct {
	*lanes[Vector2[T], T]
}

// NewOps2 builds the Vector2 provider on top of elem.
func NewOps2[T any](elem numeric.Operations[T]) *Ops2[T] {
	return &Ops2[T]{newLanes(elem, 2,
		func(v Vector2[T]) [3]T { return [3]T{v.X, v.Y} },
		func(a [3]T) Vector2[T] { return Vector2[T]{a[0], a[1]} },
	)}
}

// Ops3 is the componentwise provider for Vector3[T].
type Ops3[T any] struct {
	*lanes[Vector3[T], T]
}

// NewOps3 builds the Vector3 provider on top of elem.
func NewOps3[T any](elem numeric.Operations[T]) *Ops3[T] {
	return &Ops3[T]{newLanes(elem, 3,
		func(v Vector3[T]) [3]T { return [3]T{v.X, v.Y, v.Z} },
		func(a [3]T) Vector3[T] { return Vector3[T]{a[0], a[1], a[2]} },
	)}
}

// ResolveOperations implements numeric.Container: the Vector2 provider is
// derived from the registered provider of T.
func (Vector2[T]) ResolveOperations(r *numeric.Registry) (numeric.Operations[Vector2[T]], error) {
	elem, err := numeric.ResolveIn[T](r)
	if err != nil {
		return nil, err
	}
	return NewOps2(elem), nil
}

// ResolveOperations implements numeric.Container for Vector3.
func (Vector3[T]) ResolveOperations(r *numeric.Registry) (numeric.Operations[Vector3[T]], error) {
	elem, err := numeric.ResolveIn[T](r)
	if err != nil {
		return nil, err
	}
	return NewOps3(elem), nil
}

var (
	_ numeric.Operations[Vector2[float64]] = (*Ops2[float64])(nil)
	_ numeric.Operations[Vector3[int]]     = (*Ops3[int])(nil)
	_ numeric.Container[Vector3[float64]]  = Vector3[float64]{}
)
