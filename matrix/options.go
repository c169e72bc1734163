// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves options against the
//     element provider and enforces invariants.
//
// Notes:
//   - Option is not parameterized by the element type, so one option list can
//     be shared across Dense[float32], Dense[float64] and exact types.
//     gatherOptions binds each value to T when a matrix is built.
//   - Epsilon defaults to the element provider's Epsilon(): a rounding
//     tolerance for floating and decimal types, exact zero for rational/integral types.
//   - Derived matrices (Clone, arithmetic results, echelon forms) inherit the
//     left operand's epsilon, element format and provider.
package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvnum/numeric"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultElementFormat is the fmt verb applied to every element by String.
	DefaultElementFormat = "%v"

	// DefaultWidth disables column padding.
	DefaultWidth = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicFormatInvalid = "matrix: WithElementFormat: format must contain a '%' verb"
	panicOpsNil        = "matrix: WithOperations: provider must be non-nil"
)

// ---------- Option tags (error context) ----------

const (
	optEpsilon    = "WithEpsilon"
	optOperations = "WithOperations"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them internally via gatherOptions.
type Options struct {
	eps    any    // T, or float64 converted through the provider; nil ⇒ provider default
	format string // per-element fmt verb; DefaultElementFormat
	ops    any    // numeric.Operations[T]; nil ⇒ numeric.Resolve[T]
}

// WithEpsilon sets the tolerance used by elimination (pivot selection,
// zero-row detection) and by Equal.
//
// eps may be a value of the element type T, or a float64 which is converted
// with the provider's FromFloat64 (so WithEpsilon(1e-6) works for float32,
// decimal or rational matrices). A negative epsilon, or a value of any other
// type, makes the constructor fail with numeric.ErrArgumentRange or
// numeric.ErrConversion respectively.
func WithEpsilon(eps any) Option {
	return func(o *Options) { o.eps = eps }
}

// WithElementFormat sets the fmt verb String applies to every element.
// Panics unless format contains a '%' verb (programmer error).
func WithElementFormat(format string) Option {
	if !strings.Contains(format, "%") {
		panic(panicFormatInvalid)
	}

	return func(o *Options) { o.format = format }
}

// WithOperations makes the matrix use ops instead of resolving the provider
// from numeric.Default(). Useful with isolated registries and custom types.
func WithOperations[T any](ops numeric.Operations[T]) Option {
	if ops == nil {
		panic(panicOpsNil)
	}

	return func(o *Options) { o.ops = ops }
}

// settings is the resolved, typed form of Options.
type settings[T any] struct {
	ops    numeric.Operations[T]
	eps    T
	format string
}

// gatherOptions applies user options over the defaults and binds them to T.
// Implementation:
//   - Stage 1: apply setters in order.
//   - Stage 2: resolve the provider (explicit or registry).
//   - Stage 3: bind epsilon (T as-is, float64 via FromFloat64) and validate it.
//
// Errors:
//   - numeric.ErrUnsupportedType when T has no provider.
//   - numeric.ErrConversion when the epsilon or provider has the wrong type.
//   - numeric.ErrArgumentRange when the epsilon is negative.
func gatherOptions[T any](user ...Option) (settings[T], error) {
	o := Options{format: DefaultElementFormat}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	var s settings[T]
	s.format = o.format

	switch p := o.ops.(type) {
	case nil:
		ops, err := numeric.Resolve[T]()
		if err != nil {
			return s, err
		}
		s.ops = ops
	case numeric.Operations[T]:
		s.ops = p
	default:
		return s, matrixErrorf(optOperations, fmt.Errorf("%T for %T elements: %w", p, *new(T), numeric.ErrConversion))
	}

	switch e := o.eps.(type) {
	case nil:
		s.eps = s.ops.Epsilon()
		return s, nil
	case T:
		s.eps = e
	case float64:
		v, err := s.ops.FromFloat64(e)
		if err != nil {
			return s, matrixErrorf(optEpsilon, err)
		}
		s.eps = v
	default:
		return s, matrixErrorf(optEpsilon, fmt.Errorf("%T for %T elements: %w", e, *new(T), numeric.ErrConversion))
	}
	if s.ops.Sign(s.eps) < 0 {
		return s, matrixErrorf(optEpsilon, numeric.ErrArgumentRange)
	}

	return s, nil
}
