// SPDX-License-Identifier: MIT

package numeric

import (
	"fmt"
	"math/big"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/govalues/decimal"
	"golang.org/x/exp/constraints"
)

// Container is implemented by the zero value of composite types (vectors,
// user aggregates) that derive their provider from the providers of their
// elements. The Registry consults it when T has no registered factory.
type Container[T any] interface {
	ResolveOperations(r *Registry) (Operations[T], error)
}

// Registry maps a type to its provider.
//
// Providers are built lazily on first resolution and exactly once per type,
// even under concurrent first access; afterwards every caller receives the
// same instance.
type Registry struct {
	mu      sync.Mutex
	entries map[reflect.Type]*entry
}

// entry is one type's slot. build runs under once, outside Registry.mu, so a
// container may resolve its element types recursively.
type entry struct {
	once  sync.Once
	path  string
	build func(r *Registry) (any, error)
	built atomic.Bool
	ops   any
	err   error
}

// NewRegistry returns a registry preloaded with the built-in providers: every
// fixed-width integer, float32, float64, *big.Int and decimal.Decimal.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[reflect.Type]*entry)}
	registerBuiltins(r)
	return r
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by Resolve and MustResolve.
func Default() *Registry { return defaultRegistry }

// Register installs factory as the provider constructor for T in r.
// A later registration for the same type replaces the earlier one; a provider
// already handed out keeps being valid. Panics if r or factory is nil.
func Register[T any](r *Registry, factory func() Operations[T]) {
	if r == nil || factory == nil {
		panic("numeric: Register with nil registry or factory")
	}
	key := reflect.TypeFor[T]()
	e := &entry{
		path:  "factory",
		build: func(*Registry) (any, error) { return factory(), nil },
	}

	r.mu.Lock()
	r.entries[key] = e
	r.mu.Unlock()
}

// Resolve returns the provider for T from the default registry.
func Resolve[T any]() (Operations[T], error) {
	return ResolveIn[T](defaultRegistry)
}

// MustResolve is Resolve that panics on error. For package-level variables
// of types known to be registered.
func MustResolve[T any]() Operations[T] {
	ops, err := Resolve[T]()
	if err != nil {
		panic(err)
	}
	return ops
}

// ResolveIn returns the provider for T from r.
//
// Resolution order:
//  1. a factory registered for T;
//  2. the Container hook on T's zero value;
//  3. otherwise ErrUnsupportedType.
//
// A container whose element type cannot be resolved also yields
// ErrUnsupportedType. Failures are cached like successes.
func ResolveIn[T any](r *Registry) (Operations[T], error) {
	key := reflect.TypeFor[T]()

	r.mu.Lock()
	e, ok := r.entries[key]
	if !ok {
		var zero T
		if c, isContainer := any(zero).(Container[T]); isContainer {
			e = &entry{
				path:  "container",
				build: func(r *Registry) (any, error) { return c.ResolveOperations(r) },
			}
			r.entries[key] = e
		}
	}
	r.mu.Unlock()

	if e == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, key)
	}

	e.once.Do(func() {
		e.ops, e.err = e.build(r)
		if e.err != nil {
			e.err = fmt.Errorf("%w: %s: %w", ErrUnsupportedType, key, e.err)
		}
		e.built.Store(true)
		Logger().Debug("numeric: provider constructed",
			"type", key.String(), "path", e.path, "ok", e.err == nil)
	})
	if e.err != nil {
		return nil, e.err
	}
	ops, ok := e.ops.(Operations[T])
	if !ok {
		return nil, fmt.Errorf("%w: %s: provider has type %T", ErrUnsupportedType, key, e.ops)
	}

	return ops, nil
}

// Registered lists the type names whose providers r has already constructed,
// sorted. Intended for diagnostics.
func Registered(r *Registry) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.entries))
	for key, e := range r.entries {
		if e.built.Load() {
			names = append(names, key.String())
		}
	}
	sort.Strings(names)

	return names
}

func registerSigned[T constraints.Signed](r *Registry) {
	Register[T](r, func() Operations[T] { return NewSignedOps[T]() })
}

func registerUnsigned[T constraints.Unsigned](r *Registry) {
	Register[T](r, func() Operations[T] { return NewUnsignedOps[T]() })
}

func registerBuiltins(r *Registry) {
	registerSigned[int](r)
	registerSigned[int8](r)
	registerSigned[int16](r)
	registerSigned[int32](r)
	registerSigned[int64](r)

	registerUnsigned[uint](r)
	registerUnsigned[uint8](r)
	registerUnsigned[uint16](r)
	registerUnsigned[uint32](r)
	registerUnsigned[uint64](r)
	registerUnsigned[uintptr](r)

	Register[float32](r, func() Operations[float32] { return NewFloat32Ops() })
	Register[float64](r, func() Operations[float64] { return NewFloat64Ops() })
	Register[*big.Int](r, func() Operations[*big.Int] { return NewBigIntOps() })
	Register[decimal.Decimal](r, func() Operations[decimal.Decimal] { return NewDecimalOps() })
}

var (
	_ Operations[int64]           = (*SignedOps[int64])(nil)
	_ Operations[uint64]          = (*UnsignedOps[uint64])(nil)
	_ Operations[float64]         = (*FloatOps[float64])(nil)
	_ Operations[float32]         = (*FloatOps[float32])(nil)
	_ Operations[*big.Int]        = (*BigIntOps)(nil)
	_ Operations[decimal.Decimal] = (*DecimalOps)(nil)
)
