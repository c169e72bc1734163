// SPDX-License-Identifier: MIT
package numeric_test

import (
	"bytes"
	"log/slog"
	"math/big"
	"sync"
	"testing"

	"github.com/govalues/decimal"
	"github.com/katalvlaran/lvnum/numeric"
	"github.com/stretchr/testify/require"
)

// requireZeroRoundTrip asserts FromInt32(0) == Zero() through the default registry.
func requireZeroRoundTrip[T any](t *testing.T) {
	t.Helper()
	ops, err := numeric.Resolve[T]()
	require.NoError(t, err)
	z, err := ops.FromInt32(0)
	require.NoError(t, err)
	require.True(t, ops.Equal(z, ops.Zero()), "%T: FromInt32(0) != Zero()", z)
	o, err := ops.FromInt32(1)
	require.NoError(t, err)
	require.True(t, ops.Equal(o, ops.One()), "%T: FromInt32(1) != One()", o)
}

// 1) TestRegistry_BuiltinsZero resolves every built-in and checks the zero invariant.
func TestRegistry_BuiltinsZero(t *testing.T) {
	requireZeroRoundTrip[int](t)
	requireZeroRoundTrip[int8](t)
	requireZeroRoundTrip[int16](t)
	requireZeroRoundTrip[int32](t)
	requireZeroRoundTrip[int64](t)
	requireZeroRoundTrip[uint](t)
	requireZeroRoundTrip[uint8](t)
	requireZeroRoundTrip[uint16](t)
	requireZeroRoundTrip[uint32](t)
	requireZeroRoundTrip[uint64](t)
	requireZeroRoundTrip[uintptr](t)
	requireZeroRoundTrip[float32](t)
	requireZeroRoundTrip[float64](t)
	requireZeroRoundTrip[*big.Int](t)
	requireZeroRoundTrip[decimal.Decimal](t)
}

// 2) TestRegistry_Unsupported reports ErrUnsupportedType for unknown types.
func TestRegistry_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := numeric.Resolve[string]()
	require.ErrorIs(t, err, numeric.ErrUnsupportedType)
	require.Contains(t, err.Error(), "string")

	require.Panics(t, func() { numeric.MustResolve[struct{}]() })
}

// meters is a user type with a hand-registered provider.
type meters int32

// 3) TestRegistry_CustomFactory registers a provider into an isolated registry.
func TestRegistry_CustomFactory(t *testing.T) {
	t.Parallel()

	r := numeric.NewRegistry()
	_, err := numeric.ResolveIn[meters](r)
	require.ErrorIs(t, err, numeric.ErrUnsupportedType)

	calls := 0
	numeric.Register[meters](r, func() numeric.Operations[meters] {
		calls++
		return numeric.NewSignedOps[meters]()
	})
	a, err := numeric.ResolveIn[meters](r)
	require.NoError(t, err)
	b, err := numeric.ResolveIn[meters](r)
	require.NoError(t, err)
	require.Same(t, a, b)
	require.Equal(t, 1, calls)

	v, err := a.Add(40, 2)
	require.NoError(t, err)
	require.Equal(t, meters(42), v)

	// Isolated: the default registry is untouched.
	_, err = numeric.Resolve[meters]()
	require.ErrorIs(t, err, numeric.ErrUnsupportedType)

	require.Panics(t, func() { numeric.Register[meters](nil, nil) })
}

// pair is a container whose provider needs its element provider.
type pair[T any] struct{ A, B T }

func (pair[T]) ResolveOperations(r *numeric.Registry) (numeric.Operations[pair[T]], error) {
	if _, err := numeric.ResolveIn[T](r); err != nil {
		return nil, err
	}
	return nil, nil
}

// 4) TestRegistry_ContainerFailure propagates an unresolvable element type.
func TestRegistry_ContainerFailure(t *testing.T) {
	t.Parallel()

	r := numeric.NewRegistry()
	_, err := numeric.ResolveIn[pair[string]](r)
	require.ErrorIs(t, err, numeric.ErrUnsupportedType)
	require.Contains(t, err.Error(), "pair[string]")
}

// 5) TestRegistry_ConcurrentConstructOnce races first resolution from many goroutines.
func TestRegistry_ConcurrentConstructOnce(t *testing.T) {
	t.Parallel()

	r := numeric.NewRegistry()
	var mu sync.Mutex
	built := 0
	numeric.Register[meters](r, func() numeric.Operations[meters] {
		mu.Lock()
		built++
		mu.Unlock()
		return numeric.NewSignedOps[meters]()
	})

	const workers = 64
	got := make([]numeric.Operations[meters], workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(id int) {
			defer wg.Done()
			ops, err := numeric.ResolveIn[meters](r)
			require.NoError(t, err)
			got[id] = ops
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1, built)
	for i := 1; i < workers; i++ {
		require.Same(t, got[0], got[i])
	}
	require.Contains(t, numeric.Registered(r), "numeric_test.meters")
}

// 6) TestRegistry_DebugLogging checks that provider construction is logged at Debug.
func TestRegistry_DebugLogging(t *testing.T) {
	var buf bytes.Buffer
	numeric.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { numeric.SetLogger(nil) })

	r := numeric.NewRegistry()
	_, err := numeric.ResolveIn[int16](r)
	require.NoError(t, err)
	require.Contains(t, buf.String(), "provider constructed")
	require.Contains(t, buf.String(), "type=int16")
	require.Equal(t, []string{"int16"}, numeric.Registered(r))
}
