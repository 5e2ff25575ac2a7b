package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/book-review/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

var (
	errService = errors.New("service error")
	errClient  = errors.New("client error")

	ok   = func() error { return nil }
	fail = func() error { return errService }
)

func TestCircuitBreaker_Call(t *testing.T) {
	t.Parallel()
	cb := circuit_breaker.New(10, 50*time.Millisecond, 0.3, 2)

	for i := 0; i < 20; i++ {
		require.NoError(t, cb.Call(ok))
	}
	require.Equal(t, circuit_breaker.Closed, cb.State())

	// 3 failures out of a window of 10 reach the ratio
	for i := 0; i < 3; i++ {
		require.ErrorIs(t, cb.Call(fail), errService)
	}
	require.Equal(t, circuit_breaker.Open, cb.State())
	require.ErrorIs(t, cb.Call(ok), circuit_breaker.ErrOpenCB)

	time.Sleep(60 * time.Millisecond)

	require.NoError(t, cb.Call(ok))
	require.Equal(t, circuit_breaker.HalfOpen, cb.State())
	require.NoError(t, cb.Call(ok))
	require.Equal(t, circuit_breaker.Closed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailure(t *testing.T) {
	t.Parallel()
	cb := circuit_breaker.New(2, 20*time.Millisecond, 0.5, 3)

	require.Error(t, cb.Call(fail))
	require.Equal(t, circuit_breaker.Open, cb.State())

	time.Sleep(30 * time.Millisecond)
	require.ErrorIs(t, cb.Call(fail), errService)
	require.Equal(t, circuit_breaker.Open, cb.State())
	require.ErrorIs(t, cb.Call(ok), circuit_breaker.ErrOpenCB)

	cb.Reset()
	require.Equal(t, circuit_breaker.Closed, cb.State())
	require.NoError(t, cb.Call(ok))
}

func TestCircuitBreaker_FailurePredicate(t *testing.T) {
	t.Parallel()
	cb := circuit_breaker.New(1, time.Minute, 1, 1,
		circuit_breaker.WithFailurePredicate(func(err error) bool {
			return !errors.Is(err, errClient)
		}),
	)

	for i := 0; i < 5; i++ {
		require.ErrorIs(t, cb.Call(func() error { return errClient }), errClient)
	}
	require.Equal(t, circuit_breaker.Closed, cb.State())

	require.ErrorIs(t, cb.Call(fail), errService)
	require.Equal(t, circuit_breaker.Open, cb.State())
}
