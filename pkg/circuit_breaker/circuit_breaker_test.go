package circuit_breaker_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Astemirdum/library-lending/pkg/circuit_breaker"
	"github.com/stretchr/testify/require"
)

var (
	errBroker = errors.New("broker down")
	ok        = func() error { return nil }
	failing   = func() error { return errBroker }
)

func TestCircuitBreaker_Call(t *testing.T) {
	t.Parallel()
	cb := circuit_breaker.New(circuit_breaker.Config{
		Window:        4,
		Cooldown:      20 * time.Millisecond,
		FailureRatio:  0.5,
		RecoveryCalls: 2,
	})

	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Call(ok))
	}
	require.Equal(t, circuit_breaker.Closed, cb.State())

	require.ErrorIs(t, cb.Call(failing), errBroker)
	require.Equal(t, circuit_breaker.Closed, cb.State())
	require.ErrorIs(t, cb.Call(failing), errBroker)
	require.Equal(t, circuit_breaker.Open, cb.State())

	called := false
	err := cb.Call(func() error { called = true; return nil })
	require.ErrorIs(t, err, circuit_breaker.ErrOpen)
	require.False(t, called)

	time.Sleep(30 * time.Millisecond)
	require.NoError(t, cb.Call(ok))
	require.Equal(t, circuit_breaker.HalfOpen, cb.State())
	require.NoError(t, cb.Call(ok))
	require.Equal(t, circuit_breaker.Closed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	t.Parallel()
	cb := circuit_breaker.New(circuit_breaker.Config{
		Window:        2,
		Cooldown:      10 * time.Millisecond,
		FailureRatio:  0.5,
		RecoveryCalls: 1,
	})
	require.Error(t, cb.Call(failing))
	require.Equal(t, circuit_breaker.Open, cb.State())

	time.Sleep(20 * time.Millisecond)
	require.ErrorIs(t, cb.Call(failing), errBroker)
	require.Equal(t, circuit_breaker.Open, cb.State())
	require.ErrorIs(t, cb.Call(ok), circuit_breaker.ErrOpen)

	cb.Reset()
	require.Equal(t, circuit_breaker.Closed, cb.State())
	require.NoError(t, cb.Call(ok))
}
