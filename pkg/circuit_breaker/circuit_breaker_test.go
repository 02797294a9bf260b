package circuit_breaker_test

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/ophelieturenne/cloud-bookshelf/pkg/circuit_breaker"
)

func Test_circuitBreaker_Call(t *testing.T) {
	ok := func() error { return nil }
	fail := func() error { return errors.New("service error") }

	t.Run("stays closed on successes", func(t *testing.T) {
		cb := circuit_breaker.New(10, time.Second, 0.3, 2)
		for i := 0; i < 20; i++ {
			require.NoError(t, cb.Call(ok))
		}
	})

	t.Run("opens after failure percentile and rejects calls", func(t *testing.T) {
		cb := circuit_breaker.New(10, time.Minute, 0.3, 2)
		for i := 0; i < 4; i++ {
			require.Error(t, cb.Call(fail))
		}
		require.ErrorIs(t, cb.Call(ok), circuit_breaker.ErrOpenCB)
	})

	t.Run("recovers through half-open after timeout", func(t *testing.T) {
		cb := circuit_breaker.New(10, 10*time.Millisecond, 0.3, 2)
		for i := 0; i < 4; i++ {
			require.Error(t, cb.Call(fail))
		}
		require.ErrorIs(t, cb.Call(ok), circuit_breaker.ErrOpenCB)

		time.Sleep(20 * time.Millisecond)
		// half-open: successes must pass through and eventually close the breaker
		for i := 0; i < 5; i++ {
			require.NoError(t, cb.Call(ok))
		}
	})

	t.Run("half-open failure reopens", func(t *testing.T) {
		cb := circuit_breaker.New(10, 10*time.Millisecond, 0.3, 2)
		for i := 0; i < 4; i++ {
			require.Error(t, cb.Call(fail))
		}
		time.Sleep(20 * time.Millisecond)
		require.Error(t, cb.Call(fail))
		require.ErrorIs(t, cb.Call(ok), circuit_breaker.ErrOpenCB)
	})

	t.Run("reset closes the breaker", func(t *testing.T) {
		cb := circuit_breaker.New(10, time.Minute, 0.3, 2)
		for i := 0; i < 4; i++ {
			require.Error(t, cb.Call(fail))
		}
		cb.Reset()
		require.NoError(t, cb.Call(ok))
	})
}
