package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastPolicy() Policy {
	return Policy{Attempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
}

func TestPolicy_Do(t *testing.T) {
	t.Run("first attempt success runs once", func(t *testing.T) {
		calls := 0
		err := fastPolicy().Do(context.Background(), func(context.Context) error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("recovers after transient failures", func(t *testing.T) {
		calls := 0
		err := fastPolicy().Do(context.Background(), func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("exhaustion returns last error", func(t *testing.T) {
		calls := 0
		sentinel := errors.New("still broken")
		err := fastPolicy().Do(context.Background(), func(context.Context) error {
			calls++
			return sentinel
		})
		require.ErrorIs(t, err, sentinel)
		assert.Equal(t, 3, calls)
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		err := Policy{Attempts: 5, BaseDelay: 50 * time.Millisecond, MaxDelay: time.Second}.
			Do(ctx, func(context.Context) error {
				calls++
				cancel()
				return errors.New("fail")
			})
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}
