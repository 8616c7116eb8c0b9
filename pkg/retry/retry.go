// Package retry provides the shared exponential-backoff helper.
// It is applied at exactly two layers: the planner's LLM calls and the
// audit writes inside the inference service.
package retry

import (
	"context"
	"math/rand"
	"time"
)

// Policy describes an exponential backoff with full jitter.
type Policy struct {
	// Attempts is the total number of tries, including the first.
	Attempts int
	// BaseDelay is the wait before the second attempt.
	BaseDelay time.Duration
	// MaxDelay caps the exponential growth.
	MaxDelay time.Duration
}

// DefaultPolicy matches the system-wide retry contract:
// up to 3 attempts, exponential backoff base 1s, capped at 10s.
func DefaultPolicy() Policy {
	return Policy{
		Attempts:  3,
		BaseDelay: time.Second,
		MaxDelay:  10 * time.Second,
	}
}

// Do runs fn until it succeeds, the attempts are exhausted, or ctx is
// cancelled. It returns the last error on exhaustion.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error

	delay := p.BaseDelay
	for attempt := 1; attempt <= p.Attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if attempt == p.Attempts {
			break
		}

		// Full jitter: sleep a uniformly random fraction of the delay to
		// avoid synchronized retries against the same backend.
		sleep := time.Duration(rand.Int63n(int64(delay) + 1))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(sleep):
		}

		delay *= 2
		if delay > p.MaxDelay {
			delay = p.MaxDelay
		}
	}

	return lastErr
}
