package retry

import (
	"context"
	"time"
)

// Do executes fn up to attempts times, doubling the delay between tries.
// It stops early when fn succeeds or the context is canceled. The ballot
// submission path never goes through here; retrying is reserved for
// startup concerns like waiting on the database.
func Do(ctx context.Context, attempts int, baseDelay time.Duration, fn func() error) error {
	var err error
	delay := baseDelay

	for i := 0; i < attempts; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err = fn(); err == nil {
			return nil
		}

		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}
	return err
}
