package services

import (
	"context"
	"log/slog"
	"time"
)

// retry runs f up to attempts times with exponential backoff starting at
// sleep. Only errors for which retryable returns true are retried; the last
// error is returned once attempts are exhausted.
func retry(ctx context.Context, attempts int, sleep time.Duration, retryable func(error) bool, f func(attempt int) error) error {
	var err error
	for i := 1; i <= attempts; i++ {
		if err = f(i); err == nil {
			return nil
		}
		if !retryable(err) || i == attempts {
			return err
		}

		slog.WarnContext(ctx, "retrying", "attempt", i, "of", attempts, "backoff", sleep, "err", err)

		if sleep > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(sleep):
			}
			sleep *= 2
		}
	}
	return err
}
