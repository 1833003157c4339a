package data

import (
	"context"
	"errors"
	"time"

	"github.com/go-kratos/kratos/v2/log"
)

// retry runs fn up to attempts times, sleeping delay between failures.
// It returns the last error once the budget is spent or ctx is done.
func retry(ctx context.Context, attempts int, delay time.Duration, l *log.Helper, fn func(context.Context) error) error {
	if attempts <= 0 {
		return errors.New("retry: attempts must be positive")
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		l.Infof("attempting to connect to databases... attempt %d of %d", attempt, attempts)

		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == attempts {
			break
		}
		l.Warnf("connection attempt failed: %v; retrying in %s", err, delay)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return lastErr
}
