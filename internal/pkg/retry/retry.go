// internal/pkg/retry/retry.go
package retry

import (
	"context"
	"fmt"
	"time"
)

// SleepFunc waits for the given duration or until the context is done.
// Injected in tests so the backoff schedule can be asserted without real waits.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Sleep is the default SleepFunc backed by a real timer
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Config controls the retry loop
type Config struct {
	Attempts int           // total attempts, at least 1
	Backoff  time.Duration // linear backoff unit: wait Backoff × attemptNumber between attempts
	Sleep    SleepFunc     // nil means Sleep
}

// Do runs op up to cfg.Attempts times. After a failed attempt n (1-based)
// that is not the last, it waits Backoff × n before retrying. The error of
// the final attempt is returned once the budget is exhausted.
func Do(ctx context.Context, cfg Config, op func(ctx context.Context) error) error {
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	sleep := cfg.Sleep
	if sleep == nil {
		sleep = Sleep
	}

	var lastErr error
	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == cfg.Attempts {
			break
		}

		if err := sleep(ctx, cfg.Backoff*time.Duration(attempt)); err != nil {
			return fmt.Errorf("retry aborted: %w", err)
		}
	}

	return fmt.Errorf("all %d attempts failed: %w", cfg.Attempts, lastErr)
}
