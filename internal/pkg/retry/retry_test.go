package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recordingSleep(waits *[]time.Duration) SleepFunc {
	return func(ctx context.Context, d time.Duration) error {
		*waits = append(*waits, d)
		return nil
	}
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	var waits []time.Duration
	calls := 0

	err := Do(context.Background(), Config{Attempts: 3, Backoff: time.Second, Sleep: recordingSleep(&waits)}, func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Empty(t, waits)
}

func TestDo_SucceedsSecondAttempt_OneBackoffWait(t *testing.T) {
	var waits []time.Duration
	calls := 0

	err := Do(context.Background(), Config{Attempts: 3, Backoff: time.Second, Sleep: recordingSleep(&waits)}, func(ctx context.Context) error {
		calls++
		if calls < 2 {
			return errors.New("boom")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.Equal(t, []time.Duration{time.Second}, waits)
}

func TestDo_ExhaustsBudget_LinearBackoff(t *testing.T) {
	var waits []time.Duration
	boom := errors.New("boom")
	calls := 0

	err := Do(context.Background(), Config{Attempts: 3, Backoff: time.Second, Sleep: recordingSleep(&waits)}, func(ctx context.Context) error {
		calls++
		return boom
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, calls)
	// No wait after the final attempt
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, waits)
}

func TestDo_ContextCanceledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	err := Do(ctx, Config{Attempts: 3, Backoff: time.Second, Sleep: func(ctx context.Context, d time.Duration) error {
		cancel()
		return ctx.Err()
	}}, func(ctx context.Context) error {
		return errors.New("boom")
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDo_ZeroAttemptsTreatedAsOne(t *testing.T) {
	calls := 0

	err := Do(context.Background(), Config{Attempts: 0}, func(ctx context.Context) error {
		calls++
		return errors.New("boom")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
