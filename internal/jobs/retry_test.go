package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slabworks/cardscan/internal/vision"
)

func noSleep(_ context.Context, _ time.Duration) error { return nil }

func retryableTestErr(msg string) error {
	return &vision.ProviderError{Provider: "test", Retryable: true, Err: errors.New(msg)}
}

func permanentTestErr(msg string) error {
	return &vision.ProviderError{Provider: "test", Retryable: false, Err: errors.New(msg)}
}

func TestRetryAnalyzeImmediateSuccess(t *testing.T) {
	calls := 0
	res, attempts, err := retryAnalyze(context.Background(), DefaultRetryConfig(), noSleep, func() (vision.Result, error) {
		calls++
		return vision.Result{ProviderName: "test"}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, attempts)
	assert.Equal(t, "test", res.ProviderName)
}

func TestRetryAnalyzeSuccessAfterRetries(t *testing.T) {
	calls := 0
	_, attempts, err := retryAnalyze(context.Background(), DefaultRetryConfig(), noSleep, func() (vision.Result, error) {
		calls++
		if calls < 3 {
			return vision.Result{}, retryableTestErr("transient")
		}
		return vision.Result{}, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, attempts)
}

func TestRetryAnalyzeExhaustsBudget(t *testing.T) {
	calls := 0
	_, attempts, err := retryAnalyze(context.Background(), RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond}, noSleep, func() (vision.Result, error) {
		calls++
		return vision.Result{}, retryableTestErr("still down")
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, attempts)
	assert.Contains(t, err.Error(), "max retries exceeded")
}

func TestRetryAnalyzePermanentFailsFast(t *testing.T) {
	calls := 0
	_, attempts, err := retryAnalyze(context.Background(), DefaultRetryConfig(), noSleep, func() (vision.Result, error) {
		calls++
		return vision.Result{}, permanentTestErr("bad image")
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, attempts)
	assert.False(t, vision.IsRetryable(err))
}

func TestRetryAnalyzeBackoffDoublesAndCaps(t *testing.T) {
	var waits []time.Duration
	record := func(_ context.Context, d time.Duration) error {
		waits = append(waits, d)
		return nil
	}

	cfg := RetryConfig{MaxAttempts: 5, InitialWait: 100 * time.Millisecond, MaxWait: 300 * time.Millisecond}
	_, _, err := retryAnalyze(context.Background(), cfg, record, func() (vision.Result, error) {
		return vision.Result{}, retryableTestErr("down")
	})

	require.Error(t, err)
	assert.Equal(t, []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		300 * time.Millisecond,
		300 * time.Millisecond,
	}, waits)
}

func TestRetryAnalyzeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	_, _, err := retryAnalyze(ctx, DefaultRetryConfig(), func(ctx context.Context, _ time.Duration) error {
		cancel()
		return ctx.Err()
	}, func() (vision.Result, error) {
		calls++
		return vision.Result{}, retryableTestErr("transient")
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}
