package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/slabworks/cardscan/internal/vision"
)

// RetryConfig holds the per-call retry policy.
type RetryConfig struct {
	MaxAttempts int           // total attempts including the first
	InitialWait time.Duration // doubled each retry
	MaxWait     time.Duration // backoff ceiling
}

// DefaultRetryConfig matches the extraction pipeline defaults.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 500 * time.Millisecond,
		MaxWait:     10 * time.Second,
	}
}

// sleeper lets tests replace real waiting.
type sleeper func(ctx context.Context, d time.Duration) error

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// retryAnalyze runs op with exponential backoff. Permanent provider errors
// fail immediately; retryable ones burn attempts until the budget runs out.
func retryAnalyze(ctx context.Context, cfg RetryConfig, sleep sleeper, op func() (vision.Result, error)) (vision.Result, int, error) {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if sleep == nil {
		sleep = sleepCtx
	}

	wait := cfg.InitialWait
	var res vision.Result
	var err error

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		res, err = op()
		if err == nil {
			return res, attempt, nil
		}
		if !vision.IsRetryable(err) {
			return res, attempt, err
		}
		if attempt == cfg.MaxAttempts {
			return res, attempt, fmt.Errorf("max retries exceeded (%d attempts): %w", cfg.MaxAttempts, err)
		}
		if serr := sleep(ctx, wait); serr != nil {
			return res, attempt, serr
		}
		wait *= 2
		if cfg.MaxWait > 0 && wait > cfg.MaxWait {
			wait = cfg.MaxWait
		}
	}
	return res, cfg.MaxAttempts, err
}
