// Package resilience implements bounded retry with exponential backoff for
// calls against remote services.
package resilience

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"
)

// RetryConfig controls a retry loop.
type RetryConfig struct {
	// MaxAttempts is the total number of attempts, the first try included.
	// A value of 1 means no retries. Default: 3.
	MaxAttempts int

	// InitialBackoff is the wait before the second attempt. Default: 1s.
	InitialBackoff time.Duration

	// MaxBackoff caps a single wait. Default: 2m.
	MaxBackoff time.Duration

	// Multiplier scales the backoff after each failed attempt. Default: 2.0.
	Multiplier float64

	// ShouldRetry decides whether an error deserves another attempt.
	// If nil, IsTransient is used.
	ShouldRetry func(err error) bool

	// OnRetry runs before each backoff wait, with the 1-based number of the
	// attempt that just failed and its error.
	OnRetry func(attempt int, err error)
}

func withDefaults(cfg RetryConfig) RetryConfig {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 3
	}
	if cfg.InitialBackoff <= 0 {
		cfg.InitialBackoff = time.Second
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = 2 * time.Minute
	}
	if cfg.Multiplier <= 0 {
		cfg.Multiplier = 2.0
	}
	return cfg
}

// Backoff returns the wait that follows the given zero-based failed
// attempt: InitialBackoff * Multiplier^attempt, capped at MaxBackoff.
func Backoff(attempt int, cfg RetryConfig) time.Duration {
	cfg = withDefaults(cfg)
	d := float64(cfg.InitialBackoff) * math.Pow(cfg.Multiplier, float64(attempt))
	if d > float64(cfg.MaxBackoff) {
		d = float64(cfg.MaxBackoff)
	}
	return time.Duration(d)
}

// Do runs fn up to cfg.MaxAttempts times. Attempts are strictly
// sequential; a failed attempt waits Backoff(n, cfg) before the next one.
// The wait is a timer select, so context cancellation interrupts it and
// stops the loop. After the final failed attempt the last error is
// returned exactly as fn produced it.
func Do(ctx context.Context, cfg RetryConfig, fn func(ctx context.Context) error) error {
	_, err := DoVal(ctx, cfg, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

// DoVal is Do for calls that return a value. The value from the first
// successful attempt is returned; failures follow Do semantics.
func DoVal[T any](ctx context.Context, cfg RetryConfig, fn func(ctx context.Context) (T, error)) (T, error) {
	cfg = withDefaults(cfg)

	shouldRetry := cfg.ShouldRetry
	if shouldRetry == nil {
		shouldRetry = IsTransient
	}

	var zero T
	var lastErr error
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		val, err := fn(ctx)
		if err == nil {
			return val, nil
		}
		lastErr = err

		if ctx.Err() != nil {
			return zero, lastErr
		}
		if !shouldRetry(lastErr) {
			return zero, lastErr
		}
		if attempt == cfg.MaxAttempts-1 {
			break
		}

		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt+1, lastErr)
		}

		timer := time.NewTimer(Backoff(attempt, cfg))
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, lastErr
		case <-timer.C:
		}
	}

	return zero, lastErr
}

// RetryLogger returns an OnRetry callback that logs each retry attempt.
func RetryLogger(component, operation string) func(int, error) {
	return func(attempt int, err error) {
		zap.L().Warn("retrying request",
			zap.String("component", component),
			zap.String("operation", operation),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
	}
}
