package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastConfig(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     10 * time.Millisecond,
		Multiplier:     2.0,
		ShouldRetry:    func(error) bool { return true },
	}
}

func TestDo_SuccessOnFirstAttempt(t *testing.T) {
	var calls int
	err := Do(context.Background(), fastConfig(3), func(_ context.Context) error {
		calls++
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestDoVal_TwoFailuresThenSuccess(t *testing.T) {
	var calls int
	var retries []int
	cfg := fastConfig(3)
	cfg.OnRetry = func(attempt int, _ error) { retries = append(retries, attempt) }

	v, err := DoVal(context.Background(), cfg, func(_ context.Context) (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("temporary")
		}
		return "payload", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "payload" {
		t.Errorf("expected payload, got %q", v)
	}
	if calls != 3 {
		t.Errorf("expected exactly 3 calls, got %d", calls)
	}
	// Two waits, after attempts 1 and 2, never a third.
	if len(retries) != 2 || retries[0] != 1 || retries[1] != 2 {
		t.Errorf("expected retries after attempts 1 and 2, got %v", retries)
	}
}

func TestDoVal_ExhaustionReturnsLastErrorUnchanged(t *testing.T) {
	var calls int
	sentinel := errors.New("connection refused by upstream")

	_, err := DoVal(context.Background(), fastConfig(2), func(_ context.Context) (int, error) {
		calls++
		return 0, sentinel
	})
	if calls != 2 {
		t.Errorf("expected exactly 2 attempts, got %d", calls)
	}
	if err != sentinel { //nolint:errorlint // identity is the contract
		t.Errorf("expected the original error back, got %v", err)
	}
}

func TestDo_NonRetryableStopsImmediately(t *testing.T) {
	var calls int
	cfg := fastConfig(5)
	cfg.ShouldRetry = func(error) bool { return false }

	err := Do(context.Background(), cfg, func(_ context.Context) error {
		calls++
		return errors.New("bad request")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestDo_ContextCancelStopsRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var calls int
	cfg := fastConfig(5)
	cfg.InitialBackoff = 50 * time.Millisecond
	cfg.MaxBackoff = 100 * time.Millisecond

	err := Do(ctx, cfg, func(_ context.Context) error {
		calls++
		if calls == 2 {
			cancel()
		}
		return errors.New("fail")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls > 3 {
		t.Errorf("expected <= 3 calls after cancel, got %d", calls)
	}
}

func TestBackoff_DoublesAndCaps(t *testing.T) {
	cfg := RetryConfig{
		InitialBackoff: time.Second,
		MaxBackoff:     5 * time.Second,
		Multiplier:     2.0,
	}

	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second, 5 * time.Second, 5 * time.Second}
	for attempt, expected := range want {
		if got := Backoff(attempt, cfg); got != expected {
			t.Errorf("attempt %d: expected %v, got %v", attempt, expected, got)
		}
	}
}

func TestIsTransient(t *testing.T) {
	if IsTransient(nil) {
		t.Error("nil is not transient")
	}
	if !IsTransient(NewTransientError(errors.New("overloaded"), 503)) {
		t.Error("explicit TransientError should be transient")
	}
	if !IsTransient(errors.New("dial tcp: i/o timeout")) {
		t.Error("i/o timeout should be transient")
	}
	if IsTransient(errors.New("invalid query syntax")) {
		t.Error("syntax errors are not transient")
	}
}

func TestIsTransientHTTPStatus(t *testing.T) {
	for _, code := range []int{408, 429, 500, 502, 503, 504} {
		if !IsTransientHTTPStatus(code) {
			t.Errorf("status %d should be transient", code)
		}
	}
	for _, code := range []int{200, 204, 400, 401, 404} {
		if IsTransientHTTPStatus(code) {
			t.Errorf("status %d should not be transient", code)
		}
	}
}
