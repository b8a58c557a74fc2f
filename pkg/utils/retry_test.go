package utils

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts:   attempts,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		BackoffFactor: 2.0,
	}
}

func TestRetryWithResultSucceedsAfterFailures(t *testing.T) {
	calls := 0
	result, err := RetryWithResult(context.Background(), fastRetry(3), func() (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})
	if err != nil {
		t.Fatalf("RetryWithResult: %v", err)
	}
	if result != 42 || calls != 3 {
		t.Errorf("result = %d after %d calls", result, calls)
	}
}

func TestRetryWithResultExhaustsAttempts(t *testing.T) {
	calls := 0
	wantErr := errors.New("persistent")
	_, err := RetryWithResult(context.Background(), fastRetry(3), func() (int, error) {
		calls++
		return 0, wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestRetryStopsOnNonRetryable(t *testing.T) {
	cfg := fastRetry(5)
	fatal := errors.New("fatal")
	cfg.Retryable = func(err error) bool { return !errors.Is(err, fatal) }

	calls := 0
	_, err := RetryWithResult(context.Background(), cfg, func() (int, error) {
		calls++
		return 0, fatal
	})
	if !errors.Is(err, fatal) {
		t.Errorf("err = %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 (no retry on non-retryable)", calls)
	}
}

func TestRetryRespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	cfg := fastRetry(10)
	cfg.InitialDelay = time.Second

	calls := 0
	done := make(chan error, 1)
	go func() {
		_, err := RetryWithResult(ctx, cfg, func() (int, error) {
			calls++
			return 0, errors.New("transient")
		})
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("err = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("retry did not observe cancellation")
	}
}

func TestRetryDelegates(t *testing.T) {
	calls := 0
	err := Retry(context.Background(), fastRetry(2), func() error {
		calls++
		if calls == 1 {
			return errors.New("transient")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}
