package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Gaborade/twitcheroo/internal/retry"
)

var fastPolicy = retry.Policy{
	MaxAttempts:      3,
	InitialBackoff:   1 * time.Millisecond,
	RateLimitBackoff: 5 * time.Millisecond,
}

func alwaysRetry(error) retry.Action { return retry.Retry }
func alwaysStop(error) retry.Action  { return retry.Stop }
func alwaysAfter(error) retry.Action { return retry.After }

func TestDo_SuccessFirstAttempt(t *testing.T) {
	_, err := retry.Do(context.Background(), fastPolicy, alwaysRetry, func() (struct{}, error) {
		return struct{}{}, nil
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestDo_SuccessAfterRetries(t *testing.T) {
	calls := 0
	_, err := retry.Do(context.Background(), fastPolicy, alwaysRetry, func() (struct{}, error) {
		calls++
		if calls < 3 {
			return struct{}{}, errors.New("transient")
		}
		return struct{}{}, nil
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestDo_ReturnsValue(t *testing.T) {
	calls := 0
	val, err := retry.Do(context.Background(), fastPolicy, alwaysRetry, func() (int, error) {
		calls++
		if calls < 2 {
			return 0, errors.New("transient")
		}
		return 42, nil
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if val != 42 {
		t.Fatalf("expected 42, got %d", val)
	}
}

func TestDo_PermanentErrorStopsImmediately(t *testing.T) {
	permanent := errors.New("permanent")
	calls := 0
	_, err := retry.Do(context.Background(), fastPolicy, alwaysStop, func() (struct{}, error) {
		calls++
		return struct{}{}, permanent
	})
	var permErr *retry.PermanentError
	if !errors.As(err, &permErr) {
		t.Fatalf("expected PermanentError, got %T: %v", err, err)
	}
	if !errors.Is(err, permanent) {
		t.Fatalf("expected wrapped permanent error, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}

func TestDo_ExhaustedRetries(t *testing.T) {
	underlying := errors.New("transient")
	calls := 0
	_, err := retry.Do(context.Background(), fastPolicy, alwaysRetry, func() (struct{}, error) {
		calls++
		return struct{}{}, underlying
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, underlying) {
		t.Fatalf("expected wrapped underlying error, got %v", err)
	}
	if calls != fastPolicy.MaxAttempts {
		t.Fatalf("expected %d calls, got %d", fastPolicy.MaxAttempts, calls)
	}
}

func TestDo_RateLimitBackoff(t *testing.T) {
	var observedBackoff time.Duration
	p := retry.Policy{
		MaxAttempts:      2,
		InitialBackoff:   1 * time.Millisecond,
		RateLimitBackoff: 10 * time.Millisecond,
		OnRetry: func(attempt int, err error, backoff time.Duration) {
			observedBackoff = backoff
		},
	}

	calls := 0
	_, err := retry.Do(context.Background(), p, alwaysAfter, func() (struct{}, error) {
		calls++
		if calls == 1 {
			return struct{}{}, errors.New("rate limited")
		}
		return struct{}{}, nil
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	// Jitter spreads the delay over [backoff/2, backoff).
	if observedBackoff < p.RateLimitBackoff/2 || observedBackoff >= p.RateLimitBackoff {
		t.Fatalf("expected backoff in [%s, %s), got %s", p.RateLimitBackoff/2, p.RateLimitBackoff, observedBackoff)
	}
}

type hintedError struct {
	hint time.Duration
}

func (e *hintedError) Error() string                 { return "rate limited" }
func (e *hintedError) RetryDelayHint() time.Duration { return e.hint }

func TestDo_DelayHintOverridesRateLimitBackoff(t *testing.T) {
	var observedBackoff time.Duration
	p := retry.Policy{
		MaxAttempts:      2,
		InitialBackoff:   1 * time.Millisecond,
		RateLimitBackoff: time.Minute,
		OnRetry: func(attempt int, err error, backoff time.Duration) {
			observedBackoff = backoff
		},
	}

	calls := 0
	_, err := retry.Do(context.Background(), p, alwaysAfter, func() (struct{}, error) {
		calls++
		if calls == 1 {
			return struct{}{}, &hintedError{hint: 2 * time.Millisecond}
		}
		return struct{}{}, nil
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if observedBackoff != 2*time.Millisecond {
		t.Fatalf("expected the hinted delay to be used exactly, got %s", observedBackoff)
	}
}

func TestDo_DelayHintIsNeverShortened(t *testing.T) {
	// The hint names the instant the server will accept requests again;
	// jittering it downward would guarantee a wasted attempt.
	var observed []time.Duration
	p := retry.Policy{
		MaxAttempts:      4,
		InitialBackoff:   1 * time.Millisecond,
		RateLimitBackoff: 1 * time.Millisecond,
		OnRetry: func(attempt int, err error, backoff time.Duration) {
			observed = append(observed, backoff)
		},
	}

	hint := 3 * time.Millisecond
	_, err := retry.Do(context.Background(), p, alwaysAfter, func() (struct{}, error) {
		return struct{}{}, &hintedError{hint: hint}
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(observed) != 3 {
		t.Fatalf("expected 3 retries, got %d", len(observed))
	}
	for i, backoff := range observed {
		if backoff < hint {
			t.Fatalf("retry %d: delay %s fell below the hinted reset %s", i+1, backoff, hint)
		}
	}
}

func TestDo_JitteredBackoffStaysBounded(t *testing.T) {
	var observed []time.Duration
	p := retry.Policy{
		MaxAttempts:    4,
		InitialBackoff: 4 * time.Millisecond,
		OnRetry: func(attempt int, err error, backoff time.Duration) {
			observed = append(observed, backoff)
		},
	}

	_, err := retry.Do(context.Background(), p, alwaysRetry, func() (struct{}, error) {
		return struct{}{}, errors.New("transient")
	})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(observed) != 3 {
		t.Fatalf("expected 3 retries, got %d", len(observed))
	}
	expected := p.InitialBackoff
	for i, backoff := range observed {
		if backoff < expected/2 || backoff >= expected {
			t.Fatalf("retry %d: expected backoff in [%s, %s), got %s", i+1, expected/2, expected, backoff)
		}
		expected *= 2
	}
}

func TestDo_ContextCancelDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := retry.Policy{
		MaxAttempts:    3,
		InitialBackoff: time.Minute,
	}

	calls := 0
	start := time.Now()
	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()
	_, err := retry.Do(ctx, p, alwaysRetry, func() (struct{}, error) {
		calls++
		return struct{}{}, errors.New("transient")
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
	if time.Since(start) > time.Second {
		t.Fatal("cancel did not interrupt the backoff sleep")
	}
}

func TestDoVoid_PropagatesError(t *testing.T) {
	underlying := errors.New("transient")
	err := retry.DoVoid(context.Background(), fastPolicy, alwaysRetry, func() error {
		return underlying
	})
	if !errors.Is(err, underlying) {
		t.Fatalf("expected wrapped underlying error, got %v", err)
	}
}
