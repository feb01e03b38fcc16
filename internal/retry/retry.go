// Package retry implements retry with exponential backoff for classified
// transient failures.
package retry

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

type Action int

const (
	Stop  Action = iota // permanent error, abort immediately
	Retry               // transient error, use normal backoff
	After               // rate-limited, use longer backoff
)

type Policy struct {
	MaxAttempts      int
	InitialBackoff   time.Duration
	RateLimitBackoff time.Duration
	OnRetry          func(attempt int, err error, backoff time.Duration)
}

type Classify func(err error) Action
type Operation[T any] func() (T, error)
type VoidOperation func() error

// DelayHinter lets an error carry its own retry delay, e.g. from a
// Ratelimit-Reset header. A positive hint replaces the policy backoff for
// the next attempt and is waited out in full.
type DelayHinter interface {
	RetryDelayHint() time.Duration
}

func Do[T any](ctx context.Context, p Policy, classify Classify, op Operation[T]) (T, error) {
	backoff := p.InitialBackoff

	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		val, err := op()
		if err == nil {
			return val, nil
		}

		action := classify(err)
		if action == Stop {
			var zero T
			return zero, &PermanentError{Err: err}
		}

		if attempt == p.MaxAttempts {
			var zero T
			return zero, fmt.Errorf("failed after %d attempts: %w", p.MaxAttempts, err)
		}

		var delay time.Duration
		if action == After {
			backoff = p.RateLimitBackoff
			if h, ok := err.(DelayHinter); ok && h.RetryDelayHint() > 0 {
				// The hint names the reset instant; sleeping any less
				// guarantees another rejection, so it is never jittered down.
				delay = h.RetryDelayHint()
			}
		}
		if delay == 0 {
			delay = jitter(backoff)
		}

		if p.OnRetry != nil {
			p.OnRetry(attempt, err, delay)
		}

		select {
		case <-time.After(delay):
			backoff *= 2
		case <-ctx.Done():
			var zero T
			return zero, fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}
	}

	panic("unreachable: MaxAttempts must be >= 1")
}

func DoVoid(ctx context.Context, p Policy, classify Classify, op VoidOperation) error {
	_, err := Do(ctx, p, classify, func() (struct{}, error) { return struct{}{}, op() })
	return err
}

// jitter spreads a backoff over [d/2, d) so concurrent callers don't retry
// in lockstep.
func jitter(d time.Duration) time.Duration {
	if d <= 1 {
		return d
	}
	half := d / 2
	return half + time.Duration(rand.Int63n(int64(half)))
}

type PermanentError struct {
	Err error
}

func (e *PermanentError) Error() string { return e.Err.Error() }
func (e *PermanentError) Unwrap() error { return e.Err }
