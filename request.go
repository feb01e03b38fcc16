package twitcheroo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Gaborade/twitcheroo/internal/retry"
	"github.com/failsafe-go/failsafe-go/circuitbreaker"
	"github.com/google/uuid"
)

// do executes one API call with the session's retry policy. It returns the
// raw response body on success and the last classified failure on
// exhaustion. Permanent failures surface immediately.
func (c *Client) do(ctx context.Context, method, path string, q url.Values, body any) ([]byte, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	logger := c.logger.With("call_id", uuid.NewString(), "method", method, "endpoint", path)

	policy := retry.Policy{
		MaxAttempts:      c.maxRetries,
		InitialBackoff:   c.initialBackoff,
		RateLimitBackoff: c.rateLimitBackoff,
		OnRetry: func(attempt int, err error, backoff time.Duration) {
			c.metrics.observeRetry()
			logger.Debug("retrying request", "attempt", attempt, "backoff", backoff, "error", err)
		},
	}

	out, err := retry.Do(ctx, policy, classifyOutcome, func() ([]byte, error) {
		return c.attempt(ctx, logger, method, path, q, payload)
	})
	if err != nil {
		var perm *retry.PermanentError
		if errors.As(err, &perm) {
			return nil, perm.Err
		}
		return nil, err
	}
	return out, nil
}

func (c *Client) attempt(ctx context.Context, logger *slog.Logger, method, path string, q url.Values, payload []byte) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	if c.breaker != nil && !c.breaker.TryAcquirePermit() {
		return nil, fmt.Errorf("request rejected: %w", circuitbreaker.ErrOpen)
	}

	body, err := c.roundTrip(ctx, method, path, q, payload)
	if c.breaker != nil {
		if isServiceFailure(err) {
			c.breaker.RecordError(err)
		} else {
			c.breaker.RecordSuccess()
		}
	}
	if err != nil {
		logger.Debug("request attempt failed", "error", err)
	}
	return body, err
}

func (c *Client) roundTrip(ctx context.Context, method, path string, q url.Values, payload []byte) ([]byte, error) {
	token, err := c.creds.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain token: %w", err)
	}

	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(attemptCtx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Client-Id", c.creds.ClientID())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.observeAttempt(path, method, "error", time.Since(start).Seconds())
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		c.metrics.observeAttempt(path, method, "error", elapsed)
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.metrics.observeAttempt(path, method, outcomeLabel(resp.StatusCode), elapsed)

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	case resp.StatusCode == http.StatusUnauthorized:
		c.metrics.observeAuthFailure()
		// Token rejected: drop the cache so the next obtain refreshes.
		c.creds.Invalidate()
		return nil, &AuthError{Status: resp.StatusCode, Message: errorMessage(body)}
	case resp.StatusCode == http.StatusForbidden:
		c.metrics.observeAuthFailure()
		return nil, &AuthError{Status: resp.StatusCode, Message: errorMessage(body)}
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &RateLimitError{RetryAfter: rateLimitDelay(resp.Header, time.Now())}
	default:
		return nil, newAPIError(resp.StatusCode, body)
	}
}

// classifyOutcome maps a failed attempt to a retry action. Timeouts,
// transport errors, rate limiting, and 5xx responses are transient; auth
// failures and other 4xx responses are permanent.
func classifyOutcome(err error) retry.Action {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return retry.Stop
	}

	var rateErr *RateLimitError
	if errors.As(err, &rateErr) {
		return retry.After
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Status >= 500 {
			return retry.Retry
		}
		return retry.Stop
	}

	if errors.Is(err, circuitbreaker.ErrOpen) || errors.Is(err, context.Canceled) {
		return retry.Stop
	}

	return retry.Retry
}

// isServiceFailure reports whether an attempt outcome indicates the service
// itself is unhealthy. 4xx responses and rate limiting mean the service
// answered and must not trip the breaker.
func isServiceFailure(err error) bool {
	if err == nil {
		return false
	}
	var authErr *AuthError
	var rateErr *RateLimitError
	if errors.As(err, &authErr) || errors.As(err, &rateErr) {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= 500
	}
	return !errors.Is(err, circuitbreaker.ErrOpen)
}

func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Error   string `json:"error"`
		Status  int    `json:"status"`
		Message string `json:"message"`
	}
	apiErr := &APIError{Status: status}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Code = payload.Error
		apiErr.Message = payload.Message
	}
	return apiErr
}

// rateLimitDelay derives a wait duration from the Ratelimit-Reset header,
// which carries a Unix timestamp.
func rateLimitDelay(h http.Header, now time.Time) time.Duration {
	reset := h.Get("Ratelimit-Reset")
	if reset == "" {
		return 0
	}
	sec, err := strconv.ParseInt(reset, 10, 64)
	if err != nil {
		return 0
	}
	d := time.Unix(sec, 0).Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

func outcomeLabel(status int) string {
	switch {
	case status < 300:
		return "2xx"
	case status < 400:
		return "3xx"
	case status < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

// requireScope is the client-side preflight for scope-gated endpoints.
func (c *Client) requireScope(scope string) error {
	if !c.creds.HasScope(scope) {
		return &ScopeError{Scope: scope}
	}
	return nil
}

// listResponse is the Helix data envelope common to most endpoints.
type listResponse[T any] struct {
	Data []T `json:"data"`
}

// doList executes a call and decodes the data envelope into a slice.
func doList[T any](ctx context.Context, c *Client, method, path string, q url.Values, body any) ([]T, error) {
	raw, err := c.do(ctx, method, path, q, body)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var envelope listResponse[T]
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return envelope.Data, nil
}

// doJSON executes a call and decodes the whole body, for endpoints whose
// responses carry fields beside the data array.
func doJSON[T any](ctx context.Context, c *Client, method, path string, q url.Values, body any) (*T, error) {
	raw, err := c.do(ctx, method, path, q, body)
	if err != nil {
		return nil, err
	}
	var out T
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return &out, nil
}

// doEmpty executes a call whose success response has no body.
func (c *Client) doEmpty(ctx context.Context, method, path string, q url.Values, body any) error {
	_, err := c.do(ctx, method, path, q, body)
	return err
}

// Query parameter helpers. Optional parameters are omitted when unset;
// list-valued parameters fan out to repeated keys.

func optString(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func optInt(q url.Values, key string, value int) {
	if value != 0 {
		q.Set(key, strconv.Itoa(value))
	}
}

func setBool(q url.Values, key string, value bool) {
	q.Set(key, strconv.FormatBool(value))
}

func addEach(q url.Values, key string, values []string) {
	for _, v := range values {
		q.Add(key, v)
	}
}
