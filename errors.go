package twitcheroo

import (
	"fmt"
	"time"
)

// APIError is a non-2xx response from the Helix API. Code carries the error
// name from the response body (e.g. "Bad Request"), Message the human-readable
// detail.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("twitch api error: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("twitch api error: status %d", e.Status)
}

// AuthError indicates the platform rejected the credentials, either during
// token acquisition or on an API call (401/403).
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("twitch auth failed: status %d: %s", e.Status, e.Message)
}

// RateLimitError is a 429 response. RetryAfter is derived from the
// Ratelimit-Reset header when the platform sends one, zero otherwise.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("twitch rate limited: retry after %s", e.RetryAfter)
	}
	return "twitch rate limited"
}

// RetryDelayHint reports how long the platform asked us to wait.
func (e *RateLimitError) RetryDelayHint() time.Duration {
	return e.RetryAfter
}

// ScopeError indicates the credential was not constructed with a scope the
// endpoint requires. Checked client-side before the request is sent.
type ScopeError struct {
	Scope string
}

func (e *ScopeError) Error() string {
	return fmt.Sprintf("<%s> scope required", e.Scope)
}

// RequestError indicates a malformed request rejected client-side, such as a
// missing required body parameter. Never retried.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("invalid request: %s", e.Message)
}
