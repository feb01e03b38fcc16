package twitcheroo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "twitch api error: status 500: upstream down",
		(&APIError{Status: 500, Message: "upstream down"}).Error())
	assert.Equal(t, "twitch api error: status 502",
		(&APIError{Status: 502}).Error())

	assert.Equal(t, "twitch auth failed: status 401: invalid access token",
		(&AuthError{Status: 401, Message: "invalid access token"}).Error())

	assert.Equal(t, "twitch rate limited",
		(&RateLimitError{}).Error())
	assert.Equal(t, "twitch rate limited: retry after 3s",
		(&RateLimitError{RetryAfter: 3 * time.Second}).Error())

	assert.Equal(t, "<bits:read> scope required",
		(&ScopeError{Scope: "bits:read"}).Error())

	assert.Equal(t, "invalid request: title is a required body parameter",
		(&RequestError{Message: "title is a required body parameter"}).Error())
}

func TestRateLimitError_RetryDelayHint(t *testing.T) {
	assert.Equal(t, 3*time.Second, (&RateLimitError{RetryAfter: 3 * time.Second}).RetryDelayHint())
	assert.Equal(t, time.Duration(0), (&RateLimitError{}).RetryDelayHint())
}

func TestValidateScopes(t *testing.T) {
	assert.NoError(t, validateScopes(nil))
	assert.NoError(t, validateScopes([]string{"bits:read", "channel:manage:polls"}))
	assert.NoError(t, validateScopes([]string{"user_read"}))
	assert.Error(t, validateScopes([]string{"bits:read", "bogus"}))
}
