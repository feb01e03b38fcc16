package twitcheroo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"
)

const (
	twitchTokenURL    = "https://id.twitch.tv/oauth2/token"
	twitchValidateURL = "https://id.twitch.tv/oauth2/validate"

	// Refresh when the token expires in less than this.
	tokenExpirySkew = 60 * time.Second

	// Twitch asks clients to revalidate tokens on an hourly basis.
	validateInterval = time.Hour

	tokenCallTimeout = 10 * time.Second
)

// Credentials supplies a valid access token for outbound requests. A
// Credentials value may be shared across clients; implementations must be
// safe for concurrent use.
type Credentials interface {
	// Token returns a currently valid access token, obtaining or refreshing
	// one as needed.
	Token(ctx context.Context) (string, error)

	// ClientID returns the application client identifier sent alongside the
	// token on every request.
	ClientID() string

	// HasScope reports whether the credential grants the given permission
	// scope. Credentials constructed without a scope list are treated as
	// unconstrained.
	HasScope(scope string) bool

	// Invalidate discards any cached token so the next Token call fetches a
	// fresh one. Called when the platform rejects the current token.
	Invalidate()
}

// ClientCredentials implements the OAuth client credentials flow for app
// access tokens. The token is fetched lazily on first use, cached until
// shortly before expiry, and revalidated hourly against the validate
// endpoint. Concurrent refreshes collapse into a single token request.
type ClientCredentials struct {
	clientID     string
	clientSecret string
	scopes       []string
	scopeSet     map[string]struct{}

	tokenURL    string // overridable for testing
	validateURL string
	httpClient  *http.Client
	clock       clockwork.Clock

	group singleflight.Group

	mu           sync.Mutex
	accessToken  string
	expiry       time.Time
	nextValidate time.Time
}

// NewClientCredentials creates an app access token provider. The scope list
// is optional; scopes are checked against the known Helix scope set and an
// unknown scope is rejected.
func NewClientCredentials(clientID, clientSecret string, scopes ...string) (*ClientCredentials, error) {
	if clientID == "" {
		return nil, errors.New("client id is required")
	}
	if clientSecret == "" {
		return nil, errors.New("client secret is required")
	}
	if err := validateScopes(scopes); err != nil {
		return nil, err
	}

	scopeSet := make(map[string]struct{}, len(scopes))
	for _, scope := range scopes {
		scopeSet[scope] = struct{}{}
	}

	return &ClientCredentials{
		clientID:     clientID,
		clientSecret: clientSecret,
		scopes:       scopes,
		scopeSet:     scopeSet,
		tokenURL:     twitchTokenURL,
		validateURL:  twitchValidateURL,
		httpClient:   &http.Client{Timeout: tokenCallTimeout},
		clock:        clockwork.NewRealClock(),
	}, nil
}

// ClientID returns the application client identifier.
func (c *ClientCredentials) ClientID() string { return c.clientID }

// Scopes returns the scopes the credential was constructed with.
func (c *ClientCredentials) Scopes() []string {
	out := make([]string, len(c.scopes))
	copy(out, c.scopes)
	return out
}

// HasScope reports whether the credential grants the given scope. A
// credential built without scopes defers the check to the platform.
func (c *ClientCredentials) HasScope(scope string) bool {
	if len(c.scopeSet) == 0 {
		return true
	}
	_, ok := c.scopeSet[scope]
	return ok
}

// Invalidate discards the cached token.
func (c *ClientCredentials) Invalidate() {
	c.mu.Lock()
	c.accessToken = ""
	c.expiry = time.Time{}
	c.nextValidate = time.Time{}
	c.mu.Unlock()
}

// Token returns a valid app access token, fetching or refreshing one if the
// cached token is absent, near expiry, or due for revalidation.
func (c *ClientCredentials) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	now := c.clock.Now()
	if c.accessToken != "" && now.Add(tokenExpirySkew).Before(c.expiry) && now.Before(c.nextValidate) {
		token := c.accessToken
		c.mu.Unlock()
		return token, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do("token", func() (any, error) {
		return c.refresh(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *ClientCredentials) refresh(ctx context.Context) (string, error) {
	c.mu.Lock()
	token := c.accessToken
	expiry := c.expiry
	nextValidate := c.nextValidate
	c.mu.Unlock()

	now := c.clock.Now()
	if token != "" && now.Add(tokenExpirySkew).Before(expiry) {
		if now.Before(nextValidate) {
			// Another caller refreshed while we waited on the singleflight.
			return token, nil
		}

		valid, err := c.validateToken(ctx, token)
		if err != nil {
			// Validate endpoint unreachable; keep the cached token and try
			// validating again on the next call.
			return token, nil
		}
		if valid {
			c.mu.Lock()
			c.nextValidate = now.Add(validateInterval)
			c.mu.Unlock()
			return token, nil
		}
		// Token revoked server-side, fall through to fetch a new one.
	}

	accessToken, expiresIn, err := c.fetchToken(ctx)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.accessToken = accessToken
	c.expiry = c.clock.Now().Add(time.Duration(expiresIn) * time.Second)
	c.nextValidate = c.clock.Now().Add(validateInterval)
	c.mu.Unlock()

	return accessToken, nil
}

func (c *ClientCredentials) fetchToken(ctx context.Context) (accessToken string, expiresIn int, err error) {
	data := url.Values{}
	data.Set("client_id", c.clientID)
	data.Set("client_secret", c.clientSecret)
	data.Set("grant_type", "client_credentials")
	if len(c.scopes) > 0 {
		data.Set("scope", strings.Join(c.scopes, " "))
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.tokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", 0, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("failed to execute token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", 0, &AuthError{Status: resp.StatusCode, Message: errorMessage(body)}
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", 0, fmt.Errorf("failed to decode token response: %w", err)
	}
	if result.AccessToken == "" {
		return "", 0, &AuthError{Status: resp.StatusCode, Message: "no access token returned"}
	}

	return result.AccessToken, result.ExpiresIn, nil
}

// validateToken checks the token against the validate endpoint. Returns
// false when the platform reports the token no longer valid.
func (c *ClientCredentials) validateToken(ctx context.Context, token string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.validateURL, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create validate request: %w", err)
	}
	req.Header.Set("Authorization", "OAuth "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to execute validate request: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusUnauthorized:
		return false, nil
	default:
		return false, fmt.Errorf("validate returned status %d", resp.StatusCode)
	}
}

// errorMessage pulls the message out of a Helix error body, falling back to
// the raw body.
func errorMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(body))
}

// StaticToken wraps a pre-obtained access token, such as a user token from
// an authorization code flow completed elsewhere. The token is never
// refreshed; once the platform rejects it, calls fail with *AuthError.
type StaticToken struct {
	clientID string
	scopes   []string
	scopeSet map[string]struct{}

	mu    sync.Mutex
	token string
}

// NewStaticToken creates a credential around an existing access token.
func NewStaticToken(clientID, token string, scopes ...string) (*StaticToken, error) {
	if clientID == "" {
		return nil, errors.New("client id is required")
	}
	if token == "" {
		return nil, errors.New("token is required")
	}
	if err := validateScopes(scopes); err != nil {
		return nil, err
	}

	scopeSet := make(map[string]struct{}, len(scopes))
	for _, scope := range scopes {
		scopeSet[scope] = struct{}{}
	}

	return &StaticToken{
		clientID: clientID,
		scopes:   scopes,
		scopeSet: scopeSet,
		token:    token,
	}, nil
}

// Token returns the wrapped token, or an *AuthError after invalidation.
func (s *StaticToken) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token == "" {
		return "", &AuthError{Status: http.StatusUnauthorized, Message: "static token was rejected by the platform"}
	}
	return s.token, nil
}

// ClientID returns the application client identifier.
func (s *StaticToken) ClientID() string { return s.clientID }

// HasScope reports whether the token grants the given scope.
func (s *StaticToken) HasScope(scope string) bool {
	if len(s.scopeSet) == 0 {
		return true
	}
	_, ok := s.scopeSet[scope]
	return ok
}

// Invalidate discards the token. There is no refresh path for a static
// token.
func (s *StaticToken) Invalidate() {
	s.mu.Lock()
	s.token = ""
	s.mu.Unlock()
}
