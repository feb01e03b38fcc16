package twitcheroo

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/failsafe-go/failsafe-go/circuitbreaker"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

const (
	twitchAPIBaseURL = "https://api.twitch.tv/helix"

	defaultMaxRetries       = 3
	defaultTimeout          = 10 * time.Second
	defaultInitialBackoff   = 500 * time.Millisecond
	defaultRateLimitBackoff = 5 * time.Second
)

// Client is a session against the Helix API. Its configuration is immutable
// after construction and it is safe for concurrent use; concurrent calls
// share the credential provider's cached token.
type Client struct {
	creds      Credentials
	baseURL    string
	httpClient *http.Client

	maxRetries       int
	timeout          time.Duration
	initialBackoff   time.Duration
	rateLimitBackoff time.Duration

	logger  *slog.Logger
	limiter *rate.Limiter
	breaker circuitbreaker.CircuitBreaker[any]
	metrics *clientMetrics

	useBreaker bool
	metricsReg prometheus.Registerer
}

// Option configures a Client at construction time.
type Option func(*Client) error

// WithMaxRetries sets how many attempts a request gets before the last
// failure surfaces. Must be at least 1.
func WithMaxRetries(n int) Option {
	return func(c *Client) error {
		if n < 1 {
			return fmt.Errorf("max retries must be at least 1, got %d", n)
		}
		c.maxRetries = n
		return nil
	}
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", d)
		}
		c.timeout = d
		return nil
	}
}

// WithBackoff sets the initial backoff for transient failures and the
// backoff used after a rate-limit response. Each retry doubles the delay,
// with jitter.
func WithBackoff(initial, rateLimit time.Duration) Option {
	return func(c *Client) error {
		if initial <= 0 || rateLimit <= 0 {
			return errors.New("backoff durations must be positive")
		}
		c.initialBackoff = initial
		c.rateLimitBackoff = rateLimit
		return nil
	}
}

// WithBaseURL overrides the API base URL. Used in tests.
func WithBaseURL(u string) Option {
	return func(c *Client) error {
		c.baseURL = u
		return nil
	}
}

// WithHTTPClient replaces the underlying HTTP client. The per-attempt
// timeout is still enforced through the request context.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return errors.New("http client must not be nil")
		}
		c.httpClient = hc
		return nil
	}
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) error {
		if l == nil {
			return errors.New("logger must not be nil")
		}
		c.logger = l
		return nil
	}
}

// WithRateLimit throttles outbound attempts client-side to the given
// sustained rate and burst.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Client) error {
		if burst < 1 {
			return fmt.Errorf("burst must be at least 1, got %d", burst)
		}
		c.limiter = rate.NewLimiter(limit, burst)
		return nil
	}
}

// WithCircuitBreaker guards request execution with a circuit breaker: 60%
// failure rate over a 10s window (min 5 requests) opens the circuit, which
// half-opens after 30s. While open, calls fail fast with
// circuitbreaker.ErrOpen.
func WithCircuitBreaker() Option {
	return func(c *Client) error {
		c.useBreaker = true
		return nil
	}
}

// WithMetrics registers Prometheus metrics (request counts and durations,
// retry and auth failure counters) with the given registerer.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) error {
		if reg == nil {
			return errors.New("registerer must not be nil")
		}
		c.metricsReg = reg
		return nil
	}
}

// New creates a session from a credential provider and options.
func New(creds Credentials, opts ...Option) (*Client, error) {
	if creds == nil {
		return nil, errors.New("credentials are required")
	}

	c := &Client{
		creds:            creds,
		baseURL:          twitchAPIBaseURL,
		httpClient:       &http.Client{},
		maxRetries:       defaultMaxRetries,
		timeout:          defaultTimeout,
		initialBackoff:   defaultInitialBackoff,
		rateLimitBackoff: defaultRateLimitBackoff,
		logger:           slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if c.useBreaker {
		c.breaker = newRequestBreaker(c.logger)
	}
	if c.metricsReg != nil {
		c.metrics = newClientMetrics(c.metricsReg)
	}

	return c, nil
}

// newRequestBreaker mirrors the breaker settings used for other external
// dependencies: 60% failure rate, min 5 requests, 10s rolling window, 30s
// delay before half-open, one success to close.
func newRequestBreaker(logger *slog.Logger) circuitbreaker.CircuitBreaker[any] {
	return circuitbreaker.Builder[any]().
		WithFailureRateThreshold(60, 5, 10*time.Second).
		WithDelay(30 * time.Second).
		WithSuccessThreshold(1).
		OnStateChanged(func(e circuitbreaker.StateChangedEvent) {
			logger.Warn("circuit breaker state changed",
				"component", "twitch_api",
				"from", e.OldState.String(),
				"to", e.NewState.String(),
			)
		}).
		Build()
}
