package twitcheroo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// clientMetrics holds the Prometheus collectors for a single client.
// Registerer-scoped rather than package globals so multiple clients can
// report into separate registries.
type clientMetrics struct {
	// requests counts completed attempts by endpoint, method, and outcome
	// ("2xx", "4xx", "5xx", "error").
	requests *prometheus.CounterVec

	// duration tracks attempt latency in seconds by endpoint.
	duration *prometheus.HistogramVec

	// retries counts scheduled retry attempts.
	retries prometheus.Counter

	// authFailures counts requests rejected by the platform as unauthorized.
	authFailures prometheus.Counter
}

func newClientMetrics(reg prometheus.Registerer) *clientMetrics {
	factory := promauto.With(reg)

	return &clientMetrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "twitcheroo_requests_total",
				Help: "Total Twitch API attempts by endpoint, method, and outcome",
			},
			[]string{"endpoint", "method", "outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "twitcheroo_request_duration_seconds",
				Help:    "Twitch API attempt duration in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint"},
		),
		retries: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "twitcheroo_retries_total",
				Help: "Total retry attempts scheduled after transient failures",
			},
		),
		authFailures: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "twitcheroo_auth_failures_total",
				Help: "Total requests rejected by the platform as unauthorized",
			},
		),
	}
}

func (m *clientMetrics) observeAttempt(endpoint, method, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(endpoint, method, outcome).Inc()
	m.duration.WithLabelValues(endpoint).Observe(seconds)
}

func (m *clientMetrics) observeRetry() {
	if m == nil {
		return
	}
	m.retries.Inc()
}

func (m *clientMetrics) observeAuthFailure() {
	if m == nil {
		return
	}
	m.authFailures.Inc()
}
