// Package metrics provides Prometheus metrics for the API server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// News outcomes recorded by the fetch/cache route.
const (
	OutcomeCacheHit    = "cache_hit"
	OutcomeCooldown    = "cooldown"
	OutcomeFetched     = "fetched"
	OutcomeFallback    = "fallback"
	OutcomeRateLimited = "rate_limited"
	OutcomeError       = "error"
)

var (
	// NewsRequestsTotal counts /api/news requests by outcome.
	NewsRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "techpulse",
			Name:      "news_requests_total",
			Help:      "Total number of news requests by cache outcome",
		},
		[]string{"outcome"},
	)

	// UpstreamCallsTotal counts calls to third-party providers.
	UpstreamCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "techpulse",
			Name:      "upstream_calls_total",
			Help:      "Total number of upstream provider calls",
		},
		[]string{"provider", "status"},
	)

	// UpstreamDuration measures upstream call duration.
	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "techpulse",
			Name:      "upstream_duration_seconds",
			Help:      "Duration of upstream provider calls in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	// HTTPRequestsTotal counts inbound API requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "techpulse",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration measures inbound request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "techpulse",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// LLMFallbacksTotal counts locally generated fallback texts.
	LLMFallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "techpulse",
			Name:      "llm_fallbacks_total",
			Help:      "Total number of fallback responses used instead of the LLM",
		},
		[]string{"feature", "reason"},
	)
)

func RecordNewsOutcome(outcome string) {
	NewsRequestsTotal.WithLabelValues(outcome).Inc()
}

// RecordUpstream records one provider call. status is "ok" or "error".
func RecordUpstream(provider, status string, seconds float64) {
	UpstreamCallsTotal.WithLabelValues(provider, status).Inc()
	UpstreamDuration.WithLabelValues(provider).Observe(seconds)
}

func RecordFallback(feature, reason string) {
	LLMFallbacksTotal.WithLabelValues(feature, reason).Inc()
}

func RecordHTTPRequest(method, route, status string, seconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}
