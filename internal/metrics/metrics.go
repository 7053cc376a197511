// Package metrics exposes Prometheus collectors for conversions and HTTP traffic.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Conversion outcomes.
const (
	OutcomeOK              = "ok"
	OutcomeInvalidInput    = "invalid_input"
	OutcomeUnsupportedKind = "unsupported_kind"
	OutcomeError           = "error"
)

var (
	conversionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wkt2gml_conversions_total",
			Help: "Conversions by geometry kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	conversionDurationSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wkt2gml_conversion_duration_seconds",
			Help:    "Time spent decoding and converting one geometry.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10us to ~2.6s
		},
	)

	cacheResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wkt2gml_cache_results_total",
			Help: "Conversion cache lookups by outcome.",
		},
		[]string{"outcome"},
	)

	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"method", "route", "status"},
	)
)

// ObserveConversion records one conversion attempt. kind may be empty when
// the input never decoded.
func ObserveConversion(kind, outcome string, durationSeconds float64) {
	if kind == "" {
		kind = "unknown"
	}
	conversionsTotal.WithLabelValues(kind, outcome).Inc()
	conversionDurationSeconds.Observe(durationSeconds)
}

func IncCacheHit() {
	cacheResults.WithLabelValues("hit").Inc()
}

func IncCacheMiss() {
	cacheResults.WithLabelValues("miss").Inc()
}

func ObserveHTTP(method, route string, status int, durationSeconds float64) {
	st := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(method, route, st).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route, st).Observe(durationSeconds)
}
