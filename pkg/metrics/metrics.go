// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RFQGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rfq_generated_total",
			Help: "Total number of RFQ payloads generated, by intent and template match",
		},
		[]string{"intent", "matched"},
	)

	RFQFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rfq_failed_total",
			Help: "Total number of rejected or failed RFQ submissions",
		},
		[]string{"reason"},
	)

	RFQDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rfq_generate_duration_seconds",
			Help:    "Duration of the classify, extract and generate pipeline",
			Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
		},
		[]string{"intent"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rfq_cache_lookups_total",
			Help: "Result cache lookups by outcome (hit, miss, error)",
		},
		[]string{"outcome"},
	)

	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "HTTP request latency by route",
		},
		[]string{"route", "method"},
	)
)

const (
	ReasonInvalidQuery = "invalid_query"
	ReasonInternal     = "internal"
	ReasonRateLimited  = "rate_limited"

	OutcomeHit   = "hit"
	OutcomeMiss  = "miss"
	OutcomeError = "error"
)
