package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeExtracted = "extracted"
	OutcomeRaw       = "raw"
	OutcomeInvalid   = "invalid_input"
	OutcomeUpstream  = "upstream_error"
	OutcomeInternal  = "internal_error"
)

var (
	GenerationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskgen_requests_total",
			Help: "Total number of task generation requests by outcome",
		},
		[]string{"outcome"},
	)

	GenerationSources = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taskgen_input_source_total",
			Help: "Resolved input source of task generation requests",
		},
		[]string{"source"},
	)

	InferenceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "taskgen_inference_duration_seconds",
			Help:    "Duration of upstream chat completion calls in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 40, 80},
		},
		[]string{"model"},
	)

	DraftSchemaViolations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "taskgen_draft_schema_violations_total",
			Help: "Extracted task arrays that did not match the task draft schema",
		},
	)

	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Requests rejected by the per-client rate limiter",
		},
	)
)
