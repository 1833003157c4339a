// Package metrics holds the prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Metadata cache-aside
	MetadataCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "content_metadata_cache_hits_total",
			Help: "Total number of content metadata reads served from cache",
		},
	)

	MetadataCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "content_metadata_cache_misses_total",
			Help: "Total number of content metadata reads that fell through to the database",
		},
	)

	// ViewIncrements counts background view increments by outcome ("ok", "error").
	ViewIncrements = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_view_increments_total",
			Help: "Total number of view counter increments",
		},
		[]string{"outcome"},
	)

	// StoreErrors counts adapter failures by store ("postgres", "mongo", "redis") and operation.
	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_errors_total",
			Help: "Total number of backing store errors",
		},
		[]string{"store", "operation"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"operation", "code"},
	)
)
