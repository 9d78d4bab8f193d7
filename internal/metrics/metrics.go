// Package metrics defines Prometheus metrics for the pricing service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dpj"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HTTPPanicsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_panics_total",
		Help:      "Total number of handler panics recovered.",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the last readiness probe succeeded (1) or failed (0).",
	})
)

// Pricing metrics.
var (
	PriceResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "price_resolutions_total",
		Help:      "Reference price lookups by tier and outcome (hit, miss, error).",
	}, []string{"tier", "outcome"})

	PriceNotFoundTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "price_not_found_total",
		Help:      "Total number of pricing requests where no tier produced a reference price.",
	})

	DiscountPercentage = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "discount_percentage",
		Help:      "Distribution of computed discount percentages.",
		Buckets:   prometheus.LinearBuckets(0, 10, 10), // 0, 10, ..., 90
	})

	WorkflowDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "workflow_duration_seconds",
		Help:      "Duration of full condition-to-report workflows in seconds.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Cache metrics.
var (
	CacheEvictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_evictions_total",
		Help:      "Total number of expired price cache entries removed.",
	})

	CachePurgeLastRunTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "cache_purge_last_run_timestamp",
		Help:      "Unix timestamp of the last scheduled cache purge.",
	})
)

// Web search metrics.
var (
	SearchAPICallsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_api_calls_total",
		Help:      "Total cumulative web search API calls.",
	})

	SearchDailyUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "search_daily_usage",
		Help:      "Current daily web search call count within the rolling 24-hour window.",
	})

	SearchDailyLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "search_daily_limit_hits_total",
		Help:      "Total number of times the daily web search limit was reached.",
	})

	SearchResultsExtracted = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "search_results_extracted",
		Help:      "Number of priced offers extracted per web search.",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 30},
	})
)

// Report generation metrics.
var (
	ReportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_total",
		Help:      "Reports produced, by kind (markdown, bilingual) and status (generated, fallback).",
	}, []string{"kind", "status"})

	SpecsExtractionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "specs_extractions_total",
		Help:      "Specification lookups by status (success, failed).",
	}, []string{"status"})
)
