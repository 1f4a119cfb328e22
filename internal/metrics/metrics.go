package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   prometheus.CounterVec
	HTTPRequestDuration prometheus.HistogramVec

	// Cache metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Recommendation engine metrics
	ActivitiesTrackedTotal   prometheus.CounterVec
	RecommendationDuration   prometheus.HistogramVec
	RecommendationFallbacks  prometheus.CounterVec
	TrendingCandidatesServed prometheus.HistogramVec
}

var (
	instance *Metrics
	once     sync.Once
)

// Initialize creates and registers all Prometheus metrics
func Initialize() *Metrics {
	once.Do(func() {
		instance = &Metrics{
			HTTPRequestsTotal: *promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "http_requests_total",
					Help: "Total number of HTTP requests",
				},
				[]string{"method", "path", "status"},
			),
			HTTPRequestDuration: *promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "http_request_duration_seconds",
					Help:    "HTTP request latency in seconds",
					Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
				},
				[]string{"method", "path", "status"},
			),
			CacheHitsTotal: *promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "cache_hits_total",
					Help: "Total number of cache hits",
				},
				[]string{"cache"},
			),
			CacheMissesTotal: *promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "cache_misses_total",
					Help: "Total number of cache misses",
				},
				[]string{"cache"},
			),
			ActivitiesTrackedTotal: *promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "activities_tracked_total",
					Help: "Total number of activity tracking events by outcome",
				},
				[]string{"outcome"}, // "created", "merged", "rejected", "error"
			),
			RecommendationDuration: *promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "recommendation_duration_seconds",
					Help:    "Recommendation computation latency in seconds",
					Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
				},
				[]string{"source"}, // "personalized", "trending"
			),
			RecommendationFallbacks: *promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "recommendation_fallbacks_total",
					Help: "Times a recommendation source degraded to a cruder one",
				},
				[]string{"from", "to"}, // personalized->trending, trending->recent, trending->recent_hard
			),
			TrendingCandidatesServed: *promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "trending_candidates_served",
					Help:    "Number of items served per trending request",
					Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
				},
				[]string{"endpoint"},
			),
		}
	})
	return instance
}

// Get returns the metrics instance, initializing it if needed
func Get() *Metrics {
	return Initialize()
}
