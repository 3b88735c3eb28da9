package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for OpsDesk
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.GaugeVec

	// Database Metrics
	DBQueriesTotal  prometheus.CounterVec
	DBQueryDuration prometheus.HistogramVec

	// Cache Metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	MissionsCreatedTotal   prometheus.Counter
	ReportsSubmittedTotal  prometheus.Counter
	ProblemsReportedTotal  prometheus.Counter
	PartsUsedTotal         prometheus.Counter
	LowStockParts          prometheus.Gauge
	SessionsActive         prometheus.Gauge
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opsdesk_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "opsdesk_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "opsdesk_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Database Metrics
		DBQueriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opsdesk_db_queries_total",
				Help: "Total database queries by operation type",
			},
			[]string{"query_type"},
		),
		DBQueryDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "opsdesk_db_query_duration_seconds",
				Help:    "Database query execution time in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"query_type"},
		),

		// Cache Metrics
		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opsdesk_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "opsdesk_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Business Metrics
		MissionsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "opsdesk_missions_created_total",
				Help: "Total maintenance missions created",
			},
		),
		ReportsSubmittedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "opsdesk_reports_submitted_total",
				Help: "Total mission reports submitted",
			},
		),
		ProblemsReportedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "opsdesk_problems_reported_total",
				Help: "Total client problem reports filed",
			},
		),
		PartsUsedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "opsdesk_parts_used_total",
				Help: "Total spare part units consumed",
			},
		),
		LowStockParts: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "opsdesk_low_stock_parts",
				Help: "Current number of spare parts at or below their minimum",
			},
		),
		SessionsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "opsdesk_sessions_active",
				Help: "Current number of live login sessions",
			},
		),
	}
}
