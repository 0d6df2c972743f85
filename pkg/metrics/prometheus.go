// Package metrics provides Prometheus metrics for the mission service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// defaultLatencyBuckets are in milliseconds; SQLite round trips are short.
var defaultLatencyBuckets = []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250, 500, 1000}

// Manager owns the service's Prometheus collectors on a private registry.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpRateLimited     prometheus.Counter

	// Store Metrics - mission lifecycle outcomes
	missionOperations *prometheus.CounterVec
}

// NewManager creates a new metrics manager. Without WithRegistry it uses a
// fresh registry carrying the Go runtime and process collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "expedicoes",
		subsystem:        "api",
		histogramBuckets: defaultLatencyBuckets,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"route", "method", "status_code"},
	)

	m.httpRateLimited = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter",
	})

	m.missionOperations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "mission_operations_total",
			Help:      "Mission store operations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)
}

// RecordHTTPRequest records one served request and its latency.
func (m *Manager) RecordHTTPRequest(route, method, statusCode string, durationMs float64) {
	m.httpRequests.WithLabelValues(route, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(route, method, statusCode).Observe(durationMs)
}

// RecordRateLimited counts a request rejected by the limiter.
func (m *Manager) RecordRateLimited() {
	m.httpRateLimited.Inc()
}

// RecordMissionOperation counts a mission operation outcome, e.g.
// ("create", "ok") or ("delete", "not_found").
func (m *Manager) RecordMissionOperation(operation, outcome string) {
	m.missionOperations.WithLabelValues(operation, outcome).Inc()
}

// Registry exposes the underlying registry for gathering in tests.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
