// Package metrics exposes Prometheus instrumentation for the service: store
// mutation counts, snapshot persistence failures, report exports, and HTTP
// request durations.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles every collector behind one registry so tests can build
// isolated instances.
type Metrics struct {
	registry *prometheus.Registry

	mutations       *prometheus.CounterVec
	persistFailures prometheus.Counter
	exports         *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
}

// New builds a Metrics instance with its own registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "negoprep",
			Name:      "store_mutations_total",
			Help:      "Successful store mutations by operation.",
		}, []string{"op"}),
		persistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "negoprep",
			Name:      "snapshot_persist_failures_total",
			Help:      "Write-through snapshot saves that failed.",
		}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "negoprep",
			Name:      "report_exports_total",
			Help:      "Report exports by format and result.",
		}, []string{"format", "result"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "negoprep",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method, route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}

	m.registry.MustRegister(
		m.mutations,
		m.persistFailures,
		m.exports,
		m.httpDuration,
	)
	return m
}

// Mutation implements the planning store's metrics sink.
func (m *Metrics) Mutation(op string) {
	m.mutations.WithLabelValues(op).Inc()
}

// PersistFailure implements the planning store's metrics sink.
func (m *Metrics) PersistFailure() {
	m.persistFailures.Inc()
}

// Export records one export attempt. Result is "ok" or "error".
func (m *Metrics) Export(format, result string) {
	m.exports.WithLabelValues(format, result).Inc()
}

// ObserveHTTP records one handled request.
func (m *Metrics) ObserveHTTP(method, route, status string, seconds float64) {
	m.httpDuration.WithLabelValues(method, route, status).Observe(seconds)
}

// Handler returns the exposition endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
