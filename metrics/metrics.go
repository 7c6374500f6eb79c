// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package metrics exposes Prometheus collectors for HTTP traffic and
// participation changes.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "olympics"

// Metrics holds every collector of the application on its own registry
type Metrics struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	participationsAdded   prometheus.Counter
	participationsDeleted prometheus.Counter
	deleteNoMatch         prometheus.Counter
	storeErrors           *prometheus.CounterVec
}

// New registers all collectors on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	auto := promauto.With(reg)
	return &Metrics{
		registry: reg,

		httpRequests: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code",
		}, []string{"route", "method", "status_code"}),

		httpRequestDuration: auto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),

		participationsAdded: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "participations_added_total",
			Help:      "Competitor event rows inserted",
		}),

		participationsDeleted: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "participations_deleted_total",
			Help:      "Competitor event rows deleted",
		}),

		deleteNoMatch: auto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "participation_deletes_unmatched_total",
			Help:      "Delete requests that matched no row",
		}),

		storeErrors: auto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_errors_total",
			Help:      "Failed database operations by operation name",
		}, []string{"operation"}),
	}
}

// Registry returns the registry the collectors are registered on
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveRequest records one finished HTTP request
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ParticipationAdded counts one inserted competitor event
func (m *Metrics) ParticipationAdded() {
	m.participationsAdded.Inc()
}

// ParticipationsDeleted counts deleted rows; zero counts as an unmatched delete
func (m *Metrics) ParticipationsDeleted(n int64) {
	if n == 0 {
		m.deleteNoMatch.Inc()
		return
	}
	m.participationsDeleted.Add(float64(n))
}

// StoreError counts a failed database operation
func (m *Metrics) StoreError(operation string) {
	m.storeErrors.WithLabelValues(operation).Inc()
}
