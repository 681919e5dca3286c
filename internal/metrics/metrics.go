// Package metrics exposes Prometheus counters for content resolution.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the resolution counters and the registry they live in.
type Metrics struct {
	registry    *prometheus.Registry
	attempts    *prometheus.CounterVec
	resolutions *prometheus.CounterVec
}

// New creates counters registered on a private registry together with the
// Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "osirris",
			Name:      "source_attempts_total",
			Help:      "Content source attempts by collection, source and outcome.",
		}, []string{"collection", "source", "outcome"}),
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "osirris",
			Name:      "resolutions_total",
			Help:      "Completed resolutions by collection and the source that served them.",
		}, []string{"collection", "served_by"}),
	}
	reg.MustRegister(
		m.attempts,
		m.resolutions,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Attempt counts one source attempt. A nil receiver is a no-op.
func (m *Metrics) Attempt(collection, source, outcome string) {
	if m == nil {
		return
	}
	m.attempts.WithLabelValues(collection, source, outcome).Inc()
}

// Resolved counts one finished resolution. A nil receiver is a no-op.
func (m *Metrics) Resolved(collection, servedBy string) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(collection, servedBy).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
