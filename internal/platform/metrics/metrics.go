// Package metrics exposes Prometheus instrumentation for the service.
// Collectors are registered on a dedicated registry rather than the global
// default so that tests can create independent instances.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Generation call outcomes used as the status label.
const (
	StatusSuccess = "success"
	StatusEmpty   = "empty"
	StatusError   = "error"
)

// Metrics holds the collectors recorded by the service.
type Metrics struct {
	registry *prometheus.Registry

	generationRequests *prometheus.CounterVec
	generationDuration *prometheus.HistogramVec
	promptLength       prometheus.Histogram
	httpRequests       *prometheus.CounterVec
}

// New creates a Metrics instance backed by its own registry, including the
// standard Go runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		generationRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "email_writer_generation_requests_total",
				Help: "Total number of generation calls to the LLM provider.",
			},
			[]string{"model", "status"},
		),
		generationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "email_writer_generation_duration_seconds",
				Help:    "Histogram of LLM provider call durations.",
				Buckets: prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms to ~51s
			},
			[]string{"model"},
		),
		promptLength: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "email_writer_prompt_length_bytes",
				Help:    "Histogram of built prompt sizes in bytes.",
				Buckets: prometheus.ExponentialBuckets(128, 2, 10), // 128B to 64KiB
			},
		),
		httpRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "email_writer_http_requests_total",
				Help: "Total number of HTTP requests by route and status code.",
			},
			[]string{"route", "code"},
		),
	}
}

// ObserveGeneration records one provider call.
func (m *Metrics) ObserveGeneration(model, status string, elapsed time.Duration) {
	m.generationRequests.WithLabelValues(model, status).Inc()
	m.generationDuration.WithLabelValues(model).Observe(elapsed.Seconds())
}

// ObservePrompt records the size of a built prompt.
func (m *Metrics) ObservePrompt(prompt string) {
	m.promptLength.Observe(float64(len(prompt)))
}

// ObserveHTTP records one completed HTTP request.
func (m *Metrics) ObserveHTTP(route, code string) {
	m.httpRequests.WithLabelValues(route, code).Inc()
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
