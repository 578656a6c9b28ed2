// Package metrics exposes Prometheus instrumentation for synthesis traffic.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Statuses recorded on the request counter.
const (
	StatusSuccess       = "success"
	StatusNotConfigured = "not_configured"
	StatusUnavailable   = "upstream_unavailable"
	StatusRejected      = "upstream_rejected"
	StatusInternalError = "internal_error"
)

// Metrics holds the collectors for the synthesis pipeline.
type Metrics struct {
	requests   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	audioBytes prometheus.Histogram
}

// New creates and registers the synthesis metrics on the given registerer.
// Pass prometheus.DefaultRegisterer in production; tests use a fresh registry.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "balsas_synthesis_requests_total",
				Help: "Synthesis requests by voice and outcome.",
			},
			[]string{"voice", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "balsas_synthesis_duration_seconds",
				Help:    "End-to-end synthesis duration including the provider call.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"voice"},
		),
		audioBytes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "balsas_synthesis_audio_bytes",
				Help:    "Size of synthesized audio payloads in bytes.",
				Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
			},
		),
	}

	reg.MustRegister(m.requests, m.duration, m.audioBytes)
	return m
}

// ObserveRequest records the outcome of one synthesis request.
func (m *Metrics) ObserveRequest(voice, status string, elapsed time.Duration) {
	m.requests.WithLabelValues(voice, status).Inc()
	m.duration.WithLabelValues(voice).Observe(elapsed.Seconds())
}

// ObserveAudioSize records the size of a successful synthesis payload.
func (m *Metrics) ObserveAudioSize(n int) {
	m.audioBytes.Observe(float64(n))
}
