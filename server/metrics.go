package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/amritr10/Reporter-app/engine"
)

// Metrics are registered on the server's own registry, never the global one,
// so independent servers (and tests) do not collide.
type Metrics struct {
	Requests *prometheus.CounterVec
	Warnings *prometheus.CounterVec
	Duration *prometheus.HistogramVec
	Records  prometheus.Histogram
}

// NewMetrics registers reporter metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reporter_analyses_total",
				Help: "Total number of guest list analyses served",
			},
			[]string{"endpoint", "outcome"}, // outcome: ok, malformed, invalid
		),
		Warnings: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reporter_warnings_total",
				Help: "Missing-column warnings attached to analyses, by check",
			},
			[]string{"check"},
		),
		Duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "reporter_analysis_duration_seconds",
				Help:    "Time spent parsing and analyzing an upload",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
			},
			[]string{"endpoint"},
		),
		Records: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "reporter_upload_records",
				Help:    "Number of guest records per upload",
				Buckets: prometheus.ExponentialBuckets(10, 2, 10), // 10 to ~5000
			},
		),
	}
}

func (m *Metrics) observe(endpoint, outcome string, start time.Time) {
	m.Requests.WithLabelValues(endpoint, outcome).Inc()
	m.Duration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}

func (m *Metrics) observeWarnings(warnings []engine.Warning) {
	for _, w := range warnings {
		m.Warnings.WithLabelValues(string(w.Check)).Inc()
	}
}
