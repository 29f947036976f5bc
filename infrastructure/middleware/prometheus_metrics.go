// Package middleware provides cross-cutting concerns for the evaluation
// engine: Prometheus metrics and OpenTelemetry tracing around evaluations.
package middleware

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ArturoSbr/go-binclass/internal/ports"
)

var _ ports.MetricsCollector = (*PrometheusMetrics)(nil)

// PrometheusMetrics implements the MetricsCollector interface using
// Prometheus. It tracks evaluation throughput, latency, and the separation
// statistics the engine produces.
type PrometheusMetrics struct {
	evaluationsTotal   *prometheus.CounterVec
	evaluationLatency  prometheus.Histogram
	separationObserved prometheus.Histogram
	lastSeparation     prometheus.Gauge
	tableSegments      prometheus.Histogram
}

// NewPrometheusMetrics creates a PrometheusMetrics instance registered in
// the default Prometheus registry.
func NewPrometheusMetrics() *PrometheusMetrics {
	return NewPrometheusMetricsWith(prometheus.DefaultRegisterer)
}

// NewPrometheusMetricsWith creates a PrometheusMetrics instance registered
// in the given registry. Tests use a fresh registry per instance to avoid
// duplicate registration panics.
func NewPrometheusMetricsWith(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		evaluationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "binclass_evaluations_total",
				Help: "Total number of evaluation calls by outcome.",
			},
			[]string{"status"},
		),
		evaluationLatency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "binclass_evaluation_duration_seconds",
				Help:    "Wall-clock duration of evaluation calls.",
				Buckets: prometheus.DefBuckets,
			},
		),
		separationObserved: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "binclass_ks_statistic",
				Help:    "Distribution of KS separation statistics across evaluations.",
				Buckets: prometheus.LinearBuckets(0, 0.1, 11),
			},
		),
		lastSeparation: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "binclass_last_ks_statistic",
				Help: "KS statistic of the most recent successful evaluation.",
			},
		),
		tableSegments: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "binclass_table_segments",
				Help:    "Number of segments in produced results tables.",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
	}
}

// RecordEvaluation implements the MetricsCollector interface by counting the
// call under its outcome label and observing its latency.
func (pm *PrometheusMetrics) RecordEvaluation(status string, duration time.Duration) {
	pm.evaluationsTotal.WithLabelValues(status).Inc()
	pm.evaluationLatency.Observe(duration.Seconds())
}

// RecordSeparation implements the MetricsCollector interface by recording
// the KS statistic and table size of a successful evaluation.
func (pm *PrometheusMetrics) RecordSeparation(ks float64, segments int) {
	pm.separationObserved.Observe(ks)
	pm.lastSeparation.Set(ks)
	pm.tableSegments.Observe(float64(segments))
}
