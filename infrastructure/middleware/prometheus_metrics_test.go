package middleware

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArturoSbr/go-binclass/internal/ports"
)

// TestNewPrometheusMetrics verifies that a new PrometheusMetrics instance
// is created with all its internal metrics properly initialized.
func TestNewPrometheusMetrics(t *testing.T) {
	pm := NewPrometheusMetricsWith(prometheus.NewRegistry())

	assert.NotNil(t, pm.evaluationsTotal, "evaluationsTotal should be initialized")
	assert.NotNil(t, pm.evaluationLatency, "evaluationLatency should be initialized")
	assert.NotNil(t, pm.separationObserved, "separationObserved should be initialized")
	assert.NotNil(t, pm.lastSeparation, "lastSeparation should be initialized")
	assert.NotNil(t, pm.tableSegments, "tableSegments should be initialized")

	var _ ports.MetricsCollector = pm
}

// TestPrometheusMetrics_RecordEvaluation verifies outcome counting and
// latency observation.
func TestPrometheusMetrics_RecordEvaluation(t *testing.T) {
	reg := prometheus.NewRegistry()
	pm := NewPrometheusMetricsWith(reg)

	pm.RecordEvaluation("ok", 25*time.Millisecond)
	pm.RecordEvaluation("ok", 10*time.Millisecond)
	pm.RecordEvaluation("invalid_input", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(pm.evaluationsTotal.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pm.evaluationsTotal.WithLabelValues("invalid_input")))

	count, err := testutil.GatherAndCount(reg, "binclass_evaluations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per outcome label")
}

// TestPrometheusMetrics_RecordSeparation verifies KS gauge and histogram
// updates.
func TestPrometheusMetrics_RecordSeparation(t *testing.T) {
	reg := prometheus.NewRegistry()
	pm := NewPrometheusMetricsWith(reg)

	pm.RecordSeparation(0.42, 10)
	assert.Equal(t, 0.42, testutil.ToFloat64(pm.lastSeparation))

	pm.RecordSeparation(0.91, 20)
	assert.Equal(t, 0.91, testutil.ToFloat64(pm.lastSeparation))
}
