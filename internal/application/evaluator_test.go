package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArturoSbr/go-binclass/infrastructure/stats"
	"github.com/ArturoSbr/go-binclass/internal/domain"
)

// recordingMetrics captures MetricsCollector calls for assertions.
type recordingMetrics struct {
	statuses []string
	ks       []float64
	segments []int
}

func (m *recordingMetrics) RecordEvaluation(status string, _ time.Duration) {
	m.statuses = append(m.statuses, status)
}

func (m *recordingMetrics) RecordSeparation(ks float64, segments int) {
	m.ks = append(m.ks, ks)
	m.segments = append(m.segments, segments)
}

// recordingObserver captures EvaluationObserver calls and tags the context
// to verify it is threaded through to completion.
type recordingObserver struct {
	started   int
	completed int
	sawTag    bool
	lastErr   error
}

type ctxTag struct{}

func (o *recordingObserver) EvaluationStarted(ctx context.Context, _ int, _ string) context.Context {
	o.started++
	return context.WithValue(ctx, ctxTag{}, true)
}

func (o *recordingObserver) EvaluationCompleted(ctx context.Context, _ *domain.EvaluationResult, _ time.Duration, err error) {
	o.completed++
	o.sawTag = ctx.Value(ctxTag{}) != nil
	o.lastErr = err
}

func newTestEvaluator(t *testing.T, opts ...EvaluatorOption) *Evaluator {
	t.Helper()
	segmenter, err := stats.NewSegmenter("segmenter", stats.SegmenterConfig{
		NumSegments: 2,
		TiePolicy:   domain.TieRankEqualCount,
	})
	require.NoError(t, err)
	aggregator, err := stats.NewTableAggregator("aggregator")
	require.NoError(t, err)
	evaluator, err := NewEvaluator(segmenter, aggregator, opts...)
	require.NoError(t, err)
	return evaluator
}

// TestNewEvaluator verifies that both pipeline stages are required.
func TestNewEvaluator(t *testing.T) {
	aggregator, err := stats.NewTableAggregator("aggregator")
	require.NoError(t, err)

	_, err = NewEvaluator(nil, aggregator)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)

	segmenter, err := stats.NewSegmenter("segmenter", stats.DefaultSegmenterConfig())
	require.NoError(t, err)

	_, err = NewEvaluator(segmenter, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidConfiguration)
}

// TestEvaluator_Evaluate runs the full pipeline end to end.
func TestEvaluator_Evaluate(t *testing.T) {
	evaluator := newTestEvaluator(t)

	result, err := evaluator.Evaluate(context.Background(),
		[]float64{0.9, 0.8, 0.2, 0.1}, []int{1, 1, 0, 0})
	require.NoError(t, err)

	assert.Equal(t, 1.0, result.KSStatistic)
	assert.Equal(t, 0, result.KSSegmentIndex)
	assert.Len(t, result.Table, 2)
	assert.Equal(t, 4, result.Observations)
}

// TestEvaluator_Evaluate_ErrorPropagation verifies that both failure kinds
// surface unmodified to the caller.
func TestEvaluator_Evaluate_ErrorPropagation(t *testing.T) {
	evaluator := newTestEvaluator(t)

	_, err := evaluator.Evaluate(context.Background(), []float64{0.5}, []int{1, 0})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = evaluator.Evaluate(context.Background(),
		[]float64{0.4, 0.3, 0.2, 0.1}, []int{0, 0, 0, 0})
	assert.ErrorIs(t, err, domain.ErrDegenerateClasses)
}

// TestEvaluator_Evaluate_Metrics verifies outcome labeling and separation
// recording on the metrics collector.
func TestEvaluator_Evaluate_Metrics(t *testing.T) {
	metrics := &recordingMetrics{}
	evaluator := newTestEvaluator(t, WithMetrics(metrics))

	_, err := evaluator.Evaluate(context.Background(),
		[]float64{0.9, 0.8, 0.2, 0.1}, []int{1, 1, 0, 0})
	require.NoError(t, err)

	_, err = evaluator.Evaluate(context.Background(), []float64{1.7}, []int{1})
	require.Error(t, err)

	_, err = evaluator.Evaluate(context.Background(), []float64{0.6, 0.4}, []int{1, 1})
	require.Error(t, err)

	assert.Equal(t, []string{StatusOK, StatusInvalidInput, StatusDegenerate}, metrics.statuses)
	assert.Equal(t, []float64{1.0}, metrics.ks)
	assert.Equal(t, []int{2}, metrics.segments)
}

// TestEvaluator_Evaluate_Observer verifies lifecycle callbacks and context
// threading.
func TestEvaluator_Evaluate_Observer(t *testing.T) {
	observer := &recordingObserver{}
	evaluator := newTestEvaluator(t, WithObserver(observer))

	_, err := evaluator.Evaluate(context.Background(),
		[]float64{0.9, 0.8, 0.2, 0.1}, []int{1, 1, 0, 0})
	require.NoError(t, err)

	assert.Equal(t, 1, observer.started)
	assert.Equal(t, 1, observer.completed)
	assert.True(t, observer.sawTag, "completion should see the context returned by EvaluationStarted")
	assert.NoError(t, observer.lastErr)

	_, err = evaluator.Evaluate(context.Background(), []float64{0.5}, []int{2})
	require.Error(t, err)
	assert.Equal(t, 2, observer.completed)
	assert.ErrorIs(t, observer.lastErr, domain.ErrInvalidInput)
}

// TestStatusOf verifies the error-to-outcome mapping used for metrics.
func TestStatusOf(t *testing.T) {
	assert.Equal(t, StatusOK, statusOf(nil))
	assert.Equal(t, StatusInvalidInput, statusOf(domain.NewInputError("labels", 0, "label 2 is not in {0, 1}")))
	assert.Equal(t, StatusDegenerate, statusOf(domain.NewAggregationError("totals", domain.ErrDegenerateClasses)))
	assert.Equal(t, StatusError, statusOf(assert.AnError))
}
