package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ArturoSbr/go-binclass/internal/domain"
	"github.com/ArturoSbr/go-binclass/internal/ports"
)

// Evaluation outcome labels reported to the metrics collector.
const (
	StatusOK           = "ok"
	StatusInvalidInput = "invalid_input"
	StatusDegenerate   = "degenerate"
	StatusError        = "error"
)

// Evaluator sequences the two pipeline stages: the Segmenter partitions the
// raw (probability, label) pairs into ordered segments, and the Aggregator
// derives the results table and the KS statistic from them. The Evaluator
// holds no mutable state between calls; concurrent callers need no
// coordination.
type Evaluator struct {
	segmenter  domain.Segmenter
	aggregator domain.Aggregator
	metrics    ports.MetricsCollector
	observer   ports.EvaluationObserver
}

// EvaluatorOption configures optional cross-cutting concerns on an Evaluator.
type EvaluatorOption func(*Evaluator)

// WithMetrics attaches a metrics collector that records every evaluation's
// outcome, duration, and resulting KS statistic.
func WithMetrics(m ports.MetricsCollector) EvaluatorOption {
	return func(e *Evaluator) { e.metrics = m }
}

// WithObserver attaches an observer that receives lifecycle callbacks
// around each evaluation, typically for tracing.
func WithObserver(o ports.EvaluationObserver) EvaluatorOption {
	return func(e *Evaluator) { e.observer = o }
}

// NewEvaluator creates an Evaluator from its two pipeline stages.
// Both stages are required.
func NewEvaluator(segmenter domain.Segmenter, aggregator domain.Aggregator, opts ...EvaluatorOption) (*Evaluator, error) {
	if segmenter == nil {
		return nil, fmt.Errorf("%w: segmenter is required", domain.ErrInvalidConfiguration)
	}
	if aggregator == nil {
		return nil, fmt.Errorf("%w: aggregator is required", domain.ErrInvalidConfiguration)
	}
	e := &Evaluator{segmenter: segmenter, aggregator: aggregator}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Evaluate runs the full pipeline over one pair of input sequences and
// returns the evaluation result. Failures surface unmodified: validation
// errors wrap domain.ErrInvalidInput, single-class populations wrap
// domain.ErrDegenerateClasses, and neither is retryable.
func (e *Evaluator) Evaluate(ctx context.Context, probabilities []float64, labels []int) (*domain.EvaluationResult, error) {
	start := time.Now()
	if e.observer != nil {
		ctx = e.observer.EvaluationStarted(ctx, len(probabilities), e.segmenter.Name())
	}

	result, err := e.run(ctx, probabilities, labels)

	elapsed := time.Since(start)
	if e.observer != nil {
		e.observer.EvaluationCompleted(ctx, result, elapsed, err)
	}
	if e.metrics != nil {
		e.metrics.RecordEvaluation(statusOf(err), elapsed)
		if err == nil {
			e.metrics.RecordSeparation(result.KSStatistic, len(result.Table))
		}
	}
	return result, err
}

func (e *Evaluator) run(ctx context.Context, probabilities []float64, labels []int) (*domain.EvaluationResult, error) {
	segments, err := e.segmenter.Segment(ctx, probabilities, labels)
	if err != nil {
		return nil, fmt.Errorf("segmenter %s failed: %w", e.segmenter.Name(), err)
	}
	result, err := e.aggregator.Aggregate(segments)
	if err != nil {
		return nil, fmt.Errorf("aggregator %s failed: %w", e.aggregator.Name(), err)
	}
	return result, nil
}

// statusOf maps a terminal error onto the metrics outcome label.
func statusOf(err error) string {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, domain.ErrInvalidInput):
		return StatusInvalidInput
	case errors.Is(err, domain.ErrDegenerateClasses):
		return StatusDegenerate
	default:
		return StatusError
	}
}
