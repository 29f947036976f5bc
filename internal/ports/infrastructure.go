// Package ports defines the interfaces that form the contract between the
// domain/application layers and the infrastructure layer.
// These interfaces enable dependency inversion and make the system testable.
package ports

import (
	"context"
	"time"

	"github.com/ArturoSbr/go-binclass/internal/domain"
)

// MetricsCollector records operational metrics for evaluation runs.
// Implementations must be safe for concurrent use.
type MetricsCollector interface {
	// RecordEvaluation records one completed evaluation call with its
	// outcome ("ok", "invalid_input", "degenerate", or "error") and
	// wall-clock duration.
	RecordEvaluation(status string, duration time.Duration)

	// RecordSeparation records the KS statistic and table size of a
	// successful evaluation.
	RecordSeparation(ks float64, segments int)
}

// EvaluationObserver receives lifecycle callbacks around a single
// evaluation, typically to attach tracing spans. The context returned by
// EvaluationStarted is threaded through the evaluation and handed back to
// EvaluationCompleted.
type EvaluationObserver interface {
	// EvaluationStarted is called after input sizes are known but before
	// any computation. The segmenter name identifies the partitioning
	// strategy in use.
	EvaluationStarted(ctx context.Context, observations int, segmenter string) context.Context

	// EvaluationCompleted is called exactly once per evaluation with the
	// result (nil on failure), the elapsed time, and the terminal error.
	EvaluationCompleted(ctx context.Context, result *domain.EvaluationResult, elapsed time.Duration, err error)
}
