// Package binclass evaluates the discriminatory quality of a binary
// classification model from two parallel sequences: predicted probabilities
// and observed binary outcomes. It partitions the scored population into
// ordered segments, assembles a results table with cumulative and relative
// figures, and derives the Kolmogorov-Smirnov separation statistic and the
// per-segment odds (class 0 over class 1) from it.
//
// The engine is a pure, single-pass computation: no I/O, no persisted state,
// no coordination between calls. Each call owns its inputs and result
// exclusively, so concurrent callers need no locking.
//
//	result, err := binclass.Evaluate(ctx, probabilities, labels)
//	if err != nil {
//	    // errors.Is(err, binclass.ErrInvalidInput) or
//	    // errors.Is(err, binclass.ErrDegenerateClasses)
//	}
//	fmt.Println(result.KSStatistic, result.KSSegmentIndex)
package binclass

import (
	"context"

	"github.com/ArturoSbr/go-binclass/infrastructure/stats"
	"github.com/ArturoSbr/go-binclass/internal/application"
	"github.com/ArturoSbr/go-binclass/internal/domain"
	"github.com/ArturoSbr/go-binclass/internal/ports"
)

// Re-exported domain types. The aliases let callers name every type that
// appears in the public surface without reaching into internal packages.
type (
	// Observation pairs one predicted probability with its observed class.
	Observation = domain.Observation

	// Segment is one ordered partition of the observation set.
	Segment = domain.Segment

	// Row is one line of the results table.
	Row = domain.Row

	// EvaluationResult holds the results table and the KS statistic.
	EvaluationResult = domain.EvaluationResult

	// TiePolicy selects how tied probabilities are placed at boundaries.
	TiePolicy = domain.TiePolicy

	// Config is the engine's recognized configuration surface.
	Config = application.EvalConfig

	// MetricsCollector records operational metrics for evaluation runs.
	MetricsCollector = ports.MetricsCollector

	// EvaluationObserver receives lifecycle callbacks around an evaluation.
	EvaluationObserver = ports.EvaluationObserver
)

// Re-exported constants.
const (
	// LabelNonEvent marks an observation of class 0.
	LabelNonEvent = domain.LabelNonEvent

	// LabelEvent marks an observation of class 1, the class of interest.
	LabelEvent = domain.LabelEvent

	// TieRankEqualCount is the default tie policy: equal-count bins, ties
	// may split across adjacent segments.
	TieRankEqualCount = domain.TieRankEqualCount

	// TieBoundarySnap keeps tied probability runs inside one segment.
	TieBoundarySnap = domain.TieBoundarySnap
)

// Re-exported error sentinels; classify failures with errors.Is.
var (
	// ErrInvalidInput indicates malformed input: mismatched lengths, an
	// out-of-range probability, a non-binary label, an empty input, or a
	// non-positive segment count.
	ErrInvalidInput = domain.ErrInvalidInput

	// ErrDegenerateClasses indicates a valid but single-class input, for
	// which KS and odds are not meaningful.
	ErrDegenerateClasses = domain.ErrDegenerateClasses

	// ErrInvalidConfiguration indicates invalid evaluation configuration.
	ErrInvalidConfiguration = domain.ErrInvalidConfiguration
)

// DefaultConfig returns the engine defaults: a decile table under the
// rank-based equal-count tie policy.
func DefaultConfig() Config { return application.DefaultEvalConfig() }

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (Config, error) { return application.LoadEvalConfig(path) }

// Option configures an evaluation call.
type Option func(*settings)

type settings struct {
	config   Config
	metrics  ports.MetricsCollector
	observer ports.EvaluationObserver
}

// WithSegments sets the number of population segments (default 10).
func WithSegments(n int) Option {
	return func(s *settings) { s.config.NumSegments = n }
}

// WithTiePolicy sets the boundary tie policy (default TieRankEqualCount).
func WithTiePolicy(p TiePolicy) Option {
	return func(s *settings) { s.config.TiePolicy = p }
}

// WithRoundedBounds rounds the reported segment probability bounds to the
// nearest integer. The partition itself always uses raw probabilities.
func WithRoundedBounds() Option {
	return func(s *settings) { s.config.RoundBounds = true }
}

// WithConfig replaces the whole configuration, e.g. one produced by
// LoadConfig. Later options still override individual fields.
func WithConfig(cfg Config) Option {
	return func(s *settings) { s.config = cfg }
}

// WithMetrics attaches a metrics collector, e.g.
// middleware.NewPrometheusMetrics().
func WithMetrics(m MetricsCollector) Option {
	return func(s *settings) { s.metrics = m }
}

// WithObserver attaches an evaluation observer, e.g.
// middleware.NewOTelEvaluationObserver().
func WithObserver(o EvaluationObserver) Option {
	return func(s *settings) { s.observer = o }
}

// Evaluate is the engine's single public entry point. It validates the
// inputs, partitions them into ordered segments, and derives the results
// table and the KS statistic.
//
// probabilities must lie in [0, 1]; labels must be 0 or 1; both sequences
// must have equal non-zero length. Violations return an error wrapping
// ErrInvalidInput before any computation. A single-class input returns an
// error wrapping ErrDegenerateClasses after segmentation. Both failures are
// immediate and non-retryable.
//
// Identical inputs and configuration always produce identical results.
func Evaluate(ctx context.Context, probabilities []float64, labels []int, opts ...Option) (*EvaluationResult, error) {
	s := settings{config: application.DefaultEvalConfig()}
	for _, opt := range opts {
		opt(&s)
	}

	segmenter, err := stats.NewSegmenter("segmenter", stats.SegmenterConfig{
		NumSegments: s.config.NumSegments,
		TiePolicy:   s.config.TiePolicy,
		RoundBounds: s.config.RoundBounds,
	})
	if err != nil {
		return nil, err
	}
	aggregator, err := stats.NewTableAggregator("aggregator")
	if err != nil {
		return nil, err
	}

	var evOpts []application.EvaluatorOption
	if s.metrics != nil {
		evOpts = append(evOpts, application.WithMetrics(s.metrics))
	}
	if s.observer != nil {
		evOpts = append(evOpts, application.WithObserver(s.observer))
	}
	evaluator, err := application.NewEvaluator(segmenter, aggregator, evOpts...)
	if err != nil {
		return nil, err
	}

	return evaluator.Evaluate(ctx, probabilities, labels)
}
