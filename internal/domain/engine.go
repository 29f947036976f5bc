package domain

import "context"

// Segmenter partitions raw (probability, label) pairs into ordered
// population segments. Implementations sort observations by descending
// predicted probability (stable, so ties keep input order) and emit
// contiguous groups with per-group class counts. Segmenters perform no
// statistical computation; they are pure partitioning.
//
// Implementations must be stateless and safe for concurrent use.
type Segmenter interface {
	// Name returns a unique identifier for this segmenter.
	// The name is used for logging, metrics, and error context.
	Name() string

	// Segment validates the inputs and partitions them into ordered
	// segments. Both slices must have equal non-zero length; every
	// probability must lie in [0, 1] and every label must be 0 or 1.
	// Violations return an error wrapping ErrInvalidInput before any
	// partitioning happens.
	//
	// The returned segments are ordered by descending probability,
	// partition the input exactly once, and never include an empty
	// segment. Depending on the tie policy and the number of distinct
	// probability values, fewer segments than configured may be returned.
	Segment(ctx context.Context, probabilities []float64, labels []int) ([]Segment, error)
}

// Aggregator derives the results table and the KS statistic from an ordered
// segment sequence. The cumulative columns are order-dependent, so segments
// must be presented in ascending index order.
//
// Implementations must be stateless and safe for concurrent use.
type Aggregator interface {
	// Name returns a unique identifier for this aggregator.
	Name() string

	// Aggregate computes cumulative and relative figures per segment,
	// assembles the results table, and locates the KS maximum. A
	// single-class population (zero total events or zero total
	// non-events) returns an error wrapping ErrDegenerateClasses.
	Aggregate(segments []Segment) (*EvaluationResult, error)
}
