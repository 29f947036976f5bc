package domain

import (
	"errors"
	"fmt"
)

// Common domain errors surfaced by the evaluation engine.
var (
	// ErrInvalidInput indicates malformed input: mismatched lengths, an
	// out-of-range probability, a non-binary label, an empty input, or a
	// non-positive segment count. It is raised before any computation
	// begins; a result is never partially computed.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDegenerateClasses indicates a valid but single-class input. KS
	// and per-segment odds are not meaningful for a population with zero
	// events or zero non-events, so the aggregator refuses rather than
	// divide by zero or return a misleading statistic.
	ErrDegenerateClasses = errors.New("degenerate class distribution")

	// ErrInvalidConfiguration indicates that evaluation configuration is
	// invalid or incomplete.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// InputError reports a validation failure on one of the engine's inputs.
// It carries the offending field and, where applicable, the index of the
// first offending element.
type InputError struct {
	// Field names the input that failed validation, e.g. "probabilities".
	Field string

	// Index is the position of the first offending element, or -1 when the
	// failure concerns the input as a whole (length mismatch, empty input).
	Index int

	// Err is the underlying cause; it wraps ErrInvalidInput.
	Err error
}

// Error implements the error interface for InputError.
func (e *InputError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("input error: field=%s, index=%d, err=%v", e.Field, e.Index, e.Err)
	}
	return fmt.Sprintf("input error: field=%s, err=%v", e.Field, e.Err)
}

// Unwrap returns the underlying error, supporting errors.Is classification.
func (e *InputError) Unwrap() error { return e.Err }

// NewInputError creates an InputError whose cause wraps ErrInvalidInput.
func NewInputError(field string, index int, format string, args ...any) *InputError {
	return &InputError{
		Field: field,
		Index: index,
		Err:   fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...)),
	}
}

// AggregationError reports a failure while deriving the results table from
// an ordered segment sequence.
type AggregationError struct {
	// Stage describes what the aggregator was computing when it failed.
	Stage string

	// Err is the underlying error that caused aggregation to fail.
	Err error
}

// Error implements the error interface for AggregationError.
func (e *AggregationError) Error() string {
	return fmt.Sprintf("aggregation error: stage=%s, err=%v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *AggregationError) Unwrap() error { return e.Err }

// NewAggregationError creates a new AggregationError with the given details.
func NewAggregationError(stage string, err error) *AggregationError {
	return &AggregationError{Stage: stage, Err: err}
}
