// Package stats provides the concrete segmentation strategies and the table
// aggregator that implement the domain.Segmenter and domain.Aggregator
// contracts for the go-binclass evaluation engine.
package stats

import (
	"context"
	"errors"
	"math"
	"runtime"
	"sort"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"github.com/ArturoSbr/go-binclass/internal/domain"
)

// Common errors returned by the stats components.
var (
	// ErrEmptyName is returned when attempting to create a component with
	// an empty name.
	ErrEmptyName = errors.New("component name cannot be empty")

	// ErrNoSegments is returned when an empty segment sequence is given to
	// the aggregator.
	ErrNoSegments = errors.New("no segments provided for aggregation")

	// ErrSegmentOrder is returned when segments arrive out of ascending
	// index order. Cumulative columns are order-dependent, so the
	// aggregator refuses to guess.
	ErrSegmentOrder = errors.New("segments not in ascending index order")
)

// Package-level validator instance for configuration validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()

// parallelCountMin is the input size at which per-segment class counting
// fans out across goroutines. Below it the serial scan wins on overhead.
const parallelCountMin = 100_000

// sortObservations pairs the parallel input slices and sorts by descending
// probability. The sort is stable, so observations with equal probabilities
// keep their input order and the partition stays deterministic.
func sortObservations(probabilities []float64, labels []int) []domain.Observation {
	obs := make([]domain.Observation, len(probabilities))
	for i, p := range probabilities {
		obs[i] = domain.Observation{Probability: p, Label: labels[i]}
	}
	sort.SliceStable(obs, func(i, j int) bool {
		return obs[i].Probability > obs[j].Probability
	})
	return obs
}

// validateInputs checks the raw inputs before any computation begins.
// All violations wrap domain.ErrInvalidInput.
func validateInputs(probabilities []float64, labels []int) error {
	if len(probabilities) == 0 {
		return domain.NewInputError("probabilities", -1, "input must not be empty")
	}
	if len(probabilities) != len(labels) {
		return domain.NewInputError("labels", -1,
			"length mismatch: probabilities=%d, labels=%d", len(probabilities), len(labels))
	}
	for i, p := range probabilities {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return domain.NewInputError("probabilities", i, "probability %v outside [0, 1]", p)
		}
	}
	for i, l := range labels {
		if l != domain.LabelNonEvent && l != domain.LabelEvent {
			return domain.NewInputError("labels", i, "label %d is not in {0, 1}", l)
		}
	}
	return nil
}

// cutOffsets returns the exclusive end offset of each of k near-equal groups
// over n observations. The remainder of the integer division goes to the
// earliest groups. Offsets are non-decreasing and the last one equals n;
// when k > n some groups are empty and their offsets repeat.
func cutOffsets(n, k int) []int {
	base, rem := n/k, n%k
	offsets := make([]int, k)
	pos := 0
	for g := 0; g < k; g++ {
		pos += base
		if g < rem {
			pos++
		}
		offsets[g] = pos
	}
	return offsets
}

// buildSegments counts classes for each [start, end) range of the sorted
// observations and assembles the Segment values. Counting fans out with an
// errgroup for large inputs; results merge by segment index, so the output
// order never depends on goroutine scheduling. Empty ranges are skipped and
// the remaining segments are reindexed contiguously.
func buildSegments(ctx context.Context, obs []domain.Observation, offsets []int, roundBounds bool) ([]domain.Segment, error) {
	type span struct{ start, end int }
	spans := make([]span, 0, len(offsets))
	start := 0
	for _, end := range offsets {
		if end > start {
			spans = append(spans, span{start, end})
			start = end
		}
	}

	segments := make([]domain.Segment, len(spans))
	fill := func(i int) {
		s := spans[i]
		events := 0
		for _, o := range obs[s.start:s.end] {
			if o.IsEvent() {
				events++
			}
		}
		lower, upper := obs[s.end-1].Probability, obs[s.start].Probability
		if roundBounds {
			lower, upper = math.Round(lower), math.Round(upper)
		}
		segments[i] = domain.Segment{
			Index:      i,
			LowerBound: lower,
			UpperBound: upper,
			Population: s.end - s.start,
			Events:     events,
			NonEvents:  s.end - s.start - events,
		}
	}

	if len(obs) < parallelCountMin {
		for i := range spans {
			fill(i)
		}
		return segments, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range spans {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fill(i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return segments, nil
}
