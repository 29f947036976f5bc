package stats

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ArturoSbr/go-binclass/internal/domain"
)

var _ domain.Segmenter = (*BoundarySegmenter)(nil)

// BoundarySegmenter partitions observations like RankSegmenter but never
// lets a run of tied probabilities straddle a segment boundary: when an
// equal-count cut would fall inside a tie run, the boundary snaps forward so
// the whole run stays in the earlier, higher-probability segment.
//
// Segment populations may therefore be unequal, and an input with fewer
// distinct probability values than requested segments yields fewer segments,
// since boundaries that snap onto each other leave empty groups behind and
// empty groups are dropped.
//
// The segmenter is stateless and thread-safe.
type BoundarySegmenter struct {
	name   string
	config SegmenterConfig
}

// NewBoundarySegmenter creates a new BoundarySegmenter with the specified
// configuration. It returns an error if the configuration is invalid.
func NewBoundarySegmenter(name string, config SegmenterConfig) (*BoundarySegmenter, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if config.NumSegments < 1 {
		return nil, domain.NewInputError("num_segments", -1,
			"segment count must be positive, got %d", config.NumSegments)
	}
	if err := validate.Struct(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &BoundarySegmenter{name: name, config: config}, nil
}

// Name returns the unique identifier for this segmenter instance.
func (bs *BoundarySegmenter) Name() string { return bs.name }

// Segment implements domain.Segmenter with boundary snapping. Inputs are
// validated before any computation; violations return an error wrapping
// domain.ErrInvalidInput.
func (bs *BoundarySegmenter) Segment(ctx context.Context, probabilities []float64, labels []int) ([]domain.Segment, error) {
	if err := validateInputs(probabilities, labels); err != nil {
		return nil, err
	}
	obs := sortObservations(probabilities, labels)
	offsets := cutOffsets(len(obs), bs.config.NumSegments)

	// Push each cut forward until it no longer splits a tie run. A cut
	// that lands behind the previous one collapses to it, leaving an
	// empty group for buildSegments to drop.
	prev := 0
	for g, end := range offsets {
		if end < prev {
			end = prev
		}
		for end > 0 && end < len(obs) && obs[end].Probability == obs[end-1].Probability {
			end++
		}
		offsets[g] = end
		prev = end
	}

	return buildSegments(ctx, obs, offsets, bs.config.RoundBounds)
}

// Validate checks if the segmenter is properly configured and ready for use.
func (bs *BoundarySegmenter) Validate() error {
	if err := validate.Struct(bs.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// UnmarshalParameters deserializes YAML configuration parameters and updates
// the segmenter's configuration. See RankSegmenter.UnmarshalParameters for
// the supported fields. Not thread-safe.
func (bs *BoundarySegmenter) UnmarshalParameters(params yaml.Node) error {
	config := DefaultSegmenterConfig()
	if err := params.Decode(&config); err != nil {
		return fmt.Errorf("failed to decode parameters: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("parameter validation failed: %w", err)
	}
	bs.config = config
	return nil
}
