package stats

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ArturoSbr/go-binclass/internal/domain"
)

var _ domain.Segmenter = (*RankSegmenter)(nil)

// SegmenterConfig defines the configuration parameters shared by all
// segmentation strategies. All fields are validated during construction and
// parameter unmarshaling; configuration is immutable after validation to
// ensure thread safety.
type SegmenterConfig struct {
	// NumSegments is the number of population segments to build,
	// typically 10 for a decile table. With the boundary_snap policy or
	// more segments than observations, fewer segments may be emitted.
	NumSegments int `yaml:"num_segments" json:"num_segments" validate:"required,min=1"`

	// TiePolicy selects how tied probability values are placed at segment
	// boundaries.
	//
	// Supported values:
	//   - "rank_equal_count": equal-population bins, ties may split
	//   - "boundary_snap": tie runs never straddle a boundary
	//
	// Default: "rank_equal_count" for reproducible, equal-sized bins.
	TiePolicy domain.TiePolicy `yaml:"tie_policy" json:"tie_policy" validate:"required,oneof=rank_equal_count boundary_snap"`

	// RoundBounds rounds the reported segment probability bounds to the
	// nearest integer. Only presentation of bounds is affected; the
	// partition itself always uses the raw probabilities.
	RoundBounds bool `yaml:"round_bounds" json:"round_bounds"`
}

// DefaultSegmenterConfig returns a SegmenterConfig with the engine's
// defaults: a decile table under the rank-based equal-count policy.
func DefaultSegmenterConfig() SegmenterConfig {
	return SegmenterConfig{
		NumSegments: 10,
		TiePolicy:   domain.TieRankEqualCount,
	}
}

// NewSegmenter creates the segmenter implementation selected by the
// configuration's tie policy. This is the boundary adapter used by callers
// that treat the strategy as configuration rather than as a concrete type.
func NewSegmenter(name string, config SegmenterConfig) (domain.Segmenter, error) {
	switch config.TiePolicy {
	case domain.TieBoundarySnap:
		return NewBoundarySegmenter(name, config)
	default:
		return NewRankSegmenter(name, config)
	}
}

// RankSegmenter partitions observations into equal-count segments by rank.
// Observations are sorted by descending predicted probability (stable, so
// ties keep input order) and split into NumSegments contiguous groups as
// close to equal population as integer division allows, the remainder going
// to the earliest groups. Tied probability values may end up in adjacent
// segments; in exchange the partition depends only on ranks and is
// reproducible for any input.
//
// The segmenter is stateless and thread-safe.
type RankSegmenter struct {
	name   string
	config SegmenterConfig
}

// NewRankSegmenter creates a new RankSegmenter with the specified
// configuration. It returns an error if the configuration is invalid.
func NewRankSegmenter(name string, config SegmenterConfig) (*RankSegmenter, error) {
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
	return &RankSegmenter{name: name, config: config}, nil
}

// Name returns the unique identifier for this segmenter instance.
func (rs *RankSegmenter) Name() string { return rs.name }

// Segment implements domain.Segmenter using rank-based equal-count bins.
// Inputs are validated before any computation; violations return an error
// wrapping domain.ErrInvalidInput. When NumSegments exceeds the number of
// observations, only the non-empty leading segments are returned.
func (rs *RankSegmenter) Segment(ctx context.Context, probabilities []float64, labels []int) ([]domain.Segment, error) {
	if err := validateInputs(probabilities, labels); err != nil {
		return nil, err
	}
	obs := sortObservations(probabilities, labels)
	offsets := cutOffsets(len(obs), rs.config.NumSegments)
	return buildSegments(ctx, obs, offsets, rs.config.RoundBounds)
}

// Validate checks if the segmenter is properly configured and ready for use.
func (rs *RankSegmenter) Validate() error {
	if err := validate.Struct(rs.config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}
	return nil
}

// UnmarshalParameters deserializes YAML configuration parameters and updates
// the segmenter's configuration.
//
// Supported YAML fields:
//   - num_segments: int (>= 1)
//   - tie_policy: "rank_equal_count"|"boundary_snap"
//   - round_bounds: boolean
//
// This method modifies segmenter state and is NOT thread-safe. Callers must
// ensure exclusive access during reconfiguration.
func (rs *RankSegmenter) UnmarshalParameters(params yaml.Node) error {
	config := DefaultSegmenterConfig()
	if err := params.Decode(&config); err != nil {
		return fmt.Errorf("failed to decode parameters: %w", err)
	}
	if err := validate.Struct(config); err != nil {
		return fmt.Errorf("parameter validation failed: %w", err)
	}
	rs.config = config
	return nil
}
