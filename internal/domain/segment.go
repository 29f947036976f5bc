package domain

// Segment is one ordered partition of the observation set: a contiguous
// probability range with raw class counts. Segments are indexed by
// descending predicted probability, so segment 0 holds the observations
// the model scored highest.
//
// Invariants maintained by the Segmenter:
//   - Events + NonEvents == Population
//   - Population >= 1 (empty segments are never emitted)
//   - segments partition the input exactly once; populations sum to the
//     total input length
type Segment struct {
	// Index is the 0-based position of this segment, ordered by
	// descending predicted probability.
	Index int `json:"index"`

	// LowerBound is the smallest predicted probability observed in this
	// segment.
	LowerBound float64 `json:"lower_bound"`

	// UpperBound is the largest predicted probability observed in this
	// segment.
	UpperBound float64 `json:"upper_bound"`

	// Population is the number of observations in this segment.
	Population int `json:"population"`

	// Events is the number of class-1 observations in this segment.
	Events int `json:"events"`

	// NonEvents is the number of class-0 observations in this segment.
	NonEvents int `json:"non_events"`
}

// TiePolicy selects how observations with identical predicted probabilities
// are placed when they straddle a would-be segment boundary.
type TiePolicy string

// Supported tie policies for the segmenter.
const (
	// TieRankEqualCount assigns observations to segments purely by rank,
	// keeping segment populations as equal as integer division allows.
	// Tied probability values may split across adjacent segments. This is
	// the default because it is deterministic and reproducible for any
	// input.
	TieRankEqualCount TiePolicy = "rank_equal_count"

	// TieBoundarySnap never splits a run of tied probabilities across a
	// boundary; the whole run stays in the earlier, higher-probability
	// segment. Segment populations may be unequal and, when the input has
	// few distinct values, fewer segments than requested may be produced.
	TieBoundarySnap TiePolicy = "boundary_snap"
)
