package domain

import (
	"encoding/json"
	"math"
)

// CumulativeEpsilon bounds the floating-point drift tolerated on the final
// row's cumulative percentage columns, which converge to exactly 1.0 in
// exact arithmetic.
const CumulativeEpsilon = 1e-9

// Row is one line of the results table: a Segment plus the relative and
// cumulative figures derived from it. Rows are plain immutable values;
// callers must not mutate a table after it is returned.
type Row struct {
	Segment

	// EventRate is Events / Population within this segment alone.
	EventRate float64 `json:"event_rate"`

	// NonEventRate is NonEvents / Population within this segment alone.
	NonEventRate float64 `json:"non_event_rate"`

	// Odds is NonEvents / Events within this segment alone (class 0 over
	// class 1). A segment with zero events reports +Inf rather than an
	// error: a zero-event bin is a legitimate, informative outcome.
	Odds float64 `json:"odds"`

	// CumPopulation counts observations from segment 0 through this one.
	// Because segments are ordered by descending probability, this also
	// counts every observation scored at or above this segment's lower
	// bound.
	CumPopulation int `json:"cum_population"`

	// CumEvents counts class-1 observations from segment 0 through this one.
	CumEvents int `json:"cum_events"`

	// CumNonEvents counts class-0 observations from segment 0 through this one.
	CumNonEvents int `json:"cum_non_events"`

	// CumPopulationPct is CumPopulation over the total population.
	CumPopulationPct float64 `json:"cum_population_pct"`

	// CumEventPct is CumEvents over the total event count.
	CumEventPct float64 `json:"cum_event_pct"`

	// CumNonEventPct is CumNonEvents over the total non-event count.
	CumNonEventPct float64 `json:"cum_non_event_pct"`

	// AbsDifference is |CumEventPct - CumNonEventPct|. The KS statistic is
	// the maximum of this column.
	AbsDifference float64 `json:"abs_difference"`
}

// MarshalJSON encodes the row with a null odds field when the odds are not
// finite, since JSON has no representation for +Inf. Consumers can tell a
// zero-event segment (null) apart from genuine zero odds.
func (r Row) MarshalJSON() ([]byte, error) {
	type alias Row
	out := struct {
		alias
		Odds *float64 `json:"odds"`
	}{alias: alias(r)}
	if !math.IsInf(r.Odds, 0) && !math.IsNaN(r.Odds) {
		out.Odds = &r.Odds
	}
	return json.Marshal(out)
}

// EvaluationResult is the engine's final artifact: the ordered results table
// together with the Kolmogorov-Smirnov separation statistic derived from its
// cumulative columns. The result is immutable once returned and owned by the
// caller; no state is shared between evaluation calls.
type EvaluationResult struct {
	// ID uniquely identifies the result. It is derived deterministically
	// from the table contents, so identical inputs and configuration yield
	// identical IDs.
	ID string `json:"id"`

	// Observations is the total number of scored observations.
	Observations int `json:"observations"`

	// Events is the total number of class-1 observations.
	Events int `json:"events"`

	// NonEvents is the total number of class-0 observations.
	NonEvents int `json:"non_events"`

	// KSStatistic is the maximum absolute difference between the
	// cumulative event and cumulative non-event distributions, in [0, 1].
	KSStatistic float64 `json:"ks_statistic"`

	// KSSegmentIndex is the smallest segment index at which KSStatistic
	// occurs.
	KSSegmentIndex int `json:"ks_segment_index"`

	// Table holds the per-segment rows in ascending index order.
	Table []Row `json:"table"`
}
