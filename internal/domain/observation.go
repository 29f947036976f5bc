// Package domain contains the core value types and contracts for the
// binary-classifier evaluation engine: observations, population segments,
// the results table, and the segmentation/aggregation interfaces.
package domain

// Observation labels. An observation is an "event" when the observed class
// is 1 and a "non-event" when it is 0.
const (
	// LabelNonEvent marks an observation of class 0.
	LabelNonEvent = 0

	// LabelEvent marks an observation of class 1, the class of interest.
	LabelEvent = 1
)

// Observation pairs one predicted probability with its observed class.
// Observations exist only for the duration of a single evaluation call;
// they are never shared across calls.
type Observation struct {
	// Probability is the model's predicted probability of the event class.
	// Valid values lie in [0, 1].
	Probability float64 `json:"probability"`

	// Label is the observed class, either LabelNonEvent or LabelEvent.
	Label int `json:"label"`
}

// IsEvent reports whether the observation belongs to the event class.
func (o Observation) IsEvent() bool { return o.Label == LabelEvent }
