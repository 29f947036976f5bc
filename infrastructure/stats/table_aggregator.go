package stats

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"github.com/ArturoSbr/go-binclass/internal/domain"
)

var _ domain.Aggregator = (*TableAggregator)(nil)

// TableAggregator derives the results table and the Kolmogorov-Smirnov
// statistic from an ordered segment sequence. Per segment, ascending index:
// running class totals, cumulative percentage columns, per-segment rates and
// odds, and the absolute difference between the two cumulative class
// distributions. The KS statistic is the maximum of that difference; ties on
// the maximum resolve to the smallest segment index.
//
// The aggregator is stateless and thread-safe.
type TableAggregator struct {
	name string
}

// NewTableAggregator creates a new TableAggregator.
// It returns an error if the name is empty.
func NewTableAggregator(name string) (*TableAggregator, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &TableAggregator{name: name}, nil
}

// Name returns the unique identifier for this aggregator instance.
func (ta *TableAggregator) Name() string { return ta.name }

// Aggregate implements domain.Aggregator.
//
// Error conditions:
//   - ErrNoSegments when the segment sequence is empty
//   - ErrSegmentOrder when segments are not in ascending index order
//   - domain.ErrDegenerateClasses when the population holds only one class,
//     since KS and odds are meaningless without both distributions
//
// A zero-event segment is not an error: its odds are reported as +Inf, a
// legitimate, informative outcome (perfect separation within that bin).
func (ta *TableAggregator) Aggregate(segments []domain.Segment) (*domain.EvaluationResult, error) {
	if len(segments) == 0 {
		return nil, domain.NewAggregationError("validate", ErrNoSegments)
	}
	for i, seg := range segments {
		if seg.Index != i {
			return nil, domain.NewAggregationError("validate",
				fmt.Errorf("%w: index %d at position %d", ErrSegmentOrder, seg.Index, i))
		}
		if seg.Population < 1 || seg.Events+seg.NonEvents != seg.Population {
			return nil, domain.NewAggregationError("validate",
				fmt.Errorf("segment %d has inconsistent counts: population=%d, events=%d, non_events=%d",
					i, seg.Population, seg.Events, seg.NonEvents))
		}
	}

	n := len(segments)
	population := make([]float64, n)
	events := make([]float64, n)
	nonEvents := make([]float64, n)
	for i, seg := range segments {
		population[i] = float64(seg.Population)
		events[i] = float64(seg.Events)
		nonEvents[i] = float64(seg.NonEvents)
	}

	totalEvents := floats.Sum(events)
	totalNonEvents := floats.Sum(nonEvents)
	totalPopulation := floats.Sum(population)
	if totalEvents == 0 || totalNonEvents == 0 {
		return nil, domain.NewAggregationError("totals",
			fmt.Errorf("%w: events=%.0f, non_events=%.0f", domain.ErrDegenerateClasses,
				totalEvents, totalNonEvents))
	}

	cumPopulation := floats.CumSum(make([]float64, n), population)
	cumEvents := floats.CumSum(make([]float64, n), events)
	cumNonEvents := floats.CumSum(make([]float64, n), nonEvents)

	table := make([]domain.Row, n)
	ks := 0.0
	ksIndex := 0
	for i, seg := range segments {
		odds := math.Inf(1)
		if seg.Events > 0 {
			odds = nonEvents[i] / events[i]
		}
		row := domain.Row{
			Segment:          seg,
			EventRate:        events[i] / population[i],
			NonEventRate:     nonEvents[i] / population[i],
			Odds:             odds,
			CumPopulation:    int(cumPopulation[i]),
			CumEvents:        int(cumEvents[i]),
			CumNonEvents:     int(cumNonEvents[i]),
			CumPopulationPct: cumPopulation[i] / totalPopulation,
			CumEventPct:      cumEvents[i] / totalEvents,
			CumNonEventPct:   cumNonEvents[i] / totalNonEvents,
		}
		row.AbsDifference = math.Abs(row.CumEventPct - row.CumNonEventPct)
		table[i] = row

		// Strict comparison keeps the first segment achieving the maximum.
		if row.AbsDifference > ks {
			ks = row.AbsDifference
			ksIndex = i
		}
	}

	return &domain.EvaluationResult{
		ID:             resultID(segments),
		Observations:   int(totalPopulation),
		Events:         int(totalEvents),
		NonEvents:      int(totalNonEvents),
		KSStatistic:    ks,
		KSSegmentIndex: ksIndex,
		Table:          table,
	}, nil
}

// resultID derives a version-5 UUID from the segment contents. The table
// fully determines every derived column, so identical inputs and
// configuration always produce the same ID.
func resultID(segments []domain.Segment) string {
	buf := make([]byte, 0, len(segments)*40)
	for _, seg := range segments {
		buf = binary.BigEndian.AppendUint64(buf, uint64(seg.Index))
		buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(seg.LowerBound))
		buf = binary.BigEndian.AppendUint64(buf, math.Float64bits(seg.UpperBound))
		buf = binary.BigEndian.AppendUint64(buf, uint64(seg.Population))
		buf = binary.BigEndian.AppendUint64(buf, uint64(seg.Events))
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, buf).String()
}
