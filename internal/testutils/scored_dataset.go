// Package testutils provides test data generators for the evaluation
// engine's test suites and benchmarks. These components are intended for
// internal use and are not part of the public API.
package testutils

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ArturoSbr/go-binclass/internal/domain"
)

// ScoredDataset holds a synthetic pair of parallel input sequences for the
// evaluation engine: predicted probabilities and observed binary outcomes.
type ScoredDataset struct {
	Probabilities []float64
	Labels        []int
}

// GenerateScoredDataset creates a synthetic scored dataset of the given
// size. The seed parameter controls randomization - use a fixed value for
// reproducible tests.
//
// eventRate sets the share of class-1 observations. separation in [0, 1]
// controls the model's discrimination quality: 0 gives class-independent
// scores (KS near 0) and values near 1 push the two class score
// distributions apart (KS near 1).
func GenerateScoredDataset(size int, eventRate, separation float64, seed int64) ScoredDataset {
	rng := rand.New(rand.NewSource(seed))

	ds := ScoredDataset{
		Probabilities: make([]float64, size),
		Labels:        make([]int, size),
	}
	for i := 0; i < size; i++ {
		label := domain.LabelNonEvent
		center := 0.5 - separation/2
		if rng.Float64() < eventRate {
			label = domain.LabelEvent
			center = 0.5 + separation/2
		}
		ds.Labels[i] = label
		ds.Probabilities[i] = clamp01(center + rng.NormFloat64()*0.15)
	}
	return ds
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SaveScoredDatasetCSV writes the dataset as a two-column CSV file
// (probability, label), creating parent directories as needed.
func SaveScoredDatasetCSV(ds ScoredDataset, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"probability", "label"}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range ds.Probabilities {
		record := []string{
			strconv.FormatFloat(ds.Probabilities[i], 'g', -1, 64),
			strconv.Itoa(ds.Labels[i]),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write record %d: %w", i, err)
		}
	}
	w.Flush()
	return w.Error()
}
