// Command generate_scored_dataset emits a synthetic scored dataset
// (predicted probability, observed label) as CSV for benchmarking the
// evaluation engine against inputs of known discrimination quality.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/ArturoSbr/go-binclass/internal/testutils"
)

func main() {
	var (
		size       = flag.Int("size", 10000, "Number of observations to generate")
		eventRate  = flag.Float64("event-rate", 0.3, "Share of class-1 observations")
		separation = flag.Float64("separation", 0.5, "Score separation between classes in [0,1]")
		seed       = flag.Int64("seed", 0, "Random seed (0 uses the current time)")
		outputPath = flag.String("output", "testdata/scored_dataset.csv", "Output file path")
	)
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	ds := testutils.GenerateScoredDataset(*size, *eventRate, *separation, *seed)
	if err := testutils.SaveScoredDatasetCSV(ds, *outputPath); err != nil {
		log.Fatalf("Failed to save dataset: %v", err)
	}

	events := 0
	for _, l := range ds.Labels {
		events += l
	}

	fmt.Printf("Generated scored dataset:\n")
	fmt.Printf("- Path: %s\n", *outputPath)
	fmt.Printf("- Observations: %d\n", len(ds.Probabilities))
	fmt.Printf("- Events: %d (%.1f%%)\n", events, 100*float64(events)/float64(len(ds.Labels)))
	fmt.Printf("- Seed: %d\n", *seed)
}
