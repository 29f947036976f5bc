package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArturoSbr/go-binclass/internal/domain"
	"github.com/ArturoSbr/go-binclass/internal/ports"
)

// TestOTelEvaluationObserver exercises both lifecycle paths against the
// global (no-op by default) tracer provider. The assertions cover contract
// behavior; span contents are the exporter's concern.
func TestOTelEvaluationObserver(t *testing.T) {
	var _ ports.EvaluationObserver = (*OTelEvaluationObserver)(nil)

	observer := NewOTelEvaluationObserver()

	t.Run("successful evaluation", func(t *testing.T) {
		ctx := observer.EvaluationStarted(context.Background(), 100, "segmenter")
		require.NotNil(t, ctx)

		result := &domain.EvaluationResult{
			KSStatistic:    0.5,
			KSSegmentIndex: 2,
			Table:          make([]domain.Row, 10),
		}
		assert.NotPanics(t, func() {
			observer.EvaluationCompleted(ctx, result, time.Millisecond, nil)
		})
	})

	t.Run("failed evaluation", func(t *testing.T) {
		ctx := observer.EvaluationStarted(context.Background(), 3, "segmenter")
		assert.NotPanics(t, func() {
			observer.EvaluationCompleted(ctx, nil, time.Millisecond,
				domain.NewInputError("labels", 1, "label 2 is not in {0, 1}"))
		})
	})
}
