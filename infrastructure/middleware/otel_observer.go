package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ArturoSbr/go-binclass/internal/domain"
	"github.com/ArturoSbr/go-binclass/internal/ports"
)

var _ ports.EvaluationObserver = (*OTelEvaluationObserver)(nil)

// tracerName identifies this library's tracer in exported spans.
const tracerName = "github.com/ArturoSbr/go-binclass"

// OTelEvaluationObserver implements observability for evaluation runs using
// OpenTelemetry tracing. It opens a span per evaluation, records the input
// size and partitioning strategy, and annotates the span with the resulting
// separation statistics or the terminal error.
type OTelEvaluationObserver struct{}

// NewOTelEvaluationObserver creates a new OpenTelemetry evaluation observer.
func NewOTelEvaluationObserver() *OTelEvaluationObserver {
	return &OTelEvaluationObserver{}
}

// EvaluationStarted implements the EvaluationObserver interface. It starts
// an OpenTelemetry span and records the initial evaluation attributes.
func (o *OTelEvaluationObserver) EvaluationStarted(ctx context.Context, observations int, segmenter string) context.Context {
	tracer := otel.Tracer(tracerName)
	ctx, _ = tracer.Start(ctx, "Evaluator.Evaluate",
		trace.WithAttributes(
			attribute.Int("binclass.observations", observations),
			attribute.String("binclass.segmenter", segmenter),
		),
	)
	return ctx
}

// EvaluationCompleted implements the EvaluationObserver interface. It
// finalizes the span started by EvaluationStarted.
func (o *OTelEvaluationObserver) EvaluationCompleted(
	ctx context.Context,
	result *domain.EvaluationResult,
	elapsed time.Duration,
	err error,
) {
	span := trace.SpanFromContext(ctx)
	defer span.End()

	span.SetAttributes(attribute.Int64("binclass.elapsed_us", elapsed.Microseconds()))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}

	span.SetAttributes(
		attribute.Float64("binclass.ks_statistic", result.KSStatistic),
		attribute.Int("binclass.ks_segment_index", result.KSSegmentIndex),
		attribute.Int("binclass.segments", len(result.Table)),
	)
	span.SetStatus(codes.Ok, "")
}
