package chainread

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/gabapcia/fantoken/internal/pkg/chainerr"
	"github.com/gabapcia/fantoken/internal/pkg/logger"
	"github.com/gabapcia/fantoken/internal/pkg/telemetry"
)

func startSpan(ctx context.Context, kind Kind, target string) (context.Context, trace.Span) {
	return telemetry.Tracer().Start(ctx, "chainread.read_"+kind.String(),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("chain.query.kind", kind.String()),
			attribute.String("chain.query.target", target),
		),
	)
}

// observe records the outcome of result on span and returns it unchanged.
func observe(ctx context.Context, span trace.Span, result Result) Result {
	outcome := chainerr.Outcome(result.Err)
	span.SetAttributes(attribute.String("chain.query.outcome", outcome))

	if result.Err != nil {
		span.RecordError(result.Err)
		span.SetStatus(codes.Error, outcome)

		logger.Debug(ctx, "chain read failed",
			"chain.query.kind", result.Kind.String(),
			"chain.query.target", result.Target,
			"chain.query.outcome", outcome,
			"error", result.Err,
		)
		return result
	}

	if result.AsOfBlock != nil {
		span.SetAttributes(attribute.Int64("chain.query.block", int64(*result.AsOfBlock)))
	}

	return result
}
