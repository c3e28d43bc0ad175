package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const planningTracerName = "github.com/aerogate/gateplan/internal/service/schedule"

func PlanningTracer() trace.Tracer {
	return otel.Tracer(planningTracerName)
}

func StartRecomputeSpan(ctx context.Context, aircraftCount int, strategy string) (context.Context, trace.Span) {
	return PlanningTracer().Start(ctx, "gateplan.recompute",
		trace.WithAttributes(
			attribute.Int("aircraft.count", aircraftCount),
			attribute.String("allocator.strategy", strategy),
		),
	)
}

func StartIncrementalAssignSpan(ctx context.Context, aircraftCode string) (context.Context, trace.Span) {
	return PlanningTracer().Start(ctx, "gateplan.incremental_assign",
		trace.WithAttributes(
			attribute.String("aircraft.code", aircraftCode),
		),
	)
}
