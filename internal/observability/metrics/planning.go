package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	planningMeterName = "gateplan.service"
)

type PlanningMetrics struct {
	aircraftRegistered metric.Int64Counter
	aircraftRemoved    metric.Int64Counter
	assignments        metric.Int64Counter
	planningDuration   metric.Float64Histogram
	gatesInUse         metric.Int64Gauge
}

func NewPlanningMetrics() (*PlanningMetrics, error) {
	meter := otel.Meter(planningMeterName)

	aircraftRegistered, err := meter.Int64Counter(
		"gateplan_aircraft_registered_total",
		metric.WithDescription("Total number of aircraft added to the schedule"),
		metric.WithUnit("{aircraft}"),
	)
	if err != nil {
		return nil, err
	}

	aircraftRemoved, err := meter.Int64Counter(
		"gateplan_aircraft_removed_total",
		metric.WithDescription("Total number of aircraft removed from the schedule"),
		metric.WithUnit("{aircraft}"),
	)
	if err != nil {
		return nil, err
	}

	assignments, err := meter.Int64Counter(
		"gateplan_assignments_total",
		metric.WithDescription("Gate assignments by mode and outcome"),
		metric.WithUnit("{assignment}"),
	)
	if err != nil {
		return nil, err
	}

	planningDuration, err := meter.Float64Histogram(
		"gateplan_planning_duration_seconds",
		metric.WithDescription("Full recompute duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5,
		),
	)
	if err != nil {
		return nil, err
	}

	gatesInUse, err := meter.Int64Gauge(
		"gateplan_gates_in_use",
		metric.WithDescription("Gate count of the current assignment"),
		metric.WithUnit("{gate}"),
	)
	if err != nil {
		return nil, err
	}

	return &PlanningMetrics{
		aircraftRegistered: aircraftRegistered,
		aircraftRemoved:    aircraftRemoved,
		assignments:        assignments,
		planningDuration:   planningDuration,
		gatesInUse:         gatesInUse,
	}, nil
}

func (m *PlanningMetrics) RecordAircraftRegistered(ctx context.Context) {
	m.aircraftRegistered.Add(ctx, 1)
}

func (m *PlanningMetrics) RecordAircraftRemoved(ctx context.Context, count int) {
	m.aircraftRemoved.Add(ctx, int64(count))
}

func (m *PlanningMetrics) RecordAssignment(ctx context.Context, mode, outcome string) {
	m.assignments.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.String("outcome", outcome),
	))
}

func (m *PlanningMetrics) RecordPlanningDuration(ctx context.Context, strategy string, duration time.Duration) {
	m.planningDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("strategy", strategy),
	))
}

func (m *PlanningMetrics) RecordGatesInUse(ctx context.Context, count int) {
	m.gatesInUse.Record(ctx, int64(count))
}
