package planrecorder

import (
	"context"

	"github.com/aerogate/gateplan/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.PlanRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordPlan(_ context.Context, _ domain.PlanRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
