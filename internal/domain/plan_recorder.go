package domain

import (
	"context"
	"time"
)

// PlanRecord captures the outcome of one full planning pass.
type PlanRecord struct {
	RunID         string
	AircraftCount int
	GatesUsed     int
	OverlapDepth  int
	Strategy      string
	Duration      time.Duration
	PlannedAt     time.Time
}

// PlanRecorder receives planning outcomes for offline analysis.
type PlanRecorder interface {
	RecordPlan(ctx context.Context, record PlanRecord) error
	Flush(ctx context.Context) error
	Close() error
}
