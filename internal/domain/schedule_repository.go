package domain

import "context"

// ScheduleRepository persists the current aircraft set so a restarted
// service can reload its store. Assignments are never persisted; they
// are recomputed from the reloaded aircraft.
type ScheduleRepository interface {
	SaveAircraft(ctx context.Context, aircraft Aircraft) error
	DeleteAircraft(ctx context.Context, ids []string) error
	ListAircraft(ctx context.Context) ([]Aircraft, error)
}
