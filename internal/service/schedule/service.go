package schedule

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aerogate/gateplan/internal/domain"
	"github.com/aerogate/gateplan/internal/observability/metrics"
	"github.com/aerogate/gateplan/internal/observability/tracing"
	"github.com/aerogate/gateplan/internal/service/partition"
)

// Service owns the aircraft store and the current gate assignment.
// All operations are synchronous and serialized by a single lock; there
// is no safe interleaving of an incremental assignment with a recompute
// on the same assignment.
//
// Incremental assignment is deliberately a best-effort first-fit: it
// never moves an already-placed aircraft, at the cost of possibly using
// more gates than necessary. Recompute is the only operation that
// restores the minimality guarantee.
type Service struct {
	mu sync.Mutex

	store      *Store
	assignment *domain.Assignment

	allocator       partition.Allocator
	repo            domain.ScheduleRepository
	recorder        domain.PlanRecorder
	planningMetrics *metrics.PlanningMetrics
}

// NewService creates a schedule service. repo, recorder and
// planningMetrics may be nil.
func NewService(
	allocator partition.Allocator,
	repo domain.ScheduleRepository,
	recorder domain.PlanRecorder,
	planningMetrics *metrics.PlanningMetrics,
) *Service {
	return &Service{
		store:           NewStore(),
		assignment:      domain.NewAssignment(),
		allocator:       allocator,
		repo:            repo,
		recorder:        recorder,
		planningMetrics: planningMetrics,
	}
}

// AddAircraft validates and registers a new aircraft. The aircraft is
// not assigned to a gate until AssignIncremental or Recompute runs.
func (s *Service) AddAircraft(ctx context.Context, code string, arrival, departure int) (domain.Aircraft, error) {
	aircraft, err := domain.NewAircraft(code, arrival, departure)
	if err != nil {
		return domain.Aircraft{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Add(aircraft); err != nil {
		return domain.Aircraft{}, err
	}

	s.persistAircraft(ctx, aircraft)

	if s.planningMetrics != nil {
		s.planningMetrics.RecordAircraftRegistered(ctx)
	}

	slog.InfoContext(ctx, "aircraft registered",
		slog.String("aircraft_id", aircraft.ID),
		slog.String("code", aircraft.Code),
		slog.String("arrival", domain.FormatClock(aircraft.Arrival)),
		slog.String("departure", domain.FormatClock(aircraft.Departure)),
	)

	return aircraft, nil
}

// AssignIncremental places one registered aircraft into the current
// assignment without disturbing any other gate. Calling it again for an
// already-assigned aircraft returns its current gate.
func (s *Service) AssignIncremental(ctx context.Context, id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	aircraft, ok := s.store.Get(id)
	if !ok {
		return 0, domain.ErrUnknownAircraft
	}

	if gi := s.assignment.Locate(id); gi >= 0 {
		return gi, nil
	}

	ctx, span := tracing.StartIncrementalAssignSpan(ctx, aircraft.Code)
	defer span.End()

	gateIndex, opened := partition.FirstFit(ctx, s.assignment, aircraft)

	outcome := "reused"
	if opened {
		outcome = "opened"
	}
	if s.planningMetrics != nil {
		s.planningMetrics.RecordAssignment(ctx, "incremental", outcome)
		s.planningMetrics.RecordGatesInUse(ctx, s.assignment.GateCount())
	}

	slog.InfoContext(ctx, "incremental assignment",
		slog.String("aircraft_id", id),
		slog.Int("gate", gateIndex),
		slog.Bool("opened_gate", opened),
	)

	return gateIndex, nil
}

// RemoveAircraft deletes the given handles from the store and the
// assignment. Unknown handles are skipped; the returned count tells the
// caller how many matched. Any actual removal discards the assignment,
// and if aircraft remain the batch allocator rebuilds a fresh minimum
// partition, since removal can retroactively permit a tighter grouping.
func (s *Service) RemoveAircraft(ctx context.Context, ids ...string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	removedIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		if s.store.Remove(id) {
			s.assignment.Remove(id)
			removedIDs = append(removedIDs, id)
			removed++
		}
	}

	if removed == 0 {
		return 0, nil
	}

	if s.repo != nil {
		if err := s.repo.DeleteAircraft(ctx, removedIDs); err != nil {
			slog.WarnContext(ctx, "failed to delete persisted aircraft",
				slog.Int("count", len(removedIDs)),
				slog.String("error", err.Error()),
			)
		}
	}

	if s.planningMetrics != nil {
		s.planningMetrics.RecordAircraftRemoved(ctx, removed)
	}

	s.recomputeLocked(ctx)

	slog.InfoContext(ctx, "aircraft removed, schedule rebuilt",
		slog.Int("removed", removed),
		slog.Int("remaining", s.store.Len()),
		slog.Int("gates", s.assignment.GateCount()),
	)

	return removed, nil
}

// Recompute discards the current assignment and rebuilds it from the
// entire store with the batch allocator. Gate indices from before the
// call are invalidated.
func (s *Service) Recompute(ctx context.Context) (int, ScheduleView) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recomputeLocked(ctx)

	return s.assignment.GateCount(), s.snapshotLocked()
}

func (s *Service) recomputeLocked(ctx context.Context) {
	aircraft := s.store.All()

	ctx, span := tracing.StartRecomputeSpan(ctx, len(aircraft), s.allocator.Name())
	defer span.End()

	start := time.Now()
	s.assignment = s.allocator.Allocate(ctx, aircraft)
	duration := time.Since(start)

	depth := partition.OverlapDepth(aircraft)

	if s.planningMetrics != nil {
		s.planningMetrics.RecordPlanningDuration(ctx, s.allocator.Name(), duration)
		s.planningMetrics.RecordGatesInUse(ctx, s.assignment.GateCount())
	}

	if s.recorder != nil {
		record := domain.PlanRecord{
			RunID:         uuid.NewString(),
			AircraftCount: len(aircraft),
			GatesUsed:     s.assignment.GateCount(),
			OverlapDepth:  depth,
			Strategy:      s.allocator.Name(),
			Duration:      duration,
			PlannedAt:     time.Now().UTC(),
		}
		if err := s.recorder.RecordPlan(ctx, record); err != nil {
			slog.WarnContext(ctx, "failed to record planning result",
				slog.String("error", err.Error()),
			)
		}
	}

	slog.InfoContext(ctx, "schedule recomputed",
		slog.Int("aircraft", len(aircraft)),
		slog.Int("gates", s.assignment.GateCount()),
		slog.Int("overlap_depth", depth),
		slog.String("strategy", s.allocator.Name()),
		slog.Duration("duration", duration),
	)
}

// AircraftCount reports the size of the store.
func (s *Service) AircraftCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Len()
}

// GateCount reports the gate count of the current assignment.
func (s *Service) GateCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.assignment.GateCount()
}

// Snapshot returns a detached copy of the current schedule for display.
func (s *Service) Snapshot(_ context.Context) ScheduleView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshotLocked()
}

func (s *Service) snapshotLocked() ScheduleView {
	view := ScheduleView{
		GateCount:    s.assignment.GateCount(),
		Gates:        make([]GateView, 0, s.assignment.GateCount()),
		Unassigned:   make([]AircraftView, 0),
		OverlapDepth: partition.OverlapDepth(s.store.All()),
		TakenAt:      time.Now().UTC(),
	}

	for gi := range s.assignment.Gates {
		gateView := GateView{
			Gate:     gi,
			Aircraft: make([]AircraftView, 0, len(s.assignment.Gates[gi].Aircraft)),
		}
		for _, a := range s.assignment.Gates[gi].Aircraft {
			gateView.Aircraft = append(gateView.Aircraft, newAircraftView(a))
		}
		view.Gates = append(view.Gates, gateView)
	}

	for _, a := range s.store.All() {
		if s.assignment.Locate(a.ID) < 0 {
			view.Unassigned = append(view.Unassigned, newAircraftView(a))
		}
	}

	return view
}

// Restore reloads the persisted aircraft set into an empty store and
// runs an initial planning pass. Called once at startup when a
// repository is configured.
func (s *Service) Restore(ctx context.Context) (int, error) {
	if s.repo == nil {
		return 0, nil
	}

	aircraft, err := s.repo.ListAircraft(ctx)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range aircraft {
		if err := s.store.Add(a); err != nil {
			slog.WarnContext(ctx, "skipping duplicate persisted aircraft",
				slog.String("aircraft_id", a.ID),
			)
		}
	}

	if s.store.Len() > 0 {
		s.recomputeLocked(ctx)
	}

	return s.store.Len(), nil
}

func (s *Service) persistAircraft(ctx context.Context, aircraft domain.Aircraft) {
	if s.repo == nil {
		return
	}

	if err := s.repo.SaveAircraft(ctx, aircraft); err != nil {
		slog.WarnContext(ctx, "failed to persist aircraft",
			slog.String("aircraft_id", aircraft.ID),
			slog.String("error", err.Error()),
		)
	}
}
