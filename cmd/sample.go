package main

import (
	"context"
	"log/slog"

	"github.com/aerogate/gateplan/internal/domain"
	"github.com/aerogate/gateplan/internal/service/schedule"
)

// seedSampleSchedule loads a well-known demonstration day and runs an
// initial planning pass. The dataset peaks at three simultaneous
// aircraft, so the recompute should report three gates.
func seedSampleSchedule(ctx context.Context, svc *schedule.Service) error {
	sample := []struct {
		code      string
		arrival   string
		departure string
	}{
		{"a", "09:00", "10:30"},
		{"b", "09:00", "12:30"},
		{"d", "11:00", "12:30"},
		{"e", "11:00", "14:00"},
		{"f", "13:00", "14:30"},
		{"g", "13:00", "14:30"},
		{"h", "14:00", "16:30"},
		{"i", "15:00", "16:30"},
		{"j", "15:00", "16:30"},
	}

	for _, entry := range sample {
		arrival, err := domain.ParseClock(entry.arrival)
		if err != nil {
			return err
		}
		departure, err := domain.ParseClock(entry.departure)
		if err != nil {
			return err
		}

		if _, err := svc.AddAircraft(ctx, entry.code, arrival, departure); err != nil {
			return err
		}
	}

	gates, _ := svc.Recompute(ctx)

	slog.InfoContext(ctx, "sample schedule loaded",
		slog.Int("aircraft", len(sample)),
		slog.Int("gates", gates),
	)

	return nil
}
