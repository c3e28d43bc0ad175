package schedule

import (
	"time"

	"github.com/aerogate/gateplan/internal/domain"
)

type AircraftView struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	Arrival        int    `json:"arrival"`
	Departure      int    `json:"departure"`
	ArrivalClock   string `json:"arrival_clock"`
	DepartureClock string `json:"departure_clock"`
}

type GateView struct {
	Gate     int            `json:"gate"`
	Aircraft []AircraftView `json:"aircraft"`
}

// ScheduleView is a detached snapshot for display. It never aliases
// engine state.
type ScheduleView struct {
	GateCount    int            `json:"gate_count"`
	Gates        []GateView     `json:"gates"`
	Unassigned   []AircraftView `json:"unassigned"`
	OverlapDepth int            `json:"overlap_depth"`
	TakenAt      time.Time      `json:"taken_at"`
}

func newAircraftView(a domain.Aircraft) AircraftView {
	return AircraftView{
		ID:             a.ID,
		Code:           a.Code,
		Arrival:        a.Arrival,
		Departure:      a.Departure,
		ArrivalClock:   domain.FormatClock(a.Arrival),
		DepartureClock: domain.FormatClock(a.Departure),
	}
}
