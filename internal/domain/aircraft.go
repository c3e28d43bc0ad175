package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Aircraft represents a flight occupying a gate for the half-open
// interval [Arrival, Departure), in minutes from midnight.
type Aircraft struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Arrival   int    `json:"arrival"`
	Departure int    `json:"departure"`
}

// NewAircraft validates the interval and assigns a fresh handle.
// The Code is a display label, not an identity: two aircraft may share
// a code but never an ID.
func NewAircraft(code string, arrival, departure int) (Aircraft, error) {
	if arrival < 0 || departure <= arrival {
		return Aircraft{}, ErrInvalidInterval
	}

	return Aircraft{
		ID:        uuid.NewString(),
		Code:      code,
		Arrival:   arrival,
		Departure: departure,
	}, nil
}

// Overlaps reports whether the two occupation windows conflict.
// Touching endpoints (a.Departure == b.Arrival) do not conflict.
func (a Aircraft) Overlaps(b Aircraft) bool {
	return !(a.Departure <= b.Arrival || a.Arrival >= b.Departure)
}

func (a Aircraft) String() string {
	return fmt.Sprintf("%s (%s-%s)", a.Code, FormatClock(a.Arrival), FormatClock(a.Departure))
}
