package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// MinutesPerDay is the display horizon of a single planning day.
// Arrival times are not capped to it; it only bounds rendered timelines.
const MinutesPerDay = 24 * 60

// ParseClock converts an "HH:MM" string into minutes from midnight.
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, ErrInvalidClock
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, ErrInvalidClock
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, ErrInvalidClock
	}

	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, ErrInvalidClock
	}

	return hours*60 + minutes, nil
}

// FormatClock converts minutes from midnight into "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
