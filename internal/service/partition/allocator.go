package partition

import (
	"context"

	"github.com/aerogate/gateplan/internal/domain"
)

// Allocator computes a complete partition of an aircraft set into the
// minimum number of gates such that no gate holds overlapping aircraft.
// Implementations should be easily replaceable to test different strategies.
type Allocator interface {
	// Allocate returns a fresh assignment covering every input aircraft.
	// The input slice is not modified; an empty input yields zero gates.
	Allocate(ctx context.Context, aircraft []domain.Aircraft) *domain.Assignment

	// Name identifies the strategy for logging and recording.
	Name() string
}
