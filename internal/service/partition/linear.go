package partition

import (
	"context"

	"github.com/aerogate/gateplan/internal/domain"
)

var _ Allocator = (*LinearAllocator)(nil)

// LinearAllocator implements Allocator with a linear scan of open gates
// per aircraft, testing only each gate's last member. Correctness is
// identical to HeapAllocator; the scan makes it O(N²) worst case. Kept
// as the simpler substitute for small schedules and as a cross-check in
// tests.
type LinearAllocator struct{}

func NewLinearAllocator() *LinearAllocator {
	return &LinearAllocator{}
}

func (l *LinearAllocator) Name() string {
	return "linear"
}

func (l *LinearAllocator) Allocate(_ context.Context, aircraft []domain.Aircraft) *domain.Assignment {
	assignment := domain.NewAssignment()
	if len(aircraft) == 0 {
		return assignment
	}

	sorted := SortByArrival(aircraft)

	for _, a := range sorted {
		placed := false
		for gi := range assignment.Gates {
			if assignment.Gates[gi].CanAcceptAfter(a) {
				assignment.Gates[gi].Append(a)
				placed = true
				break
			}
		}
		if !placed {
			assignment.OpenGate(a)
		}
	}

	return assignment
}
