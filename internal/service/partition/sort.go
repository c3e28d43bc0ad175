package partition

import (
	"sort"

	"github.com/aerogate/gateplan/internal/domain"
)

// SortByArrival returns a copy of the input sorted ascending by arrival.
// The sort is stable: aircraft with equal arrivals keep their relative
// input order, which pins down which gate a tied aircraft lands in.
func SortByArrival(aircraft []domain.Aircraft) []domain.Aircraft {
	sorted := make([]domain.Aircraft, len(aircraft))
	copy(sorted, aircraft)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Arrival < sorted[j].Arrival
	})

	return sorted
}
