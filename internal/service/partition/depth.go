package partition

import (
	"sort"

	"github.com/aerogate/gateplan/internal/domain"
)

// OverlapDepth returns the maximum number of aircraft whose intervals
// share a common instant. Any instant with depth D forces D pairwise
// conflicting aircraft onto distinct gates, so this is the lower bound
// on gate count, and the batch allocators are expected to match it.
//
// Sweep line over interval endpoints: arrivals at time t are processed
// after departures at t, matching half-open interval semantics.
func OverlapDepth(aircraft []domain.Aircraft) int {
	if len(aircraft) == 0 {
		return 0
	}

	type event struct {
		time  int
		delta int
	}

	events := make([]event, 0, 2*len(aircraft))
	for _, a := range aircraft {
		events = append(events, event{time: a.Arrival, delta: 1})
		events = append(events, event{time: a.Departure, delta: -1})
	}

	sort.Slice(events, func(i, j int) bool {
		if events[i].time != events[j].time {
			return events[i].time < events[j].time
		}
		// Departures first, so a touching arrival does not count as
		// overlapping the aircraft that just left.
		return events[i].delta < events[j].delta
	})

	depth, maxDepth := 0, 0
	for _, e := range events {
		depth += e.delta
		if depth > maxDepth {
			maxDepth = depth
		}
	}

	return maxDepth
}
