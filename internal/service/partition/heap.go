package partition

import (
	"container/heap"
	"context"
	"log/slog"

	"github.com/aerogate/gateplan/internal/domain"
)

var _ Allocator = (*HeapAllocator)(nil)

// HeapAllocator implements Allocator with a min-heap of open gates
// keyed by last departure. Each aircraft either reuses the gate that
// frees up earliest or opens a new one, giving O(N log N) overall.
type HeapAllocator struct{}

func NewHeapAllocator() *HeapAllocator {
	return &HeapAllocator{}
}

func (h *HeapAllocator) Name() string {
	return "heap"
}

func (h *HeapAllocator) Allocate(ctx context.Context, aircraft []domain.Aircraft) *domain.Assignment {
	assignment := domain.NewAssignment()
	if len(aircraft) == 0 {
		return assignment
	}

	sorted := SortByArrival(aircraft)

	gh := &gateHeap{}
	heap.Init(gh)

	for _, a := range sorted {
		if gh.Len() > 0 && gh.minDeparture() <= a.Arrival {
			// The earliest-freeing gate is open by the time this
			// aircraft arrives; reuse it.
			entry := heap.Pop(gh).(gateEntry)
			assignment.Gates[entry.gateIndex].Append(a)
			heap.Push(gh, gateEntry{gateIndex: entry.gateIndex, lastDeparture: a.Departure})
			continue
		}

		idx := assignment.OpenGate(a)
		heap.Push(gh, gateEntry{gateIndex: idx, lastDeparture: a.Departure})

		slog.DebugContext(ctx, "heap allocator: opened gate",
			slog.Int("gate", idx),
			slog.String("aircraft", a.Code),
		)
	}

	return assignment
}

type gateEntry struct {
	gateIndex     int
	lastDeparture int
}

// gateHeap is a min-heap of open gates ordered by last departure.
type gateHeap struct {
	entries []gateEntry
}

func (gh *gateHeap) Len() int {
	return len(gh.entries)
}

func (gh *gateHeap) Less(i, j int) bool {
	return gh.entries[i].lastDeparture < gh.entries[j].lastDeparture
}

func (gh *gateHeap) Swap(i, j int) {
	gh.entries[i], gh.entries[j] = gh.entries[j], gh.entries[i]
}

func (gh *gateHeap) Push(x any) {
	gh.entries = append(gh.entries, x.(gateEntry))
}

func (gh *gateHeap) Pop() any {
	old := gh.entries
	n := len(old)
	entry := old[n-1]
	gh.entries = old[:n-1]
	return entry
}

func (gh *gateHeap) minDeparture() int {
	return gh.entries[0].lastDeparture
}
