package partition

import (
	"log/slog"

	"github.com/aerogate/gateplan/internal/config"
)

// NewAllocator creates an Allocator based on the configuration.
// If cfg is nil, it defaults to HeapAllocator.
func NewAllocator(cfg *config.PlannerConfig) Allocator {
	if cfg == nil {
		slog.Info("planner config is nil, using default heap allocator")
		return NewHeapAllocator()
	}

	switch cfg.Strategy {
	case config.BatchStrategyLinear:
		slog.Info("using linear batch allocator")
		return NewLinearAllocator()
	case config.BatchStrategyHeap:
		fallthrough
	default:
		slog.Info("using heap batch allocator")
		return NewHeapAllocator()
	}
}
