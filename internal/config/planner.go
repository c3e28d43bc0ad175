package config

import (
	"os"
)

const (
	batchStrategyEnv = "GATE_BATCH_STRATEGY"

	defaultBatchStrategy = "heap"
)

type BatchStrategy string

const (
	BatchStrategyHeap   BatchStrategy = "heap"
	BatchStrategyLinear BatchStrategy = "linear"
)

type PlannerConfig struct {
	Strategy BatchStrategy
}

func LoadPlannerConfig() *PlannerConfig {
	strategy := BatchStrategy(os.Getenv(batchStrategyEnv))
	if strategy == "" {
		strategy = defaultBatchStrategy
	}

	if strategy != BatchStrategyHeap && strategy != BatchStrategyLinear {
		strategy = defaultBatchStrategy
	}

	return &PlannerConfig{
		Strategy: strategy,
	}
}
