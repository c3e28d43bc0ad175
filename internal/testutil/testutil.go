package testutil

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	redismodule "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/aerogate/gateplan/internal/domain"
)

// RedisImage pins the image every repository integration test runs
// against to the major version the service deploys with.
const RedisImage = "redis:8-alpine"

// SetupRedisContainer starts a throwaway Redis and returns a connected
// client plus a cleanup func. Tests skip instead of failing when no
// container runtime is available.
func SetupRedisContainer(ctx context.Context, t *testing.T) (*redis.Client, func()) {
	t.Helper()

	defer func() {
		if r := recover(); r != nil {
			t.Skipf("failed to start redis container: %v", r)
		}
	}()

	container, err := redismodule.Run(ctx, RedisImage)
	if err != nil {
		t.Skipf("failed to start redis container: %v", err)
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Skipf("failed to get redis endpoint: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: endpoint,
	})

	cleanup := func() {
		if err := client.Close(); err != nil {
			t.Logf("failed to close redis client: %v", err)
		}

		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	}

	return client, cleanup
}

// FlushRedis clears the current database so tests sharing a container
// never see each other's aircraft keys.
func FlushRedis(ctx context.Context, t *testing.T, client *redis.Client) {
	t.Helper()

	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("failed to flush redis: %v", err)
	}
}

// Aircraft builds a valid aircraft from "HH:MM" clock strings, failing
// the test on malformed input.
func Aircraft(t *testing.T, code, arrivalClock, departureClock string) domain.Aircraft {
	t.Helper()

	arrival, err := domain.ParseClock(arrivalClock)
	if err != nil {
		t.Fatalf("failed to parse arrival %q: %v", arrivalClock, err)
	}
	departure, err := domain.ParseClock(departureClock)
	if err != nil {
		t.Fatalf("failed to parse departure %q: %v", departureClock, err)
	}

	a, err := domain.NewAircraft(code, arrival, departure)
	if err != nil {
		t.Fatalf("failed to create aircraft %s: %v", code, err)
	}
	return a
}
