package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
)

// ScheduleStats is the slice of the schedule service the readiness
// payload reports on.
type ScheduleStats interface {
	AircraftCount() int
	GateCount() int
}

type CheckResult struct {
	Status    Status `json:"status"`
	LatencyMs int64  `json:"latency_ms,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ScheduleInfo summarizes the current planning state for operators
// reading the ready endpoint.
type ScheduleInfo struct {
	Aircraft int `json:"aircraft"`
	Gates    int `json:"gates"`
}

type HealthStatus struct {
	Status   Status                 `json:"status"`
	Version  string                 `json:"version,omitempty"`
	Schedule *ScheduleInfo          `json:"schedule,omitempty"`
	Checks   map[string]CheckResult `json:"checks,omitempty"`
}

// Checker reports liveness and readiness. The redis client may be nil
// when the service runs memory-only; persistence is then not part of
// readiness.
type Checker struct {
	redisClient *redis.Client
	schedule    ScheduleStats
	version     string
}

func NewChecker(redisClient *redis.Client, schedule ScheduleStats, version string) *Checker {
	return &Checker{
		redisClient: redisClient,
		schedule:    schedule,
		version:     version,
	}
}

// Check pings the configured dependencies and attaches the schedule
// summary. Only dependency failures flip the overall status; an empty
// schedule is a valid ready state.
func (c *Checker) Check(ctx context.Context) *HealthStatus {
	checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	status := &HealthStatus{
		Status:  StatusHealthy,
		Version: c.version,
		Checks:  make(map[string]CheckResult),
	}

	if c.schedule != nil {
		status.Schedule = &ScheduleInfo{
			Aircraft: c.schedule.AircraftCount(),
			Gates:    c.schedule.GateCount(),
		}
	}

	if c.redisClient != nil {
		start := time.Now()
		if err := c.redisClient.Ping(checkCtx).Err(); err != nil {
			status.Status = StatusUnhealthy
			status.Checks["redis"] = CheckResult{
				Status: StatusUnhealthy,
				Error:  err.Error(),
			}
		} else {
			status.Checks["redis"] = CheckResult{
				Status:    StatusHealthy,
				LatencyMs: time.Since(start).Milliseconds(),
			}
		}
	}

	return status
}

func (c *Checker) LiveHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func (c *Checker) ReadyHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := c.Check(ctx.Request.Context())

		httpStatus := http.StatusOK
		if status.Status != StatusHealthy {
			httpStatus = http.StatusServiceUnavailable
		}

		ctx.JSON(httpStatus, status)
	}
}
