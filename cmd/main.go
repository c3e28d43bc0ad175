package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/aerogate/gateplan/internal/config"
	"github.com/aerogate/gateplan/internal/domain"
	"github.com/aerogate/gateplan/internal/handler"
	"github.com/aerogate/gateplan/internal/health"
	"github.com/aerogate/gateplan/internal/infra/planrecorder"
	"github.com/aerogate/gateplan/internal/infra/repository"
	"github.com/aerogate/gateplan/internal/observability"
	"github.com/aerogate/gateplan/internal/observability/logging"
	"github.com/aerogate/gateplan/internal/observability/metrics"
	"github.com/aerogate/gateplan/internal/service/partition"
	"github.com/aerogate/gateplan/internal/service/schedule"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	obs, err := initObservability(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	planningMetrics, err := metrics.NewPlanningMetrics()
	if err != nil {
		slog.Error("failed to initialize planning metrics", slog.String("error", err.Error()))
		return 1
	}

	recorderCfg := planrecorder.LoadConfig()
	recorder, err := planrecorder.NewRecorder(ctx, recorderCfg)
	if err != nil {
		slog.Error("failed to initialize plan recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := recorder.Close(); err != nil {
			slog.Warn("failed to close plan recorder", slog.String("error", err.Error()))
		}
	}()

	var redisClient *redis.Client
	var scheduleRepo domain.ScheduleRepository

	if cfg.Redis.Enabled() {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		if err := redisotel.InstrumentTracing(redisClient); err != nil {
			slog.Error("failed to instrument redis tracing",
				slog.String("event", "redis.otel.tracing.fail"),
				slog.String("error", err.Error()),
			)
			return 1
		}

		if err := redisotel.InstrumentMetrics(redisClient); err != nil {
			slog.Error("failed to instrument redis metrics",
				slog.String("event", "redis.otel.metrics.fail"),
				slog.String("error", err.Error()),
			)
			return 1
		}

		if err := redisClient.Ping(ctx).Err(); err != nil {
			slog.Error("failed to connect redis",
				slog.String("event", "redis.connect.fail"),
				slog.String("error", err.Error()),
			)
			return 1
		}

		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Warn("failed to close redis client", slog.String("error", err.Error()))
			}
		}()

		slog.Info("redis connected",
			slog.String("addr", cfg.Redis.Addr),
		)

		scheduleRepo = repository.NewScheduleRepository(redisClient)
	} else {
		slog.Info("REDIS_ADDR not set, running memory-only")
	}

	allocator := partition.NewAllocator(cfg.Planner)
	scheduleService := schedule.NewService(allocator, scheduleRepo, recorder, planningMetrics)

	if scheduleRepo != nil {
		restored, err := scheduleService.Restore(ctx)
		if err != nil {
			slog.Error("failed to restore persisted schedule", slog.String("error", err.Error()))
			return 1
		}
		if restored > 0 {
			slog.Info("restored persisted schedule", slog.Int("aircraft", restored))
		}
	}

	if cfg.LoadSampleSchedule {
		if err := seedSampleSchedule(ctx, scheduleService); err != nil {
			slog.Error("failed to seed sample schedule", slog.String("error", err.Error()))
			return 1
		}
	}

	scheduleHandler := handler.NewScheduleHandler(scheduleService)

	r := gin.New()
	r.Use(gin.Recovery())

	healthChecker := health.NewChecker(redisClient, scheduleService, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	v1 := r.Group("/api/v1")
	{
		v1.POST("/aircraft", scheduleHandler.HandleAddAircraft)
		v1.DELETE("/aircraft", scheduleHandler.HandleRemoveAircraft)
		v1.POST("/aircraft/:id/assignment", scheduleHandler.HandleAssignIncremental)
		v1.POST("/schedule/recompute", scheduleHandler.HandleRecompute)
		v1.GET("/schedule", scheduleHandler.HandleGetSchedule)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.String("batch_strategy", string(cfg.Planner.Strategy)),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "gate-planning"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: "",
		},
		Environment:  env,
		LogLevel:     cfg.LogLevel,
		SamplingRate: 1.0,
	})
}
