package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aerogate/gateplan/internal/domain"
	"github.com/aerogate/gateplan/internal/service/schedule"
)

type ScheduleHandler struct {
	scheduleService *schedule.Service
}

func NewScheduleHandler(scheduleService *schedule.Service) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService: scheduleService,
	}
}

// AddAircraftRequest accepts times either as integer minutes from
// midnight or as "HH:MM" clock strings; clock strings win when both
// are present.
type AddAircraftRequest struct {
	Code           string `json:"code" binding:"required"`
	Arrival        *int   `json:"arrival"`
	Departure      *int   `json:"departure"`
	ArrivalClock   string `json:"arrival_clock"`
	DepartureClock string `json:"departure_clock"`
}

type RemoveAircraftRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

func (h *ScheduleHandler) HandleAddAircraft(c *gin.Context) {
	ctx := c.Request.Context()

	var req AddAircraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	arrival, departure, err := resolveTimes(&req)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	aircraft, err := h.scheduleService.AddAircraft(ctx, req.Code, arrival, departure)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInterval) {
			respondError(c, http.StatusBadRequest, "invalid_interval", err.Error())
			return
		}
		slog.ErrorContext(ctx, "failed to add aircraft",
			slog.String("code", req.Code),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", "failed to add aircraft")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"aircraft": aircraft,
	})
}

func (h *ScheduleHandler) HandleAssignIncremental(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	gateIndex, err := h.scheduleService.AssignIncremental(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownAircraft) {
			respondError(c, http.StatusNotFound, "unknown_aircraft", err.Error())
			return
		}
		slog.ErrorContext(ctx, "failed to assign aircraft",
			slog.String("aircraft_id", id),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", "failed to assign aircraft")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"aircraft_id": id,
		"gate":        gateIndex,
	})
}

func (h *ScheduleHandler) HandleRemoveAircraft(c *gin.Context) {
	ctx := c.Request.Context()

	var req RemoveAircraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	removed, err := h.scheduleService.RemoveAircraft(ctx, req.IDs...)
	if err != nil {
		slog.ErrorContext(ctx, "failed to remove aircraft",
			slog.Int("requested", len(req.IDs)),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "processing_error", "failed to remove aircraft")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"removed":  removed,
		"schedule": h.scheduleService.Snapshot(ctx),
	})
}

func (h *ScheduleHandler) HandleRecompute(c *gin.Context) {
	ctx := c.Request.Context()

	gateCount, view := h.scheduleService.Recompute(ctx)

	c.JSON(http.StatusOK, gin.H{
		"gate_count": gateCount,
		"schedule":   view,
	})
}

func (h *ScheduleHandler) HandleGetSchedule(c *gin.Context) {
	c.JSON(http.StatusOK, h.scheduleService.Snapshot(c.Request.Context()))
}

func resolveTimes(req *AddAircraftRequest) (arrival, departure int, err error) {
	switch {
	case req.ArrivalClock != "":
		arrival, err = domain.ParseClock(req.ArrivalClock)
		if err != nil {
			return 0, 0, err
		}
	case req.Arrival != nil:
		arrival = *req.Arrival
	default:
		return 0, 0, errors.New("arrival or arrival_clock is required")
	}

	switch {
	case req.DepartureClock != "":
		departure, err = domain.ParseClock(req.DepartureClock)
		if err != nil {
			return 0, 0, err
		}
	case req.Departure != nil:
		departure = *req.Departure
	default:
		return 0, 0, errors.New("departure or departure_clock is required")
	}

	return arrival, departure, nil
}

func respondError(c *gin.Context, status int, errType, message string) {
	c.JSON(status, gin.H{
		"error":   errType,
		"message": message,
	})
}
