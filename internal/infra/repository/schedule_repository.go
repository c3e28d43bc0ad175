package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aerogate/gateplan/internal/domain"
)

const (
	aircraftKeyPrefix = "gateplan:aircraft:"

	// Aircraft describe a single planning day; stale entries age out
	// rather than accumulating across restarts.
	aircraftTTL = 48 * time.Hour
)

type aircraftRecord struct {
	ID        string `json:"id"`
	Code      string `json:"code"`
	Arrival   int    `json:"arrival"`
	Departure int    `json:"departure"`
}

type scheduleRepository struct {
	client *redis.Client
}

func NewScheduleRepository(client *redis.Client) domain.ScheduleRepository {
	return &scheduleRepository{
		client: client,
	}
}

func (r *scheduleRepository) SaveAircraft(ctx context.Context, aircraft domain.Aircraft) error {
	if aircraft.ID == "" {
		return ErrInvalidAircraftData
	}

	record := aircraftRecord{
		ID:        aircraft.ID,
		Code:      aircraft.Code,
		Arrival:   aircraft.Arrival,
		Departure: aircraft.Departure,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, aircraftKeyPrefix+aircraft.ID, data, aircraftTTL).Err()
}

func (r *scheduleRepository) DeleteAircraft(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = aircraftKeyPrefix + id
	}

	return r.client.Del(ctx, keys...).Err()
}

func (r *scheduleRepository) ListAircraft(ctx context.Context) ([]domain.Aircraft, error) {
	out := make([]domain.Aircraft, 0)

	iter := r.client.Scan(ctx, 0, aircraftKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		data, err := r.client.Get(ctx, iter.Val()).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, err
		}

		var record aircraftRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return nil, err
		}

		out = append(out, domain.Aircraft{
			ID:        record.ID,
			Code:      record.Code,
			Arrival:   record.Arrival,
			Departure: record.Departure,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
