package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	scheduleRepo "viavela/database/repository/schedule"
	"viavela/models"
	"viavela/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AvailabilityService computes bookable slots and calendar grids from a
// provider's weekly schedule and blocked dates. It holds no persistent state
// of its own; every result is a pure function of store state plus the clock.
type AvailabilityService interface {
	DaySlots(ctx context.Context, providerID, date string) ([]models.Slot, error)
	MonthGrid(ctx context.Context, providerID string, year, month int) (models.MonthGrid, error)
}

// DefaultAvailabilityService implements AvailabilityService.
type DefaultAvailabilityService struct {
	Repo  scheduleRepo.ScheduleRepository
	Cache *redis.Client // optional; nil disables caching
	Clock Clock         // optional; nil falls back to the system clock
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now()
	}
	return time.Now()
}

// loadState fetches the provider's normalized weekly schedule and blocked set.
func (s *DefaultAvailabilityService) loadState(ctx context.Context, providerID string) (models.WeeklySchedule, map[string]struct{}, error) {
	sched, err := s.Repo.GetWeekly(ctx, providerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch weekly schedule: %w", err)
	}
	var weekly models.WeeklySchedule
	if sched == nil {
		weekly = models.WeeklySchedule{}.Normalized()
	} else {
		weekly = sched.Weekly.Normalized()
	}

	blocked, err := s.Repo.GetBlockedDates(ctx, providerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch blocked dates: %w", err)
	}
	return weekly, BlockedSet(blocked), nil
}

// DaySlots returns the full candidate slot list for one date. Never cached:
// the enabled boundary for "today" moves with the clock, so each read
// recomputes against a fresh instant.
func (s *DefaultAvailabilityService) DaySlots(ctx context.Context, providerID, date string) ([]models.Slot, error) {
	normalized, err := models.NormalizeDate(date)
	if err != nil {
		return nil, err
	}
	weekly, blocked, err := s.loadState(ctx, providerID)
	if err != nil {
		return nil, err
	}
	return GenerateSlots(normalized, weekly, blocked, s.now()), nil
}

// MonthGrid returns the calendar grid for a displayed month, served from the
// versioned cache when possible.
func (s *DefaultAvailabilityService) MonthGrid(ctx context.Context, providerID string, year, month int) (models.MonthGrid, error) {
	if month < 1 || month > 12 {
		return models.MonthGrid{}, fmt.Errorf("invalid month %d", month)
	}

	var key string
	if s.Cache != nil {
		key = gridKey(providerID, currentVersion(ctx, s.Cache, providerID), year, month)
		if data, err := s.Cache.Get(ctx, key).Bytes(); err == nil {
			var grid models.MonthGrid
			if err := json.Unmarshal(data, &grid); err == nil {
				return grid, nil
			}
		}
	}

	weekly, blocked, err := s.loadState(ctx, providerID)
	if err != nil {
		return models.MonthGrid{}, err
	}
	grid := BuildMonthGrid(year, month, weekly, blocked, s.now())

	if s.Cache != nil {
		if data, err := json.Marshal(grid); err == nil {
			if err := s.Cache.Set(ctx, key, data, utils.AvailabilityCacheTTL).Err(); err != nil {
				utils.GetLogger().Debug("failed to cache month grid", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return grid, nil
}
