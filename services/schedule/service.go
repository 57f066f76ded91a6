package schedule

import (
	"context"
	"fmt"
	"time"

	scheduleRepo "viavela/database/repository/schedule"
	"viavela/models"
	"viavela/services/availability"
	"viavela/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultScheduleService implements ScheduleService.
type DefaultScheduleService struct {
	Repo  scheduleRepo.ScheduleRepository
	Cache *redis.Client      // optional; nil skips cache invalidation
	Clock availability.Clock // optional; nil falls back to the system clock
}

func (s *DefaultScheduleService) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now()
	}
	return time.Now()
}

// invalidate bumps the provider's availability cache version after a mutation.
// A failed bump is logged and swallowed: stale grids age out via TTL.
func (s *DefaultScheduleService) invalidate(ctx context.Context, providerID string) {
	if err := availability.BumpVersion(ctx, s.Cache, providerID); err != nil {
		utils.GetLogger().Warn("failed to invalidate availability cache",
			zap.String("providerID", providerID), zap.Error(err))
	}
}

func (s *DefaultScheduleService) GetWeekly(ctx context.Context, providerID string) (models.WeeklySchedule, error) {
	sched, err := s.Repo.GetWeekly(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weekly schedule: %w", err)
	}
	if sched == nil {
		return models.WeeklySchedule{}.Normalized(), nil
	}
	return sched.Weekly.Normalized(), nil
}

func (s *DefaultScheduleService) UpdateWeekly(ctx context.Context, providerID string, weekly models.WeeklySchedule) (models.WeeklySchedule, error) {
	if err := s.Repo.UpsertWeekly(ctx, providerID, weekly.Normalized()); err != nil {
		return nil, fmt.Errorf("failed to persist weekly schedule: %w", err)
	}
	s.invalidate(ctx, providerID)

	// Re-sync from the source of truth rather than trusting local state.
	fresh, err := s.GetWeekly(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("schedule saved but re-fetch failed: %w", err)
	}
	return fresh, nil
}

func (s *DefaultScheduleService) ListBlockedDates(ctx context.Context, providerID string) ([]models.BlockedDate, error) {
	blocked, err := s.Repo.GetBlockedDates(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocked dates: %w", err)
	}
	return blocked, nil
}

func (s *DefaultScheduleService) BlockDate(ctx context.Context, providerID, date, reason string) (models.BlockedDate, error) {
	normalized, err := models.NormalizeDate(date)
	if err != nil {
		return models.BlockedDate{}, err
	}
	entry := models.BlockedDate{
		ProviderID: providerID,
		Date:       normalized,
		Reason:     reason,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.Repo.AddBlockedDate(ctx, entry); err != nil {
		return models.BlockedDate{}, fmt.Errorf("failed to block date %s: %w", normalized, err)
	}
	s.invalidate(ctx, providerID)
	return entry, nil
}

func (s *DefaultScheduleService) UnblockDate(ctx context.Context, providerID, date string) error {
	normalized, err := models.NormalizeDate(date)
	if err != nil {
		return err
	}
	if err := s.Repo.RemoveBlockedDate(ctx, providerID, normalized); err != nil {
		return fmt.Errorf("failed to unblock date %s: %w", normalized, err)
	}
	s.invalidate(ctx, providerID)
	return nil
}

func (s *DefaultScheduleService) PruneExpiredBlockedDates(ctx context.Context, now time.Time) (int64, error) {
	// Past dates are already disabled everywhere, so no cache invalidation is
	// needed; this only keeps the collection from growing without bound.
	cutoff := now.Format("2006-01-02")
	removed, err := s.Repo.PruneBlockedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune expired blocked dates: %w", err)
	}
	return removed, nil
}
