package schedule

import (
	"context"
	"time"

	"viavela/models"
)

// ScheduleService owns the provider's weekly schedule and blocked-date
// settings. Reads are shared by every booking surface; all mutation goes
// through here so cached availability can be invalidated in one place.
type ScheduleService interface {
	// GetWeekly returns the weekly schedule with all seven weekday keys
	// populated, default-filling days absent from storage.
	GetWeekly(ctx context.Context, providerID string) (models.WeeklySchedule, error)

	// UpdateWeekly atomically replaces the whole weekly schedule, then
	// re-fetches the stored document so callers observe any server-side
	// normalization. On failure the stored schedule is left untouched and the
	// error is returned.
	UpdateWeekly(ctx context.Context, providerID string, weekly models.WeeklySchedule) (models.WeeklySchedule, error)

	// ListBlockedDates returns the provider's blocked dates.
	ListBlockedDates(ctx context.Context, providerID string) ([]models.BlockedDate, error)

	// BlockDate adds a blocked date. The input may carry a time component,
	// which is discarded. Adding an already-blocked date replaces its reason.
	BlockDate(ctx context.Context, providerID, date, reason string) (models.BlockedDate, error)

	// UnblockDate removes the entry for the given date.
	UnblockDate(ctx context.Context, providerID, date string) error

	// PruneExpiredBlockedDates removes blocked dates strictly before today
	// across all providers and reports how many were removed.
	PruneExpiredBlockedDates(ctx context.Context, now time.Time) (int64, error)
}
