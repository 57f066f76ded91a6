package scheduleRepo

import (
	"context"

	"viavela/models"
)

// ScheduleRepository is the durable store for weekly schedules and blocked
// dates. Reads after a successful write reflect that write once re-fetched.
type ScheduleRepository interface {
	// GetWeekly returns the stored weekly schedule for a provider, or nil when
	// the provider has never saved one. Default-filling is the caller's job.
	GetWeekly(ctx context.Context, providerID string) (*models.ProviderSchedule, error)

	// UpsertWeekly atomically replaces the provider's whole weekly schedule.
	UpsertWeekly(ctx context.Context, providerID string, weekly models.WeeklySchedule) error

	// GetBlockedDates returns all blocked dates for a provider.
	GetBlockedDates(ctx context.Context, providerID string) ([]models.BlockedDate, error)

	// AddBlockedDate upserts a blocked date; at most one entry exists per
	// (provider, date), last write wins.
	AddBlockedDate(ctx context.Context, entry models.BlockedDate) error

	// RemoveBlockedDate deletes the entry for the given date, if any.
	RemoveBlockedDate(ctx context.Context, providerID, date string) error

	// PruneBlockedBefore deletes every blocked date strictly before the cutoff
	// date string, across all providers, returning the number removed.
	PruneBlockedBefore(ctx context.Context, cutoff string) (int64, error)
}
