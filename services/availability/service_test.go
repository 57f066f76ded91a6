package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"viavela/models"

	"github.com/stretchr/testify/assert"
)

// fakeScheduleRepo serves canned schedule state.
type fakeScheduleRepo struct {
	sched   *models.ProviderSchedule
	blocked []models.BlockedDate
	err     error
}

func (f *fakeScheduleRepo) GetWeekly(ctx context.Context, providerID string) (*models.ProviderSchedule, error) {
	return f.sched, f.err
}

func (f *fakeScheduleRepo) UpsertWeekly(ctx context.Context, providerID string, weekly models.WeeklySchedule) error {
	return nil
}

func (f *fakeScheduleRepo) GetBlockedDates(ctx context.Context, providerID string) ([]models.BlockedDate, error) {
	return f.blocked, f.err
}

func (f *fakeScheduleRepo) AddBlockedDate(ctx context.Context, entry models.BlockedDate) error {
	return nil
}

func (f *fakeScheduleRepo) RemoveBlockedDate(ctx context.Context, providerID, date string) error {
	return nil
}

func (f *fakeScheduleRepo) PruneBlockedBefore(ctx context.Context, cutoff string) (int64, error) {
	return 0, nil
}

func TestDaySlotsFromStoredSchedule(t *testing.T) {
	repo := &fakeScheduleRepo{
		sched: &models.ProviderSchedule{
			ProviderID: "prov-1",
			Weekly: models.WeeklySchedule{
				"monday": {Enabled: true, Start: strPtr("09:00"), End: strPtr("17:00")},
			},
		},
	}
	svc := &DefaultAvailabilityService{Repo: repo, Clock: FixedClock{Instant: tuesdayNoon}}

	slots, err := svc.DaySlots(context.Background(), "prov-1", "2025-06-16")
	assert.NoError(t, err)
	assert.Len(t, slots, 33)
	assert.Equal(t, "09:00", enabledValues(slots)[0])
	assert.Equal(t, "16:30", enabledValues(slots)[len(enabledValues(slots))-1])
}

func TestDaySlotsUnsavedProviderIsClosed(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: &fakeScheduleRepo{}, Clock: FixedClock{Instant: tuesdayNoon}}

	slots, err := svc.DaySlots(context.Background(), "prov-1", "2025-06-16")
	assert.NoError(t, err)
	assert.Len(t, slots, 33, "candidate list still rendered for a provider with no schedule")
	assert.Empty(t, enabledValues(slots))
}

func TestDaySlotsBlockedDateFromStore(t *testing.T) {
	repo := &fakeScheduleRepo{
		sched: &models.ProviderSchedule{
			Weekly: models.WeeklySchedule{
				"monday": {Enabled: true, Start: strPtr("09:00"), End: strPtr("17:00")},
			},
		},
		blocked: []models.BlockedDate{{ProviderID: "prov-1", Date: "2025-06-16"}},
	}
	svc := &DefaultAvailabilityService{Repo: repo, Clock: FixedClock{Instant: tuesdayNoon}}

	slots, err := svc.DaySlots(context.Background(), "prov-1", "2025-06-16")
	assert.NoError(t, err)
	assert.Empty(t, enabledValues(slots))
}

func TestDaySlotsAcceptsTimestampInput(t *testing.T) {
	repo := &fakeScheduleRepo{
		sched: &models.ProviderSchedule{
			Weekly: models.WeeklySchedule{
				"monday": {Enabled: true, Start: strPtr("09:00"), End: strPtr("17:00")},
			},
		},
	}
	svc := &DefaultAvailabilityService{Repo: repo, Clock: FixedClock{Instant: tuesdayNoon}}

	slots, err := svc.DaySlots(context.Background(), "prov-1", "2025-06-16T08:30:00Z")
	assert.NoError(t, err)
	assert.NotEmpty(t, enabledValues(slots))
}

func TestDaySlotsRejectsGarbageDate(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: &fakeScheduleRepo{}, Clock: FixedClock{Instant: tuesdayNoon}}

	_, err := svc.DaySlots(context.Background(), "prov-1", "whenever")
	assert.Error(t, err)
}

func TestDaySlotsRepoFailure(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Repo:  &fakeScheduleRepo{err: errors.New("mongo down")},
		Clock: FixedClock{Instant: tuesdayNoon},
	}

	_, err := svc.DaySlots(context.Background(), "prov-1", "2025-06-16")
	assert.Error(t, err)
}

func TestMonthGridFromService(t *testing.T) {
	repo := &fakeScheduleRepo{
		sched: &models.ProviderSchedule{
			Weekly: models.WeeklySchedule{
				"monday": {Enabled: true, Start: strPtr("09:00"), End: strPtr("17:00")},
			},
		},
	}
	svc := &DefaultAvailabilityService{Repo: repo, Clock: FixedClock{Instant: tuesdayNoon}}

	grid, err := svc.MonthGrid(context.Background(), "prov-1", 2025, 6)
	assert.NoError(t, err)
	assert.Equal(t, 2025, grid.Year)
	assert.Equal(t, 6, grid.Month)
	assert.Equal(t, 0, len(grid.Cells)%7)
}

func TestMonthGridInvalidMonth(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: &fakeScheduleRepo{}, Clock: FixedClock{Instant: tuesdayNoon}}

	for _, month := range []int{0, 13, -1} {
		_, err := svc.MonthGrid(context.Background(), "prov-1", 2025, month)
		assert.Error(t, err, "month %d", month)
	}
}

func TestServiceDefaultsToSystemClock(t *testing.T) {
	svc := &DefaultAvailabilityService{Repo: &fakeScheduleRepo{}}
	assert.WithinDuration(t, time.Now(), svc.now(), time.Second)
}
