package availability

import (
	"testing"
	"time"

	"viavela/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

// weeklyMondayOnly returns a schedule where only Monday is open 09:00-17:00.
func weeklyMondayOnly() models.WeeklySchedule {
	weekly := models.WeeklySchedule{}.Normalized()
	weekly["monday"] = models.DaySchedule{Enabled: true, Start: strPtr("09:00"), End: strPtr("17:00")}
	return weekly
}

// tuesdayNoon is a Tuesday; the following Monday is 2025-06-16.
var tuesdayNoon = time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

func enabledValues(slots []models.Slot) []string {
	var out []string
	for _, s := range slots {
		if s.Enabled {
			out = append(out, s.Value)
		}
	}
	return out
}

func TestGenerateSlotsCandidateList(t *testing.T) {
	slots := GenerateSlots("2025-06-16", weeklyMondayOnly(), nil, tuesdayNoon)

	assert.Len(t, slots, 33, "06:00 through 22:00 inclusive at 30-minute steps")
	assert.Equal(t, "06:00", slots[0].Value)
	assert.Equal(t, "22:00", slots[len(slots)-1].Value)

	seen := map[string]bool{}
	for i, s := range slots {
		assert.False(t, seen[s.Value], "slot values must be unique")
		seen[s.Value] = true
		if i > 0 {
			prev, _ := ParseClockTime(slots[i-1].Value)
			cur, _ := ParseClockTime(s.Value)
			assert.Equal(t, SlotStepMinutes, cur-prev, "slots must be exactly 30 minutes apart")
		}
	}
}

func TestGenerateSlotsEnabledWindow(t *testing.T) {
	slots := GenerateSlots("2025-06-16", weeklyMondayOnly(), nil, tuesdayNoon)

	for _, s := range slots {
		m, err := ParseClockTime(s.Value)
		assert.NoError(t, err)
		wantEnabled := m >= 9*60 && m < 17*60
		assert.Equal(t, wantEnabled, s.Enabled, "slot %s", s.Value)
	}
	// End boundary itself is not bookable.
	assert.NotContains(t, enabledValues(slots), "17:00")
	assert.Contains(t, enabledValues(slots), "16:30")
}

func TestGenerateSlotsDisabledWeekday(t *testing.T) {
	// 2025-06-17 is a Tuesday, which is disabled in the schedule.
	slots := GenerateSlots("2025-06-17", weeklyMondayOnly(), nil, tuesdayNoon)
	assert.Len(t, slots, 33)
	assert.Empty(t, enabledValues(slots))
}

func TestGenerateSlotsBlockedDateWinsOverEnabledWeekday(t *testing.T) {
	blocked := map[string]struct{}{"2025-06-16": {}}
	slots := GenerateSlots("2025-06-16", weeklyMondayOnly(), blocked, tuesdayNoon)
	assert.Empty(t, enabledValues(slots), "blocked date disables every slot without exception")
}

func TestGenerateSlotsPastDate(t *testing.T) {
	// 2025-06-09 is the Monday before "now"; strictly past dates are closed.
	slots := GenerateSlots("2025-06-09", weeklyMondayOnly(), nil, tuesdayNoon)
	assert.Empty(t, enabledValues(slots))
}

func TestGenerateSlotsTodayCutoff(t *testing.T) {
	// "now" is Monday 10:15; slots at or before now are disabled, 10:30
	// onward through 16:30 stay enabled.
	now := time.Date(2025, 6, 16, 10, 15, 0, 0, time.UTC)
	slots := GenerateSlots("2025-06-16", weeklyMondayOnly(), nil, now)

	assert.Equal(t, []string{
		"10:30", "11:00", "11:30", "12:00", "12:30", "13:00", "13:30",
		"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
	}, enabledValues(slots))
}

func TestGenerateSlotsTodayExactBoundary(t *testing.T) {
	// A slot at exactly "now" is disabled; only strictly later slots remain.
	now := time.Date(2025, 6, 16, 10, 30, 0, 0, time.UTC)
	slots := GenerateSlots("2025-06-16", weeklyMondayOnly(), nil, now)

	values := enabledValues(slots)
	assert.NotContains(t, values, "10:30")
	assert.Contains(t, values, "11:00")
}

func TestGenerateSlotsMisconfiguredDays(t *testing.T) {
	cases := []struct {
		name string
		day  models.DaySchedule
	}{
		{"nil start", models.DaySchedule{Enabled: true, Start: nil, End: strPtr("17:00")}},
		{"nil end", models.DaySchedule{Enabled: true, Start: strPtr("09:00"), End: nil}},
		{"equal bounds", models.DaySchedule{Enabled: true, Start: strPtr("09:00"), End: strPtr("09:00")}},
		{"end before start", models.DaySchedule{Enabled: true, Start: strPtr("17:00"), End: strPtr("09:00")}},
		{"malformed start", models.DaySchedule{Enabled: true, Start: strPtr("nine"), End: strPtr("17:00")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			weekly := models.WeeklySchedule{}.Normalized()
			weekly["monday"] = tc.day
			slots := GenerateSlots("2025-06-16", weekly, nil, tuesdayNoon)
			assert.Len(t, slots, 33, "candidate list is still generated")
			assert.Empty(t, enabledValues(slots), "misconfigured day fails safe to closed")
		})
	}
}

func TestGenerateSlotsInvalidDate(t *testing.T) {
	slots := GenerateSlots("not-a-date", weeklyMondayOnly(), nil, tuesdayNoon)
	assert.Len(t, slots, 33)
	assert.Empty(t, enabledValues(slots))
}

func TestFormatLabel(t *testing.T) {
	cases := []struct {
		value string
		want  string
	}{
		{"00:00", "12:00 AM"},
		{"00:30", "12:30 AM"},
		{"06:00", "6:00 AM"},
		{"11:30", "11:30 AM"},
		{"12:00", "12:00 PM"},
		{"13:30", "1:30 PM"},
		{"22:00", "10:00 PM"},
	}
	for _, tc := range cases {
		m, err := ParseClockTime(tc.value)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, FormatLabel(m), "label for %s", tc.value)
	}
}

func TestParseClockTime(t *testing.T) {
	m, err := ParseClockTime("09:30")
	assert.NoError(t, err)
	assert.Equal(t, 570, m)

	for _, bad := range []string{"", "9", "25:00", "09:75", "abc"} {
		_, err := ParseClockTime(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestFormatClockTime(t *testing.T) {
	assert.Equal(t, "06:00", FormatClockTime(360))
	assert.Equal(t, "22:00", FormatClockTime(1320))
	assert.Equal(t, "00:30", FormatClockTime(30))
}
