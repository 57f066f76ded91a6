package availability

import (
	"time"

	"viavela/models"
)

// GenerateSlots produces the full candidate slot list for one calendar date.
// The list always covers the fixed display window regardless of whether the
// day is open, so callers consistently render "closed" rather than "no such
// day"; openness is reflected per slot through the Enabled flag.
//
// A slot is enabled iff the weekday is enabled in the schedule, the date is
// not in the blocked set, the date is not before today, the slot falls inside
// the day's [start, end) window, and, when the date is today, the slot starts
// strictly after the current minute. Misconfigured days (missing bounds,
// start >= end) yield zero enabled slots rather than an error.
func GenerateSlots(date string, weekly models.WeeklySchedule, blocked map[string]struct{}, now time.Time) []models.Slot {
	slots := make([]models.Slot, 0, (SlotWindowEnd-SlotWindowStart)/SlotStepMinutes+1)

	today := now.Format("2006-01-02")
	nowMinute := minutesOfDay(now)

	dayStart, dayEnd, open := dayWindow(date, weekly)
	if _, isBlocked := blocked[date]; isBlocked || date < today {
		open = false
	}

	for m := SlotWindowStart; m <= SlotWindowEnd; m += SlotStepMinutes {
		enabled := open && dayStart <= m && m < dayEnd
		if enabled && date == today && m <= nowMinute {
			enabled = false
		}
		slots = append(slots, models.Slot{
			Value:   FormatClockTime(m),
			Label:   FormatLabel(m),
			Enabled: enabled,
		})
	}
	return slots
}

// dayWindow resolves the configured [start, end) window for the date's
// weekday. open is false when the date does not parse, the weekday is
// disabled, or either bound is missing or malformed.
func dayWindow(date string, weekly models.WeeklySchedule) (start, end int, open bool) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return 0, 0, false
	}
	day, ok := weekly[models.WeekdayKey(d)]
	if !ok || !day.Enabled || day.Start == nil || day.End == nil {
		return 0, 0, false
	}
	start, err = ParseClockTime(*day.Start)
	if err != nil {
		return 0, 0, false
	}
	end, err = ParseClockTime(*day.End)
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}

// BlockedSet converts a blocked-date list to a date-keyed lookup set.
func BlockedSet(entries []models.BlockedDate) map[string]struct{} {
	set := make(map[string]struct{}, len(entries))
	for _, b := range entries {
		set[b.Date] = struct{}{}
	}
	return set
}
