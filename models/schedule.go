package models

import "time"

// WeekdayKeys lists the seven schedule keys in calendar order, as persisted.
var WeekdayKeys = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// DaySchedule holds one weekday's booking window.
type DaySchedule struct {
	Enabled bool    `bson:"enabled" json:"enabled"`
	Start   *string `bson:"start" json:"start"` // "HH:MM" 24-hour, nil when never configured
	End     *string `bson:"end" json:"end"`     // "HH:MM" 24-hour, exclusive bound
}

// WeeklySchedule maps weekday key ("sunday".."saturday") to its window.
type WeeklySchedule map[string]DaySchedule

// ProviderSchedule is the persisted schedule document for one provider.
type ProviderSchedule struct {
	ProviderID string         `bson:"provider_id" json:"provider_id"`
	Weekly     WeeklySchedule `bson:"weekly" json:"weekly"`
	UpdatedAt  time.Time      `bson:"updated_at" json:"updated_at"`
}

// DefaultDaySchedule is the window applied to weekdays absent from storage:
// closed, with a 09:00-17:00 window pre-filled for when the provider enables it.
func DefaultDaySchedule() DaySchedule {
	start, end := "09:00", "17:00"
	return DaySchedule{Enabled: false, Start: &start, End: &end}
}

// Normalized returns a copy with all seven weekday keys present,
// default-filling any missing day. The receiver is not modified.
func (ws WeeklySchedule) Normalized() WeeklySchedule {
	out := make(WeeklySchedule, len(WeekdayKeys))
	for _, key := range WeekdayKeys {
		if day, ok := ws[key]; ok {
			out[key] = day
		} else {
			out[key] = DefaultDaySchedule()
		}
	}
	return out
}

// WeekdayKey returns the schedule key for a calendar date.
func WeekdayKey(t time.Time) string {
	return WeekdayKeys[int(t.Weekday())]
}

// UpdateScheduleRequest is the payload for replacing a provider's weekly schedule.
type UpdateScheduleRequest struct {
	Weekly WeeklySchedule `json:"weekly" binding:"required"`
}
