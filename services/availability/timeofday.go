package availability

import (
	"fmt"
	"time"
)

const (
	// SlotWindowStart and SlotWindowEnd bound the candidate slot list for any
	// day, in minutes from midnight. Both ends are included as candidates;
	// whether a candidate is bookable is a per-slot overlay on top of this
	// fixed display range.
	SlotWindowStart = 6 * 60  // 06:00
	SlotWindowEnd   = 22 * 60 // 22:00

	// SlotStepMinutes is the spacing between consecutive candidate slots.
	SlotStepMinutes = 30
)

// ParseClockTime converts a 24-hour "HH:MM" string to minutes from midnight.
func ParseClockTime(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%2d:%2d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return h*60 + m, nil
}

// FormatClockTime renders minutes from midnight as canonical 24-hour "HH:MM".
func FormatClockTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatLabel renders minutes from midnight in 12-hour display form,
// e.g. 0 -> "12:00 AM", 720 -> "12:00 PM", 810 -> "1:30 PM".
func FormatLabel(minutes int) string {
	h, m := minutes/60, minutes%60
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, suffix)
}

func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
