package models

// Slot is a single 30-minute booking offer for a given date. It is derived on
// every request from the weekly schedule, blocked dates and the current time,
// and never persisted.
type Slot struct {
	Value   string `json:"value"`   // canonical 24-hour "HH:MM"
	Label   string `json:"label"`   // display form, e.g. "1:30 PM"
	Enabled bool   `json:"enabled"`
}

// DayCell is one calendar-grid cell for a displayed month.
type DayCell struct {
	Date     string `json:"date"` // "2006-01-02"
	InMonth  bool   `json:"inMonth"`
	Disabled bool   `json:"disabled"`
}

// MonthGrid is a whole-week-aligned grid for one displayed month. The first
// cell is always a Sunday and len(Cells) is a multiple of seven.
type MonthGrid struct {
	Year  int       `json:"year"`
	Month int       `json:"month"` // 1-12
	Cells []DayCell `json:"cells"`
}
