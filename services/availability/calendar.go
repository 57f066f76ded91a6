package availability

import (
	"time"

	"viavela/models"
)

// BuildMonthGrid builds the whole-week calendar grid for a displayed month:
// from the Sunday on/before the 1st through the Saturday on/after the last
// day, so the cell count is always a multiple of seven. A cell is disabled
// when it falls outside the displayed month, its date is blocked, its weekday
// is disabled in the weekly schedule, or it lies strictly before today.
func BuildMonthGrid(year, month int, weekly models.WeeklySchedule, blocked map[string]struct{}, now time.Time) models.MonthGrid {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	gridEnd := last.AddDate(0, 0, 6-int(last.Weekday()))

	today := now.Format("2006-01-02")

	grid := models.MonthGrid{Year: year, Month: month}
	for d := gridStart; !d.After(gridEnd); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		inMonth := d.Month() == first.Month() && d.Year() == year

		disabled := !inMonth || date < today
		if !disabled {
			if _, isBlocked := blocked[date]; isBlocked {
				disabled = true
			} else if day, ok := weekly[models.WeekdayKey(d)]; !ok || !day.Enabled {
				disabled = true
			}
		}

		grid.Cells = append(grid.Cells, models.DayCell{
			Date:     date,
			InMonth:  inMonth,
			Disabled: disabled,
		})
	}
	return grid
}
