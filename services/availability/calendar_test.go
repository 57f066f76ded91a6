package availability

import (
	"testing"
	"time"

	"viavela/models"

	"github.com/stretchr/testify/assert"
)

func cellByDate(t *testing.T, grid models.MonthGrid, date string) models.DayCell {
	t.Helper()
	for _, c := range grid.Cells {
		if c.Date == date {
			return c
		}
	}
	t.Fatalf("no cell for %s", date)
	return models.DayCell{}
}

func TestBuildMonthGridShape(t *testing.T) {
	grid := BuildMonthGrid(2025, 6, weeklyMondayOnly(), nil, tuesdayNoon)

	assert.Equal(t, 0, len(grid.Cells)%7, "grid is a whole number of weeks")

	first, err := time.Parse("2006-01-02", grid.Cells[0].Date)
	assert.NoError(t, err)
	assert.Equal(t, time.Sunday, first.Weekday(), "grid starts on a Sunday")

	last, err := time.Parse("2006-01-02", grid.Cells[len(grid.Cells)-1].Date)
	assert.NoError(t, err)
	assert.Equal(t, time.Saturday, last.Weekday(), "grid ends on a Saturday")

	// June 2025 runs Sunday the 1st through Monday the 30th: five full weeks.
	assert.Len(t, grid.Cells, 35)
	assert.Equal(t, "2025-06-01", grid.Cells[0].Date)
	assert.Equal(t, "2025-07-05", grid.Cells[len(grid.Cells)-1].Date)
}

func TestBuildMonthGridLeadingTrailingCells(t *testing.T) {
	// July 2025 starts on a Tuesday, so the grid carries June spill-over
	// cells that are rendered but always disabled.
	grid := BuildMonthGrid(2025, 7, weeklyMondayOnly(), nil, tuesdayNoon)

	spill := cellByDate(t, grid, "2025-06-30")
	assert.False(t, spill.InMonth)
	assert.True(t, spill.Disabled, "out-of-month cell is disabled even on an enabled weekday")

	inMonth := cellByDate(t, grid, "2025-07-07") // a Monday inside July
	assert.True(t, inMonth.InMonth)
	assert.False(t, inMonth.Disabled)
}

func TestBuildMonthGridDisabledReasons(t *testing.T) {
	blocked := map[string]struct{}{"2025-06-23": {}}
	grid := BuildMonthGrid(2025, 6, weeklyMondayOnly(), blocked, tuesdayNoon)

	assert.True(t, cellByDate(t, grid, "2025-06-09").Disabled, "past Monday")
	assert.True(t, cellByDate(t, grid, "2025-06-11").Disabled, "disabled weekday")
	assert.True(t, cellByDate(t, grid, "2025-06-23").Disabled, "blocked Monday")
	assert.False(t, cellByDate(t, grid, "2025-06-16").Disabled, "future enabled Monday")
	assert.False(t, cellByDate(t, grid, "2025-06-30").Disabled, "future enabled Monday")
}

func TestBuildMonthGridTodayIsSelectable(t *testing.T) {
	// Only dates strictly before today are disabled; today itself follows
	// the weekday/blocked rules.
	monday := time.Date(2025, 6, 16, 8, 0, 0, 0, time.UTC)
	grid := BuildMonthGrid(2025, 6, weeklyMondayOnly(), nil, monday)

	assert.False(t, cellByDate(t, grid, "2025-06-16").Disabled)
	assert.True(t, cellByDate(t, grid, "2025-06-15").Disabled)
}
