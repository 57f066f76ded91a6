package handlers

import (
	"net/http"
	"strconv"
	"time"

	"viavela/services/availability"
	"viavela/utils"

	"github.com/gin-gonic/gin"
)

// AvailabilityHandler serves computed calendar grids and day slot lists.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
	Clock   availability.Clock
}

func NewAvailabilityHandler(svc availability.AvailabilityService, clock availability.Clock) *AvailabilityHandler {
	if clock == nil {
		clock = availability.SystemClock{}
	}
	return &AvailabilityHandler{Service: svc, Clock: clock}
}

// GetCalendarHandler returns the month grid. Without year/month query
// parameters it defaults to the current month.
func (h *AvailabilityHandler) GetCalendarHandler(c *gin.Context) {
	providerID := c.Param("providerID")

	now := h.Clock.Now()
	year, month := now.Year(), int(now.Month())

	if y := c.Query("year"); y != "" {
		parsed, err := strconv.Atoi(y)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year parameter"})
			return
		}
		year = parsed
	}
	if m := c.Query("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 1 || parsed > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month parameter"})
			return
		}
		month = parsed
	}

	grid, err := h.Service.MonthGrid(c.Request.Context(), providerID, year, month)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to build calendar", err.Error())
		return
	}
	c.JSON(http.StatusOK, grid)
}

// GetDaySlotsHandler returns the full slot list for one date, enabled flags
// included, so the caller renders closed days consistently.
func (h *AvailabilityHandler) GetDaySlotsHandler(c *gin.Context) {
	providerID := c.Param("providerID")

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date query parameter"})
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
		return
	}

	slots, err := h.Service.DaySlots(c.Request.Context(), providerID, date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute slots", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": slots})
}
