package handlers

import (
	"net/http"

	"viavela/models"
	"viavela/services/schedule"
	"viavela/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ScheduleHandler serves the provider's weekly schedule and blocked dates.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

func (h *ScheduleHandler) GetScheduleHandler(c *gin.Context) {
	providerID := c.Param("providerID")
	if providerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing provider ID in path"})
		return
	}

	weekly, err := h.Service.GetWeekly(c.Request.Context(), providerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"weekly": weekly})
}

func (h *ScheduleHandler) UpdateScheduleHandler(c *gin.Context) {
	logger := utils.GetLogger()
	providerID := c.Param("providerID")

	var req models.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid schedule update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	weekly, err := h.Service.UpdateWeekly(c.Request.Context(), providerID, req.Weekly)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update schedule", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"weekly": weekly})
}

func (h *ScheduleHandler) ListBlockedDatesHandler(c *gin.Context) {
	providerID := c.Param("providerID")

	blocked, err := h.Service.ListBlockedDates(c.Request.Context(), providerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch blocked dates", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"blockedDates": blocked})
}

func (h *ScheduleHandler) BlockDateHandler(c *gin.Context) {
	providerID := c.Param("providerID")

	var req models.BlockDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	entry, err := h.Service.BlockDate(c.Request.Context(), providerID, req.Date, req.Reason)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to block date", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"blockedDate": entry})
}

func (h *ScheduleHandler) UnblockDateHandler(c *gin.Context) {
	providerID := c.Param("providerID")
	date := c.Param("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date in path"})
		return
	}

	if err := h.Service.UnblockDate(c.Request.Context(), providerID, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to unblock date", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Date unblocked"})
}
