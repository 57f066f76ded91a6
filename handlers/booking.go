package handlers

import (
	"net/http"

	"viavela/models"
	"viavela/services/booking"
	"viavela/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler accepts booking submissions and lists orders.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	providerID := c.Param("providerID")

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	order, err := h.Service.SubmitBooking(c.Request.Context(), providerID, req)
	if err != nil {
		if booking.IsValidationError(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Booking rejected", "message": err.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

func (h *BookingHandler) ListOrdersHandler(c *gin.Context) {
	providerID := c.Param("providerID")

	orders, err := h.Service.ListOrders(c.Request.Context(), providerID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch orders", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}
