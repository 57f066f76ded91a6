package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates all route handlers for registration.
type HandlerBundle struct {
	// Schedule settings endpoints.
	GetScheduleHandler      gin.HandlerFunc
	UpdateScheduleHandler   gin.HandlerFunc
	ListBlockedDatesHandler gin.HandlerFunc
	BlockDateHandler        gin.HandlerFunc
	UnblockDateHandler      gin.HandlerFunc

	// Availability endpoints.
	GetCalendarHandler gin.HandlerFunc
	GetDaySlotsHandler gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler gin.HandlerFunc
	ListOrdersHandler    gin.HandlerFunc
}
