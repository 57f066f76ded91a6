package routes

import (
	"time"

	"viavela/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)

	api := r.Group("/api/providers/:providerID")
	{
		// Schedule settings.
		api.GET("/schedule", hb.GetScheduleHandler)
		api.PUT("/schedule", hb.UpdateScheduleHandler)
		api.GET("/blocked-dates", hb.ListBlockedDatesHandler)
		api.POST("/blocked-dates", hb.BlockDateHandler)
		api.DELETE("/blocked-dates/:date", hb.UnblockDateHandler)

		// Availability (read-only, shared by every booking surface).
		api.GET("/availability/calendar", hb.GetCalendarHandler)
		api.GET("/availability/slots", hb.GetDaySlotsHandler)

		// Booking submission.
		api.POST("/bookings", hb.CreateBookingHandler)
		api.GET("/bookings", hb.ListOrdersHandler)
	}
}
