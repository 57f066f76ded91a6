// File: viavela/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"viavela/config"
	"viavela/cron"
	"viavela/database"
	orderRepoPkg "viavela/database/repository/order"
	scheduleRepoPkg "viavela/database/repository/schedule"
	"viavela/handlers"
	"viavela/middleware"
	"viavela/routes"
	"viavela/services/availability"
	"viavela/services/booking"
	"viavela/services/schedule"
	"viavela/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	schedRepo := scheduleRepoPkg.NewMongoScheduleRepo()
	ordRepo := orderRepoPkg.NewMongoOrderRepo()

	// services.
	clock := availability.SystemClock{}
	availabilityService := &availability.DefaultAvailabilityService{
		Repo:  schedRepo,
		Cache: utils.GetCacheClient(),
		Clock: clock,
	}
	scheduleService := &schedule.DefaultScheduleService{
		Repo:  schedRepo,
		Cache: utils.GetCacheClient(),
		Clock: clock,
	}
	bookingService := &booking.DefaultBookingService{
		Availability: availabilityService,
		Orders:       ordRepo,
		Clock:        clock,
	}

	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, clock)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		GetScheduleHandler:      scheduleHandler.GetScheduleHandler,
		UpdateScheduleHandler:   scheduleHandler.UpdateScheduleHandler,
		ListBlockedDatesHandler: scheduleHandler.ListBlockedDatesHandler,
		BlockDateHandler:        scheduleHandler.BlockDateHandler,
		UnblockDateHandler:      scheduleHandler.UnblockDateHandler,

		GetCalendarHandler: availabilityHandler.GetCalendarHandler,
		GetDaySlotsHandler: availabilityHandler.GetDaySlotsHandler,

		CreateBookingHandler: bookingHandler.CreateBookingHandler,
		ListOrdersHandler:    bookingHandler.ListOrdersHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background maintenance and health monitoring.
	cron.InitMaintenanceWorker(scheduleService)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
