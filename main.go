package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mindwell/config"
	"mindwell/cron"
	"mindwell/database"
	availabilityRepo "mindwell/database/repository/availability"
	scheduleRepo "mindwell/database/repository/schedule"
	therapistRepo "mindwell/database/repository/therapist"
	"mindwell/handlers"
	"mindwell/middleware"
	"mindwell/routes"
	"mindwell/services/availability"
	scheduleSvc "mindwell/services/schedule"
	"mindwell/services/tasks"
	"mindwell/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	thRepo := therapistRepo.NewMongoTherapistRepo()
	schRepo := scheduleRepo.NewMongoScheduleRepo()
	slotRepo := availabilityRepo.NewMongoAvailabilityRepo()

	for _, ensure := range []func() error{
		thRepo.EnsureIndexes,
		schRepo.EnsureIndexes,
		slotRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
		}
	}

	// services.
	availabilitySvc := &availability.DefaultAvailabilityService{
		Schedules: schRepo,
		Slots:     slotRepo,
		BatchSize: config.AppConfig.RegenBatchSize,
		Timeout:   time.Duration(config.AppConfig.RegenTimeoutSeconds) * time.Second,
	}

	enqueuer := tasks.NewAsynqEnqueuer()
	defer enqueuer.Client.Close()

	scheduleService := &scheduleSvc.DefaultScheduleService{
		Therapists: thRepo,
		Schedules:  schRepo,
		Enqueuer:   enqueuer,
	}

	therapistHandler := handlers.NewTherapistHandler(thRepo)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilitySvc, slotRepo)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		RegisterTherapistHandler: therapistHandler.RegisterTherapistHandler,
		GetTherapistByIDHandler:  therapistHandler.GetTherapistByIDHandler,

		UpsertScheduleHandler: scheduleHandler.UpsertScheduleHandler,
		GetScheduleHandler:    scheduleHandler.GetScheduleHandler,
		ReplaceDaysHandler:    scheduleHandler.ReplaceDaysHandler,

		RegenerateHandler:    availabilityHandler.RegenerateHandler,
		RegenerateAllHandler: availabilityHandler.RegenerateAllHandler,
		GetSlotsHandler:      availabilityHandler.GetSlotsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the background worker consuming regeneration tasks and the
	// nightly bulk schedule.
	cron.InitRegenerationWorker(availabilitySvc)

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
