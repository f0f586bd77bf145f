// File: glospa/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glospa/config"
	"glospa/cron"
	"glospa/database"
	appointmentRepo "glospa/database/repository/appointment"
	catalogRepo "glospa/database/repository/catalog"
	clientRepo "glospa/database/repository/client"
	knowledgeRepo "glospa/database/repository/knowledge"
	respondlogRepo "glospa/database/repository/respondlog"
	scheduleRepo "glospa/database/repository/schedule"
	staffRepo "glospa/database/repository/staff"
	"glospa/handlers"
	"glospa/middleware"
	"glospa/routes"
	"glospa/services/availability"
	"glospa/services/booking"
	"glospa/services/messenger"
	"glospa/services/sms"
	"glospa/services/tasks"
	"glospa/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catalog := catalogRepo.NewCachedCatalogRepo(catalogRepo.NewMongoCatalogRepo(), utils.GetCacheClient(), 5*time.Minute)
	staff := staffRepo.NewMongoStaffRepo()
	schedules := scheduleRepo.NewMongoScheduleRepo()
	appointments := appointmentRepo.NewMongoAppointmentRepo()
	clients := clientRepo.NewMongoClientRepo()
	knowledge := knowledgeRepo.NewMongoKnowledgeRepo()
	respondLog := respondlogRepo.NewMongoRespondLogRepo()

	// services.
	availabilityEngine := &availability.DefaultEngine{
		Staff:        staff,
		Schedules:    schedules,
		Appointments: appointments,
	}

	reminderScheduler := tasks.NewAsynqReminderScheduler()
	bookingService := &booking.DefaultService{
		Appointments: appointments,
		Clients:      clients,
		Reminders:    reminderScheduler,
	}

	msgr := messenger.LogMessenger{}
	stateStore := sms.NewRedisStateStore(
		utils.GetStateCacheClient(),
		time.Duration(config.AppConfig.ConversationTTLMinutes)*time.Minute,
	)
	formatter := &sms.Formatter{
		BusinessName:  config.AppConfig.BusinessName,
		BusinessPhone: config.AppConfig.BusinessPhone,
	}
	smsEngine := sms.NewDefaultEngine(
		stateStore, catalog, knowledge, clients,
		availabilityEngine, bookingService, msgr, respondLog, formatter,
	)

	smsHandler := handlers.NewSMSHandler(smsEngine, logger)
	adminHandler := handlers.NewAdminHandler(smsEngine, respondLog, staff, appointments, clients, logger)
	catalogHandler := handlers.NewCatalogHandler(catalog, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		WebhookHandler:           smsHandler.Webhook,
		GetConfigHandler:         adminHandler.GetConfig,
		UpdateConfigHandler:      adminHandler.UpdateConfig,
		StatsHandler:             adminHandler.Stats,
		RecentLogHandler:         adminHandler.RecentLog,
		ListStaffHandler:         adminHandler.ListStaff,
		GetAppointmentHandler:    adminHandler.GetAppointment,
		CancelAppointmentHandler: adminHandler.CancelAppointment,
		GetClientHandler:         adminHandler.GetClient,
		ListServicesHandler:      catalogHandler.ListServices,
		GetServiceByIDHandler:    catalogHandler.GetServiceByID,
		SearchServiceHandler:     catalogHandler.SearchService,
		HealthHandler:            handlers.Health,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and monitors.
	cron.InitReminderWorker(msgr)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetStateCacheClient()},
		database.MongoClient,
	)

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
