package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cesarforall/TechManager/internal/data/db"
	"github.com/cesarforall/TechManager/internal/data/repos"
	"github.com/cesarforall/TechManager/internal/events"
	"github.com/cesarforall/TechManager/internal/handlers"
	"github.com/cesarforall/TechManager/internal/middleware"
	"github.com/cesarforall/TechManager/internal/platform/envutil"
	"github.com/cesarforall/TechManager/internal/platform/logger"
	"github.com/cesarforall/TechManager/internal/server"
	"github.com/cesarforall/TechManager/internal/services"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Database
	dbService, err := db.New(log)
	if err != nil {
		log.Error("Database init failed", "error", err)
		os.Exit(1)
	}
	if err = dbService.AutoMigrateAll(); err != nil {
		log.Error("Auto migration failed", "error", err)
		os.Exit(1)
	}
	theDB := dbService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	deviceRepo := repos.NewDeviceRepo(theDB, log)
	technicianRepo := repos.NewTechnicianRepo(theDB, log)
	knowledgeRepo := repos.NewKnowledgeRepo(theDB, log)
	updateRepo := repos.NewUpdateRepo(theDB, log)
	verificationRepo := repos.NewVerificationRepo(theDB, log)

	// Event bus
	log.Info("Setting up event bus now...")
	bus := events.NewBus(log)

	// Services
	log.Info("Setting up Services from main...")
	deviceService := services.NewDeviceService(log, deviceRepo, bus)
	technicianService := services.NewTechnicianService(log, technicianRepo)
	knowledgeService := services.NewKnowledgeService(log, knowledgeRepo, deviceRepo, technicianRepo)
	updateService := services.NewUpdateService(log, updateRepo, deviceService, bus)
	verificationService := services.NewVerificationService(log, verificationRepo, updateRepo, knowledgeRepo, bus)

	// A freshly registered update fans out one pending verification per
	// technician who knows the device. The update service only announces
	// the id; the wiring lives here so the two services stay decoupled.
	bus.Subscribe(events.EventUpdateCreated, func(updateID int) {
		if _, err := verificationService.FanOutForUpdate(context.Background(), updateID); err != nil {
			log.Error("Verification fan-out failed", "error", err, "updateID", updateID)
		}
	})

	// Handlers
	log.Info("Setting up handlers from main...")
	deviceHandler := handlers.NewDeviceHandler(deviceService)
	technicianHandler := handlers.NewTechnicianHandler(technicianService, knowledgeService)
	knowledgeHandler := handlers.NewKnowledgeHandler(knowledgeService)
	updateHandler := handlers.NewUpdateHandler(updateService)
	verificationHandler := handlers.NewVerificationHandler(verificationService)

	// Middleware
	log.Info("Setting up middleware from main...")
	requestLogMiddleware := middleware.NewRequestLogMiddleware(log)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		RequestLogMiddleware: requestLogMiddleware,
		DeviceHandler:        deviceHandler,
		TechnicianHandler:    technicianHandler,
		KnowledgeHandler:     knowledgeHandler,
		UpdateHandler:        updateHandler,
		VerificationHandler:  verificationHandler,
	})

	port := envutil.String("PORT", "8080")
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Warn("Server failed", "error", err)
	}
}
