package main

import (
	"github.com/brokerdesk/carrier-sales-api/config"
	"github.com/brokerdesk/carrier-sales-api/handlers"
	"github.com/brokerdesk/carrier-sales-api/services"
	"github.com/brokerdesk/carrier-sales-api/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load config
	cfg := config.LoadConfig()
	logrus.SetLevel(cfg.ParseLogLevel())

	// Flat-file record store; create empty collections on first startup
	recordStore := store.NewFileStore()
	if err := recordStore.EnsureFile(cfg.LoadsFile); err != nil {
		logrus.Fatalf("Failed to initialize loads file: %v", err)
	}
	if err := recordStore.EnsureFile(cfg.CallsFile); err != nil {
		logrus.Fatalf("Failed to initialize calls file: %v", err)
	}

	// Initialize services
	carrierService := services.NewCarrierService(cfg)
	loadService := services.NewLoadService(recordStore, cfg.LoadsFile)
	callService := services.NewCallService(recordStore, cfg.CallsFile)
	analyticsService := services.NewAnalyticsService(recordStore, cfg.CallsFile)

	// Initialize handlers
	carrierHandler := handlers.NewCarrierHandler(carrierService)
	loadHandler := handlers.NewLoadHandler(loadService)
	callHandler := handlers.NewCallHandler(callService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// Setup Fiber
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Health check endpoint, no auth
	app.Get("/health", handlers.HealthCheck)

	// Authenticated API routes
	api := app.Group("/api", handlers.APIKeyAuth(cfg))

	api.Get("/verify-carrier", carrierHandler.VerifyCarrier)
	api.Get("/loads", loadHandler.SearchLoads)
	api.Get("/loads/:load_id", loadHandler.GetLoadByID)
	api.Post("/call-results", callHandler.SaveCallResults)
	api.Post("/save-call-results", callHandler.SaveCallResults) // alias kept for workflow callers
	api.Get("/analytics", analyticsHandler.GetAnalytics)
	api.Get("/calls", callHandler.GetAllCalls)

	// Fallback for unknown routes
	app.Use(handlers.NotFound)

	// Start server
	logrus.Infof("Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		logrus.Fatalf("Server failed to start: %v", err)
	}
}
