package main

import (
	"context"
	"log"

	"github.com/breek0307/pathforge/backend/config"
	"github.com/breek0307/pathforge/backend/gemini"
	"github.com/breek0307/pathforge/backend/middleware"
	"github.com/breek0307/pathforge/backend/models"
	"github.com/breek0307/pathforge/backend/progress"
	"github.com/breek0307/pathforge/backend/reminder"
	"github.com/breek0307/pathforge/backend/routes"
	"github.com/breek0307/pathforge/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}
	if err := db.AutoMigrate(&models.ProgressRecord{}, &models.RoadmapRecord{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	store := progress.NewStore(db)
	generator := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)

	// Best-effort reminder polling; notifications land in the log.
	poller := reminder.NewPoller(store, nil, logger)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go poller.Run(ctx)

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-Profile",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, db, store, generator, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
