package routes

import (
	"github.com/breek0307/pathforge/backend/config"
	"github.com/breek0307/pathforge/backend/controllers"
	"github.com/breek0307/pathforge/backend/progress"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, store *progress.Store, generator controllers.RoadmapGenerator, cfg *config.Config) {
	// Progress routes
	progressController := controllers.NewProgressController(store, cfg)
	app.Get("/api/progress", progressController.GetProgress)
	app.Post("/api/progress/reconcile", progressController.Reconcile)
	app.Get("/api/progress/today", progressController.GetToday)
	app.Put("/api/progress/today", progressController.UpdateToday)
	app.Post("/api/progress/journal", progressController.AddJournalEntry)
	app.Put("/api/progress/reminder", progressController.SetReminder)

	// Roadmap routes
	roadmapController := controllers.NewRoadmapController(db, store, generator, cfg)
	app.Post("/api/roadmap", roadmapController.Generate)
	app.Get("/api/roadmap", roadmapController.GetRoadmap)
	app.Get("/api/roadmap/today", roadmapController.GetTodayPlan)
	app.Delete("/api/roadmap", roadmapController.Reset)
}
