package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/breek0307/pathforge/backend/config"
	"github.com/breek0307/pathforge/backend/gemini"
	"github.com/breek0307/pathforge/backend/models"
	"github.com/breek0307/pathforge/backend/progress"
	"github.com/breek0307/pathforge/backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RoadmapGenerator is the external generation collaborator. The real
// implementation is the Gemini client; tests substitute a stub.
type RoadmapGenerator interface {
	GenerateRoadmap(ctx context.Context, goal, userContext string, images []gemini.ImagePart) (*models.Roadmap, error)
}

type RoadmapController struct {
	DB        *gorm.DB
	Store     *progress.Store
	Generator RoadmapGenerator
	Cfg       *config.Config
}

func NewRoadmapController(db *gorm.DB, store *progress.Store, generator RoadmapGenerator, cfg *config.Config) *RoadmapController {
	return &RoadmapController{DB: db, Store: store, Generator: generator, Cfg: cfg}
}

// Generate godoc
// @Summary Generate a learning roadmap
// @Description Builds a personalized roadmap from a goal, context and optional images, and stores it for the profile
// @Tags roadmap
// @Accept json
// @Produce json
// @Success 200 {object} models.Roadmap
// @Failure 400 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /roadmap [post]
func (rc *RoadmapController) Generate(c *fiber.Ctx) error {
	type GenerateInput struct {
		Goal    string             `json:"goal"`
		Context string             `json:"context"`
		Images  []gemini.ImagePart `json:"images"`
	}

	var input GenerateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if progress.IsBlank(input.Goal) {
		return utils.BadRequest(c, "Goal is required")
	}

	roadmap, err := rc.Generator.GenerateRoadmap(c.Context(), input.Goal, input.Context, input.Images)
	if err != nil {
		return utils.BadGateway(c, "Failed to generate roadmap. Please try again.")
	}

	profile := profileFrom(c)
	if err := rc.saveRoadmap(profile, roadmap); err != nil {
		return utils.Error(c, fiber.StatusInternalServerError, err)
	}

	// Anchor the journey start date. An existing progress record keeps
	// its original start date; regeneration never moves it.
	rc.Store.EnsureInitialized(profile)

	return c.JSON(roadmap)
}

// GetRoadmap godoc
// @Summary Get the stored roadmap
// @Tags roadmap
// @Produce json
// @Success 200 {object} models.Roadmap
// @Failure 404 {object} utils.ErrorResponse
// @Router /roadmap [get]
func (rc *RoadmapController) GetRoadmap(c *fiber.Ctx) error {
	roadmap, err := rc.loadRoadmap(profileFrom(c))
	if err != nil {
		return utils.NotFound(c, "No roadmap generated yet")
	}
	return c.JSON(roadmap)
}

// GetTodayPlan godoc
// @Summary Get today's daily plan
// @Description Computes the day of the journey and returns the matching plan, clamped to the last available day
// @Tags roadmap
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} utils.ErrorResponse
// @Router /roadmap/today [get]
func (rc *RoadmapController) GetTodayPlan(c *fiber.Ctx) error {
	profile := profileFrom(c)

	roadmap, err := rc.loadRoadmap(profile)
	if err != nil {
		return utils.NotFound(c, "No roadmap generated yet")
	}

	state := rc.Store.Load(profile)
	start, err := time.Parse(time.RFC3339, state.RoadmapStartDate)
	if err != nil {
		start = time.Now()
	}
	day := progress.DayOfJourney(start, time.Now())

	plan := roadmap.PlanForDay(day)
	if plan == nil {
		return utils.NotFound(c, "Roadmap has no daily plans")
	}

	return c.JSON(fiber.Map{
		"dayOfJourney": day,
		"plan":         plan,
	})
}

// Reset godoc
// @Summary Delete the stored roadmap
// @Description Removes the roadmap; progress state is kept
// @Tags roadmap
// @Success 204
// @Router /roadmap [delete]
func (rc *RoadmapController) Reset(c *fiber.Ctx) error {
	rc.DB.Unscoped().Where("profile = ?", profileFrom(c)).Delete(&models.RoadmapRecord{})
	return c.SendStatus(fiber.StatusNoContent)
}

func (rc *RoadmapController) saveRoadmap(profile string, roadmap *models.Roadmap) error {
	payload, err := json.Marshal(roadmap)
	if err != nil {
		return err
	}

	var rec models.RoadmapRecord
	if err := rc.DB.Where("profile = ?", profile).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rec = models.RoadmapRecord{Profile: profile, Payload: payload}
			return rc.DB.Create(&rec).Error
		}
		return err
	}

	rec.Payload = payload
	return rc.DB.Save(&rec).Error
}

func (rc *RoadmapController) loadRoadmap(profile string) (*models.Roadmap, error) {
	var rec models.RoadmapRecord
	if err := rc.DB.Where("profile = ?", profile).First(&rec).Error; err != nil {
		return nil, err
	}

	var roadmap models.Roadmap
	if err := json.Unmarshal(rec.Payload, &roadmap); err != nil {
		return nil, err
	}
	return &roadmap, nil
}
