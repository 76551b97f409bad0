package controllers

import (
	"fmt"
	"time"

	"github.com/breek0307/pathforge/backend/config"
	"github.com/breek0307/pathforge/backend/progress"
	"github.com/breek0307/pathforge/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProgressController struct {
	Store *progress.Store
	Cfg   *config.Config
}

func NewProgressController(store *progress.Store, cfg *config.Config) *ProgressController {
	return &ProgressController{Store: store, Cfg: cfg}
}

// GetProgress godoc
// @Summary Get progress state
// @Description Returns the full persisted progress state for the profile
// @Tags progress
// @Produce json
// @Success 200 {object} models.UserProgressState
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	state := pc.Store.Load(profileFrom(c))
	return c.JSON(state)
}

// Reconcile godoc
// @Summary Run the daily reconciliation
// @Description Detects a day rollover, updates the streak and reports yesterday's stats
// @Tags progress
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /progress/reconcile [post]
func (pc *ProgressController) Reconcile(c *fiber.Ctx) error {
	profile := profileFrom(c)
	state, isNewDay, yesterdayStats := pc.Store.Reconcile(profile)

	start, err := time.Parse(time.RFC3339, state.RoadmapStartDate)
	if err != nil {
		start = time.Now()
	}
	dayOfJourney := progress.DayOfJourney(start, time.Now())

	resp := fiber.Map{
		"state":          state,
		"isNewDay":       isNewDay,
		"yesterdayStats": yesterdayStats,
		"dayOfJourney":   dayOfJourney,
	}

	if isNewDay {
		if yesterdayStats != nil {
			resp["message"] = fmt.Sprintf("New day, new progress! You completed %d%% of yesterday's tasks.", yesterdayStats.CompletionPercentage)
		} else {
			resp["message"] = "New day, new progress! Let's keep the momentum going."
		}
	}

	return c.JSON(resp)
}

// GetToday godoc
// @Summary Get today's progress
// @Description Returns today's completion snapshot; an empty snapshot when none exists
// @Tags progress
// @Produce json
// @Success 200 {object} models.DailyProgress
// @Router /progress/today [get]
func (pc *ProgressController) GetToday(c *fiber.Ctx) error {
	return c.JSON(pc.Store.TodayProgress(profileFrom(c)))
}

// UpdateToday godoc
// @Summary Upsert today's progress
// @Description Replaces today's completion record with the given task set, percentage and minutes
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} models.UserProgressState
// @Failure 400 {object} utils.ErrorResponse
// @Router /progress/today [put]
func (pc *ProgressController) UpdateToday(c *fiber.Ctx) error {
	type UpdateInput struct {
		CompletedTaskIDs     []string `json:"completedTaskIds"`
		CompletionPercentage int      `json:"completionPercentage"`
		TimeSpentMinutes     int      `json:"timeSpentMinutes"`
	}

	var input UpdateInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	state := pc.Store.UpsertToday(profileFrom(c),
		input.CompletedTaskIDs, input.CompletionPercentage, input.TimeSpentMinutes)
	return c.JSON(state)
}

// AddJournalEntry godoc
// @Summary Append a journal reflection
// @Description Prepends a reflection dated today; blank content is rejected
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} models.UserProgressState
// @Failure 400 {object} utils.ErrorResponse
// @Router /progress/journal [post]
func (pc *ProgressController) AddJournalEntry(c *fiber.Ctx) error {
	type JournalInput struct {
		Content string `json:"content"`
	}

	var input JournalInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if progress.IsBlank(input.Content) {
		return utils.BadRequest(c, "Journal content cannot be empty")
	}

	state := pc.Store.AppendJournal(profileFrom(c), input.Content)
	return c.JSON(state)
}

// SetReminder godoc
// @Summary Set or clear the daily reminder
// @Description Stores the HH:MM reminder verbatim; null clears it
// @Tags progress
// @Accept json
// @Produce json
// @Success 200 {object} models.UserProgressState
// @Failure 400 {object} utils.ErrorResponse
// @Router /progress/reminder [put]
func (pc *ProgressController) SetReminder(c *fiber.Ctx) error {
	type ReminderInput struct {
		Time *string `json:"time"`
	}

	var input ReminderInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	state := pc.Store.SetReminder(profileFrom(c), input.Time)
	return c.JSON(state)
}
