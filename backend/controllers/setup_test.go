package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/breek0307/pathforge/backend/config"
	"github.com/breek0307/pathforge/backend/controllers"
	"github.com/breek0307/pathforge/backend/gemini"
	"github.com/breek0307/pathforge/backend/models"
	"github.com/breek0307/pathforge/backend/progress"
	"github.com/breek0307/pathforge/backend/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// stubGenerator satisfies controllers.RoadmapGenerator without network.
type stubGenerator struct {
	roadmap *models.Roadmap
	err     error
	calls   int
}

func (s *stubGenerator) GenerateRoadmap(ctx context.Context, goal, userContext string, images []gemini.ImagePart) (*models.Roadmap, error) {
	s.calls++
	return s.roadmap, s.err
}

func newTestApp(t *testing.T, gen controllers.RoadmapGenerator) (*fiber.App, *progress.Store) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "api.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ProgressRecord{}, &models.RoadmapRecord{}))

	store := progress.NewStore(db)
	cfg := &config.Config{}

	app := fiber.New()
	routes.SetupRoutes(app, db, store, gen, cfg)

	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	return doJSONWithProfile(t, app, method, path, body, "")
}

func doJSONWithProfile(t *testing.T, app *fiber.App, method, path string, body interface{}, profile string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if profile != "" {
		req.Header.Set("X-Profile", profile)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var result map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		json.Unmarshal(raw, &result)
	}

	return resp, result
}

func testRoadmap() *models.Roadmap {
	return &models.Roadmap{
		Title:    "Go Backend Path",
		Overview: "A journey into Go",
		DailyPlans: []models.DailyPlan{
			{Day: 1, Title: "Foundations", Tasks: []models.Task{
				{ID: "t1", Description: "install Go"},
				{ID: "t2", Description: "hello world"},
			}},
			{Day: 2, Title: "HTTP"},
		},
	}
}
