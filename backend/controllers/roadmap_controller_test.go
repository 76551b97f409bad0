package controllers_test

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStoresRoadmapAndInitializesProgress(t *testing.T) {
	gen := &stubGenerator{roadmap: testRoadmap()}
	app, store := newTestApp(t, gen)

	body := map[string]interface{}{
		"goal":    "become a Go backend developer",
		"context": "coming from Python",
	}
	resp, result := doJSON(t, app, "POST", "/api/roadmap", body)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, "Go Backend Path", result["title"])

	// The roadmap is persisted and readable back.
	resp, result = doJSON(t, app, "GET", "/api/roadmap", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Go Backend Path", result["title"])

	// Progress state got anchored.
	assert.Contains(t, store.Profiles(), "local")
}

func TestGenerateRequiresGoal(t *testing.T) {
	gen := &stubGenerator{roadmap: testRoadmap()}
	app, _ := newTestApp(t, gen)

	resp, _ := doJSON(t, app, "POST", "/api/roadmap", map[string]string{"goal": "  "})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, gen.calls)
}

func TestGenerateFailureIsBadGateway(t *testing.T) {
	gen := &stubGenerator{err: errors.New("model unavailable")}
	app, _ := newTestApp(t, gen)

	resp, result := doJSON(t, app, "POST", "/api/roadmap", map[string]string{"goal": "learn Go"})
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, false, result["success"])
}

func TestGenerateKeepsStartDateOnRegeneration(t *testing.T) {
	gen := &stubGenerator{roadmap: testRoadmap()}
	app, store := newTestApp(t, gen)

	body := map[string]string{"goal": "learn Go"}
	doJSON(t, app, "POST", "/api/roadmap", body)
	first := store.Load("local").RoadmapStartDate

	doJSON(t, app, "POST", "/api/roadmap", body)
	assert.Equal(t, first, store.Load("local").RoadmapStartDate)
}

func TestGetRoadmapMissing(t *testing.T) {
	app, _ := newTestApp(t, &stubGenerator{})

	resp, _ := doJSON(t, app, "GET", "/api/roadmap", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetTodayPlan(t *testing.T) {
	gen := &stubGenerator{roadmap: testRoadmap()}
	app, _ := newTestApp(t, gen)

	doJSON(t, app, "POST", "/api/roadmap", map[string]string{"goal": "learn Go"})

	resp, result := doJSON(t, app, "GET", "/api/roadmap/today", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The journey started moments ago, so this is day 1.
	assert.Equal(t, float64(1), result["dayOfJourney"])
	plan := result["plan"].(map[string]interface{})
	assert.Equal(t, "Foundations", plan["title"])
}

func TestGetTodayPlanWithoutRoadmap(t *testing.T) {
	app, _ := newTestApp(t, &stubGenerator{})

	resp, _ := doJSON(t, app, "GET", "/api/roadmap/today", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestResetDeletesRoadmapKeepsProgress(t *testing.T) {
	gen := &stubGenerator{roadmap: testRoadmap()}
	app, store := newTestApp(t, gen)

	doJSON(t, app, "POST", "/api/roadmap", map[string]string{"goal": "learn Go"})
	doJSON(t, app, "POST", "/api/progress/journal", map[string]string{"content": "day one done"})

	resp, _ := doJSON(t, app, "DELETE", "/api/roadmap", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/api/roadmap", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Progress survives a roadmap reset.
	state := store.Load("local")
	require.Len(t, state.Journal, 1)
}
