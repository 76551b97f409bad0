package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRoadmap() *Roadmap {
	return &Roadmap{
		Title: "Go Backend Path",
		DailyPlans: []DailyPlan{
			{Day: 1, Title: "Foundations"},
			{Day: 2, Title: "HTTP"},
			{Day: 3, Title: "Databases"},
		},
	}
}

func TestPlanForDayExactMatch(t *testing.T) {
	r := sampleRoadmap()

	plan := r.PlanForDay(2)
	require.NotNil(t, plan)
	assert.Equal(t, "HTTP", plan.Title)
}

func TestPlanForDayClampsPastEnd(t *testing.T) {
	r := sampleRoadmap()

	// Day 30 of a 3-day plan clamps to the final day.
	plan := r.PlanForDay(30)
	require.NotNil(t, plan)
	assert.Equal(t, 3, plan.Day)
}

func TestPlanForDayFallsBackToFirst(t *testing.T) {
	// Plan ordinals with holes: a clamped day that matches nothing
	// falls back to the first entry.
	r := &Roadmap{DailyPlans: []DailyPlan{
		{Day: 5, Title: "Late start"},
		{Day: 7, Title: "Later"},
	}}

	plan := r.PlanForDay(1)
	require.NotNil(t, plan)
	assert.Equal(t, "Late start", plan.Title)
}

func TestPlanForDayEmptyRoadmap(t *testing.T) {
	r := &Roadmap{}
	assert.Nil(t, r.PlanForDay(1))
}

func TestHistoryFor(t *testing.T) {
	s := &UserProgressState{History: []DailyProgress{
		{Date: "2025-03-10", CompletionPercentage: 50},
		{Date: "2025-03-11", CompletionPercentage: 75},
	}}

	h := s.HistoryFor("2025-03-11")
	require.NotNil(t, h)
	assert.Equal(t, 75, h.CompletionPercentage)

	assert.Nil(t, s.HistoryFor("2025-03-12"))
}
