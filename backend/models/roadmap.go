package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type"` // article, video, course, tool
}

type Task struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Duration    string `json:"duration,omitempty"`
}

type DailyPlan struct {
	Day       int        `json:"day"`
	Title     string     `json:"title"`
	Focus     string     `json:"focus"`
	Tasks     []Task     `json:"tasks"`
	Resources []Resource `json:"resources"`
}

type WeeklySummary struct {
	Week       int      `json:"week"`
	Theme      string   `json:"theme"`
	Objectives []string `json:"objectives"`
	Checkpoint string   `json:"checkpoint"` // self-assessment task
}

type Challenge struct {
	Problem  string `json:"problem"`
	Solution string `json:"solution"`
}

type Phase struct {
	Name        string `json:"name"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// Roadmap is the generated learning plan. It arrives from the generation
// service already schema-checked, but the shape is still treated as
// untrusted: lookups into it clamp rather than index blindly.
type Roadmap struct {
	Title                string          `json:"title"`
	Overview             string          `json:"overview"`
	CurrentLevelEstimate string          `json:"currentLevelEstimate"`
	TimelineEstimate     string          `json:"timelineEstimate"`
	Phases               []Phase         `json:"phases"`
	DailyPlans           []DailyPlan     `json:"dailyPlans"`
	WeeklySummaries      []WeeklySummary `json:"weeklySummaries"`
	PredictedChallenges  []Challenge     `json:"predictedChallenges"`
}

// PlanForDay finds the daily plan for the given day of the journey.
// Days past the end of the plan clamp to the final available day; if no
// plan carries the clamped ordinal the first plan is returned. Only an
// empty plan list yields nil.
func (r *Roadmap) PlanForDay(day int) *DailyPlan {
	if len(r.DailyPlans) == 0 {
		return nil
	}
	effective := day
	if effective > len(r.DailyPlans) {
		effective = len(r.DailyPlans)
	}
	for i := range r.DailyPlans {
		if r.DailyPlans[i].Day == effective {
			return &r.DailyPlans[i]
		}
	}
	return &r.DailyPlans[0]
}

// RoadmapRecord is the storage envelope for one profile's roadmap.
type RoadmapRecord struct {
	gorm.Model
	Profile string         `gorm:"uniqueIndex;not null"`
	Payload datatypes.JSON `gorm:"not null"`
}
