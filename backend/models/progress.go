package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// JournalEntry is immutable once written. Multiple entries per date are
// allowed, unlike DailyProgress.
type JournalEntry struct {
	Date    string `json:"date"` // YYYY-MM-DD
	Content string `json:"content"`
}

// DailyProgress is the durable snapshot of one day's interaction.
// At most one record per date exists in the history.
type DailyProgress struct {
	Date                 string   `json:"date"` // YYYY-MM-DD
	CompletedTaskIDs     []string `json:"completedTaskIds"`
	CompletionPercentage int      `json:"completionPercentage"` // 0-100
	TimeSpentMinutes     int      `json:"timeSpentMinutes"`
}

// UserProgressState is the whole progress document for one profile.
// It is read in full and rewritten in full on every mutation.
type UserProgressState struct {
	RoadmapStartDate string          `json:"roadmapStartDate"` // ISO 8601, set once
	LastVisitDate    string          `json:"lastVisitDate"`    // YYYY-MM-DD
	CurrentStreak    int             `json:"currentStreak"`
	MaxStreak        int             `json:"maxStreak"`
	ReminderTime     *string         `json:"reminderTime"` // "HH:MM" or null
	Journal          []JournalEntry  `json:"journal"`      // newest first
	History          []DailyProgress `json:"history"`
}

// HistoryFor returns the history record for the given date, or nil.
func (s *UserProgressState) HistoryFor(date string) *DailyProgress {
	for i := range s.History {
		if s.History[i].Date == date {
			return &s.History[i]
		}
	}
	return nil
}

// ProgressRecord is the storage envelope for one profile's state. The
// payload is the serialized UserProgressState; a payload that fails to
// parse is treated as missing, never as an error.
type ProgressRecord struct {
	gorm.Model
	Profile string         `gorm:"uniqueIndex;not null"`
	Payload datatypes.JSON `gorm:"not null"`
}
