package progress

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/breek0307/pathforge/backend/models"
	"gorm.io/gorm"
)

// Store owns the persisted progress state. Every mutation goes through
// it as a synchronous load-modify-store cycle; the underlying storage
// has no transaction isolation, so two concurrent sessions on the same
// profile are last-write-wins. The system assumes a single active
// session per profile.
type Store struct {
	DB *gorm.DB
	// Now is the clock used for day keys and streak arithmetic.
	// Defaults to time.Now when nil.
	Now func() time.Time
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

func (s *Store) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// defaultState builds the initial record for a profile with no saved
// progress: streak of 1, today as the last visit, journey anchored now.
func (s *Store) defaultState() models.UserProgressState {
	now := s.now()
	return models.UserProgressState{
		RoadmapStartDate: now.Format(time.RFC3339),
		LastVisitDate:    DayKey(now),
		CurrentStreak:    1,
		MaxStreak:        1,
		ReminderTime:     nil,
		Journal:          []models.JournalEntry{},
		History:          []models.DailyProgress{},
	}
}

// Load returns the stored state for the profile. A missing record or an
// unparseable payload both yield the default state; the caller always
// gets a valid state and never an error.
func (s *Store) Load(profile string) models.UserProgressState {
	var rec models.ProgressRecord
	if err := s.DB.Where("profile = ?", profile).First(&rec).Error; err != nil {
		return s.defaultState()
	}

	var state models.UserProgressState
	if err := json.Unmarshal(rec.Payload, &state); err != nil {
		return s.defaultState()
	}
	if state.Journal == nil {
		state.Journal = []models.JournalEntry{}
	}
	if state.History == nil {
		state.History = []models.DailyProgress{}
	}
	return state
}

// Save overwrites the whole persisted record for the profile.
func (s *Store) Save(profile string, state models.UserProgressState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}

	var rec models.ProgressRecord
	if err := s.DB.Where("profile = ?", profile).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			rec = models.ProgressRecord{Profile: profile, Payload: payload}
			return s.DB.Create(&rec).Error
		}
		return err
	}

	rec.Payload = payload
	return s.DB.Save(&rec).Error
}

// EnsureInitialized persists the default state if the profile has no
// record yet. Called when a roadmap is generated so the journey start
// date is anchored once; an existing record is left untouched.
func (s *Store) EnsureInitialized(profile string) models.UserProgressState {
	var rec models.ProgressRecord
	if err := s.DB.Where("profile = ?", profile).First(&rec).Error; err == nil {
		return s.Load(profile)
	}
	state := s.defaultState()
	s.Save(profile, state)
	return state
}

// Reconcile performs the once-per-session day rollover check. On the
// first call of a new calendar day it advances or resets the streak,
// stamps the visit date and persists; repeat calls within the same day
// are no-ops. yesterdayStats is the history record for the immediately
// preceding day, or nil if the user never touched tasks that day.
func (s *Store) Reconcile(profile string) (models.UserProgressState, bool, *models.DailyProgress) {
	state := s.Load(profile)
	now := s.now()
	today := DayKey(now)

	if state.LastVisitDate == today {
		return state, false, nil
	}

	yesterday := DayKey(now.AddDate(0, 0, -1))

	// Visited on the immediately preceding day: the streak continues.
	// Any larger gap, or a stale first-visit date, resets it to 1.
	if state.LastVisitDate == yesterday {
		state.CurrentStreak++
	} else {
		state.CurrentStreak = 1
	}
	if state.CurrentStreak > state.MaxStreak {
		state.MaxStreak = state.CurrentStreak
	}
	state.LastVisitDate = today

	s.Save(profile, state)

	return state, true, state.HistoryFor(yesterday)
}

// UpsertToday replaces today's history record with the given values,
// inserting if absent. Called on every task toggle and time edit, so
// it stays a single load/store cycle. The percentage arrives pre-rounded
// from the caller and is clamped to [0,100]; minutes clamp to zero.
func (s *Store) UpsertToday(profile string, taskIDs []string, percentage, minutes int) models.UserProgressState {
	state := s.Load(profile)
	today := DayKey(s.now())

	if percentage < 0 {
		percentage = 0
	} else if percentage > 100 {
		percentage = 100
	}
	if minutes < 0 {
		minutes = 0
	}
	if taskIDs == nil {
		taskIDs = []string{}
	}

	kept := state.History[:0]
	for _, h := range state.History {
		if h.Date != today {
			kept = append(kept, h)
		}
	}
	state.History = append(kept, models.DailyProgress{
		Date:                 today,
		CompletedTaskIDs:     taskIDs,
		CompletionPercentage: percentage,
		TimeSpentMinutes:     minutes,
	})

	s.Save(profile, state)
	return state
}

// TodayProgress returns today's history record, or an empty snapshot
// for today's date when the user has no progress yet.
func (s *Store) TodayProgress(profile string) models.DailyProgress {
	state := s.Load(profile)
	today := DayKey(s.now())
	if h := state.HistoryFor(today); h != nil {
		return *h
	}
	return models.DailyProgress{
		Date:             today,
		CompletedTaskIDs: []string{},
	}
}

// AppendJournal prepends a reflection dated today. Entries are never
// edited or deleted, and nothing deduplicates multiple entries per day.
// Blank content is the HTTP boundary's problem, not enforced here.
func (s *Store) AppendJournal(profile, content string) models.UserProgressState {
	state := s.Load(profile)
	entry := models.JournalEntry{Date: DayKey(s.now()), Content: content}
	state.Journal = append([]models.JournalEntry{entry}, state.Journal...)
	s.Save(profile, state)
	return state
}

// SetReminder stores or clears the single reminder time. The value is
// stored verbatim; a malformed time simply never matches during polling.
func (s *Store) SetReminder(profile string, reminderTime *string) models.UserProgressState {
	state := s.Load(profile)
	state.ReminderTime = reminderTime
	s.Save(profile, state)
	return state
}

// Profiles lists every profile with a stored progress record.
func (s *Store) Profiles() []string {
	var profiles []string
	s.DB.Model(&models.ProgressRecord{}).Pluck("profile", &profiles)
	return profiles
}

// IsBlank reports whether journal content is empty or whitespace-only.
func IsBlank(content string) bool {
	return strings.TrimSpace(content) == ""
}
