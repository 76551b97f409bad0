package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayKeyFormat(t *testing.T) {
	ts := time.Date(2025, 3, 7, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2025-03-07", DayKey(ts))
}

func TestTodayKeyStableWithinDay(t *testing.T) {
	// Two invocations within the same calendar day return the same key.
	assert.Equal(t, TodayKey(), TodayKey())
	assert.Equal(t, DayKey(time.Now()), TodayKey())
}

func TestDayOfJourneyFloor(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	// The instant after the start is still day 1.
	assert.Equal(t, 1, DayOfJourney(start, start.Add(time.Second)))
	assert.Equal(t, 1, DayOfJourney(start, start.Add(23*time.Hour)))

	// 25 to 47 hours later is day 2.
	assert.Equal(t, 2, DayOfJourney(start, start.Add(25*time.Hour)))
	assert.Equal(t, 2, DayOfJourney(start, start.Add(47*time.Hour)))

	assert.Equal(t, 3, DayOfJourney(start, start.Add(49*time.Hour)))
}

func TestDayOfJourneyNeverBelowOne(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	// A start timestamp in the future (clock skew) still yields a
	// positive ordinal via the absolute difference.
	assert.Equal(t, 1, DayOfJourney(start, start.Add(-time.Hour)))
	assert.Equal(t, 2, DayOfJourney(start, start.Add(-30*time.Hour)))
}
