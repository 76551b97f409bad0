package progress

import "time"

const dayKeyLayout = "2006-01-02"

// DayKey formats a timestamp as the local calendar date key.
func DayKey(t time.Time) string {
	return t.Format(dayKeyLayout)
}

// TodayKey returns the current local calendar date. It is evaluated at
// call time so the value advances at local midnight. Day boundaries
// follow the device's local clock, not UTC.
func TodayKey() string {
	return DayKey(time.Now())
}

// DayOfJourney computes the ordinal day of the journey, where day 1 is
// the start date itself. The difference is taken as an absolute value so
// a start timestamp slightly in the future (clock skew) still yields a
// positive ordinal. Never returns less than 1.
func DayOfJourney(start, now time.Time) int {
	diff := now.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours()/24) + 1
}
