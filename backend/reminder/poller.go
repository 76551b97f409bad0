package reminder

import (
	"context"
	"log"
	"time"

	"github.com/breek0307/pathforge/backend/progress"
)

const defaultInterval = 30 * time.Second

// DefaultMessage is what profiles hear when their reminder time comes up.
const DefaultMessage = "Time to complete your learning tasks for today!"

// Poller periodically compares each profile's stored reminder time
// against the wall clock and fires the notify callback on a match.
// Delivery is best effort: a missed tick is a missed reminder, and a
// malformed stored time simply never matches.
type Poller struct {
	Store    *progress.Store
	Interval time.Duration
	Notify   func(profile, message string)
	Logger   *log.Logger
	// Now defaults to time.Now; tests substitute a fixed clock.
	Now func() time.Time

	fired map[string]string // profile -> "date HH:MM" last fired
}

func NewPoller(store *progress.Store, notify func(profile, message string), logger *log.Logger) *Poller {
	return &Poller{
		Store:    store,
		Interval: defaultInterval,
		Notify:   notify,
		Logger:   logger,
		fired:    map[string]string{},
	}
}

func (p *Poller) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// Run polls until the context is cancelled.
func (p *Poller) Run(ctx context.Context) {
	interval := p.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.CheckOnce()
		}
	}
}

// CheckOnce runs a single polling pass over all profiles. A reminder
// fires at most once per profile per wall-clock minute.
func (p *Poller) CheckOnce() {
	now := p.now()
	currentHM := now.Format("15:04")
	today := progress.DayKey(now)
	slot := today + " " + currentHM

	for _, profile := range p.Store.Profiles() {
		state := p.Store.Load(profile)
		if state.ReminderTime == nil || *state.ReminderTime != currentHM {
			continue
		}
		if p.fired[profile] == slot {
			continue
		}
		p.fired[profile] = slot

		if p.Logger != nil {
			p.Logger.Printf("reminder fired for profile %q at %s", profile, currentHM)
		}
		if p.Notify != nil {
			p.Notify(profile, DefaultMessage)
		}
	}
}
