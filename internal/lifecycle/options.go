package lifecycle

import (
	"time"

	"github.com/google/uuid"
)

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces time.Now as the source of creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithIDGenerator replaces uuid.New as the source of gig, bid and notification ids.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(m *Manager) {
		if newID != nil {
			m.newID = newID
		}
	}
}
