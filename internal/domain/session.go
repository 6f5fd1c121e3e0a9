package domain

import (
	"errors"
	"fmt"
	"time"
)

// Defaults applied when a session field is missing from an import.
const (
	DefaultSessionType = "Live Session"
	DefaultDuration    = 60
	DefaultRatePerHour = 4000
)

// KnownSessionTypes are the labels offered by the session form.
// The type field is free-form; any other label is accepted.
var KnownSessionTypes = []string{"Live Session", "Evaluation", "Recording Review"}

// ErrInvalidSession is returned when a manually entered session fails validation.
var ErrInvalidSession = errors.New("invalid session")

// Session is one billable unit of mentor work. MentorName is a denormalized
// copy and is never re-validated against the mentor registry.
type Session struct {
	ID          string
	MentorID    string
	MentorName  string
	Date        string // ISO-8601 text, parsed on demand
	Type        string
	Duration    int // minutes
	RatePerHour int // whole currency units
	CreatedAt   time.Time
}

// BaseAmount is the un-adjusted billable amount: rate * hours.
func (s Session) BaseAmount() float64 {
	return float64(s.RatePerHour) * (float64(s.Duration) / 60)
}

// Validate applies the manual-entry rules. Imported sessions skip this.
func (s Session) Validate() error {
	if s.MentorID == "" {
		return fmt.Errorf("%w: mentor is required", ErrInvalidSession)
	}
	if s.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %d", ErrInvalidSession, s.Duration)
	}
	if s.RatePerHour <= 0 {
		return fmt.Errorf("%w: rate per hour must be positive, got %d", ErrInvalidSession, s.RatePerHour)
	}
	return nil
}

// ParsedDate returns the session date as a time, if it parses.
func (s Session) ParsedDate() (time.Time, bool) {
	return ParseSessionDate(s.Date)
}

// SessionIDs returns the ids of sessions in input order.
func SessionIDs(sessions []Session) []string {
	ids := make([]string, 0, len(sessions))
	for _, s := range sessions {
		ids = append(ids, s.ID)
	}
	return ids
}
