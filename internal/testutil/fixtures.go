package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/google/uuid"
)

var testMentorCounter atomic.Int64

// Mentor options
type MentorOption func(*domain.Mentor)

func WithMentorID(id string) MentorOption {
	return func(m *domain.Mentor) {
		m.ID = id
	}
}

func WithEmail(email string) MentorOption {
	return func(m *domain.Mentor) {
		m.Email = email
	}
}

func NewTestMentor(name string, opts ...MentorOption) *domain.Mentor {
	n := testMentorCounter.Add(1)
	m := &domain.Mentor{
		ID:        fmt.Sprintf("mentor-t%d", n),
		Name:      name,
		Email:     fmt.Sprintf("mentor%d@example.com", n),
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Session options
type SessionOption func(*domain.Session)

func WithSessionID(id string) SessionOption {
	return func(s *domain.Session) {
		s.ID = id
	}
}

func WithDate(d time.Time) SessionOption {
	return func(s *domain.Session) {
		s.Date = domain.FormatTimestamp(d)
	}
}

func WithRawDate(d string) SessionOption {
	return func(s *domain.Session) {
		s.Date = d
	}
}

func WithType(t string) SessionOption {
	return func(s *domain.Session) {
		s.Type = t
	}
}

func WithDuration(min int) SessionOption {
	return func(s *domain.Session) {
		s.Duration = min
	}
}

func WithRate(rate int) SessionOption {
	return func(s *domain.Session) {
		s.RatePerHour = rate
	}
}

// NewTestSession returns a default one-hour Live Session at 4000/hr dated now.
func NewTestSession(m *domain.Mentor, opts ...SessionOption) *domain.Session {
	now := time.Now().UTC()
	s := &domain.Session{
		ID:          uuid.New().String(),
		MentorID:    m.ID,
		MentorName:  m.Name,
		Date:        domain.FormatTimestamp(now),
		Type:        domain.DefaultSessionType,
		Duration:    domain.DefaultDuration,
		RatePerHour: domain.DefaultRatePerHour,
		CreatedAt:   now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Receipt options
type ReceiptOption func(*domain.Receipt)

func WithStatus(st domain.ReceiptStatus) ReceiptOption {
	return func(r *domain.Receipt) {
		r.Status = st
	}
}

func WithSessions(ids ...string) ReceiptOption {
	return func(r *domain.Receipt) {
		r.Sessions = ids
	}
}

func NewTestReceipt(m *domain.Mentor, amount int, opts ...ReceiptOption) *domain.Receipt {
	r := &domain.Receipt{
		ID:          uuid.New().String(),
		MentorID:    m.ID,
		MentorName:  m.Name,
		GeneratedAt: time.Now().UTC(),
		TotalAmount: amount,
		Status:      domain.ReceiptPending,
		Sessions:    []string{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
