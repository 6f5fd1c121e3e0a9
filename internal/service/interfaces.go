package service

import (
	"context"
	"io"
	"time"

	"github.com/alexanderramin/edpay/internal/contract"
	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/alexanderramin/edpay/internal/payout"
)

type MentorService interface {
	Create(ctx context.Context, m *domain.Mentor) error
	GetByID(ctx context.Context, id string) (*domain.Mentor, error)
	List(ctx context.Context) ([]*domain.Mentor, error)
	// AddNext creates the next placeholder mentor (mentor-N, New Mentor N).
	AddNext(ctx context.Context) (*domain.Mentor, error)
	// EnsureDefaults seeds the demo mentors into an empty store.
	EnsureDefaults(ctx context.Context) error
}

// ImportResult holds the outcome of a CSV session import.
type ImportResult struct {
	Sessions []*domain.Session
	// UnknownMentors lists mentor ids, in first-seen order, that have no
	// mentor record. Their sessions are imported regardless.
	UnknownMentors []string
}

type SessionService interface {
	Add(ctx context.Context, s *domain.Session) error
	Import(ctx context.Context, r io.Reader) (*ImportResult, error)
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]*domain.Session, error)
	ListInRange(ctx context.Context, r domain.DateRange, now time.Time) ([]*domain.Session, error)
	ListByMentor(ctx context.Context, mentorID string) ([]*domain.Session, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, w io.Writer, r domain.DateRange, now time.Time) (int, error)
}

// ReceiptPreview is an unsaved payout calculation for one mentor.
type ReceiptPreview struct {
	Mentor    *domain.Mentor
	Sessions  []*domain.Session
	Breakdown payout.Result
}

type ReceiptService interface {
	Generate(ctx context.Context, req contract.GenerateReceiptRequest) (*domain.Receipt, error)
	Preview(ctx context.Context, mentorID string, cfg *payout.Config) (*ReceiptPreview, error)
	GetByID(ctx context.Context, id string) (*domain.Receipt, error)
	List(ctx context.Context) ([]*domain.Receipt, error)
	ListByMentor(ctx context.Context, mentorID string) ([]*domain.Receipt, error)
}

type DashboardService interface {
	Admin(ctx context.Context, req contract.AdminDashboardRequest) (*contract.AdminDashboardResponse, error)
	Mentor(ctx context.Context, mentorID string) (*contract.MentorDashboardResponse, error)
}

type AuthService interface {
	SignIn(ctx context.Context, role domain.Role, email, password string) (*domain.Identity, error)
	SignOut(ctx context.Context) error
	// Current returns the signed-in identity or ErrNotSignedIn.
	Current(ctx context.Context) (*domain.Identity, error)
	// Require returns the current identity if its role is one of roles.
	// No roles means any signed-in user.
	Require(ctx context.Context, roles ...domain.Role) (*domain.Identity, error)
}
