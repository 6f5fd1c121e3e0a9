package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/edpay/internal/db"
	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/alexanderramin/edpay/internal/payout"
	"github.com/alexanderramin/edpay/internal/repository"
)

// DefaultMentors seeds a fresh installation.
var DefaultMentors = []domain.Mentor{
	{ID: "mentor-1", Name: "Jane Smith", Email: "jane.smith@example.com"},
	{ID: "mentor-2", Name: "John Davis", Email: "john.davis@example.com"},
	{ID: "mentor-3", Name: "Sarah Wilson", Email: "sarah.wilson@example.com"},
}

type mentorService struct {
	mentors  repository.MentorRepo
	uow      db.UnitOfWork
	clock    payout.Clock
	observer UseCaseObserver
}

func NewMentorService(
	mentors repository.MentorRepo,
	uow db.UnitOfWork,
	clock payout.Clock,
	observers ...UseCaseObserver,
) MentorService {
	return &mentorService{
		mentors:  mentors,
		uow:      uow,
		clock:    payout.ClockOrSystem(clock),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *mentorService) Create(ctx context.Context, m *domain.Mentor) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "add-mentor", startedAt, &err, map[string]any{"mentor_id": m.ID})
	}()

	m.ID = strings.TrimSpace(m.ID)
	m.Name = strings.TrimSpace(m.Name)
	if m.ID == "" {
		return errors.New("mentor id is required")
	}
	if m.Name == "" {
		return errors.New("mentor name is required")
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = s.clock.Now()
	}
	return s.mentors.Create(ctx, m)
}

func (s *mentorService) GetByID(ctx context.Context, id string) (*domain.Mentor, error) {
	m, err := s.mentors.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrMentorNotFound, id)
	}
	return m, err
}

func (s *mentorService) List(ctx context.Context) ([]*domain.Mentor, error) {
	return s.mentors.List(ctx)
}

// AddNext numbers the new mentor after the current count, so an id that is
// already taken is reported as a conflict rather than skipped.
func (s *mentorService) AddNext(ctx context.Context) (created *domain.Mentor, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		observe(ctx, s.observer, "add-mentor", startedAt, &err, fields)
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txMentors := repository.NewSQLiteMentorRepo(tx)
		n, err := txMentors.Count(ctx)
		if err != nil {
			return err
		}
		next := n + 1
		created = &domain.Mentor{
			ID:        fmt.Sprintf("mentor-%d", next),
			Name:      fmt.Sprintf("New Mentor %d", next),
			Email:     fmt.Sprintf("mentor%d@example.com", next),
			CreatedAt: s.clock.Now(),
		}
		fields["mentor_id"] = created.ID
		return txMentors.Create(ctx, created)
	})
	if err != nil {
		return nil, fmt.Errorf("adding mentor: %w", err)
	}
	return created, nil
}

func (s *mentorService) EnsureDefaults(ctx context.Context) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txMentors := repository.NewSQLiteMentorRepo(tx)
		n, err := txMentors.Count(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		now := s.clock.Now()
		for i, m := range DefaultMentors {
			seed := m
			// Distinct timestamps keep the seed order under List.
			seed.CreatedAt = now.Add(time.Duration(i) * time.Millisecond)
			if err := txMentors.Create(ctx, &seed); err != nil {
				return fmt.Errorf("seeding mentor %s: %w", seed.ID, err)
			}
		}
		return nil
	})
}
