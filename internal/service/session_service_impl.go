package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/alexanderramin/edpay/internal/db"
	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/alexanderramin/edpay/internal/importer"
	"github.com/alexanderramin/edpay/internal/payout"
	"github.com/alexanderramin/edpay/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepo
	mentors  repository.MentorRepo
	uow      db.UnitOfWork
	clock    payout.Clock
	ids      payout.IDGenerator
	observer UseCaseObserver
}

func NewSessionService(
	sessions repository.SessionRepo,
	mentors repository.MentorRepo,
	uow db.UnitOfWork,
	clock payout.Clock,
	ids payout.IDGenerator,
	observers ...UseCaseObserver,
) SessionService {
	return &sessionService{
		sessions: sessions,
		mentors:  mentors,
		uow:      uow,
		clock:    payout.ClockOrSystem(clock),
		ids:      payout.IDsOrUUID(ids),
		observer: useCaseObserverOrNoop(observers),
	}
}

// Add records a single session entered by hand. Unlike Import it validates
// the input and resolves the mentor's display name from the mentor record.
func (s *sessionService) Add(ctx context.Context, session *domain.Session) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "add-session", startedAt, &err, map[string]any{
			"mentor_id": session.MentorID,
			"duration":  session.Duration,
		})
	}()

	if err := session.Validate(); err != nil {
		return err
	}

	mentor, err := s.mentors.GetByID(ctx, session.MentorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrMentorNotFound, session.MentorID)
		}
		return err
	}

	now := s.clock.Now()
	session.MentorName = mentor.Name
	session.Type = domain.CoalesceStr(strings.TrimSpace(session.Type), domain.DefaultSessionType)
	session.Date = domain.CoalesceStr(strings.TrimSpace(session.Date), domain.FormatTimestamp(now))
	if session.ID == "" {
		session.ID = s.ids.NewID()
	}
	session.CreatedAt = now

	return s.sessions.Create(ctx, session)
}

// Import parses CSV content and stores every row in one transaction.
func (s *sessionService) Import(ctx context.Context, r io.Reader) (result *ImportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer func() {
		observe(ctx, s.observer, "import-sessions", startedAt, &err, fields)
	}()

	parsed, err := importer.ParseCSVReader(r, s.clock, s.ids)
	if err != nil {
		return nil, err
	}
	fields["rows"] = len(parsed)

	known, err := s.mentors.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading mentors: %w", err)
	}
	knownIDs := make(map[string]bool, len(known))
	for _, m := range known {
		knownIDs[m.ID] = true
	}

	result = &ImportResult{Sessions: pointers(parsed)}
	seen := make(map[string]bool)
	for _, sess := range parsed {
		if !knownIDs[sess.MentorID] && !seen[sess.MentorID] {
			seen[sess.MentorID] = true
			result.UnknownMentors = append(result.UnknownMentors, sess.MentorID)
		}
	}

	createdAt := s.clock.Now()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSessions := repository.NewSQLiteSessionRepo(tx)
		for i, sess := range result.Sessions {
			sess.CreatedAt = createdAt
			if err := txSessions.Create(ctx, sess); err != nil {
				return fmt.Errorf("importing row %d: %w", i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *sessionService) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) List(ctx context.Context) ([]*domain.Session, error) {
	return s.sessions.List(ctx)
}

// ListInRange keeps the sessions dated on or after the range cutoff.
// Sessions whose date does not parse only appear under RangeAll.
func (s *sessionService) ListInRange(ctx context.Context, r domain.DateRange, now time.Time) ([]*domain.Session, error) {
	all, err := s.sessions.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterByRange(all, r, now), nil
}

func (s *sessionService) ListByMentor(ctx context.Context, mentorID string) ([]*domain.Session, error) {
	return s.sessions.ListByMentor(ctx, mentorID)
}

func (s *sessionService) Delete(ctx context.Context, id string) (err error) {
	startedAt := time.Now()
	defer func() {
		observe(ctx, s.observer, "delete-session", startedAt, &err, map[string]any{"session_id": id})
	}()
	return s.sessions.Delete(ctx, id)
}

// Export writes the sessions in range as CSV and returns how many rows were
// written.
func (s *sessionService) Export(ctx context.Context, w io.Writer, r domain.DateRange, now time.Time) (int, error) {
	list, err := s.ListInRange(ctx, r, now)
	if err != nil {
		return 0, err
	}
	if err := importer.ExportCSV(w, values(list)); err != nil {
		return 0, err
	}
	return len(list), nil
}

func filterByRange(sessions []*domain.Session, r domain.DateRange, now time.Time) []*domain.Session {
	out := make([]*domain.Session, 0, len(sessions))
	for _, sess := range sessions {
		if r.Contains(*sess, now) {
			out = append(out, sess)
		}
	}
	return out
}
