package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/edpay/internal/db"
	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/alexanderramin/edpay/internal/payout"
	"github.com/alexanderramin/edpay/internal/repository"
	"github.com/alexanderramin/edpay/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

type testEnv struct {
	db        *sql.DB
	mentors   repository.MentorRepo
	sessions  repository.SessionRepo
	receipts  repository.ReceiptRepo
	authState repository.AuthStateRepo
	uow       db.UnitOfWork
	clock     payout.Clock
	observer  *recordingObserver
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testEnv{
		db:        database,
		mentors:   repository.NewSQLiteMentorRepo(database),
		sessions:  repository.NewSQLiteSessionRepo(database),
		receipts:  repository.NewSQLiteReceiptRepo(database),
		authState: repository.NewSQLiteAuthStateRepo(database),
		uow:       testutil.NewTestUoW(database),
		clock:     payout.FixedClock{At: testNow},
		observer:  &recordingObserver{},
	}
}

func (e *testEnv) mentor(t *testing.T, id, name string) *domain.Mentor {
	t.Helper()
	m := testutil.NewTestMentor(name, testutil.WithMentorID(id))
	require.NoError(t, e.mentors.Create(context.Background(), m))
	return m
}

func (e *testEnv) session(t *testing.T, m *domain.Mentor, opts ...testutil.SessionOption) *domain.Session {
	t.Helper()
	s := testutil.NewTestSession(m, opts...)
	require.NoError(t, e.sessions.Create(context.Background(), s))
	return s
}

func daysAgo(n int) testutil.SessionOption {
	return testutil.WithDate(testNow.AddDate(0, 0, -n))
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last(t *testing.T) UseCaseEvent {
	t.Helper()
	o.mu.Lock()
	defer o.mu.Unlock()
	require.NotEmpty(t, o.events, "no use case observed")
	return o.events[len(o.events)-1]
}
