package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/alexanderramin/edpay/internal/payout"
	"github.com/alexanderramin/edpay/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSessionService(env *testEnv) SessionService {
	return NewSessionService(env.sessions, env.mentors, env.uow, env.clock, &payout.SequenceIDs{Prefix: "sess"}, env.observer)
}

func TestAddSession_FillsDerivedFields(t *testing.T) {
	env := newTestEnv(t)
	env.mentor(t, "mentor-1", "Jane Smith")
	svc := newSessionService(env)

	s := &domain.Session{MentorID: "mentor-1", MentorName: "Typo Name", Duration: 45, RatePerHour: 4000}
	require.NoError(t, svc.Add(context.Background(), s))

	got, err := svc.GetByID(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", got.MentorName, "name comes from the mentor record")
	assert.Equal(t, domain.DefaultSessionType, got.Type)
	assert.Equal(t, "2025-03-14T09:30:00.000Z", got.Date)
	assert.Equal(t, 45, got.Duration)

	ev := env.observer.last(t)
	assert.Equal(t, "add-session", ev.Name)
	assert.True(t, ev.Success)
}

func TestAddSession_KeepsExplicitValues(t *testing.T) {
	env := newTestEnv(t)
	env.mentor(t, "mentor-1", "Jane Smith")
	svc := newSessionService(env)

	s := &domain.Session{ID: "mine", MentorID: "mentor-1", Date: "2025-01-02", Type: "Evaluation", Duration: 30, RatePerHour: 3000}
	require.NoError(t, svc.Add(context.Background(), s))

	got, err := svc.GetByID(context.Background(), "mine")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-02", got.Date)
	assert.Equal(t, "Evaluation", got.Type)
}

func TestAddSession_Rejections(t *testing.T) {
	env := newTestEnv(t)
	env.mentor(t, "mentor-1", "Jane Smith")
	svc := newSessionService(env)
	ctx := context.Background()

	tests := []struct {
		name    string
		session domain.Session
		wantErr error
	}{
		{"no mentor", domain.Session{Duration: 60, RatePerHour: 4000}, domain.ErrInvalidSession},
		{"zero duration", domain.Session{MentorID: "mentor-1", RatePerHour: 4000}, domain.ErrInvalidSession},
		{"negative rate", domain.Session{MentorID: "mentor-1", Duration: 60, RatePerHour: -1}, domain.ErrInvalidSession},
		{"unknown mentor", domain.Session{MentorID: "ghost", Duration: 60, RatePerHour: 4000}, ErrMentorNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.session
			assert.ErrorIs(t, svc.Add(ctx, &s), tt.wantErr)
		})
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.False(t, env.observer.last(t).Success)
}

func TestImport_StoresEveryRowInOrder(t *testing.T) {
	env := newTestEnv(t)
	env.mentor(t, "mentor-1", "Jane Smith")
	svc := newSessionService(env)

	csv := "mentorId,mentorName,date,type,duration,ratePerHour\n" +
		"mentor-1,Jane Smith,2025-03-01,Evaluation,30,3000\n" +
		"mentor-9,Ghost,2025-03-02,,abc,\n" +
		"mentor-1,Jane S.,2025-03-03,Live Session,90,4000\n" +
		"mentor-9,Ghost,2025-03-04,Live Session,60,4000"

	res, err := svc.Import(context.Background(), strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, res.Sessions, 4)
	assert.Equal(t, []string{"mentor-9"}, res.UnknownMentors)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, []string{"sess-1", "sess-2", "sess-3", "sess-4"}, ids(list))
	assert.Equal(t, 60, list[1].Duration, "unparsable duration falls back")
	assert.Equal(t, 4000, list[1].RatePerHour)
	assert.Equal(t, domain.DefaultSessionType, list[1].Type)
	assert.Equal(t, "Jane S.", list[2].MentorName, "imported names are kept as written")

	ev := env.observer.last(t)
	assert.Equal(t, "import-sessions", ev.Name)
	assert.Equal(t, 4, ev.Fields["rows"])
}

func TestImport_HeaderOnly(t *testing.T) {
	env := newTestEnv(t)
	svc := newSessionService(env)

	res, err := svc.Import(context.Background(), strings.NewReader("mentorId,duration\n"))
	require.NoError(t, err)
	assert.Empty(t, res.Sessions)
	assert.Empty(t, res.UnknownMentors)
}

func TestImport_RollsBackOnFailure(t *testing.T) {
	env := newTestEnv(t)
	boom := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: env.db, FailOn: 2, Err: boom}
	svc := NewSessionService(env.sessions, env.mentors, uow, env.clock, nil)

	csv := "mentorId,duration\nm1,60\nm1,30\nm1,15"
	_, err := svc.Import(context.Background(), strings.NewReader(csv))
	require.ErrorIs(t, err, boom)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list, "a failed import stores nothing")
}

func TestListInRange(t *testing.T) {
	env := newTestEnv(t)
	m := env.mentor(t, "mentor-1", "Jane")
	env.session(t, m, testutil.WithSessionID("d3"), daysAgo(3))
	env.session(t, m, testutil.WithSessionID("d7"), daysAgo(7))
	env.session(t, m, testutil.WithSessionID("d10"), daysAgo(10))
	env.session(t, m, testutil.WithSessionID("d20"), daysAgo(20))
	env.session(t, m, testutil.WithSessionID("d40"), daysAgo(40))
	env.session(t, m, testutil.WithSessionID("bad"), testutil.WithRawDate("someday"))
	svc := newSessionService(env)

	tests := []struct {
		rng  domain.DateRange
		want []string
	}{
		{domain.RangeLast7, []string{"d3", "d7"}},
		{domain.RangeLast15, []string{"d3", "d7", "d10"}},
		{domain.RangeLast30, []string{"d3", "d7", "d10", "d20"}},
		{domain.RangeAll, []string{"d3", "d7", "d10", "d20", "d40", "bad"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.rng), func(t *testing.T) {
			list, err := svc.ListInRange(context.Background(), tt.rng, testNow)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(list))
		})
	}
}

func TestExport_WritesRowsInRange(t *testing.T) {
	env := newTestEnv(t)
	m := env.mentor(t, "mentor-1", "Jane Smith")
	env.session(t, m, testutil.WithRawDate("2025-03-10"), testutil.WithDuration(45), testutil.WithRate(4000))
	env.session(t, m, testutil.WithRawDate("2024-01-01"))
	svc := newSessionService(env)

	var buf bytes.Buffer
	n, err := svc.Export(context.Background(), &buf, domain.RangeLast7, testNow)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t,
		"Date,Mentor,Type,Duration,Rate,Amount\n2025-03-10,Jane Smith,Live Session,45,4000,3000\n",
		buf.String())
}

func TestDeleteSession(t *testing.T) {
	env := newTestEnv(t)
	s := env.session(t, env.mentor(t, "mentor-1", "Jane"))
	svc := newSessionService(env)

	require.NoError(t, svc.Delete(context.Background(), s.ID))
	assert.Error(t, svc.Delete(context.Background(), s.ID))
	assert.Equal(t, "delete-session", env.observer.last(t).Name)
}

func ids(list []*domain.Session) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.ID
	}
	return out
}
