package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/edpay/internal/contract"
	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/alexanderramin/edpay/internal/payout"
	"github.com/alexanderramin/edpay/internal/repository"
	"github.com/alexanderramin/edpay/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReceiptService(env *testEnv, rates *payout.Config) ReceiptService {
	builder := payout.NewReceiptBuilder(env.clock, &payout.SequenceIDs{Prefix: "rcpt"})
	return NewReceiptService(env.receipts, env.sessions, env.mentors, env.uow, builder, rates, env.observer)
}

func TestGenerateReceipt_Guards(t *testing.T) {
	env := newTestEnv(t)
	env.mentor(t, "mentor-1", "Jane Smith")
	// Sessions exist for a mentor with no record.
	env.session(t, &domain.Mentor{ID: "orphan", Name: "Orphan"})
	svc := newReceiptService(env, nil)
	ctx := context.Background()

	_, err := svc.Generate(ctx, contract.GenerateReceiptRequest{})
	assert.ErrorIs(t, err, ErrNoMentorSelected)

	_, err = svc.Generate(ctx, contract.GenerateReceiptRequest{MentorID: "mentor-1"})
	assert.ErrorIs(t, err, ErrNoSessions)

	_, err = svc.Generate(ctx, contract.GenerateReceiptRequest{MentorID: "orphan"})
	assert.ErrorIs(t, err, ErrMentorNotFound)

	// An unknown mentor with no sessions reports the missing sessions first.
	_, err = svc.Generate(ctx, contract.GenerateReceiptRequest{MentorID: "ghost"})
	assert.ErrorIs(t, err, ErrNoSessions)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGenerateReceipt_DefaultRates(t *testing.T) {
	env := newTestEnv(t)
	m := env.mentor(t, "mentor-1", "Jane Smith")
	s1 := env.session(t, m, testutil.WithSessionID("s1"))
	s2 := env.session(t, m, testutil.WithSessionID("s2"), testutil.WithDuration(90), testutil.WithRate(4000))
	svc := newReceiptService(env, nil)

	r, err := svc.Generate(context.Background(), contract.GenerateReceiptRequest{MentorID: m.ID})
	require.NoError(t, err)

	// base 4000 + 6000 = 10000; fee 500; GST 1710; payout 7790.
	assert.Equal(t, 7790, r.TotalAmount)
	assert.Equal(t, "rcpt-1", r.ID)
	assert.Equal(t, "Jane Smith", r.MentorName)
	assert.Equal(t, domain.ReceiptPending, r.Status)
	assert.Equal(t, testNow, r.GeneratedAt)
	assert.Equal(t, []string{s1.ID, s2.ID}, r.Sessions)

	stored, err := svc.GetByID(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, 7790, stored.TotalAmount)
	assert.Equal(t, r.Sessions, stored.Sessions)

	ev := env.observer.last(t)
	assert.Equal(t, "generate-receipt", ev.Name)
	assert.Equal(t, 7790, ev.Fields["total"])
}

func TestGenerateReceipt_AmountResolution(t *testing.T) {
	tests := []struct {
		name  string
		rates *payout.Config
		req   contract.GenerateReceiptRequest
		want  int
	}{
		{"explicit amount wins", payout.NewConfig(50, 50), contract.GenerateReceiptRequest{Amount: ptrInt(1234)}, 1234},
		{"explicit zero is kept", nil, contract.GenerateReceiptRequest{Amount: ptrInt(0)}, 0},
		{"charges after tax", nil, contract.GenerateReceiptRequest{
			Charges: []domain.AdditionalCharge{{Name: "Processing", Amount: 50}, {Name: "Courier", Amount: 25}},
		}, 3041},
		{"configured rates", payout.NewConfig(10, 0), contract.GenerateReceiptRequest{}, 3600},
		{"charges can push the total negative", nil, contract.GenerateReceiptRequest{
			Charges: []domain.AdditionalCharge{{Name: "Penalty", Amount: 5000}},
		}, -1884},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			m := env.mentor(t, "mentor-1", "Jane")
			env.session(t, m)
			svc := newReceiptService(env, tt.rates)

			req := tt.req
			req.MentorID = m.ID
			r, err := svc.Generate(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.TotalAmount)
		})
	}
}

func TestGenerateReceipt_IsASnapshot(t *testing.T) {
	env := newTestEnv(t)
	m := env.mentor(t, "mentor-1", "Jane")
	s := env.session(t, m)
	svc := newReceiptService(env, nil)
	ctx := context.Background()

	r, err := svc.Generate(ctx, contract.GenerateReceiptRequest{MentorID: m.ID})
	require.NoError(t, err)

	require.NoError(t, env.sessions.Delete(ctx, s.ID))
	env.session(t, m, testutil.WithDuration(600))

	stored, err := svc.GetByID(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, 3116, stored.TotalAmount)
	assert.Equal(t, []string{s.ID}, stored.Sessions)
}

func TestGenerateReceipt_RollsBackOnFailure(t *testing.T) {
	env := newTestEnv(t)
	m := env.mentor(t, "mentor-1", "Jane")
	env.session(t, m)
	env.session(t, m)
	boom := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: env.db, FailOn: 3, Err: boom}
	svc := NewReceiptService(env.receipts, env.sessions, env.mentors, uow, nil, nil)

	_, err := svc.Generate(context.Background(), contract.GenerateReceiptRequest{MentorID: m.ID})
	require.ErrorIs(t, err, boom)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPreview_DoesNotPersist(t *testing.T) {
	env := newTestEnv(t)
	m := env.mentor(t, "mentor-1", "Jane")
	env.session(t, m)
	svc := newReceiptService(env, nil)
	ctx := context.Background()

	p, err := svc.Preview(ctx, m.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, 4000.0, p.Breakdown.Base)
	assert.Equal(t, 200.0, p.Breakdown.PlatformFee)
	assert.Equal(t, 684.0, p.Breakdown.GST)
	assert.Equal(t, 3116, p.Breakdown.Total)
	assert.Len(t, p.Sessions, 1)

	custom, err := svc.Preview(ctx, m.ID, payout.NewConfig(0, 0, domain.AdditionalCharge{Name: "x", Amount: 100}))
	require.NoError(t, err)
	assert.Equal(t, 3900, custom.Breakdown.Total)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestReceiptListByMentor(t *testing.T) {
	env := newTestEnv(t)
	jane := env.mentor(t, "mentor-1", "Jane")
	john := env.mentor(t, "mentor-2", "John")
	env.session(t, jane)
	env.session(t, john)
	svc := newReceiptService(env, nil)
	ctx := context.Background()

	_, err := svc.Generate(ctx, contract.GenerateReceiptRequest{MentorID: jane.ID})
	require.NoError(t, err)
	_, err = svc.Generate(ctx, contract.GenerateReceiptRequest{MentorID: john.ID})
	require.NoError(t, err)

	janes, err := svc.ListByMentor(ctx, jane.ID)
	require.NoError(t, err)
	require.Len(t, janes, 1)
	assert.Equal(t, "rcpt-1", janes[0].ID)

	_, err = svc.GetByID(ctx, "rcpt-99")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func ptrInt(v int) *int { return &v }
