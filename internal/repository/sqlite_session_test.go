package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/edpay/internal/domain"
	"github.com/alexanderramin/edpay/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	m := testutil.NewTestMentor("Jane Smith")

	s := testutil.NewTestSession(m,
		testutil.WithRawDate("2025-03-14T09:30:00.000Z"),
		testutil.WithType("Workshop"),
		testutil.WithDuration(90),
		testutil.WithRate(5000),
	)
	require.NoError(t, repo.Create(ctx, s))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.MentorID)
	assert.Equal(t, "Jane Smith", got.MentorName)
	assert.Equal(t, "2025-03-14T09:30:00.000Z", got.Date, "dates round-trip verbatim")
	assert.Equal(t, "Workshop", got.Type)
	assert.Equal(t, 90, got.Duration)
	assert.Equal(t, 5000, got.RatePerHour)
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_ListPreservesInsertionOrder(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	m := testutil.NewTestMentor("Jane")

	// Dates deliberately out of order.
	ids := []string{"s3", "s1", "s2"}
	dates := []string{"2025-03-03", "2025-03-01", "2025-03-02"}
	for i := range ids {
		require.NoError(t, repo.Create(ctx, testutil.NewTestSession(m,
			testutil.WithSessionID(ids[i]), testutil.WithRawDate(dates[i]))))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, ids, sessionIDs(list))
}

func TestSessionRepo_ListByMentor(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	jane := testutil.NewTestMentor("Jane")
	john := testutil.NewTestMentor("John")

	require.NoError(t, repo.Create(ctx, testutil.NewTestSession(jane, testutil.WithSessionID("a"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSession(john, testutil.WithSessionID("b"))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestSession(jane, testutil.WithSessionID("c"))))

	list, err := repo.ListByMentor(ctx, jane.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, sessionIDs(list))

	list, err = repo.ListByMentor(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSessionRepo_StoresImportedRowsWithoutMentor(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	s := &domain.Session{ID: "orphan", Duration: 60, RatePerHour: 4000, Type: domain.DefaultSessionType}
	require.NoError(t, repo.Create(ctx, s))

	got, err := repo.GetByID(ctx, "orphan")
	require.NoError(t, err)
	assert.Empty(t, got.MentorID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestSessionRepo_Delete(t *testing.T) {
	repo := NewSQLiteSessionRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	s := testutil.NewTestSession(testutil.NewTestMentor("Jane"))
	require.NoError(t, repo.Create(ctx, s))

	require.NoError(t, repo.Delete(ctx, s.ID))

	_, err := repo.GetByID(ctx, s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, s.ID), ErrNotFound)
}

func sessionIDs(list []*domain.Session) []string {
	ids := make([]string, len(list))
	for i, s := range list {
		ids[i] = s.ID
	}
	return ids
}
