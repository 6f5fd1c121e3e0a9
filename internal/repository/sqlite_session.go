package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/edpay/internal/db"
	"github.com/alexanderramin/edpay/internal/domain"
)

const sessionColumns = `id, mentor_id, mentor_name, date, type, duration, rate_per_hour, created_at`

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	s.CreatedAt = orNow(s.CreatedAt)
	query := `INSERT INTO sessions (` + sessionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID,
		s.MentorID,
		s.MentorName,
		s.Date,
		s.Type,
		s.Duration,
		s.RatePerHour,
		formatTime(s.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var s domain.Session
	var createdAt string
	err := row.Scan(&s.ID, &s.MentorID, &s.MentorName, &s.Date, &s.Type, &s.Duration, &s.RatePerHour, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}
	return populateSession(&s, createdAt)
}

func (r *SQLiteSessionRepo) List(ctx context.Context) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (r *SQLiteSessionRepo) ListByMentor(ctx context.Context, mentorID string) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE mentor_id = ? ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, mentorID)
	if err != nil {
		return nil, fmt.Errorf("listing sessions by mentor: %w", err)
	}
	defer rows.Close()
	return scanSessions(rows)
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return nil
}

func scanSessions(rows *sql.Rows) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for rows.Next() {
		var s domain.Session
		var createdAt string
		err := rows.Scan(&s.ID, &s.MentorID, &s.MentorName, &s.Date, &s.Type, &s.Duration, &s.RatePerHour, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		session, err := populateSession(&s, createdAt)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

func populateSession(s *domain.Session, createdAt string) (*domain.Session, error) {
	t, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing session created_at: %w", err)
	}
	s.CreatedAt = t
	return s, nil
}
