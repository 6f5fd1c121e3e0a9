package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/edpay/internal/db"
	"github.com/alexanderramin/edpay/internal/domain"
)

// SQLiteMentorRepo implements MentorRepo using a SQLite database.
type SQLiteMentorRepo struct {
	db db.DBTX
}

// NewSQLiteMentorRepo creates a new SQLiteMentorRepo.
func NewSQLiteMentorRepo(conn db.DBTX) *SQLiteMentorRepo {
	return &SQLiteMentorRepo{db: conn}
}

func (r *SQLiteMentorRepo) Create(ctx context.Context, m *domain.Mentor) error {
	m.CreatedAt = orNow(m.CreatedAt)
	query := `INSERT INTO mentors (id, name, email, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, m.ID, m.Name, m.Email, formatTime(m.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting mentor: %w", err)
	}
	return nil
}

func (r *SQLiteMentorRepo) GetByID(ctx context.Context, id string) (*domain.Mentor, error) {
	query := `SELECT id, name, email, created_at FROM mentors WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var m domain.Mentor
	var createdAt string
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("mentor %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning mentor: %w", err)
	}
	return populateMentor(&m, createdAt)
}

func (r *SQLiteMentorRepo) List(ctx context.Context) ([]*domain.Mentor, error) {
	query := `SELECT id, name, email, created_at FROM mentors ORDER BY created_at, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing mentors: %w", err)
	}
	defer rows.Close()

	var mentors []*domain.Mentor
	for rows.Next() {
		var m domain.Mentor
		var createdAt string
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning mentor row: %w", err)
		}
		mentor, err := populateMentor(&m, createdAt)
		if err != nil {
			return nil, err
		}
		mentors = append(mentors, mentor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mentors: %w", err)
	}
	return mentors, nil
}

func (r *SQLiteMentorRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM mentors`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting mentors: %w", err)
	}
	return n, nil
}

func populateMentor(m *domain.Mentor, createdAt string) (*domain.Mentor, error) {
	t, err := parseTime(createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing mentor created_at: %w", err)
	}
	m.CreatedAt = t
	return m, nil
}
