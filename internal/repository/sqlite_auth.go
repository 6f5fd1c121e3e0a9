package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/edpay/internal/db"
	"github.com/alexanderramin/edpay/internal/domain"
)

// SQLiteAuthStateRepo persists the single signed-in identity.
type SQLiteAuthStateRepo struct {
	db db.DBTX
}

// NewSQLiteAuthStateRepo creates a new SQLiteAuthStateRepo.
func NewSQLiteAuthStateRepo(conn db.DBTX) *SQLiteAuthStateRepo {
	return &SQLiteAuthStateRepo{db: conn}
}

// Get returns the signed-in identity, or ErrNotFound when nobody is signed in.
func (r *SQLiteAuthStateRepo) Get(ctx context.Context) (*domain.Identity, error) {
	row := r.db.QueryRowContext(ctx, `SELECT role, email, signed_in_at FROM auth_state WHERE id = 1`)

	var id domain.Identity
	var role, signedInAt string
	if err := row.Scan(&role, &id.Email, &signedInAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("auth state: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning auth state: %w", err)
	}
	t, err := parseTime(signedInAt)
	if err != nil {
		return nil, fmt.Errorf("parsing signed_in_at: %w", err)
	}
	id.Role = domain.Role(role)
	id.SignedInAt = t
	return &id, nil
}

func (r *SQLiteAuthStateRepo) Save(ctx context.Context, id *domain.Identity) error {
	id.SignedInAt = orNow(id.SignedInAt)
	query := `INSERT OR REPLACE INTO auth_state (id, role, email, signed_in_at) VALUES (1, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, string(id.Role), id.Email, formatTime(id.SignedInAt)); err != nil {
		return fmt.Errorf("saving auth state: %w", err)
	}
	return nil
}

func (r *SQLiteAuthStateRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM auth_state`); err != nil {
		return fmt.Errorf("clearing auth state: %w", err)
	}
	return nil
}
