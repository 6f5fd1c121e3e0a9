package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/edpay/internal/db"
	"github.com/alexanderramin/edpay/internal/domain"
)

const receiptColumns = `id, mentor_id, mentor_name, generated_at, total_amount, status`

// SQLiteReceiptRepo implements ReceiptRepo using a SQLite database. Create
// writes several rows and should run inside a UnitOfWork.
type SQLiteReceiptRepo struct {
	db db.DBTX
}

// NewSQLiteReceiptRepo creates a new SQLiteReceiptRepo.
func NewSQLiteReceiptRepo(conn db.DBTX) *SQLiteReceiptRepo {
	return &SQLiteReceiptRepo{db: conn}
}

func (r *SQLiteReceiptRepo) Create(ctx context.Context, rc *domain.Receipt) error {
	if rc.Status == "" {
		rc.Status = domain.ReceiptPending
	}
	if !domain.ValidReceiptStatuses[rc.Status] {
		return fmt.Errorf("inserting receipt: invalid status %q", rc.Status)
	}
	rc.GeneratedAt = orNow(rc.GeneratedAt)

	query := `INSERT INTO receipts (` + receiptColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rc.ID,
		rc.MentorID,
		rc.MentorName,
		formatTime(rc.GeneratedAt),
		rc.TotalAmount,
		string(rc.Status),
	)
	if err != nil {
		return fmt.Errorf("inserting receipt: %w", err)
	}

	for i, sessionID := range rc.Sessions {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO receipt_sessions (receipt_id, position, session_id) VALUES (?, ?, ?)`,
			rc.ID, i, sessionID,
		)
		if err != nil {
			return fmt.Errorf("inserting receipt session %s: %w", sessionID, err)
		}
	}
	return nil
}

func (r *SQLiteReceiptRepo) GetByID(ctx context.Context, id string) (*domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	var rc domain.Receipt
	var generatedAt, status string
	err := row.Scan(&rc.ID, &rc.MentorID, &rc.MentorName, &generatedAt, &rc.TotalAmount, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("receipt %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning receipt: %w", err)
	}
	receipt, err := populateReceipt(&rc, generatedAt, status)
	if err != nil {
		return nil, err
	}
	if err := r.loadManifests(ctx, receipt); err != nil {
		return nil, err
	}
	return receipt, nil
}

func (r *SQLiteReceiptRepo) List(ctx context.Context) ([]*domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts ORDER BY seq`
	return r.query(ctx, "listing receipts", query)
}

func (r *SQLiteReceiptRepo) ListByMentor(ctx context.Context, mentorID string) ([]*domain.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE mentor_id = ? ORDER BY seq`
	return r.query(ctx, "listing receipts by mentor", query, mentorID)
}

func (r *SQLiteReceiptRepo) query(ctx context.Context, op, query string, args ...any) ([]*domain.Receipt, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var receipts []*domain.Receipt
	for rows.Next() {
		var rc domain.Receipt
		var generatedAt, status string
		if err := rows.Scan(&rc.ID, &rc.MentorID, &rc.MentorName, &generatedAt, &rc.TotalAmount, &status); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning receipt row: %w", err)
		}
		receipt, err := populateReceipt(&rc, generatedAt, status)
		if err != nil {
			rows.Close()
			return nil, err
		}
		receipts = append(receipts, receipt)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterating receipts: %w", err)
	}
	// Release the connection before the manifest queries; in-memory
	// databases run on a single connection.
	rows.Close()

	if err := r.loadManifests(ctx, receipts...); err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r *SQLiteReceiptRepo) loadManifests(ctx context.Context, receipts ...*domain.Receipt) error {
	for _, rc := range receipts {
		rows, err := r.db.QueryContext(ctx,
			`SELECT session_id FROM receipt_sessions WHERE receipt_id = ? ORDER BY position`, rc.ID)
		if err != nil {
			return fmt.Errorf("loading receipt sessions: %w", err)
		}
		rc.Sessions = []string{}
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return fmt.Errorf("scanning receipt session: %w", err)
			}
			rc.Sessions = append(rc.Sessions, id)
		}
		err = rows.Err()
		rows.Close()
		if err != nil {
			return fmt.Errorf("iterating receipt sessions: %w", err)
		}
	}
	return nil
}

func populateReceipt(rc *domain.Receipt, generatedAt, status string) (*domain.Receipt, error) {
	t, err := parseTime(generatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing receipt generated_at: %w", err)
	}
	rc.GeneratedAt = t
	rc.Status = domain.ReceiptStatus(status)
	return rc, nil
}
