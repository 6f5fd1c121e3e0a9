package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS mentors (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	// seq preserves insertion order, which is the order sessions are listed,
	// grouped and written into receipt manifests.
	`CREATE TABLE IF NOT EXISTS sessions (
		seq           INTEGER PRIMARY KEY AUTOINCREMENT,
		id            TEXT NOT NULL UNIQUE,
		mentor_id     TEXT NOT NULL DEFAULT '',
		mentor_name   TEXT NOT NULL DEFAULT '',
		date          TEXT NOT NULL DEFAULT '',
		type          TEXT NOT NULL DEFAULT '',
		duration      INTEGER NOT NULL,
		rate_per_hour INTEGER NOT NULL,
		created_at    TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_mentor ON sessions(mentor_id)`,

	`CREATE TABLE IF NOT EXISTS receipts (
		seq          INTEGER PRIMARY KEY AUTOINCREMENT,
		id           TEXT NOT NULL UNIQUE,
		mentor_id    TEXT NOT NULL,
		mentor_name  TEXT NOT NULL DEFAULT '',
		generated_at TEXT NOT NULL,
		total_amount INTEGER NOT NULL,
		status       TEXT NOT NULL DEFAULT 'Pending'
		             CHECK(status IN ('Pending','Paid','Under Review'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_receipts_mentor ON receipts(mentor_id)`,

	// session_id has no foreign key. Receipts outlive the sessions they cover.
	`CREATE TABLE IF NOT EXISTS receipt_sessions (
		receipt_id TEXT NOT NULL REFERENCES receipts(id) ON DELETE CASCADE,
		position   INTEGER NOT NULL,
		session_id TEXT NOT NULL,
		PRIMARY KEY (receipt_id, position)
	)`,

	`CREATE TABLE IF NOT EXISTS auth_state (
		id           INTEGER PRIMARY KEY CHECK(id = 1),
		role         TEXT NOT NULL CHECK(role IN ('admin','mentor')),
		email        TEXT NOT NULL,
		signed_in_at TEXT NOT NULL
	)`,
}

// Migrate applies every schema statement. Statements are idempotent, so the
// full list is replayed on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
