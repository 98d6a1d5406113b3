package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

const createHistoryColumns = `
		id VARCHAR(36) PRIMARY KEY,
		session_id VARCHAR(36) NOT NULL,
		created_at BIGINT NOT NULL,
		current_location TEXT NOT NULL,
		pickup_location TEXT NOT NULL,
		dropoff_location TEXT NOT NULL,
		current_cycle_used DOUBLE PRECISION,
		succeeded BOOLEAN NOT NULL,
		message TEXT NOT NULL,
		total_distance DOUBLE PRECISION NOT NULL,
		total_trip_time DOUBLE PRECISION NOT NULL,
		compliant BOOLEAN NOT NULL`

// Initialize the trip history schema for the given dialect
// ("sqlite", "postgres" or "mysql").
func InitSchema(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	var statements []string
	switch dialect {
	case "sqlite", "postgres":
		statements = []string{
			`CREATE TABLE IF NOT EXISTS trip_history (` + createHistoryColumns + `
	);`,
			`CREATE INDEX IF NOT EXISTS idx_trip_history_created_at
	ON trip_history(created_at);`,
		}
	case "mysql":
		// MySQL has no CREATE INDEX IF NOT EXISTS; declare it inline.
		statements = []string{
			`CREATE TABLE IF NOT EXISTS trip_history (` + createHistoryColumns + `,
		INDEX idx_trip_history_created_at (created_at)
	);`,
		}
	default:
		return fmt.Errorf("init schema: unsupported dialect %q", dialect)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
