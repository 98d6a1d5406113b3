package repositories

import (
	"context"
	"database/sql"
	"eld-trip-planner/internal/platform/obs"
	"eld-trip-planner/internal/ports"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// SQLTripHistory is a SQL-backed TripHistory. Queries are written with "?"
// placeholders and rebound to "$n" for PostgreSQL.
type SQLTripHistory struct {
	DB      *sql.DB
	dialect string
}

func NewSQLTripHistory(db *sql.DB, dialect string) *SQLTripHistory {
	return &SQLTripHistory{DB: db, dialect: dialect}
}

// Store one submission outcome.
func (s *SQLTripHistory) Record(ctx context.Context, e ports.HistoryEntry) (err error) {
	defer obs.Time(ctx, "history.Record")(&err)

	if s.DB == nil {
		return errors.New("trip history: db is nil")
	}

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("record trip history: id must not be empty")
	}

	var cycle sql.NullFloat64
	if e.CurrentCycleUsed != nil {
		cycle = sql.NullFloat64{Float64: *e.CurrentCycleUsed, Valid: true}
	}

	q := s.rebind(`
	INSERT INTO trip_history (
		id,
		session_id,
		created_at,
		current_location,
		pickup_location,
		dropoff_location,
		current_cycle_used,
		succeeded,
		message,
		total_distance,
		total_trip_time,
		compliant
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)

	_, err = s.DB.ExecContext(ctx, q,
		e.ID,
		e.SessionID,
		e.CreatedAt.UnixMilli(),
		e.CurrentLocation,
		e.PickupLocation,
		e.DropoffLocation,
		cycle,
		e.Succeeded,
		e.Message,
		e.TotalDistance,
		e.TotalTripTime,
		e.Compliant,
	)
	if err != nil {
		return fmt.Errorf("record trip history id=%q: %w", e.ID, err)
	}

	return nil
}

// Return the most recent submissions, newest first.
func (s *SQLTripHistory) Recent(ctx context.Context, limit int) (_ []ports.HistoryEntry, err error) {
	defer obs.Time(ctx, "history.Recent")(&err)

	if s.DB == nil {
		return nil, errors.New("trip history: db is nil")
	}

	if limit <= 0 {
		return []ports.HistoryEntry{}, nil
	}

	q := s.rebind(`
	SELECT
		id,
		session_id,
		created_at,
		current_location,
		pickup_location,
		dropoff_location,
		current_cycle_used,
		succeeded,
		message,
		total_distance,
		total_trip_time,
		compliant
	FROM trip_history
	ORDER BY created_at DESC, id
	LIMIT ?;
	`)

	rows, err := s.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("list trip history: query trip_history table: %w", err)
	}
	defer rows.Close()

	out := make([]ports.HistoryEntry, 0, limit)
	for rows.Next() {
		var e ports.HistoryEntry
		var createdAt int64
		var cycle sql.NullFloat64
		if err := rows.Scan(
			&e.ID,
			&e.SessionID,
			&createdAt,
			&e.CurrentLocation,
			&e.PickupLocation,
			&e.DropoffLocation,
			&cycle,
			&e.Succeeded,
			&e.Message,
			&e.TotalDistance,
			&e.TotalTripTime,
			&e.Compliant,
		); err != nil {
			return nil, fmt.Errorf("list trip history: scan rows: %w", err)
		}

		e.CreatedAt = time.UnixMilli(createdAt).UTC()
		if cycle.Valid {
			v := cycle.Float64
			e.CurrentCycleUsed = &v
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trip history: row iteration: %w", err)
	}

	return out, nil
}

// rebind rewrites "?" placeholders as "$1", "$2", ... for PostgreSQL.
func (s *SQLTripHistory) rebind(q string) string {
	if s.dialect != "postgres" {
		return q
	}

	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
