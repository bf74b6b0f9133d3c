package history

import (
	"database/sql"
	"fmt"
	"time"
)

// Cycle is one recorded refresh cycle.
type Cycle struct {
	CycleID    int64
	Source     string
	EntryCount int
	TableSize  int
	TookMS     int64
	Error      string
	CreatedAt  time.Time
}

// LogCycle records the outcome of a refresh cycle. Satisfies
// refresh.CycleLog.
func (db *DB) LogCycle(source string, entryCount, tableSize int, took time.Duration, runErr error) error {
	var errText sql.NullString
	if runErr != nil {
		errText = sql.NullString{String: runErr.Error(), Valid: true}
	}

	_, err := db.Exec(`
		INSERT INTO refresh_cycles (source, entry_count, table_size, took_ms, error)
		VALUES (?, ?, ?, ?, ?)
	`, source, entryCount, tableSize, took.Milliseconds(), errText)
	if err != nil {
		return fmt.Errorf("failed to insert refresh cycle: %w", err)
	}
	return nil
}

// ListCycles returns the most recent cycles, newest first.
func (db *DB) ListCycles(limit int) ([]Cycle, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.Query(`
		SELECT cycle_id, source, entry_count, table_size, took_ms, error, created_at
		FROM refresh_cycles
		ORDER BY cycle_id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list refresh cycles: %w", err)
	}
	defer rows.Close()

	var cycles []Cycle
	for rows.Next() {
		var c Cycle
		var errText sql.NullString
		if err := rows.Scan(&c.CycleID, &c.Source, &c.EntryCount, &c.TableSize, &c.TookMS, &errText, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan refresh cycle: %w", err)
		}
		c.Error = errText.String
		cycles = append(cycles, c)
	}
	return cycles, rows.Err()
}
