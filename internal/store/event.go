package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"
)

// sequenceCounter manages the global monotonic sequence number shared by
// reports and LLM events. Each kind lives in its own table, so per-table
// auto-increment IDs can't establish cross-table ordering; this counter
// assigns a single increasing sequence to every row regardless of table.
//
// The mutex serializes within the process; the RETURNING clause makes the
// increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// rangeClause appends the QueryOpts filters to a WHERE clause.
func rangeClause(opts QueryOpts) (string, []any) {
	var (
		where string
		args  []any
	)
	add := func(cond string, arg any) {
		if where == "" {
			where = " WHERE " + cond
		} else {
			where += " AND " + cond
		}
		args = append(args, arg)
	}
	if opts.After > 0 {
		add("sequence > ?", opts.After)
	}
	if opts.Before > 0 {
		add("sequence < ?", opts.Before)
	}
	if !opts.From.IsZero() {
		add("timestamp >= ?", opts.From.UnixMilli())
	}
	if !opts.To.IsZero() {
		add("timestamp <= ?", opts.To.UnixMilli())
	}

	order := " ORDER BY sequence DESC"
	if opts.Limit > 0 {
		order += " LIMIT ?"
		args = append(args, opts.Limit)
	}
	return where + order, args
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
