package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/fitcheck/internal/scoring"
)

// reportRepo implements ReportRepo with raw SQL and the global sequence counter.
type reportRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

const reportColumns = `id, sequence, timestamp, respondent, answered, result`

func (r *reportRepo) Save(ctx context.Context, rep *Report) error {
	if rep.ID == "" {
		return errors.New("save report: id is required")
	}
	if rep.Result == nil {
		return errors.New("save report: result is required")
	}
	if rep.Timestamp.IsZero() {
		rep.Timestamp = time.Now().UTC()
	}

	body, err := json.Marshal(rep.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO reports (id, sequence, timestamp, respondent, answered,
			overall_score, confidence_score, recommendation, result)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rep.ID, seqNum, rep.Timestamp.UnixMilli(), rep.Respondent, rep.Answered,
		rep.Result.OverallScore, rep.Result.ConfidenceScore, string(rep.Result.Recommendation),
		string(body),
	)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	rep.Sequence = seqNum
	return nil
}

func (r *reportRepo) Get(ctx context.Context, id string) (*Report, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+reportColumns+` FROM reports WHERE id = ? OR id LIKE ? ESCAPE '\' ORDER BY id = ? DESC, sequence DESC LIMIT 2`,
		id, escapeLike(id)+"%", id,
	)
	if err != nil {
		return nil, fmt.Errorf("query report: %w", err)
	}
	reports, err := scanReports(rows)
	if err != nil {
		return nil, err
	}
	switch {
	case len(reports) == 0:
		return nil, nil
	case reports[0].ID == id, len(reports) == 1:
		return &reports[0], nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrAmbiguousID, id)
	}
}

func (r *reportRepo) Latest(ctx context.Context) (*Report, error) {
	reports, err := r.List(ctx, QueryOpts{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(reports) == 0 {
		return nil, nil
	}
	return &reports[0], nil
}

func (r *reportRepo) List(ctx context.Context, opts QueryOpts) ([]Report, error) {
	clause, args := rangeClause(opts)
	rows, err := r.db.QueryContext(ctx, `SELECT `+reportColumns+` FROM reports`+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	return scanReports(rows)
}

func (r *reportRepo) Prune(ctx context.Context, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM reports WHERE sequence NOT IN (
			SELECT sequence FROM reports ORDER BY sequence DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, fmt.Errorf("prune reports: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (r *reportRepo) DeleteAll(ctx context.Context) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reports`)
	if err != nil {
		return 0, fmt.Errorf("delete reports: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func scanReports(rows *sql.Rows) ([]Report, error) {
	defer rows.Close()

	var out []Report
	for rows.Next() {
		var (
			rep  Report
			ts   int64
			body string
		)
		if err := rows.Scan(&rep.ID, &rep.Sequence, &ts, &rep.Respondent, &rep.Answered, &body); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		rep.Timestamp = fromMillis(ts)
		rep.Result = &scoring.Result{}
		if err := json.Unmarshal([]byte(body), rep.Result); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", rep.ID, err)
		}
		out = append(out, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}
	return out, nil
}

// escapeLike makes s match literally inside a LIKE pattern with ESCAPE '\'.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
