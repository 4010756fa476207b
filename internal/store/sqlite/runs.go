package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"recall/internal/store"
)

// LogRun appends one directive run record. Every call is an insert —
// past runs are never updated, so corrections are made by logging a new
// run and the full history stays intact. A terminal status stamps
// ended_at; a run logged as started leaves it null.
func (c *Client) LogRun(ctx context.Context, run store.RunInput) (int64, error) {
	if strings.TrimSpace(run.Directive) == "" {
		return 0, fmt.Errorf("%w: directive name must not be empty", store.ErrValidation)
	}
	status, err := store.ParseRunStatus(string(run.Status))
	if err != nil {
		return 0, err
	}

	now := formatTime(time.Now())
	var ended any
	if status.Terminal() {
		ended = now
	}

	result, err := c.db.ExecContext(ctx, `
	INSERT INTO directive_runs
		(directive_name, started_at, ended_at, status, error_message, notes, input_summary, output_summary)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.Directive, now, ended, string(status),
		nullable(run.ErrorMessage), nullable(run.Notes),
		nullable(run.InputSummary), nullable(run.OutputSummary),
	)
	if err != nil {
		return 0, storageErr("inserting directive run", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, storageErr("reading run id", err)
	}

	return id, nil
}

// GetRuns returns run history most-recent-first. An empty directive
// matches all directives; an empty status matches all statuses. No
// matching runs is an empty slice, not an error.
func (c *Client) GetRuns(ctx context.Context, directive string, status store.RunStatus, limit int) ([]store.Run, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive, got %d", store.ErrValidation, limit)
	}
	if status != "" {
		if _, err := store.ParseRunStatus(string(status)); err != nil {
			return nil, err
		}
	}

	query := `
	SELECT id, directive_name, started_at, ended_at, status,
	       error_message, notes, input_summary, output_summary
	FROM directive_runs
	WHERE (? = '' OR directive_name = ?)
	  AND (? = '' OR status = ?)
	ORDER BY started_at DESC, id DESC
	LIMIT ?`

	rows, err := c.db.QueryContext(ctx, query, directive, directive, string(status), string(status), limit)
	if err != nil {
		return nil, storageErr("querying directive runs", err)
	}
	defer rows.Close()

	return scanRuns(rows)
}

func scanRuns(rows *sql.Rows) ([]store.Run, error) {
	runs := []store.Run{}
	for rows.Next() {
		var r store.Run
		var started string
		var ended, errMsg, notes, input, output sql.NullString
		var status string
		if err := rows.Scan(&r.ID, &r.Directive, &started, &ended, &status, &errMsg, &notes, &input, &output); err != nil {
			return nil, storageErr("scanning directive run", err)
		}

		var err error
		if r.StartedAt, err = parseTime(started); err != nil {
			return nil, err
		}
		if ended.Valid {
			t, err := parseTime(ended.String)
			if err != nil {
				return nil, err
			}
			r.EndedAt = &t
		}
		r.Status = store.RunStatus(status)
		r.ErrorMessage = errMsg.String
		r.Notes = notes.String
		r.InputSummary = input.String
		r.OutputSummary = output.String

		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating directive runs", err)
	}

	return runs, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
