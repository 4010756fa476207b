package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"recall/internal/store"
)

const defaultSearchLimit = 20

// Search scans entity names and types, observation content, and
// directive run names, notes, errors, and summaries for a
// case-insensitive substring match. Substring (not token) matching is
// deliberate: callers use search to decide relevance, so a false
// negative costs more than a false positive. Results are grouped by
// source kind and ordered most-recent-first within each group; the run
// group is capped at the configured search limit.
func (c *Client) Search(ctx context.Context, query string) (*store.SearchResults, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: search query must not be empty", store.ErrValidation)
	}

	pattern := "%" + escapeLike(query) + "%"

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storageErr("beginning transaction", err)
	}
	defer tx.Rollback()

	results := &store.SearchResults{}

	results.Entities, _, err = scanEntities(tx.QueryContext(ctx, `
	SELECT id, name, entity_type, created_at
	FROM entities
	WHERE name LIKE ? ESCAPE '\' OR entity_type LIKE ? ESCAPE '\'
	ORDER BY created_at DESC, id DESC`,
		pattern, pattern,
	))
	if err != nil {
		return nil, err
	}

	results.Observations, err = scanOwnedObservations(tx.QueryContext(ctx, `
	SELECT o.id, e.name, o.content, o.created_at
	FROM observations o
	JOIN entities e ON o.entity_id = e.id
	WHERE o.content LIKE ? ESCAPE '\'
	ORDER BY o.created_at DESC, o.id DESC`,
		pattern,
	))
	if err != nil {
		return nil, err
	}

	runRows, err := tx.QueryContext(ctx, `
	SELECT id, directive_name, started_at, ended_at, status,
	       error_message, notes, input_summary, output_summary
	FROM directive_runs
	WHERE directive_name LIKE ? ESCAPE '\'
	   OR notes LIKE ? ESCAPE '\'
	   OR error_message LIKE ? ESCAPE '\'
	   OR input_summary LIKE ? ESCAPE '\'
	   OR output_summary LIKE ? ESCAPE '\'
	ORDER BY started_at DESC, id DESC
	LIMIT ?`,
		pattern, pattern, pattern, pattern, pattern, c.searchLimit,
	)
	if err != nil {
		return nil, storageErr("searching directive runs", err)
	}
	defer runRows.Close()
	if results.Runs, err = scanRuns(runRows); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, storageErr("committing transaction", err)
	}

	return results, nil
}

// scanEntities drains a (id, name, entity_type, created_at) result set.
// The second return value maps entity id to slice index so callers can
// attach observations.
func scanEntities(rows *sql.Rows, queryErr error) ([]store.Entity, map[int64]int, error) {
	if queryErr != nil {
		return nil, nil, storageErr("querying entities", queryErr)
	}
	defer rows.Close()

	entities := []store.Entity{}
	index := map[int64]int{}
	for rows.Next() {
		var e store.Entity
		var created string
		if err := rows.Scan(&e.ID, &e.Name, &e.EntityType, &created); err != nil {
			return nil, nil, storageErr("scanning entity", err)
		}
		var err error
		if e.CreatedAt, err = parseTime(created); err != nil {
			return nil, nil, err
		}
		e.Observations = []store.Observation{}
		e.RelationsOut = []store.Relation{}
		e.RelationsIn = []store.Relation{}
		index[e.ID] = len(entities)
		entities = append(entities, e)
	}

	if err := rows.Err(); err != nil {
		return nil, nil, storageErr("iterating entities", err)
	}

	return entities, index, nil
}

// scanOwnedObservations drains a (id, entity_name, content, created_at)
// result set; each row carries its owning entity's name.
func scanOwnedObservations(rows *sql.Rows, queryErr error) ([]store.Observation, error) {
	if queryErr != nil {
		return nil, storageErr("querying observations", queryErr)
	}
	defer rows.Close()

	observations := []store.Observation{}
	for rows.Next() {
		var o store.Observation
		var created string
		if err := rows.Scan(&o.ID, &o.EntityName, &o.Content, &created); err != nil {
			return nil, storageErr("scanning observation", err)
		}
		var err error
		if o.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		observations = append(observations, o)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating observations", err)
	}

	return observations, nil
}

// escapeLike neutralizes LIKE wildcards in user input so a query for
// "50%" matches the literal text.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
