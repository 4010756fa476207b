package sqlite

import (
	"context"
	"fmt"
	"strings"
)

// EnsureSchema creates the backing tables and indexes if absent. Safe to
// call on an existing store; it never touches existing rows. Referential
// integrity for observations and relations lives in the schema itself
// (ON DELETE CASCADE with foreign_keys=ON), so direct inspection of the
// file never shows orphaned rows.
func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := `
	CREATE TABLE IF NOT EXISTS entities (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		name        TEXT NOT NULL UNIQUE,
		entity_type TEXT NOT NULL,
		created_at  TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS observations (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		entity_id  INTEGER NOT NULL REFERENCES entities(id) ON DELETE CASCADE,
		content    TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS relations (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		from_entity_id INTEGER NOT NULL REFERENCES entities(id) ON DELETE CASCADE,
		to_entity_id   INTEGER NOT NULL REFERENCES entities(id) ON DELETE CASCADE,
		relation_type  TEXT NOT NULL,
		created_at     TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS directive_runs (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		directive_name TEXT NOT NULL,
		started_at     TEXT NOT NULL,
		ended_at       TEXT,
		status         TEXT NOT NULL CHECK (status IN ('started', 'success', 'failed', 'partial')),
		error_message  TEXT,
		notes          TEXT,
		input_summary  TEXT,
		output_summary TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_entities_name ON entities (name);
	CREATE INDEX IF NOT EXISTS idx_entities_type ON entities (entity_type);
	CREATE INDEX IF NOT EXISTS idx_observations_entity ON observations (entity_id);
	CREATE INDEX IF NOT EXISTS idx_relations_from ON relations (from_entity_id);
	CREATE INDEX IF NOT EXISTS idx_relations_to ON relations (to_entity_id);
	CREATE INDEX IF NOT EXISTS idx_runs_directive ON directive_runs (directive_name);
	CREATE INDEX IF NOT EXISTS idx_runs_status ON directive_runs (status);
	`

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("beginning schema transaction", err)
	}
	defer tx.Rollback()

	for _, stmt := range splitStatements(ddl) {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return storageErr("executing DDL", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("committing schema transaction", err)
	}

	return nil
}

func splitStatements(ddl string) []string {
	var statements []string
	var current strings.Builder

	for _, line := range strings.Split(ddl, "\n") {
		stripped := strings.TrimSpace(line)
		if strings.HasPrefix(stripped, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")

		if strings.HasSuffix(stripped, ";") {
			statements = append(statements, current.String())
			current.Reset()
		}
	}

	if current.Len() > 0 {
		statements = append(statements, current.String())
	}

	return statements
}

// Reset clears all memory — entities, observations, relations, and the
// directive run history — in one transaction. Administrative use only.
func (c *Client) Reset(ctx context.Context) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("beginning reset transaction", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"relations", "observations", "entities", "directive_runs"} {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			return storageErr(fmt.Sprintf("clearing %s", table), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("committing reset transaction", err)
	}

	return nil
}
