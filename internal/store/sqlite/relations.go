package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"recall/internal/store"
)

func (c *Client) AddRelation(ctx context.Context, fromName, toName, relationType string) (int64, error) {
	if strings.TrimSpace(relationType) == "" {
		return 0, fmt.Errorf("%w: relation type must not be empty", store.ErrValidation)
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, storageErr("beginning transaction", err)
	}
	defer tx.Rollback()

	fromID, err := lookupEntityID(ctx, tx, fromName)
	if err != nil {
		return 0, err
	}
	toID, err := lookupEntityID(ctx, tx, toName)
	if err != nil {
		return 0, err
	}

	// Duplicate edges of the same type between the same pair are
	// permitted; repeated edges over time are part of the audit trail.
	result, err := tx.ExecContext(ctx,
		"INSERT INTO relations (from_entity_id, to_entity_id, relation_type, created_at) VALUES (?, ?, ?, ?)",
		fromID, toID, relationType, formatTime(time.Now()),
	)
	if err != nil {
		return 0, storageErr("inserting relation", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, storageErr("reading relation id", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, storageErr("committing transaction", err)
	}

	return id, nil
}

func (c *Client) DeleteRelation(ctx context.Context, id int64) error {
	result, err := c.db.ExecContext(ctx, "DELETE FROM relations WHERE id = ?", id)
	if err != nil {
		return storageErr("deleting relation", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storageErr("getting rows affected", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: relation %d", store.ErrNotFound, id)
	}

	return nil
}

func lookupEntityID(ctx context.Context, tx *sql.Tx, name string) (int64, error) {
	var id int64
	err := tx.QueryRowContext(ctx, "SELECT id FROM entities WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: entity %q", store.ErrNotFound, name)
	}
	if err != nil {
		return 0, storageErr("finding entity", err)
	}
	return id, nil
}

const relationColumns = `
	SELECT r.id, f.name, t.name, r.relation_type, r.created_at
	FROM relations r
	JOIN entities f ON r.from_entity_id = f.id
	JOIN entities t ON r.to_entity_id = t.id
`

func fetchRelationsFor(ctx context.Context, tx *sql.Tx, entityID int64) (out, in []store.Relation, err error) {
	out, err = scanRelations(tx.QueryContext(ctx,
		relationColumns+"WHERE r.from_entity_id = ? ORDER BY r.created_at, r.id", entityID))
	if err != nil {
		return nil, nil, err
	}

	in, err = scanRelations(tx.QueryContext(ctx,
		relationColumns+"WHERE r.to_entity_id = ? ORDER BY r.created_at, r.id", entityID))
	if err != nil {
		return nil, nil, err
	}

	return out, in, nil
}

func scanRelations(rows *sql.Rows, queryErr error) ([]store.Relation, error) {
	if queryErr != nil {
		return nil, storageErr("fetching relations", queryErr)
	}
	defer rows.Close()

	relations := []store.Relation{}
	for rows.Next() {
		var r store.Relation
		var created string
		if err := rows.Scan(&r.ID, &r.FromEntity, &r.ToEntity, &r.RelationType, &created); err != nil {
			return nil, storageErr("scanning relation", err)
		}
		var err error
		if r.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		relations = append(relations, r)
	}

	if err := rows.Err(); err != nil {
		return nil, storageErr("iterating relations", err)
	}

	return relations, nil
}
