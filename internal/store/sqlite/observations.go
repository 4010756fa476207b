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

func (c *Client) AddObservation(ctx context.Context, entityName, content string) (int64, error) {
	if strings.TrimSpace(content) == "" {
		return 0, fmt.Errorf("%w: observation content must not be empty", store.ErrValidation)
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, storageErr("beginning transaction", err)
	}
	defer tx.Rollback()

	var entityID int64
	err = tx.QueryRowContext(ctx, "SELECT id FROM entities WHERE name = ?", entityName).Scan(&entityID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: entity %q", store.ErrNotFound, entityName)
	}
	if err != nil {
		return 0, storageErr("finding entity", err)
	}

	result, err := tx.ExecContext(ctx,
		"INSERT INTO observations (entity_id, content, created_at) VALUES (?, ?, ?)",
		entityID, content, formatTime(time.Now()),
	)
	if err != nil {
		return 0, storageErr("inserting observation", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, storageErr("reading observation id", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, storageErr("committing transaction", err)
	}

	return id, nil
}

func (c *Client) DeleteObservation(ctx context.Context, id int64) error {
	result, err := c.db.ExecContext(ctx, "DELETE FROM observations WHERE id = ?", id)
	if err != nil {
		return storageErr("deleting observation", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storageErr("getting rows affected", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: observation %d", store.ErrNotFound, id)
	}

	return nil
}
