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

func (c *Client) CreateEntity(ctx context.Context, name, entityType string, observations []string) (*store.Entity, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: entity name must not be empty", store.ErrValidation)
	}
	if strings.TrimSpace(entityType) == "" {
		return nil, fmt.Errorf("%w: entity type must not be empty", store.ErrValidation)
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storageErr("beginning transaction", err)
	}
	defer tx.Rollback()

	now := time.Now()
	created := formatTime(now)

	result, err := tx.ExecContext(ctx,
		"INSERT INTO entities (name, entity_type, created_at) VALUES (?, ?, ?)",
		name, entityType, created,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: entity %q", store.ErrDuplicateEntity, name)
		}
		return nil, storageErr("inserting entity", err)
	}

	entityID, err := result.LastInsertId()
	if err != nil {
		return nil, storageErr("reading entity id", err)
	}

	entity := &store.Entity{
		ID:           entityID,
		Name:         name,
		EntityType:   entityType,
		CreatedAt:    now.UTC().Truncate(time.Microsecond),
		Observations: []store.Observation{},
		RelationsOut: []store.Relation{},
		RelationsIn:  []store.Relation{},
	}

	for _, content := range observations {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO observations (entity_id, content, created_at) VALUES (?, ?, ?)",
			entityID, content, created,
		)
		if err != nil {
			return nil, storageErr("inserting initial observation", err)
		}
		obsID, err := res.LastInsertId()
		if err != nil {
			return nil, storageErr("reading observation id", err)
		}
		entity.Observations = append(entity.Observations, store.Observation{
			ID:        obsID,
			Content:   content,
			CreatedAt: entity.CreatedAt,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, storageErr("committing transaction", err)
	}

	return entity, nil
}

func (c *Client) GetEntity(ctx context.Context, name string) (*store.Entity, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storageErr("beginning transaction", err)
	}
	defer tx.Rollback()

	entity, err := fetchEntity(ctx, tx, name)
	if err != nil {
		return nil, err
	}

	entity.Observations, err = fetchObservations(ctx, tx, entity.ID)
	if err != nil {
		return nil, err
	}

	entity.RelationsOut, entity.RelationsIn, err = fetchRelationsFor(ctx, tx, entity.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, storageErr("committing transaction", err)
	}

	return entity, nil
}

func (c *Client) DeleteEntity(ctx context.Context, name string) error {
	// Cascade to observations and relations is the schema's job; one
	// DELETE is already atomic.
	result, err := c.db.ExecContext(ctx, "DELETE FROM entities WHERE name = ?", name)
	if err != nil {
		return storageErr("deleting entity", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storageErr("getting rows affected", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: entity %q", store.ErrNotFound, name)
	}

	return nil
}

func fetchEntity(ctx context.Context, tx *sql.Tx, name string) (*store.Entity, error) {
	var e store.Entity
	var created string
	err := tx.QueryRowContext(ctx,
		"SELECT id, name, entity_type, created_at FROM entities WHERE name = ?",
		name,
	).Scan(&e.ID, &e.Name, &e.EntityType, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: entity %q", store.ErrNotFound, name)
	}
	if err != nil {
		return nil, storageErr("fetching entity", err)
	}

	e.CreatedAt, err = parseTime(created)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func fetchObservations(ctx context.Context, tx *sql.Tx, entityID int64) ([]store.Observation, error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT id, content, created_at FROM observations WHERE entity_id = ? ORDER BY created_at, id",
		entityID,
	)
	if err != nil {
		return nil, storageErr("fetching observations", err)
	}
	defer rows.Close()

	observations := []store.Observation{}
	for rows.Next() {
		var o store.Observation
		var created string
		if err := rows.Scan(&o.ID, &o.Content, &created); err != nil {
			return nil, storageErr("scanning observation", err)
		}
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
