package sqlite

import (
	"context"

	"recall/internal/store"
)

// ReadGraph materializes the whole graph — every entity with its
// observations, every relation, and summary counts — inside a single
// transaction so that no entity is ever seen with half its
// observations. Meant for full export and inspection, not incremental
// queries.
func (c *Client) ReadGraph(ctx context.Context) (*store.Graph, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storageErr("beginning transaction", err)
	}
	defer tx.Rollback()

	graph := &store.Graph{}

	entities, index, err := scanEntities(tx.QueryContext(ctx,
		"SELECT id, name, entity_type, created_at FROM entities ORDER BY created_at DESC, id DESC"))
	if err != nil {
		return nil, err
	}
	graph.Entities = entities

	obsRows, err := tx.QueryContext(ctx,
		"SELECT id, entity_id, content, created_at FROM observations ORDER BY created_at, id")
	if err != nil {
		return nil, storageErr("querying observations", err)
	}
	for obsRows.Next() {
		var o store.Observation
		var entityID int64
		var created string
		if err := obsRows.Scan(&o.ID, &entityID, &o.Content, &created); err != nil {
			obsRows.Close()
			return nil, storageErr("scanning observation", err)
		}
		if o.CreatedAt, err = parseTime(created); err != nil {
			obsRows.Close()
			return nil, err
		}
		if i, ok := index[entityID]; ok {
			graph.Entities[i].Observations = append(graph.Entities[i].Observations, o)
			graph.Stats.ObservationCount++
		}
	}
	if err := obsRows.Err(); err != nil {
		obsRows.Close()
		return nil, storageErr("iterating observations", err)
	}
	obsRows.Close()

	graph.Relations, err = scanRelations(tx.QueryContext(ctx,
		relationColumns+"ORDER BY r.created_at, r.id"))
	if err != nil {
		return nil, err
	}

	if err := tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM directive_runs").Scan(&graph.Stats.RunCount); err != nil {
		return nil, storageErr("counting directive runs", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, storageErr("committing transaction", err)
	}

	graph.Stats.EntityCount = len(graph.Entities)
	graph.Stats.RelationCount = len(graph.Relations)

	return graph, nil
}
