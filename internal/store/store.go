package store

import "context"

// Store is the persistent agent memory: a small knowledge graph of
// entities, observations, and relations, plus an append-only log of
// directive runs. Every operation is self-contained — it either
// completes fully or fails with one typed error and no visible
// partial state.
type Store interface {
	Close(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	CreateEntity(ctx context.Context, name, entityType string, observations []string) (*Entity, error)
	GetEntity(ctx context.Context, name string) (*Entity, error)
	DeleteEntity(ctx context.Context, name string) error

	AddObservation(ctx context.Context, entityName, content string) (int64, error)
	DeleteObservation(ctx context.Context, id int64) error

	AddRelation(ctx context.Context, fromName, toName, relationType string) (int64, error)
	DeleteRelation(ctx context.Context, id int64) error

	LogRun(ctx context.Context, run RunInput) (int64, error)
	GetRuns(ctx context.Context, directive string, status RunStatus, limit int) ([]Run, error)

	Search(ctx context.Context, query string) (*SearchResults, error)
	ReadGraph(ctx context.Context) (*Graph, error)

	Reset(ctx context.Context) error
}
