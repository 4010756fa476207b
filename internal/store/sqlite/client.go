package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"recall/internal/store"

	_ "modernc.org/sqlite"
)

var _ store.Store = (*Client)(nil)

// Client is the SQLite-backed memory store. The backing file is a single
// portable artifact: copying it transfers the entire memory state.
type Client struct {
	db          *sql.DB
	searchLimit int
}

type Options struct {
	// SearchLimit caps the directive-run group in search results.
	// Zero means the default of 20.
	SearchLimit int
}

func New(ctx context.Context, dsn string, opts Options) (*Client, error) {
	driverDSN, err := parseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing sqlite DSN: %w", err)
	}

	db, err := sql.Open("sqlite", driverDSN)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// The driver opens one connection per pool slot; in-memory and
	// WAL-mode file databases both behave with a single writer.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite: %w", err)
	}

	pragmas := []string{
		"PRAGMA busy_timeout = 30000;",
		"PRAGMA journal_mode = WAL;",
		"PRAGMA foreign_keys = ON;",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", pragma, err)
		}
	}

	searchLimit := opts.SearchLimit
	if searchLimit <= 0 {
		searchLimit = defaultSearchLimit
	}

	return &Client{db: db, searchLimit: searchLimit}, nil
}

func (c *Client) Close(ctx context.Context) error {
	return c.db.Close()
}
