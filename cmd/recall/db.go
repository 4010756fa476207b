package main

import (
	"context"

	"recall/internal/config"
	"recall/internal/store/sqlite"
)

// openStore loads the config, opens the backing database, and ensures
// the schema exists. Schema creation is idempotent, so every command
// works against a fresh file without a separate init step.
func openStore(ctx context.Context) (*sqlite.Client, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	dsn := cfg.Database.DSN
	if dbDSN != "" {
		dsn = dbDSN
	}

	client, err := sqlite.New(ctx, dsn, sqlite.Options{SearchLimit: cfg.Defaults.SearchLimit})
	if err != nil {
		return nil, nil, err
	}

	if err := client.EnsureSchema(ctx); err != nil {
		client.Close(ctx)
		return nil, nil, err
	}

	return client, cfg, nil
}

func resolveDSN(cfg *config.Config) string {
	if dbDSN != "" {
		return dbDSN
	}
	return cfg.Database.DSN
}
