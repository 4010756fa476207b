package main

import (
	"context"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the backing database and schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, cfg, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer client.Close(ctx)

			return printJSON(map[string]any{
				"status":   "initialized",
				"database": resolveDSN(cfg),
			})
		},
	}
}
