package main

import (
	"context"

	"github.com/spf13/cobra"
)

func deleteEntityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-entity <name>",
		Short: "Delete an entity and everything attached to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer client.Close(ctx)

			if err := client.DeleteEntity(ctx, args[0]); err != nil {
				return err
			}
			return printJSON(map[string]any{"deleted": args[0]})
		},
	}
}
