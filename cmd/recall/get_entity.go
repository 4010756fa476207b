package main

import (
	"context"

	"github.com/spf13/cobra"
)

func getEntityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-entity <name>",
		Short: "Display an entity with its observations and relations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer client.Close(ctx)

			entity, err := client.GetEntity(ctx, args[0])
			if err != nil {
				return err
			}
			return printJSON(entity)
		},
	}
}
