package main

import (
	"context"

	"github.com/spf13/cobra"
)

func addEntityCmd() *cobra.Command {
	var observations []string
	cmd := &cobra.Command{
		Use:   "add-entity <name> <type>",
		Short: "Create a new entity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer client.Close(ctx)

			entity, err := client.CreateEntity(ctx, args[0], args[1], observations)
			if err != nil {
				return err
			}
			return printJSON(entity)
		},
	}
	cmd.Flags().StringArrayVar(&observations, "obs", nil, "Initial observation (repeatable)")
	return cmd
}
