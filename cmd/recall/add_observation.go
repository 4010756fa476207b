package main

import (
	"context"

	"github.com/spf13/cobra"
)

func addObservationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-observation <entity> <content>",
		Short: "Append an observation to an entity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer client.Close(ctx)

			id, err := client.AddObservation(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			return printJSON(map[string]any{
				"id":      id,
				"entity":  args[0],
				"content": args[1],
			})
		},
	}
}
