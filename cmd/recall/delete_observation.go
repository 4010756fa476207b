package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func deleteObservationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-observation <id>",
		Short: "Delete a single observation by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid observation id %q", args[0])
			}

			ctx := context.Background()

			client, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer client.Close(ctx)

			if err := client.DeleteObservation(ctx, id); err != nil {
				return err
			}
			return printJSON(map[string]any{"deleted_observation_id": id})
		},
	}
}
