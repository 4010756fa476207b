package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func deleteRelationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-relation <id>",
		Short: "Delete a single relation by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid relation id %q", args[0])
			}

			ctx := context.Background()

			client, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer client.Close(ctx)

			if err := client.DeleteRelation(ctx, id); err != nil {
				return err
			}
			return printJSON(map[string]any{"deleted_relation_id": id})
		},
	}
}
