package main

import (
	"context"

	"github.com/spf13/cobra"
)

func addRelationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-relation <from> <to> <relation-type>",
		Short: "Create a directed relation between two entities",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer client.Close(ctx)

			id, err := client.AddRelation(ctx, args[0], args[1], args[2])
			if err != nil {
				return err
			}
			return printJSON(map[string]any{
				"id":            id,
				"from":          args[0],
				"to":            args[1],
				"relation_type": args[2],
			})
		},
	}
}
