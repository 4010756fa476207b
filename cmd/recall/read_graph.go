package main

import (
	"context"

	"github.com/spf13/cobra"
)

func readGraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read-graph",
		Short: "Read the entire knowledge graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer client.Close(ctx)

			graph, err := client.ReadGraph(ctx)
			if err != nil {
				return err
			}
			return printJSON(graph)
		},
	}
}
