package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func resetCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all memory, including run history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("reset destroys all memory; pass --force to confirm")
			}

			ctx := context.Background()

			client, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer client.Close(ctx)

			if err := client.Reset(ctx); err != nil {
				return err
			}
			return printJSON(map[string]any{"status": "reset"})
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Confirm the full reset")
	return cmd
}
