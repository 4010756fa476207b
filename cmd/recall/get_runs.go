package main

import (
	"context"

	"github.com/spf13/cobra"

	"recall/internal/store"
)

func getRunsCmd() *cobra.Command {
	var limit int
	var status string
	cmd := &cobra.Command{
		Use:   "get-runs [directive]",
		Short: "List directive run history, most recent first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			directive := ""
			if len(args) > 0 {
				directive = args[0]
			}

			ctx := context.Background()

			client, cfg, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer client.Close(ctx)

			if limit <= 0 {
				limit = cfg.Defaults.RunLimit
			}

			runs, err := client.GetRuns(ctx, directive, store.RunStatus(status), limit)
			if err != nil {
				return err
			}
			return printJSON(runs)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum results (default from config)")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (started, success, failed, partial)")
	return cmd
}
