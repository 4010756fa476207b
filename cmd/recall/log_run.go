package main

import (
	"context"

	"github.com/spf13/cobra"

	"recall/internal/store"
)

func logRunCmd() *cobra.Command {
	var notes, errMsg, inputSummary, outputSummary string
	cmd := &cobra.Command{
		Use:   "log-run <directive> <status>",
		Short: "Record one directive execution",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, _, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer client.Close(ctx)

			id, err := client.LogRun(ctx, store.RunInput{
				Directive:     args[0],
				Status:        store.RunStatus(args[1]),
				Notes:         notes,
				ErrorMessage:  errMsg,
				InputSummary:  inputSummary,
				OutputSummary: outputSummary,
			})
			if err != nil {
				return err
			}
			return printJSON(map[string]any{
				"run_id":    id,
				"directive": args[0],
				"status":    args[1],
			})
		},
	}
	cmd.Flags().StringVar(&notes, "notes", "", "Execution notes")
	cmd.Flags().StringVar(&errMsg, "error", "", "Error message if failed")
	cmd.Flags().StringVar(&inputSummary, "input", "", "Input summary")
	cmd.Flags().StringVar(&outputSummary, "output", "", "Output summary")
	return cmd
}
