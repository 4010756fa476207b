package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"recall/internal/mcp"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Expose the memory store as an MCP server over stdio",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Stdout carries the protocol; zap's production config writes to
	// stderr.
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	client, _, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer client.Close(ctx)

	server := mcp.NewServer(client, logger, version)
	return server.Run(ctx, &sdk.StdioTransport{})
}
