package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"recall/internal/store"
)

// Server exposes the memory store as MCP tools over a transport.
// Stdout belongs to the protocol, so all logging goes through the
// injected logger (stderr in the CLI).
type Server struct {
	db  store.Store
	log *zap.Logger
	mcp *sdk.Server
}

func NewServer(db store.Store, log *zap.Logger, version string) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		db:  db,
		log: log,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "recall",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	s.log.Info("mcp server starting")
	defer s.log.Info("mcp server stopped")
	return s.mcp.Run(ctx, transport)
}
