// ABOUTME: MCP server setup for the synced Oura store.
// ABOUTME: Exposes read-only tools and resources over the local database.
package mcp

import (
	"context"
	"database/sql"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with database access.
type Server struct {
	mcpServer *mcp.Server
	db        *sql.DB
}

// NewServer creates a new MCP server over the synced database.
func NewServer(database *sql.DB) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "ourasync",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		db:        database,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
