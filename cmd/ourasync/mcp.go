// ABOUTME: CLI command serving the synced store over MCP stdio transport.
// ABOUTME: For Claude Desktop and other MCP-compatible assistants.
package main

import (
	"github.com/harperreed/ourasync/internal/db"
	"github.com/harperreed/ourasync/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start a Model Context Protocol server over the synced database using
stdio transport.

Add to your Claude Desktop config:

  {
    "mcpServers": {
      "oura": { "command": "ourasync", "args": ["mcp"] }
    }
  }

The server is read-only: it exposes daily summaries, workouts, and the
account profile, but never writes. Only 'ourasync sync' writes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.InitDB(cfg.DBPath())
		if err != nil {
			return err
		}
		defer database.Close()

		server, err := mcp.NewServer(database)
		if err != nil {
			return err
		}

		return server.Serve(cmd.Context())
	},
}
