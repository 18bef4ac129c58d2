// ABOUTME: Root Cobra command for the ourasync CLI.
// ABOUTME: Loads environment configuration before any subcommand runs.
package main

import (
	"fmt"

	"github.com/harperreed/ourasync/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfg     *config.Config
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ourasync",
	Short: "Sync Oura Ring data into a local SQLite database",
	Long: `Ourasync pulls your Oura Ring data from the Oura v2 API and stores it
in a local SQLite database, one table per metric.

WHAT IT SYNCS:

  Profile      personal info, ring configurations
  Daily        activity, sleep (with periods), readiness, SpO2, stress
  Sessions     workouts, sleep heart rate and HRV samples

Every sync is a full refresh: all rows are replaced inside a single
transaction, so the database is never left half-updated. Either the
whole run commits or nothing changes.

QUICK START:

  $ export OURA_API_TOKEN=your-personal-access-token
  $ ourasync init                  # Create the database
  $ ourasync sync                  # Full sync from 2024-01-01 to today
  $ ourasync sync --start 2025-06-01
  $ ourasync status                # Row counts per table

ARCHIVING:

  $ ourasync sync --archive        # Also keep every raw API payload

  Raw payloads are stored per run in a local Badger archive, so a bad
  normalization can be diagnosed against the exact responses.

MCP INTEGRATION:

  Run 'ourasync mcp' to serve the synced database over the Model Context
  Protocol for Claude Desktop or other MCP-compatible assistants:

  {
    "mcpServers": {
      "oura": { "command": "ourasync", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  The database lives at ~/.local/share/ourasync/oura.db by default.
  Set OURA_DATA_DIR to move it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(mcpCmd)
}
