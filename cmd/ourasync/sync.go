// ABOUTME: CLI command for running one full sync.
// ABOUTME: Wires the API client, database, optional archive, and orchestrator.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/ourasync/internal/archive"
	"github.com/harperreed/ourasync/internal/db"
	"github.com/harperreed/ourasync/internal/oura"
	syncer "github.com/harperreed/ourasync/internal/sync"
)

var (
	syncStart   string
	syncEnd     string
	syncArchive bool
)

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"s"},
	Short:   "Sync Oura data into the local database",
	Long: `Fetch all Oura data for the date range and replace the local database
contents with it.

The sync is all-or-nothing: every metric is fetched and normalized first,
then all tables are cleared and repopulated inside one transaction. If
anything fails, the database is left exactly as it was.

DATE RANGE:

  Defaults to 2024-01-01 through today. Override with --start/--end
  (YYYY-MM-DD).

EXAMPLES:

  ourasync sync
  ourasync sync --start 2025-06-01 --end 2025-06-30
  ourasync sync --archive    # keep raw API payloads for replay`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.RequireToken(); err != nil {
			return err
		}

		start, err := parseDateFlag(syncStart)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
		end, err := parseDateFlag(syncEnd)
		if err != nil {
			return fmt.Errorf("invalid --end: %w", err)
		}

		database, err := db.InitDB(cfg.DBPath())
		if err != nil {
			return err
		}
		defer database.Close()

		logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}

		client := oura.NewClient(cfg.APIToken)
		client.BaseURL = cfg.BaseURL

		if syncArchive {
			store, err := archive.Open(cfg.ArchiveDir())
			if err != nil {
				return err
			}
			defer store.Close()

			runID := syncer.NewRunID()
			logger.Info("archiving raw payloads", "run", runID)
			client.Recorder = func(endpoint string, body []byte) {
				if err := store.Record(runID, endpoint, body); err != nil {
					logger.Warn("failed to archive payload", "endpoint", endpoint, "err", err)
				}
			}
		}

		s := syncer.NewSyncer(client, database, logger)
		if err := s.Run(cmd.Context(), start, end); err != nil {
			return err
		}

		color.Green("✓ Sync complete")
		return nil
	},
}

// parseDateFlag parses a YYYY-MM-DD flag value; empty means "use default".
func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", s)
}

func init() {
	syncCmd.Flags().StringVar(&syncStart, "start", "", "start date (YYYY-MM-DD, default 2024-01-01)")
	syncCmd.Flags().StringVar(&syncEnd, "end", "", "end date (YYYY-MM-DD, default today)")
	syncCmd.Flags().BoolVar(&syncArchive, "archive", false, "archive raw API payloads")
}
