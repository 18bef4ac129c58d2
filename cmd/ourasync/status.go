// ABOUTME: CLI command showing what has been synced.
// ABOUTME: Prints per-table row counts, profile, and the latest synced day.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/ourasync/internal/db"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	Long: `Show the current state of the local database:
- data directory and database path
- row counts per table
- the most recent synced day`,
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.InitDB(cfg.DBPath())
		if err != nil {
			return err
		}
		defer database.Close()

		fmt.Println("Data dir:", cfg.GetDataDir())
		fmt.Println("Database:", cfg.DBPath())
		fmt.Println()

		info, err := db.GetPersonalInfo(database)
		if err != nil {
			return err
		}
		if info == nil {
			color.Yellow("No data synced yet")
			fmt.Println("\nRun 'ourasync sync' to fetch your Oura data.")
			return nil
		}

		latest, err := db.LatestDay(database)
		if err != nil {
			return err
		}

		counts, err := db.CountAll(database)
		if err != nil {
			return err
		}

		color.Green("✓ Synced")
		if !latest.IsZero() {
			fmt.Println("Latest day:", latest.Format("2006-01-02"))
		}
		fmt.Println()

		faint := color.New(color.Faint)
		for _, table := range db.Tables() {
			fmt.Printf("%s %d\n", faint.Sprint(padRight(table, 24)), counts[table])
		}

		return nil
	},
}

func padRight(s string, length int) string {
	for len(s) < length {
		s += " "
	}
	return s
}
