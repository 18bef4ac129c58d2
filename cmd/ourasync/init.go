// ABOUTME: CLI command for creating the database schema.
// ABOUTME: Safe to run repeatedly; tables are created only if missing.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/ourasync/internal/db"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the local database",
	Long: `Create the SQLite database and all tables if they do not exist.

'ourasync sync' does this automatically; init exists so the schema can be
inspected before the first sync.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.DBPath()
		database, err := db.InitDB(path)
		if err != nil {
			return err
		}
		defer database.Close()

		color.Green("✓ Database ready")
		fmt.Println("Path:", path)
		return nil
	},
}
