// ABOUTME: Shared test helpers for database tests.
// ABOUTME: Provides setupTestDB plus small row constructors.
package db

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/ourasync/internal/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := InitDB(dbPath)
	if err != nil {
		t.Fatalf("failed to init test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// inTx runs fn in a transaction and commits, failing the test on error.
func inTx(t *testing.T, db *sql.DB, fn func(tx *sql.Tx) error) {
	t.Helper()
	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		t.Fatalf("tx func: %v", err)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func testSleep(id, dayStr string, score int) models.DailySleep {
	return models.DailySleep{SleepSummaryID: id, Day: day(dayStr), Score: &score}
}

func testPeriod(id, summaryID string) models.SleepPeriod {
	start := day("2024-01-05").Add(23 * time.Hour)
	end := start.Add(8 * time.Hour)
	return models.SleepPeriod{
		SleepPeriodID:  id,
		SleepSummaryID: summaryID,
		StartDatetime:  start,
		EndDatetime:    end,
	}
}
