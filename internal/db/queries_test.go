// ABOUTME: Tests for the read queries used by status and MCP surfaces.
// ABOUTME: Validates empty-store behavior, daily summaries, and workout lists.
package db

import (
	"database/sql"
	"testing"

	"github.com/harperreed/ourasync/internal/models"
)

func TestGetPersonalInfoEmptyStore(t *testing.T) {
	db := setupTestDB(t)

	info, err := GetPersonalInfo(db)
	if err != nil {
		t.Fatalf("GetPersonalInfo failed: %v", err)
	}
	if info != nil {
		t.Errorf("expected nil on empty store, got %+v", info)
	}
}

func TestGetPersonalInfo(t *testing.T) {
	db := setupTestDB(t)

	age := 38
	inTx(t, db, func(tx *sql.Tx) error {
		return InsertPersonalInfo(tx, []models.PersonalInfo{{PersonalInfoID: "pi-1", Age: &age}})
	})

	info, err := GetPersonalInfo(db)
	if err != nil {
		t.Fatalf("GetPersonalInfo failed: %v", err)
	}
	if info == nil || info.PersonalInfoID != "pi-1" {
		t.Fatalf("unexpected info: %+v", info)
	}
	if info.Age == nil || *info.Age != 38 {
		t.Errorf("Age = %v, want 38", info.Age)
	}
	if info.Email != nil {
		t.Errorf("Email should be nil, got %v", *info.Email)
	}
}

func TestLatestDayAndDailySummary(t *testing.T) {
	db := setupTestDB(t)

	latest, err := LatestDay(db)
	if err != nil {
		t.Fatalf("LatestDay on empty store failed: %v", err)
	}
	if !latest.IsZero() {
		t.Errorf("expected zero time on empty store, got %v", latest)
	}

	sleepScore, readinessScore, activityScore, steps := 80, 85, 70, 9000
	inTx(t, db, func(tx *sql.Tx) error {
		if err := InsertDailySleeps(tx, []models.DailySleep{
			testSleep("s1", "2024-01-05", sleepScore),
			testSleep("s2", "2024-01-04", 60),
		}); err != nil {
			return err
		}
		if err := InsertDailyReadinesses(tx, []models.DailyReadiness{
			{ReadinessSummaryID: "r1", Day: day("2024-01-05"), Score: &readinessScore},
		}); err != nil {
			return err
		}
		return InsertDailyActivities(tx, []models.DailyActivity{
			{ActivitySummaryID: "a1", Day: day("2024-01-05"), Score: &activityScore, Steps: &steps},
		})
	})

	latest, err = LatestDay(db)
	if err != nil {
		t.Fatalf("LatestDay failed: %v", err)
	}
	if latest.Format("2006-01-02") != "2024-01-05" {
		t.Errorf("LatestDay = %v, want 2024-01-05", latest)
	}

	summary, err := GetDailySummary(db, latest)
	if err != nil {
		t.Fatalf("GetDailySummary failed: %v", err)
	}
	if summary.SleepScore == nil || *summary.SleepScore != 80 {
		t.Errorf("SleepScore = %v, want 80", summary.SleepScore)
	}
	if summary.ReadinessScore == nil || *summary.ReadinessScore != 85 {
		t.Errorf("ReadinessScore = %v, want 85", summary.ReadinessScore)
	}
	if summary.Steps == nil || *summary.Steps != 9000 {
		t.Errorf("Steps = %v, want 9000", summary.Steps)
	}

	// A day with no data still yields a summary, all scores absent.
	empty, err := GetDailySummary(db, day("2023-06-01"))
	if err != nil {
		t.Fatalf("GetDailySummary failed: %v", err)
	}
	if empty.SleepScore != nil || empty.ReadinessScore != nil || empty.ActivityScore != nil {
		t.Errorf("expected all-nil summary for unknown day, got %+v", empty)
	}
}

func TestListWorkouts(t *testing.T) {
	db := setupTestDB(t)

	inTx(t, db, func(tx *sql.Tx) error {
		return InsertWorkouts(tx, []models.Workout{
			{WorkoutID: "w1", Activity: "running", Day: day("2024-01-04"), Source: "manual"},
			{WorkoutID: "w2", Activity: "cycling", Day: day("2024-01-05"), Source: "manual"},
		})
	})

	workouts, err := ListWorkouts(db, 10)
	if err != nil {
		t.Fatalf("ListWorkouts failed: %v", err)
	}
	if len(workouts) != 2 {
		t.Fatalf("expected 2 workouts, got %d", len(workouts))
	}
	if workouts[0].WorkoutID != "w2" {
		t.Errorf("expected newest first, got %q", workouts[0].WorkoutID)
	}
	if workouts[0].StartDatetime != nil {
		t.Errorf("StartDatetime should be nil, got %v", workouts[0].StartDatetime)
	}

	workouts, err = ListWorkouts(db, 1)
	if err != nil {
		t.Fatalf("ListWorkouts failed: %v", err)
	}
	if len(workouts) != 1 {
		t.Errorf("expected limit respected, got %d", len(workouts))
	}
}
