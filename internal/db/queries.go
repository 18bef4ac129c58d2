// ABOUTME: Read queries over the synced store for status and MCP surfaces.
// ABOUTME: The sync path never reads; these exist for the humans and agents.
package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/harperreed/ourasync/internal/models"
)

// CountAll returns row counts for every synced table.
func CountAll(db *sql.DB) (map[string]int, error) {
	counts := make(map[string]int, len(tables))
	for _, table := range tables {
		var n int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}

// Tables returns the synced table names in a stable order.
func Tables() []string {
	out := make([]string, len(tables))
	copy(out, tables)
	return out
}

// GetPersonalInfo returns the synced profile, or nil when none has been
// synced yet.
func GetPersonalInfo(db *sql.DB) (*models.PersonalInfo, error) {
	var p models.PersonalInfo
	err := db.QueryRow(`
		SELECT personal_info_id, age, weight, height, biological_sex, email
		FROM personal_info LIMIT 1`).
		Scan(&p.PersonalInfoID, &p.Age, &p.Weight, &p.Height, &p.BiologicalSex, &p.Email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get personal info: %w", err)
	}
	return &p, nil
}

// DailySummary bundles the three headline scores for one day.
type DailySummary struct {
	Day            string `json:"day"`
	SleepScore     *int   `json:"sleep_score"`
	ReadinessScore *int   `json:"readiness_score"`
	ActivityScore  *int   `json:"activity_score"`
	Steps          *int   `json:"steps"`
}

// GetDailySummary collects sleep, readiness, and activity scores for a day.
// Missing metrics stay nil; the summary itself always comes back.
func GetDailySummary(db *sql.DB, day time.Time) (*DailySummary, error) {
	dayStr := day.Format("2006-01-02")
	s := &DailySummary{Day: dayStr}

	err := db.QueryRow(`SELECT score FROM daily_sleep WHERE day = ? LIMIT 1`, dayStr).Scan(&s.SleepScore)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get sleep score: %w", err)
	}
	err = db.QueryRow(`SELECT score FROM daily_readiness WHERE day = ? LIMIT 1`, dayStr).Scan(&s.ReadinessScore)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get readiness score: %w", err)
	}
	err = db.QueryRow(`SELECT score, steps FROM daily_activities WHERE day = ? LIMIT 1`, dayStr).Scan(&s.ActivityScore, &s.Steps)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get activity score: %w", err)
	}
	return s, nil
}

// LatestDay returns the most recent day present in any daily summary table,
// or the zero time when the store is empty.
func LatestDay(db *sql.DB) (time.Time, error) {
	var latest sql.NullString
	err := db.QueryRow(`
		SELECT MAX(day) FROM (
			SELECT day FROM daily_sleep
			UNION ALL SELECT day FROM daily_readiness
			UNION ALL SELECT day FROM daily_activities
		)`).Scan(&latest)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to find latest day: %w", err)
	}
	if !latest.Valid || latest.String == "" {
		return time.Time{}, nil
	}
	day, err := time.Parse("2006-01-02", latest.String)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse latest day: %w", err)
	}
	return day, nil
}

// ListWorkouts returns the most recent workouts, newest first.
func ListWorkouts(db *sql.DB, limit int) ([]models.Workout, error) {
	rows, err := db.Query(`
		SELECT workout_id, activity, calories, day, distance,
			start_datetime, end_datetime, intensity, label, source,
			average_heart_rate, max_heart_rate, movement_speed,
			training_energy, training_time
		FROM workouts ORDER BY day DESC, start_datetime DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}
	defer rows.Close()

	var workouts []models.Workout
	for rows.Next() {
		var w models.Workout
		var day, start, end sql.NullString
		err := rows.Scan(&w.WorkoutID, &w.Activity, &w.Calories, &day, &w.Distance,
			&start, &end, &w.Intensity, &w.Label, &w.Source,
			&w.AverageHeartRate, &w.MaxHeartRate, &w.MovementSpeed,
			&w.TrainingEnergy, &w.TrainingTime)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workout: %w", err)
		}
		if day.Valid {
			if d, err := time.Parse("2006-01-02", day.String); err == nil {
				w.Day = d
			}
		}
		w.StartDatetime = parseStoredTime(start)
		w.EndDatetime = parseStoredTime(end)
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

func parseStoredTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &t
}
