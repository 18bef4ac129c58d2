// ABOUTME: Full-refresh write path: clear every table, insert staged rows.
// ABOUTME: All writes run on the caller's transaction; nothing commits here.
package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/harperreed/ourasync/internal/models"
)

// ClearAll deletes every row from every synced table, children before
// parents. Run inside the same transaction as the inserts that follow.
func ClearAll(tx *sql.Tx) error {
	for _, table := range tables {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return nil
}

// fmtTime renders an optional instant for storage, NULL when absent.
func fmtTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}

// fmtDay renders a calendar date for storage, NULL when the zero time.
func fmtDay(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.Format("2006-01-02")
}

// InsertPersonalInfo inserts personal info rows.
func InsertPersonalInfo(tx *sql.Tx, rows []models.PersonalInfo) error {
	for _, r := range rows {
		_, err := tx.Exec(`
			INSERT INTO personal_info (personal_info_id, age, weight, height, biological_sex, email)
			VALUES (?, ?, ?, ?, ?, ?)`,
			r.PersonalInfoID, r.Age, r.Weight, r.Height, r.BiologicalSex, r.Email)
		if err != nil {
			return fmt.Errorf("failed to insert personal info: %w", err)
		}
	}
	return nil
}

// InsertRingConfigurations inserts ring configuration rows.
func InsertRingConfigurations(tx *sql.Tx, rows []models.RingConfiguration) error {
	for _, r := range rows {
		_, err := tx.Exec(`
			INSERT INTO ring_configurations (ring_id, personal_info_id, color, design, firmware_version, hardware_type, set_up_at, size)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			r.RingID, r.PersonalInfoID, r.Color, r.Design, r.FirmwareVersion,
			r.HardwareType, fmtTime(r.SetUpAt), r.Size)
		if err != nil {
			return fmt.Errorf("failed to insert ring configuration: %w", err)
		}
	}
	return nil
}

// InsertDailyActivities inserts daily activity rows.
func InsertDailyActivities(tx *sql.Tx, rows []models.DailyActivity) error {
	for _, r := range rows {
		_, err := tx.Exec(`
			INSERT INTO daily_activities (activity_summary_id, day, score, timestamp,
				active_calories, total_calories, steps, equivalent_walking_distance,
				inactivity_alerts, non_wear_time, resting_time, meters_to_target,
				target_calories, target_meters, sedentary_time,
				meet_daily_targets, move_every_hour, recovery_time, stay_active,
				training_frequency, training_volume)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ActivitySummaryID, fmtDay(r.Day), r.Score, fmtTime(r.Timestamp),
			r.ActiveCalories, r.TotalCalories, r.Steps, r.EquivalentWalkingDistance,
			r.InactivityAlerts, r.NonWearTime, r.RestingTime, r.MetersToTarget,
			r.TargetCalories, r.TargetMeters, r.SedentaryTime,
			r.MeetDailyTargets, r.MoveEveryHour, r.RecoveryTime, r.StayActive,
			r.TrainingFrequency, r.TrainingVolume)
		if err != nil {
			return fmt.Errorf("failed to insert daily activity: %w", err)
		}
	}
	return nil
}

// InsertDailySleeps inserts daily sleep summary rows.
func InsertDailySleeps(tx *sql.Tx, rows []models.DailySleep) error {
	for _, r := range rows {
		_, err := tx.Exec(`
			INSERT INTO daily_sleep (sleep_summary_id, day, score, timestamp,
				deep_sleep, efficiency, latency, rem_sleep, restfulness, timing, total_sleep)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.SleepSummaryID, fmtDay(r.Day), r.Score, fmtTime(r.Timestamp),
			r.DeepSleep, r.Efficiency, r.Latency, r.REMSleep, r.Restfulness,
			r.Timing, r.TotalSleep)
		if err != nil {
			return fmt.Errorf("failed to insert daily sleep: %w", err)
		}
	}
	return nil
}

// InsertSleepPeriods inserts sleep period rows.
func InsertSleepPeriods(tx *sql.Tx, rows []models.SleepPeriod) error {
	for _, r := range rows {
		_, err := tx.Exec(`
			INSERT INTO sleep_periods (sleep_period_id, sleep_summary_id,
				start_datetime, end_datetime, total_sleep_duration, awake_time,
				light_sleep_duration, rem_sleep_duration, deep_sleep_duration,
				restless_periods, average_heart_rate, lowest_heart_rate,
				average_hrv, temperature_delta, bedtime_start, bedtime_end,
				readiness_score_delta)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.SleepPeriodID, r.SleepSummaryID,
			r.StartDatetime.Format(time.RFC3339), r.EndDatetime.Format(time.RFC3339),
			r.TotalSleepDuration, r.AwakeTime, r.LightSleepDuration,
			r.REMSleepDuration, r.DeepSleepDuration, r.RestlessPeriods,
			r.AverageHeartRate, r.LowestHeartRate, r.AverageHRV,
			r.TemperatureDelta, fmtTime(r.BedtimeStart), fmtTime(r.BedtimeEnd),
			r.ReadinessScoreDelta)
		if err != nil {
			return fmt.Errorf("failed to insert sleep period: %w", err)
		}
	}
	return nil
}

// InsertSleepHeartRates inserts sleep heart-rate sample rows.
func InsertSleepHeartRates(tx *sql.Tx, rows []models.SleepHeartRate) error {
	for _, r := range rows {
		_, err := tx.Exec(`
			INSERT INTO sleep_heart_rates (sleep_period_id, timestamp, bpm)
			VALUES (?, ?, ?)`,
			r.SleepPeriodID, r.Timestamp.Format(time.RFC3339), r.BPM)
		if err != nil {
			return fmt.Errorf("failed to insert sleep heart rate: %w", err)
		}
	}
	return nil
}

// InsertSleepHRVs inserts sleep HRV sample rows.
func InsertSleepHRVs(tx *sql.Tx, rows []models.SleepHRV) error {
	for _, r := range rows {
		_, err := tx.Exec(`
			INSERT INTO sleep_hrvs (sleep_period_id, timestamp, rmssd)
			VALUES (?, ?, ?)`,
			r.SleepPeriodID, r.Timestamp.Format(time.RFC3339), r.RMSSD)
		if err != nil {
			return fmt.Errorf("failed to insert sleep hrv: %w", err)
		}
	}
	return nil
}

// InsertDailyReadinesses inserts daily readiness rows.
func InsertDailyReadinesses(tx *sql.Tx, rows []models.DailyReadiness) error {
	for _, r := range rows {
		_, err := tx.Exec(`
			INSERT INTO daily_readiness (readiness_summary_id, day, score, timestamp,
				activity_balance, body_temperature, hrv_balance, previous_day_activity,
				previous_night, recovery_index, resting_heart_rate, sleep_balance)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ReadinessSummaryID, fmtDay(r.Day), r.Score, fmtTime(r.Timestamp),
			r.ActivityBalance, r.BodyTemperature, r.HRVBalance, r.PreviousDayActivity,
			r.PreviousNight, r.RecoveryIndex, r.RestingHeartRate, r.SleepBalance)
		if err != nil {
			return fmt.Errorf("failed to insert daily readiness: %w", err)
		}
	}
	return nil
}

// InsertWorkouts inserts workout rows.
func InsertWorkouts(tx *sql.Tx, rows []models.Workout) error {
	for _, r := range rows {
		_, err := tx.Exec(`
			INSERT INTO workouts (workout_id, activity, calories, day, distance,
				start_datetime, end_datetime, intensity, label, source,
				average_heart_rate, max_heart_rate, movement_speed,
				training_energy, training_time)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.WorkoutID, r.Activity, r.Calories, fmtDay(r.Day), r.Distance,
			fmtTime(r.StartDatetime), fmtTime(r.EndDatetime), r.Intensity,
			r.Label, r.Source, r.AverageHeartRate, r.MaxHeartRate,
			r.MovementSpeed, r.TrainingEnergy, r.TrainingTime)
		if err != nil {
			return fmt.Errorf("failed to insert workout: %w", err)
		}
	}
	return nil
}

// InsertDailySpO2s inserts daily SpO2 rows.
func InsertDailySpO2s(tx *sql.Tx, rows []models.DailySpO2) error {
	for _, r := range rows {
		_, err := tx.Exec(`
			INSERT INTO daily_spo2 (daily_spo2_id, day, timestamp, average, breathing_disturbance_index)
			VALUES (?, ?, ?, ?, ?)`,
			r.DailySpO2ID, fmtDay(r.Day), r.Timestamp.Format(time.RFC3339),
			r.Average, r.BreathingDisturbanceIndex)
		if err != nil {
			return fmt.Errorf("failed to insert daily spo2: %w", err)
		}
	}
	return nil
}

// InsertSpO2Samples inserts SpO2 sample rows.
func InsertSpO2Samples(tx *sql.Tx, rows []models.SpO2Sample) error {
	for _, r := range rows {
		_, err := tx.Exec(`
			INSERT INTO spo2_samples (spo2_sample_id, daily_spo2_id, timestamp, value)
			VALUES (?, ?, ?, ?)`,
			r.SpO2SampleID, r.DailySpO2ID, r.Timestamp.Format(time.RFC3339), r.Value)
		if err != nil {
			return fmt.Errorf("failed to insert spo2 sample: %w", err)
		}
	}
	return nil
}

// InsertDailyStresses inserts daily stress rows.
func InsertDailyStresses(tx *sql.Tx, rows []models.DailyStress) error {
	for _, r := range rows {
		_, err := tx.Exec(`
			INSERT INTO daily_stress (daily_stress_id, day, timestamp, stress_high, recovery_high, day_summary)
			VALUES (?, ?, ?, ?, ?, ?)`,
			r.DailyStressID, fmtDay(r.Day), r.Timestamp.Format(time.RFC3339),
			r.StressHigh, r.RecoveryHigh, r.DaySummary)
		if err != nil {
			return fmt.Errorf("failed to insert daily stress: %w", err)
		}
	}
	return nil
}

// InsertStressSamples inserts stress sample rows.
func InsertStressSamples(tx *sql.Tx, rows []models.StressSample) error {
	for _, r := range rows {
		_, err := tx.Exec(`
			INSERT INTO stress_samples (stress_sample_id, daily_stress_id, timestamp, value, source)
			VALUES (?, ?, ?, ?, ?)`,
			r.StressSampleID, r.DailyStressID, r.Timestamp.Format(time.RFC3339),
			r.Value, r.Source)
		if err != nil {
			return fmt.Errorf("failed to insert stress sample: %w", err)
		}
	}
	return nil
}
