// ABOUTME: Pure functions mapping raw Oura API payloads to flat entity rows.
// ABOUTME: Flattens contributors, extracts child rows, and parses timestamps.
package normalize

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/ourasync/internal/models"
	"github.com/harperreed/ourasync/internal/oura"
)

// parseTime parses an RFC 3339 timestamp. Absent or malformed strings yield
// nil rather than an error; a missing timestamp is data, not a failure.
func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &t
}

// parseDay parses a YYYY-MM-DD calendar date, returning the zero time when
// absent or malformed.
func parseDay(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// PersonalInfo flattens the raw personal info document. An empty document
// yields a record with the empty-key fallback and every optional field nil.
func PersonalInfo(raw oura.PersonalInfo) models.PersonalInfo {
	return models.PersonalInfo{
		PersonalInfoID: raw.ID,
		Age:            raw.Age,
		Weight:         raw.Weight,
		Height:         raw.Height,
		BiologicalSex:  raw.BiologicalSex,
		Email:          raw.Email,
	}
}

// RingConfigurations maps raw ring records, attaching each to the owning
// personal info row.
func RingConfigurations(raws []oura.RingConfiguration, personalInfoID string) []models.RingConfiguration {
	rings := make([]models.RingConfiguration, 0, len(raws))
	for _, raw := range raws {
		if raw.ID == "" {
			continue
		}
		rings = append(rings, models.RingConfiguration{
			RingID:          raw.ID,
			PersonalInfoID:  personalInfoID,
			Color:           raw.Color,
			Design:          raw.Design,
			FirmwareVersion: raw.FirmwareVersion,
			HardwareType:    raw.HardwareType,
			SetUpAt:         parseTime(raw.SetUpAt),
			Size:            raw.Size,
		})
	}
	return rings
}

// DailyActivities flattens raw activity summaries, hoisting contributor
// sub-scores onto the summary row. Records with no usable keys are skipped.
func DailyActivities(raws []oura.DailyActivity) []models.DailyActivity {
	out := make([]models.DailyActivity, 0, len(raws))
	for _, raw := range raws {
		if raw.ID == "" && raw.Day == "" {
			continue
		}
		a := models.DailyActivity{
			ActivitySummaryID:         raw.ID,
			Day:                       parseDay(raw.Day),
			Score:                     raw.Score,
			Timestamp:                 parseTime(raw.Timestamp),
			ActiveCalories:            raw.ActiveCalories,
			TotalCalories:             raw.TotalCalories,
			Steps:                     raw.Steps,
			EquivalentWalkingDistance: raw.EquivalentWalkingDistance,
			InactivityAlerts:          raw.InactivityAlerts,
			NonWearTime:               raw.NonWearTime,
			RestingTime:               raw.RestingTime,
			MetersToTarget:            raw.MetersToTarget,
			TargetCalories:            raw.TargetCalories,
			TargetMeters:              raw.TargetMeters,
			SedentaryTime:             raw.SedentaryTime,
		}
		if c := raw.Contributors; c != nil {
			a.MeetDailyTargets = c.MeetDailyTargets
			a.MoveEveryHour = c.MoveEveryHour
			a.RecoveryTime = c.RecoveryTime
			a.StayActive = c.StayActive
			a.TrainingFrequency = c.TrainingFrequency
			a.TrainingVolume = c.TrainingVolume
		}
		out = append(out, a)
	}
	return out
}

// DailySleeps flattens raw sleep summaries. Contributor sub-scores become
// sibling fields on the summary; nested sleep periods become child rows, and
// each period's interval-encoded hrv block expands into timestamped samples.
// Only periods with both bedtime bounds are kept.
func DailySleeps(raws []oura.DailySleep) ([]models.DailySleep, []models.SleepPeriod, []models.SleepHRV) {
	summaries := make([]models.DailySleep, 0, len(raws))
	var periods []models.SleepPeriod
	var hrvs []models.SleepHRV

	for _, raw := range raws {
		if raw.ID == "" && raw.Day == "" {
			continue
		}
		s := models.DailySleep{
			SleepSummaryID: raw.ID,
			Day:            parseDay(raw.Day),
			Score:          raw.Score,
			Timestamp:      parseTime(raw.Timestamp),
		}
		if c := raw.Contributors; c != nil {
			s.DeepSleep = c.DeepSleep
			s.Efficiency = c.Efficiency
			s.Latency = c.Latency
			s.REMSleep = c.REMSleep
			s.Restfulness = c.Restfulness
			s.Timing = c.Timing
			s.TotalSleep = c.TotalSleep
		}
		summaries = append(summaries, s)

		for _, rawPeriod := range raw.SleepPeriods {
			start := parseTime(rawPeriod.BedtimeStart)
			end := parseTime(rawPeriod.BedtimeEnd)
			if start == nil || end == nil {
				continue
			}
			p := models.SleepPeriod{
				SleepPeriodID:       rawPeriod.ID,
				SleepSummaryID:      raw.ID,
				StartDatetime:       *start,
				EndDatetime:         *end,
				TotalSleepDuration:  rawPeriod.TotalSleepDuration,
				AwakeTime:           rawPeriod.AwakeTime,
				LightSleepDuration:  rawPeriod.LightSleepDuration,
				REMSleepDuration:    rawPeriod.REMSleepDuration,
				DeepSleepDuration:   rawPeriod.DeepSleepDuration,
				RestlessPeriods:     rawPeriod.RestlessPeriods,
				AverageHeartRate:    rawPeriod.AverageHeartRate,
				LowestHeartRate:     rawPeriod.LowestHeartRate,
				AverageHRV:          rawPeriod.AverageHRV,
				TemperatureDelta:    rawPeriod.TemperatureDelta,
				BedtimeStart:        start,
				BedtimeEnd:          end,
				ReadinessScoreDelta: rawPeriod.ReadinessScoreDelta,
			}
			periods = append(periods, p)
			hrvs = append(hrvs, sleepHRVs(rawPeriod)...)
		}
	}
	return summaries, periods, hrvs
}

// sleepHRVs expands a period's hrv sample block into timestamped rows.
// Null items mean no measurement at that slot and are dropped.
func sleepHRVs(raw oura.SleepPeriod) []models.SleepHRV {
	block := raw.HRV
	if block == nil {
		return nil
	}
	start := parseTime(block.Timestamp)
	if start == nil {
		return nil
	}
	interval := time.Duration(block.Interval * float64(time.Second))
	var out []models.SleepHRV
	for i, item := range block.Items {
		if item == nil {
			continue
		}
		out = append(out, models.SleepHRV{
			SleepPeriodID: raw.ID,
			Timestamp:     start.Add(time.Duration(i) * interval),
			RMSSD:         item,
		})
	}
	return out
}

// DailyReadinesses flattens raw readiness summaries, hoisting contributor
// sub-scores onto the summary row.
func DailyReadinesses(raws []oura.DailyReadiness) []models.DailyReadiness {
	out := make([]models.DailyReadiness, 0, len(raws))
	for _, raw := range raws {
		if raw.ID == "" && raw.Day == "" {
			continue
		}
		r := models.DailyReadiness{
			ReadinessSummaryID: raw.ID,
			Day:                parseDay(raw.Day),
			Score:              raw.Score,
			Timestamp:          parseTime(raw.Timestamp),
		}
		if c := raw.Contributors; c != nil {
			r.ActivityBalance = c.ActivityBalance
			r.BodyTemperature = c.BodyTemperature
			r.HRVBalance = c.HRVBalance
			r.PreviousDayActivity = c.PreviousDayActivity
			r.PreviousNight = c.PreviousNight
			r.RecoveryIndex = c.RecoveryIndex
			r.RestingHeartRate = c.RestingHeartRate
			r.SleepBalance = c.SleepBalance
		}
		out = append(out, r)
	}
	return out
}

// Workouts flattens raw workout records, hoisting the nested heart_rate and
// movement_speed stats. A workout without an id cannot be keyed and fails
// the whole normalization.
func Workouts(raws []oura.Workout) ([]models.Workout, error) {
	out := make([]models.Workout, 0, len(raws))
	for i, raw := range raws {
		if raw.ID == "" {
			return nil, fmt.Errorf("workout record %d has no id", i)
		}
		w := models.Workout{
			WorkoutID:      raw.ID,
			Activity:       raw.Activity,
			Calories:       raw.Calories,
			Day:            parseDay(raw.Day),
			Distance:       raw.Distance,
			StartDatetime:  parseTime(raw.StartDatetime),
			EndDatetime:    parseTime(raw.EndDatetime),
			Intensity:      raw.Intensity,
			Label:          raw.Label,
			Source:         raw.Source,
			TrainingEnergy: raw.TrainingEnergy,
			TrainingTime:   raw.TrainingTime,
		}
		if hr := raw.HeartRate; hr != nil {
			w.AverageHeartRate = hr.Average
			w.MaxHeartRate = hr.Max
		}
		if ms := raw.MovementSpeed; ms != nil {
			w.MovementSpeed = ms.Average
		}
		out = append(out, w)
	}
	return out, nil
}

// DailySpO2s flattens raw blood-oxygen records and extracts their samples.
// The API can return several records for the same day (revisions); the
// first record seen per day wins and later duplicates are discarded,
// samples included. Empty records and records without a day are skipped.
func DailySpO2s(raws []oura.DailySpO2) ([]models.DailySpO2, []models.SpO2Sample) {
	dailies := make([]models.DailySpO2, 0, len(raws))
	var samples []models.SpO2Sample
	seenDays := make(map[string]bool)

	for _, raw := range raws {
		if raw.ID == "" && raw.Day == "" {
			continue
		}
		if raw.Day == "" || seenDays[raw.Day] {
			continue
		}
		seenDays[raw.Day] = true

		day := parseDay(raw.Day)
		d := models.DailySpO2{
			DailySpO2ID:               raw.ID,
			Day:                       day,
			Timestamp:                 day,
			BreathingDisturbanceIndex: raw.BreathingDisturbanceIndex,
		}
		if p := raw.SpO2Percentage; p != nil {
			d.Average = p.Average
		}
		dailies = append(dailies, d)

		for _, rawSample := range raw.Samples {
			ts := parseTime(rawSample.Timestamp)
			if ts == nil {
				continue
			}
			var value float64
			if rawSample.Value != nil {
				value = *rawSample.Value
			}
			samples = append(samples, models.SpO2Sample{
				SpO2SampleID: sampleID(rawSample.ID),
				DailySpO2ID:  raw.ID,
				Timestamp:    *ts,
				Value:        value,
			})
		}
	}
	return dailies, samples
}

// DailyStresses flattens raw stress records and extracts their samples.
// A stress record without a day cannot produce its midnight timestamp and
// fails the whole normalization. Empty records are skipped.
func DailyStresses(raws []oura.DailyStress) ([]models.DailyStress, []models.StressSample, error) {
	dailies := make([]models.DailyStress, 0, len(raws))
	var samples []models.StressSample

	for i, raw := range raws {
		if raw.ID == "" && raw.Day == "" {
			continue
		}
		if raw.Day == "" {
			return nil, nil, fmt.Errorf("stress record %d has no day", i)
		}
		day := parseDay(raw.Day)
		dailies = append(dailies, models.DailyStress{
			DailyStressID: raw.ID,
			Day:           day,
			Timestamp:     day,
			StressHigh:    raw.StressHigh,
			RecoveryHigh:  raw.RecoveryHigh,
			DaySummary:    raw.DaySummary,
		})

		for _, rawSample := range raw.Samples {
			ts := parseTime(rawSample.Timestamp)
			if ts == nil {
				continue
			}
			samples = append(samples, models.StressSample{
				StressSampleID: sampleID(rawSample.ID),
				DailyStressID:  raw.ID,
				Timestamp:      *ts,
				Value:          rawSample.Value,
				Source:         rawSample.Source,
			})
		}
	}
	return dailies, samples, nil
}

// SleepHeartRates keeps the heart-rate samples recorded during the given
// sleep period: sleep-sourced, timestamped, and inside the period window.
// Samples sharing a timestamp keep the first occurrence so the natural key
// stays unique.
func SleepHeartRates(raws []oura.HeartRateSample, periodID string, start, end time.Time) []models.SleepHeartRate {
	var out []models.SleepHeartRate
	seen := make(map[time.Time]bool)
	for _, raw := range raws {
		if raw.Source != "sleep" {
			continue
		}
		ts := parseTime(raw.Timestamp)
		if ts == nil {
			continue
		}
		if ts.Before(start) || ts.After(end) {
			continue
		}
		if seen[*ts] {
			continue
		}
		seen[*ts] = true
		out = append(out, models.SleepHeartRate{
			SleepPeriodID: periodID,
			Timestamp:     *ts,
			BPM:           raw.BPM,
		})
	}
	return out
}

// sampleID returns the source id, or a fresh UUID when the source omits
// one, so sample primary keys never collide on the empty string.
func sampleID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
