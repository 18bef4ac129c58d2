// ABOUTME: SpO2 models: daily blood-oxygen summary plus individual samples.
// ABOUTME: Daily rows are deduplicated by day during normalization (first wins).
package models

import "time"

// DailySpO2 is one day's blood-oxygen summary.
type DailySpO2 struct {
	DailySpO2ID               string
	Day                       time.Time
	Timestamp                 time.Time
	Average                   *float64
	BreathingDisturbanceIndex *int
}

// SpO2Sample is one blood-oxygen measurement belonging to a daily summary.
type SpO2Sample struct {
	SpO2SampleID string
	DailySpO2ID  string
	Timestamp    time.Time
	Value        float64
}
