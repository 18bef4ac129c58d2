// ABOUTME: Stress models: daily stress summary plus individual samples.
// ABOUTME: The daily timestamp is derived from the day at midnight UTC.
package models

import "time"

// DailyStress is one day's stress summary.
type DailyStress struct {
	DailyStressID string
	Day           time.Time
	Timestamp     time.Time
	StressHigh    *int
	RecoveryHigh  *int
	DaySummary    *string
}

// StressSample is one stress measurement belonging to a daily summary.
type StressSample struct {
	StressSampleID string
	DailyStressID  string
	Timestamp      time.Time
	Value          *float64
	Source         string
}
