// ABOUTME: DailyReadiness model: one day's readiness summary from the Oura API.
// ABOUTME: Contributor sub-scores are flattened onto the summary row.
package models

import "time"

// DailyReadiness is one day's readiness summary with contributors flattened in.
type DailyReadiness struct {
	ReadinessSummaryID string
	Day                time.Time
	Score              *int
	Timestamp          *time.Time

	// Contributors
	ActivityBalance     *int
	BodyTemperature     *int
	HRVBalance          *int
	PreviousDayActivity *int
	PreviousNight       *int
	RecoveryIndex       *int
	RestingHeartRate    *int
	SleepBalance        *int
}
