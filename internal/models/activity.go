// ABOUTME: DailyActivity model: one day's activity summary from the Oura API.
// ABOUTME: Contributor sub-scores are flattened onto the summary row.
package models

import "time"

// DailyActivity is one day's activity summary with contributors flattened in.
type DailyActivity struct {
	ActivitySummaryID         string
	Day                       time.Time
	Score                     *int
	Timestamp                 *time.Time
	ActiveCalories            *int
	TotalCalories             *int
	Steps                     *int
	EquivalentWalkingDistance *int
	InactivityAlerts          *int
	NonWearTime               *int
	RestingTime               *int
	MetersToTarget            *int
	TargetCalories            *int
	TargetMeters              *int
	SedentaryTime             *int

	// Contributors
	MeetDailyTargets  *int
	MoveEveryHour     *int
	RecoveryTime      *int
	StayActive        *int
	TrainingFrequency *int
	TrainingVolume    *int
}
