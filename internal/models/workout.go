// ABOUTME: Workout model: one tracked workout session from the Oura API.
// ABOUTME: Nested heart_rate and movement_speed stats are hoisted to scalars.
package models

import "time"

// Workout is a single workout session. The workout ID is the only field the
// API guarantees; everything else may be absent.
type Workout struct {
	WorkoutID        string
	Activity         string
	Calories         *int
	Day              time.Time
	Distance         *float64
	StartDatetime    *time.Time
	EndDatetime      *time.Time
	Intensity        *string
	Label            *string
	Source           string
	AverageHeartRate *int
	MaxHeartRate     *int
	MovementSpeed    *float64
	TrainingEnergy   *int
	TrainingTime     *int
}
