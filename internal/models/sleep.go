// ABOUTME: Sleep models: daily summary, sleep periods, and per-period samples.
// ABOUTME: Contributor sub-scores are flattened onto the daily summary row.
package models

import "time"

// DailySleep is one day's sleep summary with contributor scores flattened in.
type DailySleep struct {
	SleepSummaryID string
	Day            time.Time
	Score          *int
	Timestamp      *time.Time

	// Contributors
	DeepSleep   *int
	Efficiency  *int
	Latency     *int
	REMSleep    *int
	Restfulness *int
	Timing      *int
	TotalSleep  *int
}

// SleepPeriod is a single sleep session within a day's summary.
// Durations are in seconds.
type SleepPeriod struct {
	SleepPeriodID       string
	SleepSummaryID      string
	StartDatetime       time.Time
	EndDatetime         time.Time
	TotalSleepDuration  *int
	AwakeTime           *int
	LightSleepDuration  *int
	REMSleepDuration    *int
	DeepSleepDuration   *int
	RestlessPeriods     *int
	AverageHeartRate    *int
	LowestHeartRate     *int
	AverageHRV          *int
	TemperatureDelta    *float64
	BedtimeStart        *time.Time
	BedtimeEnd          *time.Time
	ReadinessScoreDelta *int
}

// SleepHeartRate is one heart-rate sample recorded during a sleep period.
// Keyed by (sleep_period_id, timestamp) rather than a synthetic counter so
// samples from separate fetches cannot collide.
type SleepHeartRate struct {
	SleepPeriodID string
	Timestamp     time.Time
	BPM           *int
}

// SleepHRV is one HRV (rmssd) sample recorded during a sleep period.
type SleepHRV struct {
	SleepPeriodID string
	Timestamp     time.Time
	RMSSD         *float64
}
