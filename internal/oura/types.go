// ABOUTME: Raw payload shapes returned by the Oura v2 REST API.
// ABOUTME: Timestamps stay strings here; parsing happens in the normalizer.
package oura

// PersonalInfo is the raw personal_info document.
type PersonalInfo struct {
	ID            string   `json:"id"`
	Age           *int     `json:"age"`
	Weight        *float64 `json:"weight"`
	Height        *float64 `json:"height"`
	BiologicalSex *string  `json:"biological_sex"`
	Email         *string  `json:"email"`
}

// RingConfiguration is one raw ring_configuration record.
type RingConfiguration struct {
	ID              string  `json:"id"`
	Color           *string `json:"color"`
	Design          *string `json:"design"`
	FirmwareVersion *string `json:"firmware_version"`
	HardwareType    *string `json:"hardware_type"`
	SetUpAt         string  `json:"set_up_at"`
	Size            *string `json:"size"`
}

// SleepContributors are the sub-scores composing a daily sleep score.
type SleepContributors struct {
	DeepSleep   *int `json:"deep_sleep"`
	Efficiency  *int `json:"efficiency"`
	Latency     *int `json:"latency"`
	REMSleep    *int `json:"rem_sleep"`
	Restfulness *int `json:"restfulness"`
	Timing      *int `json:"timing"`
	TotalSleep  *int `json:"total_sleep"`
}

// SampleBlock is the API's interval-encoded sample series: one value every
// Interval seconds starting at Timestamp. Items may contain nulls.
type SampleBlock struct {
	Interval  float64    `json:"interval"`
	Items     []*float64 `json:"items"`
	Timestamp string     `json:"timestamp"`
}

// SleepPeriod is one raw sleep session nested inside a daily sleep record.
type SleepPeriod struct {
	ID                  string       `json:"id"`
	BedtimeStart        string       `json:"bedtime_start"`
	BedtimeEnd          string       `json:"bedtime_end"`
	TotalSleepDuration  *int         `json:"total_sleep_duration"`
	AwakeTime           *int         `json:"awake_time"`
	LightSleepDuration  *int         `json:"light_sleep_duration"`
	REMSleepDuration    *int         `json:"rem_sleep_duration"`
	DeepSleepDuration   *int         `json:"deep_sleep_duration"`
	RestlessPeriods     *int         `json:"restless_periods"`
	AverageHeartRate    *int         `json:"average_heart_rate"`
	LowestHeartRate     *int         `json:"lowest_heart_rate"`
	AverageHRV          *int         `json:"average_hrv"`
	TemperatureDelta    *float64     `json:"temperature_delta"`
	ReadinessScoreDelta *int         `json:"readiness_score_delta"`
	HRV                 *SampleBlock `json:"hrv"`
}

// DailySleep is one raw daily_sleep record.
type DailySleep struct {
	ID           string             `json:"id"`
	Day          string             `json:"day"`
	Score        *int               `json:"score"`
	Timestamp    string             `json:"timestamp"`
	Contributors *SleepContributors `json:"contributors"`
	SleepPeriods []SleepPeriod      `json:"sleep_periods"`
}

// ActivityContributors are the sub-scores composing a daily activity score.
type ActivityContributors struct {
	MeetDailyTargets  *int `json:"meet_daily_targets"`
	MoveEveryHour     *int `json:"move_every_hour"`
	RecoveryTime      *int `json:"recovery_time"`
	StayActive        *int `json:"stay_active"`
	TrainingFrequency *int `json:"training_frequency"`
	TrainingVolume    *int `json:"training_volume"`
}

// DailyActivity is one raw daily_activity record.
type DailyActivity struct {
	ID                        string                `json:"id"`
	Day                       string                `json:"day"`
	Score                     *int                  `json:"score"`
	Timestamp                 string                `json:"timestamp"`
	ActiveCalories            *int                  `json:"active_calories"`
	TotalCalories             *int                  `json:"total_calories"`
	Steps                     *int                  `json:"steps"`
	EquivalentWalkingDistance *int                  `json:"equivalent_walking_distance"`
	InactivityAlerts          *int                  `json:"inactivity_alerts"`
	NonWearTime               *int                  `json:"non_wear_time"`
	RestingTime               *int                  `json:"resting_time"`
	MetersToTarget            *int                  `json:"meters_to_target"`
	TargetCalories            *int                  `json:"target_calories"`
	TargetMeters              *int                  `json:"target_meters"`
	SedentaryTime             *int                  `json:"sedentary_time"`
	Contributors              *ActivityContributors `json:"contributors"`
}

// ReadinessContributors are the sub-scores composing a daily readiness score.
type ReadinessContributors struct {
	ActivityBalance     *int `json:"activity_balance"`
	BodyTemperature     *int `json:"body_temperature"`
	HRVBalance          *int `json:"hrv_balance"`
	PreviousDayActivity *int `json:"previous_day_activity"`
	PreviousNight       *int `json:"previous_night"`
	RecoveryIndex       *int `json:"recovery_index"`
	RestingHeartRate    *int `json:"resting_heart_rate"`
	SleepBalance        *int `json:"sleep_balance"`
}

// DailyReadiness is one raw daily_readiness record.
type DailyReadiness struct {
	ID           string                 `json:"id"`
	Day          string                 `json:"day"`
	Score        *int                   `json:"score"`
	Timestamp    string                 `json:"timestamp"`
	Contributors *ReadinessContributors `json:"contributors"`
}

// WorkoutHeartRate is the nested heart-rate stats object on a workout.
type WorkoutHeartRate struct {
	Average *int `json:"average"`
	Max     *int `json:"max"`
}

// WorkoutSpeed is the nested movement-speed stats object on a workout.
type WorkoutSpeed struct {
	Average *float64 `json:"average"`
}

// Workout is one raw workout record.
type Workout struct {
	ID             string            `json:"id"`
	Activity       string            `json:"activity"`
	Calories       *int              `json:"calories"`
	Day            string            `json:"day"`
	Distance       *float64          `json:"distance"`
	StartDatetime  string            `json:"start_datetime"`
	EndDatetime    string            `json:"end_datetime"`
	Intensity      *string           `json:"intensity"`
	Label          *string           `json:"label"`
	Source         string            `json:"source"`
	HeartRate      *WorkoutHeartRate `json:"heart_rate"`
	MovementSpeed  *WorkoutSpeed     `json:"movement_speed"`
	TrainingEnergy *int              `json:"training_energy"`
	TrainingTime   *int              `json:"training_time"`
}

// SpO2Percentage is the nested average object on a daily SpO2 record.
type SpO2Percentage struct {
	Average *float64 `json:"average"`
}

// SpO2Sample is one raw blood-oxygen measurement.
type SpO2Sample struct {
	ID        string   `json:"id"`
	Timestamp string   `json:"timestamp"`
	Value     *float64 `json:"value"`
}

// DailySpO2 is one raw daily_spo2 record. The API may return more than one
// record for the same day (revisions); the normalizer keeps the first.
type DailySpO2 struct {
	ID                        string          `json:"id"`
	Day                       string          `json:"day"`
	SpO2Percentage            *SpO2Percentage `json:"spo2_percentage"`
	BreathingDisturbanceIndex *int            `json:"breathing_disturbance_index"`
	Samples                   []SpO2Sample    `json:"samples"`
}

// StressSample is one raw stress measurement.
type StressSample struct {
	ID        string   `json:"id"`
	Timestamp string   `json:"timestamp"`
	Value     *float64 `json:"value"`
	Source    string   `json:"source"`
}

// DailyStress is one raw daily_stress record.
type DailyStress struct {
	ID           string         `json:"id"`
	Day          string         `json:"day"`
	StressHigh   *int           `json:"stress_high"`
	RecoveryHigh *int           `json:"recovery_high"`
	DaySummary   *string        `json:"day_summary"`
	Samples      []StressSample `json:"samples"`
}

// HeartRateSample is one raw heartrate record. Source distinguishes awake,
// workout, and sleep samples.
type HeartRateSample struct {
	BPM       *int   `json:"bpm"`
	Source    string `json:"source"`
	Timestamp string `json:"timestamp"`
}
