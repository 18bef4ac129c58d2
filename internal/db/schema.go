// ABOUTME: SQL schema definition for the Oura sync database.
// ABOUTME: One table per synced entity; child tables cascade on parent delete.
package db

const schema = `
CREATE TABLE IF NOT EXISTS personal_info (
    personal_info_id TEXT PRIMARY KEY,
    age INTEGER,
    weight REAL,
    height REAL,
    biological_sex TEXT,
    email TEXT
);

CREATE TABLE IF NOT EXISTS ring_configurations (
    ring_id TEXT PRIMARY KEY,
    personal_info_id TEXT NOT NULL REFERENCES personal_info(personal_info_id) ON DELETE CASCADE,
    color TEXT,
    design TEXT,
    firmware_version TEXT,
    hardware_type TEXT,
    set_up_at DATETIME,
    size TEXT
);

CREATE TABLE IF NOT EXISTS daily_activities (
    activity_summary_id TEXT PRIMARY KEY,
    day DATE NOT NULL,
    score INTEGER,
    timestamp DATETIME,
    active_calories INTEGER,
    total_calories INTEGER,
    steps INTEGER,
    equivalent_walking_distance INTEGER,
    inactivity_alerts INTEGER,
    non_wear_time INTEGER,
    resting_time INTEGER,
    meters_to_target INTEGER,
    target_calories INTEGER,
    target_meters INTEGER,
    sedentary_time INTEGER,
    meet_daily_targets INTEGER,
    move_every_hour INTEGER,
    recovery_time INTEGER,
    stay_active INTEGER,
    training_frequency INTEGER,
    training_volume INTEGER
);

CREATE TABLE IF NOT EXISTS daily_sleep (
    sleep_summary_id TEXT PRIMARY KEY,
    day DATE NOT NULL,
    score INTEGER,
    timestamp DATETIME,
    deep_sleep INTEGER,
    efficiency INTEGER,
    latency INTEGER,
    rem_sleep INTEGER,
    restfulness INTEGER,
    timing INTEGER,
    total_sleep INTEGER
);

CREATE TABLE IF NOT EXISTS sleep_periods (
    sleep_period_id TEXT PRIMARY KEY,
    sleep_summary_id TEXT NOT NULL REFERENCES daily_sleep(sleep_summary_id) ON DELETE CASCADE,
    start_datetime DATETIME NOT NULL,
    end_datetime DATETIME NOT NULL,
    total_sleep_duration INTEGER,
    awake_time INTEGER,
    light_sleep_duration INTEGER,
    rem_sleep_duration INTEGER,
    deep_sleep_duration INTEGER,
    restless_periods INTEGER,
    average_heart_rate INTEGER,
    lowest_heart_rate INTEGER,
    average_hrv INTEGER,
    temperature_delta REAL,
    bedtime_start DATETIME,
    bedtime_end DATETIME,
    readiness_score_delta INTEGER
);

CREATE TABLE IF NOT EXISTS sleep_heart_rates (
    sleep_period_id TEXT NOT NULL REFERENCES sleep_periods(sleep_period_id) ON DELETE CASCADE,
    timestamp DATETIME NOT NULL,
    bpm INTEGER,
    PRIMARY KEY (sleep_period_id, timestamp)
);

CREATE TABLE IF NOT EXISTS sleep_hrvs (
    sleep_period_id TEXT NOT NULL REFERENCES sleep_periods(sleep_period_id) ON DELETE CASCADE,
    timestamp DATETIME NOT NULL,
    rmssd REAL,
    PRIMARY KEY (sleep_period_id, timestamp)
);

CREATE TABLE IF NOT EXISTS daily_readiness (
    readiness_summary_id TEXT PRIMARY KEY,
    day DATE NOT NULL,
    score INTEGER,
    timestamp DATETIME,
    activity_balance INTEGER,
    body_temperature INTEGER,
    hrv_balance INTEGER,
    previous_day_activity INTEGER,
    previous_night INTEGER,
    recovery_index INTEGER,
    resting_heart_rate INTEGER,
    sleep_balance INTEGER
);

CREATE TABLE IF NOT EXISTS workouts (
    workout_id TEXT PRIMARY KEY,
    activity TEXT NOT NULL,
    calories INTEGER,
    day DATE,
    distance REAL,
    start_datetime DATETIME,
    end_datetime DATETIME,
    intensity TEXT,
    label TEXT,
    source TEXT NOT NULL,
    average_heart_rate INTEGER,
    max_heart_rate INTEGER,
    movement_speed REAL,
    training_energy INTEGER,
    training_time INTEGER
);

CREATE TABLE IF NOT EXISTS daily_spo2 (
    daily_spo2_id TEXT PRIMARY KEY,
    day DATE NOT NULL,
    timestamp DATETIME NOT NULL,
    average REAL,
    breathing_disturbance_index INTEGER
);

CREATE TABLE IF NOT EXISTS spo2_samples (
    spo2_sample_id TEXT PRIMARY KEY,
    daily_spo2_id TEXT NOT NULL REFERENCES daily_spo2(daily_spo2_id) ON DELETE CASCADE,
    timestamp DATETIME NOT NULL,
    value REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS daily_stress (
    daily_stress_id TEXT PRIMARY KEY,
    day DATE NOT NULL,
    timestamp DATETIME NOT NULL,
    stress_high INTEGER,
    recovery_high INTEGER,
    day_summary TEXT
);

CREATE TABLE IF NOT EXISTS stress_samples (
    stress_sample_id TEXT PRIMARY KEY,
    daily_stress_id TEXT NOT NULL REFERENCES daily_stress(daily_stress_id) ON DELETE CASCADE,
    timestamp DATETIME NOT NULL,
    value REAL,
    source TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_daily_activities_day ON daily_activities(day);
CREATE INDEX IF NOT EXISTS idx_daily_sleep_day ON daily_sleep(day);
CREATE INDEX IF NOT EXISTS idx_daily_readiness_day ON daily_readiness(day);
CREATE INDEX IF NOT EXISTS idx_sleep_periods_summary ON sleep_periods(sleep_summary_id);
CREATE INDEX IF NOT EXISTS idx_workouts_day ON workouts(day);
CREATE INDEX IF NOT EXISTS idx_spo2_samples_daily ON spo2_samples(daily_spo2_id);
CREATE INDEX IF NOT EXISTS idx_stress_samples_daily ON stress_samples(daily_stress_id);
`

// tables lists every synced table in child-before-parent order, so deleting
// in this order never trips a foreign key.
var tables = []string{
	"sleep_heart_rates",
	"sleep_hrvs",
	"sleep_periods",
	"daily_sleep",
	"spo2_samples",
	"daily_spo2",
	"stress_samples",
	"daily_stress",
	"ring_configurations",
	"daily_activities",
	"daily_readiness",
	"workouts",
	"personal_info",
}
