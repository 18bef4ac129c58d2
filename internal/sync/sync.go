// ABOUTME: Sync orchestrator: fetch, normalize, and stage every metric, then
// ABOUTME: replace the whole store inside one transaction.
package sync

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/harperreed/ourasync/internal/db"
	"github.com/harperreed/ourasync/internal/models"
	"github.com/harperreed/ourasync/internal/normalize"
	"github.com/harperreed/ourasync/internal/oura"
	"github.com/oklog/ulid/v2"
)

// DefaultStart is the fixed historical start date for a full sync.
var DefaultStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// Fetcher is the slice of the Oura API the syncer consumes. *oura.Client
// satisfies it; tests substitute fakes.
type Fetcher interface {
	GetPersonalInfo(ctx context.Context) (oura.PersonalInfo, error)
	GetRingConfigurations(ctx context.Context) ([]oura.RingConfiguration, error)
	GetDailyActivity(ctx context.Context, start, end time.Time) ([]oura.DailyActivity, error)
	GetDailySleep(ctx context.Context, start, end time.Time) ([]oura.DailySleep, error)
	GetDailyReadiness(ctx context.Context, start, end time.Time) ([]oura.DailyReadiness, error)
	GetWorkouts(ctx context.Context, start, end time.Time) ([]oura.Workout, error)
	GetDailySpO2(ctx context.Context, start, end time.Time) ([]oura.DailySpO2, error)
	GetDailyStress(ctx context.Context, start, end time.Time) ([]oura.DailyStress, error)
	GetHeartRate(ctx context.Context, start, end time.Time) ([]oura.HeartRateSample, error)
}

// Syncer runs one full-refresh sync: every table is cleared and repopulated
// from freshly fetched data, atomically.
type Syncer struct {
	api    Fetcher
	db     *sql.DB
	logger *log.Logger
}

// NewSyncer creates a Syncer over the given API and database.
func NewSyncer(api Fetcher, database *sql.DB, logger *log.Logger) *Syncer {
	if logger == nil {
		logger = log.Default()
	}
	return &Syncer{api: api, db: database, logger: logger}
}

// NewRunID returns a fresh sync-run identifier, used to key archived payloads.
func NewRunID() string {
	return ulid.Make().String()
}

// staged holds every normalized row for the run before anything is written.
type staged struct {
	personal   []models.PersonalInfo
	rings      []models.RingConfiguration
	activities []models.DailyActivity
	sleeps     []models.DailySleep
	periods    []models.SleepPeriod
	heartRates []models.SleepHeartRate
	hrvs       []models.SleepHRV
	readiness  []models.DailyReadiness
	workouts   []models.Workout
	spo2Days   []models.DailySpO2
	spo2       []models.SpO2Sample
	stressDays []models.DailyStress
	stress     []models.StressSample
}

// Run syncs the date range [start, end]. Zero times fall back to the fixed
// historical start and today. Everything is staged in memory first; the
// store is only touched once every metric has fetched and normalized
// cleanly, and the whole write is one transaction.
func (s *Syncer) Run(ctx context.Context, start, end time.Time) error {
	if start.IsZero() {
		start = DefaultStart
	}
	if end.IsZero() {
		end = time.Now()
	}
	s.logger.Info("starting sync",
		"start", start.Format("2006-01-02"), "end", end.Format("2006-01-02"))

	st, err := s.stage(ctx, start, end)
	if err != nil {
		return err
	}

	if err := s.commit(ctx, st); err != nil {
		return err
	}

	s.logger.Info("sync committed",
		"activities", len(st.activities),
		"sleep_days", len(st.sleeps),
		"sleep_periods", len(st.periods),
		"readiness_days", len(st.readiness),
		"workouts", len(st.workouts),
		"spo2_days", len(st.spo2Days),
		"stress_days", len(st.stressDays))
	return nil
}

func (s *Syncer) stage(ctx context.Context, start, end time.Time) (*staged, error) {
	st := &staged{}

	rawInfo, err := s.api.GetPersonalInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch personal info: %w", err)
	}
	info := normalize.PersonalInfo(rawInfo)
	st.personal = []models.PersonalInfo{info}
	s.logger.Debug("staged personal info", "id", info.PersonalInfoID)

	// Ring configuration is supplementary; a failed fetch degrades to none.
	rawRings, err := s.api.GetRingConfigurations(ctx)
	if err != nil {
		s.logger.Warn("ring configuration fetch failed, skipping", "err", err)
	} else {
		st.rings = normalize.RingConfigurations(rawRings, info.PersonalInfoID)
	}

	rawActivities, err := s.api.GetDailyActivity(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch daily activity: %w", err)
	}
	st.activities = normalize.DailyActivities(rawActivities)
	s.logger.Debug("staged daily activity", "records", len(st.activities))

	rawSleeps, err := s.api.GetDailySleep(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch daily sleep: %w", err)
	}
	st.sleeps, st.periods, st.hrvs = normalize.DailySleeps(rawSleeps)
	st.heartRates = s.stageSleepHeartRates(ctx, st.periods)
	s.logger.Debug("staged daily sleep",
		"records", len(st.sleeps), "periods", len(st.periods),
		"heart_rates", len(st.heartRates), "hrvs", len(st.hrvs))

	rawReadiness, err := s.api.GetDailyReadiness(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch daily readiness: %w", err)
	}
	st.readiness = normalize.DailyReadinesses(rawReadiness)
	s.logger.Debug("staged daily readiness", "records", len(st.readiness))

	rawWorkouts, err := s.api.GetWorkouts(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch workouts: %w", err)
	}
	st.workouts, err = normalize.Workouts(rawWorkouts)
	if err != nil {
		return nil, fmt.Errorf("normalize workouts: %w", err)
	}
	s.logger.Debug("staged workouts", "records", len(st.workouts))

	rawSpO2, err := s.api.GetDailySpO2(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch daily spo2: %w", err)
	}
	st.spo2Days, st.spo2 = normalize.DailySpO2s(rawSpO2)
	s.logger.Debug("staged daily spo2", "records", len(st.spo2Days), "samples", len(st.spo2))

	rawStress, err := s.api.GetDailyStress(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("fetch daily stress: %w", err)
	}
	st.stressDays, st.stress, err = normalize.DailyStresses(rawStress)
	if err != nil {
		return nil, fmt.Errorf("normalize daily stress: %w", err)
	}
	s.logger.Debug("staged daily stress", "records", len(st.stressDays), "samples", len(st.stress))

	return st, nil
}

// stageSleepHeartRates fetches heart-rate samples for each sleep period's
// window. This enrichment is supplementary: a failed fetch logs a warning
// and yields no samples rather than aborting the run.
func (s *Syncer) stageSleepHeartRates(ctx context.Context, periods []models.SleepPeriod) []models.SleepHeartRate {
	var out []models.SleepHeartRate
	for _, p := range periods {
		raws, err := s.api.GetHeartRate(ctx, p.StartDatetime, p.EndDatetime)
		if err != nil {
			s.logger.Warn("sleep heart rate fetch failed, skipping period",
				"period", p.SleepPeriodID, "err", err)
			continue
		}
		out = append(out, normalize.SleepHeartRates(raws, p.SleepPeriodID, p.StartDatetime, p.EndDatetime)...)
	}
	return out
}

// commit replaces the whole store with the staged rows: every table cleared
// child-first, then repopulated parent-first, in one transaction. Any error
// rolls the whole run back.
func (s *Syncer) commit(ctx context.Context, st *staged) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := db.ClearAll(tx); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}

	steps := []struct {
		name   string
		insert func() error
	}{
		{"personal info", func() error { return db.InsertPersonalInfo(tx, st.personal) }},
		{"ring configurations", func() error { return db.InsertRingConfigurations(tx, st.rings) }},
		{"daily activity", func() error { return db.InsertDailyActivities(tx, st.activities) }},
		{"daily sleep", func() error { return db.InsertDailySleeps(tx, st.sleeps) }},
		{"sleep periods", func() error { return db.InsertSleepPeriods(tx, st.periods) }},
		{"sleep heart rates", func() error { return db.InsertSleepHeartRates(tx, st.heartRates) }},
		{"sleep hrvs", func() error { return db.InsertSleepHRVs(tx, st.hrvs) }},
		{"daily readiness", func() error { return db.InsertDailyReadinesses(tx, st.readiness) }},
		{"workouts", func() error { return db.InsertWorkouts(tx, st.workouts) }},
		{"daily spo2", func() error { return db.InsertDailySpO2s(tx, st.spo2Days) }},
		{"spo2 samples", func() error { return db.InsertSpO2Samples(tx, st.spo2) }},
		{"daily stress", func() error { return db.InsertDailyStresses(tx, st.stressDays) }},
		{"stress samples", func() error { return db.InsertStressSamples(tx, st.stress) }},
	}
	for _, step := range steps {
		if err := step.insert(); err != nil {
			return fmt.Errorf("persist %s: %w", step.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
