// ABOUTME: Tests for the raw payload normalizer.
// ABOUTME: Covers sparse inputs, contributor flattening, dedup, and child rows.
package normalize

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"github.com/harperreed/ourasync/internal/oura"
)

func intp(i int) *int { return &i }

func floatp(f float64) *float64 { return &f }

func TestPersonalInfoEmpty(t *testing.T) {
	got := PersonalInfo(oura.PersonalInfo{})

	if got.PersonalInfoID != "" {
		t.Errorf("expected empty-key fallback, got %q", got.PersonalInfoID)
	}
	if got.Age != nil || got.Weight != nil || got.Height != nil ||
		got.BiologicalSex != nil || got.Email != nil {
		t.Errorf("expected all optional fields nil, got %+v", got)
	}
}

func TestPersonalInfoFull(t *testing.T) {
	sex := "male"
	email := "user@example.com"
	raw := oura.PersonalInfo{
		ID:            "pi-1",
		Age:           intp(38),
		Weight:        floatp(82.5),
		Height:        floatp(1.8),
		BiologicalSex: &sex,
		Email:         &email,
	}

	got := PersonalInfo(raw)
	if got.PersonalInfoID != "pi-1" {
		t.Errorf("PersonalInfoID = %q, want pi-1", got.PersonalInfoID)
	}
	if got.Age == nil || *got.Age != 38 {
		t.Errorf("Age = %v, want 38", got.Age)
	}
	if got.Weight == nil || *got.Weight != 82.5 {
		t.Errorf("Weight = %v, want 82.5", got.Weight)
	}
}

func TestDailySleepScenario(t *testing.T) {
	rawJSON := `{
		"id": "s1",
		"day": "2024-01-05",
		"score": 80,
		"timestamp": "2024-01-05T08:00:00+00:00",
		"contributors": {"deep_sleep": 90, "efficiency": 85},
		"sleep_periods": [{
			"id": "p1",
			"bedtime_start": "2024-01-05T23:00:00+00:00",
			"bedtime_end": "2024-01-06T07:00:00+00:00",
			"total_sleep_duration": 25200
		}]
	}`
	var raw oura.DailySleep
	if err := json.Unmarshal([]byte(rawJSON), &raw); err != nil {
		t.Fatalf("unmarshal raw sleep: %v", err)
	}

	summaries, periods, hrvs := DailySleeps([]oura.DailySleep{raw})

	if len(summaries) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(summaries))
	}
	s := summaries[0]
	if s.SleepSummaryID != "s1" {
		t.Errorf("SleepSummaryID = %q, want s1", s.SleepSummaryID)
	}
	if s.Day.Format("2006-01-02") != "2024-01-05" {
		t.Errorf("Day = %v, want 2024-01-05", s.Day)
	}
	if s.Score == nil || *s.Score != 80 {
		t.Errorf("Score = %v, want 80", s.Score)
	}
	if s.DeepSleep == nil || *s.DeepSleep != 90 {
		t.Errorf("DeepSleep = %v, want 90", s.DeepSleep)
	}
	if s.Efficiency == nil || *s.Efficiency != 85 {
		t.Errorf("Efficiency = %v, want 85", s.Efficiency)
	}
	if s.Latency != nil {
		t.Errorf("Latency should be absent, got %v", *s.Latency)
	}

	if len(periods) != 1 {
		t.Fatalf("expected 1 period, got %d", len(periods))
	}
	p := periods[0]
	if p.SleepPeriodID != "p1" {
		t.Errorf("SleepPeriodID = %q, want p1", p.SleepPeriodID)
	}
	if p.SleepSummaryID != "s1" {
		t.Errorf("SleepSummaryID = %q, want s1", p.SleepSummaryID)
	}
	if p.TotalSleepDuration == nil || *p.TotalSleepDuration != 25200 {
		t.Errorf("TotalSleepDuration = %v, want 25200", p.TotalSleepDuration)
	}
	if p.ReadinessScoreDelta != nil {
		t.Errorf("ReadinessScoreDelta should be absent, got %v", *p.ReadinessScoreDelta)
	}
	if !p.StartDatetime.Equal(time.Date(2024, 1, 5, 23, 0, 0, 0, time.UTC)) {
		t.Errorf("StartDatetime = %v", p.StartDatetime)
	}

	if len(hrvs) != 0 {
		t.Errorf("expected no hrv rows, got %d", len(hrvs))
	}
}

func TestDailySleepSparse(t *testing.T) {
	// No contributors, no periods, no timestamp: nothing should panic and
	// every optional field should be absent.
	summaries, periods, _ := DailySleeps([]oura.DailySleep{{ID: "s2", Day: "2024-02-01"}})

	if len(summaries) != 1 || len(periods) != 0 {
		t.Fatalf("expected 1 summary and 0 periods, got %d/%d", len(summaries), len(periods))
	}
	s := summaries[0]
	if s.Score != nil || s.Timestamp != nil || s.DeepSleep != nil || s.TotalSleep != nil {
		t.Errorf("expected optional fields nil, got %+v", s)
	}
}

func TestDailySleepSkipsEmptyRecords(t *testing.T) {
	summaries, _, _ := DailySleeps([]oura.DailySleep{{}, {ID: "s1", Day: "2024-01-05"}})
	if len(summaries) != 1 {
		t.Errorf("expected empty record skipped, got %d summaries", len(summaries))
	}
}

func TestDailySleepPeriodWithoutBedtimeDropped(t *testing.T) {
	raw := oura.DailySleep{
		ID:  "s1",
		Day: "2024-01-05",
		SleepPeriods: []oura.SleepPeriod{
			{ID: "p1", BedtimeStart: "2024-01-05T23:00:00Z"}, // no end
			{ID: "p2"},
		},
	}
	_, periods, _ := DailySleeps([]oura.DailySleep{raw})
	if len(periods) != 0 {
		t.Errorf("expected periods without both bedtimes dropped, got %d", len(periods))
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := oura.DailySleep{
		ID:        "s1",
		Day:       "2024-01-05",
		Score:     intp(80),
		Timestamp: "2024-01-05T08:00:00+00:00",
		Contributors: &oura.SleepContributors{
			DeepSleep: intp(90), Efficiency: intp(85), Timing: intp(70),
		},
	}

	first, _, _ := DailySleeps([]oura.DailySleep{raw})
	second, _, _ := DailySleeps([]oura.DailySleep{raw})

	if !reflect.DeepEqual(first, second) {
		t.Errorf("normalization not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestSleepHRVExpansion(t *testing.T) {
	raw := oura.DailySleep{
		ID:  "s1",
		Day: "2024-01-05",
		SleepPeriods: []oura.SleepPeriod{{
			ID:           "p1",
			BedtimeStart: "2024-01-05T23:00:00Z",
			BedtimeEnd:   "2024-01-06T07:00:00Z",
			HRV: &oura.SampleBlock{
				Interval:  300,
				Items:     []*float64{floatp(42), nil, floatp(55)},
				Timestamp: "2024-01-05T23:00:00Z",
			},
		}},
	}

	_, _, hrvs := DailySleeps([]oura.DailySleep{raw})
	if len(hrvs) != 2 {
		t.Fatalf("expected 2 hrv rows (nil item dropped), got %d", len(hrvs))
	}
	if hrvs[0].SleepPeriodID != "p1" || *hrvs[0].RMSSD != 42 {
		t.Errorf("unexpected first hrv row: %+v", hrvs[0])
	}
	wantTS := time.Date(2024, 1, 5, 23, 10, 0, 0, time.UTC)
	if !hrvs[1].Timestamp.Equal(wantTS) {
		t.Errorf("second hrv timestamp = %v, want %v", hrvs[1].Timestamp, wantTS)
	}
}

func TestDailyActivityContributorFlattening(t *testing.T) {
	raw := oura.DailyActivity{
		ID:    "a1",
		Day:   "2024-01-05",
		Score: intp(77),
		Steps: intp(9000),
		Contributors: &oura.ActivityContributors{
			MeetDailyTargets:  intp(60),
			MoveEveryHour:     intp(95),
			RecoveryTime:      intp(100),
			StayActive:        intp(80),
			TrainingFrequency: intp(71),
			TrainingVolume:    intp(65),
		},
	}

	got := DailyActivities([]oura.DailyActivity{raw})
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	a := got[0]
	checks := map[string]struct {
		got  *int
		want int
	}{
		"MeetDailyTargets":  {a.MeetDailyTargets, 60},
		"MoveEveryHour":     {a.MoveEveryHour, 95},
		"RecoveryTime":      {a.RecoveryTime, 100},
		"StayActive":        {a.StayActive, 80},
		"TrainingFrequency": {a.TrainingFrequency, 71},
		"TrainingVolume":    {a.TrainingVolume, 65},
	}
	for name, c := range checks {
		if c.got == nil || *c.got != c.want {
			t.Errorf("%s = %v, want %d", name, c.got, c.want)
		}
	}
}

func TestDailyActivityNoContributors(t *testing.T) {
	got := DailyActivities([]oura.DailyActivity{{ID: "a1", Day: "2024-01-05"}})
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	a := got[0]
	if a.MeetDailyTargets != nil || a.TrainingVolume != nil {
		t.Errorf("expected contributor fields nil, got %+v", a)
	}
}

func TestDailyReadinessContributorFlattening(t *testing.T) {
	raw := oura.DailyReadiness{
		ID:  "r1",
		Day: "2024-01-05",
		Contributors: &oura.ReadinessContributors{
			HRVBalance:       intp(88),
			RestingHeartRate: intp(92),
		},
	}

	got := DailyReadinesses([]oura.DailyReadiness{raw})
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	r := got[0]
	if r.HRVBalance == nil || *r.HRVBalance != 88 {
		t.Errorf("HRVBalance = %v, want 88", r.HRVBalance)
	}
	if r.RestingHeartRate == nil || *r.RestingHeartRate != 92 {
		t.Errorf("RestingHeartRate = %v, want 92", r.RestingHeartRate)
	}
	if r.ActivityBalance != nil {
		t.Errorf("ActivityBalance should be absent, got %v", *r.ActivityBalance)
	}
}

func TestWorkoutsHoistNestedStats(t *testing.T) {
	raw := oura.Workout{
		ID:            "w1",
		Activity:      "running",
		Day:           "2024-01-05",
		StartDatetime: "2024-01-05T10:00:00Z",
		EndDatetime:   "2024-01-05T10:45:00Z",
		Source:        "workout_heart_rate",
		HeartRate:     &oura.WorkoutHeartRate{Average: intp(140), Max: intp(172)},
		MovementSpeed: &oura.WorkoutSpeed{Average: floatp(3.2)},
	}

	got, err := Workouts([]oura.Workout{raw})
	if err != nil {
		t.Fatalf("Workouts failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 workout, got %d", len(got))
	}
	w := got[0]
	if w.AverageHeartRate == nil || *w.AverageHeartRate != 140 {
		t.Errorf("AverageHeartRate = %v, want 140", w.AverageHeartRate)
	}
	if w.MaxHeartRate == nil || *w.MaxHeartRate != 172 {
		t.Errorf("MaxHeartRate = %v, want 172", w.MaxHeartRate)
	}
	if w.MovementSpeed == nil || *w.MovementSpeed != 3.2 {
		t.Errorf("MovementSpeed = %v, want 3.2", w.MovementSpeed)
	}
}

func TestWorkoutsMissingIDFails(t *testing.T) {
	_, err := Workouts([]oura.Workout{{Activity: "running", Day: "2024-01-05"}})
	if err == nil {
		t.Fatal("expected error for workout without id")
	}
}

func TestDailySpO2DedupByDay(t *testing.T) {
	raws := []oura.DailySpO2{
		{ID: "o1", Day: "2024-02-01", SpO2Percentage: &oura.SpO2Percentage{Average: floatp(97.5)}},
		{ID: "o2", Day: "2024-02-01", SpO2Percentage: &oura.SpO2Percentage{Average: floatp(91.0)}},
		{ID: "o3", Day: "2024-02-02"},
	}

	dailies, _ := DailySpO2s(raws)
	if len(dailies) != 2 {
		t.Fatalf("expected 2 dailies after dedup, got %d", len(dailies))
	}
	if dailies[0].DailySpO2ID != "o1" {
		t.Errorf("expected first record kept, got %q", dailies[0].DailySpO2ID)
	}
	if dailies[0].Average == nil || *dailies[0].Average != 97.5 {
		t.Errorf("Average = %v, want first record's 97.5", dailies[0].Average)
	}
}

func TestDailySpO2SkipsEmptyAndDaylessRecords(t *testing.T) {
	raws := []oura.DailySpO2{
		{},
		{ID: "o1"}, // no day
		{ID: "o2", Day: "2024-02-01"},
	}
	dailies, _ := DailySpO2s(raws)
	if len(dailies) != 1 || dailies[0].DailySpO2ID != "o2" {
		t.Errorf("expected only o2 kept, got %+v", dailies)
	}
}

func TestDailySpO2Samples(t *testing.T) {
	raws := []oura.DailySpO2{{
		ID:  "o1",
		Day: "2024-02-01",
		Samples: []oura.SpO2Sample{
			{ID: "smp1", Timestamp: "2024-02-01T02:00:00Z", Value: floatp(96.0)},
			{Timestamp: "2024-02-01T02:05:00Z", Value: floatp(95.0)}, // no id
			{ID: "smp3"}, // no timestamp, dropped
		},
	}}

	dailies, samples := DailySpO2s(raws)
	if len(dailies) != 1 {
		t.Fatalf("expected 1 daily, got %d", len(dailies))
	}
	if !dailies[0].Timestamp.Equal(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("daily timestamp = %v, want midnight UTC", dailies[0].Timestamp)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}
	if samples[0].SpO2SampleID != "smp1" || samples[0].Value != 96.0 {
		t.Errorf("unexpected first sample: %+v", samples[0])
	}
	if samples[1].SpO2SampleID == "" {
		t.Error("expected generated id for sample without one")
	}
	if samples[1].DailySpO2ID != "o1" {
		t.Errorf("sample parent = %q, want o1", samples[1].DailySpO2ID)
	}
}

func TestDailyStress(t *testing.T) {
	summary := "stressful"
	raws := []oura.DailyStress{{
		ID:         "st1",
		Day:        "2024-03-01",
		StressHigh: intp(7200),
		DaySummary: &summary,
		Samples: []oura.StressSample{
			{ID: "ss1", Timestamp: "2024-03-01T09:00:00Z", Value: floatp(42), Source: "awake"},
		},
	}}

	dailies, samples, err := DailyStresses(raws)
	if err != nil {
		t.Fatalf("DailyStresses failed: %v", err)
	}
	if len(dailies) != 1 || len(samples) != 1 {
		t.Fatalf("expected 1 daily and 1 sample, got %d/%d", len(dailies), len(samples))
	}
	d := dailies[0]
	if !d.Timestamp.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("timestamp = %v, want midnight UTC", d.Timestamp)
	}
	if d.RecoveryHigh != nil {
		t.Errorf("RecoveryHigh should be absent, got %v", *d.RecoveryHigh)
	}
	if samples[0].Source != "awake" {
		t.Errorf("sample source = %q, want awake", samples[0].Source)
	}
}

func TestDailyStressMissingDayFails(t *testing.T) {
	_, _, err := DailyStresses([]oura.DailyStress{{ID: "st1"}})
	if err == nil {
		t.Fatal("expected error for stress record without day")
	}
}

func TestDailyStressSkipsEmptyRecords(t *testing.T) {
	dailies, _, err := DailyStresses([]oura.DailyStress{{}, {ID: "st1", Day: "2024-03-01"}})
	if err != nil {
		t.Fatalf("DailyStresses failed: %v", err)
	}
	if len(dailies) != 1 {
		t.Errorf("expected empty record skipped, got %d dailies", len(dailies))
	}
}

func TestSleepHeartRates(t *testing.T) {
	start := time.Date(2024, 1, 5, 23, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 6, 7, 0, 0, 0, time.UTC)

	raws := []oura.HeartRateSample{
		{BPM: intp(52), Source: "sleep", Timestamp: "2024-01-06T01:00:00Z"},
		{BPM: intp(54), Source: "sleep", Timestamp: "2024-01-06T01:00:00Z"}, // dup timestamp
		{BPM: intp(70), Source: "awake", Timestamp: "2024-01-06T02:00:00Z"},
		{BPM: intp(55), Source: "sleep", Timestamp: "2024-01-06T09:00:00Z"}, // outside window
		{BPM: intp(50), Source: "sleep"},                                   // no timestamp
	}

	got := SleepHeartRates(raws, "p1", start, end)
	if len(got) != 1 {
		t.Fatalf("expected 1 sample, got %d", len(got))
	}
	if *got[0].BPM != 52 {
		t.Errorf("BPM = %d, want first duplicate's 52", *got[0].BPM)
	}
	if got[0].SleepPeriodID != "p1" {
		t.Errorf("SleepPeriodID = %q, want p1", got[0].SleepPeriodID)
	}
}

func TestRingConfigurations(t *testing.T) {
	colorSilver := "silver"
	raws := []oura.RingConfiguration{
		{ID: "ring-1", Color: &colorSilver, SetUpAt: "2024-01-01T12:00:00Z"},
		{}, // no id, dropped
	}

	got := RingConfigurations(raws, "pi-1")
	if len(got) != 1 {
		t.Fatalf("expected 1 ring, got %d", len(got))
	}
	r := got[0]
	if r.PersonalInfoID != "pi-1" {
		t.Errorf("PersonalInfoID = %q, want pi-1", r.PersonalInfoID)
	}
	if r.SetUpAt == nil {
		t.Error("SetUpAt should be parsed")
	}
}

func TestParseTimeMalformed(t *testing.T) {
	cases := []string{"", "not-a-time", "2024-13-99"}
	for _, c := range cases {
		if got := parseTime(c); got != nil {
			t.Errorf("parseTime(%q) = %v, want nil", c, got)
		}
	}
}
