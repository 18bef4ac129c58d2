// ABOUTME: HTTP client for the Oura v2 REST API.
// ABOUTME: Handles bearer auth, date-range defaults, and next_token pagination.
package oura

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the production Oura API host.
const DefaultBaseURL = "https://api.ouraring.com"

const (
	pathPersonalInfo      = "/v2/usercollection/personal_info"
	pathRingConfiguration = "/v2/usercollection/ring_configuration"
	pathDailySleep        = "/v2/usercollection/daily_sleep"
	pathDailyActivity     = "/v2/usercollection/daily_activity"
	pathDailyReadiness    = "/v2/usercollection/daily_readiness"
	pathWorkout           = "/v2/usercollection/workout"
	pathDailySpO2         = "/v2/usercollection/daily_spo2"
	pathDailyStress       = "/v2/usercollection/daily_stress"
	pathHeartRate         = "/v2/usercollection/heartrate"
)

// Client talks to the Oura API. It does not retry; failures surface to the
// caller unchanged.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client

	// Recorder, when set, receives every raw response body before it is
	// decoded. Used to archive payloads for later replay.
	Recorder func(endpoint string, body []byte)
}

// NewClient creates a client authenticated with the given personal access token.
func NewClient(token string) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// page is the envelope wrapping every list endpoint response.
type page[T any] struct {
	Data      []T     `json:"data"`
	NextToken *string `json:"next_token"`
}

// dateRange fills in the API's default reporting window: yesterday through
// today, in local calendar dates.
func dateRange(start, end time.Time) (string, string) {
	now := time.Now()
	if start.IsZero() {
		start = now.AddDate(0, 0, -1)
	}
	if end.IsZero() {
		end = now
	}
	return start.Format("2006-01-02"), end.Format("2006-01-02")
}

// GetPersonalInfo fetches the account holder's profile document.
func (c *Client) GetPersonalInfo(ctx context.Context) (PersonalInfo, error) {
	var info PersonalInfo
	if err := c.getJSON(ctx, pathPersonalInfo, nil, &info); err != nil {
		return PersonalInfo{}, err
	}
	return info, nil
}

// GetRingConfigurations fetches all ring configuration records.
func (c *Client) GetRingConfigurations(ctx context.Context) ([]RingConfiguration, error) {
	return getPaged[RingConfiguration](ctx, c, pathRingConfiguration, nil)
}

// GetDailySleep fetches daily sleep summaries for the date range.
func (c *Client) GetDailySleep(ctx context.Context, start, end time.Time) ([]DailySleep, error) {
	return getPaged[DailySleep](ctx, c, pathDailySleep, dateParams(start, end))
}

// GetDailyActivity fetches daily activity summaries for the date range.
func (c *Client) GetDailyActivity(ctx context.Context, start, end time.Time) ([]DailyActivity, error) {
	return getPaged[DailyActivity](ctx, c, pathDailyActivity, dateParams(start, end))
}

// GetDailyReadiness fetches daily readiness summaries for the date range.
func (c *Client) GetDailyReadiness(ctx context.Context, start, end time.Time) ([]DailyReadiness, error) {
	return getPaged[DailyReadiness](ctx, c, pathDailyReadiness, dateParams(start, end))
}

// GetWorkouts fetches workout records for the date range.
func (c *Client) GetWorkouts(ctx context.Context, start, end time.Time) ([]Workout, error) {
	return getPaged[Workout](ctx, c, pathWorkout, dateParams(start, end))
}

// GetDailySpO2 fetches daily blood-oxygen records for the date range.
func (c *Client) GetDailySpO2(ctx context.Context, start, end time.Time) ([]DailySpO2, error) {
	return getPaged[DailySpO2](ctx, c, pathDailySpO2, dateParams(start, end))
}

// GetDailyStress fetches daily stress records for the date range.
func (c *Client) GetDailyStress(ctx context.Context, start, end time.Time) ([]DailyStress, error) {
	return getPaged[DailyStress](ctx, c, pathDailyStress, dateParams(start, end))
}

// GetHeartRate fetches heart-rate samples between two instants. The
// heartrate endpoint takes full datetimes rather than calendar dates.
func (c *Client) GetHeartRate(ctx context.Context, start, end time.Time) ([]HeartRateSample, error) {
	now := time.Now().UTC()
	if start.IsZero() {
		start = now.AddDate(0, 0, -1)
	}
	if end.IsZero() {
		end = now
	}
	params := url.Values{}
	params.Set("start_datetime", start.UTC().Format(time.RFC3339))
	params.Set("end_datetime", end.UTC().Format(time.RFC3339))
	return getPaged[HeartRateSample](ctx, c, pathHeartRate, params)
}

func dateParams(start, end time.Time) url.Values {
	startStr, endStr := dateRange(start, end)
	params := url.Values{}
	params.Set("start_date", startStr)
	params.Set("end_date", endStr)
	return params
}

// getPaged follows next_token pagination until the endpoint is exhausted.
func getPaged[T any](ctx context.Context, c *Client, path string, params url.Values) ([]T, error) {
	if params == nil {
		params = url.Values{}
	}
	var all []T
	for {
		var p page[T]
		if err := c.getJSON(ctx, path, params, &p); err != nil {
			return nil, err
		}
		all = append(all, p.Data...)
		if p.NextToken == nil || *p.NextToken == "" {
			return all, nil
		}
		params.Set("next_token", *p.NextToken)
	}
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	u := c.BaseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request for %s: %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)

	httpc := c.HTTPClient
	if httpc == nil {
		httpc = http.DefaultClient
	}

	resp, err := httpc.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch %s: unexpected status %d", path, resp.StatusCode)
	}

	if c.Recorder != nil {
		c.Recorder(path, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}
