// ABOUTME: MCP tool implementations over the synced Oura store.
// ABOUTME: Read-only; the store is only ever written by a sync run.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/ourasync/internal/db"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// get_daily_summary
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_daily_summary",
		Description: "Get sleep, readiness, and activity scores for a day",
	}, s.handleGetDailySummary)

	// list_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List recent workouts, newest first",
	}, s.handleListWorkouts)

	// get_personal_info
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_personal_info",
		Description: "Get the synced Oura account profile",
	}, s.handleGetPersonalInfo)
}

// Tool input/output types

type dailySummaryInput struct {
	Day string `json:"day,omitempty" jsonschema:"description=Calendar day (YYYY-MM-DD); defaults to the most recent synced day"`
}

type listWorkoutsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"description=Max results (default 20)"`
}

type workoutOutput struct {
	WorkoutID string   `json:"workout_id"`
	Activity  string   `json:"activity"`
	Day       string   `json:"day,omitempty"`
	Calories  *int     `json:"calories,omitempty"`
	Distance  *float64 `json:"distance,omitempty"`
	Source    string   `json:"source"`
}

type workoutsOutput struct {
	Workouts []workoutOutput `json:"workouts"`
}

type personalInfoOutput struct {
	PersonalInfoID string   `json:"personal_info_id"`
	Age            *int     `json:"age,omitempty"`
	Weight         *float64 `json:"weight,omitempty"`
	Height         *float64 `json:"height,omitempty"`
	BiologicalSex  *string  `json:"biological_sex,omitempty"`
	Email          *string  `json:"email,omitempty"`
}

// Tool handlers

func (s *Server) handleGetDailySummary(ctx context.Context, req *mcp.CallToolRequest, input dailySummaryInput) (*mcp.CallToolResult, db.DailySummary, error) {
	var day time.Time
	if input.Day != "" {
		parsed, err := time.Parse("2006-01-02", input.Day)
		if err != nil {
			return nil, db.DailySummary{}, fmt.Errorf("invalid day %q: %w", input.Day, err)
		}
		day = parsed
	} else {
		latest, err := db.LatestDay(s.db)
		if err != nil {
			return nil, db.DailySummary{}, err
		}
		if latest.IsZero() {
			return nil, db.DailySummary{}, fmt.Errorf("no synced data - run 'ourasync sync' first")
		}
		day = latest
	}

	summary, err := db.GetDailySummary(s.db, day)
	if err != nil {
		return nil, db.DailySummary{}, err
	}
	return nil, *summary, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, workoutsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}

	workouts, err := db.ListWorkouts(s.db, limit)
	if err != nil {
		return nil, workoutsOutput{}, err
	}

	out := workoutsOutput{Workouts: make([]workoutOutput, 0, len(workouts))}
	for _, w := range workouts {
		wo := workoutOutput{
			WorkoutID: w.WorkoutID,
			Activity:  w.Activity,
			Calories:  w.Calories,
			Distance:  w.Distance,
			Source:    w.Source,
		}
		if !w.Day.IsZero() {
			wo.Day = w.Day.Format("2006-01-02")
		}
		out.Workouts = append(out.Workouts, wo)
	}
	return nil, out, nil
}

func (s *Server) handleGetPersonalInfo(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, personalInfoOutput, error) {
	info, err := db.GetPersonalInfo(s.db)
	if err != nil {
		return nil, personalInfoOutput{}, err
	}
	if info == nil {
		return nil, personalInfoOutput{}, fmt.Errorf("no synced data - run 'ourasync sync' first")
	}
	return nil, personalInfoOutput{
		PersonalInfoID: info.PersonalInfoID,
		Age:            info.Age,
		Weight:         info.Weight,
		Height:         info.Height,
		BiologicalSex:  info.BiologicalSex,
		Email:          info.Email,
	}, nil
}
