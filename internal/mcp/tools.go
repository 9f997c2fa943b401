// ABOUTME: MCP tool implementations for the workout tracker.
// ABOUTME: Session lifecycle, set logging, steps, scheduling and settings.
package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/ironlog/internal/models"
	"github.com/harperreed/ironlog/internal/plan"
)

func (s *Server) registerTools() {
	// get_today
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_today",
		Description: "Get today's workout session, if one is in progress",
	}, s.handleGetToday)

	// start_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_workout",
		Description: "Start (or resume) today's workout session",
	}, s.handleStartWorkout)

	// log_set
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_set",
		Description: "Log one set of an exercise in today's session",
	}, s.handleLogSet)

	// complete_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "complete_workout",
		Description: "Mark today's workout session as completed",
	}, s.handleCompleteWorkout)

	// save_steps
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "save_steps",
		Description: "Record the step count for a date",
	}, s.handleSaveSteps)

	// get_next_workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_next_workout",
		Description: "Get the next scheduled workout day and its exercises",
	}, s.handleGetNextWorkout)

	// get_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get streak, workouts this week, and 7-day step average",
	}, s.handleGetStats)

	// update_settings
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update_settings",
		Description: "Update tracker settings (units, step goal, next-day override)",
	}, s.handleUpdateSettings)

	// export_data
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "export_data",
		Description: "Export all workout data as JSON",
	}, s.handleExportData)

	// sync_status
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "sync_status",
		Description: "Report pending queued writes awaiting sync",
	}, s.handleSyncStatus)
}

// Tool input/output types

type startWorkoutInput struct {
	DayIndex int `json:"day_index,omitempty" jsonschema:"Plan day 1-7; omit to use the scheduled next day"`
}

type logSetInput struct {
	ExerciseKey string   `json:"exercise_key" jsonschema:"Plan exercise key (e.g. incline-db-press)"`
	Weight      *float64 `json:"weight,omitempty" jsonschema:"Weight used"`
	Reps        *int     `json:"reps,omitempty" jsonschema:"Reps performed (seconds for timed exercises)"`
	RPE         *float64 `json:"rpe,omitempty" jsonschema:"Rating of perceived exertion"`
	Notes       string   `json:"notes,omitempty" jsonschema:"Optional notes"`
}

type completeWorkoutInput struct {
	DurationMinutes *int `json:"duration_minutes,omitempty" jsonschema:"Total duration in minutes"`
}

type saveStepsInput struct {
	Date      string `json:"date" jsonschema:"Date (YYYY-MM-DD)"`
	StepCount int    `json:"step_count" jsonschema:"Steps for the date"`
}

type updateSettingsInput struct {
	Units              string `json:"units,omitempty" jsonschema:"Weight units: kg or lb"`
	StepGoal           *int   `json:"step_goal,omitempty" jsonschema:"Daily step goal"`
	ManualNextDay      *int   `json:"manual_next_day,omitempty" jsonschema:"Override the next workout day (1-7)"`
	ClearManualNextDay bool   `json:"clear_manual_next_day,omitempty" jsonschema:"Reset the override to automatic scheduling"`
	IncludeDay4        *bool  `json:"include_day4,omitempty" jsonschema:"Include the active recovery day in rotation"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type setOutput struct {
	SetID     string `json:"set_id"`
	SetNumber int    `json:"set_number"`
	Message   string `json:"message"`
}

type statsOutput struct {
	Streak           int `json:"streak"`
	WorkoutsThisWeek int `json:"workouts_this_week"`
	StepsAverage7d   int `json:"steps_average_7d"`
	QueuedWrites     int `json:"queued_writes"`
}

// Tool handlers

func (s *Server) handleGetToday(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	session, ok := s.store.TodaySession()
	if !ok {
		return nil, map[string]interface{}{"message": "No workout in progress today."}, nil
	}
	return nil, session, nil
}

func (s *Server) handleStartWorkout(ctx context.Context, req *mcp.CallToolRequest, input startWorkoutInput) (*mcp.CallToolResult, any, error) {
	session, err := s.store.StartTodaySession(input.DayIndex)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start workout: %w", err)
	}
	return nil, session, nil
}

func (s *Server) handleLogSet(ctx context.Context, req *mcp.CallToolRequest, input logSetInput) (*mcp.CallToolResult, setOutput, error) {
	session, ok := s.store.TodaySession()
	if !ok {
		return nil, setOutput{}, fmt.Errorf("no workout in progress: call start_workout first")
	}

	day, _ := plan.Day(session.DayIndex)
	name := input.ExerciseKey
	for _, ex := range day.Exercises {
		if ex.Key == input.ExerciseKey {
			name = ex.Name
			break
		}
	}

	set := models.NewWorkoutSet(session.ID, input.ExerciseKey, name)
	if input.Weight != nil {
		set = set.WithWeight(*input.Weight)
	}
	if input.Reps != nil {
		set = set.WithReps(*input.Reps)
	}
	if input.RPE != nil {
		set = set.WithRPE(*input.RPE)
	}
	set.Notes = input.Notes

	session.AddSet(set)
	if err := s.store.SaveSessionDebounced(session); err != nil {
		return nil, setOutput{}, fmt.Errorf("failed to save set: %w", err)
	}

	logged := session.Sets[len(session.Sets)-1]
	return nil, setOutput{
		SetID:     logged.ID,
		SetNumber: logged.SetNumber,
		Message:   fmt.Sprintf("Logged %s set %d", name, logged.SetNumber),
	}, nil
}

func (s *Server) handleCompleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input completeWorkoutInput) (*mcp.CallToolResult, simpleOutput, error) {
	session, ok := s.store.TodaySession()
	if !ok {
		return nil, simpleOutput{}, fmt.Errorf("no workout in progress today")
	}

	session.Complete(input.DurationMinutes)
	if err := s.store.SaveSession(session); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to complete workout: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Completed %s with %d sets", session.DayName, len(session.Sets)),
	}, nil
}

func (s *Server) handleSaveSteps(ctx context.Context, req *mcp.CallToolRequest, input saveStepsInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.store.SaveSteps(input.Date, input.StepCount); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save steps: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Recorded %d steps for %s", input.StepCount, input.Date),
	}, nil
}

func (s *Server) handleGetNextWorkout(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	dayIndex := s.store.NextWorkoutDay()
	day, ok := plan.Day(dayIndex)
	if !ok {
		return nil, nil, fmt.Errorf("no plan day for index %d", dayIndex)
	}

	return nil, map[string]interface{}{
		"day_index":   day.DayIndex,
		"name":        day.Name,
		"description": day.Description,
		"weekday":     s.store.DayOfWeekLabel(dayIndex),
		"exercises":   day.Exercises,
	}, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, statsOutput, error) {
	return nil, statsOutput{
		Streak:           s.store.Streak(),
		WorkoutsThisWeek: s.store.WorkoutsThisWeek(),
		StepsAverage7d:   s.store.StepsAverage7Days(),
		QueuedWrites:     s.store.QueueLen(),
	}, nil
}

func (s *Server) handleUpdateSettings(ctx context.Context, req *mcp.CallToolRequest, input updateSettingsInput) (*mcp.CallToolResult, any, error) {
	patch := models.SettingsPatch{
		StepGoal:            input.StepGoal,
		ManualNextDay:       input.ManualNextDay,
		ClearManualNextDay:  input.ClearManualNextDay,
		IncludeDay4Recovery: input.IncludeDay4,
	}
	if input.Units != "" {
		patch.Units = &input.Units
	}

	if err := s.store.UpdateSettings(patch); err != nil {
		return nil, nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return nil, s.store.Settings(), nil
}

func (s *Server) handleExportData(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, simpleOutput, error) {
	data, err := s.store.ExportData()
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to export: %w", err)
	}
	return nil, simpleOutput{Message: string(data)}, nil
}

func (s *Server) handleSyncStatus(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	return nil, map[string]interface{}{
		"queued_writes": s.store.QueueLen(),
	}, nil
}
