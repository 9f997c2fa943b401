// ABOUTME: MCP resource implementations for the workout tracker.
// ABOUTME: Provides ironlog://plan, ironlog://today, and ironlog://summary.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/ironlog/internal/plan"
)

func (s *Server) registerResources() {
	// ironlog://plan - The full 7-day workout plan
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "ironlog://plan",
		Name:        "Workout Plan",
		Description: "The full 7-day workout rotation with exercises",
		MIMEType:    "application/json",
	}, s.handlePlanResource)

	// ironlog://today - Today's session, if in progress
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "ironlog://today",
		Name:        "Today's Workout",
		Description: "Today's workout session with logged sets",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// ironlog://summary - Next workout, streak, and week counts
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "ironlog://summary",
		Name:        "Training Summary",
		Description: "Next scheduled workout plus streak and weekly stats",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)
}

// Resource handlers

func (s *Server) handlePlanResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource("ironlog://plan", plan.Days)
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	session, ok := s.store.TodaySession()
	if !ok {
		return jsonResource("ironlog://today", map[string]interface{}{
			"message": "No workout in progress today.",
		})
	}
	return jsonResource("ironlog://today", session)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	nextDay := s.store.NextWorkoutDay()
	day, _ := plan.Day(nextDay)

	summary := map[string]interface{}{
		"next_day_index":     nextDay,
		"next_day_name":      day.Name,
		"next_day_weekday":   s.store.DayOfWeekLabel(nextDay),
		"streak":             s.store.Streak(),
		"workouts_this_week": s.store.WorkoutsThisWeek(),
		"steps_average_7d":   s.store.StepsAverage7Days(),
		"queued_writes":      s.store.QueueLen(),
	}
	return jsonResource("ironlog://summary", summary)
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
