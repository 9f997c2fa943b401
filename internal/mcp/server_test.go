// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and resource handlers.
package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/ironlog/internal/localstore"
	"github.com/harperreed/ironlog/internal/remote/remotetest"
	"github.com/harperreed/ironlog/internal/store"
)

// setupTestServer builds a server over a temp-backed store.
func setupTestServer(t *testing.T) *Server {
	t.Helper()

	local, err := localstore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to open local store: %v", err)
	}
	t.Cleanup(func() { _ = local.Close() })

	st := store.Open(store.Options{Local: local, Remote: remotetest.New()})
	server, err := NewServer(st)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}
	return server
}

func TestNewServer(t *testing.T) {
	server := setupTestServer(t)

	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.store == nil {
		t.Error("Expected non-nil store")
	}
}

func TestHandleStartAndLogSet(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	_, session, err := server.handleStartWorkout(ctx, &mcp.CallToolRequest{}, startWorkoutInput{DayIndex: 1})
	if err != nil {
		t.Fatalf("start_workout failed: %v", err)
	}
	if session == nil {
		t.Fatal("expected a session payload")
	}

	weight := 27.5
	reps := 8
	_, out, err := server.handleLogSet(ctx, &mcp.CallToolRequest{}, logSetInput{
		ExerciseKey: "incline-db-press",
		Weight:      &weight,
		Reps:        &reps,
	})
	if err != nil {
		t.Fatalf("log_set failed: %v", err)
	}
	if out.SetNumber != 1 {
		t.Errorf("SetNumber = %d, want 1", out.SetNumber)
	}
	if !strings.Contains(out.Message, "Incline DB Press") {
		t.Errorf("message %q should name the exercise", out.Message)
	}
}

func TestHandleLogSetWithoutSession(t *testing.T) {
	server := setupTestServer(t)

	_, _, err := server.handleLogSet(context.Background(), &mcp.CallToolRequest{}, logSetInput{ExerciseKey: "leg-press"})
	if err == nil {
		t.Error("expected error when no workout is in progress")
	}
}

func TestHandleCompleteWorkout(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	if _, _, err := server.handleStartWorkout(ctx, &mcp.CallToolRequest{}, startWorkoutInput{DayIndex: 2}); err != nil {
		t.Fatalf("start_workout failed: %v", err)
	}

	duration := 45
	_, out, err := server.handleCompleteWorkout(ctx, &mcp.CallToolRequest{}, completeWorkoutInput{DurationMinutes: &duration})
	if err != nil {
		t.Fatalf("complete_workout failed: %v", err)
	}
	if !strings.Contains(out.Message, "Completed") {
		t.Errorf("unexpected message: %q", out.Message)
	}

	// The draft is gone; completing again must fail.
	if _, _, err := server.handleCompleteWorkout(ctx, &mcp.CallToolRequest{}, completeWorkoutInput{}); err == nil {
		t.Error("expected error with no draft session")
	}
}

func TestHandleSaveStepsValidation(t *testing.T) {
	server := setupTestServer(t)

	_, _, err := server.handleSaveSteps(context.Background(), &mcp.CallToolRequest{}, saveStepsInput{Date: "nope", StepCount: 100})
	if err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestHandleGetNextWorkout(t *testing.T) {
	server := setupTestServer(t)

	_, out, err := server.handleGetNextWorkout(context.Background(), &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("get_next_workout failed: %v", err)
	}
	payload, ok := out.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected payload type %T", out)
	}
	day := payload["day_index"].(int)
	if day < 1 || day > 7 {
		t.Errorf("day_index = %d, want 1-7", day)
	}
}

func TestHandleGetStats(t *testing.T) {
	server := setupTestServer(t)

	_, out, err := server.handleGetStats(context.Background(), &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("get_stats failed: %v", err)
	}
	if out.Streak != 0 || out.WorkoutsThisWeek != 0 {
		t.Errorf("fresh store stats = %+v, want zeros", out)
	}
}

func TestPlanResource(t *testing.T) {
	server := setupTestServer(t)

	res, err := server.handlePlanResource(context.Background(), &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("plan resource failed: %v", err)
	}
	if len(res.Contents) != 1 || !strings.Contains(res.Contents[0].Text, "Upper Push") {
		t.Error("plan resource should include the Day 1 name")
	}
}
