// ABOUTME: Tests for WorkoutSession state machine and set management.
// ABOUTME: Covers ordinal assignment, renumbering, and completion.
package models

import (
	"testing"
	"time"
)

func TestNewSessionIsDraft(t *testing.T) {
	s := NewSession(1, "Upper Push", "2026-08-28")

	if s.ID == "" {
		t.Error("expected UUID to be set")
	}
	if s.State() != StateDraft {
		t.Errorf("State() = %s, want draft", s.State())
	}
	if s.DayIndex != 1 || s.DayName != "Upper Push" {
		t.Errorf("unexpected day fields: %d %s", s.DayIndex, s.DayName)
	}
}

func TestAddSetAssignsOrdinalPerExercise(t *testing.T) {
	s := NewSession(1, "Upper Push", "2026-08-28")
	s.AddSet(NewWorkoutSet(s.ID, "incline-db-press", "Incline DB Press"))
	s.AddSet(NewWorkoutSet(s.ID, "cable-fly", "Cable Fly"))
	s.AddSet(NewWorkoutSet(s.ID, "incline-db-press", "Incline DB Press"))

	if s.Sets[0].SetNumber != 1 || s.Sets[2].SetNumber != 2 {
		t.Errorf("incline press ordinals = %d, %d, want 1, 2", s.Sets[0].SetNumber, s.Sets[2].SetNumber)
	}
	if s.Sets[1].SetNumber != 1 {
		t.Errorf("cable fly ordinal = %d, want 1", s.Sets[1].SetNumber)
	}
}

func TestRemoveSetRenumbers(t *testing.T) {
	s := NewSession(1, "Upper Push", "2026-08-28")
	for i := 0; i < 3; i++ {
		s.AddSet(NewWorkoutSet(s.ID, "leg-press", "Leg Press"))
	}
	victim := s.Sets[0].ID

	if !s.RemoveSet(victim) {
		t.Fatal("RemoveSet returned false for existing set")
	}
	if len(s.Sets) != 2 {
		t.Fatalf("len(Sets) = %d, want 2", len(s.Sets))
	}
	if s.Sets[0].SetNumber != 1 || s.Sets[1].SetNumber != 2 {
		t.Errorf("ordinals after removal = %d, %d, want 1, 2", s.Sets[0].SetNumber, s.Sets[1].SetNumber)
	}
}

func TestRemoveSetMissing(t *testing.T) {
	s := NewSession(1, "Upper Push", "2026-08-28")
	if s.RemoveSet("nope") {
		t.Error("RemoveSet returned true for unknown id")
	}
}

func TestCompleteIsOneWay(t *testing.T) {
	s := NewSession(2, "Lower A", "2026-08-28")
	d1 := 50
	s.Complete(&d1)

	if s.State() != StateCompleted {
		t.Fatalf("State() = %s, want completed", s.State())
	}

	d2 := 99
	s.Complete(&d2)
	if *s.DurationMin != 50 {
		t.Errorf("DurationMin = %d, want 50 (second Complete must be a no-op)", *s.DurationMin)
	}
}

func TestStartStampsOnce(t *testing.T) {
	s := NewSession(1, "Upper Push", "2026-08-28")
	first := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	s.Start(first)
	s.Start(first.Add(time.Hour))

	if s.StartTime == nil || *s.StartTime != first.Format(time.RFC3339) {
		t.Errorf("StartTime = %v, want first stamp preserved", s.StartTime)
	}
}

func TestWithoutStartTime(t *testing.T) {
	s := NewSession(1, "Upper Push", "2026-08-28")
	s.Start(time.Now())

	stripped := s.WithoutStartTime()
	if stripped.StartTime != nil {
		t.Error("expected StartTime dropped")
	}
	if s.StartTime == nil {
		t.Error("original session must be unchanged")
	}
}

func TestFilledSetCount(t *testing.T) {
	s := NewSession(1, "Upper Push", "2026-08-28")
	s.AddSet(NewWorkoutSet(s.ID, "leg-press", "Leg Press").WithWeight(100))
	s.AddSet(NewWorkoutSet(s.ID, "leg-press", "Leg Press"))

	if got := s.FilledSetCount(); got != 1 {
		t.Errorf("FilledSetCount() = %d, want 1", got)
	}
}
