// ABOUTME: Tests for the SQLite remote record store.
// ABOUTME: Covers session routing, steps upsert, settings, and loads.
package sqlitestore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/harperreed/ironlog/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "records.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveCompletedSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	session := models.NewSession(1, "Upper Push", "2026-01-05")
	session.AddSet(models.NewWorkoutSet(session.ID, "incline-db-press", "Incline DB Press").WithWeight(27.5).WithReps(8))
	session.Complete(nil)

	if err := s.SaveSession(ctx, session); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	snap, err := s.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(snap.Sessions) != 1 {
		t.Fatalf("len(Sessions) = %d, want 1", len(snap.Sessions))
	}
	got := snap.Sessions[0]
	if !got.Completed {
		t.Error("loaded session must be completed")
	}
	if len(got.Sets) != 1 || got.Sets[0].Weight == nil || *got.Sets[0].Weight != 27.5 {
		t.Error("sets did not round-trip")
	}
	if got.StartTime != nil {
		t.Error("completed store must not hold a start time")
	}
}

func TestDraftKeepsStartTime(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	draft := models.NewSession(2, "Lower A", "2026-01-06")
	ts := "2026-01-06T09:00:00Z"
	draft.StartTime = &ts

	if err := s.SaveSession(ctx, draft); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	drafts, err := s.LoadAllDrafts(ctx)
	if err != nil {
		t.Fatalf("LoadAllDrafts: %v", err)
	}
	if len(drafts) != 1 {
		t.Fatalf("len(drafts) = %d, want 1", len(drafts))
	}
	if drafts[0].StartTime == nil || *drafts[0].StartTime != ts {
		t.Error("draft start time did not round-trip")
	}
	if drafts[0].Completed {
		t.Error("draft loaded as completed")
	}
}

func TestCompletionEvictsDraft(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	session := models.NewSession(3, "Pull", "2026-01-07")
	if err := s.SaveSession(ctx, session); err != nil {
		t.Fatalf("save draft: %v", err)
	}

	session.Complete(nil)
	if err := s.SaveSession(ctx, session); err != nil {
		t.Fatalf("save completed: %v", err)
	}

	drafts, err := s.LoadAllDrafts(ctx)
	if err != nil {
		t.Fatalf("LoadAllDrafts: %v", err)
	}
	if len(drafts) != 0 {
		t.Errorf("len(drafts) = %d, want 0 after completion", len(drafts))
	}
}

func TestSaveSessionReplacesSets(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	session := models.NewSession(1, "Upper Push", "2026-01-05")
	session.AddSet(models.NewWorkoutSet(session.ID, "cable-fly", "Cable Fly"))
	session.Complete(nil)
	if err := s.SaveSession(ctx, session); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	session.AddSet(models.NewWorkoutSet(session.ID, "cable-fly", "Cable Fly").WithReps(12))
	if err := s.SaveSession(ctx, session); err != nil {
		t.Fatalf("SaveSession again: %v", err)
	}

	snap, err := s.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(snap.Sessions[0].Sets) != 2 {
		t.Errorf("len(Sets) = %d, want 2 (replaced wholesale)", len(snap.Sessions[0].Sets))
	}
}

func TestDeleteSessionRemovesBothStores(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	session := models.NewSession(1, "Upper Push", "2026-01-05")
	if err := s.SaveSession(ctx, session); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.DeleteSession(ctx, session.ID); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}

	drafts, _ := s.LoadAllDrafts(ctx)
	if len(drafts) != 0 {
		t.Error("draft survived deletion")
	}
}

func TestSaveStepsUpsertsByDate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.SaveSteps(ctx, "2026-01-05", 5000); err != nil {
		t.Fatalf("SaveSteps: %v", err)
	}
	if err := s.SaveSteps(ctx, "2026-01-05", 9000); err != nil {
		t.Fatalf("SaveSteps again: %v", err)
	}

	snap, err := s.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(snap.Steps) != 1 {
		t.Fatalf("len(Steps) = %d, want 1", len(snap.Steps))
	}
	if snap.Steps[0].StepCount != 9000 {
		t.Errorf("StepCount = %d, want 9000", snap.Steps[0].StepCount)
	}
}

func TestSettingsSingleton(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	snap, err := s.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if snap.Settings != nil {
		t.Error("settings present before any save")
	}

	settings := models.DefaultSettings()
	day := 5
	settings.ManualNextDay = &day
	settings.Units = models.UnitsLb
	if err := s.SaveSettings(ctx, settings); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	settings.StepGoal = 12000
	if err := s.SaveSettings(ctx, settings); err != nil {
		t.Fatalf("SaveSettings again: %v", err)
	}

	snap, err = s.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if snap.Settings == nil {
		t.Fatal("settings missing after save")
	}
	if snap.Settings.StepGoal != 12000 || snap.Settings.Units != models.UnitsLb {
		t.Errorf("settings = %+v, want updated singleton", snap.Settings)
	}
	if snap.Settings.ManualNextDay == nil || *snap.Settings.ManualNextDay != 5 {
		t.Error("nullable ManualNextDay did not round-trip")
	}
}
