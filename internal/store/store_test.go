// ABOUTME: Tests for the store façade: mutations, queries, remote fan-out.
// ABOUTME: Uses the in-memory remote test double and a temp local store.
package store

import (
	"context"
	"testing"
	"time"

	"github.com/harperreed/ironlog/internal/localstore"
	"github.com/harperreed/ironlog/internal/models"
	"github.com/harperreed/ironlog/internal/remote"
	"github.com/harperreed/ironlog/internal/remote/remotetest"
)

var testNow = time.Date(2026, 1, 7, 15, 0, 0, 0, time.UTC) // a Wednesday

func newTestStore(t *testing.T, svc remote.Service, online func() bool) *Store {
	t.Helper()
	local, err := localstore.Open(t.TempDir())
	if err != nil {
		t.Fatalf("open local store: %v", err)
	}
	t.Cleanup(func() { _ = local.Close() })

	s := Open(Options{Local: local, Remote: svc, Online: online})
	s.now = func() time.Time { return testNow }
	return s
}

func TestStartTodaySessionCreatesDraftWithStartTime(t *testing.T) {
	svc := remotetest.New()
	s := newTestStore(t, svc, nil)

	session, err := s.StartTodaySession(0)
	if err != nil {
		t.Fatalf("StartTodaySession: %v", err)
	}
	if session.Date != "2026-01-07" {
		t.Errorf("Date = %s, want 2026-01-07", session.Date)
	}
	if session.StartTime == nil {
		t.Error("expected start time stamped")
	}
	if session.State() != models.StateDraft {
		t.Error("new session must be a draft")
	}

	// Idempotent: a second start returns the same draft.
	again, err := s.StartTodaySession(5)
	if err != nil {
		t.Fatalf("StartTodaySession again: %v", err)
	}
	if again.ID != session.ID {
		t.Error("second start created a new session")
	}

	// The draft reached the remote store with its start time intact.
	d, ok := svc.DraftSession(session.ID)
	if !ok {
		t.Fatal("draft not written remotely")
	}
	if d.StartTime == nil {
		t.Error("remote draft lost its start time")
	}
}

func TestSaveSessionCompletedStripsRemoteStartTime(t *testing.T) {
	svc := remotetest.New()
	s := newTestStore(t, svc, nil)

	session, _ := s.StartTodaySession(0)
	session.Complete(nil)
	if err := s.SaveSession(session); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	c, ok := svc.CompletedSession(session.ID)
	if !ok {
		t.Fatal("completed session not written remotely")
	}
	if c.StartTime != nil {
		t.Error("completed remote record must not carry a start time")
	}
	if _, ok := svc.DraftSession(session.ID); ok {
		t.Error("draft copy must be evicted on completion")
	}

	// Locally the start time survives.
	local, _ := s.SessionByID(session.ID)
	if local.StartTime == nil {
		t.Error("local session lost its start time")
	}
}

func TestCompletingClearsManualOverride(t *testing.T) {
	svc := remotetest.New()
	s := newTestStore(t, svc, nil)

	day := 6
	if err := s.UpdateSettings(models.SettingsPatch{ManualNextDay: &day}); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}

	session, _ := s.StartTodaySession(6)
	session.Complete(nil)
	if err := s.SaveSession(session); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	if s.Settings().ManualNextDay != nil {
		t.Error("manual next-day override must clear on completion")
	}
}

func TestResavingCompletedSessionClearsOverride(t *testing.T) {
	svc := remotetest.New()
	s := newTestStore(t, svc, nil)

	session, _ := s.StartTodaySession(2)
	session.Complete(nil)
	if err := s.SaveSession(session); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	day := 5
	if err := s.UpdateSettings(models.SettingsPatch{ManualNextDay: &day}); err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}

	// Editing an already-completed session must also clear the override.
	session.Notes = "felt strong"
	if err := s.SaveSession(session); err != nil {
		t.Fatalf("SaveSession again: %v", err)
	}
	if got := s.Settings().ManualNextDay; got != nil {
		t.Errorf("ManualNextDay = %d, want nil after saving a completed session", *got)
	}
}

func TestSaveStepsUpsertsByDate(t *testing.T) {
	s := newTestStore(t, remotetest.New(), nil)

	if err := s.SaveSteps("2026-01-07", 5000); err != nil {
		t.Fatalf("SaveSteps: %v", err)
	}
	if err := s.SaveSteps("2026-01-07", 9000); err != nil {
		t.Fatalf("SaveSteps again: %v", err)
	}

	state := s.Snapshot()
	if len(state.Steps) != 1 {
		t.Fatalf("len(Steps) = %d, want 1 (upsert by date)", len(state.Steps))
	}
	if state.Steps[0].StepCount != 9000 {
		t.Errorf("StepCount = %d, want 9000", state.Steps[0].StepCount)
	}
}

func TestSaveStepsValidation(t *testing.T) {
	s := newTestStore(t, remotetest.New(), nil)

	if err := s.SaveSteps("not-a-date", 100); err != ErrInvalidDate {
		t.Errorf("err = %v, want ErrInvalidDate", err)
	}
	if err := s.SaveSteps("2026-01-07", -1); err != ErrNegativeSteps {
		t.Errorf("err = %v, want ErrNegativeSteps", err)
	}
}

func TestOfflineWritesQueueAndReplay(t *testing.T) {
	svc := remotetest.New()
	online := false
	s := newTestStore(t, svc, func() bool { return online })

	if err := s.SaveSteps("2026-01-07", 8000); err != nil {
		t.Fatalf("SaveSteps: %v", err)
	}

	if _, ok := svc.Steps("2026-01-07"); ok {
		t.Fatal("write reached remote while offline")
	}
	if s.QueueLen() != 1 {
		t.Fatalf("QueueLen = %d, want 1", s.QueueLen())
	}

	online = true
	s.Queue().Flush(context.Background())

	if n, _ := svc.Steps("2026-01-07"); n != 8000 {
		t.Errorf("steps = %d, want 8000 after replay", n)
	}
	if s.QueueLen() != 0 {
		t.Errorf("QueueLen = %d, want 0", s.QueueLen())
	}
}

func TestRemoteFailureQueuesWrite(t *testing.T) {
	svc := remotetest.New()
	s := newTestStore(t, svc, nil)

	svc.SetFailing(true)
	if err := s.SaveSteps("2026-01-07", 8000); err != nil {
		t.Fatalf("SaveSteps must not surface remote errors: %v", err)
	}
	if s.QueueLen() != 1 {
		t.Errorf("QueueLen = %d, want 1 after remote failure", s.QueueLen())
	}

	// Local state committed regardless.
	if _, ok := s.StepsForDate("2026-01-07"); !ok {
		t.Error("local write lost on remote failure")
	}
}

func TestDeleteSession(t *testing.T) {
	svc := remotetest.New()
	s := newTestStore(t, svc, nil)

	session, _ := s.StartTodaySession(0)
	if err := s.DeleteSession(session.ID); err != nil {
		t.Fatalf("DeleteSession: %v", err)
	}
	if _, ok := s.SessionByID(session.ID); ok {
		t.Error("session still present after delete")
	}
	if err := s.DeleteSession(session.ID); err != ErrSessionNotFound {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestLoadRemoteMergesAndPersists(t *testing.T) {
	svc := remotetest.New()
	completedRemote := models.NewSession(1, "Upper Push", "2026-01-05")
	completedRemote.Complete(nil)
	svc.Seed(remote.Snapshot{Sessions: []models.WorkoutSession{completedRemote}}, nil)

	s := newTestStore(t, svc, nil)
	if err := s.LoadRemote(context.Background()); err != nil {
		t.Fatalf("LoadRemote: %v", err)
	}

	if _, ok := s.SessionByID(completedRemote.ID); !ok {
		t.Error("remote session missing after merge")
	}
	if s.Streak() == 0 {
		t.Log("streak may be zero depending on window; presence check above is the assertion")
	}
}

func TestUpdateSettingsValidation(t *testing.T) {
	s := newTestStore(t, remotetest.New(), nil)

	bad := "stone"
	if err := s.UpdateSettings(models.SettingsPatch{Units: &bad}); err != ErrInvalidUnits {
		t.Errorf("err = %v, want ErrInvalidUnits", err)
	}
	nine := 9
	if err := s.UpdateSettings(models.SettingsPatch{ManualNextDay: &nine}); err != ErrInvalidDayIndex {
		t.Errorf("err = %v, want ErrInvalidDayIndex", err)
	}
}

func TestSaveSessionValidation(t *testing.T) {
	s := newTestStore(t, remotetest.New(), nil)

	bad := models.NewSession(0, "", "2026-01-07")
	if err := s.SaveSession(bad); err != ErrInvalidDayIndex {
		t.Errorf("err = %v, want ErrInvalidDayIndex", err)
	}
	bad = models.NewSession(2, "Lower A", "nope")
	if err := s.SaveSession(bad); err != ErrInvalidDate {
		t.Errorf("err = %v, want ErrInvalidDate", err)
	}
}

func TestStatePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	local, err := localstore.Open(dir)
	if err != nil {
		t.Fatalf("open local store: %v", err)
	}
	s := Open(Options{Local: local})
	s.now = func() time.Time { return testNow }

	session, _ := s.StartTodaySession(0)
	if err := local.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	local2, err := localstore.Open(dir)
	if err != nil {
		t.Fatalf("reopen local store: %v", err)
	}
	defer local2.Close()
	s2 := Open(Options{Local: local2})
	if _, ok := s2.SessionByID(session.ID); !ok {
		t.Error("session lost across restart")
	}
}

func TestSyncAllPushesEverything(t *testing.T) {
	svc := remotetest.New()
	s := newTestStore(t, svc, nil)

	session, _ := s.StartTodaySession(0)
	_ = s.SaveSteps("2026-01-07", 6000)

	if err := s.SyncAll(context.Background()); err != nil {
		t.Fatalf("SyncAll: %v", err)
	}
	if _, ok := svc.DraftSession(session.ID); !ok {
		t.Error("draft not pushed")
	}
	if _, ok := svc.Steps("2026-01-07"); !ok {
		t.Error("steps not pushed")
	}
}
