// ABOUTME: The store façade: single entry point for reads and mutations.
// ABOUTME: Mutations apply locally first, then fan out to the remote.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/harperreed/ironlog/internal/localstore"
	"github.com/harperreed/ironlog/internal/models"
	"github.com/harperreed/ironlog/internal/plan"
	"github.com/harperreed/ironlog/internal/reconcile"
	"github.com/harperreed/ironlog/internal/remote"
	"github.com/harperreed/ironlog/internal/syncqueue"
)

// Validation errors returned by mutations.
var (
	ErrInvalidDate     = errors.New("invalid date, want YYYY-MM-DD")
	ErrNegativeSteps   = errors.New("step count cannot be negative")
	ErrInvalidDayIndex = errors.New("day index must be between 1 and 7")
	ErrInvalidUnits    = errors.New(`units must be "kg" or "lb"`)
	ErrSessionNotFound = errors.New("session not found")
)

// Store is the application façade. Reads are served from the in-memory
// state; every mutation updates memory, persists the local snapshot,
// and fans the write out to the remote service, queueing it when the
// write cannot be delivered.
type Store struct {
	mu     sync.Mutex
	state  models.AppState
	local  *localstore.Store
	remote remote.Service // nil when remote sync is off
	queue  *syncqueue.Queue
	online func() bool
	writer *coalescingWriter
	logger *log.Logger

	// injectable clock for tests
	now func() time.Time
}

// Options configures Open.
type Options struct {
	Local    *localstore.Store
	Remote   remote.Service // nil disables remote sync
	Online   func() bool    // nil means always online
	Debounce time.Duration  // 0 means no debouncing of rapid edits
}

// Open builds the façade, loading the local snapshot synchronously so
// the caller has usable state before any network activity.
func Open(opts Options) *Store {
	online := opts.Online
	if online == nil {
		online = func() bool { return true }
	}

	s := &Store{
		state:  opts.Local.Load(),
		local:  opts.Local,
		remote: opts.Remote,
		online: online,
		writer: newCoalescingWriter(opts.Debounce),
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "store"}),
		now:    time.Now,
	}
	if opts.Remote != nil {
		s.queue = syncqueue.NewQueue(opts.Local, opts.Remote, online)
	}
	return s
}

// Queue exposes the sync queue, or nil when remote sync is off.
func (s *Store) Queue() *syncqueue.Queue {
	return s.queue
}

// Close flushes any pending debounced write.
func (s *Store) Close() {
	s.writer.Flush()
}

// LoadRemote pulls the full remote state, merges it with the local
// snapshot, and re-persists the result. A failure leaves local state
// untouched; the caller keeps working offline.
func (s *Store) LoadRemote(ctx context.Context) error {
	if s.remote == nil {
		return nil
	}

	snap, err := s.remote.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("load remote records: %w", err)
	}
	drafts, err := s.remote.LoadAllDrafts(ctx)
	if err != nil {
		return fmt.Errorf("load remote drafts: %w", err)
	}

	s.mu.Lock()
	s.state = reconcile.Merge(s.state, snap, drafts)
	s.local.Save(s.state)
	s.mu.Unlock()

	s.logger.Debug("remote state merged",
		"sessions", len(snap.Sessions), "drafts", len(drafts), "steps", len(snap.Steps))
	return nil
}

// --- reads ---

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// SessionByID returns the session with the given id.
func (s *Store) SessionByID(id string) (models.WorkoutSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SessionByID(id)
}

// TodaySession returns today's draft session, if one exists.
func (s *Store) TodaySession() (models.WorkoutSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.DraftForDate(s.today())
}

// StepsForDate returns the step entry for a date.
func (s *Store) StepsForDate(date string) (models.StepsEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.StepsForDate(date)
}

// Settings returns the current settings.
func (s *Store) Settings() models.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Settings
}

// NextWorkoutDay returns the plan day the user should do next.
func (s *Store) NextWorkoutDay() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return plan.NextWorkoutDay(s.state.Sessions, s.state.Settings, s.now())
}

// Streak returns the current consecutive-day workout streak.
func (s *Store) Streak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return plan.Streak(s.state.Sessions, s.now())
}

// WorkoutsThisWeek counts completed sessions this calendar week.
func (s *Store) WorkoutsThisWeek() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return plan.WorkoutsThisWeek(s.state.Sessions, s.now())
}

// StepsAverage7Days returns the mean step count over the trailing week.
func (s *Store) StepsAverage7Days() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return plan.StepsAverage7Days(s.state.Steps, s.now())
}

// DayOfWeekLabel names the weekday a plan day falls on.
func (s *Store) DayOfWeekLabel(dayIndex int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if start, ok := plan.CycleStartDate(s.state.Sessions); ok {
		return plan.DayOfWeekLabel(dayIndex, &start)
	}
	return plan.DayOfWeekLabel(dayIndex, nil)
}

// QueueLen returns the number of pending queued writes.
func (s *Store) QueueLen() int {
	if s.queue == nil {
		return 0
	}
	return s.queue.Len()
}

// ExportData renders the full state as indented JSON.
func (s *Store) ExportData() ([]byte, error) {
	s.mu.Lock()
	state := s.state.Clone()
	s.mu.Unlock()
	return json.MarshalIndent(state, "", "  ")
}

// --- mutations ---

// SaveSession validates and upserts a session. Saving a completed
// session clears any manual next-day override, since the override's
// purpose is served once the chosen workout is done. This applies on
// every completed save, not just the completing one.
func (s *Store) SaveSession(session models.WorkoutSession) error {
	if err := validateSession(session); err != nil {
		return err
	}

	s.mu.Lock()
	s.upsertSessionLocked(session)

	var settingsOp *remote.Operation
	if session.Completed && s.state.Settings.ManualNextDay != nil {
		s.state.Settings.ManualNextDay = nil
		op := remote.UpdateSettingsOp(s.state.Settings)
		settingsOp = &op
	}
	s.local.Save(s.state)
	s.mu.Unlock()

	s.writeRemote(remote.SaveSessionOp(session))
	if settingsOp != nil {
		s.writeRemote(*settingsOp)
	}
	return nil
}

// SaveSessionDebounced applies the session locally at once but delays
// the remote write so a burst of edits produces one remote save.
func (s *Store) SaveSessionDebounced(session models.WorkoutSession) error {
	if err := validateSession(session); err != nil {
		return err
	}

	s.mu.Lock()
	s.upsertSessionLocked(session)
	s.local.Save(s.state)
	s.mu.Unlock()

	id := session.ID
	s.writer.Write(func() {
		s.mu.Lock()
		current, ok := s.state.SessionByID(id)
		s.mu.Unlock()
		if ok {
			s.writeRemote(remote.SaveSessionOp(current))
		}
	})
	return nil
}

// DeleteSession removes a session everywhere.
func (s *Store) DeleteSession(id string) error {
	s.mu.Lock()
	kept := s.state.Sessions[:0]
	found := false
	for _, sess := range s.state.Sessions {
		if sess.ID == id {
			found = true
			continue
		}
		kept = append(kept, sess)
	}
	if !found {
		s.mu.Unlock()
		return ErrSessionNotFound
	}
	s.state.Sessions = kept
	s.local.Save(s.state)
	s.mu.Unlock()

	s.writeRemote(remote.DeleteSessionOp(id))
	return nil
}

// SaveSteps upserts the step count for a date.
func (s *Store) SaveSteps(date string, stepCount int) error {
	if !models.ValidDate(date) {
		return ErrInvalidDate
	}
	if stepCount < 0 {
		return ErrNegativeSteps
	}

	s.mu.Lock()
	updated := false
	for i, e := range s.state.Steps {
		if e.Date == date {
			s.state.Steps[i].StepCount = stepCount
			updated = true
			break
		}
	}
	if !updated {
		s.state.Steps = append(s.state.Steps, models.NewStepsEntry(date, stepCount))
	}
	s.local.Save(s.state)
	s.mu.Unlock()

	s.writeRemote(remote.SaveStepsOp(date, stepCount))
	return nil
}

// UpdateSettings applies a partial settings patch.
func (s *Store) UpdateSettings(patch models.SettingsPatch) error {
	if patch.Units != nil && *patch.Units != models.UnitsKg && *patch.Units != models.UnitsLb {
		return ErrInvalidUnits
	}
	if patch.ManualNextDay != nil && (*patch.ManualNextDay < 1 || *patch.ManualNextDay > 7) {
		return ErrInvalidDayIndex
	}
	if patch.CycleStartDay != nil && (*patch.CycleStartDay < 1 || *patch.CycleStartDay > 7) {
		return ErrInvalidDayIndex
	}

	s.mu.Lock()
	s.state.Settings = patch.Apply(s.state.Settings)
	settings := s.state.Settings
	s.local.Save(s.state)
	s.mu.Unlock()

	s.writeRemote(remote.UpdateSettingsOp(settings))
	return nil
}

// StartTodaySession returns today's draft, creating one for the given
// plan day if none exists. dayIndex 0 means use the scheduled next day.
// The start time is stamped on first creation.
func (s *Store) StartTodaySession(dayIndex int) (models.WorkoutSession, error) {
	if dayIndex != 0 && (dayIndex < 1 || dayIndex > 7) {
		return models.WorkoutSession{}, ErrInvalidDayIndex
	}

	s.mu.Lock()
	today := s.today()
	if existing, ok := s.state.DraftForDate(today); ok {
		s.mu.Unlock()
		return existing, nil
	}

	if dayIndex == 0 {
		dayIndex = plan.NextWorkoutDay(s.state.Sessions, s.state.Settings, s.now())
	}
	day, ok := plan.Day(dayIndex)
	if !ok {
		s.mu.Unlock()
		return models.WorkoutSession{}, ErrInvalidDayIndex
	}

	session := models.NewSession(dayIndex, day.Name, today)
	session.Start(s.now())
	s.upsertSessionLocked(session)
	s.local.Save(s.state)
	s.mu.Unlock()

	s.writeRemote(remote.SaveSessionOp(session))
	return session, nil
}

// SyncAll pushes every local record to the remote service. Used by the
// explicit "push" command; routine writes go through writeRemote.
func (s *Store) SyncAll(ctx context.Context) error {
	if s.remote == nil {
		return nil
	}

	s.mu.Lock()
	state := s.state.Clone()
	s.mu.Unlock()

	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for _, sess := range state.Sessions {
		keep(s.remote.SaveSession(ctx, sess))
	}
	for _, e := range state.Steps {
		keep(s.remote.SaveSteps(ctx, e.Date, e.StepCount))
	}
	keep(s.remote.SaveSettings(ctx, state.Settings))
	return firstErr
}

// --- internals ---

func (s *Store) today() string {
	return s.now().Format(models.DateFormat)
}

// upsertSessionLocked inserts or replaces a session. Caller holds mu.
func (s *Store) upsertSessionLocked(session models.WorkoutSession) {
	for i, existing := range s.state.Sessions {
		if existing.ID == session.ID {
			s.state.Sessions[i] = session
			return
		}
	}
	s.state.Sessions = append(s.state.Sessions, session)
}

// writeRemote delivers one operation: immediately when online, queued
// otherwise or on failure. Local state is already committed by the time
// this runs, so remote failure is never surfaced to the caller.
func (s *Store) writeRemote(op remote.Operation) {
	if s.remote == nil {
		return
	}
	if !s.online() {
		s.queue.Enqueue(op)
		return
	}
	if err := op.Apply(context.Background(), s.remote); err != nil {
		s.logger.Warn("remote write failed, queueing", "kind", op.Kind, "err", err)
		s.queue.Enqueue(op)
	}
}

func validateSession(session models.WorkoutSession) error {
	if !models.ValidDate(session.Date) {
		return ErrInvalidDate
	}
	if session.DayIndex < 1 || session.DayIndex > 7 {
		return ErrInvalidDayIndex
	}
	return nil
}
