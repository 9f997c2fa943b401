// ABOUTME: In-memory remote.Service for tests.
// ABOUTME: Supports failure injection and records every mutation call.
package remotetest

import (
	"context"
	"errors"
	"sync"

	"github.com/harperreed/ironlog/internal/models"
	"github.com/harperreed/ironlog/internal/remote"
)

// ErrInjected is the error returned while failure injection is active.
var ErrInjected = errors.New("injected remote failure")

// Service is an in-memory remote record store. Safe for concurrent use.
type Service struct {
	mu        sync.Mutex
	completed map[string]models.WorkoutSession
	drafts    map[string]models.WorkoutSession
	steps     map[string]int
	settings  *models.AppSettings

	failing bool
	calls   []string
}

var _ remote.Service = (*Service)(nil)

// New returns an empty in-memory service.
func New() *Service {
	return &Service{
		completed: make(map[string]models.WorkoutSession),
		drafts:    make(map[string]models.WorkoutSession),
		steps:     make(map[string]int),
	}
}

// SetFailing toggles failure injection. While failing, every call
// returns ErrInjected without mutating state.
func (s *Service) SetFailing(failing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = failing
}

// Calls returns the names of all mutation calls in order, including
// failed ones.
func (s *Service) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.calls))
	copy(out, s.calls)
	return out
}

// CompletedSession returns the stored completed session for id.
func (s *Service) CompletedSession(id string) (models.WorkoutSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.completed[id]
	return sess, ok
}

// DraftSession returns the stored draft session for id.
func (s *Service) DraftSession(id string) (models.WorkoutSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.drafts[id]
	return sess, ok
}

// Steps returns the stored step count for date.
func (s *Service) Steps(date string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.steps[date]
	return n, ok
}

// Seed installs a snapshot directly, bypassing call recording.
func (s *Service) Seed(snap remote.Snapshot, drafts []models.WorkoutSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range snap.Sessions {
		sess.Completed = true
		s.completed[sess.ID] = sess
	}
	for _, d := range drafts {
		d.Completed = false
		s.drafts[d.ID] = d
	}
	for _, e := range snap.Steps {
		s.steps[e.Date] = e.StepCount
	}
	if snap.Settings != nil {
		cp := *snap.Settings
		s.settings = &cp
	}
}

func (s *Service) SaveSession(ctx context.Context, session models.WorkoutSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "SaveSession")
	if s.failing {
		return ErrInjected
	}
	if session.State() == models.StateCompleted {
		s.completed[session.ID] = session.WithoutStartTime()
		delete(s.drafts, session.ID)
	} else {
		s.drafts[session.ID] = session
	}
	return nil
}

func (s *Service) DeleteSession(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "DeleteSession")
	if s.failing {
		return ErrInjected
	}
	delete(s.completed, id)
	delete(s.drafts, id)
	return nil
}

func (s *Service) SaveSteps(ctx context.Context, date string, stepCount int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "SaveSteps")
	if s.failing {
		return ErrInjected
	}
	s.steps[date] = stepCount
	return nil
}

func (s *Service) SaveSettings(ctx context.Context, settings models.AppSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "SaveSettings")
	if s.failing {
		return ErrInjected
	}
	s.settings = &settings
	return nil
}

func (s *Service) LoadAll(ctx context.Context) (remote.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return remote.Snapshot{}, ErrInjected
	}
	var snap remote.Snapshot
	for _, sess := range s.completed {
		snap.Sessions = append(snap.Sessions, sess)
	}
	for date, n := range s.steps {
		snap.Steps = append(snap.Steps, models.StepsEntry{ID: date, Date: date, StepCount: n})
	}
	if s.settings != nil {
		cp := *s.settings
		snap.Settings = &cp
	}
	return snap, nil
}

func (s *Service) LoadAllDrafts(ctx context.Context) ([]models.WorkoutSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing {
		return nil, ErrInjected
	}
	var drafts []models.WorkoutSession
	for _, d := range s.drafts {
		drafts = append(drafts, d)
	}
	return drafts, nil
}
