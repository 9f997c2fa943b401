// ABOUTME: WorkoutSession model with the draft/completed state machine.
// ABOUTME: Sessions own their sets; completion is a one-way transition.
package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionState names the two states of a workout session.
type SessionState string

const (
	// StateDraft is an in-progress session, mutable, at most one per date.
	StateDraft SessionState = "draft"
	// StateCompleted is terminal. Completed sessions are history: later
	// edits are permitted but no longer affect scheduling.
	StateCompleted SessionState = "completed"
)

// DateFormat is the calendar-date encoding used everywhere (no time of day).
const DateFormat = "2006-01-02"

// WorkoutSession is one workout instance and its sets. Sets are stored
// flat in insertion order; use GroupSetsByExercise for display.
type WorkoutSession struct {
	ID          string       `json:"id"`
	Date        string       `json:"date"` // YYYY-MM-DD
	DayIndex    int          `json:"dayIndex"`
	DayName     string       `json:"dayName"`
	Notes       string       `json:"notes"`
	DurationMin *int         `json:"durationMin"`
	StartTime   *string      `json:"startTime"` // RFC3339; local-only, never persisted remotely for completed sessions
	Completed   bool         `json:"completed"`
	Sets        []WorkoutSet `json:"sets"`
}

// NewSession creates a draft session for the given plan day and date.
func NewSession(dayIndex int, dayName, date string) WorkoutSession {
	return WorkoutSession{
		ID:       uuid.New().String(),
		Date:     date,
		DayIndex: dayIndex,
		DayName:  dayName,
	}
}

// State returns the session's state name. Merge and scheduling logic
// branch on this, not on the raw flag.
func (s WorkoutSession) State() SessionState {
	if s.Completed {
		return StateCompleted
	}
	return StateDraft
}

// Start stamps the start time if the session has not been started yet.
func (s *WorkoutSession) Start(t time.Time) {
	if s.StartTime == nil {
		ts := t.Format(time.RFC3339)
		s.StartTime = &ts
	}
}

// Complete transitions the session to the completed state. The
// transition is one-way; completing a completed session is a no-op.
func (s *WorkoutSession) Complete(durationMin *int) {
	if s.Completed {
		return
	}
	s.Completed = true
	if durationMin != nil {
		s.DurationMin = durationMin
	}
}

// AddSet appends a set, assigning the next ordinal for its exercise.
func (s *WorkoutSession) AddSet(set WorkoutSet) {
	set.SessionID = s.ID
	n := 0
	for _, existing := range s.Sets {
		if existing.ExerciseKey == set.ExerciseKey {
			n++
		}
	}
	set.SetNumber = n + 1
	s.Sets = append(s.Sets, set)
}

// RemoveSet deletes a set by id and renumbers the remaining sets so
// each exercise keeps a contiguous 1..N ordinal sequence.
func (s *WorkoutSession) RemoveSet(setID string) bool {
	kept := s.Sets[:0]
	removed := false
	for _, set := range s.Sets {
		if set.ID == setID {
			removed = true
			continue
		}
		kept = append(kept, set)
	}
	if !removed {
		return false
	}
	s.Sets = RenumberSets(kept)
	return true
}

// SetsForExercise returns the session's sets for one exercise key.
func (s WorkoutSession) SetsForExercise(exerciseKey string) []WorkoutSet {
	var out []WorkoutSet
	for _, set := range s.Sets {
		if set.ExerciseKey == exerciseKey {
			out = append(out, set)
		}
	}
	return out
}

// FilledSetCount counts sets with at least one measurement entered.
func (s WorkoutSession) FilledSetCount() int {
	n := 0
	for _, set := range s.Sets {
		if set.Filled() {
			n++
		}
	}
	return n
}

// WithoutStartTime returns a copy with the start time dropped. The
// completed-session remote store never persists start times.
func (s WorkoutSession) WithoutStartTime() WorkoutSession {
	s.StartTime = nil
	return s
}
