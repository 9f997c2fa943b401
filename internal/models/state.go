// ABOUTME: AppState aggregate root for snapshotting, persistence, merge.
// ABOUTME: Holds sessions, step entries, and the settings singleton.
package models

// AppState is the unit of snapshotting: everything the tracker knows.
type AppState struct {
	Sessions []WorkoutSession `json:"sessions"`
	Steps    []StepsEntry     `json:"steps"`
	Settings AppSettings      `json:"settings"`
}

// DefaultState returns an empty state with default settings.
func DefaultState() AppState {
	return AppState{Settings: DefaultSettings()}
}

// Clone deep-copies the state so callers can mutate freely.
func (a AppState) Clone() AppState {
	out := AppState{
		Sessions: make([]WorkoutSession, len(a.Sessions)),
		Steps:    make([]StepsEntry, len(a.Steps)),
		Settings: a.Settings,
	}
	copy(out.Steps, a.Steps)
	for i, s := range a.Sessions {
		s.Sets = append([]WorkoutSet(nil), s.Sets...)
		if s.DurationMin != nil {
			d := *s.DurationMin
			s.DurationMin = &d
		}
		if s.StartTime != nil {
			t := *s.StartTime
			s.StartTime = &t
		}
		out.Sessions[i] = s
	}
	if a.Settings.ManualNextDay != nil {
		d := *a.Settings.ManualNextDay
		out.Settings.ManualNextDay = &d
	}
	return out
}

// SessionByID finds a session by id.
func (a AppState) SessionByID(id string) (WorkoutSession, bool) {
	for _, s := range a.Sessions {
		if s.ID == id {
			return s, true
		}
	}
	return WorkoutSession{}, false
}

// DraftForDate returns the draft session dated date, if any. A date has
// at most one draft.
func (a AppState) DraftForDate(date string) (WorkoutSession, bool) {
	for _, s := range a.Sessions {
		if s.Date == date && s.State() == StateDraft {
			return s, true
		}
	}
	return WorkoutSession{}, false
}

// StepsForDate returns the step entry for date, if any.
func (a AppState) StepsForDate(date string) (StepsEntry, bool) {
	for _, e := range a.Steps {
		if e.Date == date {
			return e, true
		}
	}
	return StepsEntry{}, false
}
