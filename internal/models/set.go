// ABOUTME: WorkoutSet model plus set renumbering and exercise grouping.
// ABOUTME: Owns the cardio reps-as-seconds disambiguation rule.
package models

import (
	"strings"

	"github.com/google/uuid"
)

// WorkoutSet is a single set within a workout session. For time-based
// exercises the Reps field holds elapsed seconds (see IsTimedExercise).
type WorkoutSet struct {
	ID           string   `json:"id"`
	SessionID    string   `json:"sessionId"`
	ExerciseKey  string   `json:"exerciseKey"`
	ExerciseName string   `json:"exerciseName"`
	SetNumber    int      `json:"setNumber"`
	Weight       *float64 `json:"weight"`
	Reps         *int     `json:"reps"`
	RPE          *float64 `json:"rpe"`
	Notes        string   `json:"notes"`
}

// NewWorkoutSet creates a set with a generated UUID. SetNumber is
// assigned by the session when the set is added.
func NewWorkoutSet(sessionID, exerciseKey, exerciseName string) WorkoutSet {
	return WorkoutSet{
		ID:           uuid.New().String(),
		SessionID:    sessionID,
		ExerciseKey:  exerciseKey,
		ExerciseName: exerciseName,
		SetNumber:    1,
	}
}

// WithWeight sets the weight.
func (s WorkoutSet) WithWeight(w float64) WorkoutSet {
	s.Weight = &w
	return s
}

// WithReps sets the rep count (or elapsed seconds for timed exercises).
func (s WorkoutSet) WithReps(r int) WorkoutSet {
	s.Reps = &r
	return s
}

// WithRPE sets the rate of perceived exertion (1-10, halves allowed).
func (s WorkoutSet) WithRPE(r float64) WorkoutSet {
	s.RPE = &r
	return s
}

// Filled reports whether the user entered any measurement on this set.
func (s WorkoutSet) Filled() bool {
	return s.Weight != nil || s.Reps != nil || s.RPE != nil
}

// IsTimedExercise reports whether an exercise key denotes a time-based
// exercise, in which case the Reps field encodes elapsed seconds. The
// key prefix is the disambiguation rule; there is no separate duration
// field for backward data compatibility.
func IsTimedExercise(exerciseKey string) bool {
	return strings.HasPrefix(exerciseKey, "cardio-") || strings.HasPrefix(exerciseKey, "conditioning")
}

// ExerciseGroup is a display grouping of sets sharing an exercise key,
// in session insertion order.
type ExerciseGroup struct {
	ExerciseKey  string
	ExerciseName string
	Sets         []WorkoutSet
}

// GroupSetsByExercise groups sets by exercise key, preserving the order
// in which exercises first appear and the relative order of sets.
func GroupSetsByExercise(sets []WorkoutSet) []ExerciseGroup {
	var groups []ExerciseGroup
	index := make(map[string]int)

	for _, set := range sets {
		i, ok := index[set.ExerciseKey]
		if !ok {
			index[set.ExerciseKey] = len(groups)
			groups = append(groups, ExerciseGroup{
				ExerciseKey:  set.ExerciseKey,
				ExerciseName: set.ExerciseName,
			})
			i = len(groups) - 1
		}
		groups[i].Sets = append(groups[i].Sets, set)
	}

	return groups
}

// RenumberSets rewrites set ordinals so that each exercise's sets form
// a contiguous 1..N sequence, preserving relative order.
func RenumberSets(sets []WorkoutSet) []WorkoutSet {
	counts := make(map[string]int)
	out := make([]WorkoutSet, len(sets))

	for i, set := range sets {
		counts[set.ExerciseKey]++
		set.SetNumber = counts[set.ExerciseKey]
		out[i] = set
	}

	return out
}
