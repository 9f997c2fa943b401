// ABOUTME: Tests for WorkoutSet grouping, renumbering, and timed exercises.
// ABOUTME: Pins the cardio reps-as-seconds key prefix rule.
package models

import "testing"

func TestIsTimedExercise(t *testing.T) {
	cases := []struct {
		key  string
		want bool
	}{
		{"cardio-incline-walk", true},
		{"cardio-recovery", true},
		{"conditioning", true},
		{"incline-db-press", false},
		{"leg-press", false},
	}
	for _, c := range cases {
		if got := IsTimedExercise(c.key); got != c.want {
			t.Errorf("IsTimedExercise(%q) = %v, want %v", c.key, got, c.want)
		}
	}
}

func TestGroupSetsByExercisePreservesOrder(t *testing.T) {
	sets := []WorkoutSet{
		{ID: "a", ExerciseKey: "leg-press", ExerciseName: "Leg Press", SetNumber: 1},
		{ID: "b", ExerciseKey: "leg-curl", ExerciseName: "Leg Curl", SetNumber: 1},
		{ID: "c", ExerciseKey: "leg-press", ExerciseName: "Leg Press", SetNumber: 2},
	}

	groups := GroupSetsByExercise(sets)
	if len(groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(groups))
	}
	if groups[0].ExerciseKey != "leg-press" || groups[1].ExerciseKey != "leg-curl" {
		t.Errorf("group order = %s, %s; want first-appearance order", groups[0].ExerciseKey, groups[1].ExerciseKey)
	}
	if len(groups[0].Sets) != 2 {
		t.Errorf("leg-press group has %d sets, want 2", len(groups[0].Sets))
	}
}

func TestRenumberSets(t *testing.T) {
	sets := []WorkoutSet{
		{ID: "a", ExerciseKey: "x", SetNumber: 2},
		{ID: "b", ExerciseKey: "y", SetNumber: 5},
		{ID: "c", ExerciseKey: "x", SetNumber: 9},
	}

	out := RenumberSets(sets)
	if out[0].SetNumber != 1 || out[2].SetNumber != 2 {
		t.Errorf("x ordinals = %d, %d, want 1, 2", out[0].SetNumber, out[2].SetNumber)
	}
	if out[1].SetNumber != 1 {
		t.Errorf("y ordinal = %d, want 1", out[1].SetNumber)
	}
}

func TestSettingsPatchApply(t *testing.T) {
	s := DefaultSettings()
	day := 3
	units := UnitsLb
	patched := SettingsPatch{Units: &units, ManualNextDay: &day}.Apply(s)

	if patched.Units != UnitsLb {
		t.Errorf("Units = %s, want lb", patched.Units)
	}
	if patched.ManualNextDay == nil || *patched.ManualNextDay != 3 {
		t.Error("expected ManualNextDay = 3")
	}
	if patched.StepGoal != s.StepGoal {
		t.Error("unpatched field changed")
	}

	cleared := SettingsPatch{ClearManualNextDay: true, ManualNextDay: &day}.Apply(patched)
	if cleared.ManualNextDay != nil {
		t.Error("ClearManualNextDay must take precedence over ManualNextDay")
	}
}
