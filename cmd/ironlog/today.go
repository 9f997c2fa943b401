// ABOUTME: CLI command showing or starting today's workout session.
// ABOUTME: Prints the session's sets grouped by exercise.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/ironlog/internal/models"
)

var (
	todayStart bool
	todayDay   int
)

var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t"},
	Short:   "Show today's workout session",
	Long: `Show today's workout session and its logged sets.

Examples:
  ironlog today             # Show the session in progress
  ironlog today --start     # Start today's scheduled workout
  ironlog today --start --day 3   # Start a specific plan day`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if todayStart {
			session, err := appStore.StartTodaySession(todayDay)
			if err != nil {
				return fmt.Errorf("failed to start workout: %w", err)
			}
			color.Green("✓ Day %d: %s", session.DayIndex, session.DayName)
			printSession(session)
			return nil
		}

		session, ok := appStore.TodaySession()
		if !ok {
			fmt.Println("No workout in progress today. Start one with: ironlog today --start")
			return nil
		}
		fmt.Printf("Day %d: %s (%s)\n", session.DayIndex, session.DayName, session.Date)
		printSession(session)
		return nil
	},
}

func init() {
	todayCmd.Flags().BoolVar(&todayStart, "start", false, "Start today's workout if none is in progress")
	todayCmd.Flags().IntVar(&todayDay, "day", 0, "Plan day to start (1-7, default: scheduled next day)")
}

func printSession(session models.WorkoutSession) {
	if len(session.Sets) == 0 {
		fmt.Println("  No sets logged yet.")
		return
	}

	units := appStore.Settings().Units
	for _, group := range models.GroupSetsByExercise(session.Sets) {
		fmt.Printf("  %s\n", color.New(color.Bold).Sprint(group.ExerciseName))
		for _, set := range group.Sets {
			fmt.Printf("    %d. %s\n", set.SetNumber, formatSet(set, units))
		}
	}
}

func formatSet(set models.WorkoutSet, units string) string {
	if !set.Filled() {
		return color.New(color.Faint).Sprint("(empty)")
	}

	out := ""
	if set.Weight != nil {
		out += fmt.Sprintf("%.1f %s", *set.Weight, units)
	}
	if set.Reps != nil {
		if out != "" {
			out += " × "
		}
		if models.IsTimedExercise(set.ExerciseKey) {
			out += fmt.Sprintf("%ds", *set.Reps)
		} else {
			out += fmt.Sprintf("%d reps", *set.Reps)
		}
	}
	if set.RPE != nil {
		out += fmt.Sprintf(" @ RPE %.1f", *set.RPE)
	}
	if set.Notes != "" {
		out += " " + color.New(color.Faint).Sprint("("+set.Notes+")")
	}
	return out
}
