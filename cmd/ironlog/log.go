// ABOUTME: CLI command for logging one set of an exercise.
// ABOUTME: Timed exercises take seconds in place of reps.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/ironlog/internal/models"
	"github.com/harperreed/ironlog/internal/plan"
)

var (
	logRPE   float64
	logNotes string
)

var logCmd = &cobra.Command{
	Use:     "log <exercise-key> [weight] [reps]",
	Aliases: []string{"l"},
	Short:   "Log a set in today's workout",
	Long: `Log one set of an exercise in today's session. Starts the session
first if needed. For timed exercises (cardio, conditioning), pass the
elapsed seconds in place of reps.

Examples:
  ironlog log incline-db-press 27.5 8
  ironlog log db-lateral-raise 10 15 --rpe 8
  ironlog log cardio-incline-walk 0 1500      # 25 minutes
  ironlog log leg-press                       # Empty set, fill in later`,
	Args: cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, ok := appStore.TodaySession()
		if !ok {
			var err error
			session, err = appStore.StartTodaySession(0)
			if err != nil {
				return fmt.Errorf("failed to start workout: %w", err)
			}
		}

		key := args[0]
		name := key
		if day, ok := plan.Day(session.DayIndex); ok {
			for _, ex := range day.Exercises {
				if ex.Key == key {
					name = ex.Name
					break
				}
			}
		}

		set := models.NewWorkoutSet(session.ID, key, name)
		if len(args) > 1 {
			weight, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid weight: %s", args[1])
			}
			set = set.WithWeight(weight)
		}
		if len(args) > 2 {
			reps, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid reps: %s", args[2])
			}
			set = set.WithReps(reps)
		}
		if cmd.Flags().Changed("rpe") {
			set = set.WithRPE(logRPE)
		}
		set.Notes = logNotes

		session.AddSet(set)
		if err := appStore.SaveSessionDebounced(session); err != nil {
			return fmt.Errorf("failed to save set: %w", err)
		}

		logged := session.Sets[len(session.Sets)-1]
		color.Green("✓ %s set %d", name, logged.SetNumber)
		fmt.Printf("  %s\n", formatSet(logged, appStore.Settings().Units))
		return nil
	},
}

func init() {
	logCmd.Flags().Float64Var(&logRPE, "rpe", 0, "Rating of perceived exertion (1-10)")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "Notes for this set")
}
