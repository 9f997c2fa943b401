// ABOUTME: CLI command completing today's workout session.
// ABOUTME: Completion is one-way and clears any manual next-day override.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var doneDuration int

var doneCmd = &cobra.Command{
	Use:   "done",
	Short: "Complete today's workout",
	Long: `Mark today's workout session as completed. Completed sessions count
toward the streak and scheduling history.

Examples:
  ironlog done
  ironlog done --duration 55`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, ok := appStore.TodaySession()
		if !ok {
			return fmt.Errorf("no workout in progress today")
		}

		var duration *int
		if cmd.Flags().Changed("duration") {
			duration = &doneDuration
		}
		session.Complete(duration)
		if err := appStore.SaveSession(session); err != nil {
			return fmt.Errorf("failed to complete workout: %w", err)
		}

		color.Green("✓ Completed %s", session.DayName)
		fmt.Printf("  %d sets logged", len(session.Sets))
		if duration != nil {
			fmt.Printf(", %d min", *duration)
		}
		fmt.Println()
		fmt.Printf("  Streak: %d days\n", appStore.Streak())
		return nil
	},
}

func init() {
	doneCmd.Flags().IntVar(&doneDuration, "duration", 0, "Workout duration in minutes")
}
