// ABOUTME: CLI command showing the next scheduled workout day.
// ABOUTME: Prints the plan day with its exercise prescriptions.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/ironlog/internal/plan"
)

var nextCmd = &cobra.Command{
	Use:     "next",
	Aliases: []string{"n"},
	Short:   "Show the next scheduled workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		dayIndex := appStore.NextWorkoutDay()
		day, ok := plan.Day(dayIndex)
		if !ok {
			return fmt.Errorf("no plan day for index %d", dayIndex)
		}

		fmt.Printf("%s - Day %d: %s (%s)\n",
			appStore.DayOfWeekLabel(dayIndex), day.DayIndex,
			color.New(color.Bold).Sprint(day.Name), day.Description)
		if appStore.Settings().ManualNextDay != nil {
			fmt.Println(color.New(color.Faint).Sprint("  (manual override active)"))
		}

		for _, ex := range day.Exercises {
			line := fmt.Sprintf("  %-35s %d × %s", ex.Name, ex.Sets, ex.Reps)
			if ex.Notes != "" {
				line += " " + color.New(color.Faint).Sprint("("+ex.Notes+")")
			}
			fmt.Println(line)
		}
		return nil
	},
}
