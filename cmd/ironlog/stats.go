// ABOUTME: CLI command for streak and weekly training stats.
// ABOUTME: Streak, workouts this week, and the 7-day step average.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harperreed/ironlog/internal/models"
)

var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"streak"},
	Short:   "Show streak and weekly stats",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Streak:             %d days\n", appStore.Streak())
		fmt.Printf("Workouts this week: %d\n", appStore.WorkoutsThisWeek())

		avg := appStore.StepsAverage7Days()
		goal := appStore.Settings().StepGoal
		fmt.Printf("Steps (7-day avg):  %d / %d goal\n", avg, goal)

		today := time.Now().Format(models.DateFormat)
		if entry, ok := appStore.StepsForDate(today); ok {
			fmt.Printf("Steps today:        %d\n", entry.StepCount)
		}
		return nil
	},
}
