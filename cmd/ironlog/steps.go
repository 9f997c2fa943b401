// ABOUTME: CLI command recording daily step counts.
// ABOUTME: One entry per date; saving again replaces the count.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/ironlog/internal/models"
)

var stepsDate string

var stepsCmd = &cobra.Command{
	Use:   "steps <count>",
	Short: "Record the step count for a date",
	Long: `Record the step count for a date (today by default). Saving again
for the same date replaces the count.

Examples:
  ironlog steps 9200
  ironlog steps 11400 --date 2026-08-27`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid step count: %s", args[0])
		}

		date := stepsDate
		if date == "" {
			date = time.Now().Format(models.DateFormat)
		}
		if err := appStore.SaveSteps(date, count); err != nil {
			return fmt.Errorf("failed to save steps: %w", err)
		}

		color.Green("✓ %d steps on %s", count, date)
		goal := appStore.Settings().StepGoal
		if goal > 0 && count >= goal {
			fmt.Printf("  Goal reached (%d)\n", goal)
		}
		return nil
	},
}

func init() {
	stepsCmd.Flags().StringVar(&stepsDate, "date", "", "Date (YYYY-MM-DD, default today)")
}
