// ABOUTME: CLI command viewing and updating tracker settings.
// ABOUTME: Flags map onto a partial patch; unset flags leave fields alone.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/ironlog/internal/models"
)

var (
	settingsUnits       string
	settingsStepGoal    int
	settingsNextDay     int
	settingsAutoNext    bool
	settingsIncludeDay4 bool
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "View or update settings",
	Long: `View or update tracker settings. With no flags, prints the current
settings.

Examples:
  ironlog settings
  ironlog settings --units lb
  ironlog settings --step-goal 12000
  ironlog settings --next-day 3       # Override the next workout day
  ironlog settings --auto-next        # Back to automatic scheduling
  ironlog settings --include-day4=false`,
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := models.SettingsPatch{}
		changed := false

		if cmd.Flags().Changed("units") {
			patch.Units = &settingsUnits
			changed = true
		}
		if cmd.Flags().Changed("step-goal") {
			patch.StepGoal = &settingsStepGoal
			changed = true
		}
		if cmd.Flags().Changed("next-day") {
			patch.ManualNextDay = &settingsNextDay
			changed = true
		}
		if settingsAutoNext {
			patch.ClearManualNextDay = true
			changed = true
		}
		if cmd.Flags().Changed("include-day4") {
			patch.IncludeDay4Recovery = &settingsIncludeDay4
			changed = true
		}

		if changed {
			if err := appStore.UpdateSettings(patch); err != nil {
				return fmt.Errorf("failed to update settings: %w", err)
			}
			color.Green("✓ Settings updated")
		}

		s := appStore.Settings()
		fmt.Printf("Units:          %s\n", s.Units)
		fmt.Printf("Step goal:      %d\n", s.StepGoal)
		if s.ManualNextDay != nil {
			fmt.Printf("Next day:       %d (manual override)\n", *s.ManualNextDay)
		} else {
			fmt.Printf("Next day:       automatic\n")
		}
		fmt.Printf("Recovery day 4: %v\n", s.IncludeDay4Recovery)
		return nil
	},
}

func init() {
	settingsCmd.Flags().StringVar(&settingsUnits, "units", "", `Weight units: "kg" or "lb"`)
	settingsCmd.Flags().IntVar(&settingsStepGoal, "step-goal", 0, "Daily step goal")
	settingsCmd.Flags().IntVar(&settingsNextDay, "next-day", 0, "Override the next workout day (1-7)")
	settingsCmd.Flags().BoolVar(&settingsAutoNext, "auto-next", false, "Clear the next-day override")
	settingsCmd.Flags().BoolVar(&settingsIncludeDay4, "include-day4", true, "Include the recovery day in rotation")
}
