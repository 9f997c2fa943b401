// ABOUTME: StepsEntry model for daily step counts.
// ABOUTME: One entry per calendar date with upsert-by-date semantics.
package models

import (
	"time"

	"github.com/google/uuid"
)

// StepsEntry records the step count for one calendar date.
type StepsEntry struct {
	ID        string `json:"id"`
	Date      string `json:"date"` // YYYY-MM-DD
	StepCount int    `json:"stepCount"`
}

// NewStepsEntry creates a steps entry with a generated UUID.
func NewStepsEntry(date string, stepCount int) StepsEntry {
	return StepsEntry{
		ID:        uuid.New().String(),
		Date:      date,
		StepCount: stepCount,
	}
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateFormat, s)
	return err == nil
}
