// ABOUTME: Remote record service interface consumed by queue and merge.
// ABOUTME: Completed sessions and drafts live in structurally separate stores.
package remote

import (
	"context"

	"github.com/harperreed/ironlog/internal/models"
)

// Snapshot is what a full remote load returns. Settings is nil when the
// singleton has never been saved.
type Snapshot struct {
	Sessions []models.WorkoutSession
	Steps    []models.StepsEntry
	Settings *models.AppSettings
}

// Service is the async CRUD surface of the remote record store. Every
// call may fail; callers treat all failures as retryable and never
// branch on the cause.
//
// SaveSession routes by state: a completed session upserts into the
// completed store (start time dropped, any lingering draft copy
// deleted), a draft upserts into the draft store. The two stores never
// hold the same id at once except transiently mid-transition.
type Service interface {
	SaveSession(ctx context.Context, session models.WorkoutSession) error
	DeleteSession(ctx context.Context, id string) error
	SaveSteps(ctx context.Context, date string, stepCount int) error
	SaveSettings(ctx context.Context, settings models.AppSettings) error

	// LoadAll returns completed sessions (with sets), all step entries,
	// and the settings singleton.
	LoadAll(ctx context.Context) (Snapshot, error)
	// LoadAllDrafts returns all draft sessions with Completed forced false.
	LoadAllDrafts(ctx context.Context) ([]models.WorkoutSession, error)
}
