// ABOUTME: Sync operation payloads replayed against the record service.
// ABOUTME: Each operation carries everything needed to replay standalone.
package remote

import (
	"context"
	"fmt"

	"github.com/harperreed/ironlog/internal/models"
)

// OpKind identifies a replayable mutation.
type OpKind string

const (
	OpSaveSession    OpKind = "saveSession"
	OpDeleteSession  OpKind = "deleteSession"
	OpSaveSteps      OpKind = "saveSteps"
	OpUpdateSettings OpKind = "updateSettings"
)

// Operation is one queued mutation. The payload is complete at enqueue
// time; replay never reads current state.
type Operation struct {
	Kind      OpKind                 `json:"kind"`
	Session   *models.WorkoutSession `json:"session,omitempty"`
	SessionID string                 `json:"sessionId,omitempty"`
	Date      string                 `json:"date,omitempty"`
	StepCount int                    `json:"stepCount,omitempty"`
	Settings  *models.AppSettings    `json:"settings,omitempty"`
}

// SaveSessionOp builds a save-session operation.
func SaveSessionOp(s models.WorkoutSession) Operation {
	return Operation{Kind: OpSaveSession, Session: &s}
}

// DeleteSessionOp builds a delete-session operation.
func DeleteSessionOp(id string) Operation {
	return Operation{Kind: OpDeleteSession, SessionID: id}
}

// SaveStepsOp builds a save-steps operation.
func SaveStepsOp(date string, stepCount int) Operation {
	return Operation{Kind: OpSaveSteps, Date: date, StepCount: stepCount}
}

// UpdateSettingsOp builds an update-settings operation. The payload is
// the full settings record, not a patch, so replay is order-safe.
func UpdateSettingsOp(s models.AppSettings) Operation {
	return Operation{Kind: OpUpdateSettings, Settings: &s}
}

// Apply replays the operation against a record service.
func (op Operation) Apply(ctx context.Context, svc Service) error {
	switch op.Kind {
	case OpSaveSession:
		if op.Session == nil {
			return fmt.Errorf("saveSession operation missing payload")
		}
		return svc.SaveSession(ctx, *op.Session)
	case OpDeleteSession:
		return svc.DeleteSession(ctx, op.SessionID)
	case OpSaveSteps:
		return svc.SaveSteps(ctx, op.Date, op.StepCount)
	case OpUpdateSettings:
		if op.Settings == nil {
			return fmt.Errorf("updateSettings operation missing payload")
		}
		return svc.SaveSettings(ctx, *op.Settings)
	default:
		return fmt.Errorf("unknown operation kind: %s", op.Kind)
	}
}
