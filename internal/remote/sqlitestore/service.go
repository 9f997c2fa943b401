// ABOUTME: remote.Service implementation over the SQLite record store.
// ABOUTME: Session saves replace the set rows transactionally.
package sqlitestore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/harperreed/ironlog/internal/models"
	"github.com/harperreed/ironlog/internal/remote"
)

const settingsID = "default"

var _ remote.Service = (*Store)(nil)

// SaveSession routes by session state. A completed session upserts into
// workout_sessions (start time dropped) and evicts any draft rows for
// the same id; a draft upserts into workout_drafts with its start time.
// Set rows are replaced wholesale inside one transaction.
func (s *Store) SaveSession(ctx context.Context, session models.WorkoutSession) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if session.State() == models.StateCompleted {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO workout_sessions (id, date, day_index, day_name, notes, duration_minutes)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				date = excluded.date,
				day_index = excluded.day_index,
				day_name = excluded.day_name,
				notes = excluded.notes,
				duration_minutes = excluded.duration_minutes`,
			session.ID, session.Date, session.DayIndex, session.DayName,
			session.Notes, session.DurationMin)
		if err != nil {
			return fmt.Errorf("upsert session: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM workout_sets WHERE session_id = ?`, session.ID); err != nil {
			return fmt.Errorf("clear sets: %w", err)
		}
		if err := insertSets(ctx, tx, "workout_sets", "session_id", session.ID, session.Sets); err != nil {
			return err
		}

		// A session that just transitioned may still have draft rows.
		if _, err := tx.ExecContext(ctx, `DELETE FROM workout_drafts WHERE id = ?`, session.ID); err != nil {
			return fmt.Errorf("evict draft: %w", err)
		}
	} else {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO workout_drafts (id, date, day_index, day_name, notes, start_time)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				date = excluded.date,
				day_index = excluded.day_index,
				day_name = excluded.day_name,
				notes = excluded.notes,
				start_time = excluded.start_time`,
			session.ID, session.Date, session.DayIndex, session.DayName,
			session.Notes, session.StartTime)
		if err != nil {
			return fmt.Errorf("upsert draft: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM workout_draft_sets WHERE draft_id = ?`, session.ID); err != nil {
			return fmt.Errorf("clear draft sets: %w", err)
		}
		if err := insertSets(ctx, tx, "workout_draft_sets", "draft_id", session.ID, session.Sets); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func insertSets(ctx context.Context, tx *sql.Tx, table, fkColumn, sessionID string, sets []models.WorkoutSet) error {
	stmt := fmt.Sprintf(`
		INSERT INTO %s (id, %s, exercise_key, exercise_name, set_number, weight, reps, rpe, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`, table, fkColumn)
	for _, set := range sets {
		id := set.ID
		if id == "" {
			id = uuid.New().String()
		}
		_, err := tx.ExecContext(ctx, stmt,
			id, sessionID, set.ExerciseKey, set.ExerciseName, set.SetNumber,
			set.Weight, set.Reps, set.RPE, set.Notes)
		if err != nil {
			return fmt.Errorf("insert set: %w", err)
		}
	}
	return nil
}

// DeleteSession removes a session from both stores. Set rows cascade.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM workout_sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM workout_drafts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return tx.Commit()
}

// SaveSteps upserts the step entry for a date, preserving the row id on
// conflict.
func (s *Store) SaveSteps(ctx context.Context, date string, stepCount int) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO steps_entries (id, date, step_count)
		VALUES (?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET step_count = excluded.step_count`,
		uuid.New().String(), date, stepCount)
	if err != nil {
		return fmt.Errorf("upsert steps: %w", err)
	}
	return nil
}

// SaveSettings upserts the settings singleton row.
func (s *Store) SaveSettings(ctx context.Context, settings models.AppSettings) error {
	include := 0
	if settings.IncludeDay4Recovery {
		include = 1
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO app_settings (id, units, daily_step_goal, cycle_start_day, manual_next_day, include_day4_recovery)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			units = excluded.units,
			daily_step_goal = excluded.daily_step_goal,
			cycle_start_day = excluded.cycle_start_day,
			manual_next_day = excluded.manual_next_day,
			include_day4_recovery = excluded.include_day4_recovery`,
		settingsID, settings.Units, settings.StepGoal, settings.CycleStartDay,
		settings.ManualNextDay, include)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

// LoadAll returns completed sessions with their sets, all step entries,
// and the settings singleton if present.
func (s *Store) LoadAll(ctx context.Context) (remote.Snapshot, error) {
	var snap remote.Snapshot

	sessions, err := s.loadSessions(ctx, "workout_sessions", "workout_sets", "session_id")
	if err != nil {
		return snap, err
	}
	for i := range sessions {
		sessions[i].Completed = true
	}
	snap.Sessions = sessions

	rows, err := s.db.QueryContext(ctx, `SELECT id, date, step_count FROM steps_entries ORDER BY date`)
	if err != nil {
		return snap, fmt.Errorf("query steps: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var e models.StepsEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.StepCount); err != nil {
			return snap, fmt.Errorf("scan steps entry: %w", err)
		}
		snap.Steps = append(snap.Steps, e)
	}
	if err := rows.Err(); err != nil {
		return snap, err
	}

	settings, err := s.loadSettings(ctx)
	if err != nil {
		return snap, err
	}
	snap.Settings = settings

	return snap, nil
}

// LoadAllDrafts returns every draft session with its sets.
func (s *Store) LoadAllDrafts(ctx context.Context) ([]models.WorkoutSession, error) {
	drafts, err := s.loadSessions(ctx, "workout_drafts", "workout_draft_sets", "draft_id")
	if err != nil {
		return nil, err
	}
	for i := range drafts {
		drafts[i].Completed = false
	}
	return drafts, nil
}

func (s *Store) loadSessions(ctx context.Context, table, setTable, fkColumn string) ([]models.WorkoutSession, error) {
	var query string
	if table == "workout_drafts" {
		query = `SELECT id, date, day_index, day_name, notes, NULL, start_time FROM workout_drafts ORDER BY date`
	} else {
		query = `SELECT id, date, day_index, day_name, notes, duration_minutes, NULL FROM workout_sessions ORDER BY date`
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	var sessions []models.WorkoutSession
	for rows.Next() {
		var sess models.WorkoutSession
		var notes sql.NullString
		if err := rows.Scan(&sess.ID, &sess.Date, &sess.DayIndex, &sess.DayName,
			&notes, &sess.DurationMin, &sess.StartTime); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", table, err)
		}
		sess.Notes = notes.String
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range sessions {
		sets, err := s.loadSets(ctx, setTable, fkColumn, sessions[i].ID)
		if err != nil {
			return nil, err
		}
		sessions[i].Sets = sets
	}
	return sessions, nil
}

func (s *Store) loadSets(ctx context.Context, table, fkColumn, sessionID string) ([]models.WorkoutSet, error) {
	query := fmt.Sprintf(`
		SELECT id, exercise_key, exercise_name, set_number, weight, reps, rpe, notes
		FROM %s WHERE %s = ? ORDER BY rowid`, table, fkColumn)

	rows, err := s.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("query sets: %w", err)
	}
	defer rows.Close()

	var sets []models.WorkoutSet
	for rows.Next() {
		var set models.WorkoutSet
		var notes sql.NullString
		if err := rows.Scan(&set.ID, &set.ExerciseKey, &set.ExerciseName,
			&set.SetNumber, &set.Weight, &set.Reps, &set.RPE, &notes); err != nil {
			return nil, fmt.Errorf("scan set row: %w", err)
		}
		set.SessionID = sessionID
		set.Notes = notes.String
		sets = append(sets, set)
	}
	return sets, rows.Err()
}

func (s *Store) loadSettings(ctx context.Context) (*models.AppSettings, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT units, daily_step_goal, cycle_start_day, manual_next_day, include_day4_recovery
		FROM app_settings WHERE id = ?`, settingsID)

	var settings models.AppSettings
	var include int
	err := row.Scan(&settings.Units, &settings.StepGoal, &settings.CycleStartDay,
		&settings.ManualNextDay, &include)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan settings: %w", err)
	}
	settings.IncludeDay4Recovery = include != 0
	return &settings, nil
}
