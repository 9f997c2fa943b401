// ABOUTME: SQLite schema for the remote record store.
// ABOUTME: Completed sessions and drafts live in separate table pairs.
package sqlitestore

// initSchema creates or updates the database schema.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS workout_sessions (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		day_index INTEGER NOT NULL,
		day_name TEXT NOT NULL,
		notes TEXT,
		duration_minutes INTEGER,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS workout_sets (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		exercise_key TEXT NOT NULL,
		exercise_name TEXT NOT NULL,
		set_number INTEGER NOT NULL,
		weight REAL,
		reps INTEGER,
		rpe REAL,
		notes TEXT,
		FOREIGN KEY (session_id) REFERENCES workout_sessions(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS workout_drafts (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		day_index INTEGER NOT NULL,
		day_name TEXT NOT NULL,
		notes TEXT,
		start_time TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS workout_draft_sets (
		id TEXT PRIMARY KEY,
		draft_id TEXT NOT NULL,
		exercise_key TEXT NOT NULL,
		exercise_name TEXT NOT NULL,
		set_number INTEGER NOT NULL,
		weight REAL,
		reps INTEGER,
		rpe REAL,
		notes TEXT,
		FOREIGN KEY (draft_id) REFERENCES workout_drafts(id) ON DELETE CASCADE
	);

	CREATE TABLE IF NOT EXISTS steps_entries (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL UNIQUE,
		step_count INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS app_settings (
		id TEXT PRIMARY KEY,
		units TEXT NOT NULL,
		daily_step_goal INTEGER NOT NULL,
		cycle_start_day INTEGER NOT NULL,
		manual_next_day INTEGER,
		include_day4_recovery INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_date ON workout_sessions(date DESC);
	CREATE INDEX IF NOT EXISTS idx_sets_session ON workout_sets(session_id);
	CREATE INDEX IF NOT EXISTS idx_drafts_date ON workout_drafts(date DESC);
	CREATE INDEX IF NOT EXISTS idx_draft_sets_draft ON workout_draft_sets(draft_id);
	`

	_, err := s.db.Exec(schema)
	return err
}
