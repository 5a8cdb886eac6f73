package db

import (
	"database/sql"
	"fmt"
)

// Migrate applies the schema. Every statement is idempotent, so Migrate is
// safe to run on each open.
//
// Records are keyed by (user_id, id). The full record is stored as JSON in
// payload; the other columns are copies used for listing and lookups.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS goal_analyses (
		user_id           TEXT NOT NULL,
		id                TEXT NOT NULL,
		subject           TEXT NOT NULL,
		goal_type         TEXT NOT NULL
		                  CHECK(goal_type IN ('exam','interview','job','project')),
		feasibility_score INTEGER NOT NULL CHECK(feasibility_score BETWEEN 0 AND 100),
		is_feasible       INTEGER NOT NULL DEFAULT 0,
		payload           TEXT NOT NULL,
		created_at        TEXT NOT NULL,
		PRIMARY KEY (user_id, id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_goal_analyses_created ON goal_analyses(user_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS study_plans (
		user_id     TEXT NOT NULL,
		id          TEXT NOT NULL,
		goal_id     TEXT NOT NULL,
		status      TEXT NOT NULL DEFAULT 'active'
		            CHECK(status IN ('active','completed','paused')),
		total_days  INTEGER NOT NULL,
		payload     TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		PRIMARY KEY (user_id, id),
		FOREIGN KEY (user_id, goal_id) REFERENCES goal_analyses(user_id, id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_study_plans_goal ON study_plans(user_id, goal_id)`,

	`CREATE TABLE IF NOT EXISTS syllabus_documents (
		user_id     TEXT NOT NULL,
		id          TEXT NOT NULL,
		title       TEXT NOT NULL,
		topics      TEXT NOT NULL,
		created_at  TEXT NOT NULL,
		PRIMARY KEY (user_id, id)
	)`,
}
