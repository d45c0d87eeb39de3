package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS analyses (
		id            TEXT PRIMARY KEY,
		source        TEXT NOT NULL,
		row_count     INTEGER NOT NULL,
		task_count    INTEGER NOT NULL,
		errors        INTEGER NOT NULL DEFAULT 0,
		warnings      INTEGER NOT NULL DEFAULT 0,
		infos         INTEGER NOT NULL DEFAULT 0,
		total_alerts  INTEGER NOT NULL DEFAULT 0,
		total_value   REAL NOT NULL DEFAULT 0,
		spi           REAL,
		created_at    TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS analysis_alerts (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		analysis_id  TEXT NOT NULL REFERENCES analyses(id) ON DELETE CASCADE,
		severity     TEXT NOT NULL,
		message      TEXT NOT NULL,
		row_index    INTEGER
	)`,
	`CREATE INDEX IF NOT EXISTS idx_analysis_alerts_analysis
		ON analysis_alerts(analysis_id)`,
	`CREATE INDEX IF NOT EXISTS idx_analyses_created_at
		ON analyses(created_at)`,
}

// Migrate runs all schema migrations. Statements are idempotent so the whole
// list re-runs on every open.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
