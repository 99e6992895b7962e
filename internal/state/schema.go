package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS search_prefs (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			last_query TEXT,
			page_size INTEGER NOT NULL,
			dwell_seconds INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS recent_queries (
			query TEXT PRIMARY KEY,
			used_at INTEGER NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_recent_queries_used_at ON recent_queries(used_at DESC);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
