package state

import (
	"database/sql"
	"strings"
	"time"

	dbutil "github.com/llehouerou/gesture/internal/db"
)

// MaxRecentQueries is the number of recent queries kept.
const MaxRecentQueries = 20

// recordQuery marks query as used at now and drops the oldest entries
// beyond MaxRecentQueries. Blank queries are ignored.
func recordQuery(db *sql.DB, query string, now time.Time) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO recent_queries (query, used_at) VALUES (?, ?)
			ON CONFLICT(query) DO UPDATE SET used_at = excluded.used_at
		`, query, now.UnixNano())
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			DELETE FROM recent_queries WHERE query NOT IN (
				SELECT query FROM recent_queries ORDER BY used_at DESC LIMIT ?
			)
		`, MaxRecentQueries)
		return err
	})
}

// recentQueries returns up to limit queries, most recently used first.
func recentQueries(db *sql.DB, limit int) ([]string, error) {
	if limit <= 0 || limit > MaxRecentQueries {
		limit = MaxRecentQueries
	}

	rows, err := db.Query(`
		SELECT query FROM recent_queries ORDER BY used_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var q string
		if err := rows.Scan(&q); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}
