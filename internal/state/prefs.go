package state

import (
	"database/sql"
	"errors"

	dbutil "github.com/llehouerou/gesture/internal/db"
)

// Prefs are the search form values of the last search.
type Prefs struct {
	Query        string
	PageSize     int
	DwellSeconds int
}

func getPrefs(db *sql.DB) (*Prefs, error) {
	row := db.QueryRow(`
		SELECT last_query, page_size, dwell_seconds
		FROM search_prefs WHERE id = 1
	`)

	var p Prefs
	var query sql.NullString
	err := row.Scan(&query, &p.PageSize, &p.DwellSeconds)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved prefs is valid on first run
	}
	if err != nil {
		return nil, err
	}
	p.Query = dbutil.NullStringValue(query)
	return &p, nil
}

func savePrefs(db *sql.DB, p Prefs) error {
	query := sql.NullString{String: p.Query, Valid: p.Query != ""}
	_, err := db.Exec(`
		INSERT INTO search_prefs (id, last_query, page_size, dwell_seconds)
		VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_query = excluded.last_query,
			page_size = excluded.page_size,
			dwell_seconds = excluded.dwell_seconds
	`, query, p.PageSize, p.DwellSeconds)
	return err
}
