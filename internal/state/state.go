// Package state stores the search form's last values and recent queries.
// It never stores slideshow state.
package state

import (
	"database/sql"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"

	dbutil "github.com/llehouerou/gesture/internal/db"
)

const (
	appName      = "gesture"
	dbFileName   = "gesture.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager is the SQLite-backed store. It implements Interface.
type Manager struct {
	db   *sql.DB
	now  func() time.Time
	save func(*sql.DB, Prefs) error

	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *Prefs
	saving    sync.WaitGroup
	closed    bool
}

// Open opens the store in the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the store at path; dbutil.MemoryPath gives a throwaway
// in-memory store.
func OpenPath(path string) (*Manager, error) {
	db, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db, now: time.Now, save: savePrefs}, nil
}

// Close writes any prefs still waiting for the debounce delay, waits for a
// save already under way and closes the database.
func (m *Manager) Close() error {
	m.saveMu.Lock()
	m.closed = true
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	m.saving.Wait()
	if pending != nil {
		m.writePrefs(*pending)
	}

	return m.db.Close()
}

// GetPrefs returns the saved search values, or nil before the first save.
func (m *Manager) GetPrefs() (*Prefs, error) {
	return getPrefs(m.db)
}

// SavePrefs stores p after a short delay; later calls within the delay
// replace it.
func (m *Manager) SavePrefs(p Prefs) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	if m.closed {
		slog.Debug("search preferences not saved: store closed")
		return
	}

	m.pending = &p

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	m.saveTimer = time.AfterFunc(saveDebounce, m.flushPending)
}

func (m *Manager) flushPending() {
	m.saveMu.Lock()
	if m.closed || m.pending == nil {
		m.saveMu.Unlock()
		return
	}
	pending := *m.pending
	m.pending = nil
	m.saving.Add(1)
	m.saveMu.Unlock()

	defer m.saving.Done()
	m.writePrefs(pending)
}

func (m *Manager) writePrefs(p Prefs) {
	if err := m.save(m.db, p); err != nil {
		slog.Warn("save search preferences", "error", err)
	}
}

// RecordQuery marks query as the most recent search.
func (m *Manager) RecordQuery(query string) error {
	return recordQuery(m.db, query, m.now())
}

// RecentQueries returns up to limit queries, newest first.
func (m *Manager) RecentQueries(limit int) ([]string, error) {
	return recentQueries(m.db, limit)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
