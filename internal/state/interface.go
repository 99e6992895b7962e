package state

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	GetPrefs() (*Prefs, error)
	SavePrefs(p Prefs)
	RecordQuery(query string) error
	RecentQueries(limit int) ([]string, error)
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
