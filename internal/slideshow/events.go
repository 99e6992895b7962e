package slideshow

import "github.com/llehouerou/gesture/internal/photo"

// Snapshot is the complete visible state, emitted after every transition.
type Snapshot struct {
	Mode             Mode
	Current          *photo.Item // nil unless Mode.IsDisplaying()
	CurrentURL       string      // selected variant of Current
	RemainingSeconds int
	DwellSeconds     int
	HasNext          bool // another item follows Current
	HasPrevious      bool // Previous would step back
	PrefetchURL      string
	Position         int // 1-based position of Current in the session
	Total            int
	Query            string
	Err              error // last search failure, cleared by the next search
}

// ErrorEvent is emitted when a search fails.
type ErrorEvent struct {
	Operation string // e.g., "search"
	Query     string
	Err       error
}

// FinishedEvent is emitted when the queue runs out after the last item.
type FinishedEvent struct {
	Query string
	Shown int
}
