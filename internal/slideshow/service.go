// Package slideshow implements the timed slideshow: a forward queue of
// search results, a history of shown items, and a countdown that advances
// automatically while playing.
package slideshow

import (
	"errors"

	"github.com/llehouerou/gesture/internal/photo"
)

// Validation errors returned by Search. None of them changes state.
var (
	ErrEmptyQuery      = errors.New("empty query")
	ErrInvalidPageSize = errors.New("page size must be positive")
	ErrInvalidDwell    = errors.New("dwell time must be positive")
	ErrClosed          = errors.New("slideshow closed")
)

// Service defines the slideshow controller contract.
type Service interface {
	// Commands
	Search(query string, pageSize, dwellSeconds int) error
	Next()
	Previous()
	Pause()
	Play()
	Toggle()
	Exit()
	Tick()

	// State queries
	Snapshot() Snapshot
	Mode() Mode
	Queue() []photo.Item
	History() []photo.Item

	// Event subscription
	Subscribe() *Subscription

	// Lifecycle
	Close() error
}
