// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"fmt"
	"sync"
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

const (
	appName   = "Gesture"
	desktopID = "gesture"
	photoIcon = "image-x-generic"

	defaultTimeout = 5000
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
	Transient  bool    // skip the notification server's history
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// SlideshowFinished is sent when a slideshow runs out of photos.
func SlideshowFinished(query string, shown int) Notification {
	noun := "photos"
	if shown == 1 {
		noun = "photo"
	}
	return Notification{
		Title:   "Slideshow finished",
		Body:    fmt.Sprintf("%d %s of “%s”", shown, noun, query),
		Icon:      photoIcon,
		Timeout:   defaultTimeout,
		Urgency:   UrgencyNormal,
		Transient: true,
	}
}

// SearchFailed is sent when a search could not produce a slideshow.
func SearchFailed(query, reason string) Notification {
	return Notification{
		Title:   "Search failed",
		Body:    fmt.Sprintf("“%s”: %s", query, reason),
		Icon:    "dialog-error",
		Timeout: defaultTimeout,
		Urgency: UrgencyCritical,
	}
}

// Disabled returns a notifier that sends nothing.
func Disabled() Notifier {
	return &stubNotifier{}
}

// stubNotifier is used when notifications are off or D-Bus is unavailable.
type stubNotifier struct{}

func (s *stubNotifier) Notify(_ Notification) (uint32, error) {
	return 0, nil
}

func (s *stubNotifier) Close(_ uint32) error {
	return nil
}

// Recorder keeps sent notifications in memory. Used in tests.
type Recorder struct {
	mu   sync.Mutex
	sent []Notification
}

func (r *Recorder) Notify(n Notification) (uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	return uint32(len(r.sent)), nil //nolint:gosec // test helper, small counts
}

func (r *Recorder) Close(_ uint32) error {
	return nil
}

// Sent returns the notifications sent so far.
func (r *Recorder) Sent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.sent))
	copy(out, r.sent)
	return out
}
