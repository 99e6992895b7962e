// Package app implements the terminal interface: the search form and the
// lightbox showing the running slideshow.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/gesture/internal/media"
	"github.com/llehouerou/gesture/internal/slideshow"
)

// Message category interfaces for type-based routing in Update().
// External messages (from other packages) cannot implement these interfaces,
// so they are handled separately in the Update() switch.

// SlideshowMessage is implemented by messages coming from the slideshow controller.
type SlideshowMessage interface {
	tea.Msg
	slideshowMessage()
}

// MediaMessage is implemented by messages about photo downloads and
// terminal graphics.
type MediaMessage interface {
	tea.Msg
	mediaMessage()
}

// UIMessage is implemented by messages about transient interface state.
type UIMessage interface {
	tea.Msg
	uiMessage()
}

// SlideshowChangedMsg signals that the controller emitted a new snapshot.
// The controller's Snapshot() is read when handling it, since events may be
// dropped when the subscriber falls behind.
type SlideshowChangedMsg struct{}

func (SlideshowChangedMsg) slideshowMessage() {}

// SearchFailedMsg is sent when a search produced no slideshow.
type SearchFailedMsg slideshow.ErrorEvent

func (SearchFailedMsg) slideshowMessage() {}

// SlideshowFinishedMsg is sent when the last photo of a session was shown.
type SlideshowFinishedMsg slideshow.FinishedEvent

func (SlideshowFinishedMsg) slideshowMessage() {}

// ServiceClosedMsg is sent when the controller shuts down.
type ServiceClosedMsg struct{}

func (ServiceClosedMsg) slideshowMessage() {}

// ImageLoadedMsg carries the result of a photo download.
type ImageLoadedMsg struct {
	URL   string
	Image *media.Image
	Err   error
}

func (ImageLoadedMsg) mediaMessage() {}

// GraphicsSentMsg is sent once pending graphics commands had time to reach
// the terminal. Seq ignores stale messages.
type GraphicsSentMsg struct {
	Seq int
}

func (GraphicsSentMsg) mediaMessage() {}

// StartSearchMsg submits the form as is. Sent at startup when a query was
// given on the command line.
type StartSearchMsg struct{}

func (StartSearchMsg) uiMessage() {}

// FlashExpiredMsg clears the flash message it was scheduled for.
type FlashExpiredMsg struct {
	Seq int
}

func (FlashExpiredMsg) uiMessage() {}

// LinkCopiedMsg reports the outcome of copying a photo link.
type LinkCopiedMsg struct {
	URL string
	Err error
}

func (LinkCopiedMsg) uiMessage() {}
