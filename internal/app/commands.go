package app

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/gesture/internal/notify"
)

const (
	imageTimeout  = time.Minute
	flashDuration = 3 * time.Second
	graphicsDelay = 150 * time.Millisecond
)

// WatchSlideshowEvents returns a command that waits for the next controller
// event. It must be issued again after each message it produces.
func (m Model) WatchSlideshowEvents() tea.Cmd {
	if m.sub == nil {
		return nil
	}
	sub := m.sub
	return func() tea.Msg {
		select {
		case <-sub.Snapshots:
			return SlideshowChangedMsg{}
		case e := <-sub.Errors:
			return SearchFailedMsg(e)
		case e := <-sub.Finished:
			return SlideshowFinishedMsg(e)
		case <-sub.Done:
			return ServiceClosedMsg{}
		}
	}
}

// FetchImageCmd downloads url and reports it with ImageLoadedMsg.
func FetchImageCmd(f ImageFetcher, url string) tea.Cmd {
	if f == nil || url == "" {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), imageTimeout)
		defer cancel()
		img, err := f.Get(ctx, url)
		return ImageLoadedMsg{URL: url, Image: img, Err: err}
	}
}

// GraphicsSentCmd returns a command that sends GraphicsSentMsg after the
// frame carrying pending graphics commands was drawn.
func GraphicsSentCmd(seq int) tea.Cmd {
	return tea.Tick(graphicsDelay, func(_ time.Time) tea.Msg {
		return GraphicsSentMsg{Seq: seq}
	})
}

// FlashExpiryCmd returns a command that sends FlashExpiredMsg after 3 seconds.
func FlashExpiryCmd(seq int) tea.Cmd {
	return tea.Tick(flashDuration, func(_ time.Time) tea.Msg {
		return FlashExpiredMsg{Seq: seq}
	})
}

// CopyLinkCmd copies url to the clipboard.
func CopyLinkCmd(write ClipboardWriter, url string) tea.Cmd {
	return func() tea.Msg {
		return LinkCopiedMsg{URL: url, Err: write(url)}
	}
}

// NotifyCmd sends a desktop notification off the update loop.
func NotifyCmd(n notify.Notifier, note notify.Notification) tea.Cmd {
	if n == nil {
		return nil
	}
	return func() tea.Msg {
		if _, err := n.Notify(note); err != nil {
			slog.Debug("notification failed", "title", note.Title, "error", err)
		}
		return nil
	}
}
