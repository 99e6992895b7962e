package app

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/gesture/internal/errmsg"
	"github.com/llehouerou/gesture/internal/notify"
	"github.com/llehouerou/gesture/internal/slideshow"
	"github.com/llehouerou/gesture/internal/state"
)

func (m Model) handleSlideshowMsg(msg SlideshowMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SlideshowChangedMsg:
		cmd := m.refresh()
		return m, tea.Batch(cmd, m.WatchSlideshowEvents())

	case SearchFailedMsg:
		reason := errmsg.Describe(msg.Err)
		if errmsg.IsNotice(msg.Err) {
			m.notice = fmt.Sprintf("No photos found for “%s”", msg.Query)
			m.errMsg = ""
		} else {
			m.errMsg = errmsg.FormatWith(errmsg.OpSearch, msg.Query, msg.Err)
			m.notice = ""
		}
		slog.Info("search failed", "query", msg.Query, "error", msg.Err)
		return m, tea.Batch(
			NotifyCmd(m.notifier, notify.SearchFailed(msg.Query, reason)),
			m.WatchSlideshowEvents(),
		)

	case SlideshowFinishedMsg:
		slog.Info("slideshow finished", "query", msg.Query, "shown", msg.Shown)
		return m, tea.Batch(
			m.setFlash(fmt.Sprintf("Slideshow finished: %d shown", msg.Shown)),
			NotifyCmd(m.notifier, notify.SlideshowFinished(msg.Query, msg.Shown)),
			m.WatchSlideshowEvents(),
		)

	case ServiceClosedMsg:
		m.sub = nil
	}
	return m, nil
}

// submitSearch starts a slideshow from the form content.
func (m Model) submitSearch() (tea.Model, tea.Cmd) {
	if m.svc == nil {
		return m, nil
	}
	v := m.form.Values()
	err := m.svc.Search(v.Query, v.PageSize, v.DwellSeconds)
	switch {
	case errors.Is(err, slideshow.ErrEmptyQuery):
		m.form.err = "Type something to search for"
		return m, nil
	case err != nil:
		m.form.err = err.Error()
		return m, nil
	}

	query := strings.TrimSpace(v.Query)
	m.form.err = ""
	m.errMsg = ""
	m.notice = ""
	if m.stateMgr != nil {
		m.stateMgr.SavePrefs(state.Prefs{Query: query, PageSize: v.PageSize, DwellSeconds: v.DwellSeconds})
		if err := m.stateMgr.RecordQuery(query); err != nil {
			slog.Warn("record query", "query", query, "error", err)
		}
		m.loadRecent()
	}
	slog.Debug("search submitted", "query", query, "page_size", v.PageSize, "dwell", v.DwellSeconds)

	cmd := m.refresh()
	return m, tea.Batch(cmd, m.spinner.Tick)
}

// refresh reads the controller state and brings the photo on screen in
// line with it.
func (m *Model) refresh() tea.Cmd {
	if m.svc == nil {
		return nil
	}
	m.snap = m.svc.Snapshot()
	return m.syncPhoto()
}
