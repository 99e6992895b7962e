package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/gesture/internal/slideshow"
	"github.com/llehouerou/gesture/internal/ui/layout"
)

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SlideshowMessage:
		return m.handleSlideshowMsg(msg)
	case MediaMessage:
		return m.handleMediaMsg(msg)
	case UIMessage:
		return m.handleUIMsg(msg)
	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case spinner.TickMsg:
		if m.snap.Mode != slideshow.ModeLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Cursor blink and other input messages go to the form.
	if m.snap.Mode == slideshow.ModeIdle {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.form.SetWidth(layout.QueryWidth(msg.Width))
	return m, m.relayout()
}

func (m Model) handleUIMsg(msg UIMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StartSearchMsg:
		return m.submitSearch()
	case FlashExpiredMsg:
		if msg.Seq == m.flashSeq {
			m.flash = ""
		}
	case LinkCopiedMsg:
		if msg.Err != nil {
			return m, m.setFlash("Could not copy link: " + msg.Err.Error())
		}
		return m, m.setFlash("Copied " + msg.URL)
	}
	return m, nil
}
