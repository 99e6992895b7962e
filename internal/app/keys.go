package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/gesture/internal/app/handler"
	"github.com/llehouerou/gesture/internal/keymap"
	"github.com/llehouerou/gesture/internal/slideshow"
)

// keyContext returns the binding context of the current screen.
func (m Model) keyContext() string {
	if m.snap.Mode == slideshow.ModeIdle {
		return keymap.ContextForm
	}
	return keymap.ContextLightbox
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	action := m.keys.Resolve(m.keyContext(), key)

	if m.keyContext() == keymap.ContextForm {
		r := handler.Chain(action, m.handleQuitKeys, m.handleFormKeys)
		if r.Handled {
			if action == keymap.ActionSubmit {
				return m.submitSearch()
			}
			return m, r.Cmd
		}
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}

	r := handler.Chain(action,
		m.handleQuitKeys,
		handler.Only(keymap.ActionHelp, m.toggleHelp),
		handler.Only(keymap.ActionCopyLink, m.copyCurrentLink),
		m.handleSlideshowKeys,
	)
	return m, r.Cmd
}

func (m *Model) handleQuitKeys(action keymap.Action) handler.Result {
	if action != keymap.ActionQuit {
		return handler.NotHandled
	}
	return handler.Handled(tea.Quit)
}

// handleFormKeys handles field focus, choice and recent query keys. Keys
// that do not apply to the focused field are left to the text input.
func (m *Model) handleFormKeys(action keymap.Action) handler.Result {
	switch action {
	case keymap.ActionSubmit:
		return handler.HandledNoCmd
	case keymap.ActionNextField:
		return handler.Handled(m.form.nextField())
	case keymap.ActionPrevField:
		return handler.Handled(m.form.prevField())
	case keymap.ActionChoicePrev:
		if m.form.shiftChoice(-1) {
			return handler.HandledNoCmd
		}
	case keymap.ActionChoiceNext:
		if m.form.shiftChoice(1) {
			return handler.HandledNoCmd
		}
	case keymap.ActionRecentPrev:
		if m.form.olderRecent() {
			return handler.HandledNoCmd
		}
	case keymap.ActionRecentNext:
		if m.form.newerRecent() {
			return handler.HandledNoCmd
		}
	}
	return handler.NotHandled
}

// handleSlideshowKeys forwards navigation to the controller.
func (m *Model) handleSlideshowKeys(action keymap.Action) handler.Result {
	switch action {
	case keymap.ActionTogglePause:
		m.svc.Toggle()
	case keymap.ActionNext:
		m.svc.Next()
	case keymap.ActionPrevious:
		m.svc.Previous()
	case keymap.ActionExit:
		m.svc.Exit()
	default:
		return handler.NotHandled
	}
	return handler.Handled(m.refresh())
}

func (m *Model) toggleHelp() handler.Result {
	m.showHelp = !m.showHelp
	return handler.Handled(m.relayout())
}

func (m *Model) copyCurrentLink() handler.Result {
	if m.snap.Current == nil {
		return handler.HandledNoCmd
	}
	url := m.snap.Current.AttributionURL
	if url == "" {
		return handler.Handled(m.setFlash("This photo has no link"))
	}
	return handler.Handled(CopyLinkCmd(m.copyLink, url))
}
