// Package handler provides the result type and chaining used by the
// per-view key handlers.
package handler

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/gesture/internal/keymap"
)

// Result represents the outcome of a key handler.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled is returned when a handler doesn't handle the action.
var NotHandled = Result{}

// HandledNoCmd is a convenience for handlers that handle but return no command.
var HandledNoCmd = Result{Handled: true}

// Handled creates a Result indicating the action was handled with a command.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle a resolved action.
type Handler func(action keymap.Action) Result

// Chain offers action to each handler in order until one handles it.
// An empty action is never handled.
func Chain(action keymap.Action, handlers ...Handler) Result {
	if action == "" {
		return NotHandled
	}
	for _, h := range handlers {
		if r := h(action); r.Handled {
			return r
		}
	}
	return NotHandled
}

// Only wraps fn so it handles a single action and passes on everything else.
func Only(want keymap.Action, fn func() Result) Handler {
	return func(action keymap.Action) Result {
		if action != want {
			return NotHandled
		}
		return fn()
	}
}
