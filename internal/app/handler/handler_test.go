package handler

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/gesture/internal/keymap"
)

func TestNotHandled(t *testing.T) {
	if NotHandled.Handled {
		t.Error("NotHandled.Handled should be false")
	}
	if NotHandled.Cmd != nil {
		t.Error("NotHandled.Cmd should be nil")
	}
}

func TestHandled(t *testing.T) {
	t.Run("nil command", func(t *testing.T) {
		result := Handled(nil)
		if !result.Handled {
			t.Error("Handled(nil).Handled should be true")
		}
		if result.Cmd != nil {
			t.Error("Handled(nil).Cmd should be nil")
		}
	})

	t.Run("with command", func(t *testing.T) {
		result := Handled(func() tea.Msg { return "test" })
		if !result.Handled || result.Cmd == nil {
			t.Errorf("Handled(cmd) = %+v, want handled with command", result)
		}
	})
}

func TestChain(t *testing.T) {
	var calls []string
	record := func(name string, r Result) Handler {
		return func(keymap.Action) Result {
			calls = append(calls, name)
			return r
		}
	}

	t.Run("stops at first handler", func(t *testing.T) {
		calls = nil
		r := Chain(keymap.ActionNext,
			record("a", NotHandled),
			record("b", HandledNoCmd),
			record("c", HandledNoCmd),
		)
		if !r.Handled {
			t.Error("expected handled")
		}
		if len(calls) != 2 {
			t.Errorf("calls = %v, want [a b]", calls)
		}
	})

	t.Run("none handle", func(t *testing.T) {
		calls = nil
		r := Chain(keymap.ActionNext, record("a", NotHandled))
		if r.Handled {
			t.Error("expected not handled")
		}
	})

	t.Run("empty action skips handlers", func(t *testing.T) {
		calls = nil
		r := Chain("", record("a", HandledNoCmd))
		if r.Handled || len(calls) != 0 {
			t.Errorf("Chain(\"\") = %+v after %v, want no calls", r, calls)
		}
	})
}

func TestOnly(t *testing.T) {
	h := Only(keymap.ActionExit, func() Result { return HandledNoCmd })

	if !h(keymap.ActionExit).Handled {
		t.Error("expected matching action to be handled")
	}
	if h(keymap.ActionNext).Handled {
		t.Error("expected other action to pass through")
	}
}
