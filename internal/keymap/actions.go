// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Search form actions
	ActionSubmit     Action = "submit"      // enter - start the slideshow
	ActionNextField  Action = "next_field"  // tab
	ActionPrevField  Action = "prev_field"  // shift+tab
	ActionChoicePrev Action = "choice_prev" // left on a choice field
	ActionChoiceNext Action = "choice_next" // right on a choice field
	ActionRecentPrev Action = "recent_prev" // up - older recent query
	ActionRecentNext Action = "recent_next" // down - newer recent query

	// Lightbox actions
	ActionTogglePause Action = "toggle_pause"
	ActionNext        Action = "next"
	ActionPrevious    Action = "previous"
	ActionExit        Action = "exit" // back to the search form
	ActionCopyLink    Action = "copy_link"
)
