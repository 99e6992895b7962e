package keymap

// Contexts a binding applies to.
const (
	ContextGlobal   = "global"
	ContextForm     = "form"
	ContextLightbox = "lightbox"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"ctrl+c"}, "Quit", ContextGlobal},

	// Search form
	{ActionSubmit, []string{"enter"}, "Start slideshow", ContextForm},
	{ActionNextField, []string{"tab"}, "Next field", ContextForm},
	{ActionPrevField, []string{"shift+tab"}, "Previous field", ContextForm},
	{ActionChoicePrev, []string{"left"}, "Previous choice", ContextForm},
	{ActionChoiceNext, []string{"right"}, "Next choice", ContextForm},
	{ActionRecentPrev, []string{"up"}, "Older search", ContextForm},
	{ActionRecentNext, []string{"down"}, "Newer search", ContextForm},
	{ActionQuit, []string{"esc"}, "Quit", ContextForm},

	// Lightbox
	{ActionTogglePause, []string{" ", "space"}, "Pause/resume", ContextLightbox},
	{ActionNext, []string{"right", "l", "n"}, "Next photo", ContextLightbox},
	{ActionPrevious, []string{"left", "h", "p"}, "Previous photo", ContextLightbox},
	{ActionExit, []string{"esc", "x"}, "Back to search", ContextLightbox},
	{ActionCopyLink, []string{"c"}, "Copy photo page link", ContextLightbox},
	{ActionHelp, []string{"?"}, "Toggle help", ContextLightbox},
	{ActionQuit, []string{"q"}, "Quit", ContextLightbox},
}

// ByContext returns the bindings of one context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, b := range Bindings {
		if b.Context == context {
			result = append(result, b)
		}
	}
	return result
}
