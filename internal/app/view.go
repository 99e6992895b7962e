package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/gesture/internal/keymap"
	"github.com/llehouerou/gesture/internal/slideshow"
	"github.com/llehouerou/gesture/internal/ui/layout"
	"github.com/llehouerou/gesture/internal/ui/render"
	"github.com/llehouerou/gesture/internal/ui/styles"
)

// View renders the current screen.
func (m Model) View() string {
	var view string
	switch m.snap.Mode {
	case slideshow.ModeIdle:
		view = m.viewForm()
	case slideshow.ModeLoading:
		view = m.viewLoading()
	default:
		view = m.viewLightbox()
	}
	return m.pendingGraphics + view
}

func (m Model) photoArea() layout.Rect {
	return layout.PhotoArea(m.width, m.height, m.helpHeight())
}

func (m Model) helpHeight() int {
	if m.showHelp {
		return len(keymap.ByContext(keymap.ContextLightbox))
	}
	return 1
}

func (m Model) place(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewForm() string {
	s := styles.T().S()

	parts := []string{
		styles.Title("gesture"),
		s.Muted.Render("timed photo references from Flickr"),
		"",
		m.form.View(),
	}
	wrap := lipgloss.NewStyle().Width(m.form.Width())
	if status := m.statusMessage(); status != "" {
		parts = append(parts, "", wrap.Render(status))
	}
	parts = append(parts, "", wrap.Render(m.shortHelp(keymap.ContextForm,
		keymap.ActionSubmit, keymap.ActionNextField, keymap.ActionChoicePrev,
		keymap.ActionChoiceNext, keymap.ActionRecentPrev, keymap.ActionQuit)))

	return m.place(styles.FormStyle().Render(strings.Join(parts, "\n")))
}

// statusMessage returns the flash, error or notice line, in that priority.
func (m Model) statusMessage() string {
	s := styles.T().S()
	switch {
	case m.flash != "":
		return s.Success.Render(m.flash)
	case m.errMsg != "":
		return s.Error.Render(m.errMsg)
	case m.notice != "":
		return s.Warning.Render(m.notice)
	}
	return ""
}

func (m Model) viewLoading() string {
	s := styles.T().S()
	query := render.Truncate(m.snap.Query, max(m.width-20, 10))
	lines := []string{
		m.spinner.View() + " " + s.Base.Render(fmt.Sprintf("Searching for “%s”…", query)),
		"",
		m.shortHelp(keymap.ContextLightbox, keymap.ActionExit, keymap.ActionQuit),
	}
	return m.place(strings.Join(lines, "\n"))
}

func (m Model) viewLightbox() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	s := styles.T().S()
	snap := m.snap
	area := m.photoArea()
	inner := area.Width

	photo := m.renderer.Placeholder(m.photoLabel())
	framed := styles.FrameStyle(snap.Mode == slideshow.ModePaused).
		Width(area.Width).Height(area.Height).
		Render(photo)

	title := "Untitled"
	attribution := ""
	if snap.Current != nil {
		if t := render.Sanitize(snap.Current.Title); strings.TrimSpace(t) != "" {
			title = t
		}
		attribution = render.Sanitize(snap.Current.AttributionLabel)
	}

	position := s.Muted.Render(fmt.Sprintf("%d/%d", snap.Position, snap.Total))
	titleLine := render.Row(
		s.Base.Bold(true).Render(render.Truncate(title, inner-lipgloss.Width(position)-2)),
		position, inner)

	var linkLine string
	if attribution != "" {
		linkLine = s.Muted.Render("by " + attribution)
	}
	if snap.Current != nil && snap.Current.AttributionURL != "" {
		if linkLine != "" {
			linkLine += "  "
		}
		linkLine += s.Link.Render(snap.Current.AttributionURL)
	}

	lines := []string{
		framed,
		" " + titleLine,
		" " + ansi.Truncate(linkLine, inner, "…"),
		" " + ansi.Truncate(m.statusLine(inner), inner, "…"),
	}
	if m.showHelp {
		lines = append(lines, m.fullHelp())
	} else {
		lines = append(lines, " "+ansi.Truncate(m.shortHelp(keymap.ContextLightbox,
			keymap.ActionTogglePause, keymap.ActionPrevious, keymap.ActionNext,
			keymap.ActionExit, keymap.ActionHelp), inner, "…"))
	}

	view := strings.Join(lines, "\n")
	if placement := m.renderer.Placement(area.Row, area.Col); placement != "" {
		view = placement + view
	}
	return view
}

// photoLabel is shown in the photo area while no image is on screen.
func (m Model) photoLabel() string {
	switch {
	case m.imageErr != "":
		return "photo unavailable"
	case m.renderer.Protocol() == nil:
		return "no image support: press c to copy the link"
	case m.image == nil:
		return "loading photo…"
	}
	return ""
}

// statusLine shows play state, countdown, navigation hints and the flash
// or image error.
func (m Model) statusLine(width int) string {
	s := styles.T().S()
	snap := m.snap

	var state string
	if snap.Mode == slideshow.ModePaused {
		state = s.Paused.Render("⏸ PAUSED " + render.Countdown(snap.RemainingSeconds))
	} else {
		state = s.Countdown.Render("▶ " + render.Countdown(snap.RemainingSeconds))
	}
	state += s.Subtle.Render(" / " + render.Countdown(snap.DwellSeconds))

	nav := func(text string, enabled bool) string {
		if enabled {
			return s.Muted.Render(text)
		}
		return s.Subtle.Render(text)
	}
	left := state + "   " + nav("‹ prev", snap.HasPrevious) + "  " + nav("next ›", snap.HasNext)

	var right string
	switch {
	case m.flash != "":
		right = s.Success.Render(m.flash)
	case m.imageErr != "":
		right = s.Error.Render(m.imageErr)
	case m.image != nil:
		right = s.Subtle.Render(humanize.IBytes(uint64(m.image.Size()))) //nolint:gosec // sizes are non-negative
	}
	return render.Row(left, right, width)
}

// shortHelp renders "key action" pairs for the given actions, or for all
// bindings of the context when none are given.
func (m Model) shortHelp(context string, actions ...keymap.Action) string {
	s := styles.T().S()
	bindings := keymap.ByContext(context)
	var parts []string
	for _, b := range bindings {
		if len(actions) > 0 && !slices.Contains(actions, b.Action) {
			continue
		}
		parts = append(parts, s.Key.Render(keyLabel(b.Keys[0]))+" "+s.Muted.Render(strings.ToLower(b.Description)))
	}
	return strings.Join(parts, s.Subtle.Render(" · "))
}

func (m Model) fullHelp() string {
	s := styles.T().S()
	bindings := keymap.ByContext(keymap.ContextLightbox)
	lines := make([]string, 0, len(bindings))
	for _, b := range bindings {
		keys := make([]string, 0, len(b.Keys))
		for _, k := range b.Keys {
			if label := keyLabel(k); !slices.Contains(keys, label) {
				keys = append(keys, label)
			}
		}
		lines = append(lines, " "+s.Key.Render(render.Pad(strings.Join(keys, "/"), 16))+s.Muted.Render(b.Description))
	}
	return strings.Join(lines, "\n")
}

func keyLabel(key string) string {
	switch key {
	case " ":
		return "space"
	case "left":
		return "←"
	case "right":
		return "→"
	case "up":
		return "↑"
	case "down":
		return "↓"
	}
	return key
}
