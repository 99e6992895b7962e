// Package styles holds the color palette and lipgloss styles of the views.
package styles

import "github.com/charmbracelet/lipgloss"

// Theme is the color palette plus the styles built from it.
type Theme struct {
	Primary   lipgloss.Color // focused field, countdown
	Secondary lipgloss.Color // gradient end, highlights

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles are the pre-built styles used across the views.
type Styles struct {
	Base      lipgloss.Style
	Muted     lipgloss.Style
	Subtle    lipgloss.Style
	Label     lipgloss.Style // form field labels
	Focused   lipgloss.Style // focused form field label
	Choice    lipgloss.Style // selected choice value
	Countdown lipgloss.Style
	Paused    lipgloss.Style
	Link      lipgloss.Style // attribution URL
	Key       lipgloss.Style // key names in the help line
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Success   lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#a78bfa"),
	Secondary: lipgloss.Color("#f1a208"),

	FgBase:   lipgloss.Color("#c0c0c0"),
	FgMuted:  lipgloss.Color("#808080"),
	FgSubtle: lipgloss.Color("#585858"),

	Border:      lipgloss.Color("#585858"),
	BorderFocus: lipgloss.Color("#a78bfa"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)
	return &Styles{
		Base:      base,
		Muted:     lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:    lipgloss.NewStyle().Foreground(t.FgSubtle),
		Label:     lipgloss.NewStyle().Foreground(t.FgMuted).Width(labelWidth),
		Focused:   lipgloss.NewStyle().Foreground(t.Primary).Bold(true).Width(labelWidth),
		Choice:    base.Bold(true),
		Countdown: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Paused:    lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		Link:      lipgloss.NewStyle().Foreground(t.FgMuted).Underline(true),
		Key:       lipgloss.NewStyle().Foreground(t.Secondary),
		Error:     lipgloss.NewStyle().Foreground(t.Error),
		Warning:   lipgloss.NewStyle().Foreground(t.Warning),
		Success:   lipgloss.NewStyle().Foreground(t.Success),
	}
}

const labelWidth = 20
