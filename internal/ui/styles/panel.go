package styles

import "github.com/charmbracelet/lipgloss"

// FormStyle frames the search form.
func FormStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(T().BorderFocus).
		Padding(1, 3)
}

// FrameStyle frames the photo in the lightbox. The border turns to the
// warning color while the slideshow is paused.
func FrameStyle(paused bool) lipgloss.Style {
	c := T().Border
	if paused {
		c = T().Warning
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(c)
}
