package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// fallbackGray stands in for theme colors that are not #rrggbb.
var fallbackGray = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Title renders text in bold, shading each grapheme from the theme's
// primary color to its secondary color.
func Title(text string) string {
	t := T()
	return applyGradient(text, lipgloss.NewStyle().Bold(true), t.Primary, t.Secondary)
}

// applyGradient renders every grapheme of text with base and a color
// stepped from from to to.
func applyGradient(text string, base lipgloss.Style, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	steps := blendColors(len(clusters), from, to)
	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(base.Foreground(steps[i]).Render(cluster))
	}
	return b.String()
}

// blendColors returns n colors from from to to, blended in HCL space.
// A single step uses from.
func blendColors(n int, from, to lipgloss.Color) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{from}
	}

	start, end := parseHex(from), parseHex(to)
	steps := make([]lipgloss.Color, n)
	for i := range n {
		steps[i] = lipgloss.Color(start.BlendHcl(end, float64(i)/float64(n-1)).Clamped().Hex())
	}
	return steps
}

func parseHex(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return fallbackGray
	}
	return col
}
