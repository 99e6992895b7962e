package photoview

import (
	"image"
	"strings"
)

// Protocol abstracts the terminal graphics protocol (Kitty or Sixel).
type Protocol interface {
	// Name identifies the protocol in logs and the status line.
	Name() string

	// Prepare encodes img under id and returns any one-time terminal command.
	// Kitty transmits the image to terminal memory; Sixel only encodes it.
	Prepare(img image.Image, id uint32) (string, error)

	// Place returns the escape sequence that draws image id at (row, col),
	// 1-based, sized to width x height cells.
	Place(id uint32, row, col, width, height int) string

	// Delete returns the escape sequence that frees image id.
	Delete(id uint32) string

	// TargetPixelSize returns the pixel box an image drawn in the given
	// number of cells should be resized to.
	TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int)
}

// blank returns width x height spaces, used in the layout where the image
// is drawn so lipgloss never measures escape sequences.
func blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	line := strings.Repeat(" ", width)
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
