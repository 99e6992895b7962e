// Package layout provides pure functions for UI dimension calculations.
package layout

// Lightbox rows around the photo.
const (
	FrameBorder = 2 // top and bottom border of the photo frame
	InfoLines   = 3 // title, attribution, status
)

// Form sizing.
const (
	FormLabelWidth = 20
	FormChrome     = 8 // border and horizontal padding of the form box
	MaxQueryWidth  = 60
	MinQueryWidth  = 10
)

// Rect is a screen area in terminal cells. Row and Col are 1-based.
type Rect struct {
	Row, Col      int
	Width, Height int
}

// Empty reports whether the area has no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// PhotoArea returns the area inside the lightbox frame. The frame takes the
// full window width; below it come the info lines and helpLines of key help.
func PhotoArea(windowWidth, windowHeight, helpLines int) Rect {
	return Rect{
		Row:    2,
		Col:    2,
		Width:  max(windowWidth-FrameBorder, 0),
		Height: max(windowHeight-FrameBorder-InfoLines-helpLines, 0),
	}
}

// QueryWidth returns the width of the search input for a window width.
// The input draws its cursor one cell past that width.
func QueryWidth(windowWidth int) int {
	return max(MinQueryWidth, min(MaxQueryWidth, windowWidth-FormLabelWidth-FormChrome-1))
}
