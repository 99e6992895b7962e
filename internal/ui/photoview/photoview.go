// Package photoview draws photos in the terminal with the Kitty or Sixel
// graphics protocol, falling back to a framed text placeholder.
package photoview

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"strings"
	"sync"
	"sync/atomic"

	"github.com/nfnt/resize"

	"github.com/llehouerou/gesture/internal/ui/render"
)

var nextImageID uint32

func newImageID() uint32 {
	return atomic.AddUint32(&nextImageID, 1)
}

// Renderer keeps the one photo currently on screen.
type Renderer struct {
	mu sync.RWMutex

	proto Protocol

	width  int
	height int

	url      string
	imageID  uint32
	prepared bool
}

// New creates a renderer. A nil protocol renders text placeholders only.
func New(p Protocol) *Renderer {
	return &Renderer{proto: p}
}

// Protocol returns the graphics protocol, or nil.
func (r *Renderer) Protocol() Protocol {
	return r.proto
}

// SetSize sets the photo area in terminal cells.
func (r *Renderer) SetSize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.width != width || r.height != height {
		r.width = width
		r.height = height
		r.prepared = false
	}
}

// Size returns the photo area in terminal cells.
func (r *Renderer) Size() (width, height int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.width, r.height
}

// NeedsPrepare reports whether Show must be called for url.
func (r *Renderer) NeedsPrepare(url string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.proto != nil && (url != r.url || !r.prepared)
}

// Show decodes data, resizes it to the photo area and prepares it for
// placement. It returns the terminal commands to write once: the deletion
// of the previous image followed by any transmission.
func (r *Renderer) Show(url string, data []byte) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.proto == nil || (url == r.url && r.prepared) {
		return "", nil
	}

	var cmd string
	if r.imageID > 0 {
		cmd = r.proto.Delete(r.imageID)
	}
	r.url = url
	r.imageID = 0
	r.prepared = true

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return cmd, fmt.Errorf("decode image: %w", err)
	}

	pw, ph := r.proto.TargetPixelSize(r.width, r.height)
	//nolint:gosec // cell areas are small, no overflow risk
	resized := resize.Thumbnail(uint(max(pw, 16)), uint(max(ph, 16)), img, resize.Lanczos3)

	id := newImageID()
	transmit, err := r.proto.Prepare(resized, id)
	if err != nil {
		return cmd, err
	}
	r.imageID = id
	return cmd + transmit, nil
}

// HasImage reports whether a photo is ready to be placed.
func (r *Renderer) HasImage() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.imageID > 0
}

// Placement returns the escape sequence drawing the photo at (row, col),
// 1-based, or "" if no photo is prepared.
func (r *Renderer) Placement(row, col int) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.proto == nil || r.imageID == 0 {
		return ""
	}
	return r.proto.Place(r.imageID, row, col, r.width, r.height)
}

// Placeholder returns the text occupying the photo area in the layout:
// blank space under an image, or a framed label otherwise.
func (r *Renderer) Placeholder(label string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.imageID > 0 {
		return blank(r.width, r.height)
	}
	return frame(r.width, r.height, label)
}

// Clear forgets the current photo and returns the command freeing it.
func (r *Renderer) Clear() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var cmd string
	if r.proto != nil && r.imageID > 0 {
		cmd = r.proto.Delete(r.imageID)
	}
	r.url = ""
	r.imageID = 0
	r.prepared = false
	return cmd
}

// frame draws a box with label centered, truncated to fit.
func frame(width, height int, label string) string {
	if width < 4 || height < 2 {
		return blank(width, height)
	}
	inner := width - 2
	label = render.Truncate(label, inner)

	lines := make([]string, 0, height)
	lines = append(lines, "┌"+strings.Repeat("─", inner)+"┐")
	for i := 1; i < height-1; i++ {
		if i == (height-1)/2 && label != "" {
			lines = append(lines, "│"+render.Center(label, inner)+"│")
			continue
		}
		lines = append(lines, "│"+strings.Repeat(" ", inner)+"│")
	}
	lines = append(lines, "└"+strings.Repeat("─", inner)+"┘")
	return strings.Join(lines, "\n")
}
