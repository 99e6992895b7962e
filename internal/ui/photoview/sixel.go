package photoview

import (
	"bytes"
	"fmt"
	"image"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/mattn/go-sixel"
)

// placeCounter makes every Sixel placement unique so the bubbletea renderer
// never skips redrawing the image when only the countdown changed.
var placeCounter uint64

// Sixel implements Protocol with Sixel graphics. The encoded image is kept
// and emitted in full on every placement.
type Sixel struct {
	mu     sync.RWMutex
	images map[uint32]string
	cellW  int
	cellH  int
}

// NewSixel creates a Sixel protocol sized to the terminal's cell pixels.
func NewSixel() *Sixel {
	cellW, cellH := cellSize()
	return &Sixel{
		images: make(map[uint32]string),
		cellW:  cellW,
		cellH:  cellH,
	}
}

func (s *Sixel) Name() string { return "sixel" }

func (s *Sixel) Prepare(img image.Image, id uint32) (string, error) {
	var buf bytes.Buffer
	enc := sixel.NewEncoder(&buf)
	enc.Dither = true
	if err := enc.Encode(img); err != nil {
		return "", fmt.Errorf("encode sixel: %w", err)
	}

	s.mu.Lock()
	s.images[id] = buf.String()
	s.mu.Unlock()
	return "", nil
}

func (s *Sixel) Place(id uint32, row, col, _, _ int) string {
	s.mu.RLock()
	data, ok := s.images[id]
	s.mu.RUnlock()
	if !ok {
		return ""
	}

	seq := atomic.AddUint64(&placeCounter, 1)
	var sb strings.Builder
	fmt.Fprintf(&sb, "\x1b[s\x1b[%d;%dH", row, col)
	sb.WriteString(data)
	fmt.Fprintf(&sb, "\x1b[u\x1b[%dm\x1b[0m", seq%255+1)
	return sb.String()
}

func (s *Sixel) Delete(id uint32) string {
	s.mu.Lock()
	delete(s.images, id)
	s.mu.Unlock()
	return ""
}

// TargetPixelSize leaves one row free so a photo drawn near the bottom never
// scrolls the terminal.
func (s *Sixel) TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int) {
	return widthCells * s.cellW, max(heightCells-1, 1) * s.cellH
}
