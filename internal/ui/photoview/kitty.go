package photoview

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
)

const (
	escStart = "\x1b_G"
	escEnd   = "\x1b\\"

	chunkSize = 4096
)

// Kitty implements Protocol with the Kitty graphics protocol. Images are
// transmitted once and then placed by ID.
type Kitty struct {
	cellW int
	cellH int
}

// NewKitty creates a Kitty protocol sized to the terminal's cell pixels.
func NewKitty() Kitty {
	cellW, cellH := cellSize()
	return Kitty{cellW: cellW, cellH: cellH}
}

func (Kitty) Name() string { return "kitty" }

func (Kitty) Prepare(img image.Image, id uint32) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return transmitPNG(buf.Bytes(), id), nil
}

// Place uses a fixed placement ID so a new placement replaces the old one.
func (Kitty) Place(id uint32, row, col, width, height int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\x1b[s\x1b[%d;%dH", row, col)
	fmt.Fprintf(&sb, "%sa=p,i=%d,p=1,c=%d,r=%d,C=1,q=2;%s", escStart, id, width, height, escEnd)
	sb.WriteString("\x1b[u")
	return sb.String()
}

// Delete removes the placements of the image and frees its data.
func (Kitty) Delete(id uint32) string {
	return fmt.Sprintf("%sa=d,d=I,i=%d,q=2;%s", escStart, id, escEnd)
}

// TargetPixelSize matches the image to the placement's cells so kitty
// never scales it up.
func (k Kitty) TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int) {
	return widthCells * k.cellW, heightCells * k.cellH
}

// transmitPNG builds the chunked a=t (transmit only) command for pngData.
func transmitPNG(pngData []byte, id uint32) string {
	encoded := base64.StdEncoding.EncodeToString(pngData)

	var sb strings.Builder
	for i := 0; i < len(encoded); i += chunkSize {
		end := min(i+chunkSize, len(encoded))
		more := 0
		if end < len(encoded) {
			more = 1
		}

		sb.WriteString(escStart)
		if i == 0 {
			fmt.Fprintf(&sb, "a=t,f=100,i=%d,q=2,m=%d;", id, more)
		} else {
			fmt.Fprintf(&sb, "m=%d;", more)
		}
		sb.WriteString(encoded[i:end])
		sb.WriteString(escEnd)
	}
	return sb.String()
}
