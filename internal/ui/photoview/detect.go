package photoview

import (
	"os"
	"strings"
)

// Display modes accepted by Detect.
const (
	ModeAuto  = "auto"
	ModeKitty = "kitty"
	ModeSixel = "sixel"
	ModeNone  = "none"
)

// Detect returns the protocol for mode, probing the terminal in auto mode.
// It returns nil when images are disabled or unsupported.
func Detect(mode string) Protocol {
	switch mode {
	case ModeKitty:
		return NewKitty()
	case ModeSixel:
		return NewSixel()
	case ModeNone:
		return nil
	}

	if KittySupported() {
		return NewKitty()
	}
	if SixelSupported() {
		return NewSixel()
	}
	return nil
}

// KittySupported reports whether the terminal advertises the Kitty graphics
// protocol.
func KittySupported() bool {
	// Contour inherits the parent terminal's variables but has no Kitty support.
	if os.Getenv("CONTOUR_PROFILE") != "" {
		return false
	}
	term := os.Getenv("TERM")
	switch {
	case os.Getenv("KITTY_WINDOW_ID") != "",
		os.Getenv("TERM_PROGRAM") == "WezTerm",
		os.Getenv("GHOSTTY_RESOURCES_DIR") != "":
		return true
	}
	// KONSOLE_VERSION looks like 220401; support starts with 22.04.
	if v := os.Getenv("KONSOLE_VERSION"); len(v) >= 4 && v[:4] >= "2204" {
		return true
	}
	return strings.Contains(term, "kitty")
}

// SixelSupported reports whether the terminal is known to draw Sixel images.
func SixelSupported() bool {
	term := os.Getenv("TERM")
	switch os.Getenv("TERM_PROGRAM") {
	case "vscode", "mintty", "iTerm.app", "contour":
		return true
	}
	if term == "foot" || term == "foot-extra" || os.Getenv("CONTOUR_PROFILE") != "" {
		return true
	}
	return term == "xterm" || strings.HasPrefix(term, "xterm-")
}
