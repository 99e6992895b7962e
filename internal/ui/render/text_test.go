package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Hands study", "Hands study"},
		{"newlines become spaces", "line one\nline two", "line one line two"},
		{"escape stripped", "bad\x1b[31mred", "bad[31mred"},
		{"nbsp", "a\u00a0b", "a b"},
		{"invalid utf8", "ok\xffok", "okok"},
		{"tab kept", "a\tb", "a\tb"},
		{"unicode kept", "Café 東京", "Café 東京"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"truncated", "hello world", 8, "hello w…"},
		{"wide characters", "東京タワー", 5, "東京…"},
		{"zero width", "hello", 0, ""},
		{"sanitized first", "a\nb", 5, "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	if got := Pad("ab", 5); got != "ab   " {
		t.Errorf("Pad() = %q", got)
	}
	if got := Pad("東", 4); got != "東  " {
		t.Errorf("Pad() wide = %q", got)
	}
	if got := Pad("abcdef", 3); got != "abcdef" {
		t.Errorf("Pad() should not truncate, got %q", got)
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"ab", 6, "  ab  "},
		{"ab", 5, " ab  "},
		{"abcdef", 4, "abcdef"},
	}
	for _, tt := range tests {
		if got := Center(tt.input, tt.width); got != tt.want {
			t.Errorf("Center(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}

	styled := lipgloss.NewStyle().Bold(true).Render("ab")
	if w := lipgloss.Width(Center(styled, 10)); w != 10 {
		t.Errorf("Center() of styled text width = %d, want 10", w)
	}
}

func TestRow(t *testing.T) {
	if got := Row("left", "right", 12); got != "left   right" {
		t.Errorf("Row() = %q", got)
	}
	if got := Row("left", "right", 5); got != "left right" {
		t.Errorf("Row() overflow = %q, want one space gap", got)
	}
}

func TestCountdown(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{-3, "00:00"},
		{9, "00:09"},
		{90, "01:30"},
		{600, "10:00"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
	}
	for _, tt := range tests {
		if got := Countdown(tt.seconds); got != tt.want {
			t.Errorf("Countdown(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{30, "30s"},
		{60, "1m"},
		{90, "1m30s"},
		{3600, "60m"},
	}
	for _, tt := range tests {
		if got := Duration(tt.seconds); got != tt.want {
			t.Errorf("Duration(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
