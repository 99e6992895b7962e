// Package testutil provides common testing utilities for rendered views.
package testutil

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences from a string, including terminal
// graphics commands, so rendered output can be compared as plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	return FindLine(output, substr) != ""
}

// FindLine returns the first line containing the given substring, or empty string.
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// SplitLines splits output into plain lines, removing trailing empty lines.
func SplitLines(output string) []string {
	lines := strings.Split(StripANSI(output), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// MaxLineWidth returns the widest line of the output in terminal cells.
func MaxLineWidth(output string) int {
	widest := 0
	for _, line := range SplitLines(output) {
		widest = max(widest, lipgloss.Width(line))
	}
	return widest
}

// AssertFits fails the test when the output is wider or taller than the
// given terminal size.
func AssertFits(t testing.TB, output string, width, height int) {
	t.Helper()
	if w := MaxLineWidth(output); w > width {
		t.Errorf("output is %d cells wide, terminal has %d:\n%s", w, width, StripANSI(output))
	}
	if h := len(SplitLines(output)); h > height {
		t.Errorf("output is %d lines tall, terminal has %d:\n%s", h, height, StripANSI(output))
	}
}
