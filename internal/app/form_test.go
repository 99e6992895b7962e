package app

import (
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestWithChoice(t *testing.T) {
	tests := []struct {
		name    string
		value   int
		want    []int
		wantIdx int
	}{
		{"existing value", 25, []int{5, 10, 25, 50}, 2},
		{"custom value inserted in order", 20, []int{5, 10, 20, 25, 50}, 2},
		{"custom value past the end", 100, []int{5, 10, 25, 50, 100}, 4},
		{"zero selects first", 0, []int{5, 10, 25, 50}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, idx := withChoice(PageSizeChoices, tt.value)
			if !slices.Equal(got, tt.want) || idx != tt.wantIdx {
				t.Errorf("withChoice(%d) = %v, %d; want %v, %d", tt.value, got, idx, tt.want, tt.wantIdx)
			}
		})
	}

	if !slices.Equal(PageSizeChoices, []int{5, 10, 25, 50}) {
		t.Errorf("PageSizeChoices modified: %v", PageSizeChoices)
	}
}

func TestSearchForm_FieldCycle(t *testing.T) {
	f := newSearchForm(FormValues{PageSize: 10, DwellSeconds: 30})

	f.nextField()
	if f.focus != fieldPageSize || f.input.Focused() {
		t.Errorf("focus = %v, input focused = %v; want page size, blurred", f.focus, f.input.Focused())
	}
	f.nextField()
	f.nextField()
	if f.focus != fieldQuery || !f.input.Focused() {
		t.Errorf("focus = %v after a full cycle, want query", f.focus)
	}
	f.prevField()
	if f.focus != fieldDwell {
		t.Errorf("focus = %v after shift+tab, want dwell", f.focus)
	}
}

func TestSearchForm_ShiftChoice(t *testing.T) {
	f := newSearchForm(FormValues{PageSize: 10, DwellSeconds: 30})

	if f.shiftChoice(1) {
		t.Error("choices should not move while the query is focused")
	}

	f.focusField(fieldDwell)
	f.shiftChoice(-1)
	if got := f.Values().DwellSeconds; got != 30 {
		t.Errorf("DwellSeconds = %d, want clamped at 30", got)
	}
	for range 20 {
		f.shiftChoice(1)
	}
	if got := f.Values().DwellSeconds; got != 3600 {
		t.Errorf("DwellSeconds = %d, want clamped at 3600", got)
	}

	f.focusField(fieldPageSize)
	f.shiftChoice(1)
	if got := f.Values().PageSize; got != 25 {
		t.Errorf("PageSize = %d, want 25", got)
	}
}

func TestSearchForm_RecentQueries(t *testing.T) {
	f := newSearchForm(FormValues{Query: "draft", PageSize: 10, DwellSeconds: 30})
	f.SetRecent([]string{"newest", "older"})

	if !f.olderRecent() || f.input.Value() != "newest" {
		t.Fatalf("after up: %q, want newest", f.input.Value())
	}
	if !f.olderRecent() || f.input.Value() != "older" {
		t.Fatalf("after up twice: %q, want older", f.input.Value())
	}
	if f.olderRecent() {
		t.Error("up past the oldest query should not be handled")
	}
	if !f.newerRecent() || f.input.Value() != "newest" {
		t.Errorf("after down: %q, want newest", f.input.Value())
	}
	if !f.newerRecent() || f.input.Value() != "draft" {
		t.Errorf("after down twice: %q, want the draft back", f.input.Value())
	}
	if f.newerRecent() {
		t.Error("down on the draft should not be handled")
	}
}

func TestSearchForm_RecentNeedsQueryFocus(t *testing.T) {
	f := newSearchForm(FormValues{PageSize: 10, DwellSeconds: 30})
	f.SetRecent([]string{"cats"})
	f.focusField(fieldDwell)

	if f.olderRecent() {
		t.Error("recent queries only apply to the query field")
	}
}

func TestSearchForm_View(t *testing.T) {
	f := newSearchForm(FormValues{Query: "cats", PageSize: 25, DwellSeconds: 90})
	f.err = "Type something to search for"

	view := ansi.Strip(f.View())

	for _, want := range []string{"Search", "cats", "Photos per session", "‹ 25 ›", "Time per photo", "1m30s", "Type something"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
