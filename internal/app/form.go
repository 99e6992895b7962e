package app

import (
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/gesture/internal/state"
	"github.com/llehouerou/gesture/internal/ui/layout"
	"github.com/llehouerou/gesture/internal/ui/render"
	"github.com/llehouerou/gesture/internal/ui/styles"
)

// Choices offered by the search form.
var (
	PageSizeChoices = []int{5, 10, 25, 50}
	DwellChoices    = []int{30, 60, 120, 300, 600, 1200, 1800, 2400, 3600}
)

// FormValues are the search parameters entered in the form.
type FormValues struct {
	Query        string
	PageSize     int
	DwellSeconds int
}

// ResolveFormValues picks the initial form content: configured defaults,
// then saved preferences, then explicit overrides. Zero fields of saved and
// overrides are ignored.
func ResolveFormValues(defaults FormValues, saved *state.Prefs, overrides FormValues) FormValues {
	v := defaults
	if saved != nil {
		v = mergeValues(v, FormValues{
			Query:        saved.Query,
			PageSize:     saved.PageSize,
			DwellSeconds: saved.DwellSeconds,
		})
	}
	return mergeValues(v, overrides)
}

func mergeValues(base, over FormValues) FormValues {
	if strings.TrimSpace(over.Query) != "" {
		base.Query = over.Query
	}
	if over.PageSize > 0 {
		base.PageSize = over.PageSize
	}
	if over.DwellSeconds > 0 {
		base.DwellSeconds = over.DwellSeconds
	}
	return base
}

type formField int

const (
	fieldQuery formField = iota
	fieldPageSize
	fieldDwell
	fieldCount
)

// searchForm is the query input plus the two choice fields.
type searchForm struct {
	input textinput.Model
	focus formField

	pageSizes []int
	pageIdx   int
	dwells    []int
	dwellIdx  int

	recent    []string
	recentIdx int // -1 while editing the typed text
	draft     string

	err string
}

func newSearchForm(v FormValues) searchForm {
	ti := textinput.New()
	ti.Placeholder = "what to draw, e.g. figure pose"
	ti.Prompt = ""
	ti.CharLimit = 200
	ti.Width = 40
	ti.SetValue(v.Query)
	ti.CursorEnd()
	ti.Focus()

	f := searchForm{input: ti, recentIdx: -1}
	f.pageSizes, f.pageIdx = withChoice(PageSizeChoices, v.PageSize)
	f.dwells, f.dwellIdx = withChoice(DwellChoices, v.DwellSeconds)
	return f
}

// withChoice returns choices with v inserted in order when missing, and the
// index of v. A non-positive v selects the first choice.
func withChoice(choices []int, v int) ([]int, int) {
	out := slices.Clone(choices)
	if v <= 0 {
		return out, 0
	}
	i, found := slices.BinarySearch(out, v)
	if !found {
		out = slices.Insert(out, i, v)
	}
	return out, i
}

// Values returns the current form content.
func (f searchForm) Values() FormValues {
	return FormValues{
		Query:        f.input.Value(),
		PageSize:     f.pageSizes[f.pageIdx],
		DwellSeconds: f.dwells[f.dwellIdx],
	}
}

// SetRecent replaces the recent queries, newest first.
func (f *searchForm) SetRecent(queries []string) {
	f.recent = queries
	f.recentIdx = -1
}

// SetWidth sets the visible width of the query input.
func (f *searchForm) SetWidth(w int) {
	f.input.Width = max(w, layout.MinQueryWidth)
}

// Width returns the rendered width of a field row.
func (f searchForm) Width() int {
	return layout.FormLabelWidth + f.input.Width + 1
}

func (f *searchForm) focusField(n formField) tea.Cmd {
	f.focus = n
	if n == fieldQuery {
		return f.input.Focus()
	}
	f.input.Blur()
	return nil
}

func (f *searchForm) nextField() tea.Cmd {
	return f.focusField((f.focus + 1) % fieldCount)
}

func (f *searchForm) prevField() tea.Cmd {
	return f.focusField((f.focus + fieldCount - 1) % fieldCount)
}

// shiftChoice moves the focused choice field by delta. Reports false when
// a choice field is not focused.
func (f *searchForm) shiftChoice(delta int) bool {
	switch f.focus {
	case fieldPageSize:
		f.pageIdx = clamp(f.pageIdx+delta, 0, len(f.pageSizes)-1)
	case fieldDwell:
		f.dwellIdx = clamp(f.dwellIdx+delta, 0, len(f.dwells)-1)
	default:
		return false
	}
	return true
}

// olderRecent replaces the query with the next older recent query,
// keeping what was typed as a draft.
func (f *searchForm) olderRecent() bool {
	if f.focus != fieldQuery || f.recentIdx+1 >= len(f.recent) {
		return false
	}
	if f.recentIdx < 0 {
		f.draft = f.input.Value()
	}
	f.recentIdx++
	f.input.SetValue(f.recent[f.recentIdx])
	f.input.CursorEnd()
	return true
}

// newerRecent steps back toward the draft.
func (f *searchForm) newerRecent() bool {
	if f.focus != fieldQuery || f.recentIdx < 0 {
		return false
	}
	f.recentIdx--
	if f.recentIdx < 0 {
		f.input.SetValue(f.draft)
	} else {
		f.input.SetValue(f.recent[f.recentIdx])
	}
	f.input.CursorEnd()
	return true
}

// Update forwards msg to the query input when it is focused.
func (f searchForm) Update(msg tea.Msg) (searchForm, tea.Cmd) {
	if f.focus != fieldQuery {
		return f, nil
	}
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if f.input.Value() != before {
		f.recentIdx = -1
		f.err = ""
	}
	return f, cmd
}

// View renders the three fields and the inline validation error.
func (f searchForm) View() string {
	s := styles.T().S()

	rows := []string{
		f.row("Search", f.input.View(), fieldQuery),
		f.row("Photos per session", choiceView(strconv.Itoa(f.pageSizes[f.pageIdx]), f.pageIdx, len(f.pageSizes), f.focus == fieldPageSize), fieldPageSize),
		f.row("Time per photo", choiceView(render.Duration(f.dwells[f.dwellIdx]), f.dwellIdx, len(f.dwells), f.focus == fieldDwell), fieldDwell),
	}
	if f.recentIdx >= 0 {
		rows = append(rows, s.Subtle.Render(strings.Repeat(" ", lipgloss.Width(s.Label.Render("")))+
			"recent "+strconv.Itoa(f.recentIdx+1)+"/"+strconv.Itoa(len(f.recent))))
	}
	if f.err != "" {
		rows = append(rows, "", s.Error.Render(f.err))
	}
	return strings.Join(rows, "\n")
}

func (f searchForm) row(label, value string, field formField) string {
	s := styles.T().S()
	labelStyle := s.Label
	if f.focus == field {
		labelStyle = s.Focused
	}
	return labelStyle.Render(label) + value
}

// choiceView renders "‹ value ›", dimming an arrow at either end.
func choiceView(value string, idx, n int, focused bool) string {
	s := styles.T().S()
	arrow := func(text string, enabled bool) string {
		if focused && enabled {
			return s.Key.Render(text)
		}
		return s.Subtle.Render(text)
	}
	return arrow("‹ ", idx > 0) + s.Choice.Render(value) + arrow(" ›", idx < n-1)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
