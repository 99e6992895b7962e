package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"slices"
	"sync"
	"testing"
	"testing/synctest"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/gesture/internal/media"
	"github.com/llehouerou/gesture/internal/notify"
	"github.com/llehouerou/gesture/internal/photo"
	"github.com/llehouerou/gesture/internal/provider"
	"github.com/llehouerou/gesture/internal/slideshow"
	"github.com/llehouerou/gesture/internal/state"
	"github.com/llehouerou/gesture/internal/ui/photoview"
)

// fakeFetcher serves images from memory.
type fakeFetcher struct {
	mu         sync.Mutex
	data       map[string][]byte
	err        error
	gets       []string
	prefetched []string
	retained   []string
}

func (f *fakeFetcher) Get(_ context.Context, url string) (*media.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets = append(f.gets, url)
	if f.err != nil {
		return nil, f.err
	}
	return &media.Image{URL: url, ContentType: "image/png", Data: f.data[url]}, nil
}

func (f *fakeFetcher) Prefetch(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prefetched = append(f.prefetched, url)
}

func (f *fakeFetcher) Retain(keep ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.retained = slices.Clone(keep)
}

// fakeProtocol records graphics commands as readable markers.
type fakeProtocol struct{}

func (fakeProtocol) Name() string { return "fake" }

func (fakeProtocol) Prepare(_ image.Image, id uint32) (string, error) {
	return fmt.Sprintf("<tx %d>", id), nil
}

func (fakeProtocol) Place(id uint32, row, col, _, _ int) string {
	return fmt.Sprintf("<place %d %d,%d>", id, row, col)
}

func (fakeProtocol) Delete(id uint32) string {
	return fmt.Sprintf("<del %d>", id)
}

func (fakeProtocol) TargetPixelSize(w, h int) (int, int) {
	return w * 8, h * 16
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for x := range 64 {
		for y := range 48 {
			img.Set(x, y, color.RGBA{R: uint8(x * 4), G: uint8(y * 5), B: 128, A: 255}) //nolint:gosec // small test values
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func testItems(idList ...string) []photo.Item {
	items := make([]photo.Item, len(idList))
	for i, id := range idList {
		items[i] = photo.Item{
			ID:    id,
			Title: "photo " + id,
			Variants: []photo.Variant{
				{Bucket: photo.BucketSquare, Width: 75, Height: 75, URL: "https://img.test/" + id + "_sq.jpg"},
				{Bucket: photo.BucketLarge, Width: 1024, Height: 768, URL: "https://img.test/" + id + "_b.jpg"},
			},
			AttributionLabel: "owner " + id,
			AttributionURL:   "https://flickr.com/photos/o/" + id,
		}
	}
	return items
}

func largeURL(id string) string {
	return "https://img.test/" + id + "_b.jpg"
}

type testEnv struct {
	provider  *provider.Mock
	ctrl      *slideshow.Controller
	fetcher   *fakeFetcher
	state     *state.Mock
	notifier  *notify.Recorder
	clipboard []string
}

// newTestModel creates a model on a real controller with scripted results.
// Must run inside a synctest bubble.
func newTestModel(t *testing.T, proto photoview.Protocol) (Model, *testEnv) {
	t.Helper()
	env := &testEnv{
		provider: provider.NewMock(),
		fetcher:  &fakeFetcher{data: make(map[string][]byte)},
		state:    state.NewMock(),
		notifier: &notify.Recorder{},
	}
	env.ctrl = slideshow.New(env.provider)
	t.Cleanup(func() { _ = env.ctrl.Close() })

	m := New(Deps{
		Slideshow: env.ctrl,
		Fetcher:   env.fetcher,
		Renderer:  photoview.New(proto),
		State:     env.state,
		Notifier:  env.notifier,
		Clipboard: func(text string) error {
			env.clipboard = append(env.clipboard, text)
			return nil
		},
		Defaults: FormValues{PageSize: 10, DwellSeconds: 30},
	})
	// Events are delivered by hand.
	m.sub = nil
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})
	return m, env
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	for _, r := range text {
		m, _ = update(t, m, keyMsg(string(r)))
	}
	return m
}

// startSlideshow types query, submits and waits for the results.
func startSlideshow(t *testing.T, m Model, env *testEnv, query string, ids ...string) (Model, tea.Cmd) {
	t.Helper()
	env.provider.Respond(query, provider.Response{Items: testItems(ids...)})
	m = typeText(t, m, query)
	m, _ = update(t, m, keyMsg("enter"))
	synctest.Wait()
	return update(t, m, SlideshowChangedMsg{})
}

// runCmd executes cmd and every command of a batch, returning the messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNew_UsesSavedPrefs(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		env := state.NewMock()
		env.SetPrefs(&state.Prefs{Query: "hands", PageSize: 25, DwellSeconds: 120})
		_ = env.RecordQuery("feet")
		ctrl := slideshow.New(provider.NewMock())
		defer ctrl.Close()

		m := New(Deps{
			Slideshow: ctrl,
			State:     env,
			Defaults:  FormValues{PageSize: 10, DwellSeconds: 30},
			Overrides: FormValues{DwellSeconds: 60},
		})

		got := m.form.Values()
		want := FormValues{Query: "hands", PageSize: 25, DwellSeconds: 60}
		if got != want {
			t.Errorf("form values = %+v, want %+v", got, want)
		}
		if !slices.Equal(m.form.recent, []string{"feet"}) {
			t.Errorf("recent = %v, want [feet]", m.form.recent)
		}
	})
}

func TestNew_PrefsLoadError(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		env := state.NewMock()
		env.SetLoadError(errors.New("disk on fire"))
		ctrl := slideshow.New(provider.NewMock())
		defer ctrl.Close()

		m := New(Deps{Slideshow: ctrl, State: env, Defaults: FormValues{PageSize: 10, DwellSeconds: 30}})

		if m.errMsg == "" {
			t.Error("expected an error message for unreadable preferences")
		}
		if got := m.form.Values().PageSize; got != 10 {
			t.Errorf("PageSize = %d, want configured default 10", got)
		}
	})
}

func TestResolveFormValues(t *testing.T) {
	defaults := FormValues{PageSize: 10, DwellSeconds: 30}
	tests := []struct {
		name      string
		saved     *state.Prefs
		overrides FormValues
		want      FormValues
	}{
		{"defaults only", nil, FormValues{}, defaults},
		{"saved wins over defaults", &state.Prefs{Query: "cats", PageSize: 5, DwellSeconds: 60}, FormValues{}, FormValues{Query: "cats", PageSize: 5, DwellSeconds: 60}},
		{"zero saved fields ignored", &state.Prefs{Query: "cats"}, FormValues{}, FormValues{Query: "cats", PageSize: 10, DwellSeconds: 30}},
		{"overrides win", &state.Prefs{Query: "cats", PageSize: 5}, FormValues{Query: "dogs", DwellSeconds: 600}, FormValues{Query: "dogs", PageSize: 5, DwellSeconds: 600}},
		{"blank override query ignored", &state.Prefs{Query: "cats"}, FormValues{Query: "  "}, FormValues{Query: "cats", PageSize: 10, DwellSeconds: 30}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveFormValues(defaults, tt.saved, tt.overrides); got != tt.want {
				t.Errorf("ResolveFormValues() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInit_AutoStart(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		p := provider.NewMock()
		p.Respond("trees", provider.Response{Items: testItems("a")})
		ctrl := slideshow.New(p)
		defer ctrl.Close()

		m := New(Deps{
			Slideshow: ctrl,
			Defaults:  FormValues{PageSize: 10, DwellSeconds: 30},
			Overrides: FormValues{Query: "trees"},
			AutoStart: true,
		})
		m, _ = update(t, m, StartSearchMsg{})
		synctest.Wait()

		if got := ctrl.Mode(); got != slideshow.ModePlaying {
			t.Errorf("Mode() = %v, want Playing", got)
		}
		if calls := p.Calls(); len(calls) != 1 || calls[0].PageSize != 10 {
			t.Errorf("provider calls = %+v, want one call with page size 10", calls)
		}
	})
}
