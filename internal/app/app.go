package app

import (
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/gesture/internal/errmsg"
	"github.com/llehouerou/gesture/internal/keymap"
	"github.com/llehouerou/gesture/internal/media"
	"github.com/llehouerou/gesture/internal/notify"
	"github.com/llehouerou/gesture/internal/slideshow"
	"github.com/llehouerou/gesture/internal/state"
	"github.com/llehouerou/gesture/internal/ui/photoview"
	"github.com/llehouerou/gesture/internal/ui/styles"
)

// Deps are the services the interface drives.
type Deps struct {
	Slideshow slideshow.Service
	Fetcher   ImageFetcher
	Renderer  *photoview.Renderer
	State     state.Interface
	Notifier  notify.Notifier
	Clipboard ClipboardWriter

	// Defaults come from the configuration; Overrides from the command line.
	Defaults  FormValues
	Overrides FormValues

	// AutoStart submits the form at startup.
	AutoStart bool
}

// Model is the root bubbletea model.
type Model struct {
	svc      slideshow.Service
	sub      *slideshow.Subscription
	fetcher  ImageFetcher
	renderer *photoview.Renderer
	stateMgr state.Interface
	notifier notify.Notifier
	copyLink ClipboardWriter
	keys     *keymap.Resolver

	form    searchForm
	spinner spinner.Model
	snap    slideshow.Snapshot

	// Photo on screen: wantURL is the current item's URL, image its
	// download once loaded.
	wantURL  string
	image    *media.Image
	imageErr string

	// Graphics commands prepended to the next frames.
	pendingGraphics string
	graphicsSeq     int

	errMsg   string
	notice   string
	flash    string
	flashSeq int
	showHelp bool

	autoStart bool
	width     int
	height    int
}

// New creates the root model. Saved preferences are loaded from d.State.
func New(d Deps) Model {
	if d.Notifier == nil {
		d.Notifier = notify.Disabled()
	}
	if d.Clipboard == nil {
		d.Clipboard = clipboard.WriteAll
	}
	if d.Renderer == nil {
		d.Renderer = photoview.New(nil)
	}

	m := Model{
		svc:       d.Slideshow,
		fetcher:   d.Fetcher,
		renderer:  d.Renderer,
		stateMgr:  d.State,
		notifier:  d.Notifier,
		copyLink:  d.Clipboard,
		keys:      keymap.NewResolver(keymap.Bindings),
		autoStart: d.AutoStart,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(styles.T().S().Countdown),
		),
	}
	if m.svc != nil {
		m.sub = m.svc.Subscribe()
		m.snap = m.svc.Snapshot()
	}

	var saved *state.Prefs
	if m.stateMgr != nil {
		prefs, err := m.stateMgr.GetPrefs()
		if err != nil {
			slog.Warn("load search preferences", "error", err)
			m.errMsg = errmsg.Format(errmsg.OpPrefsLoad, err)
		}
		saved = prefs
	}
	m.form = newSearchForm(ResolveFormValues(d.Defaults, saved, d.Overrides))
	m.loadRecent()
	return m
}

// Init starts watching the slideshow and, when requested, the first search.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.WatchSlideshowEvents(), textinput.Blink}
	if m.autoStart {
		cmds = append(cmds, func() tea.Msg { return StartSearchMsg{} })
	}
	return tea.Batch(cmds...)
}

// Snapshot returns the slideshow state the view was last drawn from.
func (m Model) Snapshot() slideshow.Snapshot {
	return m.snap
}

// PendingGraphics returns the graphics commands not yet sent.
func (m Model) PendingGraphics() string {
	return m.pendingGraphics
}

func (m *Model) loadRecent() {
	if m.stateMgr == nil {
		return
	}
	recent, err := m.stateMgr.RecentQueries(state.MaxRecentQueries)
	if err != nil {
		slog.Warn("load recent searches", "error", err)
		m.errMsg = errmsg.Format(errmsg.OpRecentLoad, err)
		return
	}
	m.form.SetRecent(recent)
}

// setFlash shows a short-lived message.
func (m *Model) setFlash(text string) tea.Cmd {
	m.flashSeq++
	m.flash = text
	return FlashExpiryCmd(m.flashSeq)
}

// queueGraphics schedules terminal graphics commands for the next frame.
func (m *Model) queueGraphics(seq string) tea.Cmd {
	if seq == "" {
		return nil
	}
	m.pendingGraphics += seq
	m.graphicsSeq++
	return GraphicsSentCmd(m.graphicsSeq)
}
