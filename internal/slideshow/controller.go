package slideshow

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/llehouerou/gesture/internal/photo"
	"github.com/llehouerou/gesture/internal/provider"
)

// Verify Controller implements Service at compile time.
var _ Service = (*Controller)(nil)

// Controller runs the slideshow state machine. Commands, ticks and search
// completions are serialized by mu.
type Controller struct {
	mu sync.Mutex

	provider provider.Provider
	ctx      context.Context
	cancel   context.CancelFunc

	mode      Mode
	deck      deck
	timer     *timer
	dwell     int
	remaining int
	query     string
	lastErr   error
	searchGen uint64

	subs       []*Subscription
	subsClosed bool
	subsMu     sync.RWMutex

	closed bool
}

// New creates a controller fetching results from p.
func New(p provider.Provider) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		provider: p,
		ctx:      ctx,
		cancel:   cancel,
	}
	c.timer = newTimer(time.Second, c.onTimerTick)
	return c
}

// Search starts a new session. The query is trimmed; an empty query, a
// non-positive page size or dwell time is rejected without any transition.
// A search issued while another is in flight supersedes it.
func (c *Controller) Search(query string, pageSize, dwellSeconds int) error {
	query = strings.TrimSpace(query)
	switch {
	case query == "":
		return ErrEmptyQuery
	case pageSize <= 0:
		return ErrInvalidPageSize
	case dwellSeconds <= 0:
		return ErrInvalidDwell
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}

	c.timer.halt()
	c.deck.clear()
	c.searchGen++
	gen := c.searchGen
	c.query = query
	c.dwell = dwellSeconds
	c.remaining = dwellSeconds
	c.lastErr = nil
	c.mode = ModeLoading

	slog.Info("search started", "query", query, "page_size", pageSize, "dwell", dwellSeconds)
	go c.runSearch(gen, query, pageSize, dwellSeconds)

	c.emitLocked()
	return nil
}

func (c *Controller) runSearch(gen uint64, query string, pageSize, dwell int) {
	items, err := c.provider.Fetch(c.ctx, query, pageSize)
	c.finishSearch(gen, query, dwell, items, err)
}

func (c *Controller) finishSearch(gen uint64, query string, dwell int, items []photo.Item, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || gen != c.searchGen || c.mode != ModeLoading {
		slog.Debug("discarding stale search result", "query", query)
		return
	}

	if err == nil && len(items) == 0 {
		err = provider.Empty(query)
	}
	if err != nil {
		slog.Warn("search failed", "query", query, "error", err)
		c.deck.clear()
		c.mode = ModeIdle
		c.lastErr = err
		c.broadcastError(ErrorEvent{Operation: "search", Query: query, Err: err})
		c.emitLocked()
		return
	}

	c.deck.reset(items)
	c.dwell = dwell
	c.remaining = dwell
	c.mode = ModePlaying
	c.timer.start()

	slog.Info("slideshow started", "query", query, "items", len(items))
	c.emitLocked()
}

// onTimerTick is called from the timer goroutine.
func (c *Controller) onTimerTick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.timer.current(gen) {
		return
	}
	c.tickLocked()
}

// Tick counts down one second while playing and advances at zero.
func (c *Controller) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tickLocked()
}

func (c *Controller) tickLocked() {
	if c.mode != ModePlaying {
		return
	}
	c.remaining--
	if c.remaining <= 0 {
		c.nextLocked()
		return
	}
	c.emitLocked()
}

// Next moves the current item to the history. Running out of items ends
// the session.
func (c *Controller) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nextLocked()
}

func (c *Controller) nextLocked() {
	if !c.mode.IsDisplaying() || !c.deck.advance() {
		return
	}
	c.remaining = c.dwell

	if c.deck.queueLen() == 0 {
		c.timer.halt()
		c.mode = ModeIdle
		slog.Info("slideshow finished", "query", c.query, "shown", c.deck.historyLen())
		c.broadcastFinished(FinishedEvent{Query: c.query, Shown: c.deck.historyLen()})
		c.emitLocked()
		return
	}

	if c.mode == ModePlaying {
		c.timer.start()
	}
	c.emitLocked()
}

// Previous brings back the most recently shown item.
func (c *Controller) Previous() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.mode.IsDisplaying() || !c.deck.rewind() {
		return
	}
	c.remaining = c.dwell
	if c.mode == ModePlaying {
		c.timer.start()
	}
	c.emitLocked()
}

// Pause stops the countdown, keeping the remaining time.
func (c *Controller) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pauseLocked()
}

func (c *Controller) pauseLocked() {
	if c.mode != ModePlaying {
		return
	}
	c.timer.halt()
	c.mode = ModePaused
	c.emitLocked()
}

// Play resumes a paused slideshow. The countdown restarts from the full
// dwell time.
func (c *Controller) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.playLocked()
}

func (c *Controller) playLocked() {
	if c.mode != ModePaused {
		return
	}
	c.remaining = c.dwell
	c.mode = ModePlaying
	c.timer.start()
	c.emitLocked()
}

// Toggle pauses when playing and plays when paused.
func (c *Controller) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.mode {
	case ModePlaying:
		c.pauseLocked()
	case ModePaused:
		c.playLocked()
	}
}

// Exit ends the session and discards any search in flight.
func (c *Controller) Exit() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.mode == ModeIdle {
		return
	}
	c.timer.halt()
	c.searchGen++
	c.deck.clear()
	c.remaining = c.dwell
	c.mode = ModeIdle
	slog.Info("slideshow exited", "query", c.query)
	c.emitLocked()
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// Snapshot returns the current visible state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Queue returns a copy of the forward queue, current item first.
func (c *Controller) Queue() []photo.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deck.queueItems()
}

// History returns a copy of the history, most recently shown first.
func (c *Controller) History() []photo.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deck.historyItems()
}

func (c *Controller) snapshotLocked() Snapshot {
	s := Snapshot{
		Mode:             c.mode,
		RemainingSeconds: c.remaining,
		DwellSeconds:     c.dwell,
		Query:            c.query,
		Err:              c.lastErr,
	}
	if !c.mode.IsDisplaying() {
		return s
	}

	s.Current = c.deck.current()
	if s.Current != nil {
		s.CurrentURL = photo.DisplayURL(*s.Current)
	}
	s.HasNext = c.deck.queueLen() > 1
	s.HasPrevious = c.deck.historyLen() > 0
	if next, ok := c.deck.peek(1); ok {
		s.PrefetchURL = photo.DisplayURL(next)
	}
	s.Position = c.deck.historyLen() + 1
	s.Total = c.deck.historyLen() + c.deck.queueLen()
	return s
}

// Subscribe creates a new event subscription. After Close it returns a
// subscription that is already done.
func (c *Controller) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	if c.subsClosed {
		sub.close()
		return sub
	}
	c.subs = append(c.subs, sub)
	return sub
}

func (c *Controller) emitLocked() {
	snap := c.snapshotLocked()
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		sub.sendSnapshot(snap)
	}
}

func (c *Controller) broadcastError(e ErrorEvent) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		sub.sendError(e)
	}
}

func (c *Controller) broadcastFinished(e FinishedEvent) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	for _, sub := range c.subs {
		sub.sendFinished(e)
	}
}

// Close stops the timer, abandons any search in flight and signals
// subscribers.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.timer.halt()
	c.cancel()
	c.mu.Unlock()

	c.subsMu.Lock()
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	c.subsClosed = true
	c.subsMu.Unlock()

	return nil
}
