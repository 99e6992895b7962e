package slideshow

import "time"

// timer drives the once-per-interval countdown. It is owned by the
// controller and only touched with the controller lock held.
//
// Every start begins a new generation. A tick carries the generation it was
// produced by, and the controller drops ticks whose generation is no longer
// running, so nothing fires after stop returns.
type timer struct {
	interval time.Duration
	onTick   func(gen uint64)

	gen  uint64
	stop chan struct{} // nil when stopped
}

func newTimer(interval time.Duration, onTick func(gen uint64)) *timer {
	return &timer{interval: interval, onTick: onTick}
}

// start replaces any running ticker with a fresh one.
func (t *timer) start() {
	t.halt()
	t.gen++
	stop := make(chan struct{})
	t.stop = stop
	go t.run(t.gen, stop)
}

// halt cancels the running ticker, if any.
func (t *timer) halt() {
	if t.stop != nil {
		close(t.stop)
		t.stop = nil
	}
}

func (t *timer) running() bool {
	return t.stop != nil
}

// current reports whether gen belongs to the running ticker.
func (t *timer) current(gen uint64) bool {
	return t.stop != nil && gen == t.gen
}

func (t *timer) run(gen uint64, stop <-chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			select {
			case <-stop:
				return
			default:
			}
			t.onTick(gen)
		}
	}
}
