package slideshow

import "github.com/llehouerou/gesture/internal/photo"

// deck holds the forward queue and the back history. Items only ever move
// between the two.
type deck struct {
	queue   []photo.Item // head is the current item
	history []photo.Item // most recently shown first
}

// reset replaces the queue with items and clears the history.
func (d *deck) reset(items []photo.Item) {
	d.queue = make([]photo.Item, len(items))
	copy(d.queue, items)
	d.history = nil
}

// clear empties both queue and history.
func (d *deck) clear() {
	d.queue = nil
	d.history = nil
}

// current returns the queue head, or nil if the queue is empty.
func (d *deck) current() *photo.Item {
	if len(d.queue) == 0 {
		return nil
	}
	it := d.queue[0]
	return &it
}

// peek returns the queue item at index i.
func (d *deck) peek(i int) (photo.Item, bool) {
	if i < 0 || i >= len(d.queue) {
		return photo.Item{}, false
	}
	return d.queue[i], true
}

// advance moves the queue head to the front of the history.
// Returns false if the queue is empty.
func (d *deck) advance() bool {
	if len(d.queue) == 0 {
		return false
	}
	head := d.queue[0]
	d.queue = d.queue[1:]
	d.history = append([]photo.Item{head}, d.history...)
	return true
}

// rewind moves the front of the history back to the queue head.
// Returns false if the history is empty.
func (d *deck) rewind() bool {
	if len(d.history) == 0 {
		return false
	}
	front := d.history[0]
	d.history = d.history[1:]
	d.queue = append([]photo.Item{front}, d.queue...)
	return true
}

func (d *deck) queueLen() int   { return len(d.queue) }
func (d *deck) historyLen() int { return len(d.history) }

// queueItems returns a copy of the queue.
func (d *deck) queueItems() []photo.Item {
	out := make([]photo.Item, len(d.queue))
	copy(out, d.queue)
	return out
}

// historyItems returns a copy of the history.
func (d *deck) historyItems() []photo.Item {
	out := make([]photo.Item, len(d.history))
	copy(out, d.history)
	return out
}
