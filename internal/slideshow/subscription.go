package slideshow

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	Snapshots <-chan Snapshot
	Errors    <-chan ErrorEvent
	Finished  <-chan FinishedEvent
	Done      <-chan struct{}

	// Internal write channels
	snapshotCh chan Snapshot
	errorCh    chan ErrorEvent
	finishedCh chan FinishedEvent
	doneCh     chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		snapshotCh: make(chan Snapshot, eventBufferSize),
		errorCh:    make(chan ErrorEvent, eventBufferSize),
		finishedCh: make(chan FinishedEvent, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.Snapshots = s.snapshotCh
	s.Errors = s.errorCh
	s.Finished = s.finishedCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// sendSnapshot sends a snapshot (non-blocking).
func (s *Subscription) sendSnapshot(snap Snapshot) {
	select {
	case s.snapshotCh <- snap:
	default:
		// Drop if buffer full; Controller.Snapshot has the latest state
	}
}

// sendError sends an error event (non-blocking).
func (s *Subscription) sendError(e ErrorEvent) {
	select {
	case s.errorCh <- e:
	default:
	}
}

// sendFinished sends a finished event (non-blocking).
func (s *Subscription) sendFinished(e FinishedEvent) {
	select {
	case s.finishedCh <- e:
	default:
	}
}
