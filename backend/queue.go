package backend

// eventQueue merges requeued events with the fresh event stream coming
// from a backend's pump goroutine. Requeued events win: PollEvent
// drains the pending list before touching the channel.
type eventQueue struct {
	pending []Event
	events  chan Event
}

func newEventQueue(depth int) *eventQueue {
	return &eventQueue{events: make(chan Event, depth)}
}

// push delivers a fresh event from the pump goroutine. Events are
// dropped if the frame loop has stalled and the queue is full.
func (q *eventQueue) push(ev Event) {
	select {
	case q.events <- ev:
	default:
	}
}

// requeue puts an event at the front of the queue.
func (q *eventQueue) requeue(ev Event) {
	q.pending = append(q.pending, ev)
}

// poll returns the next event without blocking.
func (q *eventQueue) poll() (Event, bool) {
	if len(q.pending) > 0 {
		ev := q.pending[0]
		q.pending = q.pending[1:]
		return ev, true
	}
	select {
	case ev := <-q.events:
		return ev, true
	default:
		return Event{}, false
	}
}
