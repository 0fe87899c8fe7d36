package runner

import (
	"github.com/ytget/video-tool/internal/model"
)

type eventKind int

const (
	eventStarted eventKind = iota
	eventProgress
	eventCompleted
)

type event struct {
	kind     eventKind
	info     OperationInfo
	fraction float64
	result   model.OperationResult
}

// eventQueue delivers one operation's events to the observer from its own
// goroutine. Delivery of an operation begins only after the previous
// operation's queue has drained, so observers see operations in order.
type eventQueue struct {
	ch       chan event
	observer Observer
	prev     *eventQueue
	done     chan struct{}
}

func newEventQueue(observer Observer, size int, prev *eventQueue) *eventQueue {
	if size < 2 {
		size = 2
	}
	q := &eventQueue{
		ch:       make(chan event, size),
		observer: observer,
		prev:     prev,
		done:     make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *eventQueue) run() {
	defer close(q.done)
	if q.prev != nil {
		<-q.prev.done
		q.prev = nil
	}
	for ev := range q.ch {
		if q.observer == nil {
			continue
		}
		switch ev.kind {
		case eventStarted:
			q.observer.OnStarted(ev.info)
		case eventProgress:
			q.observer.OnProgress(ev.fraction)
		case eventCompleted:
			q.observer.OnCompleted(ev.result)
		}
	}
}

// push enqueues ev, blocking until there is room.
func (q *eventQueue) push(ev event) {
	q.ch <- ev
}

// offer enqueues ev only if there is room. Heartbeat ticks use it.
func (q *eventQueue) offer(ev event) bool {
	select {
	case q.ch <- ev:
		return true
	default:
		return false
	}
}

func (q *eventQueue) close() {
	close(q.ch)
}
