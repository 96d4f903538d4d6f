package bus

import (
	"sync/atomic"
	"time"

	"main/pkg/exception"
)

// DefaultCapacity is sized so producers never need to think about the
// bound under normal load.
const DefaultCapacity = 1000

// Queue is the bounded FIFO handoff between the session reader and the
// decision thread. It is the only synchronization point between them.
type Queue struct {
	ch     chan Message
	done   chan struct{}
	closed uint32
}

// NewQueue allocates a queue with the given capacity.
func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Queue{
		ch:   make(chan Message, capacity),
		done: make(chan struct{}),
	}
}

// Publish enqueues a message. It blocks when the bound is reached rather
// than dropping, and errors once the queue is closed.
func (q *Queue) Publish(m Message) error {
	if atomic.LoadUint32(&q.closed) != 0 {
		return exception.ErrBusClosed
	}
	select {
	case q.ch <- m:
		return nil
	case <-q.done:
		return exception.ErrBusClosed
	}
}

// Consume blocks up to timeout and returns the next message, or ok=false
// when no message arrived.
func (q *Queue) Consume(timeout time.Duration) (Message, bool) {
	select {
	case m := <-q.ch:
		return m, true
	default:
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case m := <-q.ch:
		return m, true
	case <-q.done:
		// drain what was buffered before the close
		select {
		case m := <-q.ch:
			return m, true
		default:
			return nil, false
		}
	case <-timer.C:
		return nil, false
	}
}

// Close stops the queue from accepting new messages. Buffered messages
// remain consumable.
func (q *Queue) Close() {
	if atomic.CompareAndSwapUint32(&q.closed, 0, 1) {
		close(q.done)
	}
}

// Closed reports whether the queue has been closed.
func (q *Queue) Closed() bool {
	return atomic.LoadUint32(&q.closed) != 0
}

// Len returns the number of buffered messages.
func (q *Queue) Len() int {
	return len(q.ch)
}
