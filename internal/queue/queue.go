// Package queue implements the delay queue sitting between event ingestion
// and notification. Events are appended in arrival order and only the head
// is ever processed, once it is old enough for the subgraph to have indexed
// it. A failing head stays in place and blocks the entries behind it.
package queue

import (
	"sync"
	"time"

	"github.com/superfluid-finance/web3-hooks/internal/event"
)

// Queue is an in-memory FIFO of QueuedEvent. Enqueue may be called from any
// goroutine; head operations are meant for the single processing service.
type Queue struct {
	mu    sync.Mutex
	items []event.QueuedEvent
	now   func() time.Time
}

// NewQueue creates an empty queue stamping events with now. A nil now uses time.Now.
func NewQueue(now func() time.Time) *Queue {
	if now == nil {
		now = time.Now
	}
	return &Queue{now: now}
}

// Enqueue appends e stamped with the current time and a new processing id.
func (q *Queue) Enqueue(e event.RawEvent) event.QueuedEvent {
	q.mu.Lock()
	defer q.mu.Unlock()

	qe := event.NewQueuedEvent(e, q.now())
	q.items = append(q.items, qe)
	return qe
}

// Len returns the number of waiting events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}

// Head returns the oldest event without removing it.
func (q *Queue) Head() (event.QueuedEvent, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		return event.QueuedEvent{}, false
	}
	return q.items[0], true
}

// Pop removes the head if its processing id is id. It reports whether an
// entry was removed.
func (q *Queue) Pop(id string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 || q.items[0].ID != id {
		return false
	}

	q.items[0] = event.QueuedEvent{}
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return true
}

// RecordFailure increments the attempt counter of the head and stores err,
// provided the head is still the entry identified by id.
func (q *Queue) RecordFailure(id string, err error) (event.QueuedEvent, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 || q.items[0].ID != id {
		return event.QueuedEvent{}, false
	}

	q.items[0].Attempts++
	q.items[0].LastError = err
	return q.items[0], true
}
