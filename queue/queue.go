// Package queue provides an unbounded FIFO of labeled items that is
// safe for concurrent use.
//
// All operations take the same mutex for their whole duration. There is
// no per-element locking and no operation spans more than one critical
// section, so callers observe a total order of operations but no
// fairness between goroutines contending for the lock.
package queue

import (
	"math/rand/v2"
	"sync"

	"github.com/ef-ds/deque"
	"github.com/tychoish/fun/ers"
	"github.com/tychoish/grip"
	"github.com/tychoish/grip/message"
)

// ErrEmptyQueue is returned by operations that need at least one item
// when the queue has none. It is informational: the operation did not
// change the queue.
const ErrEmptyQueue ers.Error = "queue is empty"

// Item is an immutable (label, value) pair.
type Item struct {
	Label string `bson:"label" json:"label" yaml:"label"`
	Value int    `bson:"value" json:"value" yaml:"value"`
}

// Queue is a mutex-guarded sequence of items.
type Queue struct {
	mu     sync.Mutex
	items  deque.Deque
	rng    *rand.Rand
	logger grip.Logger
}

// New constructs an empty queue.
func New(opts ...Option) *Queue {
	conf := defaultOptions()
	for _, opt := range opts {
		opt(&conf)
	}

	return &Queue{
		rng:    conf.Random,
		logger: conf.Logger,
	}
}

// Enqueue appends an item to the tail of the queue.
func (q *Queue) Enqueue(it Item) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items.PushBack(it)
}

// Dequeue removes and discards the head of the queue. Calling Dequeue
// on an empty queue is a no-op that logs and returns ErrEmptyQueue.
func (q *Queue) Dequeue() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.items.PopFront(); !ok {
		q.logger.Info(message.Fields{
			"op":      "dequeue",
			"message": "empty queue",
		})
		return ErrEmptyQueue
	}

	return nil
}

// IsEmpty reports whether the queue held no items at the moment of the
// call. Other goroutines may change that immediately after it returns.
func (q *Queue) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.items.Len() == 0
}

// Len returns the number of items at the moment of the call.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.items.Len()
}

// Sum adds up the value of every item. The total is computed from a
// copy of the sequence each call; there is no cached aggregate.
func (q *Queue) Sum() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	total := 0
	for _, it := range q.snapshot() {
		total += it.Value
	}
	return total
}

// Reverse inverts the order of the queue in place by draining it onto a
// stack and draining the stack back into the queue.
func (q *Queue) Reverse() {
	q.mu.Lock()
	defer q.mu.Unlock()

	var stack deque.Deque
	for {
		v, ok := q.items.PopFront()
		if !ok {
			break
		}
		stack.PushBack(v)
	}

	for {
		v, ok := stack.PopBack()
		if !ok {
			break
		}
		q.items.PushBack(v)
	}
}

// RemoveRandomItem removes one item chosen uniformly at random and
// returns it. The relative order of the remaining items is unchanged.
func (q *Queue) RemoveRandomItem() (Item, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	size := q.items.Len()
	if size == 0 {
		return Item{}, ErrEmptyQueue
	}

	target := q.rng.IntN(size)

	var removed Item
	for idx := 0; idx < size; idx++ {
		v, _ := q.items.PopFront()
		if idx == target {
			removed = v.(Item)
			continue
		}
		q.items.PushBack(v)
	}

	return removed, nil
}

// Snapshot returns a copy of the items in queue order.
func (q *Queue) Snapshot() []Item {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.snapshot()
}

// snapshot copies the sequence by rotating the deque through one full
// cycle. Callers must hold the lock.
func (q *Queue) snapshot() []Item {
	size := q.items.Len()
	out := make([]Item, 0, size)
	for idx := 0; idx < size; idx++ {
		v, _ := q.items.PopFront()
		out = append(out, v.(Item))
		q.items.PushBack(v)
	}
	return out
}
