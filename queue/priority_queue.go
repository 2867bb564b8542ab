package queue

import "sync"

// PriorityQueue redelivers pushed items in ascending key order, regardless of the
// order concurrent producers actually pushed them in. The loader's parser threads
// finish portions out of order, but the mapper thread must extend the adjacency in
// input order (edge insertion is not commutative across portions), so pushes are
// buffered by key until it is their turn.
type PriorityQueue[T any] struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending map[int64]T
	next    int64
	closed  bool
}

// NewPriorityQueue creates a PriorityQueue whose first expected key is 0.
func NewPriorityQueue[T any]() *PriorityQueue[T] {
	q := &PriorityQueue[T]{pending: make(map[int64]T)}
	q.cond = sync.NewCond(&q.mu)
	return q
}

// Push enqueues v under key. Keys may arrive in any order across producers, but each
// key must be pushed exactly once.
func (q *PriorityQueue[T]) Push(key int64, v T) {
	q.mu.Lock()
	q.pending[key] = v
	q.cond.Broadcast()
	q.mu.Unlock()
}

// Pop blocks until the item for the next expected key is available, then returns it
// and advances the expected key. ok is false once the queue has been closed and every
// pushed key has been popped.
func (q *PriorityQueue[T]) Pop() (v T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for {
		if item, found := q.pending[q.next]; found {
			delete(q.pending, q.next)
			q.next++
			return item, true
		}

		if q.closed && len(q.pending) == 0 {
			var zero T
			return zero, false
		}

		q.cond.Wait()
	}
}

// Close marks the queue complete: once every already-pushed key has been popped in
// order, Pop returns ok=false instead of blocking. Must be called exactly once, after
// all producers have finished pushing.
func (q *PriorityQueue[T]) Close() {
	q.mu.Lock()
	q.closed = true
	q.cond.Broadcast()
	q.mu.Unlock()
}
