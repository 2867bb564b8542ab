package queue

import "sync"

// Semaphore is a counting semaphore whose only consumer operation is waiting for the
// count to return to zero, the same narrow interface the loader pipeline uses it
// through: the mapper increments it by the number of updaters for each portion it
// hands out, each updater decrements it once it has applied that portion, and the
// mapper blocks in WaitForZero before extending the adjacency.
type Semaphore struct {
	mu      sync.Mutex
	cond    *sync.Cond
	counter int
}

// NewSemaphore creates a Semaphore with an initial count of zero.
func NewSemaphore() *Semaphore {
	s := &Semaphore{}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Inc increments the count by one.
func (s *Semaphore) Inc() {
	s.IncN(1)
}

// IncN increments the count by n.
func (s *Semaphore) IncN(n int) {
	s.mu.Lock()
	s.counter += n
	s.mu.Unlock()
}

// Dec decrements the count by one, waking a single waiter if it reaches zero.
func (s *Semaphore) Dec() {
	s.mu.Lock()
	s.counter--
	if s.counter == 0 {
		s.cond.Signal()
	}
	s.mu.Unlock()
}

// DecNotifyAll decrements the count by one, waking every waiter if it reaches zero.
func (s *Semaphore) DecNotifyAll() {
	s.mu.Lock()
	s.counter--
	if s.counter == 0 {
		s.cond.Broadcast()
	}
	s.mu.Unlock()
}

// WaitForZero blocks until the count is zero.
func (s *Semaphore) WaitForZero() {
	s.mu.Lock()
	for s.counter != 0 {
		s.cond.Wait()
	}
	s.mu.Unlock()
}
