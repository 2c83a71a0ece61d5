// File: core/concurrency/fixed_queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FixedQueue is a bounded FIFO over a growable ring buffer. Capacity is
// enforced here; the ring only stores items.

package concurrency

import (
	"sync"

	"github.com/eapache/queue"
	"github.com/momentics/hioload-pool/api"
)

// Ensure compile-time interface compliance.
var _ api.JobQueue[api.Job] = (*FixedQueue[api.Job])(nil)

// FixedQueue is a blocking bounded queue with an enable switch.
type FixedQueue[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	notFull  *sync.Cond
	ring     *queue.Queue
	capacity int
	disabled bool
}

// NewFixedQueue creates an enabled queue holding at most capacity items.
// A capacity below one is raised to one.
func NewFixedQueue[T any](capacity int) *FixedQueue[T] {
	if capacity < 1 {
		capacity = 1
	}
	q := &FixedQueue[T]{
		ring:     queue.New(),
		capacity: capacity,
	}
	q.notEmpty = sync.NewCond(&q.mu)
	q.notFull = sync.NewCond(&q.mu)
	return q
}

// PushBack appends item, blocking while the queue is full.
// Returns ErrQueueDisabled if the queue is or becomes disabled.
func (q *FixedQueue[T]) PushBack(item T) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	for !q.disabled && q.ring.Length() >= q.capacity {
		q.notFull.Wait()
	}
	if q.disabled {
		return ErrQueueDisabled
	}
	q.push(item)
	return nil
}

// TryPushBack appends item without blocking.
func (q *FixedQueue[T]) TryPushBack(item T) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.disabled {
		return ErrQueueDisabled
	}
	if q.ring.Length() >= q.capacity {
		return ErrQueueFull
	}
	q.push(item)
	return nil
}

// push requires q.mu.
func (q *FixedQueue[T]) push(item T) {
	q.ring.Add(item)
	q.notEmpty.Signal()
}

// PopFront removes the oldest item, blocking while the queue is empty.
func (q *FixedQueue[T]) PopFront() T {
	q.mu.Lock()
	defer q.mu.Unlock()
	for q.ring.Length() == 0 {
		q.notEmpty.Wait()
	}
	return q.pop()
}

// TryPopFront removes the oldest item if there is one.
func (q *FixedQueue[T]) TryPopFront() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.ring.Length() == 0 {
		var zero T
		return zero, false
	}
	return q.pop(), true
}

// pop requires q.mu and a non-empty ring.
func (q *FixedQueue[T]) pop() T {
	item, _ := q.ring.Remove().(T)
	q.notFull.Signal()
	return item
}

// Enable lets push operations succeed again.
func (q *FixedQueue[T]) Enable() {
	q.mu.Lock()
	q.disabled = false
	q.mu.Unlock()
}

// Disable makes pending and future pushes fail. Queued items stay poppable.
func (q *FixedQueue[T]) Disable() {
	q.mu.Lock()
	q.disabled = true
	q.notFull.Broadcast()
	q.mu.Unlock()
}

// IsEnabled reports whether pushes are accepted.
func (q *FixedQueue[T]) IsEnabled() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return !q.disabled
}

// IsEmpty reports whether the queue holds no items.
func (q *FixedQueue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Len returns the number of queued items.
func (q *FixedQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.ring.Length()
}

// Cap returns the capacity fixed at construction.
func (q *FixedQueue[T]) Cap() int {
	return q.capacity
}

// RemoveAll discards every queued item and returns how many were dropped.
func (q *FixedQueue[T]) RemoveAll() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	n := q.ring.Length()
	for q.ring.Length() > 0 {
		q.ring.Remove()
	}
	if n > 0 {
		q.notFull.Broadcast()
	}
	return n
}
