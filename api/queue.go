// File: api/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded FIFO queue contract consumed by the thread pool.

package api

// JobQueue is a bounded, internally synchronized FIFO with an enable switch.
// Push operations fail while the queue is disabled; pop operations do not.
type JobQueue[T any] interface {
	PushBack(item T) error
	TryPushBack(item T) error
	PopFront() T
	TryPopFront() (T, bool)

	Enable()
	Disable()
	IsEnabled() bool

	IsEmpty() bool
	Len() int
	Cap() int

	// RemoveAll discards every queued item and returns how many were dropped.
	RemoveAll() int
}
