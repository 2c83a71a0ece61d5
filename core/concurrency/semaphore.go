// File: core/concurrency/semaphore.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// WakeSemaphore wakes goroutines that parked because their queue was empty.

package concurrency

// WakeSemaphore is a counting semaphore capped at its capacity.
// A Post that finds the semaphore full is dropped: with at most capacity
// waiters, a full semaphore already guarantees every waiter a token.
type WakeSemaphore struct {
	tokens chan struct{}
}

// NewWakeSemaphore returns a semaphore holding at most capacity tokens.
func NewWakeSemaphore(capacity int) *WakeSemaphore {
	if capacity < 1 {
		capacity = 1
	}
	return &WakeSemaphore{tokens: make(chan struct{}, capacity)}
}

// Post adds one token and reports whether it was stored.
func (s *WakeSemaphore) Post() bool {
	select {
	case s.tokens <- struct{}{}:
		return true
	default:
		return false
	}
}

// PostN posts n tokens and returns how many were stored.
func (s *WakeSemaphore) PostN(n int) int {
	stored := 0
	for range n {
		if !s.Post() {
			break
		}
		stored++
	}
	return stored
}

// Wait blocks until a token is available and consumes it.
func (s *WakeSemaphore) Wait() {
	<-s.tokens
}

// TryWait consumes a token if one is available.
func (s *WakeSemaphore) TryWait() bool {
	select {
	case <-s.tokens:
		return true
	default:
		return false
	}
}

// Reset drops all stored tokens and returns how many were dropped.
func (s *WakeSemaphore) Reset() int {
	n := 0
	for s.TryWait() {
		n++
	}
	return n
}

// Available returns the number of stored tokens.
func (s *WakeSemaphore) Available() int {
	return len(s.tokens)
}
