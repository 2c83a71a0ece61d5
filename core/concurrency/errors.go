// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for concurrency module.

package concurrency

import "errors"

var (
	// ErrQueueDisabled indicates a push onto a queue that refuses new items
	ErrQueueDisabled = errors.New("queue is disabled")

	// ErrQueueFull indicates a non-blocking push onto a queue at capacity
	ErrQueueFull = errors.New("queue is full")
)
