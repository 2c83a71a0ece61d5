// Package api
// Author: momentics
//
// Thread pool contract for queued job execution with explicit lifecycle control.

package api

import "context"

// Job is a nullary unit of work. A nil Job is a programming error.
// A Job must not panic: the worker running it does not recover.
type Job func()

// ThreadPool abstracts a fixed set of worker threads fed from a bounded queue.
type ThreadPool interface {
	// EnqueueJob blocks while the queue is full. Fails once the queue is disabled.
	EnqueueJob(job Job) error

	// TryEnqueueJob never blocks. Fails when the queue is full or disabled.
	TryEnqueueJob(job Job) error

	// Start spawns the workers. A started pool reports success without effect.
	Start() error

	// Stop discards pending jobs and joins every worker.
	Stop()

	// Drain runs every queued job and returns with the pool still running.
	Drain()

	// NumThreads returns the configured worker count.
	NumThreads() int

	// QueueCapacity returns the bounded queue size.
	QueueCapacity() int
}

// Executor is the submit-only view of a running pool.
type Executor interface {
	// Submit queues task, blocking while the pool is saturated.
	Submit(task func()) error

	// SubmitContext queues task, giving up when ctx is done.
	SubmitContext(ctx context.Context, task func()) error

	// NumWorkers returns the number of worker threads.
	NumWorkers() int

	// Close stops the underlying pool.
	Close()
}
