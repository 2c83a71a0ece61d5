// File: adapters/executor_adapter.go
// Package adapters provides glue between the thread pool and api.Executor.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ExecutorAdapter implements the api.Executor interface on top of a started
// threadpool.FixedThreadPool.

package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/momentics/hioload-pool/api"
	"github.com/momentics/hioload-pool/threadpool"
)

var _ api.Executor = (*ExecutorAdapter)(nil)

// Backoff bounds for SubmitContext while the queue is full.
const (
	minSubmitBackoff = 50 * time.Microsecond
	maxSubmitBackoff = 5 * time.Millisecond
)

// ExecutorAdapter wraps a FixedThreadPool to satisfy the api.Executor contract.
type ExecutorAdapter struct {
	pool *threadpool.FixedThreadPool
}

// NewExecutorAdapter wraps p. The caller starts the pool.
func NewExecutorAdapter(p *threadpool.FixedThreadPool) *ExecutorAdapter {
	return &ExecutorAdapter{pool: p}
}

// Submit blocks while the queue is full.
func (ea *ExecutorAdapter) Submit(task func()) error {
	return ea.pool.EnqueueJob(task)
}

// SubmitContext retries a non-blocking enqueue with exponential backoff
// until it succeeds, the queue is disabled or ctx is done.
func (ea *ExecutorAdapter) SubmitContext(ctx context.Context, task func()) error {
	backoff := minSubmitBackoff
	for {
		err := ea.pool.TryEnqueueJob(task)
		if !errors.Is(err, threadpool.ErrQueueFull) {
			return err
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		backoff = min(backoff*2, maxSubmitBackoff)
	}
}

// NumWorkers returns the configured worker count.
func (ea *ExecutorAdapter) NumWorkers() int {
	return ea.pool.NumThreads()
}

// Close stops the pool, discarding queued tasks.
func (ea *ExecutorAdapter) Close() {
	ea.pool.Stop()
}
