// Package threadpool
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FixedThreadPool runs queued jobs on a fixed set of worker threads.
//
// Lifecycle calls (Start, Stop, Drain) are serialized and return only after
// every worker has rendezvoused at an internal gate and observed the new
// state. Start and Stop are idempotent; Drain round-trips the pool through a
// draining pass and leaves it running.
//
//	p := threadpool.New(4, 64, threadpool.WithLogger(log))
//	if err := p.Start(); err != nil {
//	    return err
//	}
//	defer p.Shutdown()
//
//	_ = p.EnqueueJob(func() { work() })
//	p.Drain()
//
// Backpressure is reported through TryEnqueueJob returning ErrQueueFull.
// Jobs must not panic: workers do not recover, and a panicking job takes the
// process down like any unrecovered goroutine panic.
//
// Go has no destructors. A pool that was started must be stopped with Stop or
// Shutdown before it is dropped, or its workers stay parked forever.
package threadpool
