// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// ThreadGroup spawns worker threads and joins them as a unit.

package concurrency

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/momentics/hioload-pool/api"
	"golang.org/x/sync/errgroup"
)

// Ensure compile-time interface compliance.
var _ api.ThreadGroup = (*ThreadGroup)(nil)

// ThreadGroup runs entry points on goroutines, optionally locked to prepared
// OS threads, and waits for all of them in JoinAll.
type ThreadGroup struct {
	mu      sync.Mutex
	group   *errgroup.Group
	live    atomic.Int32
	started atomic.Int64
}

// NewThreadGroup returns an empty group.
func NewThreadGroup() *ThreadGroup {
	return &ThreadGroup{group: new(errgroup.Group)}
}

// AddThread starts entry on a new thread once attrs have been applied.
// When preparation fails the thread exits without running entry and the
// preparation error is returned.
func (tg *ThreadGroup) AddThread(entry func(), attrs *api.ThreadAttributes) error {
	tg.mu.Lock()
	defer tg.mu.Unlock()

	ready := make(chan error, 1)
	tg.group.Go(func() error {
		if attrs.NeedsOSThread() {
			// Left locked on purpose: the runtime terminates the thread
			// when this goroutine returns.
			runtime.LockOSThread()
			if err := PrepareCurrentThread(attrs); err != nil {
				ready <- err
				return err
			}
		}
		tg.live.Add(1)
		defer tg.live.Add(-1)
		ready <- nil
		entry()
		return nil
	})

	if err := <-ready; err != nil {
		return err
	}
	tg.started.Add(1)
	return nil
}

// NumThreads returns the number of threads currently running their entry point.
func (tg *ThreadGroup) NumThreads() int {
	return int(tg.live.Load())
}

// NumStarted returns how many threads were successfully started over the
// group's lifetime.
func (tg *ThreadGroup) NumStarted() int64 {
	return tg.started.Load()
}

// JoinAll blocks until every thread added so far has returned. The group can
// be reused afterwards.
func (tg *ThreadGroup) JoinAll() {
	tg.mu.Lock()
	g := tg.group
	tg.group = new(errgroup.Group)
	tg.mu.Unlock()

	// Preparation errors were already returned by AddThread.
	_ = g.Wait()
}
