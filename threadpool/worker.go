// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Worker thread loop.

package threadpool

import (
	"time"

	"github.com/momentics/hioload-pool/api"
)

// workerThread parks at the gate and acts on each released state until told
// to stop.
func (p *FixedThreadPool) workerThread() {
	for {
		switch p.gate.Arrive() {
		case StateRun:
			if p.processJobs() == StateDrain {
				p.drainQueue()
			}
		case StateDrain:
			p.drainQueue()
		case StateSuspend:
		case StateStop:
			return
		}
	}
}

// processJobs runs queued jobs, parking on the wake semaphore while the
// queue is empty. It returns the published state that made it leave
// StateRun; the caller goes back to the gate afterwards.
func (p *FixedThreadPool) processJobs() State {
	for {
		if s := p.gate.Hint(); s != StateRun {
			return s
		}
		if job, ok := p.queue.TryPopFront(); ok {
			p.execute(job)
			continue
		}

		if s := p.gate.BeginWait(); s != StateRun {
			p.gate.EndWait()
			return s
		}
		// A producer that pushed before BeginWait may have seen no waiters.
		if job, ok := p.queue.TryPopFront(); ok {
			p.gate.EndWait()
			p.execute(job)
			continue
		}
		p.wake.Wait()
		if s := p.gate.EndWait(); s != StateRun {
			return s
		}
	}
}

// drainQueue runs jobs until the queue is observed empty.
func (p *FixedThreadPool) drainQueue() {
	for {
		job, ok := p.queue.TryPopFront()
		if !ok {
			return
		}
		p.execute(job)
	}
}

func (p *FixedThreadPool) execute(job api.Job) {
	p.active.Add(1)
	if p.metrics == nil {
		job()
	} else {
		began := time.Now()
		job()
		p.metrics.jobExecuted(time.Since(began))
	}
	p.active.Add(-1)
}
