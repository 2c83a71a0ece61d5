// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// FixedThreadPool: a fixed set of worker threads fed by a bounded FIFO.

package threadpool

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/momentics/hioload-pool/api"
	"github.com/momentics/hioload-pool/core/concurrency"
	internal "github.com/momentics/hioload-pool/internal/concurrency"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Queue errors returned by EnqueueJob and TryEnqueueJob.
var (
	ErrQueueDisabled = concurrency.ErrQueueDisabled
	ErrQueueFull     = concurrency.ErrQueueFull
)

// Ensure compile-time interface compliance.
var (
	_ api.ThreadPool       = (*FixedThreadPool)(nil)
	_ api.GracefulShutdown = (*FixedThreadPool)(nil)
)

// FixedThreadPool executes jobs on exactly NumThreads workers while started.
// Enqueue operations are safe from any goroutine, including from inside a
// running job. During Drain, idle workers park once the queue is empty, so a
// job should use TryEnqueueJob rather than block on a full queue there.
// Start, Stop and Drain must not be called from a job.
type FixedThreadPool struct {
	lifecycle sync.Mutex

	queue   *concurrency.FixedQueue[api.Job]
	gate    *concurrency.Gate[State]
	wake    *concurrency.WakeSemaphore
	threads api.ThreadGroup

	numThreads int
	name       string
	attrs      *api.ThreadAttributes

	log     zerolog.Logger
	metrics *Metrics
	tracer  trace.Tracer

	active atomic.Int32
}

// New creates a stopped pool of numThreads workers and a queue holding up to
// maxQueueSize jobs. A maxQueueSize of zero is raised to one. New panics if
// numThreads is not positive or maxQueueSize is negative.
func New(numThreads, maxQueueSize int, opts ...Option) *FixedThreadPool {
	if numThreads <= 0 {
		panic(fmt.Sprintf("threadpool: numThreads must be positive, got %d", numThreads))
	}
	if maxQueueSize < 0 {
		panic(fmt.Sprintf("threadpool: maxQueueSize must not be negative, got %d", maxQueueSize))
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	threads := o.threads
	if threads == nil {
		threads = internal.NewThreadGroup()
	}

	p := &FixedThreadPool{
		queue:      concurrency.NewFixedQueue[api.Job](maxQueueSize),
		gate:       concurrency.NewGate(numThreads, StateStop),
		wake:       concurrency.NewWakeSemaphore(numThreads),
		threads:    threads,
		numThreads: numThreads,
		name:       o.name,
		attrs:      o.attrs,
		log:        o.logger.With().Str("pool", o.name).Logger(),
		metrics:    o.metrics,
		tracer:     o.tracer(),
	}
	p.queue.Disable()
	return p
}

// EnqueueJob appends job to the queue, blocking while the queue is full.
// It returns ErrQueueDisabled if the pool is not started or the queue gets
// disabled while waiting. job must not be nil.
func (p *FixedThreadPool) EnqueueJob(job api.Job) error {
	if job == nil {
		panic("threadpool: nil job")
	}
	if err := p.queue.PushBack(job); err != nil {
		p.metrics.jobRejected(err)
		return err
	}
	p.accepted()
	return nil
}

// TryEnqueueJob appends job without blocking. It returns ErrQueueFull when
// there is no room and ErrQueueDisabled when the pool is not accepting work.
func (p *FixedThreadPool) TryEnqueueJob(job api.Job) error {
	if job == nil {
		panic("threadpool: nil job")
	}
	if err := p.queue.TryPushBack(job); err != nil {
		p.metrics.jobRejected(err)
		return err
	}
	p.accepted()
	return nil
}

// accepted wakes a parked worker, if any, after a successful push.
func (p *FixedThreadPool) accepted() {
	p.metrics.jobSubmitted()
	if p.gate.Waiting() > 0 {
		p.wake.Post()
	}
}

// Start spawns the workers and enables the queue. It is a no-op on a started
// pool. If a worker cannot be created, the workers already spawned are shut
// down, the pool stays stopped and an *api.Error with code
// ErrCodeResourceExhausted is returned.
func (p *FixedThreadPool) Start() (err error) {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	if p.gate.Value() != StateStop {
		return nil
	}

	_, span := p.startSpan("threadpool.start")
	defer func() { endSpan(span, err) }()
	began := time.Now()

	for i := range p.numThreads {
		if spawnErr := p.threads.AddThread(p.workerThread, p.threadAttributes(i)); spawnErr != nil {
			p.unwindStart(i)
			p.log.Error().Err(spawnErr).
				Int("spawned", i).
				Int("threads", p.numThreads).
				Msg("thread pool start failed")
			return api.NewError(api.ErrCodeResourceExhausted, "threadpool: cannot create worker thread").
				WithContext("pool", p.name).
				WithContext("spawned", i).
				WithContext("threads", p.numThreads).
				WithCause(spawnErr)
		}
	}

	p.gate.AwaitAll()
	p.queue.Enable()
	p.gate.Release(StateRun)

	p.metrics.lifecycle("start", began, p.numThreads)
	p.log.Info().
		Int("threads", p.numThreads).
		Int("queue_capacity", p.queue.Cap()).
		Dur("took", time.Since(began)).
		Msg("thread pool started")
	return nil
}

// unwindStart releases the spawned workers into StateStop and joins them.
func (p *FixedThreadPool) unwindStart(spawned int) {
	p.gate.AwaitReady(spawned)
	p.gate.Release(StateStop)
	p.threads.JoinAll()
	p.wake.Reset()
}

// Stop disables the queue, discards pending jobs, waits for running jobs to
// finish and joins every worker. It is a no-op unless the pool is started.
func (p *FixedThreadPool) Stop() {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	if p.gate.Value() != StateRun {
		return
	}

	_, span := p.startSpan("threadpool.stop")
	defer span.End()
	began := time.Now()

	p.queue.Disable()
	p.interrupt(StateStop)
	discarded := p.queue.RemoveAll()

	p.gate.AwaitAll()
	p.gate.Release(StateStop)
	p.threads.JoinAll()
	p.wake.Reset()

	span.SetAttributes(attribute.Int("discarded", discarded))
	p.metrics.jobsDiscarded(discarded)
	p.metrics.lifecycle("stop", began, 0)
	p.log.Info().
		Int("discarded", discarded).
		Dur("took", time.Since(began)).
		Msg("thread pool stopped")
}

// Drain blocks until every job queued before or during the call has run,
// then resumes normal operation. Jobs submitted concurrently by other
// goroutines may be picked up either by the drain pass or afterwards.
// Drain is a no-op unless the pool is started.
func (p *FixedThreadPool) Drain() {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()

	if p.gate.Value() != StateRun {
		return
	}

	_, span := p.startSpan("threadpool.drain")
	defer span.End()
	began := time.Now()
	pending := p.queue.Len()

	// Each worker leaves its run loop, empties the queue and then arrives.
	p.interrupt(StateDrain)
	p.gate.AwaitAll()
	p.gate.Release(StateRun)

	p.metrics.lifecycle("drain", began, p.numThreads)
	p.log.Debug().
		Int("pending", pending).
		Dur("took", time.Since(began)).
		Msg("thread pool drained")
}

// Shutdown stops the pool. It implements api.GracefulShutdown.
func (p *FixedThreadPool) Shutdown() error {
	p.Stop()
	return nil
}

// interrupt publishes s and wakes every worker parked on an empty queue.
func (p *FixedThreadPool) interrupt(s State) {
	if waiting := p.gate.Publish(s); waiting > 0 {
		p.wake.PostN(waiting)
	}
}

// EnableQueue re-opens the queue of a started pool after DisableQueue.
func (p *FixedThreadPool) EnableQueue() {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()
	if p.gate.Value() == StateRun {
		p.queue.Enable()
	}
}

// DisableQueue makes enqueue operations fail with ErrQueueDisabled while the
// workers keep running queued jobs. Start re-enables the queue.
func (p *FixedThreadPool) DisableQueue() {
	p.queue.Disable()
}

// SetLogger replaces the lifecycle logger. It waits for any running Start,
// Stop or Drain to finish.
func (p *FixedThreadPool) SetLogger(l zerolog.Logger) {
	p.lifecycle.Lock()
	defer p.lifecycle.Unlock()
	p.log = l.With().Str("pool", p.name).Logger()
}

// IsEnabled reports whether the queue accepts new jobs.
func (p *FixedThreadPool) IsEnabled() bool {
	return p.queue.IsEnabled()
}

// IsStarted reports whether workers are running.
func (p *FixedThreadPool) IsStarted() bool {
	return p.gate.Value() != StateStop
}

// State returns the state last published to the workers.
func (p *FixedThreadPool) State() State {
	return p.gate.Value()
}

// Name returns the pool name.
func (p *FixedThreadPool) Name() string {
	return p.name
}

// NumThreads returns the configured worker count.
func (p *FixedThreadPool) NumThreads() int {
	return p.numThreads
}

// QueueCapacity returns the effective queue capacity.
func (p *FixedThreadPool) QueueCapacity() int {
	return p.queue.Cap()
}

// NumPendingJobs returns the number of jobs waiting in the queue.
func (p *FixedThreadPool) NumPendingJobs() int {
	return p.queue.Len()
}

// NumActiveThreads returns the number of workers currently running a job.
func (p *FixedThreadPool) NumActiveThreads() int {
	return int(p.active.Load())
}

// NumThreadsStarted returns the number of live worker threads.
func (p *FixedThreadPool) NumThreadsStarted() int {
	return p.threads.NumThreads()
}

func (p *FixedThreadPool) threadAttributes(i int) *api.ThreadAttributes {
	if p.attrs == nil {
		return nil
	}
	attrs := *p.attrs
	if attrs.Name != "" {
		suffix := fmt.Sprintf("-%d", i)
		attrs.Name = internal.TruncateThreadName(attrs.Name, internal.MaxThreadNameLen-len(suffix)) + suffix
	}
	return &attrs
}

func (p *FixedThreadPool) startSpan(name string) (context.Context, trace.Span) {
	return p.tracer.Start(context.Background(), name,
		trace.WithAttributes(
			attribute.String("pool.name", p.name),
			attribute.Int("pool.threads", p.numThreads),
		))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
