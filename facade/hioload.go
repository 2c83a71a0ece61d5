// File: facade/hioload.go
// Unified facade layer for hioload-pool.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Pool aggregates the thread pool with its logger, Prometheus registry and
// control surface, all built from a control.FileConfig. Runtime changes to
// "log.level" made through Control are applied to the pool logger.

package facade

import (
	"context"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
	"github.com/momentics/hioload-pool/adapters"
	"github.com/momentics/hioload-pool/api"
	"github.com/momentics/hioload-pool/control"
	"github.com/momentics/hioload-pool/threadpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

// Option customizes facade construction.
type Option func(*settings)

type settings struct {
	logWriter      io.Writer
	tracerProvider trace.TracerProvider
	threadGroup    api.ThreadGroup
}

// WithLogWriter sends logs to w instead of stderr.
func WithLogWriter(w io.Writer) Option {
	return func(s *settings) { s.logWriter = w }
}

// WithTracerProvider traces pool lifecycle calls with tp.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *settings) { s.tracerProvider = tp }
}

// WithThreadGroup overrides how worker threads are spawned.
func WithThreadGroup(tg api.ThreadGroup) Option {
	return func(s *settings) { s.threadGroup = tg }
}

// Pool is the main facade type.
type Pool struct {
	cfg control.FileConfig

	mu  sync.RWMutex
	log zerolog.Logger

	pool     *threadpool.FixedThreadPool
	executor *adapters.ExecutorAdapter
	control  *adapters.ControlAdapter
	metrics  *control.MetricsRegistry
}

// Ensure compliance with api.GracefulShutdown.
var _ api.GracefulShutdown = (*Pool)(nil)

// New validates cfg and wires a stopped pool. A nil cfg uses
// control.DefaultFileConfig.
func New(cfg *control.FileConfig, opts ...Option) (*Pool, error) {
	var c control.FileConfig
	if cfg != nil {
		c = *cfg
	}
	c.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Pool.Name == "" {
		c.Pool.Name = "pool-" + uuid.NewString()[:8]
	}

	s := settings{logWriter: os.Stderr}
	for _, opt := range opts {
		opt(&s)
	}

	log, err := control.NewLogger(c.Log, s.logWriter)
	if err != nil {
		return nil, err
	}

	registry := control.NewMetricsRegistry()
	registerer := prometheus.WrapRegistererWith(prometheus.Labels{"pool": c.Pool.Name}, registry.Registerer())
	metrics := threadpool.NewMetrics(registerer, c.Metrics.Namespace)

	poolOpts := []threadpool.Option{
		threadpool.WithName(c.Pool.Name),
		threadpool.WithLogger(log),
		threadpool.WithMetrics(metrics),
	}
	if c.Pool.Thread.NeedsOSThread() {
		poolOpts = append(poolOpts, threadpool.WithThreadAttributes(c.Pool.Thread))
	}
	if s.tracerProvider != nil {
		poolOpts = append(poolOpts, threadpool.WithTracerProvider(s.tracerProvider))
	}
	if s.threadGroup != nil {
		poolOpts = append(poolOpts, threadpool.WithThreadGroup(s.threadGroup))
	}
	p := threadpool.New(c.Pool.Threads, c.Pool.QueueSize, poolOpts...)

	promauto.With(registerer).NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: c.Metrics.Namespace,
		Subsystem: "threadpool",
		Name:      "queue_depth",
		Help:      "Jobs waiting in the queue.",
	}, func() float64 { return float64(p.NumPendingJobs()) })

	h := &Pool{
		cfg:      c,
		log:      log,
		pool:     p,
		executor: adapters.NewExecutorAdapter(p),
		control:  adapters.NewControlAdapter(registry),
		metrics:  registry,
	}
	h.control.AttachPool(p)
	h.control.OnReload(h.reload)
	h.control.SetConfig(c.Settings())
	return h, nil
}

// reload applies runtime-adjustable settings from the control store.
func (h *Pool) reload() {
	h.mu.Lock()
	defer h.mu.Unlock()

	level := h.control.Config().GetString("log.level", "")
	lvl, err := control.ParseLogLevel(level)
	if err != nil {
		h.log.Warn().Err(err).Msg("ignoring log level from reload")
		return
	}
	if h.log.GetLevel() == lvl {
		return
	}
	h.log = h.log.Level(lvl)
	h.pool.SetLogger(h.log)
	h.log.Info().Str("level", lvl.String()).Msg("log level reloaded")
}

// Start starts the worker threads. Subsequent calls have no effect.
func (h *Pool) Start() error {
	return h.pool.Start()
}

// Stop discards queued jobs and joins the workers.
func (h *Pool) Stop() error {
	h.pool.Stop()
	return nil
}

// Shutdown implements api.GracefulShutdown: it runs queued work, then stops.
func (h *Pool) Shutdown() error {
	h.pool.DisableQueue()
	h.pool.Drain()
	return h.Stop()
}

// Submit queues job, blocking while the queue is full.
func (h *Pool) Submit(job func()) error {
	return h.executor.Submit(job)
}

// SubmitContext queues job, giving up when ctx is done.
func (h *Pool) SubmitContext(ctx context.Context, job func()) error {
	return h.executor.SubmitContext(ctx, job)
}

// TrySubmit queues job without blocking.
func (h *Pool) TrySubmit(job func()) error {
	return h.pool.TryEnqueueJob(job)
}

// Drain waits for every queued job to run.
func (h *Pool) Drain() {
	h.pool.Drain()
}

// ThreadPool returns the underlying pool.
func (h *Pool) ThreadPool() *threadpool.FixedThreadPool {
	return h.pool
}

// Executor returns the submit-only view of the pool.
func (h *Pool) Executor() api.Executor {
	return h.executor
}

// GetControl returns the Control interface for dynamic config and metrics.
func (h *Pool) GetControl() api.Control {
	return h.control
}

// GetDebugAPI returns the debug probe view.
func (h *Pool) GetDebugAPI() api.Debug {
	return debugView{h.control}
}

// Gatherer exposes the Prometheus registry, e.g. for promhttp.
func (h *Pool) Gatherer() prometheus.Gatherer {
	return h.metrics.Gatherer()
}

// Config returns the effective configuration.
func (h *Pool) Config() control.FileConfig {
	return h.cfg
}

// Logger returns the logger at its current level.
func (h *Pool) Logger() zerolog.Logger {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.log
}

type debugView struct {
	c *adapters.ControlAdapter
}

func (d debugView) DumpState() map[string]any { return d.c.DumpState() }

func (d debugView) RegisterProbe(name string, fn func() any) { d.c.RegisterDebugProbe(name, fn) }
