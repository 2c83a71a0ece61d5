// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Prometheus collectors for FixedThreadPool.

package threadpool

import (
	"errors"
	"time"

	"github.com/momentics/hioload-pool/core/concurrency"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors a pool reports into. A nil *Metrics records
// nothing.
type Metrics struct {
	JobsSubmitted     prometheus.Counter
	JobsRejected      *prometheus.CounterVec
	JobsExecuted      prometheus.Counter
	JobsDiscarded     prometheus.Counter
	JobDuration       prometheus.Histogram
	LiveThreads       prometheus.Gauge
	LifecycleDuration *prometheus.HistogramVec
}

// NewMetrics creates the pool collectors and registers them with registerer.
// Wrap the registerer with prometheus.WrapRegistererWith to tell several
// pools apart.
func NewMetrics(registerer prometheus.Registerer, namespace string) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registerer)

	return &Metrics{
		JobsSubmitted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "threadpool",
			Name:      "jobs_submitted_total",
			Help:      "Jobs accepted into the queue.",
		}),
		JobsRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "threadpool",
			Name:      "jobs_rejected_total",
			Help:      "Jobs refused by the queue, by reason.",
		}, []string{"reason"}), // reason: full, disabled
		JobsExecuted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "threadpool",
			Name:      "jobs_executed_total",
			Help:      "Jobs run to completion by worker threads.",
		}),
		JobsDiscarded: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "threadpool",
			Name:      "jobs_discarded_total",
			Help:      "Queued jobs dropped by Stop.",
		}),
		JobDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "threadpool",
			Name:      "job_duration_seconds",
			Help:      "Wall time spent running a single job.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12), // 1us to ~4s
		}),
		LiveThreads: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "threadpool",
			Name:      "live_threads",
			Help:      "Worker threads currently started.",
		}),
		LifecycleDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "threadpool",
			Name:      "lifecycle_duration_seconds",
			Help:      "Duration of Start, Stop and Drain calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

func (m *Metrics) jobSubmitted() {
	if m == nil {
		return
	}
	m.JobsSubmitted.Inc()
}

func (m *Metrics) jobRejected(err error) {
	if m == nil {
		return
	}
	reason := "disabled"
	if errors.Is(err, concurrency.ErrQueueFull) {
		reason = "full"
	}
	m.JobsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) jobExecuted(d time.Duration) {
	m.JobsExecuted.Inc()
	m.JobDuration.Observe(d.Seconds())
}

func (m *Metrics) jobsDiscarded(n int) {
	if m == nil || n == 0 {
		return
	}
	m.JobsDiscarded.Add(float64(n))
}

func (m *Metrics) lifecycle(op string, began time.Time, threads int) {
	if m == nil {
		return
	}
	m.LifecycleDuration.WithLabelValues(op).Observe(time.Since(began).Seconds())
	m.LiveThreads.Set(float64(threads))
}
