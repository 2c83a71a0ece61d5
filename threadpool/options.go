// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Functional options for FixedThreadPool.

package threadpool

import (
	"github.com/google/uuid"
	"github.com/momentics/hioload-pool/api"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/momentics/hioload-pool/threadpool"

// Option configures a FixedThreadPool at construction.
type Option func(*options)

type options struct {
	name           string
	attrs          *api.ThreadAttributes
	threads        api.ThreadGroup
	logger         zerolog.Logger
	metrics        *Metrics
	tracerProvider trace.TracerProvider
}

func defaultOptions() options {
	return options{
		name:   "pool-" + uuid.NewString()[:8],
		logger: zerolog.Nop(),
	}
}

// WithName sets the pool name used in logs and as the thread name prefix.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithThreadAttributes passes attrs to every worker thread. A non-empty Name
// gets the worker index appended.
func WithThreadAttributes(attrs api.ThreadAttributes) Option {
	return func(o *options) {
		a := attrs
		a.CPUs = append([]int(nil), attrs.CPUs...)
		o.attrs = &a
	}
}

// WithThreadGroup replaces the thread group that spawns and joins workers.
func WithThreadGroup(tg api.ThreadGroup) Option {
	return func(o *options) {
		o.threads = tg
	}
}

// WithLogger sets the lifecycle logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics records pool activity into m.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithTracerProvider traces lifecycle calls with tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		o.tracerProvider = tp
	}
}

func (o *options) tracer() trace.Tracer {
	tp := o.tracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer(tracerName)
}
