// Package adapters
// Author: momentics <momentics@gmail.com>
//
// Control adapter implementing api.Control interface using control package primitives.

package adapters

import (
	"github.com/momentics/hioload-pool/api"
	"github.com/momentics/hioload-pool/control"
	"github.com/momentics/hioload-pool/threadpool"
)

var _ api.Control = (*ControlAdapter)(nil)

// ControlAdapter combines a config store, a metrics registry and debug probes.
type ControlAdapter struct {
	config  *control.ConfigStore
	metrics *control.MetricsRegistry
	debug   *control.DebugProbes
}

// NewControlAdapter creates an adapter with platform probes installed. A nil
// metrics registry gets a private one.
func NewControlAdapter(metrics *control.MetricsRegistry) *ControlAdapter {
	if metrics == nil {
		metrics = control.NewMetricsRegistry()
	}
	adapter := &ControlAdapter{
		config:  control.NewConfigStore(),
		metrics: metrics,
		debug:   control.NewDebugProbes(),
	}
	control.RegisterPlatformProbes(adapter.debug)
	return adapter
}

// AttachPool installs the pool probes for p.
func (c *ControlAdapter) AttachPool(p *threadpool.FixedThreadPool) {
	c.debug.RegisterProbe("pool.name", func() any { return p.Name() })
	c.debug.RegisterProbe("pool.state", func() any { return p.State().String() })
	c.debug.RegisterProbe("pool.enabled", func() any { return p.IsEnabled() })
	c.debug.RegisterProbe("pool.pending", func() any { return p.NumPendingJobs() })
	c.debug.RegisterProbe("pool.active", func() any { return p.NumActiveThreads() })
	c.debug.RegisterProbe("pool.threads", func() any { return p.NumThreadsStarted() })
	c.debug.RegisterProbe("pool.capacity", func() any { return p.QueueCapacity() })
}

func (c *ControlAdapter) GetConfig() map[string]any {
	return c.config.GetSnapshot()
}

func (c *ControlAdapter) SetConfig(cfg map[string]any) error {
	c.config.SetConfig(cfg)
	return nil
}

// Stats merges metric values, debug probes (prefixed "debug.") and config.
func (c *ControlAdapter) Stats() map[string]any {
	combined := make(map[string]any)
	for k, v := range c.config.GetSnapshot() {
		combined[k] = v
	}
	for k, v := range c.metrics.GetSnapshot() {
		combined[k] = v
	}
	for k, v := range c.debug.DumpState() {
		combined["debug."+k] = v
	}
	return combined
}

func (c *ControlAdapter) OnReload(fn func()) {
	c.config.OnReload(fn)
}

// Config exposes the underlying store for typed reads.
func (c *ControlAdapter) Config() *control.ConfigStore {
	return c.config
}

func (c *ControlAdapter) SetMetric(key string, value any) {
	c.metrics.Set(key, value)
}

func (c *ControlAdapter) RegisterDebugProbe(name string, fn func() any) {
	c.debug.RegisterProbe(name, fn)
}

// DumpState runs every debug probe.
func (c *ControlAdapter) DumpState() map[string]any {
	return c.debug.DumpState()
}
