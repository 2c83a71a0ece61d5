package adapters_test

import (
	"testing"

	"github.com/momentics/hioload-pool/adapters"
	"github.com/momentics/hioload-pool/control"
	"github.com/momentics/hioload-pool/threadpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestControlAdapterBasic(t *testing.T) {
	ctrl := adapters.NewControlAdapter(nil)
	assert.Empty(t, ctrl.GetConfig())

	require.NoError(t, ctrl.SetConfig(map[string]any{"k": 1}))
	stats := ctrl.Stats()
	assert.Equal(t, 1, stats["k"])
	assert.Contains(t, stats, "debug.platform.cpus")

	called := false
	ctrl.OnReload(func() { called = true })
	require.NoError(t, ctrl.SetConfig(map[string]any{"x": 2}))
	assert.True(t, called)
	assert.Equal(t, "2", ctrl.Config().GetString("x", ""))
}

func TestControlAdapterMetrics(t *testing.T) {
	reg := control.NewMetricsRegistry()
	ctrl := adapters.NewControlAdapter(reg)

	c := prometheus.NewCounter(prometheus.CounterOpts{Name: "probe_total", Help: "test"})
	reg.Registerer().MustRegister(c)
	c.Add(3)
	ctrl.SetMetric("custom", "v")

	stats := ctrl.Stats()
	assert.Equal(t, float64(3), stats["probe_total"])
	assert.Equal(t, "v", stats["custom"])
}

func TestControlAdapterPoolProbes(t *testing.T) {
	ctrl := adapters.NewControlAdapter(nil)
	p := threadpool.New(2, 8, threadpool.WithName("probed"))
	ctrl.AttachPool(p)

	state := ctrl.DumpState()
	assert.Equal(t, "probed", state["pool.name"])
	assert.Equal(t, "stop", state["pool.state"])
	assert.Equal(t, 8, state["pool.capacity"])

	require.NoError(t, p.Start())
	defer p.Stop()
	state = ctrl.DumpState()
	assert.Equal(t, "run", state["pool.state"])
	assert.Equal(t, true, state["pool.enabled"])
	assert.Equal(t, 2, state["pool.threads"])
	assert.Equal(t, 0, state["pool.pending"])
}
