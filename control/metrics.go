// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics registry for system-level monitoring. Collectors live in a
// Prometheus registry; GetSnapshot flattens them together with ad-hoc values
// set through Set.

package control

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// MetricsRegistry holds Prometheus collectors and free-form values.
type MetricsRegistry struct {
	registry *prometheus.Registry

	mu      sync.RWMutex
	metrics map[string]any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		registry: prometheus.NewRegistry(),
		metrics:  make(map[string]any),
	}
}

// Registerer is where components register their collectors.
func (mr *MetricsRegistry) Registerer() prometheus.Registerer {
	return mr.registry
}

// Gatherer exposes the collectors, e.g. to promhttp.HandlerFor.
func (mr *MetricsRegistry) Gatherer() prometheus.Gatherer {
	return mr.registry
}

// Set sets or updates a free-form metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Updated returns when Set was last called.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}

// GetSnapshot returns the latest metrics. Prometheus series are keyed as
// name{label="value",...}; histograms and summaries report their count and sum.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	out := make(map[string]any)
	if families, err := mr.registry.Gather(); err == nil {
		for _, mf := range families {
			for _, m := range mf.GetMetric() {
				out[seriesKey(mf.GetName(), m.GetLabel())] = sampleValue(mf.GetType(), m)
			}
		}
	}

	mr.mu.RLock()
	defer mr.mu.RUnlock()
	for k, v := range mr.metrics {
		out[k] = v
	}
	return out
}

func seriesKey(name string, labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return name
	}
	pairs := make([]string, 0, len(labels))
	for _, lp := range labels {
		pairs = append(pairs, lp.GetName()+`="`+lp.GetValue()+`"`)
	}
	sort.Strings(pairs)
	return name + "{" + strings.Join(pairs, ",") + "}"
}

func sampleValue(t dto.MetricType, m *dto.Metric) any {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	case dto.MetricType_HISTOGRAM:
		h := m.GetHistogram()
		return map[string]any{"count": h.GetSampleCount(), "sum": h.GetSampleSum()}
	case dto.MetricType_SUMMARY:
		s := m.GetSummary()
		return map[string]any{"count": s.GetSampleCount(), "sum": s.GetSampleSum()}
	default:
		return m.GetUntyped().GetValue()
	}
}
