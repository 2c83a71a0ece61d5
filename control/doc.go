// Package control
// Author: momentics <momentics@gmail.com>
//
// Configuration, runtime metrics and debug introspection for hioload-pool.
//
// Provides concurrent-safe state handling primitives including:
//   - FileConfig loading from YAML or JSON with defaults and validation
//   - A hot-reloadable key/value ConfigStore with reload listeners
//   - A Prometheus-backed MetricsRegistry with flat snapshots
//   - Debug probe registration and platform probes
//   - zerolog logger construction from configuration
//
// This package is cross-platform and build-tag-partitioned as needed.
package control
