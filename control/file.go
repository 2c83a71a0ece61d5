// control/file.go
// Author: momentics <momentics@gmail.com>
//
// On-disk pool configuration in YAML or JSON.

package control

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/momentics/hioload-pool/api"
	"gopkg.in/yaml.v3"
)

// DefaultQueuePerThread sizes the queue when QueueSize is zero.
const DefaultQueuePerThread = 64

// FileConfig is the configuration file layout.
type FileConfig struct {
	Pool    PoolConfig    `yaml:"pool" json:"pool"`
	Log     LogConfig     `yaml:"log" json:"log"`
	Metrics MetricsConfig `yaml:"metrics" json:"metrics"`
}

// PoolConfig sizes the thread pool.
type PoolConfig struct {
	Name      string               `yaml:"name" json:"name"`
	Threads   int                  `yaml:"threads" json:"threads"`
	QueueSize int                  `yaml:"queue_size" json:"queue_size"`
	Thread    api.ThreadAttributes `yaml:"thread" json:"thread"`
}

// LogConfig selects the log level and output format.
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// MetricsConfig names the Prometheus namespace and an optional listen address.
type MetricsConfig struct {
	Namespace string `yaml:"namespace" json:"namespace"`
	Listen    string `yaml:"listen" json:"listen"`
}

// DefaultFileConfig returns a configuration with every default applied.
func DefaultFileConfig() *FileConfig {
	cfg := &FileConfig{}
	cfg.ApplyDefaults()
	return cfg
}

// LoadFile reads path, choosing the decoder by extension, and returns a
// validated configuration with defaults applied.
func LoadFile(path string) (*FileConfig, error) {
	cfg, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadFile decodes path as written, leaving unset fields zero. Callers that
// override fields apply ApplyDefaults and Validate afterwards.
func ReadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Decode(data, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
}

// Parse decodes data in the given format ("yaml", "yml" or "json") and
// returns a validated configuration with defaults applied.
func Parse(data []byte, format string) (*FileConfig, error) {
	cfg, err := Decode(data, format)
	if err != nil {
		return nil, err
	}
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode decodes data without applying defaults.
func Decode(data []byte, format string) (*FileConfig, error) {
	var cfg FileConfig
	switch format {
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case "json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, api.NewError(api.ErrCodeNotSupported, fmt.Sprintf("control: unsupported config format %q", format))
	}

	return &cfg, nil
}

func (c *FileConfig) finish() error {
	c.ApplyDefaults()
	return c.Validate()
}

// ApplyDefaults fills zero values.
func (c *FileConfig) ApplyDefaults() {
	if c.Pool.Threads == 0 {
		c.Pool.Threads = runtime.NumCPU()
	}
	if c.Pool.QueueSize == 0 && c.Pool.Threads > 0 {
		c.Pool.QueueSize = c.Pool.Threads * DefaultQueuePerThread
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = LogFormatJSON
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = "hioload"
	}
}

// Validate reports the first invalid field as an ErrInvalidArgument error.
func (c *FileConfig) Validate() error {
	invalid := func(field string, value any, msg string) error {
		return api.NewError(api.ErrCodeInvalidArgument, "control: "+msg).
			WithContext("field", field).
			WithContext("value", value)
	}

	if c.Pool.Threads <= 0 {
		return invalid("pool.threads", c.Pool.Threads, "thread count must be positive")
	}
	if c.Pool.QueueSize < 0 {
		return invalid("pool.queue_size", c.Pool.QueueSize, "queue size must not be negative")
	}
	for _, cpu := range c.Pool.Thread.CPUs {
		if cpu < 0 {
			return invalid("pool.thread.cpus", cpu, "cpu index must not be negative")
		}
	}
	if n := c.Pool.Thread.Nice; n != nil && (*n < -20 || *n > 19) {
		return invalid("pool.thread.nice", *n, "nice must be within [-20, 19]")
	}
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case LogFormatJSON, LogFormatConsole:
	default:
		return invalid("log.format", c.Log.Format, "log format must be json or console")
	}
	return nil
}

// Settings flattens the configuration for a ConfigStore. Only "log.level" is
// applied on reload; the pool and metrics keys are fixed at construction and
// are exposed for inspection only.
func (c *FileConfig) Settings() map[string]any {
	return map[string]any{
		"pool.name":         c.Pool.Name,
		"pool.threads":      c.Pool.Threads,
		"pool.queue_size":   c.Pool.QueueSize,
		"log.level":         c.Log.Level,
		"log.format":        c.Log.Format,
		"metrics.namespace": c.Metrics.Namespace,
	}
}
