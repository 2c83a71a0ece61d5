// control/logger.go
// Author: momentics <momentics@gmail.com>
//
// zerolog construction from LogConfig.

package control

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/momentics/hioload-pool/api"
	"github.com/rs/zerolog"
)

// Log output formats.
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// ParseLogLevel maps a config level to zerolog. Empty means info.
func ParseLogLevel(level string) (zerolog.Level, error) {
	if level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, api.NewError(api.ErrCodeInvalidArgument, "control: invalid log level").
			WithContext("level", level).
			WithCause(err)
	}
	return lvl, nil
}

// NewLogger builds a timestamped logger writing to w.
func NewLogger(cfg LogConfig, w io.Writer) (zerolog.Logger, error) {
	lvl, err := ParseLogLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	var out io.Writer
	switch strings.ToLower(cfg.Format) {
	case "", LogFormatJSON:
		out = w
	case LogFormatConsole:
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	default:
		return zerolog.Nop(), api.NewError(api.ErrCodeInvalidArgument, fmt.Sprintf("control: unknown log format %q", cfg.Format))
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}
