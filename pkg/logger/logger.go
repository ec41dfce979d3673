// Package logger builds the engine's zerolog loggers.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config controls how the root logger is built.
type Config struct {
	Level  string    // debug, info, warn, error
	Pretty bool      // console writer for interactive runs
	Out    io.Writer // defaults to os.Stdout
}

// New creates the engine's root logger. Unknown or empty levels fall back to
// info. The level is set on the logger itself rather than globally, so tests
// injecting zerolog.Nop() are unaffected.
func New(cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	switch cfg.Level {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	var out io.Writer = os.Stdout
	if cfg.Out != nil {
		out = cfg.Out
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "15:04:05",
		}
	}

	zerolog.TimeFieldFormat = time.RFC3339

	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "behavioral").
		Logger()
}

// Component tags a child logger with the engine component it serves.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
