// Package logging provides zerolog-based structured logging for ohmoracle.
// Loggers are carried on the command context; packages retrieve them with
// FromContext rather than holding globals.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Output format names accepted by Config.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config controls how the root logger is constructed.
type Config struct {
	// Level is a zerolog level name ("trace", "debug", "info", ...).
	// Unparseable values fall back to "info".
	Level string
	// Format selects console (human-readable) or json output.
	Format string
	// Caller enables caller annotation on every event.
	Caller bool
}

// New builds the root logger writing to w according to cfg.
// A nil w defaults to stderr.
func New(cfg Config, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	if cfg.Format != FormatJSON {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	logCtx := zerolog.New(w).Level(lvl).With().Timestamp()
	if cfg.Caller {
		logCtx = logCtx.Caller()
	}
	return logCtx.Logger()
}

// ComponentLogger returns a child logger tagged with a component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}
