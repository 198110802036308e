// Package logger wraps zerolog.Logger with the constructors the CLI and the
// build packages use.
package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// New returns a logger writing human-readable lines to w at the given level
// ("debug", "info", "warn", "error").
func New(w io.Writer, level string) (*Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", level, err)
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	l := zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return &Logger{l}, nil
}

// NewJSON returns a logger writing JSON lines to w at the given level.
func NewJSON(w io.Writer, level zerolog.Level) *Logger {
	return &Logger{zerolog.New(w).Level(level).With().Timestamp().Logger()}
}

// Nop returns a *Logger that discards all output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Target returns a child logger tagged with a build target name.
func (l *Logger) Target(name string) *Logger {
	return &Logger{l.With().Str("target", name).Logger()}
}
