// Package logger owns the process-wide zerolog logger. Components take a
// child from Component; bootstrap code logs through the package helpers.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var base zerolog.Logger

// LogLevel is a level name as written in the config file
type LogLevel string

const (
	DebugLevel    LogLevel = "debug"
	InfoLevel     LogLevel = "info"
	WarnLevel     LogLevel = "warn"
	ErrorLevel    LogLevel = "error"
	DisabledLevel LogLevel = "disabled"
)

var levels = map[LogLevel]zerolog.Level{
	DebugLevel:    zerolog.DebugLevel,
	InfoLevel:     zerolog.InfoLevel,
	WarnLevel:     zerolog.WarnLevel,
	ErrorLevel:    zerolog.ErrorLevel,
	DisabledLevel: zerolog.Disabled,
}

// Config selects the level and output format
type Config struct {
	Level LogLevel
	// Pretty switches from JSON lines to the human-readable console writer.
	Pretty bool
	// Output defaults to stdout.
	Output io.Writer
}

// Configure replaces the global logger. Unknown levels fall back to info.
func Configure(cfg Config) {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	level, ok := levels[cfg.Level]
	if !ok {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	base = zerolog.New(out).With().Timestamp().Logger()
	log.Logger = base
}

// Component returns a child logger tagged with a component name
func Component(name string) zerolog.Logger {
	return base.With().Str("component", name).Logger()
}

func Debug() *zerolog.Event { return base.Debug() }
func Info() *zerolog.Event  { return base.Info() }
func Warn() *zerolog.Event  { return base.Warn() }
func Error() *zerolog.Event { return base.Error() }

func init() {
	Configure(Config{Level: InfoLevel, Pretty: true})
}
