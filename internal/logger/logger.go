// Package logger builds the zerolog logger shared by every component.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"eventfinder/internal/config"
)

// New returns a logger writing to stdout according to cfg.
func New(serviceName string, cfg config.LogConfig) zerolog.Logger {
	return NewWithWriter(os.Stdout, serviceName, cfg)
}

// NewWithWriter is New with an explicit destination.
// Format "console" produces human-readable lines; anything else is one JSON object per line.
func NewWithWriter(w io.Writer, serviceName string, cfg config.LogConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	loc := Location(cfg.TimeZone)
	zerolog.TimestampFunc = func() time.Time { return time.Now().In(loc) }
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.TimestampFieldName = "ts"

	if cfg.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()
}

// Location resolves an IANA time zone name, falling back to UTC.
func Location(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
