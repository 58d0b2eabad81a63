// Package logger configures the process-wide slog logger: a tinted console
// handler in development, JSON in production, with optional rotating file
// output.
package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/transly-team/transly/internal/env"
)

// Option customizes logger construction.
type Option func(*options)

type options struct {
	logToFile bool
	logFile   string
}

// WithLogToFile enables mirroring log output to a rotating file.
func WithLogToFile(enabled bool) Option {
	return func(o *options) {
		o.logToFile = enabled
	}
}

// WithLogFile sets the log file path used when file logging is enabled.
func WithLogFile(path string) Option {
	return func(o *options) {
		o.logFile = path
	}
}

// New builds a slog.Logger for the given environment.
func New(environment env.Environment, opts ...Option) *slog.Logger {
	o := options{logFile: "logs/transly.log"}
	for _, opt := range opts {
		opt(&o)
	}

	w := io.Writer(os.Stderr)
	if o.logToFile {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   o.logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		})
	}

	var handler slog.Handler
	if environment.IsProduction() {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	} else {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.TimeOnly,
		})
	}

	return slog.New(handler)
}
