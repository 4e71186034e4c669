// Package logging provides structured logging using Go's slog package.
//
// Records go to a charmbracelet/log console handler and, when a file is
// configured, to a rotating JSON file. Contact details are redacted before
// reaching either sink.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logging configuration.
type Config struct {
	Level      string // debug, info, warn, error
	File       string // rotating JSON log file; empty disables it
	MaxSizeMB  int
	MaxBackups int
}

// New creates a configured slog.Logger writing console output to console.
// The returned close func flushes and closes the file sink, if any.
func New(cfg Config, console io.Writer) (*slog.Logger, func() error) {
	level := parseLevel(cfg.Level)

	charm := log.NewWithOptions(console, log.Options{
		Level:  slogToCharmLevel(level),
		Prefix: "addressbook",
	})
	handlers := []slog.Handler{charm}

	closeFn := func() error { return nil }
	if cfg.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
		}
		handlers = append(handlers, slog.NewJSONHandler(rotator, &slog.HandlerOptions{Level: level}))
		closeFn = rotator.Close
	}

	var handler slog.Handler = handlers[0]
	if len(handlers) > 1 {
		handler = NewMultiHandler(handlers...)
	}
	return slog.New(NewRedactHandler(handler)), closeFn
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func slogToCharmLevel(l slog.Level) log.Level {
	switch {
	case l < slog.LevelInfo:
		return log.DebugLevel
	case l < slog.LevelWarn:
		return log.InfoLevel
	case l < slog.LevelError:
		return log.WarnLevel
	default:
		return log.ErrorLevel
	}
}
