package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew_ConsoleLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn := New(Config{Level: "warn"}, &buf)
	defer closeFn()

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn record missing: %q", out)
	}
}

func TestNew_RedactsContactDetails(t *testing.T) {
	// Given: a console logger at debug
	var buf bytes.Buffer
	logger, closeFn := New(Config{Level: "debug"}, &buf)
	defer closeFn()

	// When: contact details are logged directly and through With
	logger.With("email", "amy@example.com").Debug("saved",
		"name", "Amy Buck",
		"phone", "91119111",
		slog.Group("person", slog.String("address", "1 Clementi Road")))

	// Then: none of them reach the sink, the name does
	out := buf.String()
	for _, secret := range []string{"91119111", "amy@example.com", "Clementi"} {
		if strings.Contains(out, secret) {
			t.Errorf("output leaked %q: %q", secret, out)
		}
	}
	if !strings.Contains(out, "Amy Buck") {
		t.Errorf("output missing non-sensitive attr: %q", out)
	}
}

func TestNew_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "addressbook.log")
	logger, closeFn := New(Config{Level: "info", File: path, MaxSizeMB: 1, MaxBackups: 1}, io.Discard)

	logger.Info("session started", "storage", "book.yaml", "phone", "123")
	if err := closeFn(); err != nil {
		t.Fatalf("close error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, data)
	}
	if entry["msg"] != "session started" || entry["storage"] != "book.yaml" {
		t.Errorf("entry = %v", entry)
	}
	if entry["phone"] == "123" {
		t.Error("phone written to file in clear text")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelWarn,
		"bogus":   slog.LevelWarn,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSlogToCharmLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    slog.Level
		expected log.Level
	}{
		{"very low maps to debug", slog.Level(-12), log.DebugLevel},
		{"debug", slog.LevelDebug, log.DebugLevel},
		{"info", slog.LevelInfo, log.InfoLevel},
		{"between info and warn", slog.Level(2), log.InfoLevel},
		{"warn", slog.LevelWarn, log.WarnLevel},
		{"error", slog.LevelError, log.ErrorLevel},
		{"very high maps to error", slog.Level(12), log.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := slogToCharmLevel(tt.input); got != tt.expected {
				t.Errorf("slogToCharmLevel(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestMultiHandler(t *testing.T) {
	var infoBuf, errBuf bytes.Buffer
	h := NewMultiHandler(
		slog.NewJSONHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewJSONHandler(&errBuf, &slog.HandlerOptions{Level: slog.LevelError}),
	)

	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Enabled(info) = false, want true")
	}
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Enabled(debug) = true, want false")
	}

	logger := slog.New(h).WithGroup("cmd").With("word", "view")
	logger.Info("executed")
	logger.Error("failed")

	if n := strings.Count(infoBuf.String(), "\n"); n != 2 {
		t.Errorf("info handler lines = %d, want 2", n)
	}
	if n := strings.Count(errBuf.String(), "\n"); n != 1 {
		t.Errorf("error handler lines = %d, want 1", n)
	}
	if !strings.Contains(errBuf.String(), `"cmd":{"word":"view"`) {
		t.Errorf("group/attrs not propagated: %q", errBuf.String())
	}
}

func TestDiscard(t *testing.T) {
	if Discard().Enabled(context.Background(), slog.LevelError) {
		t.Error("Discard logger should not be enabled")
	}
}
