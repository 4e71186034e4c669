package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
)

// LineReader reads one line of input after showing prompt.
// It returns io.EOF when input is exhausted or the user aborts.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// InputOptions configures NewLineReader.
type InputOptions struct {
	Plain       bool   // Never use line editing.
	HistoryFile string // Where line-editing history persists; empty disables it.
}

// NewLineReader returns a line-editing reader when both in and out are
// terminals, and a plain scanner otherwise.
func NewLineReader(in io.Reader, out io.Writer, opts InputOptions) LineReader {
	if !opts.Plain && isTTY(in) && isTTY(out) {
		return newLinerReader(opts.HistoryFile)
	}
	return NewScannerReader(in, out)
}

// isTTY reports whether v is a file connected to a terminal.
func isTTY(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ScannerReader reads newline-terminated lines and echoes prompts to w.
type ScannerReader struct {
	sc *bufio.Scanner
	w  io.Writer
}

// NewScannerReader creates a ScannerReader over r.
func NewScannerReader(r io.Reader, w io.Writer) *ScannerReader {
	return &ScannerReader{sc: bufio.NewScanner(r), w: w}
}

func (s *ScannerReader) ReadLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(s.w, prompt)
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", fmt.Errorf("ui: reading input: %w", err)
		}
		return "", io.EOF
	}
	return s.sc.Text(), nil
}

func (s *ScannerReader) Close() error { return nil }

// linerReader wraps peterh/liner for history and line editing.
type linerReader struct {
	state       *liner.State
	historyFile string
}

func newLinerReader(historyFile string) *linerReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	r := &linerReader{state: state, historyFile: historyFile}
	if historyFile != "" {
		if f, err := os.Open(historyFile); err == nil {
			_, _ = state.ReadHistory(f)
			f.Close()
		}
	}
	return r
}

func (r *linerReader) ReadLine(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("ui: reading input: %w", err)
	}
	if strings.TrimSpace(line) != "" {
		r.state.AppendHistory(line)
	}
	return line, nil
}

// Close saves history and restores the terminal.
func (r *linerReader) Close() error {
	defer r.state.Close()
	if r.historyFile == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(r.historyFile), 0o755); err != nil {
		return fmt.Errorf("ui: creating history directory: %w", err)
	}
	f, err := os.OpenFile(r.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("ui: saving history: %w", err)
	}
	defer f.Close()
	if _, err := r.state.WriteHistory(f); err != nil {
		return fmt.Errorf("ui: saving history: %w", err)
	}
	return nil
}
