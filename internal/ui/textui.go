// Package ui implements the line-oriented address book shell.
package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/addressbook/internal/command"
	"github.com/smileynet/addressbook/internal/person"
)

const (
	// LinePrefix starts every line shown to the user.
	LinePrefix = "|| "
	// Divider separates command outputs.
	Divider = "==================================================="

	MessageWelcome          = "Welcome to your Address Book!"
	MessageLaunchUsage      = "Launch command format: addressbook shell [STORAGE_FILE_PATH]"
	MessageUsingStorageFile = "Using storage file : %s"
	MessageGoodbye          = "Exiting Address Book... Good bye!"
	MessageInitFailed       = "Failed to initialise address book application. Exiting..."
	MessageCommandEntered   = "[Command entered:%s]"

	// DefaultPrompt is shown after LinePrefix when reading a command.
	DefaultPrompt = "Enter command: "

	commentMarker = "#"
)

// Executor runs a line of input. app.Session satisfies it.
type Executor interface {
	Execute(line string) (command.Result, error)
	StoragePath() string
}

// Options configures a TextUI.
type Options struct {
	Prompt string
	Plain  bool // Disable colors.
}

// TextUI reads commands and shows results with a "|| " prefix on each line.
type TextUI struct {
	in     LineReader
	w      io.Writer
	prompt string

	feedback lipgloss.Style
	divider  lipgloss.Style
	index    lipgloss.Style
}

// New creates a TextUI reading from in and writing to w.
func New(in LineReader, w io.Writer, opts Options) *TextUI {
	prompt := opts.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}
	u := &TextUI{in: in, w: w, prompt: prompt}

	r := lipgloss.NewRenderer(w)
	u.feedback = r.NewStyle()
	u.divider = r.NewStyle()
	u.index = r.NewStyle()
	if !opts.Plain {
		u.feedback = u.feedback.Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
		u.divider = u.divider.Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "240"})
		u.index = u.index.Bold(true)
	}
	return u
}

// ReadCommand prompts until a line that is neither blank nor a comment is
// entered, echoes it and returns it.
func (u *TextUI) ReadCommand() (string, error) {
	for {
		line, err := u.in.ReadLine(LinePrefix + u.prompt)
		if err != nil {
			return "", err
		}
		if shouldIgnore(line) {
			continue
		}
		u.Show(fmt.Sprintf(MessageCommandEntered, line))
		return line, nil
	}
}

func shouldIgnore(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, commentMarker)
}

// Show writes each message with the line prefix, including after every
// embedded newline.
func (u *TextUI) Show(messages ...string) {
	for _, m := range messages {
		_, _ = fmt.Fprintln(u.w, LinePrefix+strings.ReplaceAll(m, "\n", "\n"+LinePrefix))
	}
}

// ShowWelcome prints the banner shown at startup.
func (u *TextUI) ShowWelcome(version, storagePath string) {
	div := u.divider.Render(Divider)
	u.Show(div, div, MessageWelcome, version, MessageLaunchUsage,
		fmt.Sprintf(MessageUsingStorageFile, storagePath), div)
}

// ShowGoodbye prints the exit banner.
func (u *TextUI) ShowGoodbye() {
	div := u.divider.Render(Divider)
	u.Show(MessageGoodbye, div, div)
}

// ShowInitFailed prints the startup failure banner.
func (u *TextUI) ShowInitFailed() {
	div := u.divider.Render(Divider)
	u.Show(MessageInitFailed, div, div)
}

// ShowResult prints any listing in the result followed by its feedback.
func (u *TextUI) ShowResult(res command.Result) {
	if res.Persons != nil {
		u.ShowPersons(res.Persons)
	}
	u.Show(paint(u.feedback, res.Feedback), u.divider.Render(Divider))
}

// paint styles each line on its own; lipgloss pads multi-line blocks to a
// common width.
func paint(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return strings.Join(lines, "\n")
}

// ShowPersons prints a numbered listing with private details hidden.
func (u *TextUI) ShowPersons(persons []person.ReadOnly) {
	items := make([]string, len(persons))
	for i, p := range persons {
		items[i] = IndexedItem(u.index.Render(fmt.Sprintf("%d.", i+1)), p.AsTextHidePrivate())
	}
	u.Show(strings.Join(items, "\n"))
}

// IndexedItem formats one listing line.
func IndexedItem(index, text string) string {
	return "\t" + index + " " + text
}

// Run shows the welcome banner and executes commands until exit or end of
// input. A failed save is shown and ends the loop with that error.
func (u *TextUI) Run(s Executor, version string) error {
	u.ShowWelcome(version, s.StoragePath())
	for {
		line, err := u.ReadCommand()
		if errors.Is(err, io.EOF) {
			u.ShowGoodbye()
			return nil
		}
		if err != nil {
			return err
		}

		res, err := s.Execute(line)
		u.ShowResult(res)
		if err != nil {
			u.Show(err.Error())
			return err
		}
		if res.Exit {
			u.ShowGoodbye()
			return nil
		}
	}
}
