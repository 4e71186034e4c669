package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/addressbook/internal/app"
	"github.com/smileynet/addressbook/internal/browse"
	"github.com/smileynet/addressbook/internal/command"
	"github.com/smileynet/addressbook/internal/config"
	"github.com/smileynet/addressbook/internal/logging"
	"github.com/smileynet/addressbook/internal/parser"
	"github.com/smileynet/addressbook/internal/storage"
	"github.com/smileynet/addressbook/internal/ui"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// CLI is the top-level command structure for addressbook.
type CLI struct {
	Version kong.VersionFlag `help:"Show version." short:"V"`
	Shell   ShellCmd         `cmd:"" default:"withargs" help:"Start the interactive address book shell (default)."`
	Exec    ExecCmd          `cmd:"" help:"Run a single address book command and exit."`
	Browse  BrowseCmd        `cmd:"" help:"Browse the address book in a terminal UI."`
}

// ShellCmd runs the interactive shell.
type ShellCmd struct {
	File  string `arg:"" optional:"" help:"Storage file (.yaml, .yml, .db or .sqlite)."`
	Plain bool   `help:"Disable colors and line editing."`
}

// ExecCmd runs one command line against the book.
type ExecCmd struct {
	File  string   `short:"f" help:"Storage file (.yaml, .yml, .db or .sqlite)."`
	Words []string `arg:"" passthrough:"" help:"Command and its arguments, e.g. 'view 1'."`
}

// BrowseCmd opens the browse TUI.
type BrowseCmd struct {
	File string `arg:"" optional:"" help:"Storage file (.yaml, .yml, .db or .sqlite)."`
}

// env bundles what every subcommand needs after setup.
type env struct {
	cfg      *config.Config
	logger   *slog.Logger
	closeLog func() error
}

func (e *env) Close() {
	if err := e.closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: closing log: %s\n", err)
	}
}

// loadConfig loads layered config from user and project paths with env
// overrides. A non-empty file replaces the configured storage path.
func loadConfig(file string) (*config.Config, error) {
	home, _ := os.UserHomeDir()
	cfg, err := config.LoadLayered(config.DefaultPaths(home)...)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if file != "" {
		cfg.Storage.Path = file
		cfg.Storage.Driver = storage.DriverFor(file)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setup(file string) (*env, error) {
	cfg, err := loadConfig(file)
	if err != nil {
		return nil, err
	}
	logger, closeLog := logging.New(logging.Config{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	}, os.Stderr)
	return &env{cfg: cfg, logger: logger, closeLog: closeLog}, nil
}

// openSession opens the configured store and loads the book.
// The caller closes the returned store.
func openSession(cfg *config.Config, logger *slog.Logger) (*app.Session, storage.Storage, error) {
	store, err := storage.Open(cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		return nil, nil, err
	}
	s, err := app.Open(store, parser.New(nil), app.WithLogger(logger))
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return s, store, nil
}

func versionString() string {
	return "AddressBook " + version
}

// Run builds real dependencies and starts the shell on stdin/stdout.
func (c *ShellCmd) Run() error {
	e, err := setup(c.File)
	if err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	defer e.Close()

	plain := c.Plain || e.cfg.UI.Plain
	in := ui.NewLineReader(os.Stdin, os.Stdout, ui.InputOptions{
		Plain:       plain,
		HistoryFile: e.cfg.UI.HistoryFile,
	})
	defer func() {
		if err := in.Close(); err != nil {
			e.logger.Warn("closing input", "error", err)
		}
	}()

	return c.run(os.Stdout, in, e.cfg, e.logger)
}

// run wires the shell to w and in, enabling testable wiring.
func (c *ShellCmd) run(w io.Writer, in ui.LineReader, cfg *config.Config, logger *slog.Logger) error {
	textUI := ui.New(in, w, ui.Options{Prompt: cfg.UI.Prompt, Plain: c.Plain || cfg.UI.Plain})

	s, store, err := openSession(cfg, logger)
	if err != nil {
		textUI.Show(err.Error())
		textUI.ShowInitFailed()
		return fmt.Errorf("shell: %w", err)
	}
	defer store.Close()

	return textUI.Run(s, versionString())
}

// Run executes the words as a single command line.
func (c *ExecCmd) Run() error {
	e, err := setup(c.File)
	if err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	defer e.Close()
	return c.run(os.Stdout, e.cfg, e.logger)
}

func (c *ExecCmd) run(w io.Writer, cfg *config.Config, logger *slog.Logger) error {
	s, store, err := openSession(cfg, logger)
	if err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	defer store.Close()

	// Indices refer to the full listing, as if list had just been run.
	if _, err := s.Run(command.NewList()); err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	res, err := s.Execute(strings.Join(c.Words, " "))
	printResult(w, res)
	if err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	return nil
}

// printResult writes a listing and feedback without the shell decoration.
func printResult(w io.Writer, res command.Result) {
	for i, p := range res.Persons {
		_, _ = fmt.Fprintln(w, ui.IndexedItem(fmt.Sprintf("%d.", i+1), p.AsTextHidePrivate()))
	}
	_, _ = fmt.Fprintln(w, res.Feedback)
}

// teaRunner abstracts Bubble Tea program execution for testing.
type teaRunner interface {
	Run() (tea.Model, error)
}

// Run builds real dependencies and launches the browse TUI.
func (b *BrowseCmd) Run() error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("browse: requires a terminal (TTY)")
	}

	e, err := setup(b.File)
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	defer e.Close()

	s, store, err := openSession(e.cfg, e.logger)
	if err != nil {
		return fmt.Errorf("browse: %w", err)
	}
	defer store.Close()

	prog := tea.NewProgram(browse.NewModel(s), tea.WithAltScreen())
	return b.run(true, prog)
}

// run executes the tea program, enabling testable wiring.
func (b *BrowseCmd) run(isTTY bool, prog teaRunner) error {
	if !isTTY {
		return fmt.Errorf("browse: requires a terminal (TTY)")
	}
	_, err := prog.Run()
	return err
}

// Exit codes.
const (
	exitSuccess = 0
	exitCommand = 1
	exitSetup   = 2
)

// exitCode maps an error to the appropriate exit code.
// A command that ran but could not be saved is a command failure;
// everything else happened before a command could run.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *app.SaveError
	if errors.As(err, &se) {
		return exitCommand
	}
	return exitSetup
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("addressbook"),
		kong.Description("A command-line address book with private contact details."),
		kong.Vars{"version": version + " " + commit + " " + date},
	)
	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(exitCode(err))
	}
}
