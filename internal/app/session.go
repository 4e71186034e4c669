// Package app runs commands against a loaded address book and keeps it saved.
package app

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/smileynet/addressbook/internal/addressbook"
	"github.com/smileynet/addressbook/internal/command"
	"github.com/smileynet/addressbook/internal/person"
)

// Store loads and saves the whole book.
// Defined here (the consumer); storage.Storage satisfies it.
type Store interface {
	Load() (*addressbook.AddressBook, error)
	Save(book *addressbook.AddressBook) error
	Path() string
}

// Parser turns a line of input into a command.
type Parser interface {
	Parse(input string) command.Command
}

// SaveError reports that a command ran but its result could not be persisted.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("app: saving %s: %s", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// Session holds the book, the last listing shown to the user and the
// store the book is saved to after every command.
type Session struct {
	book      *addressbook.AddressBook
	store     Store
	parser    Parser
	lastShown []person.ReadOnly
	logger    *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// Open loads the book from store and returns a ready session.
func Open(store Store, p Parser, opts ...Option) (*Session, error) {
	s := &Session{
		store:  store,
		parser: p,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	book, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("app: loading %s: %w", store.Path(), err)
	}
	s.book = book
	s.logger.Info("address book loaded", "storage", store.Path(), "persons", book.Len())
	return s, nil
}

// Book returns the live address book.
func (s *Session) Book() *addressbook.AddressBook { return s.book }

// LastShown returns the listing that index arguments refer to.
func (s *Session) LastShown() []person.ReadOnly {
	out := make([]person.ReadOnly, len(s.lastShown))
	copy(out, s.lastShown)
	return out
}

// StoragePath returns where the book is saved.
func (s *Session) StoragePath() string { return s.store.Path() }

// Execute parses line and runs the resulting command.
func (s *Session) Execute(line string) (command.Result, error) {
	return s.Run(s.parser.Parse(line))
}

// Run binds cmd to the book and the last listing, executes it, records any
// new listing and saves the book. The result is returned even when saving
// fails.
func (s *Session) Run(cmd command.Command) (command.Result, error) {
	cmd.SetData(s.book, s.lastShown)
	res := cmd.Execute()
	if res.Persons != nil {
		s.lastShown = res.Persons
	}
	s.logger.Debug("command executed",
		"command", commandName(cmd),
		"listed", len(res.Persons),
		"exit", res.Exit)

	if err := s.store.Save(s.book); err != nil {
		s.logger.Error("saving address book failed", "storage", s.store.Path(), "error", err)
		return res, &SaveError{Path: s.store.Path(), Err: err}
	}
	return res, nil
}

// commandName turns *command.View into "view".
func commandName(cmd command.Command) string {
	if w, ok := cmd.(interface{ Word() string }); ok {
		return w.Word()
	}
	name := fmt.Sprintf("%T", cmd)
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return strings.ToLower(name)
}
