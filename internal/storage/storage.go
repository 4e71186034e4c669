// Package storage persists an address book between sessions.
//
// Two backends are provided: a YAML document (FileStore) and a SQLite
// database (SQLiteStore). Both load a missing file as an empty book and
// rewrite the whole book on every Save.
package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/smileynet/addressbook/internal/addressbook"
	"github.com/smileynet/addressbook/internal/person"
)

// Driver names accepted by Open.
const (
	DriverYAML   = "yaml"
	DriverSQLite = "sqlite"
)

// DefaultPath is the storage file used when none is configured.
const DefaultPath = "addressbook.yaml"

var (
	// ErrInvalidPath indicates a storage path with the wrong extension for its driver.
	ErrInvalidPath = errors.New("storage: invalid storage file path")

	// ErrCorrupt indicates stored data that cannot be turned back into a book.
	ErrCorrupt = errors.New("storage: stored data is corrupt")
)

// Storage loads and saves a whole address book.
type Storage interface {
	Load() (*addressbook.AddressBook, error)
	Save(book *addressbook.AddressBook) error
	Path() string
	Close() error
}

// Open returns the backend for driver rooted at path.
// An empty driver is inferred from the path's extension.
func Open(driver, path string) (Storage, error) {
	if path == "" {
		path = DefaultPath
	}
	if driver == "" {
		driver = DriverFor(path)
	}
	switch driver {
	case DriverYAML:
		return NewFileStore(path)
	case DriverSQLite:
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", driver)
	}
}

// DriverFor guesses the driver from a file extension, defaulting to YAML.
func DriverFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite":
		return DriverSQLite
	default:
		return DriverYAML
	}
}

func checkExt(path string, allowed ...string) error {
	ext := strings.ToLower(filepath.Ext(path))
	for _, a := range allowed {
		if ext == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %q must end in %s", ErrInvalidPath, path, strings.Join(allowed, " or "))
}

// record is the stored form of one person, shared by both backends.
type record struct {
	Name    string   `yaml:"name"`
	Phone   detail   `yaml:"phone"`
	Email   detail   `yaml:"email"`
	Address detail   `yaml:"address"`
	Tags    []string `yaml:"tags,omitempty"`
}

type detail struct {
	Value   string `yaml:"value"`
	Private bool   `yaml:"private,omitempty"`
}

func toRecord(p person.ReadOnly) record {
	r := record{
		Name:    p.Name().String(),
		Phone:   detail{Value: p.Phone().String(), Private: p.Phone().IsPrivate()},
		Email:   detail{Value: p.Email().String(), Private: p.Email().IsPrivate()},
		Address: detail{Value: p.Address().String(), Private: p.Address().IsPrivate()},
	}
	for _, t := range p.Tags() {
		r.Tags = append(r.Tags, t.Name())
	}
	return r
}

func (r record) toPerson() (*person.Person, error) {
	name, err := person.NewName(r.Name)
	if err != nil {
		return nil, err
	}
	phone, err := person.NewPhone(r.Phone.Value, r.Phone.Private)
	if err != nil {
		return nil, err
	}
	email, err := person.NewEmail(r.Email.Value, r.Email.Private)
	if err != nil {
		return nil, err
	}
	address, err := person.NewAddress(r.Address.Value, r.Address.Private)
	if err != nil {
		return nil, err
	}
	tags, err := toTags(r.Tags)
	if err != nil {
		return nil, err
	}
	return person.New(name, phone, email, address, tags...), nil
}

func toTags(names []string) ([]person.Tag, error) {
	tags := make([]person.Tag, 0, len(names))
	for _, n := range names {
		t, err := person.NewTag(n)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

// buildBook turns stored records back into a book. Any invalid value or
// duplicate person is reported as ErrCorrupt.
func buildBook(path string, records []record, tagNames []string) (*addressbook.AddressBook, error) {
	persons := make([]person.ReadOnly, 0, len(records))
	for i, r := range records {
		p, err := r.toPerson()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: person %d: %w", ErrCorrupt, path, i+1, err)
		}
		persons = append(persons, p)
	}
	tags, err := toTags(tagNames)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: tags: %w", ErrCorrupt, path, err)
	}
	book, err := addressbook.NewFrom(persons, tags)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, path, err)
	}
	return book, nil
}

func tagNames(book *addressbook.AddressBook) []string {
	var names []string
	for _, t := range book.AllTags() {
		names = append(names, t.Name())
	}
	return names
}
