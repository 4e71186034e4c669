package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/smileynet/addressbook/internal/addressbook"
)

const schema = `
CREATE TABLE IF NOT EXISTS persons (
	position        INTEGER PRIMARY KEY,
	name            TEXT    NOT NULL,
	phone           TEXT    NOT NULL,
	phone_private   INTEGER NOT NULL DEFAULT 0,
	email           TEXT    NOT NULL,
	email_private   INTEGER NOT NULL DEFAULT 0,
	address         TEXT    NOT NULL,
	address_private INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS person_tags (
	person_position INTEGER NOT NULL REFERENCES persons(position) ON DELETE CASCADE,
	seq             INTEGER NOT NULL,
	tag             TEXT    NOT NULL,
	PRIMARY KEY (person_position, seq)
);

CREATE TABLE IF NOT EXISTS tags (
	seq  INTEGER PRIMARY KEY,
	name TEXT    NOT NULL
);
`

// SQLiteStore persists the book in a SQLite database file.
// The connection is opened on first use and held until Close.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

// NewSQLiteStore creates a SQLiteStore for path, which must end in .db or .sqlite.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := checkExt(path, ".db", ".sqlite"); err != nil {
		return nil, err
	}
	return &SQLiteStore{path: path}, nil
}

// Path returns the database file path.
func (s *SQLiteStore) Path() string { return s.path }

// Close releases the database connection if one is open.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil {
		return fmt.Errorf("storage: closing %s: %w", s.path, err)
	}
	return nil
}

func (s *SQLiteStore) open() (*sql.DB, error) {
	if s.db != nil {
		return s.db, nil
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: creating directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("storage: opening %s: %w", s.path, err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA foreign_keys=ON",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("storage: %s: %w", pragma, err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: creating schema: %w", err)
	}
	s.db = db
	return db, nil
}

// Save replaces the stored book inside one transaction.
func (s *SQLiteStore) Save(book *addressbook.AddressBook) error {
	db, err := s.open()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("storage: beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"person_tags", "persons", "tags"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("storage: clearing %s: %w", table, err)
		}
	}

	for i, p := range book.AllPersons() {
		r := toRecord(p)
		_, err := tx.Exec(`
			INSERT INTO persons (position, name, phone, phone_private, email, email_private, address, address_private)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			i, r.Name, r.Phone.Value, r.Phone.Private, r.Email.Value, r.Email.Private, r.Address.Value, r.Address.Private)
		if err != nil {
			return fmt.Errorf("storage: inserting person %d: %w", i+1, err)
		}
		for j, tag := range r.Tags {
			if _, err := tx.Exec("INSERT INTO person_tags (person_position, seq, tag) VALUES (?, ?, ?)", i, j, tag); err != nil {
				return fmt.Errorf("storage: inserting tag for person %d: %w", i+1, err)
			}
		}
	}

	for i, name := range tagNames(book) {
		if _, err := tx.Exec("INSERT INTO tags (seq, name) VALUES (?, ?)", i, name); err != nil {
			return fmt.Errorf("storage: inserting tag %q: %w", name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: committing: %w", err)
	}
	return nil
}

// Load reads the book. A missing database file yields an empty book and is
// not created.
func (s *SQLiteStore) Load() (*addressbook.AddressBook, error) {
	if s.db == nil {
		if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
			return addressbook.New(), nil
		}
	}
	db, err := s.open()
	if err != nil {
		return nil, err
	}

	records, err := loadRecords(db)
	if err != nil {
		return nil, fmt.Errorf("storage: reading %s: %w", s.path, err)
	}
	names, err := loadTagNames(db)
	if err != nil {
		return nil, fmt.Errorf("storage: reading %s: %w", s.path, err)
	}
	return buildBook(s.path, records, names)
}

func loadRecords(db *sql.DB) ([]record, error) {
	rows, err := db.Query(`
		SELECT position, name, phone, phone_private, email, email_private, address, address_private
		FROM persons ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		records   []record
		positions = map[int64]int{}
	)
	for rows.Next() {
		var (
			pos int64
			r   record
		)
		if err := rows.Scan(&pos, &r.Name, &r.Phone.Value, &r.Phone.Private,
			&r.Email.Value, &r.Email.Private, &r.Address.Value, &r.Address.Private); err != nil {
			return nil, err
		}
		positions[pos] = len(records)
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tagRows, err := db.Query("SELECT person_position, tag FROM person_tags ORDER BY person_position, seq")
	if err != nil {
		return nil, err
	}
	defer tagRows.Close()
	for tagRows.Next() {
		var (
			pos int64
			tag string
		)
		if err := tagRows.Scan(&pos, &tag); err != nil {
			return nil, err
		}
		if i, ok := positions[pos]; ok {
			records[i].Tags = append(records[i].Tags, tag)
		}
	}
	return records, tagRows.Err()
}

func loadTagNames(db *sql.DB) ([]string, error) {
	rows, err := db.Query("SELECT name FROM tags ORDER BY seq")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
