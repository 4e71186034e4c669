// Package addressbook holds the authoritative, duplicate-free list of persons
// and the master list of tags used by them.
package addressbook

import (
	"errors"

	"github.com/smileynet/addressbook/internal/person"
)

// Sentinel errors for caller-checkable conditions.
var (
	ErrDuplicatePerson = errors.New("addressbook: person already exists")
	ErrPersonNotFound  = errors.New("addressbook: person not found")
)

// AddressBook is an ordered collection of unique persons plus tags.
// It is not safe for concurrent use.
type AddressBook struct {
	persons []person.ReadOnly
	tags    []person.Tag
}

// New creates an empty AddressBook.
func New() *AddressBook {
	return &AddressBook{}
}

// NewFrom creates an AddressBook holding persons and tags.
// Tags referenced by persons but missing from tags are added to the master list.
func NewFrom(persons []person.ReadOnly, tags []person.Tag) (*AddressBook, error) {
	ab := New()
	for _, t := range tags {
		ab.addTag(t)
	}
	for _, p := range persons {
		if err := ab.AddPerson(p); err != nil {
			return nil, err
		}
	}
	return ab, nil
}

// AddPerson appends p. Returns ErrDuplicatePerson if an equal person exists.
func (ab *AddressBook) AddPerson(p person.ReadOnly) error {
	if ab.ContainsPerson(p) {
		return ErrDuplicatePerson
	}
	for _, t := range p.Tags() {
		ab.addTag(t)
	}
	ab.persons = append(ab.persons, p)
	return nil
}

// RemovePerson removes the person equal to p. Returns ErrPersonNotFound otherwise.
func (ab *AddressBook) RemovePerson(p person.ReadOnly) error {
	for i, existing := range ab.persons {
		if person.SameState(existing, p) {
			ab.persons = append(ab.persons[:i:i], ab.persons[i+1:]...)
			return nil
		}
	}
	return ErrPersonNotFound
}

// ContainsPerson reports whether a person equal to p is present.
func (ab *AddressBook) ContainsPerson(p person.ReadOnly) bool {
	for _, existing := range ab.persons {
		if person.SameState(existing, p) {
			return true
		}
	}
	return false
}

// ContainsTag reports whether t is in the master tag list.
func (ab *AddressBook) ContainsTag(t person.Tag) bool {
	for _, existing := range ab.tags {
		if existing.Name() == t.Name() {
			return true
		}
	}
	return false
}

// Clear removes all persons and tags.
func (ab *AddressBook) Clear() {
	ab.persons = nil
	ab.tags = nil
}

// Len returns the number of persons.
func (ab *AddressBook) Len() int {
	return len(ab.persons)
}

// AllPersons returns the persons in insertion order. The slice is a copy.
func (ab *AddressBook) AllPersons() []person.ReadOnly {
	out := make([]person.ReadOnly, len(ab.persons))
	copy(out, ab.persons)
	return out
}

// AllTags returns the master tag list in insertion order. The slice is a copy.
func (ab *AddressBook) AllTags() []person.Tag {
	out := make([]person.Tag, len(ab.tags))
	copy(out, ab.tags)
	return out
}

// Clone returns an independent container holding the same person values.
// Persons are shared, not copied; this relies on person.ReadOnly being immutable.
func (ab *AddressBook) Clone() *AddressBook {
	return &AddressBook{
		persons: ab.AllPersons(),
		tags:    ab.AllTags(),
	}
}

func (ab *AddressBook) addTag(t person.Tag) {
	if !ab.ContainsTag(t) {
		ab.tags = append(ab.tags, t)
	}
}
