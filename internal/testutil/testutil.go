// Package testutil builds address books, person lists and typical persons for
// tests, and asserts command results.
package testutil

import (
	"testing"

	"github.com/smileynet/addressbook/internal/addressbook"
	"github.com/smileynet/addressbook/internal/command"
	"github.com/smileynet/addressbook/internal/person"
)

// CreateAddressBook returns a book holding persons in order.
// Fails the test if two persons are equal.
func CreateAddressBook(t testing.TB, persons ...person.ReadOnly) *addressbook.AddressBook {
	t.Helper()
	ab := addressbook.New()
	for _, p := range persons {
		if err := ab.AddPerson(p); err != nil {
			t.Fatalf("CreateAddressBook: adding %s: %v", p.Name(), err)
		}
	}
	return ab
}

// CreateList returns persons as a displayed list.
func CreateList(persons ...person.ReadOnly) []person.ReadOnly {
	list := make([]person.ReadOnly, len(persons))
	copy(list, persons)
	return list
}

// Clone copies the book's container; persons and tags are shared.
func Clone(ab *addressbook.AddressBook) *addressbook.AddressBook {
	return ab.Clone()
}

// MustPerson builds a person from raw values, failing the test on invalid input.
func MustPerson(t testing.TB, in command.AddInput) *person.Person {
	t.Helper()
	p, err := in.Build()
	if err != nil {
		t.Fatalf("MustPerson(%q): %v", in.Name, err)
	}
	return p
}

// GenerateTestPerson returns a valid person built from the example values.
func GenerateTestPerson(t testing.TB) *person.Person {
	t.Helper()
	return MustPerson(t, command.AddInput{
		Name:         person.NameExample,
		Phone:        person.PhoneExample,
		Email:        person.EmailExample,
		EmailPrivate: true,
		Address:      person.AddressExample,
	})
}

// AssertCommandResult executes cmd and checks the feedback message, then
// checks that book holds the same persons, in order, as expected.
func AssertCommandResult(t testing.TB, cmd command.Command, expectedMessage string, book, expected *addressbook.AddressBook) command.Result {
	t.Helper()
	result := cmd.Execute()

	if result.Feedback != expectedMessage {
		t.Errorf("Feedback = %q, want %q", result.Feedback, expectedMessage)
	}
	AssertSamePersons(t, book.AllPersons(), expected.AllPersons())
	return result
}

// AssertSamePersons checks got and want hold equal persons in the same order.
func AssertSamePersons(t testing.TB, got, want []person.ReadOnly) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("persons len = %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !person.SameState(got[i], want[i]) {
			t.Errorf("persons[%d] = %s, want %s", i, got[i].AsTextShowAll(), want[i].AsTextShowAll())
		}
	}
}
