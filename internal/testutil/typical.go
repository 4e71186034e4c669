package testutil

import (
	"testing"

	"github.com/smileynet/addressbook/internal/addressbook"
	"github.com/smileynet/addressbook/internal/command"
	"github.com/smileynet/addressbook/internal/person"
)

// TypicalPersons is a fixed cast with varied privacy settings.
type TypicalPersons struct {
	Amy   *person.Person // all public
	Bill  *person.Person // address private
	Candy *person.Person // phone and address private
	Dan   *person.Person // all private
	Eve   *person.Person // email private, tagged
	Fay   *person.Person // all public, tagged
}

// NewTypicalPersons builds the typical cast.
func NewTypicalPersons(t testing.TB) TypicalPersons {
	t.Helper()
	return TypicalPersons{
		Amy: MustPerson(t, command.AddInput{
			Name: "Amy Buck", Phone: "91119111", Email: "ab@gmail.com", Address: "1 Clementi Road",
		}),
		Bill: MustPerson(t, command.AddInput{
			Name: "Bill Clint", Phone: "92229222", Email: "bc@gmail.com",
			Address: "2 Clementi Road", AddressPrivate: true,
		}),
		Candy: MustPerson(t, command.AddInput{
			Name: "Candy Destiny", Phone: "93339333", PhonePrivate: true, Email: "cd@gmail.com",
			Address: "3 Clementi Road", AddressPrivate: true,
		}),
		Dan: MustPerson(t, command.AddInput{
			Name: "Dan Smith", Phone: "1234556", PhonePrivate: true, Email: "ss@tt.com", EmailPrivate: true,
			Address: "NUS", AddressPrivate: true, Tags: []string{"Test"},
		}),
		Eve: MustPerson(t, command.AddInput{
			Name: "Eve Tan", Phone: "95559555", Email: "et@gmail.com", EmailPrivate: true,
			Address: "5 Kent Ridge", Tags: []string{"friends", "colleagues"},
		}),
		Fay: MustPerson(t, command.AddInput{
			Name: "Fay Lim", Phone: "96669666", Email: "fl@gmail.com",
			Address: "6 Kent Ridge", Tags: []string{"friends"},
		}),
	}
}

// All returns the typical persons in book order.
func (tp TypicalPersons) All() []person.ReadOnly {
	return []person.ReadOnly{tp.Amy, tp.Bill, tp.Candy, tp.Dan, tp.Eve, tp.Fay}
}

// AddressBook returns a book holding every typical person.
func (tp TypicalPersons) AddressBook(t testing.TB) *addressbook.AddressBook {
	t.Helper()
	return CreateAddressBook(t, tp.All()...)
}
