// Package command implements the address book's textual commands.
//
// A command is constructed from parsed arguments, bound to the address book
// and the list the user last saw with SetData, then executed once. Errors the
// user can cause are reported in Result.Feedback, never as Go errors.
package command

import (
	"fmt"

	"github.com/smileynet/addressbook/internal/addressbook"
	"github.com/smileynet/addressbook/internal/person"
)

// Messages shared by several commands.
const (
	MessageInvalidCommandFormat = "Invalid command format! \n%s"
	MessageInvalidIndex         = "The person index provided is invalid"
	MessageNotInAddressBook     = "Person could not be found in address book"
	MessagePersonsListed        = "%d persons listed!"
)

// Result is the outcome of executing a command.
type Result struct {
	// Feedback is the message shown to the user.
	Feedback string

	// Persons is the listing produced by the command, or nil when the
	// command does not change what the user sees.
	Persons []person.ReadOnly

	// Exit asks the caller to end the session.
	Exit bool
}

// Command is the contract every command satisfies.
type Command interface {
	SetData(book *addressbook.AddressBook, shown []person.ReadOnly)
	Execute() Result
}

// data holds the state a command is bound to.
type data struct {
	book  *addressbook.AddressBook
	shown []person.ReadOnly
	bound bool
}

// SetData binds the command to book and the list last shown to the user.
func (d *data) SetData(book *addressbook.AddressBook, shown []person.ReadOnly) {
	d.book = book
	d.shown = shown
	d.bound = true
}

// mustBeBound panics when Execute is reached without SetData (programmer error).
func (d *data) mustBeBound(word string) {
	if !d.bound || d.book == nil {
		panic(fmt.Sprintf("command: %s executed before SetData", word))
	}
}

// PersonsListed formats the summary line for a listing of n persons.
func PersonsListed(n int) string {
	return fmt.Sprintf(MessagePersonsListed, n)
}

// InvalidFormat formats the invalid-format message with the given usage text.
func InvalidFormat(usage string) string {
	return fmt.Sprintf(MessageInvalidCommandFormat, usage)
}
