package command

import (
	"github.com/smileynet/addressbook/internal/addressbook"
	"github.com/smileynet/addressbook/internal/person"
)

// Outcome classifies the result of resolving a displayed index.
type Outcome int

const (
	// Found means the index is in range and the person is in the book.
	Found Outcome = iota
	// InvalidIndex means the index is outside [1, len(shown)].
	InvalidIndex
	// NotInBook means the index resolved but the book has no equal person.
	NotInBook
)

// Resolution is the tagged result of Resolve.
type Resolution struct {
	Outcome Outcome
	Person  person.ReadOnly // set when Outcome == Found
}

// Message returns the user-facing error for a failed resolution, or "" on success.
func (r Resolution) Message() string {
	switch r.Outcome {
	case InvalidIndex:
		return MessageInvalidIndex
	case NotInBook:
		return MessageNotInAddressBook
	default:
		return ""
	}
}

// Resolve maps a one-based index into shown and checks the person is still
// in book. Bounds are checked first, so an out-of-range index is always
// reported as InvalidIndex. book is never used for positional lookup.
func Resolve(book *addressbook.AddressBook, shown []person.ReadOnly, index int) Resolution {
	offset := index - 1
	if offset < 0 || offset >= len(shown) {
		return Resolution{Outcome: InvalidIndex}
	}
	target := shown[offset]
	if !book.ContainsPerson(target) {
		return Resolution{Outcome: NotInBook}
	}
	return Resolution{Outcome: Found, Person: target}
}
