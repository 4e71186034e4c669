package command

import (
	"fmt"
)

const (
	WordDelete = "delete"

	UsageDelete = WordDelete + ": Deletes the person identified by the index number used in the last person listing.\n" +
		"Parameters: INDEX\n" +
		"Example: " + WordDelete + " 1"

	MessageDeleteSuccess = "Deleted Person: %s"
)

// Delete removes the person at a displayed index from the book.
type Delete struct {
	data
	index int
}

// NewDelete returns a delete command for the one-based index.
func NewDelete(index int) *Delete {
	return &Delete{index: index}
}

// Index returns the one-based target index.
func (d *Delete) Index() int { return d.index }

func (d *Delete) Execute() Result {
	d.mustBeBound(WordDelete)

	res := Resolve(d.book, d.shown, d.index)
	if res.Outcome != Found {
		return Result{Feedback: res.Message()}
	}
	if err := d.book.RemovePerson(res.Person); err != nil {
		return Result{Feedback: MessageNotInAddressBook}
	}
	return Result{Feedback: fmt.Sprintf(MessageDeleteSuccess, res.Person.AsTextShowAll())}
}
