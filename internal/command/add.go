package command

import (
	"errors"
	"fmt"

	"github.com/smileynet/addressbook/internal/addressbook"
	"github.com/smileynet/addressbook/internal/person"
)

const (
	WordAdd = "add"

	UsageAdd = WordAdd + ": Adds a person to the address book. " +
		"Contact details can be marked private by prepending 'p' to the prefix.\n" +
		"Parameters: NAME [p]p/PHONE [p]e/EMAIL [p]a/ADDRESS  [t/TAG]...\n" +
		"Example: " + WordAdd + " John Doe p/98765432 e/johnd@gmail.com a/311, Clementi Ave 2, #02-25 t/friends t/owesMoney"

	MessageAddSuccess      = "New person added: %s"
	MessageDuplicatePerson = "This person already exists in the address book"
)

// AddInput carries the raw field values of a new person.
type AddInput struct {
	Name           string
	Phone          string
	PhonePrivate   bool
	Email          string
	EmailPrivate   bool
	Address        string
	AddressPrivate bool
	Tags           []string
}

// Build validates every field and returns the person.
// The first invalid field aborts with a *person.IllegalValueError.
func (in AddInput) Build() (*person.Person, error) {
	name, err := person.NewName(in.Name)
	if err != nil {
		return nil, err
	}
	phone, err := person.NewPhone(in.Phone, in.PhonePrivate)
	if err != nil {
		return nil, err
	}
	email, err := person.NewEmail(in.Email, in.EmailPrivate)
	if err != nil {
		return nil, err
	}
	address, err := person.NewAddress(in.Address, in.AddressPrivate)
	if err != nil {
		return nil, err
	}
	tags := make([]person.Tag, 0, len(in.Tags))
	for _, raw := range in.Tags {
		t, err := person.NewTag(raw)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return person.New(name, phone, email, address, tags...), nil
}

// Add inserts a new person into the book.
type Add struct {
	data
	toAdd *person.Person
}

// NewAdd validates in and returns the command.
func NewAdd(in AddInput) (*Add, error) {
	p, err := in.Build()
	if err != nil {
		return nil, err
	}
	return &Add{toAdd: p}, nil
}

// Person returns the person that will be added.
func (a *Add) Person() person.ReadOnly { return a.toAdd }

func (a *Add) Execute() Result {
	a.mustBeBound(WordAdd)

	if err := a.book.AddPerson(a.toAdd); err != nil {
		if errors.Is(err, addressbook.ErrDuplicatePerson) {
			return Result{Feedback: MessageDuplicatePerson}
		}
		return Result{Feedback: err.Error()}
	}
	return Result{Feedback: fmt.Sprintf(MessageAddSuccess, a.toAdd.AsTextShowAll())}
}
