package person

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrIllegalValue is wrapped by every field validation failure.
var ErrIllegalValue = errors.New("person: illegal value")

// IllegalValueError reports a field value that violates its constraint.
// Error returns the constraint text so it can be shown to the user as-is.
type IllegalValueError struct {
	Field      string
	Value      string
	Constraint string
}

func (e *IllegalValueError) Error() string {
	return e.Constraint
}

// Unwrap returns ErrIllegalValue for errors.Is support.
func (e *IllegalValueError) Unwrap() error {
	return ErrIllegalValue
}

// Constraint messages shown when a field value is rejected.
const (
	NameConstraints    = "Person names should be spaces or alphanumeric characters"
	PhoneConstraints   = "Person phone numbers should only contain numbers"
	EmailConstraints   = "Person emails should be 2 alphanumeric/period strings separated by '@'"
	AddressConstraints = "Person addresses can be in any format"
	TagConstraints     = "Tags names should be alphanumeric"
)

// Example values that always pass validation.
const (
	NameExample    = "John Doe"
	PhoneExample   = "123456789"
	EmailExample   = "johnd@gmail.com"
	AddressExample = "123, some street"
	TagExample     = "friends"
)

var (
	nameRe    = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)
	phoneRe   = regexp.MustCompile(`^[0-9]+$`)
	emailRe   = regexp.MustCompile(`^[\w.]+@[\w.]+$`)
	addressRe = regexp.MustCompile(`^.+$`)
	tagRe     = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
)

func check(field, value string, re *regexp.Regexp, constraint string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if !re.MatchString(trimmed) {
		return "", &IllegalValueError{Field: field, Value: value, Constraint: constraint}
	}
	return trimmed, nil
}

// Name is a person's full name. Names are never private.
type Name struct {
	full string
}

// NewName validates and trims s.
func NewName(s string) (Name, error) {
	v, err := check("name", s, nameRe, NameConstraints)
	if err != nil {
		return Name{}, err
	}
	return Name{full: v}, nil
}

func (n Name) String() string { return n.full }

// Words splits the name on whitespace.
func (n Name) Words() []string {
	return strings.Fields(n.full)
}

// detail is a contact value that may be marked private.
type detail struct {
	value   string
	private bool
}

func (d detail) String() string { return d.value }

// IsPrivate reports whether the value is hidden from non-privileged views.
func (d detail) IsPrivate() bool { return d.private }

// Phone is a numeric phone number.
type Phone struct{ detail }

// NewPhone validates and trims v.
func NewPhone(v string, private bool) (Phone, error) {
	s, err := check("phone", v, phoneRe, PhoneConstraints)
	if err != nil {
		return Phone{}, err
	}
	return Phone{detail{value: s, private: private}}, nil
}

// Email is an address of the form local@domain.
type Email struct{ detail }

// NewEmail validates and trims v.
func NewEmail(v string, private bool) (Email, error) {
	s, err := check("email", v, emailRe, EmailConstraints)
	if err != nil {
		return Email{}, err
	}
	return Email{detail{value: s, private: private}}, nil
}

// Address is a free-form postal address.
type Address struct{ detail }

// NewAddress validates and trims v.
func NewAddress(v string, private bool) (Address, error) {
	s, err := check("address", v, addressRe, AddressConstraints)
	if err != nil {
		return Address{}, err
	}
	return Address{detail{value: s, private: private}}, nil
}

// Tag is an alphanumeric label attached to a person.
type Tag struct {
	name string
}

// NewTag validates and trims name.
func NewTag(name string) (Tag, error) {
	s, err := check("tag", name, tagRe, TagConstraints)
	if err != nil {
		return Tag{}, err
	}
	return Tag{name: s}, nil
}

// Name returns the bare tag name.
func (t Tag) Name() string { return t.name }

// String renders the tag as "[name]".
func (t Tag) String() string {
	return fmt.Sprintf("[%s]", t.name)
}
