// Package person defines contact records and how they are rendered.
package person

import (
	"log/slog"
	"strings"
)

// ReadOnly is the view of a contact exposed to commands and displays.
// Implementations must be immutable.
type ReadOnly interface {
	Name() Name
	Phone() Phone
	Email() Email
	Address() Address
	Tags() []Tag

	// IsSameStateAs reports structural equality over name, phone, email and address.
	IsSameStateAs(other ReadOnly) bool

	AsTextShowAll() string
	AsTextHidePrivate() string
}

// Person is the concrete, immutable contact record.
type Person struct {
	name    Name
	phone   Phone
	email   Email
	address Address
	tags    []Tag
}

var _ ReadOnly = (*Person)(nil)

// New builds a Person. Duplicate tags are dropped, keeping first occurrences.
func New(name Name, phone Phone, email Email, address Address, tags ...Tag) *Person {
	return &Person{
		name:    name,
		phone:   phone,
		email:   email,
		address: address,
		tags:    uniqueTags(tags),
	}
}

// FromReadOnly copies any ReadOnly into a Person.
func FromReadOnly(p ReadOnly) *Person {
	if pp, ok := p.(*Person); ok {
		return pp
	}
	return New(p.Name(), p.Phone(), p.Email(), p.Address(), p.Tags()...)
}

func (p *Person) Name() Name       { return p.name }
func (p *Person) Phone() Phone     { return p.phone }
func (p *Person) Email() Email     { return p.email }
func (p *Person) Address() Address { return p.address }

// Tags returns a copy of the person's tags.
func (p *Person) Tags() []Tag {
	out := make([]Tag, len(p.tags))
	copy(out, p.tags)
	return out
}

func (p *Person) IsSameStateAs(other ReadOnly) bool {
	return SameState(p, other)
}

func (p *Person) AsTextShowAll() string     { return Render(p, ShowAll) }
func (p *Person) AsTextHidePrivate() string { return Render(p, HidePrivate) }

// String renders the person with every field shown.
func (p *Person) String() string { return p.AsTextShowAll() }

// LogValue identifies the person by name only; contact details are logged
// by callers under keys the logging redactor recognizes.
func (p *Person) LogValue() slog.Value {
	return slog.GroupValue(slog.String("name", p.name.String()))
}

// SameState compares two records by the values of their four fields.
// Privacy flags and tags do not take part.
func SameState(a, b ReadOnly) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Name().String() == b.Name().String() &&
		a.Phone().String() == b.Phone().String() &&
		a.Email().String() == b.Email().String() &&
		a.Address().String() == b.Address().String()
}

// Visibility selects which fields Render includes.
type Visibility int

const (
	// HidePrivate omits private fields.
	HidePrivate Visibility = iota
	// ShowAll includes every field and marks private ones.
	ShowAll
)

func (v Visibility) String() string {
	if v == ShowAll {
		return "show-all"
	}
	return "hide-private"
}

const privateMarker = "(private) "

// Render formats p as a single detail line.
func Render(p ReadOnly, v Visibility) string {
	var b strings.Builder
	b.WriteString(p.Name().String())

	writeDetail := func(label string, d interface {
		String() string
		IsPrivate() bool
	}) {
		if d.IsPrivate() && v == HidePrivate {
			return
		}
		b.WriteString(" ")
		b.WriteString(label)
		b.WriteString(": ")
		if d.IsPrivate() {
			b.WriteString(privateMarker)
		}
		b.WriteString(d.String())
	}
	writeDetail("Phone", p.Phone())
	writeDetail("Email", p.Email())
	writeDetail("Address", p.Address())

	b.WriteString(" Tags: ")
	for _, t := range p.Tags() {
		b.WriteString(t.String())
	}
	return b.String()
}

func uniqueTags(tags []Tag) []Tag {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]Tag, 0, len(tags))
	for _, t := range tags {
		if seen[t.name] {
			continue
		}
		seen[t.name] = true
		out = append(out, t)
	}
	return out
}
