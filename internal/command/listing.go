package command

import (
	"github.com/smileynet/addressbook/internal/person"
)

const (
	WordFind = "find"
	WordList = "list"

	UsageFind = WordFind + ": Finds all persons whose names contain any of the specified " +
		"keywords (case-sensitive) and displays them as a list with index numbers.\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: " + WordFind + " alice bob charlie"
	UsageList = WordList + ": Displays all persons in the address book as a list with index numbers.\n" +
		"Example: " + WordList
)

// Find lists persons whose name contains any keyword as a whole word.
type Find struct {
	data
	keywords map[string]bool
}

// NewFind returns a find command. Matching is case-sensitive.
func NewFind(keywords ...string) *Find {
	set := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		set[k] = true
	}
	return &Find{keywords: set}
}

// Keywords returns the number of distinct keywords.
func (f *Find) Keywords() int { return len(f.keywords) }

func (f *Find) Execute() Result {
	f.mustBeBound(WordFind)

	var matches []person.ReadOnly
	for _, p := range f.book.AllPersons() {
		for _, w := range p.Name().Words() {
			if f.keywords[w] {
				matches = append(matches, p)
				break
			}
		}
	}
	if matches == nil {
		matches = []person.ReadOnly{}
	}
	return Result{Feedback: PersonsListed(len(matches)), Persons: matches}
}

// List shows every person in the book.
type List struct {
	data
}

// NewList returns a list command.
func NewList() *List { return &List{} }

func (l *List) Execute() Result {
	l.mustBeBound(WordList)

	all := l.book.AllPersons()
	return Result{Feedback: PersonsListed(len(all)), Persons: all}
}
