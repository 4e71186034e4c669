package command

import (
	"fmt"

	"github.com/smileynet/addressbook/internal/person"
)

// Command words and usage for the view commands.
const (
	WordView    = "view"
	WordViewAll = "viewall"

	UsageView = WordView + ": Views the non-private details of the person " +
		"identified by the index number in the last shown person listing.\n" +
		"Parameters: INDEX\n" +
		"Example: " + WordView + " 1"
	UsageViewAll = WordViewAll + ": Views all details of the person " +
		"identified by the index number in the last shown person listing.\n" +
		"Parameters: INDEX\n" +
		"Example: " + WordViewAll + " 1"

	MessageViewPersonDetails = "Viewing person: %s"
)

// View shows one person from the last listing. The visibility decides
// whether private fields are included; view and viewall differ only there.
type View struct {
	data
	index      int
	visibility person.Visibility
}

// NewView returns a view command that hides private fields.
func NewView(index int) *View {
	return &View{index: index, visibility: person.HidePrivate}
}

// NewViewAll returns a view command that shows every field.
func NewViewAll(index int) *View {
	return &View{index: index, visibility: person.ShowAll}
}

// Index returns the one-based target index.
func (v *View) Index() int { return v.index }

// Visibility returns the rendering mode.
func (v *View) Visibility() person.Visibility { return v.visibility }

// Word returns the command word this view answers to.
func (v *View) Word() string {
	if v.visibility == person.ShowAll {
		return WordViewAll
	}
	return WordView
}

// Execute resolves the index and renders the person. The book is not modified.
func (v *View) Execute() Result {
	v.mustBeBound(v.Word())

	res := Resolve(v.book, v.shown, v.index)
	if res.Outcome != Found {
		return Result{Feedback: res.Message()}
	}
	return Result{Feedback: ViewDetails(res.Person, v.visibility)}
}

// ViewDetails formats the view message for p.
func ViewDetails(p person.ReadOnly, v person.Visibility) string {
	return fmt.Sprintf(MessageViewPersonDetails, person.Render(p, v))
}
