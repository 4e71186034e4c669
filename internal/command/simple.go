package command

import "strings"

const (
	WordClear = "clear"
	WordHelp  = "help"
	WordExit  = "exit"

	UsageClear = WordClear + ": Clears address book permanently.\n" +
		"Example: " + WordClear
	UsageHelp = WordHelp + ": Shows program usage instructions.\n" +
		"Example: " + WordHelp
	UsageExit = WordExit + ": Exits the program.\n" +
		"Example: " + WordExit

	MessageClearSuccess = "Address book has been cleared!"
	MessageExit         = "Exiting Address Book as requested ..."
)

// AllUsages lists every command's usage in help order.
var AllUsages = strings.Join([]string{
	UsageAdd,
	UsageDelete,
	UsageClear,
	UsageFind,
	UsageList,
	UsageView,
	UsageViewAll,
	UsageHelp,
	UsageExit,
}, "\n")

// Clear empties the book.
type Clear struct {
	data
}

// NewClear returns a clear command.
func NewClear() *Clear { return &Clear{} }

func (c *Clear) Execute() Result {
	c.mustBeBound(WordClear)
	c.book.Clear()
	return Result{Feedback: MessageClearSuccess}
}

// Help shows every usage. It does not read the bound data.
type Help struct {
	data
}

// NewHelp returns a help command.
func NewHelp() *Help { return &Help{} }

func (h *Help) Execute() Result {
	return Result{Feedback: AllUsages}
}

// Exit ends the session.
type Exit struct {
	data
}

// NewExit returns an exit command.
func NewExit() *Exit { return &Exit{} }

func (e *Exit) Execute() Result {
	return Result{Feedback: MessageExit, Exit: true}
}

// Incorrect reports a parse failure as its result.
type Incorrect struct {
	data
	feedback string
}

// NewIncorrect returns a command whose result is feedback.
func NewIncorrect(feedback string) *Incorrect {
	return &Incorrect{feedback: feedback}
}

func (i *Incorrect) Execute() Result {
	return Result{Feedback: i.feedback}
}
