// Package browse is a Bubble Tea address book browser.
//
// The left pane lists every person; the right pane shows the result of the
// last view or viewall of the selected row. Each action runs the same
// commands the shell does, so index resolution and saving behave alike.
package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/addressbook/internal/command"
	"github.com/smileynet/addressbook/internal/person"
)

const (
	helpBarHeight   = 1
	statusBarHeight = 1
	borderChrome    = 2
)

// Runner executes a built command. app.Session satisfies it.
type Runner interface {
	Run(cmd command.Command) (command.Result, error)
}

// Model is the root Bubble Tea model for the browser.
type Model struct {
	runner  Runner
	persons []person.ReadOnly
	cursor  int
	detail  string
	status  string
	err     error
	width   int
	height  int
	keys    keyMap
	help    help.Model
}

// NewModel creates a Model and lists the book through runner.
func NewModel(r Runner) Model {
	m := Model{
		runner: r,
		keys:   KeyMap(),
		help:   help.New(),
	}
	m.refresh()
	return m
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles window and key messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.persons)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.View):
		m.view(command.NewView(m.cursor + 1))
	case key.Matches(msg, m.keys.ViewAll):
		m.view(command.NewViewAll(m.cursor + 1))
	case key.Matches(msg, m.keys.Refresh):
		m.refresh()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// refresh re-lists the book, keeping the cursor in range.
func (m *Model) refresh() {
	res, err := m.runner.Run(command.NewList())
	m.err = err
	m.status = res.Feedback
	if res.Persons != nil {
		m.persons = res.Persons
	}
	m.cursor = min(m.cursor, max(len(m.persons)-1, 0))
}

func (m *Model) view(cmd command.Command) {
	res, err := m.runner.Run(cmd)
	m.err = err
	m.detail = res.Feedback
	m.status = ""
}

// Cursor returns the selected row, zero-based.
func (m Model) Cursor() int { return m.cursor }

// Detail returns the text shown in the detail pane.
func (m Model) Detail() string { return m.detail }

// Status returns the last listing feedback.
func (m Model) Status() string { return m.status }

// Err returns the last error from running a command.
func (m Model) Err() error { return m.err }

func (m Model) contentHeight() int {
	return max(m.height-borderChrome-helpBarHeight-statusBarHeight, 1)
}

// View renders the two panes, a status line and the help bar.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	leftWidth, rightWidth := PaneWidths(m.width)
	h := m.contentHeight()

	left := focusedBorder().
		Width(max(leftWidth-borderChrome, 0)).
		Height(h).
		Render(m.viewList(h))
	right := unfocusedBorder().
		Width(max(rightWidth-borderChrome, 0)).
		Height(h).
		Render(m.viewDetail())

	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left, panes, m.viewStatus(), m.help.View(m.keys))
}

// viewList renders the numbered names, scrolled so the cursor is visible.
func (m Model) viewList(height int) string {
	if len(m.persons) == 0 {
		return statusStyle.Render("No persons in the address book.")
	}
	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := min(start+height, len(m.persons))

	var b strings.Builder
	for i := start; i < end; i++ {
		line := fmt.Sprintf("%d. %s", i+1, m.persons[i].Name())
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m Model) viewDetail() string {
	if m.detail == "" {
		return statusStyle.Render("Press enter to view, a to view all details.")
	}
	return m.detail
}

func (m Model) viewStatus() string {
	if m.err != nil {
		return errorStyle.Render(m.err.Error())
	}
	return statusStyle.Render(m.status)
}
