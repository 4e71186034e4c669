package browse

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/smileynet/addressbook/internal/addressbook"
	"github.com/smileynet/addressbook/internal/app"
	"github.com/smileynet/addressbook/internal/command"
	"github.com/smileynet/addressbook/internal/parser"
	"github.com/smileynet/addressbook/internal/person"
	"github.com/smileynet/addressbook/internal/testutil"
)

type bookStore struct {
	book    *addressbook.AddressBook
	saveErr error
}

func (s *bookStore) Load() (*addressbook.AddressBook, error) { return s.book, nil }
func (s *bookStore) Save(*addressbook.AddressBook) error     { return s.saveErr }
func (s *bookStore) Path() string                            { return "test.yaml" }

func newTypicalModel(t *testing.T) (Model, testutil.TypicalPersons) {
	t.Helper()
	td := testutil.NewTypicalPersons(t)
	s, err := app.Open(&bookStore{book: td.AddressBook(t)}, parser.New(nil))
	if err != nil {
		t.Fatal(err)
	}
	return NewModel(s), td
}

func press(t *testing.T, m Model, msgs ...tea.KeyMsg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyA     = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}
)

func TestNewModel_ListsBook(t *testing.T) {
	m, td := newTypicalModel(t)

	testutil.AssertSamePersons(t, m.persons, td.All())
	if m.Status() != "6 persons listed!" {
		t.Errorf("Status() = %q", m.Status())
	}
	if m.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", m.Cursor())
	}
}

func TestModel_CursorStaysInRange(t *testing.T) {
	m, _ := newTypicalModel(t)

	m = press(t, m, keyUp)
	if m.Cursor() != 0 {
		t.Errorf("after up at top: Cursor() = %d, want 0", m.Cursor())
	}
	for range 10 {
		m = press(t, m, keyDown)
	}
	if m.Cursor() != 5 {
		t.Errorf("after many downs: Cursor() = %d, want 5", m.Cursor())
	}
}

func TestModel_ViewAndViewAll(t *testing.T) {
	// Given: the cursor on Dan, who keeps everything private
	m, td := newTypicalModel(t)
	m = press(t, m, keyDown, keyDown, keyDown)

	// When: enter is pressed
	m = press(t, m, keyEnter)

	// Then: the detail pane hides private fields
	if want := command.ViewDetails(td.Dan, person.HidePrivate); m.Detail() != want {
		t.Errorf("view Detail() = %q, want %q", m.Detail(), want)
	}

	// When: a is pressed
	m = press(t, m, keyA)

	// Then: every field is shown
	if want := command.ViewDetails(td.Dan, person.ShowAll); m.Detail() != want {
		t.Errorf("viewall Detail() = %q, want %q", m.Detail(), want)
	}
}

func TestModel_EmptyBook(t *testing.T) {
	s, err := app.Open(&bookStore{book: addressbook.New()}, parser.New(nil))
	if err != nil {
		t.Fatal(err)
	}
	m := NewModel(s)

	m = press(t, m, keyDown, keyEnter)

	if m.Cursor() != 0 {
		t.Errorf("Cursor() = %d, want 0", m.Cursor())
	}
	if m.Detail() != command.MessageInvalidIndex {
		t.Errorf("Detail() = %q, want %q", m.Detail(), command.MessageInvalidIndex)
	}
}

func TestModel_SaveErrorShown(t *testing.T) {
	td := testutil.NewTypicalPersons(t)
	s, err := app.Open(&bookStore{book: td.AddressBook(t), saveErr: errors.New("read-only")}, parser.New(nil))
	if err != nil {
		t.Fatal(err)
	}
	m := NewModel(s)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	m = updated.(Model)

	if m.Err() == nil {
		t.Fatal("Err() = nil, want save error")
	}
	if !strings.Contains(m.View(), "read-only") {
		t.Error("View() should show the save error")
	}
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		m, _ := newTypicalModel(t)
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("%s should return a quit command", msg)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s produced %T, want tea.QuitMsg", msg, cmd())
		}
	}
}

func TestModel_ViewBeforeSize(t *testing.T) {
	m, _ := newTypicalModel(t)
	if m.View() != "Initializing..." {
		t.Errorf("View() = %q before WindowSizeMsg", m.View())
	}
}

func TestPaneWidths(t *testing.T) {
	tests := []struct {
		total, left, right int
	}{
		{0, 0, 0},
		{30, MinLeftWidth, 30 - MinLeftWidth},
		{120, 40, 80},
		{10, MinLeftWidth, 0},
	}
	for _, tt := range tests {
		l, r := PaneWidths(tt.total)
		if l != tt.left || r != tt.right {
			t.Errorf("PaneWidths(%d) = (%d, %d), want (%d, %d)", tt.total, l, r, tt.left, tt.right)
		}
	}
}

// TestModel_Teatest_ViewAll drives the program end to end via teatest.
func TestModel_Teatest_ViewAll(t *testing.T) {
	m, td := newTypicalModel(t)

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(100, 24))

	tm.Send(keyDown)
	tm.Send(keyDown)
	tm.Send(keyA)
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	tm.WaitFinished(t, teatest.WithFinalTimeout(2*time.Second))

	final := tm.FinalModel(t).(Model)
	if final.Cursor() != 2 {
		t.Errorf("Cursor() = %d, want 2", final.Cursor())
	}
	if want := command.ViewDetails(td.Candy, person.ShowAll); final.Detail() != want {
		t.Errorf("Detail() = %q, want %q", final.Detail(), want)
	}
}
