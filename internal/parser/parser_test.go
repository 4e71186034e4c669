package parser

import (
	"errors"
	"testing"

	"github.com/smileynet/addressbook/internal/command"
	"github.com/smileynet/addressbook/internal/person"
)

func feedbackOf(t *testing.T, cmd command.Command) string {
	t.Helper()
	inc, ok := cmd.(*command.Incorrect)
	if !ok {
		t.Fatalf("Parse() = %T, want *command.Incorrect", cmd)
	}
	return inc.Execute().Feedback
}

func TestParse_EmptyAndUnknown(t *testing.T) {
	p := New(nil)

	for _, input := range []string{"", "   ", "\t"} {
		got := feedbackOf(t, p.Parse(input))
		if want := command.InvalidFormat(command.UsageHelp); got != want {
			t.Errorf("Parse(%q) feedback = %q, want %q", input, got, want)
		}
	}

	for _, input := range []string{"unknowncommand", "VIEW 1", "views 1"} {
		if _, ok := p.Parse(input).(*command.Help); !ok {
			t.Errorf("Parse(%q) should fall back to help", input)
		}
	}
}

func TestParse_NoArgCommands(t *testing.T) {
	p := New(nil)

	tests := []struct {
		input string
		check func(command.Command) bool
	}{
		{"help", func(c command.Command) bool { _, ok := c.(*command.Help); return ok }},
		{"help extra words", func(c command.Command) bool { _, ok := c.(*command.Help); return ok }},
		{"list", func(c command.Command) bool { _, ok := c.(*command.List); return ok }},
		{"clear", func(c command.Command) bool { _, ok := c.(*command.Clear); return ok }},
		{"exit now", func(c command.Command) bool { _, ok := c.(*command.Exit); return ok }},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := p.Parse(tt.input); !tt.check(got) {
				t.Errorf("Parse(%q) = %T", tt.input, got)
			}
		})
	}
}

func TestParse_IndexedCommands(t *testing.T) {
	p := New(nil)

	t.Run("valid index", func(t *testing.T) {
		tests := []struct {
			input      string
			word       string
			index      int
			visibility person.Visibility
		}{
			{"view 1", command.WordView, 1, person.HidePrivate},
			{"  view   3  ", command.WordView, 3, person.HidePrivate},
			{"viewall 2", command.WordViewAll, 2, person.ShowAll},
			{"viewall -4", command.WordViewAll, -4, person.ShowAll},
		}
		for _, tt := range tests {
			v, ok := p.Parse(tt.input).(*command.View)
			if !ok {
				t.Fatalf("Parse(%q) is not a view", tt.input)
			}
			if v.Word() != tt.word || v.Index() != tt.index || v.Visibility() != tt.visibility {
				t.Errorf("Parse(%q) = (%q, %d, %v), want (%q, %d, %v)",
					tt.input, v.Word(), v.Index(), v.Visibility(), tt.word, tt.index, tt.visibility)
			}
		}

		d, ok := p.Parse("delete 5").(*command.Delete)
		if !ok || d.Index() != 5 {
			t.Errorf("Parse(delete 5) = %#v", d)
		}
	})

	t.Run("missing or non-numeric index", func(t *testing.T) {
		tests := []struct {
			input string
			usage string
		}{
			{"view", command.UsageView},
			{"view abc", command.UsageView},
			{"view 1 2", command.UsageView},
			{"viewall", command.UsageViewAll},
			{"viewall 1.5", command.UsageViewAll},
			{"delete x", command.UsageDelete},
		}
		for _, tt := range tests {
			got := feedbackOf(t, p.Parse(tt.input))
			if want := command.InvalidFormat(tt.usage); got != want {
				t.Errorf("Parse(%q) feedback = %q, want %q", tt.input, got, want)
			}
		}
	})
}

func TestParse_Find(t *testing.T) {
	p := New(nil)

	f, ok := p.Parse("find Amy  Bill Amy").(*command.Find)
	if !ok {
		t.Fatal("Parse(find ...) is not a find")
	}
	if f.Keywords() != 2 {
		t.Errorf("Keywords() = %d, want 2", f.Keywords())
	}

	got := feedbackOf(t, p.Parse("find   "))
	if want := command.InvalidFormat(command.UsageFind); got != want {
		t.Errorf("feedback = %q, want %q", got, want)
	}
}

func TestParse_Add(t *testing.T) {
	p := New(nil)

	t.Run("privacy prefixes and tags", func(t *testing.T) {
		// Given: phone public, email and address private, two tags
		input := "add John Doe p/98765432 pe/johnd@gmail.com pa/311, Clementi Ave 2 t/friends t/owesMoney"

		// When: parsed
		a, ok := p.Parse(input).(*command.Add)
		if !ok {
			t.Fatalf("Parse() = %T, want *command.Add", p.Parse(input))
		}

		// Then: every field carries its value and privacy
		got := a.Person()
		if got.Name().String() != "John Doe" {
			t.Errorf("Name = %q", got.Name())
		}
		if got.Phone().String() != "98765432" || got.Phone().IsPrivate() {
			t.Errorf("Phone = %q private=%v", got.Phone(), got.Phone().IsPrivate())
		}
		if got.Email().String() != "johnd@gmail.com" || !got.Email().IsPrivate() {
			t.Errorf("Email = %q private=%v", got.Email(), got.Email().IsPrivate())
		}
		if got.Address().String() != "311, Clementi Ave 2" || !got.Address().IsPrivate() {
			t.Errorf("Address = %q private=%v", got.Address(), got.Address().IsPrivate())
		}
		tags := got.Tags()
		if len(tags) != 2 || tags[0].Name() != "friends" || tags[1].Name() != "owesMoney" {
			t.Errorf("Tags = %v, want [friends owesMoney]", tags)
		}
	})

	t.Run("no tags", func(t *testing.T) {
		a, ok := p.Parse("add Amy p/1 e/a@b a/home").(*command.Add)
		if !ok {
			t.Fatal("expected *command.Add")
		}
		if n := len(a.Person().Tags()); n != 0 {
			t.Errorf("len(Tags) = %d, want 0", n)
		}
	})

	t.Run("malformed arguments", func(t *testing.T) {
		for _, input := range []string{
			"add",
			"add John Doe",
			"add John Doe p/123 e/a@b",
			"add John Doe e/a@b p/123 a/home",
			"add John Doe p/123 e/a@b a/home t/",
		} {
			got := feedbackOf(t, p.Parse(input))
			if want := command.InvalidFormat(command.UsageAdd); got != want {
				t.Errorf("Parse(%q) feedback = %q, want %q", input, got, want)
			}
		}
	})

	t.Run("invalid field value reports constraint", func(t *testing.T) {
		tests := []struct {
			input string
			want  string
		}{
			{"add J@ne p/123 e/a@b a/home", person.NameConstraints},
			{"add Jane p/12a e/a@b a/home", person.PhoneConstraints},
			{"add Jane p/123 e/nope a/home", person.EmailConstraints},
			{"add Jane p/123 e/a@b a/home t/no-dash", person.TagConstraints},
		}
		for _, tt := range tests {
			if got := feedbackOf(t, p.Parse(tt.input)); got != tt.want {
				t.Errorf("Parse(%q) feedback = %q, want %q", tt.input, got, tt.want)
			}
		}
	})
}

func TestSplitTags(t *testing.T) {
	if got := splitTags(""); got != nil {
		t.Errorf("splitTags(\"\") = %v, want nil", got)
	}
	got := splitTags(" t/a t/b")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("splitTags = %v, want [a b]", got)
	}
}

func TestRegistry(t *testing.T) {
	t.Run("default words are sorted", func(t *testing.T) {
		got := DefaultRegistry().Words()
		want := []string{"add", "clear", "delete", "exit", "find", "help", "list", "view", "viewall"}
		if len(got) != len(want) {
			t.Fatalf("Words() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Words()[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("custom factory and error", func(t *testing.T) {
		r := NewRegistry()
		boom := errors.New("custom failure")
		r.Register("fail", func(string) (command.Command, error) { return nil, boom })
		r.Register("ping", func(args string) (command.Command, error) { return command.NewIncorrect("pong" + args), nil })
		p := New(r)

		if got := feedbackOf(t, p.Parse("fail")); got != "custom failure" {
			t.Errorf("feedback = %q", got)
		}
		if got := feedbackOf(t, p.Parse("ping !")); got != "pong !" {
			t.Errorf("feedback = %q, want %q", got, "pong !")
		}
		if _, ok := p.Parse("view 1").(*command.Help); !ok {
			t.Error("unregistered word should fall back to help")
		}
	})

	t.Run("empty word panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic")
			}
		}()
		NewRegistry().Register("", func(string) (command.Command, error) { return nil, nil })
	})

	t.Run("nil factory panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic")
			}
		}()
		NewRegistry().Register("x", nil)
	})
}
