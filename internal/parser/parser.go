// Package parser turns a line of user input into a command.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/smileynet/addressbook/internal/command"
)

var (
	basicFormat = regexp.MustCompile(`^(?P<word>\S+)(?P<args>.*)$`)

	keywordsFormat = regexp.MustCompile(`^\S+(?:\s+\S+)*$`)

	// NAME [p]p/PHONE [p]e/EMAIL [p]a/ADDRESS [t/TAG]...
	personDataFormat = regexp.MustCompile(`^(?P<name>[^/]+)` +
		` (?P<phonePrivate>p?)p/(?P<phone>[^/]+)` +
		` (?P<emailPrivate>p?)e/(?P<email>[^/]+)` +
		` (?P<addressPrivate>p?)a/(?P<address>[^/]+)` +
		`(?P<tags>(?: t/[^/]+)*)$`)
)

// FormatError reports arguments that do not fit a command's syntax.
type FormatError struct {
	Usage string
}

func (e *FormatError) Error() string {
	return command.InvalidFormat(e.Usage)
}

// Parser resolves command words through a Registry.
type Parser struct {
	registry *Registry
}

// New creates a Parser. A nil registry means DefaultRegistry.
func New(registry *Registry) *Parser {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Parser{registry: registry}
}

// Parse never fails: malformed input yields an Incorrect command and an
// unknown word yields Help.
func (p *Parser) Parse(input string) command.Command {
	m := basicFormat.FindStringSubmatch(strings.TrimSpace(input))
	if m == nil {
		return command.NewIncorrect(command.InvalidFormat(command.UsageHelp))
	}
	word := m[basicFormat.SubexpIndex("word")]
	args := m[basicFormat.SubexpIndex("args")]

	f, ok := p.registry.Lookup(word)
	if !ok {
		return command.NewHelp()
	}
	cmd, err := f(args)
	if err != nil {
		return command.NewIncorrect(err.Error())
	}
	return cmd
}

func parseAdd(args string) (command.Command, error) {
	m := personDataFormat.FindStringSubmatch(strings.TrimSpace(args))
	if m == nil {
		return nil, &FormatError{Usage: command.UsageAdd}
	}
	group := func(name string) string {
		return m[personDataFormat.SubexpIndex(name)]
	}
	in := command.AddInput{
		Name:           group("name"),
		Phone:          group("phone"),
		PhonePrivate:   group("phonePrivate") != "",
		Email:          group("email"),
		EmailPrivate:   group("emailPrivate") != "",
		Address:        group("address"),
		AddressPrivate: group("addressPrivate") != "",
		Tags:           splitTags(group("tags")),
	}
	return command.NewAdd(in)
}

// splitTags turns " t/a t/b" into ["a", "b"].
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	raw = strings.TrimPrefix(raw, " t/")
	return strings.Split(raw, " t/")
}

func parseFind(args string) (command.Command, error) {
	trimmed := strings.TrimSpace(args)
	if !keywordsFormat.MatchString(trimmed) {
		return nil, &FormatError{Usage: command.UsageFind}
	}
	return command.NewFind(strings.Fields(trimmed)...), nil
}

// indexed builds a factory for commands taking a single displayed index.
func indexed(usage string, build func(int) command.Command) Factory {
	return func(args string) (command.Command, error) {
		idx, err := strconv.Atoi(strings.TrimSpace(args))
		if err != nil {
			return nil, &FormatError{Usage: usage}
		}
		return build(idx), nil
	}
}

// noArgs builds a factory for commands that ignore their arguments.
func noArgs(build func() command.Command) Factory {
	return func(string) (command.Command, error) {
		return build(), nil
	}
}
