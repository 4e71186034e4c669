package parser

import (
	"sort"

	"github.com/smileynet/addressbook/internal/command"
)

// Factory builds a command from the argument text that followed its word.
// Returning an error turns the input into an Incorrect command whose
// feedback is err.Error().
type Factory func(args string) (command.Command, error)

// Registry maps command words to factories.
// It is not safe for concurrent use; registration should happen at startup.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for word. Overwrites if word already exists.
// Panics if word is empty or f is nil (programmer error).
func (r *Registry) Register(word string, f Factory) {
	if word == "" {
		panic("parser: Register called with empty word")
	}
	if f == nil {
		panic("parser: Register called with nil factory")
	}
	r.factories[word] = f
}

// Lookup returns the factory registered for word.
func (r *Registry) Lookup(word string) (Factory, bool) {
	f, ok := r.factories[word]
	return f, ok
}

// Words returns registered words in sorted order.
func (r *Registry) Words() []string {
	words := make([]string, 0, len(r.factories))
	for w := range r.factories {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// DefaultRegistry returns a registry with every built-in command.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(command.WordAdd, parseAdd)
	r.Register(command.WordDelete, indexed(command.UsageDelete, func(i int) command.Command { return command.NewDelete(i) }))
	r.Register(command.WordView, indexed(command.UsageView, func(i int) command.Command { return command.NewView(i) }))
	r.Register(command.WordViewAll, indexed(command.UsageViewAll, func(i int) command.Command { return command.NewViewAll(i) }))
	r.Register(command.WordFind, parseFind)
	r.Register(command.WordList, noArgs(func() command.Command { return command.NewList() }))
	r.Register(command.WordClear, noArgs(func() command.Command { return command.NewClear() }))
	r.Register(command.WordHelp, noArgs(func() command.Command { return command.NewHelp() }))
	r.Register(command.WordExit, noArgs(func() command.Command { return command.NewExit() }))
	return r
}
