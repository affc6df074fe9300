package cli

import (
	"context"
	"fmt"
)

// Command is one interpreter keyword and its handler.
type Command struct {
	Name    string
	Aliases []string
	// Usage is printed when an argument-taking command is given none.
	Usage string
	// NoArgs commands treat trailing text as an unknown command.
	NoArgs bool
	Run    func(ctx context.Context, args string) error
}

// Registry maps names and aliases to commands and remembers registration order.
type Registry struct {
	cmds  map[string]*Command
	order []*Command
}

func NewRegistry() *Registry {
	return &Registry{
		cmds: make(map[string]*Command),
	}
}

// Register adds a command. It fails if the name or any alias is taken.
func (r *Registry) Register(c *Command) error {
	if _, exists := r.cmds[c.Name]; exists {
		return fmt.Errorf("command already registered: %s", c.Name)
	}
	for _, alias := range c.Aliases {
		if _, exists := r.cmds[alias]; exists {
			return fmt.Errorf("command alias already registered: %s", alias)
		}
	}

	r.cmds[c.Name] = c
	for _, alias := range c.Aliases {
		r.cmds[alias] = c
	}
	r.order = append(r.order, c)
	return nil
}

func (r *Registry) mustRegister(c *Command) {
	if err := r.Register(c); err != nil {
		panic(err)
	}
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (*Command, bool) {
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// Names returns primary command names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	for i, c := range r.order {
		names[i] = c.Name
	}
	return names
}
