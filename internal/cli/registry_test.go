package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(context.Context, string) error { return nil }

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&Command{Name: "view", Aliases: []string{"list"}, Run: noop}))

	err := r.Register(&Command{Name: "view", Run: noop})
	assert.EqualError(t, err, "command already registered: view")

	err = r.Register(&Command{Name: "show", Aliases: []string{"list"}, Run: noop})
	assert.EqualError(t, err, "command alias already registered: list")

	byName, ok := r.Find("view")
	require.True(t, ok)
	byAlias, ok := r.Find("list")
	require.True(t, ok)
	assert.Same(t, byName, byAlias)

	_, ok = r.Find("show")
	assert.False(t, ok)
}

func TestRegistry_NamesKeepRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, r.Register(&Command{Name: name, Run: noop}))
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, r.Names())
}

func TestInterpreter_CommandSet(t *testing.T) {
	it := New(newService(), nil, nil, nil)

	assert.Equal(t,
		[]string{"add", "view", "complete", "uncomplete", "update", "delete", "help", "quit"},
		it.registry.Names())

	for _, alias := range []string{"list", "exit"} {
		_, ok := it.registry.Find(alias)
		assert.True(t, ok, alias)
	}
}
