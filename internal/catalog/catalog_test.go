package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Entries(t *testing.T) {
	c := Default()

	entries := c.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "component", entries[0])
	assert.Contains(t, entries, "component:functional")
	assert.Contains(t, entries, "hook:state")
	assert.Contains(t, entries, "layout")
}

func TestLookup(t *testing.T) {
	c := Default()

	got, ok := c.Lookup("component:class")
	require.True(t, ok)
	assert.Equal(t, "component", got.Family)
	assert.Equal(t, "class", got.Variant)

	// The @ sigil is accepted and stripped.
	got, ok = c.Lookup("@hook")
	require.True(t, ok)
	assert.Equal(t, "hook", got.Family)
	assert.Empty(t, got.Variant)

	_, ok = c.Lookup("sidebar")
	assert.False(t, ok)
	_, ok = c.Lookup("")
	assert.False(t, ok)
}

func TestNew_PreservesOrder(t *testing.T) {
	c := New([]Template{
		{Name: "zeta", Family: "zeta"},
		{Name: "alpha", Family: "alpha"},
	})
	assert.Equal(t, []string{"zeta", "alpha"}, c.Entries())
}
