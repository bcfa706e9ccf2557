package reactgen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoadedEngine(t *testing.T) *Engine {
	t.Helper()
	engine := New(writeProject(t), nil)
	_, err := engine.Rebuild(context.Background())
	require.NoError(t, err)
	return engine
}

func TestEngineComplete(t *testing.T) {
	engine := newLoadedEngine(t)

	// Template completion draws on the engine's catalog.
	got := engine.Complete("@comp", 5)
	assert.Equal(t, []string{"@component", "@component:class", "@component:functional"}, got)

	// Filename completion is case-insensitive substring, deduplicated
	// across the two Button.tsx files.
	got = engine.Complete("#but", 4)
	assert.Equal(t, []string{"#Button"}, got)

	// Folder completion descends exactly and prefix-filters the last
	// segment; a trailing dot lists all children.
	got = engine.Complete(".src.", 5)
	assert.Equal(t, []string{".src.components", ".src.hooks", ".src.utils"}, got)

	assert.Nil(t, engine.Complete("plain words", 11))
}

func TestEngineComplete_NoIndex(t *testing.T) {
	engine := New(t.TempDir(), nil)

	assert.Nil(t, engine.Complete("@comp", 5))
	assert.Nil(t, engine.FilesInFolder(".src"))
	_, ok := engine.ResolveReference("#Button")
	assert.False(t, ok)

	head, comps := engine.CompleteLine("@comp", 5)
	assert.Equal(t, "@comp", head)
	assert.Nil(t, comps)
}

func TestEngineCompleteLine(t *testing.T) {
	engine := newLoadedEngine(t)

	head, comps := engine.CompleteLine("gen #car", 8)
	assert.Equal(t, "gen ", head)
	assert.Equal(t, []string{"#Card", "#Card.test"}, comps)

	// The dot token's head stops before the run's leading dot.
	head, comps = engine.CompleteLine("ls .src.comp", 12)
	assert.Equal(t, "ls ", head)
	assert.Equal(t, []string{".src.components"}, comps)

	head, comps = engine.CompleteLine("nothing here", 12)
	assert.Equal(t, "nothing here", head)
	assert.Nil(t, comps)
}

func TestEngineResolveReference(t *testing.T) {
	engine := newLoadedEngine(t)

	// Scan order puts src before app, so the unqualified form finds the
	// src copy and qualification picks the other one.
	path, ok := engine.ResolveReference("#Button")
	require.True(t, ok)
	assert.Equal(t, "src/components/Button.tsx", path)

	path, ok = engine.ResolveReference(".app#Button")
	require.True(t, ok)
	assert.Equal(t, "app/Button.tsx", path)

	_, ok = engine.ResolveReference(".src#Button")
	assert.False(t, ok)
}

func TestEngineFilesInFolder(t *testing.T) {
	engine := newLoadedEngine(t)

	assert.Equal(t, []string{"Button", "Card", "Card.test"},
		engine.FilesInFolder(".src.components"))
	assert.Empty(t, engine.FilesInFolder(".src.nope"))
}
