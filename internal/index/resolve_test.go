package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveReference_Unqualified(t *testing.T) {
	ix := newTestIndex(t)

	// Two files strip to "Button"; the earlier scan position wins.
	got, ok := ix.ResolveReference("#Button")
	require.True(t, ok)
	assert.Equal(t, "src/components/Button.tsx", got)

	got, ok = ix.ResolveReference("#useAuth")
	require.True(t, ok)
	assert.Equal(t, "src/hooks/useAuth.tsx", got)

	// Utilities and tests resolve like any other file.
	got, ok = ix.ResolveReference("#format")
	require.True(t, ok)
	assert.Equal(t, "src/utils/format.tsx", got)

	got, ok = ix.ResolveReference("#Button.test")
	require.True(t, ok)
	assert.Equal(t, "src/components/Button.test.tsx", got)
}

func TestResolveReference_Qualified(t *testing.T) {
	ix := newTestIndex(t)

	got, ok := ix.ResolveReference(".app#Button")
	require.True(t, ok)
	assert.Equal(t, "app/Button.tsx", got)

	got, ok = ix.ResolveReference(".src.components#Button")
	require.True(t, ok)
	assert.Equal(t, "src/components/Button.tsx", got)

	got, ok = ix.ResolveReference(".src.components.forms#Input")
	require.True(t, ok)
	assert.Equal(t, "src/components/forms/Input.tsx", got)
}

func TestResolveReference_QualifiedDirectChildrenOnly(t *testing.T) {
	ix := newTestIndex(t)

	// Input lives in src/components/forms; qualification must not recurse.
	_, ok := ix.ResolveReference(".src.components#Input")
	assert.False(t, ok)

	_, ok = ix.ResolveReference(".src#Button")
	assert.False(t, ok)
}

func TestResolveReference_Malformed(t *testing.T) {
	ix := newTestIndex(t)

	for _, ref := range []string{
		"",
		"Button",
		"#",
		".src.components",         // no #name part
		".src.components#",        // empty name
		"#NoSuchFile",
		".no.such.dir#Button",
		".src.components.Button#x", // path segment names a file, not a directory
	} {
		_, ok := ix.ResolveReference(ref)
		assert.False(t, ok, "reference %q", ref)
	}
}

func TestFilesInFolder(t *testing.T) {
	ix := newTestIndex(t)

	assert.Equal(t, []string{"Button", "Button.test", "Card"},
		ix.FilesInFolder(".src.components"))

	// Leading dot is optional.
	assert.Equal(t, []string{"Button", "Button.test", "Card"},
		ix.FilesInFolder("src.components"))

	// Direct files only; subdirectory contents are not listed.
	assert.Equal(t, []string{"Input"}, ix.FilesInFolder(".src.components.forms"))

	assert.Empty(t, ix.FilesInFolder(".no.such.dir"))

	// The tree root has no direct file children in this fixture.
	assert.Empty(t, ix.FilesInFolder(""))
}
