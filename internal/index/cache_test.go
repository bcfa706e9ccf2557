package index

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoad(t *testing.T) {
	ix := newTestIndex(t)
	path := filepath.Join(t.TempDir(), ".react-gen", "index.json")

	// Save creates the missing parent directory.
	require.NoError(t, Save(ix, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ix.AllFiles, got.AllFiles)
	assert.True(t, ix.BuiltAt.Equal(got.BuiltAt))

	resolved, ok := got.ResolveReference("#Card")
	require.True(t, ok)
	assert.Equal(t, "src/components/Card.tsx", resolved)
}

func TestSave_ReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, Save(newTestIndex(t), path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, got.FileCount())

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "index.json", entries[0].Name())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
