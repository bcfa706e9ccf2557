package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	require.NoError(t, s.Migrate())
	t.Cleanup(func() { s.Close() })
	return s
}

func TestInsertAndRecent(t *testing.T) {
	s := newTestStore(t)

	first, err := s.Insert(&Generation{
		Reference: "#Button",
		Template:  "component",
		Model:     "qwen2.5-coder:7b",
		Prompt:    "p1",
		Output:    "o1",
		CreatedAt: time.Now().Add(-time.Hour),
	})
	require.NoError(t, err)

	second, err := s.Insert(&Generation{
		Reference: ".src.hooks#useAuth",
		Template:  "hook:state",
		Prompt:    "p2",
		Output:    "o2",
	})
	require.NoError(t, err)
	assert.Greater(t, second, first)

	runs, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// Newest first.
	assert.Equal(t, ".src.hooks#useAuth", runs[0].Reference)
	assert.Equal(t, "hook:state", runs[0].Template)
	assert.Equal(t, "#Button", runs[1].Reference)
	assert.Equal(t, "qwen2.5-coder:7b", runs[1].Model)
	assert.Equal(t, "o1", runs[1].Output)
}

func TestInsert_SetsCreatedAt(t *testing.T) {
	s := newTestStore(t)

	g := &Generation{Reference: "#X", Template: "component"}
	_, err := s.Insert(g)
	require.NoError(t, err)
	assert.False(t, g.CreatedAt.IsZero())
	assert.NotZero(t, g.ID)
}

func TestRecent_Limit(t *testing.T) {
	s := newTestStore(t)

	base := time.Now().Add(-time.Minute)
	for i := 0; i < 5; i++ {
		_, err := s.Insert(&Generation{
			Reference: "#X",
			Template:  "component",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
		require.NoError(t, err)
	}

	runs, err := s.Recent(3)
	require.NoError(t, err)
	assert.Len(t, runs, 3)
}

func TestRecent_Empty(t *testing.T) {
	s := newTestStore(t)

	runs, err := s.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestMigrate_Idempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Migrate())
	require.NoError(t, s.Migrate())
}
