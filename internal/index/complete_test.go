package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testTemplates = []string{
	"component",
	"component:class",
	"component:functional",
	"form",
	"hook",
}

func TestComplete_Templates(t *testing.T) {
	ix := newTestIndex(t)

	got := ix.Complete("@comp", 5, testTemplates)
	assert.Equal(t, []string{"@component", "@component:class", "@component:functional"}, got)

	// A bare trigger matches the whole catalog.
	got = ix.Complete("@", 1, testTemplates)
	assert.Equal(t, []string{"@component", "@component:class", "@component:functional", "@form", "@hook"}, got)

	// Template matching is case-sensitive prefix.
	assert.Empty(t, ix.Complete("@COMP", 5, testTemplates))
	assert.Empty(t, ix.Complete("@xyz", 4, testTemplates))
}

func TestComplete_Filenames(t *testing.T) {
	ix := newTestIndex(t)

	// Case-insensitive substring, deduplicated across directories.
	got := ix.Complete("#but", 4, nil)
	assert.Equal(t, []string{"#Button", "#Button.test"}, got)

	got = ix.Complete("#utto", 5, nil)
	assert.Equal(t, []string{"#Button", "#Button.test"}, got)

	got = ix.Complete("#auth", 5, nil)
	assert.Equal(t, []string{"#useAuth"}, got)

	// Bare trigger lists every distinct stripped filename.
	got = ix.Complete("#", 1, nil)
	assert.Equal(t, []string{"#Button", "#Button.test", "#Card", "#Input", "#format", "#useAuth"}, got)

	assert.Empty(t, ix.Complete("#zzz", 4, nil))
}

func TestComplete_Folders(t *testing.T) {
	ix := newTestIndex(t)

	got := ix.Complete(".s", 2, nil)
	assert.Equal(t, []string{".src"}, got)

	// Trailing dot lists the children of the resolved prefix.
	got = ix.Complete(".src.", 5, nil)
	assert.Equal(t, []string{".src.components", ".src.hooks", ".src.utils"}, got)

	got = ix.Complete(".src.comp", 9, nil)
	assert.Equal(t, []string{".src.components"}, got)

	got = ix.Complete(".src.components.", 16, nil)
	assert.Equal(t, []string{".src.components.forms"}, got)

	// Intermediate segments are exact: a prefix there does not descend.
	assert.Empty(t, ix.Complete(".sr.components", 14, nil))
	assert.Empty(t, ix.Complete(".nope.", 6, nil))
}

func TestComplete_TriggerPrecedence(t *testing.T) {
	ix := newTestIndex(t)

	// The token is read backward from the cursor; # outranks . when both
	// could claim it.
	got := ix.Complete(".src.components#But", 19, testTemplates)
	assert.Equal(t, []string{"#Button", "#Button.test"}, got)

	// Mid-sentence tokens complete the same as bare ones.
	got = ix.Complete("use @comp for it", 9, testTemplates)
	assert.Equal(t, []string{"@component", "@component:class", "@component:functional"}, got)
}

func TestComplete_NoToken(t *testing.T) {
	ix := newTestIndex(t)

	assert.Nil(t, ix.Complete("hello", 5, testTemplates))
	assert.Nil(t, ix.Complete("", 0, testTemplates))

	// Cursor before the token's end sees only the shorter run.
	got := ix.Complete("#Card", 2, nil)
	assert.Equal(t, []string{"#Card"}, got)
}

func TestComplete_CursorClamping(t *testing.T) {
	ix := newTestIndex(t)

	got := ix.Complete("@comp", 99, testTemplates)
	assert.Equal(t, []string{"@component", "@component:class", "@component:functional"}, got)

	assert.Nil(t, ix.Complete("@comp", -1, testTemplates))
}

func TestCompleteAt_Anchor(t *testing.T) {
	ix := newTestIndex(t)

	anchor, got := ix.CompleteAt("gen @comp", 9, testTemplates)
	assert.Equal(t, 4, anchor)
	assert.NotEmpty(t, got)

	anchor, got = ix.CompleteAt("see #But now", 8, nil)
	assert.Equal(t, 4, anchor)
	assert.Equal(t, []string{"#Button", "#Button.test"}, got)

	// The dot trigger is part of its own token, so the anchor sits on the
	// leading dot of the run.
	anchor, got = ix.CompleteAt("ls .src.", 8, nil)
	assert.Equal(t, 3, anchor)
	assert.Equal(t, []string{".src.components", ".src.hooks", ".src.utils"}, got)

	anchor, _ = ix.CompleteAt("hello", 5, nil)
	assert.Equal(t, -1, anchor)
}
