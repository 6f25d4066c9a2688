package notes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxis-cli/praxis/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadDirEmpty(t *testing.T) {
	set, err := LoadDir("")
	require.NoError(t, err)
	assert.Empty(t, set)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ownership.yml", `
description: value vs reference semantics, revisited
units:
  doubleMove: "what happens to the first variable after the hand-off?"
  moveSemantics: "when is the backing array shared?"
`)
	writeFile(t, dir, "basics.yaml", `
units:
  variables: "can a const be shadowed?"
`)
	writeFile(t, dir, "README.md", "not an overlay")

	set, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, set, 2)

	assert.Equal(t, "value vs reference semantics, revisited",
		set.Description("ownership", "fallback"))
	assert.Equal(t, "what happens to the first variable after the hand-off?",
		set.Note("ownership", "doubleMove", "fallback"))
	assert.Equal(t, "can a const be shadowed?",
		set.Note("basics", "variables", "fallback"))
}

func TestLoadDirMissing(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "nosuch"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotesInvalid, err.(*errors.PraxisError).Code)
}

func TestLoadDirInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "broken.yml", "units: [not a map")

	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing notes file")
}

func TestSetFallbacks(t *testing.T) {
	set := Set{
		"ownership": {Units: map[string]string{"doubleMove": "override"}},
	}

	assert.Equal(t, "override", set.Note("ownership", "doubleMove", "original"))
	assert.Equal(t, "original", set.Note("ownership", "other", "original"))
	assert.Equal(t, "original", set.Note("nosuch", "doubleMove", "original"))
	assert.Equal(t, "fallback", set.Description("ownership", "fallback"))
	assert.Equal(t, "fallback", set.Description("nosuch", "fallback"))
}
