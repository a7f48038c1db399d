package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectPath_ZDOTDIR(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("ZDOTDIR", dir)

	path, err := DetectPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".zsh_history"), path)
}

func TestDetectPath_Home(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ZDOTDIR", "")
	t.Setenv("HOME", home)

	path, err := DetectPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".zsh_history"), path)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "/tmp/.zsh_history_cleaned", OutputPath("/tmp/.zsh_history"))
}
