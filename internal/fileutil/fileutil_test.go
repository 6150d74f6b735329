package fileutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"history: france", "history - france"},
		{"fiction/science", "fiction-science"},
		{"a\\b", "a-b"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeFilename(tt.in))
	}
}

func TestGetMarkdownFilePath(t *testing.T) {
	got := GetMarkdownFilePath("adventure: stories", "/out/words")
	assert.Equal(t, filepath.Join("/out/words", "adventure - stories.md"), got)
}

func TestWriteFileWithOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "file.txt")

	written, err := WriteFileWithOverwrite(path, []byte("first"), 0644, false)
	require.NoError(t, err)
	assert.True(t, written)

	// second write without overwrite is skipped
	written, err = WriteFileWithOverwrite(path, []byte("second"), 0644, false)
	require.NoError(t, err)
	assert.False(t, written)

	written, err = WriteFileWithOverwrite(path, []byte("third"), 0644, true)
	require.NoError(t, err)
	assert.True(t, written)
}

func TestWriteJSONFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.json")

	written, err := WriteJSONFile(map[string]int{"alpha": 1}, path, false)
	require.NoError(t, err)
	assert.True(t, written)
	assert.True(t, FileExists(path))

	written, err = WriteJSONFile(map[string]int{"beta": 2}, path, false)
	require.NoError(t, err)
	assert.False(t, written)
}
