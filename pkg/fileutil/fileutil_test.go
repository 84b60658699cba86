package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rohmanhakim/linkscrub/pkg/fileutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetFileExtension(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"yaml", "config.yaml", "yaml"},
		{"multiple dots", "linkscrub.local.yml", "yml"},
		{"no extension", "README", ""},
		{"dotfile", ".linkscrub", "linkscrub"},
		{"directories", "/home/user/.config/linkscrub/config.json", "json"},
		{"empty string", "", ""},
		{"dot at end", "file.", ""},
		{"trailing slash", "/some/directory/", ""},
		{"uppercase is lowered", "CONFIG.YAML", "yaml"},
		{"mixed case is lowered", "config.Json", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, fileutil.GetFileExtension(tt.path))
		})
	}
}

func TestEnsureDir_MultiplePathComponents(t *testing.T) {
	tmpDir := t.TempDir()

	err := fileutil.EnsureDir(tmpDir, "parent", "child")
	require.NoError(t, err)

	info, statErr := os.Stat(filepath.Join(tmpDir, "parent", "child"))
	require.NoError(t, statErr)
	assert.True(t, info.IsDir())
}

func TestEnsureDir_DirectoryAlreadyExists(t *testing.T) {
	tmpDir := t.TempDir()

	assert.NoError(t, fileutil.EnsureDir(tmpDir))
}

func TestEnsureDir_PermissionError(t *testing.T) {
	if filepath.Separator == '\\' {
		t.Skip("Skipping permission test on Windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("Skipping permission test as root")
	}

	readonlyDir := filepath.Join(t.TempDir(), "readonly")
	require.NoError(t, os.MkdirAll(readonlyDir, 0555))

	err := fileutil.EnsureDir(readonlyDir, "subdir")
	require.Error(t, err)

	var fileErr *fileutil.FileError
	if assert.ErrorAs(t, err, &fileErr) {
		assert.False(t, fileErr.Retryable)
		assert.Equal(t, fileutil.ErrCausePathError, fileErr.Cause)
	}
}

func TestWriteFile_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "clean.txt")

	err := fileutil.WriteFile(path, []byte("https://youtu.be/x"))
	require.NoError(t, err)

	content, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "https://youtu.be/x", string(content))
}

func TestWriteFile_Replaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clean.txt")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0644))

	require.NoError(t, fileutil.WriteFile(path, []byte("new")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestWriteFile_TargetIsDirectory(t *testing.T) {
	dir := t.TempDir()

	err := fileutil.WriteFile(dir, []byte("x"))
	require.Error(t, err)

	var fileErr *fileutil.FileError
	if assert.ErrorAs(t, err, &fileErr) {
		assert.Equal(t, fileutil.ErrCauseWriteError, fileErr.Cause)
	}
}
