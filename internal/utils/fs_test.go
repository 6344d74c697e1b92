package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "a", "b", "file.md")

	err := EnsureDir(path)
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(tmpDir, "a", "b"))
}

func TestEnsureDir_ExistingDir(t *testing.T) {
	tmpDir := t.TempDir()
	assert.NoError(t, EnsureDir(filepath.Join(tmpDir, "file.md")))
}

func TestExpandPath_Tilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, filepath.Join(home, "stacks"), ExpandPath("~/stacks"))
}

func TestExpandPath_NoTilde(t *testing.T) {
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
	assert.Equal(t, "rel/path", ExpandPath("rel/path"))
}

func TestCopyFile(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src.md")
	dst := filepath.Join(tmpDir, "dst.md")
	require.NoError(t, os.WriteFile(src, []byte("content"), 0600))

	mtime := time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, mtime, mtime))

	err := CopyFile(src, dst)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	assert.True(t, info.ModTime().Equal(mtime))
}

func TestCopyFile_OverwritesExisting(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "src.md")
	dst := filepath.Join(tmpDir, "dst.md")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0644))
	require.NoError(t, os.WriteFile(dst, []byte("old and longer"), 0644))

	require.NoError(t, CopyFile(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestCopyFile_MissingSource(t *testing.T) {
	tmpDir := t.TempDir()
	err := CopyFile(filepath.Join(tmpDir, "missing"), filepath.Join(tmpDir, "dst"))
	assert.Error(t, err)
}

func TestCopyFile_SourceIsDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	err := CopyFile(tmpDir, filepath.Join(tmpDir, "dst"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "source is a directory")
}
