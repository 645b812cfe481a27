package utils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureParentDirs(t *testing.T) {
	root := t.TempDir()
	a := filepath.Join(root, "scripts", "defects_data.json")
	b := filepath.Join(root, "out", "nested", "suppliers_data.json")

	require.NoError(t, EnsureParentDirs(a, b))
	assert.DirExists(t, filepath.Dir(a))
	assert.DirExists(t, filepath.Dir(b))
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	assert.False(t, FileExists(path))

	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.True(t, FileExists(path))
}

func TestWithFile_TruncatesAndCloses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, os.WriteFile(path, []byte("stale content from a previous run"), 0644))

	var handle *os.File
	err := WithFile(path, func(f *os.File) error {
		handle = f
		_, err := f.WriteString("[]")
		return err
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	_, err = handle.WriteString("more")
	assert.Error(t, err, "file must be closed after WithFile returns")
}

func TestWithFile_ClosesOnWriteError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	boom := errors.New("boom")

	var handle *os.File
	err := WithFile(path, func(f *os.File) error {
		handle = f
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = handle.WriteString("more")
	assert.Error(t, err)
}

func TestWithFile_MissingDirectory(t *testing.T) {
	err := WithFile(filepath.Join(t.TempDir(), "missing", "out.json"), func(*os.File) error { return nil })
	require.Error(t, err)
}
