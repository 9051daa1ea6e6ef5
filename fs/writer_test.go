package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/htminl/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileAtomic(t *testing.T) {
	t.Parallel()

	t.Run("replaces the content", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "page.html", "old content")

		err := fs.WriteFileAtomic(path, []byte("new"))

		require.NoError(t, err)
		assert.Equal(t, "new", readFile(t, path))
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := writeFile(t, dir, "page.html", "old content")

		require.NoError(t, fs.WriteFileAtomic(path, []byte("new")))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "page.html", entries[0].Name())
	})

	t.Run("keeps the permission bits", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "page.html", "old content")
		require.NoError(t, os.Chmod(path, 0o640))

		require.NoError(t, fs.WriteFileAtomic(path, []byte("new")))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
	})

	t.Run("fails for a missing file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()

		err := fs.WriteFileAtomic(filepath.Join(dir, "missing.html"), []byte("new"))

		require.Error(t, err)
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}
