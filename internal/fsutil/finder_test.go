package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
}

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeFiles(t, root, "a.hcl", "notes.txt", "nested/b.hcl", "nested/deeper/c.hcl")

	files, err := FindFilesByExtension(root, ".hcl")

	require.NoError(t, err)
	require.ElementsMatch(t, []string{
		filepath.Join(root, "a.hcl"),
		filepath.Join(root, "nested", "b.hcl"),
		filepath.Join(root, "nested", "deeper", "c.hcl"),
	}, files)
}

func TestFindFilesByExtension_EmptyExtensionPanics(t *testing.T) {
	require.Panics(t, func() { _, _ = FindFilesByExtension(".", "") })
}

func TestCollectFiles(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeFiles(t, root, "dir/b.hcl", "dir/a.hcl", "single.hcl", "words.txt")

	single := filepath.Join(root, "single.hcl")
	dir := filepath.Join(root, "dir")

	files, err := CollectFiles([]string{single, dir, single, filepath.Join(root, "words.txt")}, ".hcl")

	require.NoError(t, err)
	require.Equal(t, []string{
		single,
		filepath.Join(dir, "a.hcl"),
		filepath.Join(dir, "b.hcl"),
	}, files)
}

func TestCollectFiles_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := CollectFiles([]string{filepath.Join(t.TempDir(), "nope.hcl")}, ".hcl")

	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}
