package sync_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"uprev.dev/uprev/internal/output"
	"uprev.dev/uprev/internal/sync"
)

func newTestSplog() *output.Splog {
	return output.NewSplogWithWriter(io.Discard)
}

func TestCleaner(t *testing.T) {
	t.Run("removes top-level directories except preserved ones", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
		require.NoError(t, os.MkdirAll(filepath.Join(root, "uprev_tools", "patches"), 0o755))
		require.NoError(t, os.MkdirAll(filepath.Join(root, "base", "allocator"), 0o755))
		require.NoError(t, os.MkdirAll(filepath.Join(root, "third_party"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(root, "OWNERS"), []byte("owners\n"), 0o644))

		cleaner := &sync.Cleaner{
			OutputRoot: root,
			Preserved:  []string{".git", "uprev_tools"},
			Log:        newTestSplog(),
		}
		require.NoError(t, cleaner.Run())

		require.NoDirExists(t, filepath.Join(root, "base"))
		require.NoDirExists(t, filepath.Join(root, "third_party"))
		require.DirExists(t, filepath.Join(root, ".git"))
		require.DirExists(t, filepath.Join(root, "uprev_tools", "patches"))
		require.FileExists(t, filepath.Join(root, "OWNERS"))
	})

	t.Run("creates the output root when absent", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "does", "not", "exist")

		cleaner := &sync.Cleaner{
			OutputRoot: root,
			Preserved:  []string{".git"},
			Log:        newTestSplog(),
		}
		require.NoError(t, cleaner.Run())
		require.DirExists(t, root)
	})

	t.Run("running twice leaves preserved directories untouched", func(t *testing.T) {
		root := t.TempDir()
		preservedFile := filepath.Join(root, "uprev_tools", "keep.txt")
		require.NoError(t, os.MkdirAll(filepath.Dir(preservedFile), 0o755))
		require.NoError(t, os.WriteFile(preservedFile, []byte("keep\n"), 0o644))
		require.NoError(t, os.MkdirAll(filepath.Join(root, "base"), 0o755))

		cleaner := &sync.Cleaner{
			OutputRoot: root,
			Preserved:  []string{".git", "uprev_tools"},
			Log:        newTestSplog(),
		}
		require.NoError(t, cleaner.Run())
		require.NoError(t, cleaner.Run())

		data, err := os.ReadFile(preservedFile)
		require.NoError(t, err)
		require.Equal(t, "keep\n", string(data))
	})
}
