package git_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	uperrors "uprev.dev/uprev/internal/errors"
	"uprev.dev/uprev/internal/git"
	"uprev.dev/uprev/testhelpers"
)

func TestOpenRepository(t *testing.T) {
	t.Run("opens a repository at its root", func(t *testing.T) {
		repo := testhelpers.MustNewGitRepo(t)
		require.NoError(t, repo.WriteFileAndCommit("a.txt", "a\n", "initial"))

		opened, err := git.OpenRepository(repo.Dir)
		require.NoError(t, err)
		require.Equal(t, repo.Dir, opened.Root())
	})

	t.Run("detects the root from a subdirectory", func(t *testing.T) {
		repo := testhelpers.MustNewGitRepo(t)
		require.NoError(t, repo.WriteFileAndCommit("base/a.txt", "a\n", "initial"))

		opened, err := git.OpenRepository(filepath.Join(repo.Dir, "base"))
		require.NoError(t, err)
		require.Equal(t, repo.Dir, opened.Root())
	})

	t.Run("fails outside a repository", func(t *testing.T) {
		_, err := git.OpenRepository(t.TempDir())
		require.Error(t, err)
		require.ErrorIs(t, err, uperrors.ErrNotARepository)
	})
}

func TestHeadRevision(t *testing.T) {
	t.Run("matches git rev-parse HEAD", func(t *testing.T) {
		repo := testhelpers.MustNewGitRepo(t)
		require.NoError(t, repo.WriteFileAndCommit("a.txt", "a\n", "initial"))

		want, err := repo.GetCurrentSHA()
		require.NoError(t, err)

		opened, err := git.OpenRepository(repo.Dir)
		require.NoError(t, err)
		rev, err := opened.HeadRevision()
		require.NoError(t, err)
		require.Equal(t, want, rev)
	})
}

func TestListTrackedFiles(t *testing.T) {
	t.Run("lists the HEAD tree sorted", func(t *testing.T) {
		repo := testhelpers.MustNewGitRepo(t)
		require.NoError(t, repo.WriteFile("z.txt", "z\n"))
		require.NoError(t, repo.WriteFile("base/foo.cc", "foo\n"))
		require.NoError(t, repo.WriteFile("base/bar.h", "bar\n"))
		require.NoError(t, repo.CommitAll("initial"))

		opened, err := git.OpenRepository(repo.Dir)
		require.NoError(t, err)
		files, err := opened.ListTrackedFiles()
		require.NoError(t, err)
		require.Equal(t, []string{"base/bar.h", "base/foo.cc", "z.txt"}, files)
	})

	t.Run("ignores untracked files on disk", func(t *testing.T) {
		repo := testhelpers.MustNewGitRepo(t)
		require.NoError(t, repo.WriteFileAndCommit("tracked.txt", "t\n", "initial"))
		require.NoError(t, repo.WriteFile("untracked.txt", "u\n"))

		opened, err := git.OpenRepository(repo.Dir)
		require.NoError(t, err)
		files, err := opened.ListTrackedFiles()
		require.NoError(t, err)
		require.Equal(t, []string{"tracked.txt"}, files)
	})

	t.Run("reflects deletions committed at HEAD", func(t *testing.T) {
		repo := testhelpers.MustNewGitRepo(t)
		require.NoError(t, repo.WriteFile("keep.txt", "k\n"))
		require.NoError(t, repo.WriteFile("drop.txt", "d\n"))
		require.NoError(t, repo.CommitAll("initial"))
		require.NoError(t, repo.RunGitCommand("rm", "drop.txt"))
		require.NoError(t, repo.RunGitCommand("commit", "-m", "drop"))

		opened, err := git.OpenRepository(repo.Dir)
		require.NoError(t, err)
		files, err := opened.ListTrackedFiles()
		require.NoError(t, err)
		require.Equal(t, []string{"keep.txt"}, files)
	})
}
