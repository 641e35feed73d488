package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"uprev.dev/uprev/internal/cli"
	"uprev.dev/uprev/testhelpers"
)

// runCommand executes the root command with args, capturing stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := cli.NewRootCmd("test", "none", "unknown")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	t.Run("prints the filtered target list", func(t *testing.T) {
		repo := testhelpers.MustNewGitRepo(t)
		require.NoError(t, repo.WriteFile("base/foo.cc", "foo\n"))
		require.NoError(t, repo.WriteFile("third_party/zlib/x.c", "x\n"))
		require.NoError(t, repo.WriteFile("OWNERS", "owners\n"))
		require.NoError(t, repo.CommitAll("initial"))

		out, err := runCommand(t, "list", "--output", repo.Dir)
		require.NoError(t, err)
		require.Equal(t, "base/foo.cc\n", out)
	})
}

func TestSyncCommand(t *testing.T) {
	t.Run("refreshes the output tree from upstream", func(t *testing.T) {
		repo := testhelpers.MustNewGitRepo(t)
		require.NoError(t, repo.WriteFile("base/foo.cc", "old\n"))
		require.NoError(t, repo.WriteFile("uprev_tools/patches/fix.patch", `--- a/base/foo.cc
+++ b/base/foo.cc
@@ -1 +1 @@
-upstream
+upstream patched
`))
		require.NoError(t, repo.CommitAll("initial"))

		upstream := testhelpers.MustNewGitRepo(t)
		require.NoError(t, upstream.WriteFileAndCommit("base/foo.cc", "upstream\n", "snapshot"))

		_, err := runCommand(t, "sync", "--upstream", upstream.Dir, "--output", repo.Dir)
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(repo.Dir, "base/foo.cc"))
		require.NoError(t, err)
		require.Equal(t, "upstream patched\n", string(data))
	})

	t.Run("requires the upstream flag", func(t *testing.T) {
		repo := testhelpers.MustNewGitRepo(t)
		require.NoError(t, repo.WriteFileAndCommit("a.txt", "a\n", "initial"))

		_, err := runCommand(t, "sync", "--output", repo.Dir)
		require.Error(t, err)
	})
}

func TestVersionCommand(t *testing.T) {
	t.Run("prints build information", func(t *testing.T) {
		out, err := runCommand(t, "version")
		require.NoError(t, err)
		require.Contains(t, out, "uprev test")
	})
}
