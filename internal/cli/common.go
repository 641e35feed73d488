package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"uprev.dev/uprev/internal/git"
	"uprev.dev/uprev/internal/output"
)

// newSplog builds the progress logger for a command, honoring --verbose.
func newSplog(cmd *cobra.Command) *output.Splog {
	splog := output.NewSplog()
	verbose, _ := cmd.Flags().GetBool("verbose")
	splog.SetVerbose(verbose)
	return splog
}

// resolveOutputRoot resolves the output root from the flag value, defaulting
// to the root of the repository containing the current working directory.
func resolveOutputRoot(flagValue string) (string, error) {
	if flagValue != "" {
		abs, err := filepath.Abs(flagValue)
		if err != nil {
			return "", fmt.Errorf("failed to resolve output root: %w", err)
		}
		return abs, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	repo, err := git.OpenRepository(cwd)
	if err != nil {
		return "", err
	}
	return repo.Root(), nil
}

// resolveUpstreamRoot resolves the required upstream root flag.
func resolveUpstreamRoot(flagValue string) (string, error) {
	if flagValue == "" {
		return "", fmt.Errorf("--upstream is required")
	}
	abs, err := filepath.Abs(flagValue)
	if err != nil {
		return "", fmt.Errorf("failed to resolve upstream root: %w", err)
	}
	return abs, nil
}
