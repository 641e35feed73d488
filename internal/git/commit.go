package git

import (
	"context"
	"fmt"
	"strings"
)

// StageAll stages all changes in the runner's working directory, including
// untracked files and deletions.
func (r *CommandRunner) StageAll(ctx context.Context) error {
	_, err := r.Run(ctx, "add", "-A")
	if err != nil {
		return fmt.Errorf("failed to stage all changes: %w", err)
	}
	return nil
}

// HasStagedChanges checks if there are staged changes
func (r *CommandRunner) HasStagedChanges(ctx context.Context) (bool, error) {
	output, err := r.Run(ctx, "diff", "--cached", "--shortstat")
	if err != nil {
		return false, fmt.Errorf("failed to check staged changes: %w", err)
	}
	return strings.TrimSpace(output) != "", nil
}

// Commit creates a commit with the given message
func (r *CommandRunner) Commit(ctx context.Context, message string) error {
	_, err := r.Run(ctx, "commit", "-m", message)
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
