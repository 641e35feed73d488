package sync

import (
	"fmt"

	"uprev.dev/uprev/internal/fsops"
	"uprev.dev/uprev/internal/output"
)

// Cleaner removes prior vendored content from the output root.
//
// Only immediate child directories are removed; files directly in the root
// and the preserved directories (version control metadata and the tool's
// own directory) are left untouched. The operation is destructive and not
// transactional: a failure can leave the tree partially cleaned, which is
// resolved by re-running after fixing the underlying problem.
type Cleaner struct {
	OutputRoot string
	Preserved  []string
	Log        *output.Splog
}

// Run ensures the output root exists and removes unpreserved top-level
// directories.
func (c *Cleaner) Run() error {
	c.Log.Debug("cleaning %s (preserving %v)", c.OutputRoot, c.Preserved)
	if err := fsops.CleanDir(c.OutputRoot, c.Preserved); err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}
	return nil
}
