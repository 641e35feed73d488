package sync

import (
	"fmt"
	"path/filepath"

	uperrors "uprev.dev/uprev/internal/errors"
	"uprev.dev/uprev/internal/fsops"
	"uprev.dev/uprev/internal/git"
	"uprev.dev/uprev/internal/output"
)

// Importer copies the blacklist-filtered set of tracked files from the
// upstream checkout into the output root.
//
// The file list comes from the output repository's HEAD tree, not from the
// filesystem, so build artifacts and other untracked content are never part
// of the import. A listed file missing under the upstream root aborts the
// run: it signals a mismatch between the vendored file list and the
// upstream snapshot that must be resolved manually.
type Importer struct {
	UpstreamRoot string
	OutputRoot   string
	Blacklist    *Blacklist
	Log          *output.Splog
}

// TargetFiles computes the list of files to import: every path tracked at
// HEAD of the output repository that does not match the blacklist.
func (imp *Importer) TargetFiles() ([]string, error) {
	repo, err := git.OpenRepository(imp.OutputRoot)
	if err != nil {
		return nil, err
	}

	tracked, err := repo.ListTrackedFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to list tracked files: %w", err)
	}

	return imp.Blacklist.Filter(tracked), nil
}

// Run copies every target file from the upstream root into the output root,
// preserving content, permission bits and modification time.
func (imp *Importer) Run() error {
	targets, err := imp.TargetFiles()
	if err != nil {
		return err
	}

	imp.Log.Debug("importing %d files from %s", len(targets), imp.UpstreamRoot)
	for _, rel := range targets {
		src := filepath.Join(imp.UpstreamRoot, rel)
		exists, err := fsops.Exists(src)
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", rel, err)
		}
		if !exists {
			return uperrors.NewUpstreamFileMissingError(rel, imp.UpstreamRoot)
		}

		if err := fsops.CopyFile(src, filepath.Join(imp.OutputRoot, rel)); err != nil {
			return fmt.Errorf("failed to import %s: %w", rel, err)
		}
	}

	imp.Log.Info("imported %d files", len(targets))
	return nil
}
