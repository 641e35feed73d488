package sync

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	uperrors "uprev.dev/uprev/internal/errors"
	"uprev.dev/uprev/internal/git"
	"uprev.dev/uprev/internal/output"
)

// PatchExtension identifies patch files in the patch directory
const PatchExtension = ".patch"

// Patcher applies the local patch series on top of the freshly imported
// tree. Patches are unified diffs authored with one leading path component
// (`a/base/foo.h` applies to `base/foo.h`) and are applied with the output
// root as working directory.
//
// Application order is the lexicographic order of the patch filenames, so a
// run is reproducible regardless of how the host enumerates directories.
// The first patch that fails to apply aborts the run; patches already
// applied are not rolled back.
type Patcher struct {
	OutputRoot string
	PatchDir   string
	Log        *output.Splog
}

// PatchFiles returns the patch files to apply, sorted by filename. A
// missing patch directory yields an empty series.
func (p *Patcher) PatchFiles() ([]string, error) {
	entries, err := os.ReadDir(p.PatchDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read patch directory: %w", err)
	}

	var patches []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), PatchExtension) {
			continue
		}
		patches = append(patches, filepath.Join(p.PatchDir, entry.Name()))
	}
	sort.Strings(patches)
	return patches, nil
}

// Run applies each patch in order against the output root.
func (p *Patcher) Run(ctx context.Context) error {
	patches, err := p.PatchFiles()
	if err != nil {
		return err
	}
	if len(patches) == 0 {
		p.Log.Debug("no patches in %s", p.PatchDir)
		return nil
	}

	for _, patchFile := range patches {
		diff, err := os.ReadFile(patchFile)
		if err != nil {
			return fmt.Errorf("failed to read patch: %w", err)
		}

		p.Log.Debug("applying %s", filepath.Base(patchFile))
		if err := git.RunPatchCommand(ctx, p.OutputRoot, string(diff)); err != nil {
			return uperrors.NewPatchApplyError(filepath.Base(patchFile), err)
		}
	}

	p.Log.Info("applied %d patches", len(patches))
	return nil
}
