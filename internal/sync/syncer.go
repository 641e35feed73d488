package sync

import (
	"context"
	"fmt"

	uperrors "uprev.dev/uprev/internal/errors"
	"uprev.dev/uprev/internal/git"
	"uprev.dev/uprev/internal/output"
)

// Syncer runs the full pipeline: clean the output tree, import the filtered
// file set from the upstream checkout, apply the patch series. Each stage
// completes fully or aborts the whole run; there is no rollback.
type Syncer struct {
	UpstreamRoot string
	OutputRoot   string
	PatchDir     string
	Blacklist    *Blacklist
	Preserved    []string

	// ExpectedRev, when set, pins the upstream checkout: the run aborts
	// before the destructive clean stage unless upstream HEAD matches.
	ExpectedRev string

	// Commit, when true, stages the refreshed tree and creates a commit
	// naming the upstream revision.
	Commit bool

	Log *output.Splog
}

// Run executes the pipeline.
func (s *Syncer) Run(ctx context.Context) error {
	rev, err := s.resolveUpstreamRevision()
	if err != nil {
		return err
	}

	cleaner := &Cleaner{
		OutputRoot: s.OutputRoot,
		Preserved:  s.Preserved,
		Log:        s.Log,
	}
	if err := cleaner.Run(); err != nil {
		return err
	}

	importer := &Importer{
		UpstreamRoot: s.UpstreamRoot,
		OutputRoot:   s.OutputRoot,
		Blacklist:    s.Blacklist,
		Log:          s.Log,
	}
	if err := importer.Run(); err != nil {
		return err
	}

	patcher := &Patcher{
		OutputRoot: s.OutputRoot,
		PatchDir:   s.PatchDir,
		Log:        s.Log,
	}
	if err := patcher.Run(ctx); err != nil {
		return err
	}

	if s.Commit {
		if err := s.commit(ctx, rev); err != nil {
			return err
		}
	}

	s.Log.Success("sync complete")
	return nil
}

// resolveUpstreamRevision reads HEAD of the upstream checkout. The revision
// is required when pinned via ExpectedRev; otherwise a checkout that is not
// a repository only costs the revision in the commit message.
func (s *Syncer) resolveUpstreamRevision() (string, error) {
	repo, err := git.OpenRepository(s.UpstreamRoot)
	if err != nil {
		if s.ExpectedRev != "" {
			return "", fmt.Errorf("cannot verify upstream revision: %w", err)
		}
		s.Log.Warn("cannot resolve upstream revision: %v", err)
		return "", nil
	}

	rev, err := repo.HeadRevision()
	if err != nil {
		if s.ExpectedRev != "" {
			return "", fmt.Errorf("cannot verify upstream revision: %w", err)
		}
		s.Log.Warn("cannot resolve upstream revision: %v", err)
		return "", nil
	}

	if s.ExpectedRev != "" && rev != s.ExpectedRev {
		return "", uperrors.NewRevisionMismatchError(s.ExpectedRev, rev)
	}

	s.Log.Info("upstream revision %s", rev)
	return rev, nil
}

// commit stages the whole output tree and records the refresh. A run that
// produced no changes is reported, not committed.
func (s *Syncer) commit(ctx context.Context, rev string) error {
	runner := git.NewCommandRunner(s.OutputRoot)

	if err := runner.StageAll(ctx); err != nil {
		return err
	}

	staged, err := runner.HasStagedChanges(ctx)
	if err != nil {
		return err
	}
	if !staged {
		s.Log.Info("no changes to commit")
		return nil
	}

	return runner.Commit(ctx, commitMessage(rev))
}

func commitMessage(rev string) string {
	if rev == "" {
		return "Update from upstream\n\nGenerated by uprev sync."
	}
	return fmt.Sprintf("Update from upstream revision %s\n\nGenerated by uprev sync.", rev)
}
