package git

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	uperrors "uprev.dev/uprev/internal/errors"
)

// Repository wraps a go-git repository
type Repository struct {
	*gogit.Repository
	path string
}

// OpenRepository opens the git repository containing the given path
func OpenRepository(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	repo, err := gogit.PlainOpenWithOptions(absPath, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", uperrors.ErrNotARepository, absPath)
		}
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	// DetectDotGit may have walked up from absPath; report the actual
	// worktree root rather than the path we were opened at.
	root := absPath
	if wt, err := repo.Worktree(); err == nil {
		root = wt.Filesystem.Root()
	}

	return &Repository{
		Repository: repo,
		path:       root,
	}, nil
}

// Root returns the root directory of the repository's worktree
func (r *Repository) Root() string {
	return r.path
}

// HeadRevision returns the SHA of the commit HEAD points at
func (r *Repository) HeadRevision() (string, error) {
	head, err := r.Head()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return head.Hash().String(), nil
}

// ListTrackedFiles returns the relative paths of all files present in the
// HEAD commit's tree, sorted lexicographically. This reflects what the
// repository tracks, not what is on disk, so build artifacts and other
// untracked content never appear in the result.
func (r *Repository) ListTrackedFiles() ([]string, error) {
	head, err := r.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	commit, err := r.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD commit: %w", err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("failed to get commit tree: %w", err)
	}

	var paths []string
	err = tree.Files().ForEach(func(f *object.File) error {
		paths = append(paths, f.Name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk commit tree: %w", err)
	}

	sort.Strings(paths)
	return paths, nil
}
