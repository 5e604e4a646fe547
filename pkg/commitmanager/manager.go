package commitmanager

import (
	"context"
	"log/slog"
	"path/filepath"

	xerr "github.com/blip-vcs/blip/pkg/common/err"
	"github.com/blip-vcs/blip/pkg/common/logger"
	"github.com/blip-vcs/blip/pkg/objects/blob"
	"github.com/blip-vcs/blip/pkg/objects/commit"
	"github.com/blip-vcs/blip/pkg/repository/bliprepo"
	"github.com/blip-vcs/blip/pkg/repository/blippath"
)

const pkgName = "commitmanager"

// Manager drives the staging and commit workflow for one repository.
//
// Staging a file hashes its contents, writes the blob into the object
// store, and records the (path, hash) pair in the index. Committing turns
// the index into a new commit chained to the commit HEAD resolves to.
//
// The commit path performs its writes in a fixed order so a failure at
// any step leaves earlier effects in place and skips later ones:
//
//  1. Load the index; reject if empty (nothing written yet)
//  2. Resolve HEAD to the branch ref, read the parent hash if present
//  3. Build and finalize the commit
//  4. Write the commit object into the store
//  5. Update the branch ref to the new hash
//  6. Clear the index (only now, after the commit is durable)
//
// Manager is not safe for concurrent use, and two processes operating on
// the same repository are not synchronized against each other.
type Manager struct {
	repo   *bliprepo.BlipRepository
	logger *slog.Logger
}

// NewManager creates a commit manager bound to an opened repository.
func NewManager(repo *bliprepo.BlipRepository) *Manager {
	return &Manager{
		repo:   repo,
		logger: logger.With("component", "commitmanager"),
	}
}

// Stage hashes each file, writes its blob into the object store, and
// records it in the index. Paths may be absolute or relative to the
// repository root; they are stored repository-relative. The index is
// persisted once, after all files are recorded.
func (m *Manager) Stage(ctx context.Context, paths []string) ([]StagedFile, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	idx, err := m.repo.LoadIndex()
	if err != nil {
		return nil, err
	}

	staged := make([]StagedFile, 0, len(paths))
	for _, path := range paths {
		relPath, err := m.relativize(path)
		if err != nil {
			return nil, err
		}

		b, err := blob.FromFile(m.repo.Root().Join(relPath.String()).String())
		if err != nil {
			return nil, xerr.New(pkgName, xerr.CodeIoFailure, "stage",
				"failed to read "+relPath.String(), err)
		}
		if err := m.repo.ObjectStore().PutBlob(b); err != nil {
			return nil, err
		}

		idx.Update(relPath.String(), b.Hash())
		staged = append(staged, StagedFile{Path: relPath, Hash: b.Hash()})
		m.logger.Debug("staged file", "path", relPath, "hash", b.Hash().Short())
	}

	if err := idx.Persist(); err != nil {
		return nil, err
	}
	return staged, nil
}

// CreateCommit builds a commit from the current index and makes it the
// new tip of the current branch. An empty index is rejected before
// anything is written.
func (m *Manager) CreateCommit(ctx context.Context) (*CommitResult, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	idx, err := m.repo.LoadIndex()
	if err != nil {
		return nil, err
	}
	if idx.IsEmpty() {
		return nil, xerr.New(pkgName, xerr.CodeEmptyCommit, "create_commit",
			"no files staged for commit", nil)
	}

	refPath, err := m.repo.Refs().ResolveHead()
	if err != nil {
		return nil, err
	}
	parent, err := m.parentCommit(refPath)
	if err != nil {
		return nil, err
	}

	c := commit.New(parent)
	if err := c.AddEntries(idx.Entries()); err != nil {
		return nil, err
	}
	if err := c.Finalize(); err != nil {
		return nil, err
	}

	if err := m.repo.ObjectStore().PutCommit(c); err != nil {
		return nil, err
	}

	hash, err := c.Hash()
	if err != nil {
		return nil, err
	}
	if err := m.repo.Refs().UpdateRef(refPath, hash); err != nil {
		return nil, err
	}

	// The staged state may only be dropped once the commit and ref are
	// durable; losing it earlier would be a data-loss bug.
	if err := idx.Clear(); err != nil {
		return nil, err
	}

	parentHash, hasParent := c.Parent()
	m.logger.Info("created commit",
		"hash", hash.Short(), "files", c.Len(), "has_parent", hasParent)

	return &CommitResult{
		Hash:      hash,
		Branch:    refPath.Base(),
		Parent:    parentHash,
		HasParent: hasParent,
		Files:     c.Len(),
	}, nil
}

// Head returns the commit the current branch points at, or ok=false when
// the branch has no commits yet.
func (m *Manager) Head(ctx context.Context) (*commit.Commit, bool, error) {
	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	default:
	}

	refPath, err := m.repo.Refs().ResolveHead()
	if err != nil {
		return nil, false, err
	}
	hash, ok, err := m.repo.Refs().HashFromRef(refPath)
	if err != nil || !ok {
		return nil, false, err
	}

	c, err := m.repo.ObjectStore().ReadCommit(hash)
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}

// History walks the parent chain backward from the current branch tip.
// Commits are returned newest first. A limit of zero or less walks the
// whole chain. An empty branch yields an empty history, not an error.
func (m *Manager) History(ctx context.Context, limit int) ([]*commit.Commit, error) {
	head, ok, err := m.Head(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var history []*commit.Commit
	current := head
	for {
		select {
		case <-ctx.Done():
			return history, ctx.Err()
		default:
		}

		history = append(history, current)
		if limit > 0 && len(history) >= limit {
			return history, nil
		}

		parentHash, hasParent := current.Parent()
		if !hasParent {
			return history, nil
		}
		parent, err := m.repo.ObjectStore().ReadCommit(parentHash)
		if err != nil {
			return history, err
		}
		current = parent
	}
}

// parentCommit reads the commit the branch ref points at, or nil when the
// ref does not exist yet (first commit on the branch).
func (m *Manager) parentCommit(refPath blippath.AbsolutePath) (*commit.Commit, error) {
	hash, ok, err := m.repo.Refs().HashFromRef(refPath)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return m.repo.ObjectStore().ReadCommit(hash)
}

// relativize converts a user-supplied path into a repository-relative one.
func (m *Manager) relativize(path string) (blippath.RelativePath, error) {
	abs := path
	if !filepath.IsAbs(path) {
		abs = m.repo.Root().Join(path).String()
	}
	rel, err := m.repo.Root().Relativize(blippath.AbsolutePath(abs))
	if err != nil {
		return "", xerr.New(pkgName, xerr.CodeIoFailure, "stage",
			"invalid path "+path, err)
	}
	return rel, nil
}
