package refs

import (
	"fmt"
	"os"
	"path"
	"strings"

	xerr "github.com/blip-vcs/blip/pkg/common/err"
	"github.com/blip-vcs/blip/pkg/common/fileops"
	"github.com/blip-vcs/blip/pkg/objects"
	"github.com/blip-vcs/blip/pkg/repository/blippath"
)

const pkgName = "refs"

// RefManager resolves and updates the two reference files this system
// knows about: the symbolic HEAD, and the branch ref it points at.
//
// HEAD always holds "ref: refs/heads/<branch>". The branch ref holds a
// single 40-hex commit hash, or does not exist yet on a branch with no
// commits. Resolution is re-read from disk on every call; nothing is
// cached between operations.
type RefManager struct {
	blipPath blippath.BlipPath
}

// NewRefManager creates a reference manager for the given .blip directory.
func NewRefManager(blipPath blippath.BlipPath) *RefManager {
	return &RefManager{blipPath: blipPath}
}

// Init creates the refs/heads directory and writes HEAD pointing at the
// given branch. The branch ref file itself is not created; it comes into
// existence with the first commit.
func (rm *RefManager) Init(branch string) error {
	if err := fileops.EnsureDir(rm.blipPath.HeadsPath()); err != nil {
		return xerr.New(pkgName, xerr.CodeIoFailure, "init",
			"failed to create refs directory", err)
	}

	head := blippath.SymbolicRefPrefix + path.Join(blippath.RefsDir, blippath.HeadsDir, branch)
	if err := fileops.AtomicWrite(rm.blipPath.HeadPath(), []byte(head), 0644); err != nil {
		return xerr.New(pkgName, xerr.CodeIoFailure, "init",
			"failed to write HEAD", err)
	}
	return nil
}

// ResolveHead reads HEAD and returns the filesystem path of the branch
// ref file it points at. HEAD that cannot be read is an I/O failure;
// HEAD content without the "ref: " prefix means the repository metadata
// itself is damaged.
func (rm *RefManager) ResolveHead() (blippath.AbsolutePath, error) {
	content, err := fileops.ReadStringStrict(rm.blipPath.HeadPath())
	if err != nil {
		return "", xerr.New(pkgName, xerr.CodeIoFailure, "resolve_head",
			"failed to read HEAD", err)
	}

	target, ok := strings.CutPrefix(strings.TrimSpace(content), blippath.SymbolicRefPrefix)
	if !ok {
		return "", xerr.New(pkgName, xerr.CodeCorruptObjectStore, "resolve_head",
			fmt.Sprintf("malformed HEAD content: %q", content), nil)
	}

	return rm.blipPath.Join(strings.TrimSpace(target)), nil
}

// CurrentBranch returns the branch name HEAD points at.
func (rm *RefManager) CurrentBranch() (string, error) {
	refPath, err := rm.ResolveHead()
	if err != nil {
		return "", err
	}
	return refPath.Base(), nil
}

// HashFromRef reads a ref file and returns the commit hash it holds.
// A missing ref file is not an error: it is the expected state before
// the first commit on a branch, reported as ok=false.
func (rm *RefManager) HashFromRef(refPath blippath.AbsolutePath) (objects.ObjectHash, bool, error) {
	content, err := os.ReadFile(refPath.String())
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, xerr.New(pkgName, xerr.CodeIoFailure, "hash_from_ref",
			fmt.Sprintf("failed to read ref %s", refPath), err)
	}

	hash, err := objects.ParseObjectHash(string(content))
	if err != nil {
		return "", false, xerr.New(pkgName, xerr.CodeCorruptObjectStore, "hash_from_ref",
			fmt.Sprintf("invalid hash in ref %s", refPath), err)
	}
	return hash, true, nil
}

// UpdateRef writes a commit hash into a ref file atomically, creating
// parent directories as needed.
func (rm *RefManager) UpdateRef(refPath blippath.AbsolutePath, hash objects.ObjectHash) error {
	if err := hash.Validate(); err != nil {
		return xerr.New(pkgName, xerr.CodeCorruptObjectStore, "update_ref",
			fmt.Sprintf("invalid hash for ref %s", refPath), err)
	}

	if err := fileops.EnsureParentDir(refPath); err != nil {
		return xerr.New(pkgName, xerr.CodeIoFailure, "update_ref",
			"failed to create ref directory", err)
	}

	if err := fileops.AtomicWrite(refPath, []byte(hash.String()), 0644); err != nil {
		return xerr.New(pkgName, xerr.CodeIoFailure, "update_ref",
			fmt.Sprintf("failed to write ref %s", refPath), err)
	}
	return nil
}
