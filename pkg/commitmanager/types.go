package commitmanager

import (
	"github.com/blip-vcs/blip/pkg/objects"
	"github.com/blip-vcs/blip/pkg/repository/blippath"
)

// StagedFile describes one file recorded by Stage: the repository-relative
// path and the hash of the blob written for it.
type StagedFile struct {
	Path blippath.RelativePath
	Hash objects.ObjectHash
}

// CommitResult describes a commit that was durably written: its hash,
// the branch whose ref now points at it, and whether it had a parent.
type CommitResult struct {
	Hash      objects.ObjectHash
	Branch    string
	Parent    objects.ObjectHash
	HasParent bool
	Files     int
}
