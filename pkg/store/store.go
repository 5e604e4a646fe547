package store

import (
	"github.com/blip-vcs/blip/pkg/objects"
	"github.com/blip-vcs/blip/pkg/objects/blob"
	"github.com/blip-vcs/blip/pkg/objects/commit"
	"github.com/blip-vcs/blip/pkg/repository/blippath"
)

// ObjectStore defines the contract for content-addressable object storage.
//
// The store is append-only: objects are written once under their hash and
// never deleted, garbage collected, or reference counted. Writing the same
// (hash, bytes) pair any number of times has the effect of writing it once.
type ObjectStore interface {
	// Initialize sets up the object store for the given repository,
	// creating the objects directory if it doesn't exist.
	Initialize(repoPath blippath.RepositoryPath) error

	// Put writes raw bytes to the file named by hash, overwriting
	// unconditionally if present.
	Put(hash objects.ObjectHash, data []byte) error

	// Get reads the full byte content addressed by hash. A missing object
	// is a corruption-kind failure: nothing in this design asks the store
	// for a hash it was not previously given.
	Get(hash objects.ObjectHash) ([]byte, error)

	// Has checks if an object exists in the store.
	Has(hash objects.ObjectHash) (bool, error)

	// PutBlob stores a blob under its own hash.
	PutBlob(b *blob.Blob) error

	// PutCommit stores a finalized commit's canonical bytes under its hash.
	PutCommit(c *commit.Commit) error

	// ReadCommit reads and parses a stored commit object.
	ReadCommit(hash objects.ObjectHash) (*commit.Commit, error)
}
