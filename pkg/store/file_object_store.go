package store

import (
	"fmt"
	"os"
	"unicode/utf8"

	xerr "github.com/blip-vcs/blip/pkg/common/err"
	"github.com/blip-vcs/blip/pkg/objects"
	"github.com/blip-vcs/blip/pkg/objects/blob"
	"github.com/blip-vcs/blip/pkg/objects/commit"
	"github.com/blip-vcs/blip/pkg/repository/blippath"
)

const pkgName = "store"

// FileObjectStore is the file-based object store.
//
// Layout is flat: every object lives directly in .blip/objects with the full
// 40-character hash as its filename, holding the object's raw bytes — a
// blob's file contents or a commit's canonical text. No compression, no
// fan-out directories.
//
// Get trusts that a file named <hash> contains bytes whose digest is <hash>;
// reads do not re-verify. The integrity package provides a whole-store scan
// for that.
type FileObjectStore struct {
	objectsPath blippath.AbsolutePath
}

// NewFileObjectStore creates a new FileObjectStore instance
func NewFileObjectStore() *FileObjectStore {
	return &FileObjectStore{}
}

// Initialize sets up the object store by creating the objects directory.
func (fos *FileObjectStore) Initialize(repoPath blippath.RepositoryPath) error {
	fos.objectsPath = repoPath.BlipPath().ObjectsPath()

	if err := os.MkdirAll(fos.objectsPath.String(), 0755); err != nil {
		return xerr.WrapWithCode(err, pkgName, xerr.CodeIoFailure, "initialize")
	}

	return nil
}

// Put writes raw bytes to the file named by hash. An existing object is
// overwritten unconditionally; since identical hash means identical bytes,
// repeated writes are a no-op in effect.
func (fos *FileObjectStore) Put(hash objects.ObjectHash, data []byte) error {
	if err := fos.validate(hash); err != nil {
		return err
	}

	path := fos.objectFilePath(hash)
	if err := os.WriteFile(path.String(), data, 0644); err != nil {
		return xerr.New(pkgName, xerr.CodeIoFailure, "put",
			fmt.Sprintf("write object %s", hash.Short()), err)
	}

	return nil
}

// Get reads the full byte content addressed by hash.
func (fos *FileObjectStore) Get(hash objects.ObjectHash) ([]byte, error) {
	if err := fos.validate(hash); err != nil {
		return nil, err
	}

	path := fos.objectFilePath(hash)
	data, err := os.ReadFile(path.String())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, xerr.New(pkgName, xerr.CodeCorruptObjectStore, "get",
				fmt.Sprintf("object not found: %s", hash), err)
		}
		return nil, xerr.New(pkgName, xerr.CodeIoFailure, "get",
			fmt.Sprintf("read object %s", hash.Short()), err)
	}

	return data, nil
}

// Has checks if an object exists in the store.
func (fos *FileObjectStore) Has(hash objects.ObjectHash) (bool, error) {
	if err := fos.validate(hash); err != nil {
		return false, err
	}

	_, err := os.Stat(fos.objectFilePath(hash).String())
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, xerr.WrapWithCode(err, pkgName, xerr.CodeIoFailure, "has")
	}

	return true, nil
}

// PutBlob stores a blob under its own hash.
func (fos *FileObjectStore) PutBlob(b *blob.Blob) error {
	return fos.Put(b.Hash(), b.Content())
}

// PutCommit stores a finalized commit's canonical bytes under its hash.
// The commit must already be finalized; an unfinalized commit has no
// identity to store under.
func (fos *FileObjectStore) PutCommit(c *commit.Commit) error {
	hash, err := c.Hash()
	if err != nil {
		return fmt.Errorf("store commit: %w", err)
	}
	data, err := c.Data()
	if err != nil {
		return fmt.Errorf("store commit: %w", err)
	}
	return fos.Put(hash, data)
}

// ReadCommit reads a stored object and parses it as a commit. Content that
// is not valid UTF-8 text cannot be a commit and fails as corruption.
func (fos *FileObjectStore) ReadCommit(hash objects.ObjectHash) (*commit.Commit, error) {
	data, err := fos.Get(hash)
	if err != nil {
		return nil, err
	}

	if !utf8.Valid(data) {
		return nil, xerr.New(pkgName, xerr.CodeCorruptObjectStore, "read_commit",
			fmt.Sprintf("object %s is not commit text", hash.Short()), nil)
	}

	return commit.Parse(hash, string(data))
}

// IsInitialized checks if the object store has been initialized
func (fos *FileObjectStore) IsInitialized() bool {
	return fos.objectsPath.IsValid()
}

// ObjectsPath returns the path to the objects directory
func (fos *FileObjectStore) ObjectsPath() blippath.AbsolutePath {
	return fos.objectsPath
}

func (fos *FileObjectStore) objectFilePath(hash objects.ObjectHash) blippath.AbsolutePath {
	return fos.objectsPath.Join(hash.String())
}

func (fos *FileObjectStore) validate(hash objects.ObjectHash) error {
	if !fos.IsInitialized() {
		return xerr.New(pkgName, xerr.CodeIoFailure, "validate",
			"object store not initialized", nil)
	}
	if err := hash.Validate(); err != nil {
		return xerr.New(pkgName, xerr.CodeCorruptObjectStore, "validate",
			"invalid object hash", err)
	}
	return nil
}
