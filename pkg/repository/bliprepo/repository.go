package bliprepo

import (
	"fmt"

	xerr "github.com/blip-vcs/blip/pkg/common/err"
	"github.com/blip-vcs/blip/pkg/common/fileops"
	"github.com/blip-vcs/blip/pkg/config"
	"github.com/blip-vcs/blip/pkg/index"
	"github.com/blip-vcs/blip/pkg/repository/blippath"
	"github.com/blip-vcs/blip/pkg/repository/refs"
	"github.com/blip-vcs/blip/pkg/store"
)

const pkgName = "bliprepo"

// BlipRepository binds together the pieces rooted at one .blip directory:
// the object store, the staging index, and the reference files. The root
// path is established once, by Initialize, Open, or Find; everything else
// re-reads disk state on each operation.
type BlipRepository struct {
	root        blippath.RepositoryPath
	blipPath    blippath.BlipPath
	objectStore store.ObjectStore
	refManager  *refs.RefManager
	initialized bool
}

// New creates an unbound repository value. Call Initialize or use Open/Find.
func New() *BlipRepository {
	return &BlipRepository{
		objectStore: store.NewFileObjectStore(),
	}
}

// Initialize creates a fresh repository at root:
//
//	<root>/.blip/
//	  HEAD               "ref: refs/heads/<branch>"
//	  index              empty
//	  config             ini, [core] section
//	  objects/
//	  refs/heads/        no ref file yet; the first commit creates it
//
// Initializing over an existing repository is an error.
func (br *BlipRepository) Initialize(root blippath.RepositoryPath) error {
	exists, err := Exists(root)
	if err != nil {
		return err
	}
	if exists {
		return xerr.New(pkgName, xerr.CodeIoFailure, "initialize",
			fmt.Sprintf("already a blip repository: %s", root), nil)
	}

	br.root = root
	br.blipPath = root.BlipPath()
	br.refManager = refs.NewRefManager(br.blipPath)

	if err := fileops.EnsureDir(blippath.AbsolutePath(br.blipPath)); err != nil {
		return xerr.New(pkgName, xerr.CodeIoFailure, "initialize",
			"failed to create .blip directory", err)
	}
	if err := br.objectStore.Initialize(root); err != nil {
		return err
	}

	cfg := config.Default(br.blipPath.ConfigPath())
	if err := cfg.Save(); err != nil {
		return err
	}
	if err := br.refManager.Init(cfg.DefaultBranch()); err != nil {
		return err
	}
	if err := index.New(br.blipPath.IndexPath()).Persist(); err != nil {
		return err
	}

	br.initialized = true
	return nil
}

// Root returns the repository root, the directory containing .blip.
func (br *BlipRepository) Root() blippath.RepositoryPath {
	return br.root
}

// BlipPath returns the path to the .blip directory.
func (br *BlipRepository) BlipPath() blippath.BlipPath {
	return br.blipPath
}

// ObjectStore returns the repository's object store.
func (br *BlipRepository) ObjectStore() store.ObjectStore {
	return br.objectStore
}

// Refs returns the repository's reference manager.
func (br *BlipRepository) Refs() *refs.RefManager {
	return br.refManager
}

// LoadIndex reads the staging index from disk.
func (br *BlipRepository) LoadIndex() (*index.Index, error) {
	return index.Load(br.blipPath.IndexPath())
}

// LoadConfig reads the repository configuration from disk.
func (br *BlipRepository) LoadConfig() (*config.Config, error) {
	return config.Load(br.blipPath.ConfigPath())
}

// IsInitialized reports whether this value is bound to a repository.
func (br *BlipRepository) IsInitialized() bool {
	return br.initialized
}
