package bliprepo

import (
	"fmt"
	"os"
	"path/filepath"

	xerr "github.com/blip-vcs/blip/pkg/common/err"
	"github.com/blip-vcs/blip/pkg/repository/blippath"
	"github.com/blip-vcs/blip/pkg/repository/refs"
)

// Exists reports whether a repository marker directory exists at root.
func Exists(root blippath.RepositoryPath) (bool, error) {
	info, err := os.Stat(root.BlipPath().String())
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, xerr.New(pkgName, xerr.CodeIoFailure, "exists",
			"failed to check .blip directory", err)
	}
	return info.IsDir(), nil
}

// Open binds to an existing repository at root.
func Open(root blippath.RepositoryPath) (*BlipRepository, error) {
	exists, err := Exists(root)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, xerr.New(pkgName, xerr.CodeRepositoryNotFound, "open",
			fmt.Sprintf("not a blip repository: %s", root), nil)
	}
	return bind(root)
}

// Find walks upward from startPath through ancestor directories looking
// for a .blip marker and binds to the first repository found. The walk is
// an explicit loop that terminates at the filesystem root; reaching it
// without a match is a typed not-found failure, never an auto-create.
func Find(startPath string) (*BlipRepository, error) {
	current, err := filepath.Abs(startPath)
	if err != nil {
		return nil, xerr.New(pkgName, xerr.CodeIoFailure, "find",
			"failed to resolve start path", err)
	}

	for {
		root := blippath.RepositoryPath(current)
		exists, err := Exists(root)
		if err != nil {
			return nil, err
		}
		if exists {
			return bind(root)
		}

		parent := filepath.Dir(current)
		if parent == current {
			return nil, xerr.New(pkgName, xerr.CodeRepositoryNotFound, "find",
				fmt.Sprintf("no blip repository found in %s or any parent directory", startPath), nil)
		}
		current = parent
	}
}

func bind(root blippath.RepositoryPath) (*BlipRepository, error) {
	br := New()
	br.root = root
	br.blipPath = root.BlipPath()
	br.refManager = refs.NewRefManager(br.blipPath)

	if err := br.objectStore.Initialize(root); err != nil {
		return nil, err
	}

	br.initialized = true
	return br, nil
}
