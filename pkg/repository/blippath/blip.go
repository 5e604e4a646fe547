package blippath

import "path/filepath"

// BlipPath represents the absolute path to a .blip directory and knows the
// on-disk layout beneath it:
//
//	<root>/.blip/
//	  HEAD                  symbolic ref:    "ref: refs/heads/<branch>"
//	  index                 staged entries:  "<hash> <path>\n" per line
//	  config                repository configuration (ini)
//	  objects/<hash>        raw blob bytes or canonical commit text
//	  refs/heads/<branch>   40-hex commit hash
type BlipPath string

// String returns the path as a string
func (bp BlipPath) String() string {
	return string(bp)
}

// IsValid checks if this is a valid blip path
func (bp BlipPath) IsValid() bool {
	return len(bp) > 0
}

// Join joins path elements to the blip path
func (bp BlipPath) Join(elem ...string) AbsolutePath {
	parts := append([]string{string(bp)}, elem...)
	return AbsolutePath(filepath.Join(parts...))
}

// ObjectsPath returns the path to the objects directory
func (bp BlipPath) ObjectsPath() AbsolutePath {
	return bp.Join(ObjectsDir)
}

// ObjectFilePath returns the path to an object file. The store is flat:
// the filename is the full 40-character hash.
func (bp BlipPath) ObjectFilePath(hash string) AbsolutePath {
	return bp.Join(ObjectsDir, hash)
}

// RefsPath returns the path to the refs directory
func (bp BlipPath) RefsPath() AbsolutePath {
	return bp.Join(RefsDir)
}

// HeadsPath returns the path to the refs/heads directory
func (bp BlipPath) HeadsPath() AbsolutePath {
	return bp.Join(RefsDir, HeadsDir)
}

// HeadPath returns the path to the HEAD file
func (bp BlipPath) HeadPath() AbsolutePath {
	return bp.Join(HeadFile)
}

// IndexPath returns the path to the staging index file
func (bp BlipPath) IndexPath() AbsolutePath {
	return bp.Join(IndexFile)
}

// ConfigPath returns the path to the config file
func (bp BlipPath) ConfigPath() AbsolutePath {
	return bp.Join(ConfigFile)
}

// BranchRefPath returns the path to a branch's ref file
func (bp BlipPath) BranchRefPath(branch string) AbsolutePath {
	return bp.Join(RefsDir, HeadsDir, branch)
}
