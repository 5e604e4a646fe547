package blippath

const (
	// BlipDir is the name of the repository marker directory
	BlipDir = ".blip"

	// ObjectsDir is the name of the objects directory
	ObjectsDir = "objects"

	// RefsDir is the name of the refs directory
	RefsDir = "refs"

	// HeadsDir is the name of the heads directory (branches)
	HeadsDir = "heads"

	// IndexFile is the name of the staging index file
	IndexFile = "index"

	// HeadFile is the name of the HEAD file
	HeadFile = "HEAD"

	// ConfigFile is the name of the config file
	ConfigFile = "config"

	// DefaultBranch is the branch a fresh repository points at
	DefaultBranch = "master"

	// SymbolicRefPrefix is the prefix HEAD uses to point at a branch ref
	SymbolicRefPrefix = "ref: "
)
