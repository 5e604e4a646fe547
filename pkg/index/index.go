package index

import (
	"fmt"
	"os"
	"sort"
	"strings"

	xerr "github.com/blip-vcs/blip/pkg/common/err"
	"github.com/blip-vcs/blip/pkg/common/fileops"
	"github.com/blip-vcs/blip/pkg/objects"
	"github.com/blip-vcs/blip/pkg/repository/blippath"
)

const pkgName = "index"

// Index is the staging area: a mutable mapping from repository-relative
// path to content hash, persisted as a line-oriented text file at
// .blip/index. Each line holds "<hash> <path>". The in-memory mapping is
// keyed by path, so staging the same path twice keeps only the latest hash.
//
// The index trusts nothing across invocations: every command loads it
// fresh from disk and persists explicitly.
type Index struct {
	path    blippath.AbsolutePath
	entries map[string]objects.ObjectHash
}

// New creates an empty index bound to the given file path.
func New(path blippath.AbsolutePath) *Index {
	return &Index{
		path:    path,
		entries: make(map[string]objects.ObjectHash),
	}
}

// Load reads the index file at path into memory. Initialization always
// creates the file, so a missing one is an I/O failure, not an empty
// index. Every line must split into exactly two whitespace-separated
// tokens (hash, path); any malformed line rejects the whole load.
func Load(path blippath.AbsolutePath) (*Index, error) {
	idx := New(path)

	data, err := os.ReadFile(path.String())
	if err != nil {
		return nil, xerr.New(pkgName, xerr.CodeIoFailure, "load", "failed to read index file", err)
	}

	for i, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, xerr.New(pkgName, xerr.CodeCorruptIndex, "load",
				fmt.Sprintf("malformed index line %d: %q", i+1, line), nil)
		}
		hash, err := objects.ParseObjectHash(fields[0])
		if err != nil {
			return nil, xerr.New(pkgName, xerr.CodeCorruptIndex, "load",
				fmt.Sprintf("malformed index line %d: %q", i+1, line), err)
		}
		idx.entries[fields[1]] = hash
	}

	return idx, nil
}

// Update inserts or replaces the entry for path.
func (idx *Index) Update(path string, hash objects.ObjectHash) {
	idx.entries[path] = hash
}

// Get returns the staged hash for path.
func (idx *Index) Get(path string) (objects.ObjectHash, bool) {
	hash, ok := idx.entries[path]
	return hash, ok
}

// Has reports whether path is staged.
func (idx *Index) Has(path string) bool {
	_, ok := idx.entries[path]
	return ok
}

// Len returns the number of staged entries.
func (idx *Index) Len() int {
	return len(idx.entries)
}

// IsEmpty reports whether nothing is staged.
func (idx *Index) IsEmpty() bool {
	return len(idx.entries) == 0
}

// Entries returns a copy of the path-to-hash mapping.
func (idx *Index) Entries() map[string]objects.ObjectHash {
	out := make(map[string]objects.ObjectHash, len(idx.entries))
	for path, hash := range idx.entries {
		out[path] = hash
	}
	return out
}

// Paths returns all staged paths, sorted.
func (idx *Index) Paths() []string {
	paths := make([]string, 0, len(idx.entries))
	for path := range idx.entries {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Persist rewrites the index file from the in-memory mapping, one
// "<hash> <path>" line per entry, ordered by hash with path as tie-break.
// The rewrite is atomic so a crash never leaves a half-written index.
func (idx *Index) Persist() error {
	type entry struct {
		hash objects.ObjectHash
		path string
	}
	entries := make([]entry, 0, len(idx.entries))
	for path, hash := range idx.entries {
		entries = append(entries, entry{hash: hash, path: path})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].hash != entries[j].hash {
			return entries[i].hash < entries[j].hash
		}
		return entries[i].path < entries[j].path
	})

	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %s\n", e.hash, e.path)
	}

	if err := fileops.AtomicWrite(idx.path, []byte(b.String()), 0644); err != nil {
		return xerr.New(pkgName, xerr.CodeIoFailure, "persist", "failed to write index file", err)
	}
	return nil
}

// Clear empties the mapping and persists the empty state. Callers must
// only clear after the commit consuming these entries is durable on disk.
func (idx *Index) Clear() error {
	idx.entries = make(map[string]objects.ObjectHash)
	return idx.Persist()
}
